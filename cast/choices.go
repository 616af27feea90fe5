package cast

import (
	"reflect"

	cferrors "github.com/randalmurphal/confkit/errors"
)

// Choice is a (value, label) pair as used by form-style choice lists.
// Only Value takes part in validation.
type Choice struct {
	Value any
	Label string
}

type choicesConfig struct {
	valueCast Func
	pairs     []Choice
}

// ChoicesOption configures the Choices cast.
type ChoicesOption func(*choicesConfig)

// WithValueCast sets the cast applied to the input before the membership
// check. Defaults to String.
func WithValueCast(fn Func) ChoicesOption {
	return func(c *choicesConfig) {
		c.valueCast = fn
	}
}

// WithPairs adds (value, label) pairs to the allowed set.
func WithPairs(pairs ...Choice) ChoicesOption {
	return func(c *choicesConfig) {
		c.pairs = append(c.pairs, pairs...)
	}
}

// Choices returns a cast that only accepts members of a closed set.
//
// The allowed set is flat plus the values of any pairs given via WithPairs.
// The input is cast first, then compared, so Choices([]any{0, 3, 7},
// WithValueCast(Int)) accepts "3" and returns 3.
func Choices(flat []any, opts ...ChoicesOption) Func {
	cfg := &choicesConfig{valueCast: String}
	for _, opt := range opts {
		opt(cfg)
	}

	valid := make([]any, 0, len(flat)+len(cfg.pairs))
	valid = append(valid, flat...)
	for _, p := range cfg.pairs {
		valid = append(valid, p.Value)
	}

	return func(value any) (any, error) {
		v, err := cfg.valueCast(value)
		if err != nil {
			return nil, err
		}
		for _, allowed := range valid {
			if reflect.DeepEqual(v, allowed) {
				return v, nil
			}
		}
		return nil, &cferrors.InvalidValueError{Value: v, Reason: "value not in list", Valid: valid}
	}
}
