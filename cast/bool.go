package cast

import (
	"fmt"

	cferrors "github.com/randalmurphal/confkit/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var truthValues = map[string]bool{
	"y": true, "yes": true, "t": true, "true": true, "on": true, "1": true,
	"n": false, "no": false, "f": false, "false": false, "off": false, "0": false,
}

// StrToBool parses a truth token case-insensitively.
// Accepted tokens are y, yes, t, true, on, 1 and n, no, f, false, off, 0.
func StrToBool(s string) (bool, error) {
	// A Caser holds state and cannot be shared between goroutines.
	lower := cases.Lower(language.Und)
	if v, ok := truthValues[lower.String(s)]; ok {
		return v, nil
	}
	return false, &cferrors.InvalidValueError{Value: s, Reason: "invalid truth value"}
}

// ToBool converts value to a bool.
//
// Native bools are returned unchanged and nil is false. Anything else is
// formatted as text and matched against the StrToBool vocabulary, with the
// empty string meaning false. Byte slices are not decoded, so a remote value
// fetched without an encoding never matches a truth token.
func ToBool(value any) (bool, error) {
	var s string
	switch v := value.(type) {
	case bool:
		return v, nil
	case nil:
		return false, nil
	case string:
		s = v
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}

	if s == "" {
		return false, nil
	}
	b, err := StrToBool(s)
	if err != nil {
		return false, &cferrors.InvalidValueError{Value: value, Reason: "not a boolean"}
	}
	return b, nil
}

// Bool is the Func form of ToBool.
func Bool(value any) (any, error) {
	return ToBool(value)
}
