package cast

import (
	"fmt"
	"strings"

	cferrors "github.com/randalmurphal/confkit/errors"
)

const defaultStrip = " \t\n\r\v\f"

type csvConfig struct {
	itemCast    Func
	delimiters  string
	strip       string
	postProcess func(items []any) (any, error)
}

// CSVOption configures the CSV cast.
type CSVOption func(*csvConfig)

// WithItemCast applies fn to every token after stripping.
func WithItemCast(fn Func) CSVOption {
	return func(c *csvConfig) {
		c.itemCast = fn
	}
}

// WithDelimiter sets the characters that separate tokens. Each character in
// delims is a delimiter on its own. Defaults to ",".
func WithDelimiter(delims string) CSVOption {
	return func(c *csvConfig) {
		c.delimiters = delims
	}
}

// WithStrip sets the characters trimmed from both ends of each token.
// Defaults to ASCII whitespace.
func WithStrip(chars string) CSVOption {
	return func(c *csvConfig) {
		c.strip = chars
	}
}

// WithPostProcess sets the constructor that collects the cast tokens into
// the final container, e.g. Set.
func WithPostProcess(fn func(items []any) (any, error)) CSVOption {
	return func(c *csvConfig) {
		c.postProcess = fn
	}
}

// CSV returns a cast that splits delimited text into a collection.
//
// Quoting follows POSIX shell rules: delimiters inside single or double
// quotes do not split, the quotes themselves are removed, and a backslash
// escapes the next character outside single quotes. Without an item cast
// the result is a []string; with one it is a []any. A nil input yields an
// empty collection. A native slice (as decoded from YAML or JSON) skips the
// splitting step and only has the item cast applied.
func CSV(opts ...CSVOption) Func {
	cfg := &csvConfig{
		delimiters: ",",
		strip:      defaultStrip,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.postProcess == nil {
		cfg.postProcess = cfg.defaultPostProcess
	}

	return func(value any) (any, error) {
		var tokens []any
		switch v := value.(type) {
		case nil:
		case []any:
			tokens = v
		case []string:
			for _, s := range v {
				tokens = append(tokens, s)
			}
		default:
			s, ok := v.(string)
			if !ok {
				s = fmt.Sprint(v)
			}
			split, err := splitQuoted(s, cfg.delimiters)
			if err != nil {
				return nil, &cferrors.InvalidValueError{Value: value, Reason: err.Error()}
			}
			for _, tok := range split {
				tokens = append(tokens, strings.Trim(tok, cfg.strip))
			}
		}

		items := make([]any, 0, len(tokens))
		for _, tok := range tokens {
			if cfg.itemCast == nil {
				items = append(items, tok)
				continue
			}
			item, err := cfg.itemCast(tok)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return cfg.postProcess(items)
	}
}

func (c *csvConfig) defaultPostProcess(items []any) (any, error) {
	if c.itemCast != nil {
		return items, nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, _ := String(item)
		out = append(out, s.(string))
	}
	return out, nil
}

// Set collects items into a set keyed by the item values. Items must be comparable.
func Set(items []any) (any, error) {
	set := make(map[any]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set, nil
}

// splitQuoted tokenizes s on any rune in delims, honouring shell quoting.
// Runs of delimiters collapse, so empty fields are dropped unless quoted.
func splitQuoted(s, delims string) ([]string, error) {
	const (
		stateSpace = iota
		stateWord
		stateSingle
		stateDouble
	)

	var (
		tokens  []string
		token   strings.Builder
		inToken bool
		state   = stateSpace
		escaped bool
	)

	emit := func() {
		if inToken {
			tokens = append(tokens, token.String())
		}
		token.Reset()
		inToken = false
	}

	for _, r := range s {
		if escaped {
			// Inside double quotes only the quote and backslash are escapable.
			if state == stateDouble && r != '"' && r != '\\' {
				token.WriteRune('\\')
			}
			token.WriteRune(r)
			escaped = false
			continue
		}

		switch state {
		case stateSingle:
			if r == '\'' {
				state = stateWord
			} else {
				token.WriteRune(r)
			}
		case stateDouble:
			switch r {
			case '"':
				state = stateWord
			case '\\':
				escaped = true
			default:
				token.WriteRune(r)
			}
		default:
			switch {
			case strings.ContainsRune(delims, r):
				if state == stateWord {
					emit()
				}
				state = stateSpace
			case r == '\'':
				state, inToken = stateSingle, true
			case r == '"':
				state, inToken = stateDouble, true
			case r == '\\':
				state, inToken, escaped = stateWord, true, true
			default:
				token.WriteRune(r)
				state, inToken = stateWord, true
			}
		}
	}

	switch {
	case escaped:
		return nil, fmt.Errorf("no escaped character")
	case state == stateSingle || state == stateDouble:
		return nil, fmt.Errorf("no closing quotation")
	}
	emit()
	return tokens, nil
}
