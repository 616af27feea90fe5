package repository

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Python is a repository over the top-level assignments of a Python settings
// module. Python is never executed: only assignments whose right-hand side
// is a literal (string, number, True, False, None, or a list, tuple or dict
// of literals) are read. Names starting with an underscore and any
// assignment whose value is an expression are skipped.
type Python struct {
	static
	path string
}

// NewPython reads and parses the file at path.
func NewPython(path string, opts ...Option) (*Python, error) {
	o := newOptions(opts)
	content, err := readSource(path, o.encoding)
	if err != nil {
		return nil, err
	}
	return &Python{static: static{values: parsePython(content)}, path: path}, nil
}

// OpenPython is the Opener for ".py" files.
func OpenPython(path string, opts ...Option) (Repository, error) {
	r, err := NewPython(path, opts...)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the file the repository was read from.
func (r *Python) Path() string {
	return r.path
}

var pyAssignment = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_]*)\s*=([^=].*)$`)

func parsePython(content string) map[string]any {
	values := make(map[string]any)
	for _, stmt := range pyStatements(content) {
		m := pyAssignment.FindStringSubmatch(stmt)
		if m == nil {
			continue
		}
		p := &pyParser{src: m[2]}
		v, err := p.parse()
		if err != nil {
			continue
		}
		values[m[1]] = v
	}
	return values
}

// pyStatements joins physical lines into top-level logical statements,
// following bracket nesting outside string literals. Indented statements
// (function and class bodies) are dropped.
func pyStatements(content string) []string {
	var (
		stmts   []string
		current strings.Builder
		depth   int
		quote   byte
	)

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if current.Len() == 0 && (line == "" || line[0] == ' ' || line[0] == '\t') {
			continue
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}

		for i := 0; i < len(line); i++ {
			c := line[i]
			switch {
			case quote != 0:
				if c == '\\' {
					i++
				} else if c == quote {
					quote = 0
				}
			case c == '#':
				i = len(line)
				continue
			case c == '\'' || c == '"':
				quote = c
			case c == '(' || c == '[' || c == '{':
				depth++
			case c == ')' || c == ']' || c == '}':
				depth--
			}
			current.WriteByte(c)
		}

		if depth <= 0 {
			stmts = append(stmts, strings.TrimSpace(current.String()))
			current.Reset()
			depth = 0
			quote = 0
		}
	}
	return stmts
}

type pyParser struct {
	src string
	pos int
}

func (p *pyParser) parse() (any, error) {
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("unexpected %q at %d", p.src[p.pos:], p.pos)
	}
	return v, nil
}

func (p *pyParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *pyParser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *pyParser) value() (any, error) {
	p.skipSpace()
	c := p.peek()
	switch {
	case c == '\'' || c == '"':
		return p.str(false)
	case (c == 'r' || c == 'R') && p.pos+1 < len(p.src) && (p.src[p.pos+1] == '\'' || p.src[p.pos+1] == '"'):
		p.pos++
		return p.str(true)
	case (c == 'u' || c == 'U') && p.pos+1 < len(p.src) && (p.src[p.pos+1] == '\'' || p.src[p.pos+1] == '"'):
		p.pos++
		return p.str(false)
	case c == '[':
		p.pos++
		items, _, err := p.sequence(']')
		return items, err
	case c == '(':
		p.pos++
		items, trailingComma, err := p.sequence(')')
		if err != nil {
			return nil, err
		}
		if len(items) == 1 && !trailingComma {
			return items[0], nil
		}
		return items, nil
	case c == '{':
		p.pos++
		return p.dict()
	case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
		return p.number()
	default:
		return p.constant()
	}
}

func (p *pyParser) str(raw bool) (any, error) {
	quote := p.src[p.pos]
	if strings.HasPrefix(p.src[p.pos:], strings.Repeat(string(quote), 3)) {
		return nil, fmt.Errorf("triple-quoted strings are not supported")
	}
	p.pos++

	var sb strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		p.pos++
		switch {
		case c == quote:
			return sb.String(), nil
		case c == '\\' && p.pos < len(p.src):
			next := p.src[p.pos]
			p.pos++
			if raw {
				sb.WriteByte('\\')
				sb.WriteByte(next)
				continue
			}
			switch next {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '\\', '\'', '"':
				sb.WriteByte(next)
			default:
				sb.WriteByte('\\')
				sb.WriteByte(next)
			}
		default:
			sb.WriteByte(c)
		}
	}
	return nil, fmt.Errorf("unterminated string")
}

func (p *pyParser) sequence(closer byte) ([]any, bool, error) {
	items := []any{}
	trailingComma := false
	for {
		p.skipSpace()
		if p.peek() == closer {
			p.pos++
			return items, trailingComma, nil
		}
		v, err := p.value()
		if err != nil {
			return nil, false, err
		}
		items = append(items, v)

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
			trailingComma = true
		case closer:
			p.pos++
			return items, false, nil
		default:
			return nil, false, fmt.Errorf("expected ',' or %q at %d", closer, p.pos)
		}
	}
}

func (p *pyParser) dict() (any, error) {
	m := make(map[string]any)
	for {
		p.skipSpace()
		if p.peek() == '}' {
			p.pos++
			return m, nil
		}
		k, err := p.value()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peek() != ':' {
			return nil, fmt.Errorf("expected ':' at %d", p.pos)
		}
		p.pos++
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		m[fmt.Sprint(k)] = v

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return m, nil
		default:
			return nil, fmt.Errorf("expected ',' or '}' at %d", p.pos)
		}
	}
}

func (p *pyParser) number() (any, error) {
	start := p.pos
	for p.pos < len(p.src) && strings.IndexByte("0123456789abcdefABCDEFxXoO_.+-", p.src[p.pos]) >= 0 {
		// A sign only belongs to the number at the start or after an exponent.
		if c := p.src[p.pos]; (c == '+' || c == '-') && p.pos > start &&
			p.src[p.pos-1] != 'e' && p.src[p.pos-1] != 'E' {
			break
		}
		p.pos++
	}
	lit := strings.ReplaceAll(p.src[start:p.pos], "_", "")
	if n, err := strconv.ParseInt(lit, 0, 0); err == nil {
		return int(n), nil
	}
	if f, err := strconv.ParseFloat(lit, 64); err == nil {
		return f, nil
	}
	return nil, fmt.Errorf("invalid number %q", lit)
}

func (p *pyParser) constant() (any, error) {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if !(c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			break
		}
		p.pos++
	}
	switch word := p.src[start:p.pos]; word {
	case "True":
		return true, nil
	case "False":
		return false, nil
	case "None":
		return nil, nil
	default:
		return nil, fmt.Errorf("not a literal: %q", word)
	}
}
