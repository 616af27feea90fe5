package repository

import (
	"reflect"
	"testing"
)

const pythonFixture = `# coding: utf-8
import os
from pathlib import Path

KeyTrue = True
KeyOne = 1
KeyYes = 'yes'
KeyOn = "on"

KeyFalse = False
KeyZero = 0
KeyNo = 'no'
KeyOff = 'off'
KeyEmpty = ''
KeyNone = None

# CommentedKey = None
PercentNotEscaped = '%%'
NoInterpolation = '%(KeyOff)s'
IgnoreSpace = 'text'
RespectDoubleQuoteSpace = " text"
Escapes = 'tab\there'
RawPath = r'C:\new'
Hex = 0x1F
Big = 1_000_000
Negative = -3
Ratio = 2.5e-1
Hosts = [
    'localhost',  # dev
    '127.0.0.1',
]
Pair = (1, 'two')
Single = (5)
Databases = {'default': {'PORT': 5432, 'HOST': 'db'}}
_Private = 'hidden'
BASE_DIR = Path(__file__).resolve().parent
Computed = os.environ.get('X', 'y')
Sum = 1 + 2

def helper():
    Inner = 'nope'
    return Inner

class Settings:
    Attr = 'nope'
`

func TestPython(t *testing.T) {
	repo, err := NewPython(writeFixture(t, "settings.py", pythonFixture))
	if err != nil {
		t.Fatalf("NewPython() error = %v", err)
	}

	tests := []struct {
		key  string
		want any
	}{
		{"KeyTrue", true},
		{"KeyOne", 1},
		{"KeyYes", "yes"},
		{"KeyOn", "on"},
		{"KeyFalse", false},
		{"KeyZero", 0},
		{"KeyEmpty", ""},
		{"KeyNone", nil},
		{"PercentNotEscaped", "%%"},
		{"NoInterpolation", "%(KeyOff)s"},
		{"IgnoreSpace", "text"},
		{"RespectDoubleQuoteSpace", " text"},
		{"Escapes", "tab\there"},
		{"RawPath", `C:\new`},
		{"Hex", 31},
		{"Big", 1000000},
		{"Negative", -3},
		{"Ratio", 0.25},
		{"Hosts", []any{"localhost", "127.0.0.1"}},
		{"Pair", []any{1, "two"}},
		{"Single", 5},
		{"Databases", map[string]any{"default": map[string]any{"PORT": 5432, "HOST": "db"}}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := repo.Get(tt.key)
			if err != nil {
				t.Fatalf("Get(%q) error = %v", tt.key, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Get(%q) = %#v, want %#v", tt.key, got, tt.want)
			}
		})
	}

	for _, key := range []string{"CommentedKey", "_Private", "BASE_DIR", "Computed", "Sum", "Inner", "Attr", "os"} {
		if repo.Contains(key) {
			t.Errorf("Contains(%q) = true, want false", key)
		}
	}
}

func TestPyStatements(t *testing.T) {
	got := pyStatements("A = [\n  1,\n  2,\n]\nB = '(' # paren in string\n  C = 3\n")
	want := []string{"A = [   1,   2, ]", "B = '('"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("pyStatements() = %#v, want %#v", got, want)
	}
}
