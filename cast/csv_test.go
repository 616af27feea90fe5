package cast

import (
	"reflect"
	"strings"
	"testing"

	cferrors "github.com/randalmurphal/confkit/errors"
)

func TestCSV(t *testing.T) {
	tests := []struct {
		name  string
		cast  Func
		input any
		want  any
	}{
		{
			name:  "hosts",
			cast:  CSV(),
			input: "127.0.0.1, .localhost, .herokuapp.com",
			want:  []string{"127.0.0.1", ".localhost", ".herokuapp.com"},
		},
		{
			name:  "int items",
			cast:  CSV(WithItemCast(Int)),
			input: "1,2,3,4,5",
			want:  []any{1, 2, 3, 4, 5},
		},
		{
			name: "custom delimiter and strip",
			cast: CSV(
				WithItemCast(func(v any) (any, error) { return strings.ToUpper(v.(string)), nil }),
				WithDelimiter("\t"),
				WithStrip(" %*"),
			),
			input: "%virtual_env%\t *important stuff*\t   trailing spaces   ",
			want:  []any{"VIRTUAL_ENV", "IMPORTANT STUFF", "TRAILING SPACES"},
		},
		{
			name:  "single quoted segment",
			cast:  CSV(),
			input: ` foo ,'bar, baz', 'qux'`,
			want:  []string{"foo", "bar, baz", "qux"},
		},
		{
			name:  "double quoted segment",
			cast:  CSV(),
			input: ` foo ,"bar, baz", "qux"`,
			want:  []string{"foo", "bar, baz", "qux"},
		},
		{
			name:  "single quotes inside double",
			cast:  CSV(),
			input: ` foo ,"'bar, baz'", "'qux"`,
			want:  []string{"foo", "'bar, baz'", "'qux"},
		},
		{
			name:  "double quotes inside single",
			cast:  CSV(),
			input: ` foo ,'"bar, baz"', '"qux'`,
			want:  []string{"foo", `"bar, baz"`, `"qux`},
		},
		{
			name:  "escaped delimiter",
			cast:  CSV(),
			input: `a\,b,c`,
			want:  []string{"a,b", "c"},
		},
		{
			name:  "collapsed delimiters",
			cast:  CSV(),
			input: "a,,b,",
			want:  []string{"a", "b"},
		},
		{
			name:  "nil input",
			cast:  CSV(),
			input: nil,
			want:  []string{},
		},
		{
			name:  "nil input with item cast",
			cast:  CSV(WithItemCast(Int)),
			input: nil,
			want:  []any{},
		},
		{
			name:  "native list",
			cast:  CSV(WithItemCast(Int)),
			input: []any{"1", 2},
			want:  []any{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cast(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestCSV_PostProcess(t *testing.T) {
	got, err := CSV(WithPostProcess(Set))("a, b, a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[any]struct{}{"a": {}, "b": {}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestCSV_UnbalancedQuote(t *testing.T) {
	_, err := CSV()(`a,'b`)
	if !cferrors.IsInvalidValue(err) {
		t.Fatalf("error = %v, want invalid value", err)
	}
}

func TestCSV_ItemCastError(t *testing.T) {
	_, err := CSV(WithItemCast(Int))("1,two")
	if !cferrors.IsInvalidValue(err) {
		t.Fatalf("error = %v, want invalid value", err)
	}
}
