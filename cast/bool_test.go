package cast

import (
	"errors"
	"strings"
	"sync"
	"testing"

	cferrors "github.com/randalmurphal/confkit/errors"
)

func TestStrToBool(t *testing.T) {
	trueValues := []string{"y", "yes", "t", "true", "on", "1", "Y", "YES", "Yes", "TRUE", "On"}
	for _, v := range trueValues {
		got, err := StrToBool(v)
		if err != nil {
			t.Errorf("StrToBool(%q) error: %v", v, err)
		}
		if !got {
			t.Errorf("StrToBool(%q) = false, want true", v)
		}
	}

	falseValues := []string{"n", "no", "f", "false", "off", "0", "N", "NO", "FALSE", "Off"}
	for _, v := range falseValues {
		got, err := StrToBool(v)
		if err != nil {
			t.Errorf("StrToBool(%q) error: %v", v, err)
		}
		if got {
			t.Errorf("StrToBool(%q) = true, want false", v)
		}
	}
}

func TestStrToBool_Invalid(t *testing.T) {
	for _, v := range []string{"maybe", "MAYBE", "Invalid_Value_1", "2", ""} {
		_, err := StrToBool(v)
		if !errors.Is(err, cferrors.ErrInvalidValue) {
			t.Errorf("StrToBool(%q) error = %v, want ErrInvalidValue", v, err)
			continue
		}
		if !strings.Contains(err.Error(), "invalid truth value") {
			t.Errorf("StrToBool(%q) error = %q, want it to mention invalid truth value", v, err)
		}
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    bool
		wantErr bool
	}{
		{name: "native true", value: true, want: true},
		{name: "native false", value: false, want: false},
		{name: "nil", value: nil, want: false},
		{name: "empty string", value: "", want: false},
		{name: "yes", value: "yes", want: true},
		{name: "upper on", value: "ON", want: true},
		{name: "int one", value: 1, want: true},
		{name: "int zero", value: 0, want: false},
		{name: "float one", value: 1.0, want: true},
		{name: "maybe", value: "maybe", wantErr: true},
		{name: "not bool", value: "NotBool", wantErr: true},
		{name: "two", value: 2, wantErr: true},
		{name: "raw bytes", value: []byte("true"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToBool(tt.value)
			if tt.wantErr {
				if !cferrors.IsInvalidValue(err) {
					t.Fatalf("ToBool(%#v) error = %v, want invalid value", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToBool(%#v) unexpected error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("ToBool(%#v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestBool_ErrorNamesInput(t *testing.T) {
	_, err := Bool("maybe")
	if err == nil || !strings.Contains(err.Error(), "maybe") {
		t.Fatalf("Bool error = %v, want it to name the input", err)
	}
}

func TestStrToBool_Concurrent(t *testing.T) {
	tokens := []string{"YES", "Off", "TRUE", "nO", "On", "F"}
	want := []bool{true, false, true, false, true, false}

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				idx := i % len(tokens)
				got, err := StrToBool(tokens[idx])
				if err != nil || got != want[idx] {
					t.Errorf("StrToBool(%q) = %v, %v, want %v", tokens[idx], got, err, want[idx])
					return
				}
			}
		}()
	}
	wg.Wait()
}
