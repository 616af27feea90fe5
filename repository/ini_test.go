package repository

import (
	"os"
	"path/filepath"
	"testing"

	cferrors "github.com/randalmurphal/confkit/errors"
	"golang.org/x/text/encoding/charmap"
)

const iniFixture = `
[settings]
KeyTrue=True
KeyOne=1
KeyYes=yes
KeyOn=on

KeyFalse=False
KeyZero=0
KeyNo=no
KeyOff=off
KeyEmpty=

#CommentedKey=None
PercentIsEscaped=%%
Interpolation=%(KeyOff)s
EscapedReference=%%(KeyOff)s
Chained=%(Interpolation)s-%(KeyOne)s
IgnoreSpace = text
KeyOverrideByEnv=NotThis
`

func TestIni(t *testing.T) {
	repo, err := NewIni(writeFixture(t, "settings.ini", iniFixture))
	if err != nil {
		t.Fatalf("NewIni() error = %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"KeyTrue", "True"},
		{"KeyEmpty", ""},
		{"PercentIsEscaped", "%"},
		{"Interpolation", "off"},
		{"EscapedReference", "%(KeyOff)s"},
		{"Chained", "off-1"},
		{"IgnoreSpace", "text"},
		{"keyoverridebyenv", "NotThis"},
		{"KEYOFF", "off"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := repo.Get(tt.key)
			if err != nil {
				t.Fatalf("Get(%q) error = %v", tt.key, err)
			}
			if got != tt.want {
				t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}

	if repo.Contains("CommentedKey") {
		t.Error("commented key should not be present")
	}
	if _, err := repo.Get("UndefinedKey"); !cferrors.IsKeyNotFound(err) {
		t.Errorf("Get(UndefinedKey) error = %v, want key not found", err)
	}

	all, err := repo.All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if all["percentisescaped"] != "%" {
		t.Errorf("All()[percentisescaped] = %v, want %%", all["percentisescaped"])
	}
}

func TestIni_MissingSection(t *testing.T) {
	repo, err := NewIni(writeFixture(t, "settings.ini", "[other]\nKEY=value\n"))
	if err != nil {
		t.Fatalf("NewIni() error = %v", err)
	}
	if repo.Contains("KEY") {
		t.Error("key from another section should not be visible")
	}

	other, err := NewIni(repo.Path(), WithSection("other"))
	if err != nil {
		t.Fatalf("NewIni() error = %v", err)
	}
	if got, _ := other.Get("KEY"); got != "value" {
		t.Errorf("Get(KEY) = %v, want value", got)
	}
}

func TestIni_Encoding(t *testing.T) {
	encoded, err := charmap.Windows1251.NewEncoder().String("[settings]\nGREETING=Привет\n")
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "settings.ini")
	if err := os.WriteFile(path, []byte(encoded), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	repo, err := NewIni(path, WithEncoding("cp1251"))
	if err != nil {
		t.Fatalf("NewIni() error = %v", err)
	}
	if got, _ := repo.Get("GREETING"); got != "Привет" {
		t.Errorf("Get(GREETING) = %q, want %q", got, "Привет")
	}
}

func TestIni_UnknownEncoding(t *testing.T) {
	_, err := NewIni(writeFixture(t, "settings.ini", iniFixture), WithEncoding("no-such-charset"))
	if !cferrors.IsInvalidValue(err) {
		t.Fatalf("NewIni() error = %v, want invalid value", err)
	}
}

func TestIni_Missing(t *testing.T) {
	_, err := NewIni(filepath.Join(t.TempDir(), "settings.ini"))
	if !cferrors.IsDoesNotExist(err) {
		t.Fatalf("NewIni() error = %v, want does not exist", err)
	}
}

func TestIni_InterpolationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"undefined reference", "[settings]\nKEY=%(missing)s\n"},
		{"lone percent", "[settings]\nKEY=50%\n"},
		{"unterminated reference", "[settings]\nKEY=%(other\nother=x\n"},
		{"self reference", "[settings]\nKEY=%(KEY)s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := NewIni(writeFixture(t, "settings.ini", tt.content))
			if err != nil {
				t.Fatalf("NewIni() error = %v", err)
			}
			if _, err := repo.Get("KEY"); !cferrors.IsInvalidValue(err) {
				t.Errorf("Get(KEY) error = %v, want invalid value", err)
			}
			if _, err := repo.All(); !cferrors.IsInvalidValue(err) {
				t.Errorf("All() error = %v, want invalid value", err)
			}
		})
	}
}
