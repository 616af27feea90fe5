package repository

import (
	"testing"

	cferrors "github.com/randalmurphal/confkit/errors"
)

const yamlFixture = `
KeyTrue: True
KeyOne: 1
KeyYes: yes
KeyOn: on

KeyFalse: False
KeyZero: 0
KeyNo: no
KeyOff: off
KeyEmpty:

KeyList:
    - 1
    - 2
    - 3

KeyDict:
    KeyTest: test

#CommentedKey: None
IgnoreSpace: text
RespectSingleQuoteSpace: ' text'
RespectDoubleQuoteSpace: " text"
KeyOverrideByEnv: NotThis
PercentNotEscaped: 90%
`

func TestYAML(t *testing.T) {
	repo, err := NewYAML(writeFixture(t, "settings.yaml", yamlFixture))
	if err != nil {
		t.Fatalf("NewYAML() error = %v", err)
	}

	if got, _ := repo.Get("KeyTrue"); got != true {
		t.Errorf("Get(KeyTrue) = %#v, want native true", got)
	}
	if got, _ := repo.Get("KeyOne"); got != 1 {
		t.Errorf("Get(KeyOne) = %#v, want 1", got)
	}
	if got, _ := repo.Get("KeyYes"); got != "yes" {
		t.Errorf("Get(KeyYes) = %#v, want yes", got)
	}
	if got, err := repo.Get("KeyEmpty"); err != nil || got != nil {
		t.Errorf("Get(KeyEmpty) = %#v, %v, want nil value", got, err)
	}
	if got, _ := repo.Get("KeyList"); len(got.([]any)) != 3 {
		t.Errorf("Get(KeyList) = %#v, want a 3-item list", got)
	}
	if got, _ := repo.Get("KeyDict"); got.(map[string]any)["KeyTest"] != "test" {
		t.Errorf("Get(KeyDict) = %#v, want mapping with KeyTest", got)
	}
	for key, want := range map[string]string{
		"IgnoreSpace":             "text",
		"RespectSingleQuoteSpace": " text",
		"RespectDoubleQuoteSpace": " text",
		"PercentNotEscaped":       "90%",
	} {
		if got, _ := repo.Get(key); got != want {
			t.Errorf("Get(%s) = %#v, want %q", key, got, want)
		}
	}
	if repo.Contains("CommentedKey") {
		t.Error("commented key should not be present")
	}
}

func TestYAML_EmptyDocument(t *testing.T) {
	repo, err := NewYAMLString("")
	if err != nil {
		t.Fatalf("NewYAMLString() error = %v", err)
	}
	all, _ := repo.All()
	if len(all) != 0 {
		t.Errorf("All() = %v, want empty", all)
	}
}

func TestYAML_TopLevelNotMapping(t *testing.T) {
	_, err := NewYAMLString("- a\n- b\n")
	if !cferrors.IsUnsupportedFormat(err) {
		t.Fatalf("NewYAMLString() error = %v, want unsupported format", err)
	}
}

func TestYAML_NonStringKeys(t *testing.T) {
	repo, err := NewYAMLString("1: one\ntrue: yes\n")
	if err != nil {
		t.Fatalf("NewYAMLString() error = %v", err)
	}
	if got, _ := repo.Get("1"); got != "one" {
		t.Errorf("Get(1) = %#v, want one", got)
	}
}
