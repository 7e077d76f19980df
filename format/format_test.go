package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("%s: got %s", f, g)
		}
		short, err := ParseFormat(string(d[:1]))
		if err != nil || short != f {
			t.Errorf("%s: short form gave %s %v", f, short, err)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected bad format, got %v", err)
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		f    Format
		ok   bool
	}{
		{"a/b.xml", XMLFormat, true},
		{"b.JSON", JSONFormat, true},
		{"c.yml", YAMLFormat, true},
		{"d.yaml", YAMLFormat, true},
		{"e.txt", 0, false},
		{"-", 0, false},
	}
	for _, tt := range tests {
		f, ok := ForPath(tt.path)
		if f != tt.f || ok != tt.ok {
			t.Errorf("%s: got %s %t", tt.path, f, ok)
		}
	}
	if XMLFormat.Suffix() != ".xml" || YAMLFormat.Suffix() != ".yaml" {
		t.Error("suffix")
	}
}
