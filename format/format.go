package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a document syntax: xml, or one of the structure syntaxes json
// and yaml.
type Format int

const (
	XMLFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

type formatInfo struct {
	name     string
	suffixes []string
}

// the first suffix is the canonical one.
var formats = [...]formatInfo{
	XMLFormat:  {name: "xml", suffixes: []string{".xml"}},
	JSONFormat: {name: "json", suffixes: []string{".json"}},
	YAMLFormat: {name: "yaml", suffixes: []string{".yaml", ".yml"}},
}

func (f Format) info() (formatInfo, bool) {
	if f < 0 || int(f) >= len(formats) {
		return formatInfo{}, false
	}
	return formats[f], true
}

// ParseFormat accepts a format name or its first letter.
func ParseFormat(v string) (Format, error) {
	for i, fi := range formats {
		if v == fi.name || v == fi.name[:1] {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	fi, ok := f.info()
	if !ok {
		return fmt.Sprintf("<err: %d is not a format>", int(f))
	}
	return fi.name
}

func (f Format) MarshalText() ([]byte, error) {
	fi, ok := f.info()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(fi.name), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsXML() bool  { return f == XMLFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix returns the file extension for f, including the dot.
func (f Format) Suffix() string {
	fi, ok := f.info()
	if !ok {
		return ""
	}
	return fi.suffixes[0]
}

// ForPath returns the format named by the extension of path.
func ForPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return 0, false
	}
	for i, fi := range formats {
		for _, s := range fi.suffixes {
			if s == ext {
				return Format(i), true
			}
		}
	}
	return 0, false
}

// AllFormats returns all supported formats.
func AllFormats() []Format {
	res := make([]Format, len(formats))
	for i := range res {
		res[i] = Format(i)
	}
	return res
}
