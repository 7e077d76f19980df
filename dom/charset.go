package dom

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

var (
	utf8BOM      = []byte{0xEF, 0xBB, 0xBF}
	declEncoding = regexp.MustCompile(`^\s*<\?xml[^>]*?\sencoding\s*=\s*["']([A-Za-z0-9._:-]+)["']`)
)

// IsUTF8 reports whether label names UTF-8.
func IsUTF8(label string) bool {
	switch strings.ToLower(label) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

// LookupEncoding returns the IANA registered encoding called label.
func LookupEncoding(label string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", label)
	}
	return enc, nil
}

// declaredEncoding returns the encoding named in the XML declaration of d.
func declaredEncoding(d []byte) string {
	head := d
	if len(head) > 256 {
		head = head[:256]
	}
	m := declEncoding.FindSubmatch(head)
	if m == nil {
		return ""
	}
	return string(m[1])
}

// toUTF8 transcodes documents declaring another encoding to UTF-8.
func toUTF8(d []byte) ([]byte, error) {
	d = bytes.TrimPrefix(d, utf8BOM)
	label := declaredEncoding(d)
	if IsUTF8(label) {
		return d, nil
	}
	enc, err := LookupEncoding(label)
	if err != nil {
		return nil, err
	}
	res, err := enc.NewDecoder().Bytes(d)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", label, err)
	}
	return res, nil
}
