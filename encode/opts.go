package encode

import (
	"strings"

	"github.com/signadot/go-usps/dom"
)

type EncodeOption func(*EncState)

// Encoding sets the encoding named in the XML declaration, UTF-8 by
// default. The text itself is not converted unless Transcode is set.
func Encoding(label string) EncodeOption {
	return func(es *EncState) { es.encoding = label }
}

// Indent pretty prints the document with two spaces per level.
func Indent(v bool) EncodeOption {
	return func(es *EncState) {
		es.indent = ""
		if v {
			es.indent = "  "
		}
	}
}

func IndentString(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

// NoDecl omits the XML declaration.
func NoDecl() EncodeOption {
	return func(es *EncState) { es.noDecl = true }
}

func Transcode(v bool) EncodeOption {
	return func(es *EncState) { es.transcode = v }
}

func (es *EncState) writeOpts() []dom.WriteOption {
	res := []dom.WriteOption{
		dom.WithEncoding(es.encoding),
		dom.WithTranscode(es.transcode),
	}
	if es.indent != "" {
		res = append(res, dom.WithIndent(es.indent))
	}
	if es.noDecl {
		res = append(res, dom.WithoutDecl())
	}
	return res
}

// String describes the effective options, for debug output.
func (es *EncState) String() string {
	parts := []string{"encoding=" + es.encoding}
	if es.indent != "" {
		parts = append(parts, "indent")
	}
	if es.noDecl {
		parts = append(parts, "nodecl")
	}
	if es.transcode {
		parts = append(parts, "transcode")
	}
	return strings.Join(parts, " ")
}
