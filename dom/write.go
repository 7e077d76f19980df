package dom

import (
	"io"
	"strings"

	"github.com/shabbyrobe/xmlwriter"
	"golang.org/x/text/encoding"
)

type writeOpts struct {
	encoding  string
	indent    string
	noDecl    bool
	transcode bool
}

type WriteOption func(*writeOpts)

// WithEncoding sets the encoding named in the XML declaration. Unless
// WithTranscode is given the text is written unchanged.
func WithEncoding(label string) WriteOption {
	return func(o *writeOpts) { o.encoding = label }
}

// WithIndent indents nested elements by s per level.
func WithIndent(s string) WriteOption {
	return func(o *writeOpts) { o.indent = s }
}

func WithoutDecl() WriteOption {
	return func(o *writeOpts) { o.noDecl = true }
}

// WithTranscode converts the output from UTF-8 into the declared encoding.
func WithTranscode(v bool) WriteOption {
	return func(o *writeOpts) { o.transcode = v }
}

// Write serialises the tree rooted at root.
func Write(w io.Writer, root *Node, opts ...WriteOption) error {
	o := &writeOpts{encoding: "UTF-8"}
	for _, opt := range opts {
		opt(o)
	}
	enc := encoding.Nop.NewEncoder()
	if o.transcode && !IsUTF8(o.encoding) {
		e, err := LookupEncoding(o.encoding)
		if err != nil {
			return err
		}
		enc = e.NewEncoder()
	}
	var xwOpts []xmlwriter.Option
	if o.indent != "" {
		xwOpts = append(xwOpts, xmlwriter.WithIndentString(o.indent))
	}
	xw := xmlwriter.OpenEncoding(w, o.encoding, enc, xwOpts...)
	if !o.noDecl {
		if err := xw.Start(xmlwriter.Doc{}); err != nil {
			return err
		}
	}
	if err := xw.Write(writable(root)); err != nil {
		return err
	}
	return xw.EndAllFlush()
}

func writable(n *Node) xmlwriter.Writable {
	switch n.Kind {
	case TextNode:
		return xmlwriter.Text(n.Data)
	case CDataNode:
		return xmlwriter.CData{Content: n.Data}
	}
	el := xmlwriter.Elem{Name: n.Name}
	for _, a := range n.Attrs {
		el.Attrs = append(el.Attrs, xmlwriter.Attr{Name: a.Name, Value: a.Value})
	}
	for _, c := range n.Children {
		if c.Kind == CDataNode {
			for _, part := range splitCData(c.Data) {
				el.Content = append(el.Content, xmlwriter.CData{Content: part})
			}
			continue
		}
		el.Content = append(el.Content, writable(c))
	}
	return el
}

// splitCData splits s so that no part contains the "]]>" terminator.
// Adjacent CDATA sections decode back to s.
func splitCData(s string) []string {
	var parts []string
	for {
		i := strings.Index(s, "]]>")
		if i == -1 {
			return append(parts, s)
		}
		parts = append(parts, s[:i+2])
		s = s[i+2:]
	}
}
