package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
	"github.com/mattn/go-isatty"
	"github.com/signadot/go-usps/format"
	"github.com/signadot/go-usps/ir"
)

type renderOpts struct {
	format  format.Format
	colors  *Colors
	indent  string
	compact bool
}

type RenderOption func(*renderOpts)

// Format selects JSON (the default) or YAML.
func Format(f format.Format) RenderOption {
	return func(o *renderOpts) { o.format = f }
}

func WithColors(c *Colors) RenderOption {
	return func(o *renderOpts) { o.colors = c }
}

// Compact writes JSON on a single line.
func Compact() RenderOption {
	return func(o *renderOpts) { o.compact = true }
}

// AutoColor returns colours when w is a terminal and nil otherwise.
func AutoColor(w io.Writer) *Colors {
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return NewColors()
	}
	return nil
}

func Render(w io.Writer, y *ir.Node, opts ...RenderOption) error {
	o := &renderOpts{format: format.JSONFormat, indent: "  "}
	for _, opt := range opts {
		opt(o)
	}
	switch o.format {
	case format.JSONFormat:
		buf := bytes.NewBuffer(nil)
		r := &jsonRenderer{buf: buf, opts: o}
		if err := r.value(y, 0); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err := w.Write(buf.Bytes())
		return err
	case format.YAMLFormat:
		d, err := ir.ToYAML(y)
		if err != nil {
			return err
		}
		if o.colors != nil {
			d = []byte(o.colorYAML(string(d)))
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: cannot render %s", format.ErrBadFormat, o.format)
	}
}

func RenderString(y *ir.Node, opts ...RenderOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Render(buf, y, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type jsonRenderer struct {
	buf  *bytes.Buffer
	opts *renderOpts
}

func (r *jsonRenderer) sep(t ir.Type, s string) {
	r.buf.WriteString(r.opts.colors.Color(t, SepColor, s))
}

func (r *jsonRenderer) newline(depth int) {
	if r.opts.compact {
		return
	}
	r.buf.WriteByte('\n')
	r.buf.WriteString(strings.Repeat(r.opts.indent, depth))
}

func (r *jsonRenderer) key(t ir.Type, a ColorAttr, k string, depth, i int) {
	if i > 0 {
		r.sep(t, ",")
	}
	r.newline(depth)
	r.buf.WriteString(r.opts.colors.Color(t, a, quote(k)))
	r.sep(t, ":")
	if !r.opts.compact {
		r.buf.WriteByte(' ')
	}
}

func (r *jsonRenderer) scalar(y *ir.Node) error {
	d, err := y.MarshalJSON()
	if err != nil {
		return err
	}
	r.buf.WriteString(r.opts.colors.Color(y.Type, ValueColor, string(d)))
	return nil
}

func (r *jsonRenderer) value(y *ir.Node, depth int) error {
	if y.Type == ir.ArrayType {
		r.sep(ir.ArrayType, "[")
		for i, v := range y.Values {
			if i > 0 {
				r.sep(ir.ArrayType, ",")
			}
			r.newline(depth + 1)
			if err := r.value(v, depth+1); err != nil {
				return err
			}
		}
		if len(y.Values) != 0 {
			r.newline(depth)
		}
		r.sep(ir.ArrayType, "]")
		return nil
	}
	if y.Type.IsScalar() && len(y.Attrs) == 0 {
		return r.scalar(y)
	}
	r.sep(ir.ObjectType, "{")
	n := 0
	if len(y.Attrs) != 0 {
		r.key(y.Type, ReservedColor, ir.AttributesKey, depth+1, n)
		n++
		r.sep(ir.ObjectType, "{")
		for i, a := range y.Attrs {
			r.key(y.Type, AttrColor, a.Name, depth+2, i)
			if err := r.scalar(a.Value); err != nil {
				return err
			}
		}
		r.newline(depth + 1)
		r.sep(ir.ObjectType, "}")
	}
	switch y.Type {
	case ir.StringType, ir.NumberType, ir.BoolType:
		r.key(y.Type, ReservedColor, ir.ValueKey, depth+1, n)
		n++
		leaf := *y
		leaf.Attrs = nil
		if err := r.scalar(&leaf); err != nil {
			return err
		}
	case ir.CDataType:
		r.key(y.Type, ReservedColor, ir.CDataKey, depth+1, n)
		n++
		r.buf.WriteString(r.opts.colors.Color(ir.CDataType, ValueColor, quote(y.String)))
	case ir.ObjectType:
		for i, f := range y.Fields {
			r.key(ir.ObjectType, FieldColor, f, depth+1, n)
			n++
			if err := r.value(y.Values[i], depth+1); err != nil {
				return err
			}
		}
	}
	if n != 0 {
		r.newline(depth)
	}
	r.sep(ir.ObjectType, "}")
	return nil
}

func quote(s string) string {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

func (o *renderOpts) colorYAML(src string) string {
	property := func(t ir.Type, a ColorAttr) printer.PrintFunc {
		prefix, suffix := o.colors.affixes(t, a)
		return func() *printer.Property {
			return &printer.Property{Prefix: prefix, Suffix: suffix}
		}
	}
	p := printer.Printer{
		MapKey: property(ir.ObjectType, FieldColor),
		Bool:   property(ir.BoolType, ValueColor),
		String: property(ir.StringType, ValueColor),
		Number: property(ir.NumberType, ValueColor),
	}
	res := p.PrintTokens(lexer.Tokenize(src))
	if !strings.HasSuffix(res, "\n") {
		res += "\n"
	}
	return res
}
