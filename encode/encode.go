package encode

import (
	"bytes"
	"io"
	"strconv"

	"github.com/signadot/go-usps/debug"
	"github.com/signadot/go-usps/dom"
	"github.com/signadot/go-usps/ir"
)

type EncState struct {
	encoding  string
	indent    string
	noDecl    bool
	transcode bool
}

// Encode writes node as an XML document whose root element is called root.
// Name errors are *ir.NameError and leave w untouched.
func Encode(root string, node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		encoding: "UTF-8",
	}
	for _, opt := range opts {
		opt(es)
	}
	tree, err := Build(root, node)
	if err != nil {
		return err
	}
	if debug.Encode() {
		debug.Logf("encode <%s> (%s): %s\n", root, es, node)
	}
	buf := bytes.NewBuffer(nil)
	if err := dom.Write(buf, tree, es.writeOpts()...); err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func EncodeString(root string, node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(root, node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Build returns the document tree for node under an element called root.
func Build(root string, node *ir.Node) (*dom.Node, error) {
	if !ir.IsValidName(root) {
		return nil, &ir.NameError{Name: root}
	}
	return build(root, node)
}

func build(name string, y *ir.Node) (*dom.Node, error) {
	el := dom.Element(name)
	for _, a := range y.Attrs {
		if !ir.IsValidName(a.Name) {
			return nil, &ir.NameError{Name: a.Name, Parent: name, Attr: true}
		}
		el.Attrs = append(el.Attrs, dom.Attr{Name: a.Name, Value: a.Value.Text()})
	}
	switch y.Type {
	case ir.StringType, ir.NumberType, ir.BoolType:
		return el.Append(dom.Text(y.Text())), nil
	case ir.CDataType:
		return el.Append(dom.CData(y.String)), nil
	case ir.ArrayType:
		// members of a group directly inside a group would be named by
		// their index, which is not a legal name.
		if len(y.Values) == 0 {
			return el, nil
		}
		return nil, &ir.NameError{Name: strconv.Itoa(0), Parent: name}
	}
	for i, field := range y.Fields {
		if !ir.IsValidName(field) {
			return nil, &ir.NameError{Name: field, Parent: name}
		}
		v := y.Values[i]
		if v.Type != ir.ArrayType {
			child, err := build(field, v)
			if err != nil {
				return nil, err
			}
			el.Append(child)
			continue
		}
		for _, member := range v.Values {
			child, err := build(field, member)
			if err != nil {
				return nil, err
			}
			el.Append(child)
		}
	}
	return el, nil
}
