package decode

import (
	"io"
	"strings"

	"github.com/signadot/go-usps/debug"
	"github.com/signadot/go-usps/dom"
	"github.com/signadot/go-usps/ir"
)

type DecState struct {
	keepGroups bool
}

// Decode decodes the XML document d.
func Decode(d []byte, opts ...DecodeOption) (*ir.Node, error) {
	ds := &DecState{}
	for _, opt := range opts {
		opt(ds)
	}
	root, err := dom.Parse(d)
	if err != nil {
		return nil, err
	}
	v := Convert(root)
	if !ds.keepGroups {
		v = Collapse(v)
	}
	res := ir.FromKeyVals([]ir.KeyVal{{Key: root.Name, Val: v}})
	if debug.Decode() {
		debug.Logf("decode <%s>: %s\n", root.Name, res)
	}
	return res, nil
}

func DecodeString(s string, opts ...DecodeOption) (*ir.Node, error) {
	return Decode([]byte(s), opts...)
}

func DecodeReader(r io.Reader, opts ...DecodeOption) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(d, opts...)
}

// Convert converts the element el into a value without collapsing: every
// child element value is placed in a group named after the child.
func Convert(el *dom.Node) *ir.Node {
	var res *ir.Node
	if children := el.Elements(); len(children) != 0 {
		res = ir.Object()
		for _, c := range children {
			res.Append(c.Name, Convert(c))
		}
	} else {
		res = leaf(el)
	}
	for _, a := range el.Attrs {
		res.Attrs = append(res.Attrs, ir.StringAttr(a.Name, a.Value))
	}
	return res
}

// xmlSpace is the set of characters trimmed from text and CDATA values.
const xmlSpace = " \t\n\r\x00\x0b"

// leaf returns the value of an element without child elements. Each text
// or CDATA child is trimmed and the last one decides the value; text that
// trims to nothing is skipped while CDATA always counts. Adjacent CDATA
// sections are joined first, as the encoder splits sections holding "]]>".
func leaf(el *dom.Node) *ir.Node {
	res := ir.FromString("")
	children := el.Children
	for i := 0; i < len(children); i++ {
		c := children[i]
		switch c.Kind {
		case dom.TextNode:
			if s := strings.Trim(c.Data, xmlSpace); s != "" {
				res = ir.FromString(s)
			}
		case dom.CDataNode:
			var b strings.Builder
			b.WriteString(c.Data)
			for i+1 < len(children) && children[i+1].Kind == dom.CDataNode {
				i++
				b.WriteString(children[i].Data)
			}
			res = ir.FromCData(strings.Trim(b.String(), xmlSpace))
		}
	}
	return res
}
