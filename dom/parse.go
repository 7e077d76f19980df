package dom

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/go-usps/ir"
)

var cdataStart = []byte("<![CDATA[")

// Parse parses a complete XML document. Comments, processing instructions
// and directives are dropped. Errors are *ir.ParseError.
func Parse(d []byte) (*Node, error) {
	src, err := toUTF8(d)
	if err != nil {
		return nil, &ir.ParseError{Err: err}
	}
	dec := xml.NewDecoder(bytes.NewReader(src))
	// src is UTF-8 by now whatever the declaration says.
	dec.CharsetReader = func(_ string, r io.Reader) (io.Reader, error) {
		return r, nil
	}
	var (
		root  *Node
		stack []*Node
	)
	for {
		off := dec.InputOffset()
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, syntaxError(dec, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := Element(qname(t.Name))
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: qname(a.Name), Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, syntaxError(dec, fmt.Errorf("multiple root elements: <%s> after <%s>", el.Name, root.Name))
				}
				root = el
			} else {
				stack[len(stack)-1].Append(el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			name := qname(t.Name)
			if len(stack) == 0 {
				return nil, syntaxError(dec, fmt.Errorf("unexpected end element </%s>", name))
			}
			top := stack[len(stack)-1]
			if top.Name != name {
				return nil, syntaxError(dec, fmt.Errorf("element <%s> closed by </%s>", top.Name, name))
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			isCData := bytes.HasPrefix(src[off:], cdataStart)
			if len(stack) == 0 {
				if isCData || len(bytes.TrimSpace(t)) != 0 {
					return nil, syntaxError(dec, errors.New("character data outside root element"))
				}
				continue
			}
			child := Text(string(t))
			if isCData {
				child.Kind = CDataNode
			}
			stack[len(stack)-1].Append(child)
		}
	}
	if len(stack) != 0 {
		return nil, syntaxError(dec, fmt.Errorf("unexpected EOF: <%s> not closed", stack[len(stack)-1].Name))
	}
	if root == nil {
		return nil, &ir.ParseError{Err: errors.New("no root element")}
	}
	return root, nil
}

func qname(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func syntaxError(dec *xml.Decoder, err error) error {
	var se *xml.SyntaxError
	if errors.As(err, &se) {
		return &ir.ParseError{Line: se.Line, Err: errors.New(se.Msg)}
	}
	line, _ := dec.InputPos()
	return &ir.ParseError{Line: line, Err: err}
}
