package usps

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/go-usps/ir"
)

// fieldSet is an ordered set of request fields. Setting a field again
// replaces its value in place.
type fieldSet struct {
	node *ir.Node
}

func (f *fieldSet) set(key string, v any) {
	if f.node == nil {
		f.node = ir.Object()
	}
	f.node.Set(fieldName(key), toNode(v))
}

func (f *fieldSet) fields() *ir.Node {
	if f.node == nil {
		return ir.Object()
	}
	return f.node.Clone()
}

// fieldName upper-cases the first letter of each word of key.
func fieldName(key string) string {
	words := strings.Split(key, " ")
	for i, w := range words {
		r, n := utf8.DecodeRuneInString(w)
		if n == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[n:]
	}
	return strings.Join(words, " ")
}

func toNode(v any) *ir.Node {
	switch x := v.(type) {
	case *ir.Node:
		return x.Clone()
	case string:
		return ir.FromString(x)
	case int:
		return ir.FromInt(int64(x))
	case int64:
		return ir.FromInt(x)
	case bool:
		return ir.FromBool(x)
	case fmt.Stringer:
		return ir.FromString(x.String())
	default:
		return ir.FromString(fmt.Sprint(x))
	}
}

// group appends member to the group under key of req, with an ID attribute
// holding id, or the member's 1-based position when id is empty.
func group(req *ir.Node, key string, member *ir.Node, id string) {
	if id == "" {
		id = fmt.Sprint(len(ir.Group(ir.Get(req, key))) + 1)
	}
	member.Attrs = append([]ir.Attr{ir.StringAttr("ID", id)}, member.Attrs...)
	req.Append(key, member)
}
