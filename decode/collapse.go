package decode

import (
	"github.com/signadot/go-usps/ir"
)

// Collapse replaces every group of exactly one member held by an object with
// that member, recursively. y is modified in place and returned.
func Collapse(y *ir.Node) *ir.Node {
	switch y.Type {
	case ir.ArrayType:
		for _, v := range y.Values {
			Collapse(v)
		}
	case ir.ObjectType:
		for i, v := range y.Values {
			Collapse(v)
			if v.Type == ir.ArrayType && len(v.Values) == 1 {
				y.Set(y.Fields[i], v.Values[0])
			}
		}
	}
	return y
}
