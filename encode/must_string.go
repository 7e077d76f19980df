package encode

import (
	"github.com/signadot/go-usps/ir"
)

// MustString encodes node without an XML declaration and panics on error.
func MustString(root string, node *ir.Node) string {
	s, err := EncodeString(root, node, NoDecl())
	if err != nil {
		panic(err)
	}
	return s
}
