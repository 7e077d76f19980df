package libdiff

import (
	"fmt"

	"github.com/signadot/go-usps/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Change is a single difference between two structures. Path locates the
// change in from (in to for additions); attribute paths end in "@name".
type Change struct {
	Path string
	Op   Op
	From *ir.Node
	To   *ir.Node

	// Inline holds a character diff when both sides are text leaves.
	Inline []diffpatch.Diff
}

func (c *Change) String() string {
	switch c.Op {
	case Add:
		return fmt.Sprintf("%s %s: %s", c.Op.Sign(), c.Path, summary(c.To))
	case Remove:
		return fmt.Sprintf("%s %s: %s", c.Op.Sign(), c.Path, summary(c.From))
	default:
		return fmt.Sprintf("%s %s: %s -> %s", c.Op.Sign(), c.Path, summary(c.From), summary(c.To))
	}
}

func summary(y *ir.Node) string {
	if y == nil {
		return "<nil>"
	}
	d, err := y.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<%s>", y.Type)
	}
	return string(d)
}
