package libdiff

import (
	"github.com/signadot/go-usps/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffGroup appends the changes between the members of two groups to dst.
// Members are aligned by a character diff over one symbol per member, so a
// member inserted in the middle of a group is reported once rather than as
// a change to every member after it. Objects all share one symbol and are
// compared field by field when aligned. A removal immediately followed by an
// insertion is reported as a modification.
func DiffGroup(dst []Change, from, to *ir.Node) []Change {
	syms := symbols{}
	a, b := syms.of(from.Values), syms.of(to.Values)
	diffs := diffpatch.New().DiffMainRunes(a, b, false)

	g := groupDiff{dst: dst, from: from.Values, to: to.Values}
	for _, d := range diffs {
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffEqual:
			g.dropRemoved()
			for ; n > 0; n-- {
				g.dst = diff(g.dst, g.from[g.fi], g.to[g.ti])
				g.fi++
				g.ti++
			}
		case diffpatch.DiffDelete:
			g.dropRemoved()
			g.removed = g.from[g.fi : g.fi+n]
			g.fi += n
		case diffpatch.DiffInsert:
			for ; n > 0; n-- {
				var was *ir.Node
				if len(g.removed) != 0 {
					was, g.removed = g.removed[0], g.removed[1:]
				}
				g.dst = diff(g.dst, was, g.to[g.ti])
				g.ti++
			}
		}
	}
	g.dropRemoved()
	return g.dst
}

type groupDiff struct {
	dst      []Change
	from, to []*ir.Node
	fi, ti   int
	removed  []*ir.Node
}

func (g *groupDiff) dropRemoved() {
	for _, y := range g.removed {
		g.dst = diff(g.dst, y, nil)
	}
	g.removed = nil
}

// symbols assigns one rune to each distinct member summary.
type symbols map[string]rune

func (s symbols) of(members []*ir.Node) []rune {
	res := make([]rune, len(members))
	for i, y := range members {
		key := y.Type.String()
		if y.Type.IsLeaf() {
			key += ":" + y.Text()
		}
		r, ok := s[key]
		if !ok {
			r = rune(len(s))
			s[key] = r
		}
		res[i] = r
	}
	return res
}
