package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Reverse returns the changes turning to back into from.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{Path: c.Path, From: c.To, To: c.From}
		switch c.Op {
		case Add:
			r.Op = Remove
		case Remove:
			r.Op = Add
		default:
			r.Op = Modify
		}
		if c.Inline != nil {
			r.Inline = make([]diffpatch.Diff, len(c.Inline))
			for j, d := range c.Inline {
				switch d.Type {
				case diffpatch.DiffInsert:
					d.Type = diffpatch.DiffDelete
				case diffpatch.DiffDelete:
					d.Type = diffpatch.DiffInsert
				}
				r.Inline[j] = d
			}
		}
		res[i] = r
	}
	return res
}
