package libdiff

import (
	"github.com/signadot/go-usps/ir"
)

// Diff returns the changes turning from into to, in document order.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	return diff(res, from, to)
}

func diff(dst []Change, from, to *ir.Node) []Change {
	switch {
	case from == nil && to == nil:
		return dst
	case from == nil:
		return append(dst, Change{Path: to.Path(), Op: Add, To: to})
	case to == nil:
		return append(dst, Change{Path: from.Path(), Op: Remove, From: from})
	}
	if from.Type != to.Type {
		return append(dst, Change{Path: from.Path(), Op: Modify, From: from, To: to})
	}
	dst = diffAttrs(dst, from, to)
	switch from.Type {
	case ir.StringType, ir.CDataType:
		if from.String != to.String {
			dst = append(dst, Change{
				Path:   from.Path(),
				Op:     Modify,
				From:   from,
				To:     to,
				Inline: DiffString(from.String, to.String),
			})
		}
	case ir.NumberType, ir.BoolType:
		if from.Text() != to.Text() {
			dst = append(dst, Change{Path: from.Path(), Op: Modify, From: from, To: to})
		}
	case ir.ObjectType:
		dst = diffObject(dst, from, to)
	case ir.ArrayType:
		dst = DiffGroup(dst, from, to)
	}
	return dst
}

func diffObject(dst []Change, from, to *ir.Node) []Change {
	for i, f := range from.Fields {
		dst = diff(dst, from.Values[i], ir.Get(to, f))
	}
	for i, f := range to.Fields {
		if ir.Get(from, f) == nil {
			dst = diff(dst, nil, to.Values[i])
		}
	}
	return dst
}

func diffAttrs(dst []Change, from, to *ir.Node) []Change {
	for _, a := range from.Attrs {
		v, ok := to.Attr(a.Name)
		switch {
		case !ok:
			dst = append(dst, Change{Path: attrPath(from, a.Name), Op: Remove, From: a.Value})
		case v != a.Value.Text():
			dst = append(dst, Change{
				Path:   attrPath(from, a.Name),
				Op:     Modify,
				From:   a.Value,
				To:     attrValue(to, a.Name),
				Inline: DiffString(a.Value.Text(), v),
			})
		}
	}
	for _, a := range to.Attrs {
		if _, ok := from.Attr(a.Name); !ok {
			dst = append(dst, Change{Path: attrPath(to, a.Name), Op: Add, To: a.Value})
		}
	}
	return dst
}

func attrValue(y *ir.Node, name string) *ir.Node {
	for i := range y.Attrs {
		if y.Attrs[i].Name == name {
			return y.Attrs[i].Value
		}
	}
	return nil
}

func attrPath(y *ir.Node, name string) string {
	return y.Path() + "@" + name
}
