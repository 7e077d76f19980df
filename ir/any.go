package ir

// ToAny converts y to plain Go values: objects become map[string]any (with
// attributes under "@attributes" and leaf text under "@value" or "@cdata"
// when attributes are present), groups become []any and scalars become
// string, bool or the literal text of numbers.
func ToAny(y *Node) any {
	if y == nil {
		return nil
	}
	if y.Type == ArrayType {
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	}
	if y.Type.IsScalar() && len(y.Attrs) == 0 {
		return scalarAny(y)
	}
	res := make(map[string]any, len(y.Fields)+2)
	if len(y.Attrs) != 0 {
		attrs := make(map[string]any, len(y.Attrs))
		for _, a := range y.Attrs {
			attrs[a.Name] = scalarAny(a.Value)
		}
		res[AttributesKey] = attrs
	}
	switch y.Type {
	case StringType, NumberType, BoolType:
		res[ValueKey] = scalarAny(y)
	case CDataType:
		res[CDataKey] = y.String
	case ObjectType:
		for i, f := range y.Fields {
			res[f] = ToAny(y.Values[i])
		}
	}
	return res
}

func scalarAny(y *Node) any {
	if y.Type == BoolType {
		return y.Bool
	}
	return y.Text()
}

// ReorderLike reorders the fields and attributes of nodes in y to follow the
// order of the corresponding nodes in like. Fields absent from like keep their
// relative order after the known ones. It is used after transformations
// which lose object ordering.
func ReorderLike(y, like *Node) {
	if y == nil || like == nil {
		return
	}
	switch y.Type {
	case ArrayType:
		if like.Type != ArrayType {
			return
		}
		for i, v := range y.Values {
			if i < len(like.Values) {
				ReorderLike(v, like.Values[i])
			}
		}
		return
	case ObjectType:
	default:
		reorderAttrs(y, like)
		return
	}
	reorderAttrs(y, like)
	if like.Type != ObjectType {
		return
	}
	order := make(map[string]int, len(like.Fields))
	for i, f := range like.Fields {
		order[f] = i
	}
	fields := make([]string, 0, len(y.Fields))
	values := make([]*Node, 0, len(y.Values))
	for _, f := range like.Fields {
		if v := Get(y, f); v != nil {
			fields = append(fields, f)
			values = append(values, v)
		}
	}
	for i, f := range y.Fields {
		if _, ok := order[f]; !ok {
			fields = append(fields, f)
			values = append(values, y.Values[i])
		}
	}
	y.Fields = fields
	y.Values = values
	for i, v := range y.Values {
		v.ParentIndex = i
		ReorderLike(v, Get(like, y.Fields[i]))
	}
}

func reorderAttrs(y, like *Node) {
	if len(y.Attrs) < 2 {
		return
	}
	attrs := make([]Attr, 0, len(y.Attrs))
	seen := make(map[string]bool, len(y.Attrs))
	for _, la := range like.Attrs {
		for _, a := range y.Attrs {
			if a.Name == la.Name && !seen[a.Name] {
				attrs = append(attrs, a)
				seen[a.Name] = true
			}
		}
	}
	for _, a := range y.Attrs {
		if !seen[a.Name] {
			attrs = append(attrs, a)
		}
	}
	y.Attrs = attrs
}
