package ir

// Equal reports whether a and b hold the same structure: same types, same
// text, same attributes in the same order and same children in the same
// order. Parent links are ignored.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	if !equalAttrs(a.Attrs, b.Attrs) {
		return false
	}
	switch a.Type {
	case StringType, CDataType:
		return a.String == b.String
	case NumberType:
		return a.Number == b.Number
	case BoolType:
		return a.Bool == b.Bool
	case ArrayType:
		return equalValues(a.Values, b.Values)
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i] != b.Fields[i] {
				return false
			}
		}
		return equalValues(a.Values, b.Values)
	}
	return false
}

func equalValues(as, bs []*Node) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !Equal(as[i], bs[i]) {
			return false
		}
	}
	return true
}

func equalAttrs(as, bs []Attr) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if as[i].Name != bs[i].Name {
			return false
		}
		if !Equal(as[i].Value, bs[i].Value) {
			return false
		}
	}
	return true
}
