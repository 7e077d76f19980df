package ir

import (
	"strconv"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string

	// Fields[i] is the element name for Values[i] in an ObjectType node.
	Fields []string
	Values []*Node
	Attrs  []Attr

	String string
	Bool   bool
	Number string
}

// Attr is an element attribute. Value is a leaf node.
type Attr struct {
	Name  string
	Value *Node
}

func StringAttr(name, value string) Attr {
	return Attr{Name: name, Value: FromString(value)}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Number: strconv.FormatInt(v, 10)}
}

// FromNumber keeps the literal text of a number so that re-encoding does not
// alter its formatting.
func FromNumber(lit string) *Node {
	return &Node{Type: NumberType, Number: lit}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromCData(v string) *Node {
	return &Node{Type: CDataType, String: v}
}

// Object returns an empty ObjectType node.
func Object() *Node {
	return &Node{Type: ObjectType}
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := Object()
	res.Fields = make([]string, 0, len(kvs))
	res.Values = make([]*Node, 0, len(kvs))
	for i := range kvs {
		res.Set(kvs[i].Key, kvs[i].Val)
	}
	return res
}

// FromSlice returns a repeated group holding ySlice.
func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = ""
	}
	return res
}

// WithAttrs appends attrs to y and returns y.
func (y *Node) WithAttrs(attrs ...Attr) *Node {
	y.Attrs = append(y.Attrs, attrs...)
	return y
}

// Attr returns the value of the attribute called name.
func (y *Node) Attr(name string) (string, bool) {
	for i := range y.Attrs {
		if y.Attrs[i].Name == name {
			return y.Attrs[i].Value.Text(), true
		}
	}
	return "", false
}

// Set replaces the value under field or appends it when field is absent.
// y must be an ObjectType node.
func (y *Node) Set(field string, v *Node) *Node {
	for i, f := range y.Fields {
		if f == field {
			v.Parent = y
			v.ParentIndex = i
			v.ParentField = field
			y.Values[i] = v
			return y
		}
	}
	v.Parent = y
	v.ParentIndex = len(y.Values)
	v.ParentField = field
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
	return y
}

// Append adds v to the group under field, creating the group if needed. A
// non-group value already present under field becomes the group's first
// member.
func (y *Node) Append(field string, v *Node) *Node {
	cur := Get(y, field)
	switch {
	case cur == nil:
		return y.Set(field, FromSlice([]*Node{v}))
	case cur.Type != ArrayType:
		return y.Set(field, FromSlice([]*Node{cur, v}))
	}
	v.Parent = cur
	v.ParentIndex = len(cur.Values)
	cur.Values = append(cur.Values, v)
	return y
}

// Delete removes field from y, reporting whether it was present.
func (y *Node) Delete(field string) bool {
	for i, f := range y.Fields {
		if f != field {
			continue
		}
		y.Fields = append(y.Fields[:i], y.Fields[i+1:]...)
		y.Values = append(y.Values[:i], y.Values[i+1:]...)
		for j := i; j < len(y.Values); j++ {
			y.Values[j].ParentIndex = j
		}
		return true
	}
	return false
}

// Text returns the text content of a leaf. Booleans become "true" or
// "false"; other scalars are returned verbatim.
func (y *Node) Text() string {
	switch y.Type {
	case BoolType:
		return strconv.FormatBool(y.Bool)
	case NumberType:
		return y.Number
	case StringType, CDataType:
		return y.String
	default:
		return ""
	}
}

// Clone returns a deep copy of y detached from y's parent.
func (y *Node) Clone() *Node {
	res := y.CloneTo(&Node{})
	res.Parent = nil
	res.ParentIndex = 0
	res.ParentField = ""
	return res
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Number = y.Number
	dst.Fields = nil
	dst.Values = nil
	dst.Attrs = nil
	if y.Fields != nil {
		dst.Fields = make([]string, len(y.Fields))
		copy(dst.Fields, y.Fields)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	for i, yv := range y.Values {
		dstI := yv.CloneTo(&Node{})
		dstI.Parent = dst
		dst.Values[i] = dstI
	}
	if y.Attrs != nil {
		dst.Attrs = make([]Attr, len(y.Attrs))
	}
	for i, a := range y.Attrs {
		dst.Attrs[i] = Attr{Name: a.Name, Value: a.Value.Clone()}
	}
	return dst
}

func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for i, f := range y.Fields {
		if f == field {
			return y.Values[i]
		}
	}
	return nil
}

// Find searches y depth first for the first value stored under key.
func Find(y *Node, key string) *Node {
	if y == nil {
		return nil
	}
	switch y.Type {
	case ObjectType:
		for i, f := range y.Fields {
			if f == key {
				return y.Values[i]
			}
			if res := Find(y.Values[i], key); res != nil {
				return res
			}
		}
	case ArrayType:
		for _, v := range y.Values {
			if res := Find(v, key); res != nil {
				return res
			}
		}
	}
	return nil
}

// Group returns the members of a repeated group. Decoding collapses groups
// of one into their single member, so any other node is returned as a group
// of one.
func Group(y *Node) []*Node {
	if y == nil {
		return nil
	}
	if y.Type == ArrayType {
		return y.Values
	}
	return []*Node{y}
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
