package ir

import "fmt"

// Type is the kind of value a Node holds.
type Type int

const (
	StringType Type = iota
	NumberType
	BoolType
	CDataType
	ObjectType
	ArrayType
)

var typeNames = [...]string{
	StringType: "String",
	NumberType: "Number",
	BoolType:   "Bool",
	CDataType:  "CData",
	ObjectType: "Object",
	ArrayType:  "Array",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

func (t Type) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(typeNames) {
		return nil, fmt.Errorf("invalid type %d", int(t))
	}
	return []byte(typeNames[t]), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for i, name := range typeNames {
		if name == string(d) {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

// Types returns every type in declaration order.
func Types() []Type {
	res := make([]Type, len(typeNames))
	for i := range res {
		res[i] = Type(i)
	}
	return res
}

// IsLeaf reports whether nodes of type t hold text rather than children.
func (t Type) IsLeaf() bool {
	return t != ObjectType && t != ArrayType
}

// IsScalar reports whether t is a plain text scalar (not CDATA).
func (t Type) IsScalar() bool {
	return t == StringType || t == NumberType || t == BoolType
}
