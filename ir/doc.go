// Package ir provides the in-memory representation of structured values
// exchanged with XML APIs.
//
// # Overview
//
// A Node is a recursive tagged union. Which fields are meaningful depends on
// the node's Type:
//
//   - StringType: text under String; the empty string stands for absent text
//   - NumberType: the literal text of a number under Number
//   - BoolType: Bool, encoded as the text "true" or "false"
//   - CDataType: CDATA content under String
//   - ObjectType: ordered children, Fields[i] naming Values[i]
//   - ArrayType: a repeated group; Values are siblings sharing one name
//
// Every node except a group may carry ordered attributes in Attrs. A leaf
// node carrying attributes corresponds to an element with attributes and
// text content; a leaf can never have element children.
//
// # Object order
//
// The order of Fields is significant: it is the order in which elements are
// written. Constructors and Set preserve insertion order, and the JSON and
// YAML bridges preserve document order.
//
// # Reserved keys
//
// Outside of Go, structures are written as JSON or YAML using reserved keys:
//
//	{
//	  "@attributes": {"ID": "1"},
//	  "Zip5": "91730",
//	  "Note": {"@attributes": {"lang": "en"}, "@value": "fragile"},
//	  "Raw": {"@cdata": "<b>as is</b>"}
//	}
//
// "@attributes" holds attributes, "@value" the text of a leaf which also has
// attributes and "@cdata" CDATA content. A mapping holding "@value" or
// "@cdata" is a leaf and its other keys are ignored.
//
// # Groups and collapsing
//
// Decoding XML collapses a group with a single member into that member, so a
// tag which happens to occur once is indistinguishable from a tag which is
// inherently singular. Use Group to read a possibly collapsed value as a list,
// and paths such as "Address[0]" which address a lone value as a group of one.
//
// # Names
//
// IsValidName implements the element and attribute name grammar enforced
// when encoding.
package ir
