// Package decode decodes XML documents into structured values.
//
// The result of decoding is an object with a single field named after the
// document's root element:
//
//	<Response><Zip5>91730</Zip5></Response>
//
// decodes to
//
//	{"Response": {"Zip5": "91730"}}
//
// Child elements are accumulated by name into repeated groups, and groups
// holding a single member are then collapsed into that member (see Collapse).
// Collapsing loses the distinction between "one child" and "a group of one";
// use KeepGroups to retain every group, or ir.Group to read a value that may
// have been collapsed.
//
// When an element has element children its text is ignored. Otherwise each
// text or CDATA section is trimmed of surrounding ASCII whitespace and the
// last one gives the value; a CDATA section makes it a CDATA leaf, even when
// empty, while blank text is skipped.
//
// Malformed documents produce an *ir.ParseError.
package decode
