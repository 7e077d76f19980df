// Package dom provides the document tree used between XML text and
// structured values: elements with ordered attributes and children, text
// and CDATA sections.
//
// Parse builds a tree from XML text without resolving namespaces; prefixed
// names are kept as written. Write serialises a tree with an XML
// declaration, optional indentation and escaping of text and attribute
// values.
package dom
