// Package render writes structured values as JSON or YAML for people to
// read, optionally in colour.
//
// Both formats use the reserved keys "@attributes", "@value" and "@cdata"
// (see package ir) and keep the order of fields.
package render
