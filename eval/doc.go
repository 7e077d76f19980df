// Package eval evaluates expr-lang expressions over decoded documents.
//
// A document is presented to expressions as plain values (see ir.ToAny):
// its top level fields are variables, and "doc" names the whole document.
//
//	AddressValidateResponse.Address.Zip5 == "20770"
//	len(group(TrackResponse.TrackInfo))
//	attr(ZipCodeLookupResponse.Address, "ID")
//	text(getpath("$.R.Note"))
//
// Functions:
//
//   - text(v): the text of a leaf, including leaves with attributes
//   - attr(v, name): the attribute called name, or nil
//   - group(v): v as a list; collapsed groups of one become lists of one
//   - has(v, key): whether the object v has key
//   - getpath(p), listpath(p): select with ir paths
package eval
