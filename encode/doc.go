// Package encode encodes structured values as XML documents.
//
// # Usage
//
//	req := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "Zip5", Val: ir.FromString("91730")},
//	}).WithAttrs(ir.StringAttr("ID", "1"))
//	out, err := encode.EncodeString("ZipCode", req, encode.NoDecl())
//	// <ZipCode ID="1"><Zip5>91730</Zip5></ZipCode>
//
// Encoding first builds the whole document tree (see Build), validating every
// element and attribute name, and only then writes it, so an invalid name
// never produces partial output.
//
// # Related Packages
//
//   - github.com/signadot/go-usps/ir - structured values
//   - github.com/signadot/go-usps/decode - XML to structured values
//   - github.com/signadot/go-usps/dom - document tree and serialisation
package encode
