// Package usps is a client for the USPS Web Tools XML APIs.
//
// Requests are built as structures, encoded to XML with the encode package
// and posted as form data; responses are decoded with the decode package. A
// small set of builders cover address verification, ZIP code and city
// lookups, tracking and rates; Raw sends any structure to any known API.
package usps
