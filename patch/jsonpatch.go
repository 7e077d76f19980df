package patch

import (
	"fmt"

	"github.com/signadot/go-usps/debug"
	"github.com/signadot/go-usps/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// JSONPatch applies the RFC 6902 patch ops to doc. Paths address the JSON
// form of doc, so attributes are under "@attributes" and repeated groups are
// arrays: "/R/Address/1/@attributes/ID".
func JSONPatch(doc *ir.Node, ops []byte) (*ir.Node, error) {
	p, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("decoding json patch: %w", err)
	}
	if debug.Patch() {
		debug.Logf("json patch %d ops on %s\n", len(p), doc.Path())
	}
	return apply(doc, p.Apply)
}

// MergePatch applies the RFC 7386 merge patch mergeDoc to doc.
func MergePatch(doc *ir.Node, mergeDoc []byte) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("merge patch on %s\n", doc.Path())
	}
	return apply(doc, func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, mergeDoc)
	})
}

func apply(doc *ir.Node, f func([]byte) ([]byte, error)) (*ir.Node, error) {
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := f(d)
	if err != nil {
		return nil, err
	}
	res, err := ir.FromJSON(out)
	if err != nil {
		return nil, err
	}
	ir.ReorderLike(res, doc)
	return res, nil
}
