package patch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-usps/ir"
)

const doc = `{"AddressValidateRequest":{"@attributes":{"USERID":"x"},"Revision":"1","Address":[{"@attributes":{"ID":"0"},"Address1":"","Address2":"6406 Ivy Lane","City":"Greenbelt","State":"MD","Zip5":"","Zip4":""},{"@attributes":{"ID":"1"},"Address2":"8 Wildwood Drive","City":"Old Lyme","State":"CT","Zip5":"06371","Zip4":""}]}}`

func mustNode(t *testing.T) *ir.Node {
	t.Helper()
	y, err := ir.FromJSON([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	return y
}

func jsonOf(t *testing.T, y *ir.Node) string {
	t.Helper()
	d, err := y.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func TestJSONPatch(t *testing.T) {
	y := mustNode(t)
	ops := `[
		{"op":"replace","path":"/AddressValidateRequest/Address/0/Zip5","value":"20770"},
		{"op":"replace","path":"/AddressValidateRequest/Address/1/@attributes/ID","value":"7"},
		{"op":"remove","path":"/AddressValidateRequest/Revision"},
		{"op":"add","path":"/AddressValidateRequest/Address/0/Urbanization","value":"X"}
	]`
	got, err := JSONPatch(y, []byte(ops))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"AddressValidateRequest":{"@attributes":{"USERID":"x"},"Address":[{"@attributes":{"ID":"0"},"Address1":"","Address2":"6406 Ivy Lane","City":"Greenbelt","State":"MD","Zip5":"20770","Zip4":"","Urbanization":"X"},{"@attributes":{"ID":"7"},"Address2":"8 Wildwood Drive","City":"Old Lyme","State":"CT","Zip5":"06371","Zip4":""}]}}`
	if diff := cmp.Diff(want, jsonOf(t, got)); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if jsonOf(t, y) != doc {
		t.Error("input modified")
	}
}

func TestMergePatch(t *testing.T) {
	y := mustNode(t)
	got, err := MergePatch(y, []byte(`{"AddressValidateRequest":{"Revision":null,"Extra":{"@cdata":"<x>"}}}`))
	if err != nil {
		t.Fatal(err)
	}
	req := ir.Get(got, "AddressValidateRequest")
	if diff := cmp.Diff([]string{"Address", "Extra"}, req.Fields); diff != "" {
		t.Error(diff)
	}
	if e := ir.Get(req, "Extra"); e.Type != ir.CDataType || e.String != "<x>" {
		t.Errorf("extra: %s", jsonOf(t, e))
	}
	if id, _ := req.Attr("USERID"); id != "x" {
		t.Errorf("USERID %q", id)
	}
}

func TestPatchErrors(t *testing.T) {
	y := mustNode(t)
	if _, err := JSONPatch(y, []byte(`{"op":"add"}`)); err == nil {
		t.Error("expected decode error")
	}
	if _, err := JSONPatch(y, []byte(`[{"op":"remove","path":"/nope/x"}]`)); err == nil {
		t.Error("expected apply error")
	}
	if _, err := MergePatch(y, []byte(`{`)); err == nil {
		t.Error("expected merge error")
	}
}
