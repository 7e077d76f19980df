package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-usps/ir"
)

func mustJSON(t *testing.T, doc string) *ir.Node {
	t.Helper()
	y, err := ir.FromJSON([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	return y
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		root string
		in   string
		want string
	}{
		{
			name: "zipcode",
			root: "ZipCode",
			in:   `{"@attributes":{"ID":"1"},"Zip5":"91730"}`,
			want: `<ZipCode ID="1"><Zip5>91730</Zip5></ZipCode>`,
		},
		{
			name: "repeated group",
			root: "TrackFieldRequest",
			in:   `{"TrackID":[{"@attributes":{"ID":"1"}},{"@attributes":{"ID":"2"}}]}`,
			want: `<TrackFieldRequest><TrackID ID="1"/><TrackID ID="2"/></TrackFieldRequest>`,
		},
		{
			name: "field order",
			root: "Address",
			in:   `{"Address2":"6406 Ivy Lane","City":"Greenbelt","State":"MD","Zip5":"20770"}`,
			want: `<Address><Address2>6406 Ivy Lane</Address2><City>Greenbelt</City><State>MD</State><Zip5>20770</Zip5></Address>`,
		},
		{
			name: "scalars",
			root: "a",
			in:   `{"t":true,"f":false,"n":1.50,"i":-3}`,
			want: `<a><t>true</t><f>false</f><n>1.50</n><i>-3</i></a>`,
		},
		{
			name: "leaf wins",
			root: "a",
			in:   `{"@value":"x","Zip":"y"}`,
			want: `<a>x</a>`,
		},
		{
			name: "cdata",
			root: "a",
			in:   `{"b":{"@cdata":"<i>&</i>","c":"dropped"}}`,
			want: `<a><b><![CDATA[<i>&</i>]]></b></a>`,
		},
		{
			name: "attributes on value",
			root: "a",
			in:   `{"b":{"@attributes":{"k":true},"@value":"v"}}`,
			want: `<a><b k="true">v</b></a>`,
		},
		{
			name: "empty group",
			root: "a",
			in:   `{"b":[],"c":"x"}`,
			want: `<a><c>x</c></a>`,
		},
		{
			name: "empty object",
			root: "a",
			in:   `{}`,
			want: `<a/>`,
		},
		{
			name: "prefixed names",
			root: "soap:Envelope",
			in:   `{"@attributes":{"xmlns:soap":"urn:x"},"soap:Body":{"a.b-c_d":"1"}}`,
			want: `<soap:Envelope xmlns:soap="urn:x"><soap:Body><a.b-c_d>1</a.b-c_d></soap:Body></soap:Envelope>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeString(tt.root, mustJSON(t, tt.in), NoDecl())
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got)\n%s", diff)
			}
		})
	}
}

func TestEncodeInvalidName(t *testing.T) {
	tests := []struct {
		name string
		root string
		in   string
		want ir.NameError
	}{
		{
			name: "tag",
			root: "root",
			in:   `{"ok":"1","bad tag!":"x"}`,
			want: ir.NameError{Name: "bad tag!", Parent: "root"},
		},
		{
			name: "root",
			root: "1leading",
			in:   `{}`,
			want: ir.NameError{Name: "1leading"},
		},
		{
			name: "trailing colon",
			root: "a:",
			in:   `"x"`,
			want: ir.NameError{Name: "a:"},
		},
		{
			name: "attribute",
			root: "root",
			in:   `{"Item":{"@attributes":{"ID":"1","no good":"2"}}}`,
			want: ir.NameError{Name: "no good", Parent: "Item", Attr: true},
		},
		{
			name: "nested",
			root: "root",
			in:   `{"a":{"b":{"-c":"x"}}}`,
			want: ir.NameError{Name: "-c", Parent: "b"},
		},
		{
			name: "group of groups",
			root: "root",
			in:   `{"a":[["x"]]}`,
			want: ir.NameError{Name: "0", Parent: "a"},
		},
		{
			name: "root group",
			root: "root",
			in:   `["x","y"]`,
			want: ir.NameError{Name: "0", Parent: "root"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			err := Encode(tt.root, mustJSON(t, tt.in), buf)
			if !errors.Is(err, ir.ErrInvalidName) {
				t.Fatalf("expected invalid name, got %v", err)
			}
			var ne *ir.NameError
			if !errors.As(err, &ne) {
				t.Fatalf("%T", err)
			}
			if diff := cmp.Diff(tt.want, *ne); diff != "" {
				t.Errorf("(-want +got)\n%s", diff)
			}
			if buf.Len() != 0 {
				t.Errorf("partial output %q", buf.String())
			}
		})
	}
}

func TestEncodeEscapes(t *testing.T) {
	y := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromString(`x < y & "z"`)},
	}).WithAttrs(ir.StringAttr("q", `<"&">`))
	got, err := EncodeString("r", y, NoDecl())
	if err != nil {
		t.Fatal(err)
	}
	for _, raw := range []string{"x < y", "y & ", `"<"`} {
		if strings.Contains(got, raw) {
			t.Errorf("%q not escaped in %s", raw, got)
		}
	}
	if !strings.Contains(got, "&lt;") || !strings.Contains(got, "&amp;") {
		t.Errorf("missing entities in %s", got)
	}
}

func TestEncodeOptions(t *testing.T) {
	y := ir.FromKeyVals([]ir.KeyVal{{Key: "b", Val: ir.FromString("é")}})

	got, err := EncodeString("a", y)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, `<?xml version="1.0"`) || !strings.Contains(got, `encoding="UTF-8"`) {
		t.Errorf("declaration: %q", got)
	}

	got, err = EncodeString("a", y, Encoding("ISO-8859-1"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `encoding="ISO-8859-1"`) || !strings.Contains(got, "é") {
		t.Errorf("encoding: %q", got)
	}

	got, err = EncodeString("a", y, Encoding("ISO-8859-1"), Transcode(true))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "\xe9") {
		t.Errorf("transcode: %q", got)
	}

	got, err = EncodeString("a", y, Indent(true), NoDecl())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "\n  <b>") {
		t.Errorf("indent: %q", got)
	}
	got, err = EncodeString("a", y, IndentString("\t"), NoDecl())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "\n\t<b>") {
		t.Errorf("indent string: %q", got)
	}
}

func TestBuild(t *testing.T) {
	tree, err := Build("a", mustJSON(t, `{"b":["1","2"],"c":{"@cdata":"x"}}`))
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, c := range tree.Elements() {
		names = append(names, c.Name)
	}
	if diff := cmp.Diff([]string{"b", "b", "c"}, names); diff != "" {
		t.Error(diff)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString("a", ir.FromBool(true)); got != "<a>true</a>" {
		t.Errorf("got %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustString("1a", ir.FromString(""))
}
