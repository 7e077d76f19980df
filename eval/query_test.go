package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-usps/ir"
)

const response = `{"ZipCodeLookupResponse":{"Address":[
	{"@attributes":{"ID":"0"},"City":"GREENBELT","Zip5":"20770"},
	{"@attributes":{"ID":"1"},"City":"ONTARIO","Zip5":"91730","Note":{"@cdata":"<x>"}}
],"Single":{"Flag":{"@attributes":{"k":"v"},"@value":true}}}}`

func TestQuery(t *testing.T) {
	doc, err := ir.FromJSON([]byte(response))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		src  string
		want any
	}{
		{`ZipCodeLookupResponse.Address[1].Zip5`, "91730"},
		{`len(group(ZipCodeLookupResponse.Address))`, 2},
		{`len(group(ZipCodeLookupResponse.Single))`, 1},
		{`len(group(ZipCodeLookupResponse.Missing))`, 0},
		{`attr(ZipCodeLookupResponse.Address[0], "ID")`, "0"},
		{`attr(ZipCodeLookupResponse.Address[0], "nope")`, nil},
		{`text(ZipCodeLookupResponse.Address[1].Note)`, "<x>"},
		{`text(ZipCodeLookupResponse.Single.Flag)`, "true"},
		{`has(ZipCodeLookupResponse.Address[1], "Note")`, true},
		{`has(ZipCodeLookupResponse.Address[0], "Note")`, false},
		{`map(group(ZipCodeLookupResponse.Address), .City)`, []any{"GREENBELT", "ONTARIO"}},
		{`text(getpath("$.ZipCodeLookupResponse.Address[0].City"))`, "GREENBELT"},
		{`listpath("$...Zip5")`, []any{"20770", "91730"}},
		{`doc.ZipCodeLookupResponse.Address[0].City`, "GREENBELT"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := Query(doc, tt.src)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got)\n%s", diff)
			}
		})
	}
}

func TestQueryErrors(t *testing.T) {
	doc, err := ir.FromJSON([]byte(`{"R":{"a":"1"}}`))
	if err != nil {
		t.Fatal(err)
	}
	for _, src := range []string{`Nope.a`, `R.a +`, `getpath("$[*]")`} {
		if _, err := Query(doc, src); err == nil {
			t.Errorf("%s: expected error", src)
		}
	}
}

func TestToNode(t *testing.T) {
	y, err := ToNode(map[string]any{"b": []any{"1", true}, "a": nil})
	if err != nil {
		t.Fatal(err)
	}
	d, err := y.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(d), `{"a":"","b":["1",true]}`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}
