package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
	"github.com/signadot/go-usps/decode"
	"github.com/signadot/go-usps/ir"
	"github.com/signadot/go-usps/libdiff"
)

func TestParseAddress(t *testing.T) {
	a, err := parseAddress([]string{"address=6406 Ivy Lane", "City=Greenbelt", "state=MD", "Urbanization=X"})
	if err != nil {
		t.Fatal(err)
	}
	d, err := a.Fields().MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"Address2":"6406 Ivy Lane","City":"Greenbelt","State":"MD","Urbanization":"X"}`
	if diff := cmp.Diff(want, string(d)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	for _, args := range [][]string{nil, {"city"}, {"1x=y"}} {
		if _, err := parseAddress(args); !errors.Is(err, cli.ErrUsage) {
			t.Errorf("%v: got %v", args, err)
		}
	}
}

func TestRootOf(t *testing.T) {
	y, err := decode.DecodeString(`<a><b>1</b></a>`)
	if err != nil {
		t.Fatal(err)
	}
	root, body, err := rootOf("", y)
	if err != nil {
		t.Fatal(err)
	}
	if root != "a" || ir.Get(body, "b").Text() != "1" {
		t.Errorf("got %s %v", root, body)
	}
	root, body, err = rootOf("x", y)
	if err != nil || root != "x" || body != y {
		t.Errorf("got %s %v %v", root, body, err)
	}
	two := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromString("")}, {Key: "b", Val: ir.FromString("")}})
	if _, _, err := rootOf("", two); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v", err)
	}
}

func TestWriteChanges(t *testing.T) {
	from, _ := decode.DecodeString(`<R><Zip5>91730</Zip5><City>X</City></R>`)
	to, _ := decode.DecodeString(`<R><Zip5>91731</Zip5><State>CA</State></R>`)
	buf := bytes.NewBuffer(nil)
	if err := writeChanges(buf, libdiff.Diff(from, to), false); err != nil {
		t.Fatal(err)
	}
	want := "~ $.R.Zip5: 9173[-0-]{+1+}\n" +
		"- $.R.City: \"X\"\n" +
		"+ $.R.State: \"CA\"\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
