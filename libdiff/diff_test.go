package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-usps/ir"
)

func node(t *testing.T, doc string) *ir.Node {
	t.Helper()
	y, err := ir.FromJSON([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	return y
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     []string
	}{
		{
			name: "equal",
			from: `{"R":{"@attributes":{"ID":"0"},"Zip5":"91730","A":["1","2"]}}`,
			to:   `{"R":{"@attributes":{"ID":"0"},"Zip5":"91730","A":["1","2"]}}`,
		},
		{
			name: "leaf",
			from: `{"R":{"Zip5":"91730","City":"ONTARIO"}}`,
			to:   `{"R":{"Zip5":"91731","City":"ONTARIO"}}`,
			want: []string{`~ $.R.Zip5: "91730" -> "91731"`},
		},
		{
			name: "fields",
			from: `{"R":{"a":"1","b":"2"}}`,
			to:   `{"R":{"b":"2","c":"3"}}`,
			want: []string{`- $.R.a: "1"`, `+ $.R.c: "3"`},
		},
		{
			name: "attributes",
			from: `{"R":{"@attributes":{"ID":"0","x":"1"},"a":"1"}}`,
			to:   `{"R":{"@attributes":{"ID":"1","y":"2"},"a":"1"}}`,
			want: []string{`~ $.R@ID: "0" -> "1"`, `- $.R@x: "1"`, `+ $.R@y: "2"`},
		},
		{
			name: "type",
			from: `{"R":{"a":"1"}}`,
			to:   `{"R":{"a":{"b":"1"}}}`,
			want: []string{`~ $.R.a: "1" -> {"b":"1"}`},
		},
		{
			name: "group insert",
			from: `{"A":["x","z"]}`,
			to:   `{"A":["x","y","z"]}`,
			want: []string{`+ $.A[1]: "y"`},
		},
		{
			name: "group remove",
			from: `{"A":["x","y","z"]}`,
			to:   `{"A":["x","z"]}`,
			want: []string{`- $.A[1]: "y"`},
		},
		{
			name: "group replace",
			from: `{"A":["x","y","z"]}`,
			to:   `{"A":["x","w","z"]}`,
			want: []string{`~ $.A[1]: "y" -> "w"`},
		},
		{
			name: "group members",
			from: `{"A":[{"Z":"1"},{"Z":"2"}]}`,
			to:   `{"A":[{"Z":"1"},{"Z":"3"}]}`,
			want: []string{`~ $.A[1].Z: "2" -> "3"`},
		},
		{
			name: "cdata",
			from: `{"A":{"@cdata":"x"}}`,
			to:   `{"A":{"@cdata":"y"}}`,
			want: []string{`~ $.A: {"@cdata":"x"} -> {"@cdata":"y"}`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, c := range Diff(node(t, tt.from), node(t, tt.to)) {
				got = append(got, c.String())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got)\n%s", diff)
			}
		})
	}
}

func TestInline(t *testing.T) {
	changes := Diff(node(t, `{"a":"6406 Ivy Lane"}`), node(t, `{"a":"6406 Ivy Road"}`))
	if len(changes) != 1 {
		t.Fatalf("%d changes", len(changes))
	}
	got := InlineText(changes[0].Inline, nil, nil)
	if want := "6406 Ivy [-Lane-]{+Road+}"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	rev := Reverse(changes)
	if rev[0].Op != Modify || rev[0].From != changes[0].To {
		t.Errorf("reverse: %v", rev[0])
	}
	if got := InlineText(rev[0].Inline, nil, nil); got != "6406 Ivy {+Lane+}[-Road-]" {
		t.Errorf("reverse inline %q", got)
	}
}

func TestReverse(t *testing.T) {
	from, to := node(t, `{"a":"1","b":"2"}`), node(t, `{"b":"2","c":"3"}`)
	rev := Reverse(Diff(from, to))
	var ops []Op
	for _, c := range rev {
		ops = append(ops, c.Op)
	}
	if diff := cmp.Diff([]Op{Add, Remove}, ops); diff != "" {
		t.Error(diff)
	}
}
