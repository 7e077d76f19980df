package ir

import (
	"testing"
)

type pathTest struct {
	Path  string
	Doc   string
	Res   string
	NoGet bool
}

var pathTests = []pathTest{
	{
		Path: "$",
		Doc:  `"x"`,
		Res:  `"x"`,
	},
	{
		Path: "$.f",
		Doc:  `{"f": 1}`,
		Res:  "1",
	},
	{
		Path: "f",
		Doc:  `{"f": 1}`,
		Res:  "1",
	},
	{
		Path: "$[0]",
		Doc:  "[1,2,3]",
		Res:  "1",
	},
	{
		Path: "$",
		Doc:  "[1,2,3]",
		Res:  "[1,2,3]",
	},
	{
		Path: "$[1].f",
		Doc:  `[0, {"f": 2, "g": 3}]`,
		Res:  "2",
	},
	{
		Path: "$.f[3]",
		Doc:  `{"a": [1,2], "f": [0,1,2,"three"]}`,
		Res:  `"three"`,
	},
	{
		Path: "$.'f[3]'[2]",
		Doc:  `{"a": [1,2], "f[3]": [0,1,2,"three"]}`,
		Res:  "2",
	},
	{
		Path: "$.'$f[\\'3]'[2]",
		Doc:  `{"a": [1,2], "$f['3]": [0,1,2,"three"]}`,
		Res:  "2",
	},
	{
		Path: "$.Response.Address[0].Zip5",
		Doc:  `{"Response": {"Address": {"Zip5": "91730"}}}`,
		Res:  `"91730"`,
	},
	{
		Path: "Response.Address[1].Zip5",
		Doc:  `{"Response": {"Address": [{"Zip5": "91730"}, {"Zip5": "90210"}]}}`,
		Res:  `"90210"`,
	},
	{
		NoGet: true,
		Path:  "$[*]",
		Doc:   "[1,2,3]",
		Res:   "[1,2,3]",
	},
	{
		NoGet: true,
		Path:  "$.a[*]",
		Doc:   `{"b": [1,2,3]}`,
		Res:   "[]",
	},
	{
		NoGet: true,
		Path:  "$.b[*]",
		Doc:   `{"b": [1,2,3]}`,
		Res:   "[1,2,3]",
	},
	{
		NoGet: true,
		Path:  "$.c.d.a",
		Doc:   `{"a": "b", "c": {"d": 2, "a": 3}}`,
		Res:   "[]",
	},
	{
		NoGet: true,
		Path:  "$...a",
		Doc:   `{"a": "b", "c": {"d": 2, "a": 3}}`,
		Res:   `["b",3]`,
	},
	{
		NoGet: true,
		Path:  "$.c...a",
		Doc:   `{"a": "b", "c": {"d": 2, "a": 3}}`,
		Res:   "[3]",
	},
	{
		NoGet: true,
		Path:  "$.c...x",
		Doc:   `{"a": "b", "c": {"d": 2, "a": 3}}`,
		Res:   "[]",
	},
	{
		NoGet: true,
		Path:  "$...Zip5",
		Doc:   `{"R": {"Address": [{"Zip5": "1"}, {"Zip5": "2"}]}}`,
		Res:   `["1","2"]`,
	},
	{
		NoGet: true,
		Path:  "$.R.Address.Zip5",
		Doc:   `{"R": {"Address": [{"Zip5": "1"}, {"Zip5": "2"}]}}`,
		Res:   `["1","2"]`,
	},
}

func mustJSON(t *testing.T, y *Node) string {
	t.Helper()
	d, err := y.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func TestPathGet(t *testing.T) {
	for i := range pathTests {
		pathTest := &pathTests[i]
		if pathTest.NoGet {
			continue
		}
		node, err := FromJSON([]byte(pathTest.Doc))
		if err != nil {
			t.Errorf("# doc\n%s\n---\n# %v\n", pathTest.Doc, err)
			continue
		}
		res, err := node.GetPath(pathTest.Path)
		if err != nil {
			t.Error(err)
			continue
		}
		pp, err := ParsePath(pathTest.Path)
		if err != nil {
			t.Error(err)
			continue
		}
		t.Logf("got path %q -> %q", pathTest.Path, pp.String())
		if res == nil {
			t.Errorf("%s: no result", pathTest.Path)
			continue
		}
		if out := mustJSON(t, res); out != pathTest.Res {
			t.Errorf("%s: got %q want %q", pathTest.Path, out, pathTest.Res)
		}
	}
}

func TestPathList(t *testing.T) {
	for i := range pathTests {
		pathTest := &pathTests[i]
		in, err := FromJSON([]byte(pathTest.Doc))
		if err != nil {
			t.Errorf("# doc\n%s\n---\n# %v\n", pathTest.Doc, err)
			continue
		}
		if !pathTest.NoGet {
			get, err := in.GetPath(pathTest.Path)
			if err != nil {
				t.Error(err)
			}
			lst, err := in.ListPath(nil, pathTest.Path)
			if err != nil {
				t.Error(err)
				continue
			}
			if len(lst) != 1 {
				t.Errorf("listed %d: %s for %q", len(lst), pathTest.Path, pathTest.Doc)
				continue
			}
			if gs, ls := mustJSON(t, get), mustJSON(t, lst[0]); gs != ls {
				t.Errorf("# get\n%s---\n# lst\n%s", gs, ls)
			}
			continue
		}
		lst, err := in.ListPath(nil, pathTest.Path)
		if err != nil {
			t.Error(err)
			continue
		}
		if ls := mustJSON(t, FromSlice(lst)); ls != pathTest.Res {
			t.Errorf("%s: list gave %s want %s", pathTest.Path, ls, pathTest.Res)
		}
	}
}

func TestPathMissing(t *testing.T) {
	in, err := FromJSON([]byte(`{"R": {"Zip5": "1"}}`))
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{"$.X", "$.R.Zip5[1]", "$.R.X.Y"} {
		res, err := in.GetPath(p)
		if err != nil {
			t.Errorf("%s: %v", p, err)
			continue
		}
		if res != nil {
			t.Errorf("%s: expected nil, got %s", p, mustJSON(t, res))
		}
	}
	if _, err := in.GetPath("$.R.Zip5.X"); err == nil {
		t.Error("expected error selecting a field of a leaf")
	}
	if _, err := in.GetPath("$[*]"); err == nil {
		t.Error("expected error for [*] in get")
	}
}

func TestNodePath(t *testing.T) {
	in, err := FromJSON([]byte(`{"R": {"A": [{"Z": "1"}, {"Z": "2"}], "x.y": "3"}}`))
	if err != nil {
		t.Fatal(err)
	}
	z, err := in.GetPath("$.R.A[1].Z")
	if err != nil {
		t.Fatal(err)
	}
	if got := z.Path(); got != "$.R.A[1].Z" {
		t.Errorf("got %q", got)
	}
	xy := Get(Get(in, "R"), "x.y")
	if got := xy.Path(); got != "$.R.'x.y'" {
		t.Errorf("got %q", got)
	}
}
