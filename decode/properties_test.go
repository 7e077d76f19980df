package decode

import (
	"fmt"
	"sync"
	"testing"

	"github.com/signadot/go-usps/encode"
	"github.com/signadot/go-usps/ir"
	"pgregory.net/rapid"
)

var (
	nameGen  = rapid.StringMatching(`[A-Za-z_][A-Za-z0-9_.-]{0,6}`)
	textGen  = rapid.StringMatching(`([a-zA-Z0-9<>&"']([a-zA-Z0-9 <>&"']{0,8}[a-zA-Z0-9<>&"'])?)?`)
	// CDATA values are trimmed on decoding; "]]>" forces a split section.
	cdataGen = rapid.StringMatching(`([a-z<>&\]]([ a-z<>&\]]{0,8}[a-z<>&\]])?)?`)
)

func attrsGen() *rapid.Generator[[]ir.Attr] {
	return rapid.Custom(func(t *rapid.T) []ir.Attr {
		names := rapid.SliceOfNDistinct(nameGen, 0, 3, rapid.ID[string]).Draw(t, "attrNames")
		var res []ir.Attr
		for _, n := range names {
			res = append(res, ir.StringAttr(n, textGen.Draw(t, "attrValue")))
		}
		return res
	})
}

// valueGen generates values as decoding produces them: strings, CDATA and
// non-empty objects, with groups of at least two members when groups is set.
func valueGen(depth int, groups bool) *rapid.Generator[*ir.Node] {
	return rapid.Custom(func(t *rapid.T) *ir.Node {
		var res *ir.Node
		switch {
		case depth == 0 || rapid.IntRange(0, 2).Draw(t, "kind") == 0:
			res = ir.FromString(textGen.Draw(t, "text"))
		case rapid.IntRange(0, 4).Draw(t, "cdata") == 0:
			res = ir.FromCData(cdataGen.Draw(t, "cdata"))
		default:
			res = ir.Object()
			names := rapid.SliceOfNDistinct(nameGen, 1, 4, rapid.ID[string]).Draw(t, "names")
			for _, n := range names {
				if groups && rapid.Bool().Draw(t, "group") {
					members := rapid.SliceOfN(valueGen(depth-1, groups), 2, 3).Draw(t, "members")
					res.Set(n, ir.FromSlice(members))
					continue
				}
				res.Set(n, valueGen(depth-1, groups).Draw(t, "value"))
			}
		}
		res.Attrs = attrsGen().Draw(t, "attrs")
		return res
	})
}

func TestRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		root := nameGen.Draw(t, "root")
		v := valueGen(3, true).Draw(t, "v")
		out, err := encode.EncodeString(root, v)
		if err != nil {
			t.Fatal(err)
		}
		got, err := DecodeString(out)
		if err != nil {
			t.Fatalf("%v\n%s", err, out)
		}
		want := ir.FromKeyVals([]ir.KeyVal{{Key: root, Val: v}})
		if !ir.Equal(want, got) {
			t.Fatalf("round trip of %s\ngave %s", out, jsonString(got))
		}
	})
}

func TestCollapseFixedPoint(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		root := nameGen.Draw(t, "root")
		v := valueGen(3, false).Draw(t, "v")
		// wrap some values in groups of one; decoding cannot see them.
		wrapped := v.Clone()
		if wrapped.Type == ir.ObjectType {
			for i, f := range wrapped.Fields {
				if rapid.Bool().Draw(t, "wrap") {
					wrapped.Set(f, ir.FromSlice([]*ir.Node{wrapped.Values[i]}))
				}
			}
		}
		first, err := encode.EncodeString(root, wrapped)
		if err != nil {
			t.Fatal(err)
		}
		d1, err := DecodeString(first)
		if err != nil {
			t.Fatal(err)
		}
		if !ir.Equal(ir.Get(d1, root), v) {
			t.Fatalf("groups of one not collapsed: %s", jsonString(d1))
		}
		second, err := encode.EncodeString(root, ir.Get(d1, root))
		if err != nil {
			t.Fatal(err)
		}
		if second != first {
			t.Fatalf("re-encoding differs\n%s\n%s", first, second)
		}
		d2, err := DecodeString(second)
		if err != nil {
			t.Fatal(err)
		}
		if !ir.Equal(d1, d2) {
			t.Fatalf("not a fixed point: %s vs %s", jsonString(d1), jsonString(d2))
		}
	})
}

func TestKeepGroupsCollapse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := valueGen(3, true).Draw(t, "v")
		out, err := encode.EncodeString("r", v)
		if err != nil {
			t.Fatal(err)
		}
		kept, err := DecodeString(out, KeepGroups())
		if err != nil {
			t.Fatal(err)
		}
		collapsed, err := DecodeString(out)
		if err != nil {
			t.Fatal(err)
		}
		if !ir.Equal(Collapse(kept), collapsed) {
			t.Fatalf("%s\n%s", jsonString(kept), jsonString(collapsed))
		}
	})
}

func TestConcurrentCodec(t *testing.T) {
	docs := make([]*ir.Node, 16)
	for i := range docs {
		docs[i] = ir.FromKeyVals([]ir.KeyVal{
			{Key: "ID", Val: ir.FromString(fmt.Sprint(i))},
			{Key: "Items", Val: ir.FromSlice([]*ir.Node{
				ir.FromString("a").WithAttrs(ir.StringAttr("n", fmt.Sprint(i))),
				ir.FromCData(fmt.Sprintf("<%d>", i)),
			})},
		})
	}
	var wg sync.WaitGroup
	errs := make(chan error, len(docs)*8)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i, doc := range docs {
				indent := encode.Indent(w%2 == 0)
				out, err := encode.EncodeString("R", doc, indent)
				if err != nil {
					errs <- err
					continue
				}
				got, err := DecodeString(out)
				if err != nil {
					errs <- err
					continue
				}
				if !ir.Equal(ir.Get(got, "R"), doc) {
					errs <- fmt.Errorf("worker %d doc %d: mismatch %s", w, i, out)
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func jsonString(y *ir.Node) string {
	d, err := y.MarshalJSON()
	if err != nil {
		return err.Error()
	}
	return string(d)
}
