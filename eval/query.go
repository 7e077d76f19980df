package eval

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/go-usps/debug"
	"github.com/signadot/go-usps/ir"

	"github.com/expr-lang/expr"
)

// Env returns the variables visible to a query over doc: every field of doc
// by name, and doc itself as "doc".
func Env(doc *ir.Node) map[string]any {
	env := map[string]any{}
	if doc.Type == ir.ObjectType {
		for i, f := range doc.Fields {
			env[f] = ir.ToAny(doc.Values[i])
		}
	}
	env["doc"] = ir.ToAny(doc)
	return env
}

// Query compiles src as an expr expression and evaluates it over doc.
func Query(doc *ir.Node, src string) (any, error) {
	env := Env(doc)
	opts := append(exprOpts(doc), expr.Env(env))
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, err
	}
	if debug.Query() {
		debug.Logf("query %q on %s gave %v\n", src, doc.Path(), res)
	}
	return res, nil
}

// ToNode converts a query result to a node. Map keys are sorted.
func ToNode(v any) (*ir.Node, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("query result %T: %w", v, err)
	}
	return ir.FromJSON(d)
}
