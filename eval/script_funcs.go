package eval

import (
	"fmt"

	"github.com/signadot/go-usps/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("text", func(params ...any) (any, error) {
			return Text(params[0]), nil
		},
			new(func(any) string)),
		expr.Function("attr", func(params ...any) (any, error) {
			m, ok := params[0].(map[string]any)
			if !ok {
				return nil, nil
			}
			attrs, _ := m[ir.AttributesKey].(map[string]any)
			return attrs[params[1].(string)], nil
		},
			new(func(any, string) any)),
		expr.Function("group", func(params ...any) (any, error) {
			switch x := params[0].(type) {
			case nil:
				return []any{}, nil
			case []any:
				return x, nil
			default:
				return []any{x}, nil
			}
		},
			new(func(any) []any)),
		expr.Function("has", func(params ...any) (any, error) {
			m, ok := params[0].(map[string]any)
			if !ok {
				return false, nil
			}
			_, ok = m[params[1].(string)]
			return ok, nil
		},
			new(func(any, string) bool)),
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.GetPath(path)
			if err != nil {
				return nil, err
			}
			return ir.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			path := params[0].(string)
			yRes, err := doc.ListPath(nil, path)
			if err != nil {
				return nil, err
			}
			res := make([]any, len(yRes))
			for i, item := range yRes {
				res[i] = ir.ToAny(item)
			}
			return res, nil
		},
			new(func(string) []any)),
	}
}

// Text returns the text of a value as produced by ir.ToAny: the value
// itself for scalars, and the "@value" or "@cdata" entry of leaves carrying
// attributes. Other values have no text.
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return fmt.Sprint(x)
	case map[string]any:
		if t, ok := x[ir.ValueKey]; ok {
			return Text(t)
		}
		if t, ok := x[ir.CDataKey]; ok {
			return Text(t)
		}
		return ""
	default:
		return ""
	}
}
