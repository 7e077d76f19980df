package ir

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"
)

// ToYAML renders y in the reserved-key form as YAML. Integers are written as
// YAML numbers, other numeric literals as strings so their text survives.
func ToYAML(y *Node) ([]byte, error) {
	v, err := toYAMLValue(y)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(v)
}

func toYAMLValue(y *Node) (any, error) {
	if y.Type == ArrayType {
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			x, err := toYAMLValue(v)
			if err != nil {
				return nil, err
			}
			res[i] = x
		}
		return res, nil
	}
	if y.Type.IsScalar() && len(y.Attrs) == 0 {
		return yamlScalar(y), nil
	}
	res := yaml.MapSlice{}
	if len(y.Attrs) != 0 {
		attrs := make(yaml.MapSlice, len(y.Attrs))
		for i, a := range y.Attrs {
			attrs[i] = yaml.MapItem{Key: a.Name, Value: yamlScalar(a.Value)}
		}
		res = append(res, yaml.MapItem{Key: AttributesKey, Value: attrs})
	}
	switch y.Type {
	case StringType, NumberType, BoolType:
		res = append(res, yaml.MapItem{Key: ValueKey, Value: yamlScalar(y)})
	case CDataType:
		res = append(res, yaml.MapItem{Key: CDataKey, Value: y.String})
	case ObjectType:
		for i, f := range y.Fields {
			x, err := toYAMLValue(y.Values[i])
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: f, Value: x})
		}
	default:
		return nil, fmt.Errorf("cannot render %s as yaml", y.Type)
	}
	return res, nil
}

func yamlScalar(y *Node) any {
	switch y.Type {
	case BoolType:
		return y.Bool
	case NumberType:
		if i, err := strconv.ParseInt(y.Number, 10, 64); err == nil {
			return i
		}
		return y.Number
	default:
		return y.String
	}
}

// FromYAML parses d in the reserved-key form preserving mapping order.
func FromYAML(d []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromAny(v)
}

// FromAny converts decoded YAML or JSON values to a node. Mappings must be
// yaml.MapSlice to keep their order; plain Go maps are rejected.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return FromString(""), nil
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint64:
		return FromNumber(strconv.FormatUint(x, 10)), nil
	case float64:
		return FromNumber(strconv.FormatFloat(x, 'f', -1, 64)), nil
	case []any:
		vals := make([]*Node, len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return FromSlice(vals), nil
	case yaml.MapSlice:
		return fromMapSlice(x)
	}
	return nil, fmt.Errorf("unsupported value of type %T", v)
}

func fromMapSlice(ms yaml.MapSlice) (*Node, error) {
	res := Object()
	var (
		attrs        []Attr
		value, cdata *Node
	)
	for _, item := range ms {
		key := fmt.Sprint(item.Key)
		switch key {
		case AttributesKey:
			am, ok := item.Value.(yaml.MapSlice)
			if !ok {
				return nil, fmt.Errorf("%s must be a mapping", AttributesKey)
			}
			for _, a := range am {
				v, err := FromAny(a.Value)
				if err != nil {
					return nil, err
				}
				if !v.Type.IsScalar() {
					return nil, fmt.Errorf("attribute %v: expected scalar, got %s", a.Key, v.Type)
				}
				attrs = append(attrs, Attr{Name: fmt.Sprint(a.Key), Value: v})
			}
		case ValueKey, CDataKey:
			v, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			if !v.Type.IsScalar() {
				return nil, fmt.Errorf("%s: expected scalar, got %s", key, v.Type)
			}
			if key == ValueKey {
				value = v
			} else {
				cdata = FromCData(v.Text())
			}
		default:
			v, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(key, v)
		}
	}
	switch {
	case value != nil:
		res = value
	case cdata != nil:
		res = cdata
	}
	res.Attrs = attrs
	return res, nil
}
