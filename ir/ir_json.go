package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// MarshalJSON renders y in the reserved-key form: attributes under
// "@attributes" (always first), leaf text carrying attributes under "@value",
// CDATA under "@cdata" and groups as arrays.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, y); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, y *Node) error {
	if y.Type == ArrayType {
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	}
	if y.Type.IsScalar() && len(y.Attrs) == 0 {
		return writeJSONScalar(buf, y)
	}
	buf.WriteByte('{')
	n := 0
	key := func(k string) {
		if n > 0 {
			buf.WriteByte(',')
		}
		n++
		writeJSONString(buf, k)
		buf.WriteByte(':')
	}
	if len(y.Attrs) != 0 {
		key(AttributesKey)
		buf.WriteByte('{')
		for i, a := range y.Attrs {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, a.Name)
			buf.WriteByte(':')
			if err := writeJSONScalar(buf, a.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	switch y.Type {
	case StringType, NumberType, BoolType:
		key(ValueKey)
		if err := writeJSONScalar(buf, y); err != nil {
			return err
		}
	case CDataType:
		key(CDataKey)
		writeJSONString(buf, y.String)
	case ObjectType:
		for i, f := range y.Fields {
			key(f)
			if err := writeJSON(buf, y.Values[i]); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("cannot render %s as json", y.Type)
	}
	buf.WriteByte('}')
	return nil
}

func writeJSONScalar(buf *bytes.Buffer, y *Node) error {
	switch y.Type {
	case BoolType:
		if y.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case NumberType:
		if isJSONNumber(y.Number) {
			buf.WriteString(y.Number)
		} else {
			writeJSONString(buf, y.Number)
		}
	case StringType, CDataType:
		writeJSONString(buf, y.String)
	default:
		return fmt.Errorf("%s is not a scalar", y.Type)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	// Encode terminates each value with a newline
	buf.Truncate(buf.Len() - 1)
}

func isJSONNumber(lit string) bool {
	if lit == "" {
		return false
	}
	c := lit[0]
	if c != '-' && (c < '0' || c > '9') {
		return false
	}
	var n json.Number
	return json.Unmarshal([]byte(lit), &n) == nil
}

// UnmarshalJSON reads the reserved-key form preserving object key order.
// null becomes the empty string. An object holding "@value" or "@cdata" is a
// leaf: its other keys are dropped, "@value" taking precedence.
func (y *Node) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := readJSON(dec)
	if err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("trailing data after json value")
	}
	*y = *res
	for i, v := range y.Values {
		v.Parent = y
		v.ParentIndex = i
	}
	return nil
}

// FromJSON parses d in the reserved-key form.
func FromJSON(d []byte) (*Node, error) {
	res := &Node{}
	if err := res.UnmarshalJSON(d); err != nil {
		return nil, err
	}
	return res, nil
}

func readJSON(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			return readJSONObject(dec)
		case '[':
			var vals []*Node
			for dec.More() {
				v, err := readJSON(dec)
				if err != nil {
					return nil, err
				}
				vals = append(vals, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return FromSlice(vals), nil
		}
		return nil, fmt.Errorf("unexpected json delimiter %s", x)
	default:
		return jsonScalar(tok)
	}
}

func jsonScalar(tok json.Token) (*Node, error) {
	switch x := tok.(type) {
	case nil:
		return FromString(""), nil
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case json.Number:
		return FromNumber(x.String()), nil
	}
	return nil, fmt.Errorf("expected json scalar, got %v", tok)
}

func readJSONObject(dec *json.Decoder) (*Node, error) {
	res := Object()
	var (
		attrs        []Attr
		value, cdata *Node
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		switch key {
		case AttributesKey:
			attrs, err = readJSONAttrs(dec)
			if err != nil {
				return nil, err
			}
		case ValueKey, CDataKey:
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			v, err := jsonScalar(tok)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			if key == ValueKey {
				value = v
			} else {
				cdata = FromCData(v.Text())
			}
		default:
			v, err := readJSON(dec)
			if err != nil {
				return nil, err
			}
			res.Set(key, v)
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
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

func readJSONAttrs(dec *json.Decoder) ([]Attr, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%s must be an object", AttributesKey)
	}
	var attrs []Attr
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected attribute name, got %v", tok)
		}
		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		v, err := jsonScalar(tok)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		attrs = append(attrs, Attr{Name: name, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return attrs, nil
}
