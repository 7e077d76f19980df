package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Path returns the location of y from the root of its tree, such as
// "$.R.Address[1].Zip5".
func (y *Node) Path() string {
	var parts []string
	for x := y; x.Parent != nil; x = x.Parent {
		switch x.Parent.Type {
		case ObjectType:
			parts = append(parts, "."+quoteField(x.ParentField))
		case ArrayType:
			parts = append(parts, "["+strconv.Itoa(x.ParentIndex)+"]")
		default:
			panic("parent but not in container")
		}
	}
	var sb strings.Builder
	sb.WriteByte('$')
	for i := len(parts) - 1; i >= 0; i-- {
		sb.WriteString(parts[i])
	}
	return sb.String()
}

type SegmentKind int

const (
	FieldSegment SegmentKind = iota
	IndexSegment
	// AllSegment is "[*]", every member of a group.
	AllSegment
	// SubtreeSegment is "..", any node at or below the current one.
	SubtreeSegment
)

type Segment struct {
	Kind  SegmentKind
	Field string
	Index int
}

// Path is a parsed path. The empty path selects the root.
type Path []Segment

func (p Path) String() string {
	var sb strings.Builder
	sb.WriteByte('$')
	for i, s := range p {
		switch s.Kind {
		case FieldSegment:
			if i == 0 || p[i-1].Kind != SubtreeSegment {
				sb.WriteByte('.')
			}
			sb.WriteString(quoteField(s.Field))
		case IndexSegment:
			fmt.Fprintf(&sb, "[%d]", s.Index)
		case AllSegment:
			sb.WriteString("[*]")
		case SubtreeSegment:
			sb.WriteString("..")
		}
	}
	return sb.String()
}

// ParsePath parses paths such as "$.Response.Address[1].Zip5". The leading
// "$" may be omitted. Fields containing any of ".[]'*$" are written quoted,
// as in "$.'a.b'", with "\'" for a quote.
func ParsePath(p string) (Path, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("empty path")
	}
	rest := p
	if rest[0] == '$' {
		rest = rest[1:]
	} else if rest[0] != '.' && rest[0] != '[' {
		rest = "." + rest
	}
	var res Path
	for len(rest) > 0 {
		switch rest[0] {
		case '.':
			if strings.HasPrefix(rest, "..") {
				res = append(res, Segment{Kind: SubtreeSegment})
				rest = rest[2:]
				if len(rest) > 0 && rest[0] != '.' && rest[0] != '[' {
					rest = "." + rest
				}
				continue
			}
			field, tail, err := parseField(rest[1:])
			if err != nil {
				return nil, fmt.Errorf("path %q: %w", p, err)
			}
			res = append(res, Segment{Kind: FieldSegment, Field: field})
			rest = tail
		case '[':
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				return nil, fmt.Errorf("path %q: expected '[' <index> ']'", p)
			}
			seg, err := parseIndex(rest[1:end])
			if err != nil {
				return nil, fmt.Errorf("path %q: %w", p, err)
			}
			res = append(res, seg)
			rest = rest[end+1:]
		default:
			return nil, fmt.Errorf("path %q: expected '.' or '[' at %q", p, rest)
		}
	}
	return res, nil
}

func parseIndex(s string) (Segment, error) {
	if s == "*" {
		return Segment{Kind: AllSegment}, nil
	}
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return Segment{}, fmt.Errorf("bad index %q", s)
	}
	return Segment{Kind: IndexSegment, Index: int(n)}, nil
}

func parseField(s string) (field, rest string, err error) {
	if len(s) == 0 {
		return "", "", fmt.Errorf("expected field at end of path")
	}
	if s[0] != '\'' {
		i := strings.IndexAny(s, ".[")
		switch i {
		case -1:
			return s, "", nil
		case 0:
			return "", "", fmt.Errorf("empty field")
		}
		return s[:i], s[i:], nil
	}
	var sb strings.Builder
	for i := 1; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\' && i+1 < len(s) && s[i+1] == '\'':
			sb.WriteByte('\'')
			i++
		case c == '\'':
			return sb.String(), s[i+1:], nil
		default:
			sb.WriteByte(c)
		}
	}
	return "", "", fmt.Errorf("unterminated quoted field")
}

func quoteField(f string) string {
	if !strings.ContainsAny(f, "'.*$[]") {
		return f
	}
	return "'" + strings.ReplaceAll(f, "'", `\'`) + "'"
}

// GetPath returns the node at path or nil if there is none. Indexing a node
// which is not a group addresses it as a group of one, so "Address[0]" finds
// a lone Address whose group was collapsed by decoding.
func (y *Node) GetPath(path string) (*Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	res := y
	for _, s := range p {
		switch s.Kind {
		case AllSegment:
			return nil, fmt.Errorf("any index in get")
		case SubtreeSegment:
			return nil, fmt.Errorf("recurse .. in get")
		case IndexSegment:
			members := Group(res)
			if s.Index >= len(members) {
				return nil, nil
			}
			res = members[s.Index]
		case FieldSegment:
			if res.Type != ObjectType {
				return nil, fmt.Errorf("expected object at %s, got %s", res.Path(), res.Type)
			}
			if res = Get(res, s.Field); res == nil {
				return nil, nil
			}
		}
	}
	return res, nil
}

// ListPath appends to dst every node matching path, which may contain "[*]"
// and "..". A field applied to a group selects it in every member.
func (y *Node) ListPath(dst []*Node, path string) ([]*Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return y.listPath(dst, p), nil
}

func (y *Node) listPath(dst []*Node, p Path) []*Node {
	if len(p) == 0 {
		return append(dst, y)
	}
	s, rest := p[0], p[1:]
	switch s.Kind {
	case SubtreeSegment:
		_ = y.Visit(func(node *Node, isPost bool) (bool, error) {
			if isPost {
				return false, nil
			}
			if node.Type != ArrayType {
				dst = node.listPath(dst, rest)
			}
			return !node.Type.IsLeaf(), nil
		})
	case AllSegment:
		for _, m := range Group(y) {
			dst = m.listPath(dst, rest)
		}
	case IndexSegment:
		if members := Group(y); s.Index < len(members) {
			dst = members[s.Index].listPath(dst, rest)
		}
	case FieldSegment:
		switch y.Type {
		case ObjectType:
			if v := Get(y, s.Field); v != nil {
				dst = v.listPath(dst, rest)
			}
		case ArrayType:
			for _, m := range y.Values {
				dst = m.listPath(dst, p)
			}
		}
	}
	return dst
}
