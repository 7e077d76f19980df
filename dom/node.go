package dom

type Kind int

const (
	ElementNode Kind = iota
	TextNode
	CDataNode
)

func (k Kind) String() string {
	switch k {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CDataNode:
		return "cdata"
	default:
		return "<unknown kind>"
	}
}

type Attr struct {
	Name  string
	Value string
}

type Node struct {
	Kind     Kind
	Name     string
	Attrs    []Attr
	Children []*Node
	Data     string
}

func Element(name string, attrs ...Attr) *Node {
	return &Node{Kind: ElementNode, Name: name, Attrs: attrs}
}

func Text(data string) *Node {
	return &Node{Kind: TextNode, Data: data}
}

func CData(data string) *Node {
	return &Node{Kind: CDataNode, Data: data}
}

// Append adds children to n and returns n.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Elements returns the element children of n.
func (n *Node) Elements() []*Node {
	var res []*Node
	for _, c := range n.Children {
		if c.Kind == ElementNode {
			res = append(res, c)
		}
	}
	return res
}
