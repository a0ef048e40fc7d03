package equation

// Element is a read-only view of a node in the host document tree.
type Element interface {
	ElementType() Kind
	NumChildren() int
	Child(i int) Element
	Code() string
	Text() string
	Parent() Element
}

// Document gives access to the element under the cursor, nil if there is no cursor.
type Document interface {
	Cursor() Element
}

type Node struct {
	Kind     Kind    `json:"kind"`
	Data     string  `json:"data,omitempty"` // code for functions and symbols, content for text
	Children []*Node `json:"children,omitempty"`

	parent *Node
}

// Link sets parent references for the whole subtree and returns root.
func Link(root *Node) *Node {
	for _, child := range root.Children {
		child.parent = root
		Link(child)
	}

	return root
}

func (n *Node) ElementType() Kind {
	return n.Kind
}

func (n *Node) NumChildren() int {
	return len(n.Children)
}

func (n *Node) Child(i int) Element {
	return n.Children[i]
}

func (n *Node) Code() string {
	return n.Data
}

func (n *Node) Text() string {
	return n.Data
}

func (n *Node) Parent() Element {
	if n.parent == nil {
		return nil
	}

	return n.parent
}
