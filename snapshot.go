package equation

// Snapshot copies element and its descendants into a linked Node tree.
//
// Conversion reads the host tree as it goes, a snapshot isolates it from edits made by the host in the meantime.
func Snapshot(e Element) *Node {
	return Link(snapshot(e))
}

func snapshot(e Element) *Node {
	node := &Node{Kind: e.ElementType()}

	switch node.Kind {
	case TextKind:
		node.Data = e.Text()
	case FunctionKind, SymbolKind:
		node.Data = e.Code()
	}

	for i := 0; i < e.NumChildren(); i++ {
		node.Children = append(node.Children, snapshot(e.Child(i)))
	}

	return node
}
