package ast

// Walk visits node and its children depth first in source order. Children are
// skipped when fn returns false.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, decl := range n.Decls {
			Walk(decl, fn)
		}

	case *VarDecl:
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *BinaryExpr:
		if n.Left != nil {
			Walk(n.Left, fn)
		}
		if n.Right != nil {
			Walk(n.Right, fn)
		}

	case *PrefixExpr:
		if n.Value != nil {
			Walk(n.Value, fn)
		}
	}
}

// CollectAllNodes returns root and every descendant in visiting order.
func CollectAllNodes(root Node) []Node {
	var nodes []Node
	Walk(root, func(n Node) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}

// SourceText returns the slice of source covered by node, or "" when the
// node's offsets do not fit the source.
func SourceText(source string, node Node) string {
	start, end := node.NodePos().Offset, node.NodeEndPos().Offset
	if start < 0 || end > len(source) || start > end {
		return ""
	}
	return source[start:end]
}
