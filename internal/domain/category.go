package domain

// CategoryNode is a named entry of the category tree. A node without
// children is a leaf.
type CategoryNode struct {
	Name     string
	Children []*CategoryNode
}

// IsLeaf reports whether the node has no nested categories.
func (n *CategoryNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// CategoryTree is the sidebar grouping of a dataset. Roots keep document order.
type CategoryTree struct {
	Roots []*CategoryNode
}

// Count returns the number of top-level categories.
func (t CategoryTree) Count() int {
	return len(t.Roots)
}

// Size returns the number of nodes at every depth.
func (t CategoryTree) Size() int {
	n := 0
	t.Walk(func(*CategoryNode, int) bool {
		n++
		return true
	})
	return n
}

// Walk visits nodes in pre-order with an explicit stack, so depth is bounded
// only by memory. Returning false from fn skips that node's children.
func (t CategoryTree) Walk(fn func(node *CategoryNode, depth int) bool) {
	type frame struct {
		node  *CategoryNode
		depth int
	}

	stack := make([]frame, 0, len(t.Roots))
	for i := len(t.Roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{t.Roots[i], 0})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(f.node, f.depth) {
			continue
		}
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.node.Children[i], f.depth + 1})
		}
	}
}

// Find returns the first node with the given name, searching breadth-first.
func (t CategoryTree) Find(name string) *CategoryNode {
	queue := append([]*CategoryNode(nil), t.Roots...)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.Name == name {
			return n
		}
		queue = append(queue, n.Children...)
	}
	return nil
}
