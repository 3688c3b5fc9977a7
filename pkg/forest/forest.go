package forest

// Forest is an ordered sequence of trees belonging to one system.
type Forest struct {
	Trees []*Tree
}

// NewTree appends a fresh, empty tree to the forest and returns it.
func (f *Forest) NewTree() *Tree {
	t := NewTree()
	f.Trees = append(f.Trees, t)
	return t
}

// Empty reports whether the forest has no trees.
func (f *Forest) Empty() bool { return len(f.Trees) == 0 }

// BreadthFirst visits every node of every tree in the forest, tree by tree,
// each tree in BFS order. Used to re-index a forest after it is replaced
// wholesale (see vessel.Synthesizer.SetForest).
func (f *Forest) BreadthFirst(visit func(tree *Tree, id NodeID, node *Node)) {
	for _, t := range f.Trees {
		t.BreadthFirst(func(id NodeID, n *Node) {
			visit(t, id, n)
		})
	}
}
