package forest

import "gonum.org/v1/gonum/spatial/r3"

// Tree is a single rooted tree backed by a flat node arena, the same
// slice-of-stable-index pattern the teacher engine uses for its grid
// storage, generalized here from a dense 2D raster to a sparse node set.
type Tree struct {
	nodes  []Node
	rootID NodeID
}

// NewTree returns an empty tree with no root yet.
func NewTree() *Tree {
	return &Tree{rootID: NilNodeID}
}

// RootID returns the tree's root id, or NilNodeID if CreateRoot has not
// been called yet.
func (t *Tree) RootID() NodeID { return t.rootID }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// CreateRoot creates the tree's first node. It fails with ErrRootExists if
// the tree already has one.
func (t *Tree) CreateRoot(pos r3.Vec, radius float64) (NodeID, error) {
	if t.rootID != NilNodeID {
		return NilNodeID, ErrRootExists
	}
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		Pos:    pos,
		Radius: radius,
		parent: NilNodeID,
	})
	t.rootID = id
	return id, nil
}

// CreateNode appends a new child to parentID. It fails with
// ErrTooManyChildren if the parent already has two children, or
// ErrUnknownNode if parentID is not in the arena.
func (t *Tree) CreateNode(parentID NodeID, pos r3.Vec, radius float64) (NodeID, error) {
	parent, err := t.nodeRef(parentID)
	if err != nil {
		return NilNodeID, err
	}
	if parent.childCount >= 2 {
		return NilNodeID, ErrTooManyChildren
	}

	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		Pos:    pos,
		Radius: radius,
		parent: parentID,
	})

	// Re-fetch: append above may have reallocated the backing array.
	parent, _ = t.nodeRef(parentID)
	parent.children[parent.childCount] = id
	parent.childCount++
	return id, nil
}

// GetNode returns the node addressed by id.
func (t *Tree) GetNode(id NodeID) (*Node, error) {
	return t.nodeRef(id)
}

// Root returns the tree's root node. It fails with ErrNoRoot if
// CreateRoot has not been called yet.
func (t *Tree) Root() (*Node, error) {
	if t.rootID == NilNodeID {
		return nil, ErrNoRoot
	}
	return t.nodeRef(t.rootID)
}

func (t *Tree) nodeRef(id NodeID) (*Node, error) {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil, ErrUnknownNode
	}
	return &t.nodes[id], nil
}

// ToRoot invokes visit on startID, then on its parent, and so on up to and
// including the root.
func (t *Tree) ToRoot(startID NodeID, visit func(*Node)) {
	id := startID
	for id != NilNodeID {
		n, err := t.nodeRef(id)
		if err != nil {
			return
		}
		visit(n)
		id = n.parent
	}
}

// BreadthFirst invokes visit on every node of the tree in BFS order
// starting from the root. It is a no-op on a tree with no root.
func (t *Tree) BreadthFirst(visit func(NodeID, *Node)) {
	if t.rootID == NilNodeID {
		return
	}
	queue := []NodeID{t.rootID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		n, err := t.nodeRef(id)
		if err != nil {
			continue
		}
		visit(id, n)
		queue = append(queue, n.Children()...)
	}
}
