// Package spatial implements a bounded 3D spatial index used to answer
// euclidean range queries against node and attraction-point positions
// during growth. It is a loose octree: points are stored in leaf buckets
// up to a target capacity, splitting into 8 octants on overflow.
package spatial

import "gonum.org/v1/gonum/spatial/r3"

const (
	defaultLeafCap = 32
	maxDepth       = 16
)

type entry[V comparable] struct {
	pos r3.Vec
	val V
}

type node[V comparable] struct {
	bounds   bounds
	entries  []entry[V]
	children [8]*node[V]
	leaf     bool
}

// Index is a bounded 3D spatial index over values of type V, keyed by
// position. Positions outside the index's fixed bounds are rejected at
// Insert time and Remove is a no-op for them; a range query may be
// centred anywhere and returns the stored entries within its radius.
type Index[V comparable] struct {
	root    *node[V]
	leafCap int
}

// New returns an empty index over the box [min, max].
func New[V comparable](min, max r3.Vec) *Index[V] {
	return &Index[V]{
		root:    &node[V]{bounds: bounds{min: min, max: max}, leaf: true},
		leafCap: defaultLeafCap,
	}
}

// Insert adds val at pos. It returns ErrOutOfBounds if pos lies outside
// the index's bounds.
func (idx *Index[V]) Insert(pos r3.Vec, val V) error {
	if !idx.root.bounds.contains(pos) {
		return ErrOutOfBounds
	}
	insert(idx.root, entry[V]{pos: pos, val: val}, idx.leafCap, 0)
	return nil
}

func insert[V comparable](n *node[V], e entry[V], leafCap, depth int) {
	if n.leaf {
		n.entries = append(n.entries, e)
		if len(n.entries) > leafCap && depth < maxDepth {
			split(n, leafCap, depth)
		}
		return
	}
	c := n.children[n.bounds.octantIndex(e.pos)]
	insert(c, e, leafCap, depth+1)
}

func split[V comparable](n *node[V], leafCap, depth int) {
	for i := range n.children {
		n.children[i] = &node[V]{bounds: n.bounds.octant(i), leaf: true}
	}
	old := n.entries
	n.entries = nil
	n.leaf = false
	for _, e := range old {
		c := n.children[n.bounds.octantIndex(e.pos)]
		insert(c, e, leafCap, depth+1)
	}
}

// Remove deletes the first entry matching both pos and val. It is a no-op
// if no such entry exists.
func (idx *Index[V]) Remove(pos r3.Vec, val V) {
	if !idx.root.bounds.contains(pos) {
		return
	}
	remove(idx.root, pos, val)
}

func remove[V comparable](n *node[V], pos r3.Vec, val V) bool {
	if n.leaf {
		for i, e := range n.entries {
			if e.pos == pos && e.val == val {
				n.entries = append(n.entries[:i], n.entries[i+1:]...)
				return true
			}
		}
		return false
	}
	c := n.children[n.bounds.octantIndex(pos)]
	return remove(c, pos, val)
}

// EuclideanRange invokes visit for every stored (pos, val) with
// |pos-center| <= radius.
func (idx *Index[V]) EuclideanRange(center r3.Vec, radius float64, visit func(pos r3.Vec, val V)) {
	rangeQuery(idx.root, center, radius, visit)
}

func rangeQuery[V comparable](n *node[V], center r3.Vec, radius float64, visit func(r3.Vec, V)) {
	if !n.bounds.intersectsSphere(center, radius) {
		return
	}
	if n.leaf {
		for _, e := range n.entries {
			d := r3.Norm(r3.Sub(e.pos, center))
			if d <= radius {
				visit(e.pos, e.val)
			}
		}
		return
	}
	for _, c := range n.children {
		rangeQuery(c, center, radius, visit)
	}
}

// Traverse invokes visit on every stored value, in no particular order.
func (idx *Index[V]) Traverse(visit func(val V)) {
	traverse(idx.root, visit)
}

func traverse[V comparable](n *node[V], visit func(V)) {
	if n.leaf {
		for _, e := range n.entries {
			visit(e.val)
		}
		return
	}
	for _, c := range n.children {
		traverse(c, visit)
	}
}

// Clear removes every entry, keeping the index's bounds.
func (idx *Index[V]) Clear() {
	idx.root = &node[V]{bounds: idx.root.bounds, leaf: true}
}
