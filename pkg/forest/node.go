// Package forest holds the arena-backed rooted trees a growing vascular
// system is made of. Nodes are addressed by a stable id within their owning
// Tree; the tree is never passed by embedding a pointer inside the node
// (see DESIGN.md on the back-reference hazard in the original source) —
// callers that need the owning tree already have it in hand at every call
// site in this module.
package forest

import "gonum.org/v1/gonum/spatial/r3"

// NodeID addresses a Node within its owning Tree's arena. It is stable for
// the lifetime of the tree; nodes are never removed once created.
type NodeID int

// NilNodeID is the id of "no node" — a root's parent, or an absent child.
const NilNodeID NodeID = -1

// Kind is the topological kind derived from a node's parent/children
// shape. It is computed, never stored, so it cannot drift from the data.
type Kind int

const (
	// KindRoot is any node without a parent.
	KindRoot Kind = iota
	// KindLeaf is a non-root node with no children.
	KindLeaf
	// KindInter is a non-root node with exactly one child.
	KindInter
	// KindJoint is a non-root node with exactly two children (a bifurcation).
	KindJoint
)

// Node is one vessel segment endpoint: a position, a radius, and up to two
// children.
type Node struct {
	Pos    r3.Vec
	Radius float64

	parent     NodeID
	children   [2]NodeID
	childCount int
}

// Parent returns the node's parent, or NilNodeID for a root.
func (n *Node) Parent() NodeID { return n.parent }

// Children returns the node's children in creation order (0, 1, or 2 of them).
func (n *Node) Children() []NodeID { return n.children[:n.childCount] }

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool { return n.parent == NilNodeID }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return n.childCount == 0 }

// IsInter reports whether the node has exactly one child.
func (n *Node) IsInter() bool { return n.childCount == 1 }

// IsJoint reports whether the node has exactly two children.
func (n *Node) IsJoint() bool { return n.childCount == 2 }

// Kind reports the node's mutually-exclusive topological kind, with root
// taking priority over leaf/inter/joint (a freshly created root with one
// child is KindRoot, not KindInter — use IsInter directly when a caller
// needs to know about root-with-one-child specifically; see DESIGN.md).
func (n *Node) Kind() Kind {
	switch {
	case n.IsRoot():
		return KindRoot
	case n.IsLeaf():
		return KindLeaf
	case n.IsInter():
		return KindInter
	default:
		return KindJoint
	}
}
