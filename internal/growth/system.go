// Package growth implements the per-system growth step of the vessel
// synthesis engine: closest-node association, elongation/bifurcation,
// and the kill-attraction sweep. It has no notion of the two-system
// coupling or domain sampling; that belongs to the simulation driver
// (pkg/vessel), which calls Step once per system per tick.
package growth

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/nikolausrauch/vessel-synthesizer/internal/spatial"
	"github.com/nikolausrauch/vessel-synthesizer/pkg/forest"
)

// System is the closed variant set of vessel systems.
type System int

const (
	Arterial System = iota
	Venous
)

func (s System) String() string {
	if s == Venous {
		return "venous"
	}
	return "arterial"
}

// NodeRef is a stable, non-owning handle to a node: which tree in the
// forest (by position, not by pointer, so it survives forest
// replacement) and which node id within that tree.
type NodeRef struct {
	TreeIdx int
	ID      forest.NodeID
}

// SystemData groups everything one system owns exclusively: its forest,
// the spatial indices serving growth queries against it, the
// killed-attraction buffer drained once per step, and its runtime
// parameters.
type SystemData struct {
	Forest forest.Forest

	NodeIndex *spatial.Index[NodeRef]
	AttrIndex *spatial.Index[r3.Vec]

	Killed []r3.Vec

	Params RuntimeParameters
}

// NewSystemData returns a SystemData with empty indices bounded by
// [min, max] and runtime parameters initialized from settings.
func NewSystemData(min, max r3.Vec, settings SystemSettings) *SystemData {
	return &SystemData{
		NodeIndex: spatial.New[NodeRef](min, max),
		AttrIndex: spatial.New[r3.Vec](min, max),
		Params:    newRuntimeParameters(settings),
	}
}

// IndexNode inserts a node's handle into the node index at pos.
func (sd *SystemData) IndexNode(treeIdx int, id forest.NodeID, pos r3.Vec) error {
	return sd.NodeIndex.Insert(pos, NodeRef{TreeIdx: treeIdx, ID: id})
}

// Tree returns the tree addressed by a NodeRef's TreeIdx.
func (sd *SystemData) Tree(ref NodeRef) *forest.Tree {
	return sd.Forest.Trees[ref.TreeIdx]
}

// Node dereferences a NodeRef to its node.
func (sd *SystemData) Node(ref NodeRef) (*forest.Node, error) {
	return sd.Tree(ref).GetNode(ref.ID)
}

// Reindex clears and rebuilds the node index from the current forest
// contents, in forest/tree BFS order. Used after the forest is replaced
// wholesale by the driver's SetForest.
func (sd *SystemData) Reindex() {
	sd.NodeIndex.Clear()
	treeIdx := make(map[*forest.Tree]int, len(sd.Forest.Trees))
	for i, t := range sd.Forest.Trees {
		treeIdx[t] = i
	}
	sd.Forest.BreadthFirst(func(tree *forest.Tree, id forest.NodeID, n *forest.Node) {
		_ = sd.NodeIndex.Insert(n.Pos, NodeRef{TreeIdx: treeIdx[tree], ID: id})
	})
}

// TryAttr conditionally inserts an attraction at pos, applying the
// birth-node then birth-attr filters. It reports whether the insert
// happened.
func (sd *SystemData) TryAttr(pos r3.Vec, params RuntimeParameters) bool {
	blocked := false
	sd.NodeIndex.EuclideanRange(pos, params.BirthNode, func(r3.Vec, NodeRef) {
		blocked = true
	})
	if blocked {
		return false
	}
	sd.AttrIndex.EuclideanRange(pos, params.BirthAttr, func(r3.Vec, r3.Vec) {
		blocked = true
	})
	if blocked {
		return false
	}
	_ = sd.AttrIndex.Insert(pos, pos)
	return true
}

// CreateAttr unconditionally inserts an attraction at pos.
func (sd *SystemData) CreateAttr(pos r3.Vec) error {
	return sd.AttrIndex.Insert(pos, pos)
}
