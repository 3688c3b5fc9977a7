package growth

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"

	"github.com/nikolausrauch/vessel-synthesizer/internal/geom"
	"github.com/nikolausrauch/vessel-synthesizer/pkg/forest"
	"github.com/nikolausrauch/vessel-synthesizer/pkg/law"
)

// association pairs a node with the attraction points that influence it
// this step.
type association struct {
	ref    NodeRef
	points []r3.Vec
}

// Step runs one growth tick for sd under settings: closest-node
// association, growth (elongation or bifurcation), then the
// kill-attraction sweep. It is a no-op if the forest has no trees.
func Step(sd *SystemData, settings SystemSettings) {
	if len(sd.Forest.Trees) == 0 {
		return
	}

	associations := associate(sd, settings)
	killSet := map[r3.Vec]bool{}
	for _, a := range associations {
		grow(sd, settings, a)
		for _, p := range a.points {
			killSet[p] = true
		}
	}
	kill(sd, settings, killSet)
}

// associate performs the closest-node association phase: for every
// attraction in the system's attraction index, find the nearest eligible
// node within influence_attr, subject to the perception-cone filter, and
// group attractions by the node they were assigned to.
//
// Nodes are keyed by (tree index, node id) rather than by pointer so
// that, given identical index state, iteration order and grouping are
// reproducible across runs.
func associate(sd *SystemData, settings SystemSettings) []association {
	byNode := map[NodeRef][]r3.Vec{}

	sd.AttrIndex.Traverse(func(p r3.Vec) {
		type candidate struct {
			ref  NodeRef
			dist float64
		}
		var candidates []candidate
		sd.NodeIndex.EuclideanRange(p, sd.Params.InfluenceAttr, func(pos r3.Vec, ref NodeRef) {
			candidates = append(candidates, candidate{ref: ref, dist: r3.Norm(r3.Sub(p, pos))})
		})
		if len(candidates) == 0 {
			return
		}

		sort.Slice(candidates, func(i, j int) bool {
			if candidates[i].dist != candidates[j].dist {
				return candidates[i].dist < candidates[j].dist
			}
			if candidates[i].ref.TreeIdx != candidates[j].ref.TreeIdx {
				return candidates[i].ref.TreeIdx < candidates[j].ref.TreeIdx
			}
			return candidates[i].ref.ID < candidates[j].ref.ID
		})

		var chosen *candidate
		for i := range candidates {
			n, err := sd.Node(candidates[i].ref)
			if err != nil || n.IsJoint() {
				continue
			}
			chosen = &candidates[i]
			break
		}
		if chosen == nil {
			return
		}

		n, err := sd.Node(chosen.ref)
		if err != nil {
			return
		}
		if acceptsPerceptionCone(sd, settings, chosen.ref, n, p) {
			byNode[chosen.ref] = append(byNode[chosen.ref], p)
		}
	})

	out := make([]association, 0, len(byNode))
	for ref, points := range byNode {
		out = append(out, association{ref: ref, points: points})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ref.TreeIdx != out[j].ref.TreeIdx {
			return out[i].ref.TreeIdx < out[j].ref.TreeIdx
		}
		return out[i].ref.ID < out[j].ref.ID
	})
	return out
}

func acceptsPerceptionCone(sd *SystemData, settings SystemSettings, ref NodeRef, n *forest.Node, p r3.Vec) bool {
	if n.IsRoot() {
		return true
	}
	tree := sd.Tree(ref)
	parent, err := tree.GetNode(n.Parent())
	if err != nil {
		return true
	}
	dParent := geom.Unit(r3.Sub(n.Pos, parent.Pos))
	dAttr := geom.Unit(r3.Sub(p, n.Pos))
	theta := geom.AngleDeg(dParent, dAttr)
	half := settings.PerceptionConeDeg / 2

	if n.IsLeaf() {
		return theta <= half
	}
	if n.IsInter() {
		if theta > half {
			return false
		}
		phi := interPerfectAngle(sd, tree, n, settings)
		return math.Abs(theta-phi) <= half
	}
	return true
}

// interPerfectAngle computes the "perfect" continuation angle for an
// inter node by treating its sole child's radius and the terminal radius
// as the two children of a notional bifurcation at n.
func interPerfectAngle(sd *SystemData, tree *forest.Tree, n *forest.Node, settings SystemSettings) float64 {
	children := n.Children()
	child, err := tree.GetNode(children[0])
	if err != nil {
		return 0
	}
	rl := child.Radius
	rr := settings.TermRadius
	rp := law.ParentRadius(rl, rr, settings.Gamma)
	_, right := law.Angles(rp, rl, rr)
	return right
}

func grow(sd *SystemData, settings SystemSettings, a association) {
	n, err := sd.Node(a.ref)
	if err != nil {
		return
	}
	tree := sd.Tree(a.ref)

	dir := meanDirection(n.Pos, a.points)

	var dParent r3.Vec
	hasParent := !n.IsRoot()
	if hasParent {
		parent, err := tree.GetNode(n.Parent())
		if err == nil {
			dParent = geom.Unit(r3.Sub(n.Pos, parent.Pos))
		}
	}

	bias := dir
	switch {
	case !hasParent:
		bias = dir
	case n.IsLeaf():
		bias = dParent
	case n.IsInter():
		phi := interPerfectAngle(sd, tree, n, settings)
		normal := geom.Unit(r3.Cross(dParent, dir))
		bias = geom.Rotate(dParent, phi, normal)
	}

	if hasParent {
		dir = geom.Unit(r3.Add(r3.Scale(1-settings.Inertia, dir), r3.Scale(settings.Inertia, bias)))
	}

	if n.IsLeaf() && len(a.points) >= 2 && settings.BifThresh >= 0 && hasParent {
		if shouldBifurcate(dParent, n.Pos, a.points, settings.BifThresh) {
			bifurcate(sd, settings, tree, a.ref, n, a.points, dParent)
			return
		}
	}

	if settings.OnlyLeafDevelopment && !(n.IsLeaf() || n.IsInter()) {
		return
	}
	if n.IsRoot() && n.IsInter() {
		return
	}

	elongate(sd, settings, tree, a.ref, n, dir)
}

func meanDirection(from r3.Vec, points []r3.Vec) r3.Vec {
	sum := r3.Vec{}
	for _, p := range points {
		sum = r3.Add(sum, geom.Unit(r3.Sub(p, from)))
	}
	return geom.Unit(sum)
}

// shouldBifurcate reports whether the angular spread of points around
// dParent, measured at pos, meets bifThresh. The spread is the
// uncorrected sum-of-squared-deviations statistic the source uses,
// recovered from the population variance gonum/stat computes:
// sum((x-mean)^2) = popVariance * n.
func shouldBifurcate(dParent, pos r3.Vec, points []r3.Vec, bifThresh float64) bool {
	angles := make([]float64, len(points))
	for i, p := range points {
		angles[i] = geom.AngleDeg(dParent, geom.Unit(r3.Sub(p, pos)))
	}

	_, popVariance := stat.PopMeanVariance(angles, nil)
	spread := math.Sqrt(popVariance * float64(len(angles)))
	return spread >= bifThresh
}

func bifurcate(sd *SystemData, settings SystemSettings, tree *forest.Tree, ref NodeRef, n *forest.Node, points []r3.Vec, dParent r3.Vec) {
	rl, rr := settings.TermRadius, settings.TermRadius
	rp := law.ParentRadius(rl, rr, settings.Gamma)
	alphaL, alphaR := law.Angles(rp, rl, rr)

	centroid, axis := law.BestLineFit(points)
	toCentroid := geom.Unit(r3.Sub(centroid, n.Pos))
	up := geom.Unit(r3.Cross(toCentroid, axis))

	left := geom.Unit(geom.Rotate(dParent, alphaL, up))
	right := geom.Unit(geom.Rotate(dParent, alphaR, up))

	pos := n.Pos
	leftID, err := tree.CreateNode(ref.ID, r3.Add(pos, r3.Scale(settings.GrowthDist, left)), settings.TermRadius)
	if err != nil {
		return
	}
	rightID, err := tree.CreateNode(ref.ID, r3.Add(pos, r3.Scale(settings.GrowthDist, right)), settings.TermRadius)
	if err != nil {
		return
	}

	recalcToRoot(tree, ref.ID, settings)

	leftNode, _ := tree.GetNode(leftID)
	rightNode, _ := tree.GetNode(rightID)
	_ = sd.IndexNode(ref.TreeIdx, leftID, leftNode.Pos)
	_ = sd.IndexNode(ref.TreeIdx, rightID, rightNode.Pos)
}

func elongate(sd *SystemData, settings SystemSettings, tree *forest.Tree, ref NodeRef, n *forest.Node, dir r3.Vec) {
	pos := r3.Add(n.Pos, r3.Scale(settings.GrowthDist, dir))
	id, err := tree.CreateNode(ref.ID, pos, settings.TermRadius)
	if err != nil {
		return
	}
	recalcToRoot(tree, ref.ID, settings)
	_ = sd.IndexNode(ref.TreeIdx, id, pos)
}

// recalcToRoot walks from startID to the root reassigning radii: an
// inter node takes its sole child's radius, a joint takes the
// Murray-law combination of its two children's radii. The kind is judged
// by child count alone, so a root with one or two children is updated the
// same way; only nodes without children are left unchanged.
func recalcToRoot(tree *forest.Tree, startID forest.NodeID, settings SystemSettings) {
	tree.ToRoot(startID, func(n *forest.Node) {
		switch {
		case n.IsInter():
			children := n.Children()
			child, err := tree.GetNode(children[0])
			if err == nil {
				n.Radius = child.Radius
			}
		case n.IsJoint():
			children := n.Children()
			c0, err0 := tree.GetNode(children[0])
			c1, err1 := tree.GetNode(children[1])
			if err0 == nil && err1 == nil {
				n.Radius = law.ParentRadius(c0.Radius, c1.Radius, settings.Gamma)
			}
		}
	})
}

func kill(sd *SystemData, settings SystemSettings, killSet map[r3.Vec]bool) {
	for p := range killSet {
		found := false
		sd.NodeIndex.EuclideanRange(p, sd.Params.KillAttr, func(r3.Vec, NodeRef) {
			found = true
		})
		if !found {
			continue
		}
		sd.AttrIndex.Remove(p, p)
		sd.Killed = append(sd.Killed, p)
	}
}
