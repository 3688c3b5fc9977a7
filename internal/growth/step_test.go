package growth

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func newTestSystem(t *testing.T, settings SystemSettings) *SystemData {
	t.Helper()
	sd := NewSystemData(r3.Vec{X: -100, Y: -100, Z: -100}, r3.Vec{X: 100, Y: 100, Z: 100}, settings)
	tree := sd.Forest.NewTree()
	rootID, err := tree.CreateRoot(r3.Vec{}, settings.TermRadius)
	if err != nil {
		t.Fatalf("create root: %v", err)
	}
	if err := sd.IndexNode(0, rootID, r3.Vec{}); err != nil {
		t.Fatalf("index root: %v", err)
	}
	return sd
}

func TestStepNoOpOnEmptyForest(t *testing.T) {
	settings := DefaultSystemSettings()
	sd := NewSystemData(r3.Vec{X: -10, Y: -10, Z: -10}, r3.Vec{X: 10, Y: 10, Z: 10}, settings)
	Step(sd, settings)
	if len(sd.Forest.Trees) != 0 {
		t.Fatalf("expected no trees created on an empty forest")
	}
}

func TestStepElongatesTowardSingleAttraction(t *testing.T) {
	settings := DefaultSystemSettings()
	settings.InfluenceAttr = 10
	settings.GrowthDist = 1
	settings.KillAttr = 0.5
	settings.TermRadius = 0.05

	sd := newTestSystem(t, settings)
	attr := r3.Vec{X: 0, Y: 0, Z: 5}
	if err := sd.CreateAttr(attr); err != nil {
		t.Fatalf("create attr: %v", err)
	}

	Step(sd, settings)

	tree := sd.Forest.Trees[0]
	root, _ := tree.GetNode(tree.RootID())
	children := root.Children()
	if len(children) != 1 {
		t.Fatalf("expected root to gain exactly one child, got %d", len(children))
	}

	child, _ := tree.GetNode(children[0])
	want := r3.Vec{X: 0, Y: 0, Z: 1}
	if math.Abs(child.Pos.X-want.X) > 1e-9 || math.Abs(child.Pos.Y-want.Y) > 1e-9 || math.Abs(child.Pos.Z-want.Z) > 1e-9 {
		t.Fatalf("expected new child at %v, got %v", want, child.Pos)
	}
	if child.Radius != settings.TermRadius {
		t.Fatalf("expected terminal radius %v, got %v", settings.TermRadius, child.Radius)
	}

	found := false
	sd.AttrIndex.Traverse(func(r3.Vec) { found = true })
	if !found {
		t.Fatalf("attraction should not be killed with kill_attr=0.5")
	}
}

func TestStepKillsAttractionWithinKillRadius(t *testing.T) {
	settings := DefaultSystemSettings()
	settings.InfluenceAttr = 10
	settings.GrowthDist = 1
	settings.KillAttr = 5
	settings.TermRadius = 0.05

	sd := newTestSystem(t, settings)
	attr := r3.Vec{X: 0, Y: 0, Z: 5}
	_ = sd.CreateAttr(attr)

	Step(sd, settings)

	remaining := 0
	sd.AttrIndex.Traverse(func(r3.Vec) { remaining++ })
	if remaining != 0 {
		t.Fatalf("expected attraction to be killed, %d remain", remaining)
	}
	if len(sd.Killed) != 1 || sd.Killed[0] != attr {
		t.Fatalf("expected killed buffer to contain %v, got %v", attr, sd.Killed)
	}
}

func TestStepBifurcatesLeafOnWideSpread(t *testing.T) {
	settings := DefaultSystemSettings()
	settings.InfluenceAttr = 5
	settings.GrowthDist = 1
	settings.BifThresh = 0
	settings.TermRadius = 0.05
	settings.PerceptionConeDeg = 180

	sd := newTestSystem(t, settings)
	tree := sd.Forest.Trees[0]
	root, _ := tree.GetNode(tree.RootID())
	_ = root

	childID, err := tree.CreateNode(tree.RootID(), r3.Vec{X: 0, Y: 0, Z: 1}, settings.TermRadius)
	if err != nil {
		t.Fatalf("create leaf: %v", err)
	}
	if err := sd.IndexNode(0, childID, r3.Vec{X: 0, Y: 0, Z: 1}); err != nil {
		t.Fatalf("index leaf: %v", err)
	}

	for _, p := range []r3.Vec{{X: 1, Y: 0, Z: 2}, {X: -1, Y: 0, Z: 2}, {X: 0, Y: 1, Z: 2}} {
		if err := sd.CreateAttr(p); err != nil {
			t.Fatalf("create attr: %v", err)
		}
	}

	Step(sd, settings)

	leaf, _ := tree.GetNode(childID)
	if !leaf.IsJoint() {
		t.Fatalf("expected leaf to bifurcate into a joint, kind children=%d", len(leaf.Children()))
	}

	children := leaf.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 new children, got %d", len(children))
	}
	for _, id := range children {
		n, _ := tree.GetNode(id)
		if n.Radius != settings.TermRadius {
			t.Fatalf("expected new leaves at terminal radius, got %v", n.Radius)
		}
	}

	wantRadius := 0.0
	{
		c0, _ := tree.GetNode(children[0])
		c1, _ := tree.GetNode(children[1])
		wantRadius = parentRadiusForTest(c0.Radius, c1.Radius, settings.Gamma)
	}
	if math.Abs(leaf.Radius-wantRadius) > 1e-9 {
		t.Fatalf("expected joint radius %v, got %v", wantRadius, leaf.Radius)
	}
}

func parentRadiusForTest(rl, rr, gamma float64) float64 {
	return math.Pow(math.Pow(rl, gamma)+math.Pow(rr, gamma), 1/gamma)
}

func TestRecalcToRootCombinesJointChildren(t *testing.T) {
	settings := DefaultSystemSettings()
	settings.TermRadius = 0.1
	sd := newTestSystem(t, settings)
	tree := sd.Forest.Trees[0]

	interID, _ := tree.CreateNode(tree.RootID(), r3.Vec{X: 0, Y: 0, Z: 1}, settings.TermRadius)
	leftID, _ := tree.CreateNode(interID, r3.Vec{X: 1, Y: 0, Z: 2}, 0.2)
	rightID, _ := tree.CreateNode(interID, r3.Vec{X: -1, Y: 0, Z: 2}, 0.3)
	_ = leftID
	_ = rightID

	recalcToRoot(tree, interID, settings)

	inter, _ := tree.GetNode(interID)
	if want := parentRadiusForTest(0.2, 0.3, settings.Gamma); inter.Radius != want {
		t.Fatalf("expected inter-turned-joint radius to combine children, got %v", inter.Radius)
	}
}

func TestNodeClosestToAttractionIsChosenDeterministically(t *testing.T) {
	settings := DefaultSystemSettings()
	settings.InfluenceAttr = 20
	settings.PerceptionConeDeg = 360
	settings.TermRadius = 0.05

	sd := NewSystemData(r3.Vec{X: -100, Y: -100, Z: -100}, r3.Vec{X: 100, Y: 100, Z: 100}, settings)
	tree := sd.Forest.NewTree()
	rootID, _ := tree.CreateRoot(r3.Vec{}, settings.TermRadius)
	_ = sd.IndexNode(0, rootID, r3.Vec{})

	nearID, _ := tree.CreateNode(rootID, r3.Vec{X: 1}, settings.TermRadius)
	_ = sd.IndexNode(0, nearID, r3.Vec{X: 1})
	farID, _ := tree.CreateNode(rootID, r3.Vec{X: -1}, settings.TermRadius)
	_ = sd.IndexNode(0, farID, r3.Vec{X: -1})

	_ = sd.CreateAttr(r3.Vec{X: 0.9})

	assoc := associate(sd, settings)
	if len(assoc) != 1 {
		t.Fatalf("expected exactly one associated node, got %d", len(assoc))
	}
	if assoc[0].ref.ID != nearID {
		t.Fatalf("expected nearest node %v chosen, got %v", nearID, assoc[0].ref.ID)
	}
}
