package forest

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestCreateRootOnlyOnce(t *testing.T) {
	tr := NewTree()
	if _, err := tr.CreateRoot(r3.Vec{}, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tr.CreateRoot(r3.Vec{}, 1); !errors.Is(err, ErrRootExists) {
		t.Fatalf("expected ErrRootExists, got %v", err)
	}
}

func TestCreateNodeRejectsThirdChild(t *testing.T) {
	tr := NewTree()
	root, _ := tr.CreateRoot(r3.Vec{}, 1)
	if _, err := tr.CreateNode(root, r3.Vec{X: 1}, 1); err != nil {
		t.Fatalf("first child: %v", err)
	}
	if _, err := tr.CreateNode(root, r3.Vec{X: 2}, 1); err != nil {
		t.Fatalf("second child: %v", err)
	}
	if _, err := tr.CreateNode(root, r3.Vec{X: 3}, 1); !errors.Is(err, ErrTooManyChildren) {
		t.Fatalf("expected ErrTooManyChildren, got %v", err)
	}
}

func TestKindDerivation(t *testing.T) {
	tr := NewTree()
	root, _ := tr.CreateRoot(r3.Vec{}, 1)
	rootNode, _ := tr.GetNode(root)
	if rootNode.Kind() != KindRoot {
		t.Fatalf("expected root kind")
	}

	inter, _ := tr.CreateNode(root, r3.Vec{X: 1}, 1)
	interNode, _ := tr.GetNode(inter)
	if interNode.Kind() != KindLeaf {
		t.Fatalf("fresh node should be a leaf, got %v", interNode.Kind())
	}

	leaf, _ := tr.CreateNode(inter, r3.Vec{X: 2}, 1)
	interNode, _ = tr.GetNode(inter)
	if interNode.Kind() != KindInter {
		t.Fatalf("node with one child should be inter, got %v", interNode.Kind())
	}

	_, _ = tr.CreateNode(inter, r3.Vec{X: 2, Y: 1}, 1)
	interNode, _ = tr.GetNode(inter)
	if interNode.Kind() != KindJoint {
		t.Fatalf("node with two children should be joint, got %v", interNode.Kind())
	}

	leafNode, _ := tr.GetNode(leaf)
	if leafNode.Kind() != KindLeaf {
		t.Fatalf("expected leaf kind")
	}
}

func TestToRootWalksToRootInclusive(t *testing.T) {
	tr := NewTree()
	root, _ := tr.CreateRoot(r3.Vec{}, 1)
	a, _ := tr.CreateNode(root, r3.Vec{X: 1}, 1)
	b, _ := tr.CreateNode(a, r3.Vec{X: 2}, 1)

	var visited []r3.Vec
	tr.ToRoot(b, func(n *Node) { visited = append(visited, n.Pos) })

	if len(visited) != 3 {
		t.Fatalf("expected 3 visited nodes, got %d", len(visited))
	}
	if visited[0].X != 2 || visited[1].X != 1 || visited[2].X != 0 {
		t.Fatalf("unexpected walk order: %v", visited)
	}
}

func TestBreadthFirstOrder(t *testing.T) {
	tr := NewTree()
	root, _ := tr.CreateRoot(r3.Vec{}, 1)
	l, _ := tr.CreateNode(root, r3.Vec{X: -1}, 1)
	r, _ := tr.CreateNode(root, r3.Vec{X: 1}, 1)
	_, _ = tr.CreateNode(l, r3.Vec{X: -2}, 1)

	var order []NodeID
	tr.BreadthFirst(func(id NodeID, n *Node) { order = append(order, id) })

	if len(order) != 4 {
		t.Fatalf("expected 4 nodes visited, got %d", len(order))
	}
	if order[0] != root {
		t.Fatalf("expected root visited first")
	}
	if !(order[1] == l && order[2] == r) {
		t.Fatalf("expected children visited before grandchildren, got %v", order)
	}
}

func TestForestBreadthFirstVisitsAllTrees(t *testing.T) {
	var f Forest
	t1 := f.NewTree()
	t2 := f.NewTree()
	r1, _ := t1.CreateRoot(r3.Vec{}, 1)
	r2, _ := t2.CreateRoot(r3.Vec{X: 10}, 1)

	seen := map[*Tree][]NodeID{}
	f.BreadthFirst(func(tree *Tree, id NodeID, n *Node) {
		seen[tree] = append(seen[tree], id)
	})

	if len(seen[t1]) != 1 || seen[t1][0] != r1 {
		t.Fatalf("tree1 not visited correctly: %v", seen[t1])
	}
	if len(seen[t2]) != 1 || seen[t2][0] != r2 {
		t.Fatalf("tree2 not visited correctly: %v", seen[t2])
	}
}
