package spatial

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func box() (r3.Vec, r3.Vec) {
	return r3.Vec{X: -10, Y: -10, Z: -10}, r3.Vec{X: 10, Y: 10, Z: 10}
}

func TestInsertRejectsOutOfBounds(t *testing.T) {
	min, max := box()
	idx := New[int](min, max)
	if err := idx.Insert(r3.Vec{X: 100}, 1); err != ErrOutOfBounds {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestEuclideanRangeFindsNearbyPoints(t *testing.T) {
	min, max := box()
	idx := New[int](min, max)

	pts := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 5, Y: 0, Z: 0},
		{X: -9, Y: -9, Z: -9},
	}
	for i, p := range pts {
		if err := idx.Insert(p, i); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	var found []int
	idx.EuclideanRange(r3.Vec{}, 2, func(pos r3.Vec, val int) {
		found = append(found, val)
	})

	if len(found) != 2 {
		t.Fatalf("expected 2 points within radius 2, got %d: %v", len(found), found)
	}
}

func TestRemoveDropsExactMatch(t *testing.T) {
	min, max := box()
	idx := New[string](min, max)
	p := r3.Vec{X: 1, Y: 1, Z: 1}
	_ = idx.Insert(p, "a")
	_ = idx.Insert(p, "b")

	idx.Remove(p, "a")

	var remaining []string
	idx.Traverse(func(v string) { remaining = append(remaining, v) })
	if len(remaining) != 1 || remaining[0] != "b" {
		t.Fatalf("expected only \"b\" left, got %v", remaining)
	}
}

func TestTraverseVisitsEveryInsertedValueOnce(t *testing.T) {
	min, max := box()
	idx := New[int](min, max)

	const n = 200
	for i := 0; i < n; i++ {
		x := float64(i%20) - 10
		y := float64((i/20)%20) - 10
		if err := idx.Insert(r3.Vec{X: x, Y: y, Z: 0}, i); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	seen := map[int]int{}
	idx.Traverse(func(v int) { seen[v]++ })

	if len(seen) != n {
		t.Fatalf("expected %d distinct values, got %d", n, len(seen))
	}
	for v, count := range seen {
		if count != 1 {
			t.Fatalf("value %d visited %d times", v, count)
		}
	}
}

func TestClearRemovesAllEntries(t *testing.T) {
	min, max := box()
	idx := New[int](min, max)
	_ = idx.Insert(r3.Vec{}, 1)
	_ = idx.Insert(r3.Vec{X: 1}, 2)

	idx.Clear()

	count := 0
	idx.Traverse(func(int) { count++ })
	if count != 0 {
		t.Fatalf("expected empty index after Clear, got %d entries", count)
	}

	if err := idx.Insert(r3.Vec{}, 3); err != nil {
		t.Fatalf("insert after clear: %v", err)
	}
}

func TestSplitPreservesAllEntriesPastLeafCapacity(t *testing.T) {
	min, max := box()
	idx := New[int](min, max)

	for i := 0; i < defaultLeafCap*4; i++ {
		x := float64(i%20) - 10
		y := float64((i/20)%20) - 10
		z := float64((i / 400) % 20) - 10
		if err := idx.Insert(r3.Vec{X: x, Y: y, Z: z}, i); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	count := 0
	idx.Traverse(func(int) { count++ })
	if count != defaultLeafCap*4 {
		t.Fatalf("expected %d entries, got %d", defaultLeafCap*4, count)
	}
}
