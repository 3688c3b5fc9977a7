package law

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestBestLineFitAxisAlignedPoints(t *testing.T) {
	points := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0.01, Z: -0.01},
		{X: 2, Y: -0.01, Z: 0.01},
		{X: 3, Y: 0.02, Z: 0},
	}

	centroid, axis := BestLineFit(points)

	wantCentroid := r3.Vec{X: 1.5, Y: 0.005, Z: 0}
	if math.Abs(centroid.X-wantCentroid.X) > 1e-9 {
		t.Fatalf("centroid.X = %v, want %v", centroid.X, wantCentroid.X)
	}

	// The dominant axis should be closely aligned with X, regardless of sign.
	dot := math.Abs(r3.Dot(axis, r3.Vec{X: 1}))
	if dot < 0.99 {
		t.Fatalf("expected axis close to X, got %v (|dot|=%v)", axis, dot)
	}
}

func TestBestLineFitAxisIsUnit(t *testing.T) {
	points := []r3.Vec{
		{X: 0, Y: 0, Z: 5},
		{X: 1, Y: 1, Z: 4},
		{X: -1, Y: 2, Z: 3},
	}
	_, axis := BestLineFit(points)
	if math.Abs(r3.Norm(axis)-1) > 1e-6 {
		t.Fatalf("expected unit axis, got norm %v", r3.Norm(axis))
	}
}
