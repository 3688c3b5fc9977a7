package law

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// BestLineFit returns the centroid of points and the unit axis of the line
// through them that minimizes orthogonal distance — the eigenvector of the
// largest eigenvalue of the points' 3x3 covariance matrix. It treats
// gonum/mat's symmetric eigensolver as a black box, the direct analogue of
// the Eigen::SelfAdjointEigenSolver the original synthesizer used for the
// same computation.
//
// BestLineFit does not check for an empty point set; with no points the
// centroid's components are NaN. Callers only invoke it with the
// attraction list backing a bifurcation decision, which is never empty by
// construction (bifurcation requires at least two associated points).
func BestLineFit(points []r3.Vec) (centroid, axis r3.Vec) {
	n := float64(len(points))

	var sum r3.Vec
	for _, p := range points {
		sum = r3.Add(sum, p)
	}
	centroid = r3.Scale(1/n, sum)

	var c [3][3]float64
	for _, p := range points {
		d := r3.Sub(p, centroid)
		dv := [3]float64{d.X, d.Y, d.Z}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				c[i][j] += dv[i] * dv[j]
			}
		}
	}

	sym := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			sym.SetSym(i, j, c[i][j])
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return centroid, r3.Vec{X: 1}
	}

	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}

	axis = r3.Vec{
		X: vectors.At(0, best),
		Y: vectors.At(1, best),
		Z: vectors.At(2, best),
	}
	return centroid, axis
}
