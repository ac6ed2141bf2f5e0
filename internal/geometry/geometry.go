// Package geometry holds the Euclidean measurements used by the calculator.
package geometry

import "gonum.org/v1/gonum/floats"

// VectorLength returns the Euclidean norm of v.
func VectorLength(v []float64) float64 {
	return floats.Norm(v, 2)
}

// PointDistance returns the Euclidean distance between p and q.
//
// The caller must ensure both points have the same length.
func PointDistance(p, q []float64) float64 {
	return floats.Distance(q, p, 2)
}

// Displacement returns q - p, the vector pointing from p to q.
func Displacement(p, q []float64) []float64 {
	return floats.SubTo(make([]float64, len(q)), q, p)
}
