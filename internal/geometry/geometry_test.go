package geometry

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func TestVectorLength(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		v    []float64
		want float64
	}{
		{name: "3-4-5", v: []float64{3, 4}, want: 5},
		{name: "zero", v: []float64{0, 0}, want: 0},
		{name: "negative", v: []float64{-3, -4}, want: 5},
		{name: "unit 6d", v: []float64{1, 1, 1, 1, 1, 1}, want: math.Sqrt(6)},
		{name: "3d", v: []float64{2, 3, 6}, want: 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := VectorLength(tc.v); math.Abs(got-tc.want) > tolerance {
				t.Fatalf("VectorLength(%v) = %v, want %v", tc.v, got, tc.want)
			}
		})
	}
}

func TestPointDistance(t *testing.T) {
	t.Parallel()

	if got := PointDistance([]float64{0, 0}, []float64{3, 4}); math.Abs(got-5) > tolerance {
		t.Fatalf("PointDistance(A, B) = %v, want 5", got)
	}
	if got := PointDistance([]float64{1, 2, 3}, []float64{1, 2, 3}); got != 0 {
		t.Fatalf("PointDistance(p, p) = %v, want 0", got)
	}
}

func TestPointDistanceIsSymmetric(t *testing.T) {
	t.Parallel()

	pairs := [][2][]float64{
		{{0, 0}, {3, 4}},
		{{-1.5, 2, 7}, {4, -0.25, 1}},
		{{1, 2, 3, 4, 5, 6}, {6, 5, 4, 3, 2, 1}},
	}
	for _, pair := range pairs {
		ab := PointDistance(pair[0], pair[1])
		ba := PointDistance(pair[1], pair[0])
		if ab != ba {
			t.Fatalf("distance not symmetric for %v: %v vs %v", pair, ab, ba)
		}
	}
}

func TestPointDistanceMatchesDisplacementLength(t *testing.T) {
	t.Parallel()

	p := []float64{1, -2, 0.5}
	q := []float64{4, 2, 0.5}
	d := Displacement(p, q)
	want := []float64{3, 4, 0}
	for i := range want {
		if d[i] != want[i] {
			t.Fatalf("displacement[%d] = %v, want %v", i, d[i], want[i])
		}
	}
	if got, length := PointDistance(p, q), VectorLength(d); math.Abs(got-length) > tolerance {
		t.Fatalf("distance %v differs from displacement length %v", got, length)
	}
}
