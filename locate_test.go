// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cdt

import (
	"math/rand"
	"testing"

	"github.com/2dChan/cdt/predicates"
	"github.com/2dChan/cdt/utils"
	"github.com/golang/geo/r2"
)

func TestLocate_Inside(t *testing.T) {
	points := utils.GenerateGridPoints(4, 4)
	tri := mustTriangulate(t, points, WithSeed(2))
	//nolint:gosec
	rng := rand.New(rand.NewSource(21))

	q := r2.Point{X: 1.4, Y: 1.7}
	v, flag, err := tri.locate(q, rng, nil, nil)
	if err != nil {
		t.Fatalf("locate(%v) error = %v, want nil", q, err)
	}
	if flag != predicates.InsideTriangle {
		t.Fatalf("locate(%v) flag = %v, want InsideTriangle", q, flag)
	}
	if !v.IsSolid() {
		t.Fatalf("locate(%v) = %v, want a solid triangle", q, v)
	}
	pa, pb, pc := tri.Point(v.I), tri.Point(v.J), tri.Point(v.K)
	if got := predicates.TrianglePositionOf(pa, pb, pc, q); got != predicates.InsideTriangle {
		t.Errorf("TrianglePositionOf(located, q) = %v, want InsideTriangle", got)
	}
}

func TestLocate_Outside(t *testing.T) {
	points := utils.GenerateGridPoints(4, 4)
	tri := mustTriangulate(t, points, WithSeed(2))
	//nolint:gosec
	rng := rand.New(rand.NewSource(22))

	q := r2.Point{X: 10, Y: 10}
	v, flag, err := tri.locate(q, rng, nil, nil)
	if err != nil {
		t.Fatalf("locate(%v) error = %v, want nil", q, err)
	}
	if flag != predicates.OutsideTriangle {
		t.Errorf("locate(%v) flag = %v, want OutsideTriangle", q, flag)
	}
	if !v.IsGhost() {
		t.Errorf("locate(%v) = %v, want a ghost triangle", q, v)
	}
	// The located ghost's boundary edge must see the query point.
	if got := predicates.OuterHalfplanePositionOf(tri.Point(v.I), tri.Point(v.J), q); got != predicates.InsideHalfplane {
		t.Errorf("OuterHalfplanePositionOf(located, q) = %v, want InsideHalfplane", got)
	}
}

func TestLocate_OnVertex(t *testing.T) {
	points := utils.GenerateGridPoints(4, 4)
	tri := mustTriangulate(t, points, WithSeed(2))
	//nolint:gosec
	rng := rand.New(rand.NewSource(23))

	q := r2.Point{X: 2, Y: 2}
	v, flag, err := tri.locate(q, rng, nil, nil)
	if err != nil {
		t.Fatalf("locate(%v) error = %v, want nil", q, err)
	}
	if flag != predicates.OnTriangle {
		t.Errorf("locate(%v) flag = %v, want OnTriangle", q, flag)
	}
	if dup := tri.coincidentVertex(v, q); dup == EmptyVertex {
		t.Errorf("coincidentVertex(%v, %v) = EmptyVertex, want a matching vertex", v, q)
	}
}

func TestLocate_TryPoints(t *testing.T) {
	points := utils.GenerateGridPoints(4, 4)
	tri := mustTriangulate(t, points, WithSeed(2))
	//nolint:gosec
	rng := rand.New(rand.NewSource(24))

	q := r2.Point{X: 0.3, Y: 0.2}
	v, flag, err := tri.locate(q, rng, nil, []int{1})
	if err != nil {
		t.Fatalf("locate(%v) error = %v, want nil", q, err)
	}
	if flag != predicates.InsideTriangle {
		t.Errorf("locate(%v) flag = %v, want InsideTriangle", q, flag)
	}
	if !v.HasVertex(1) || !v.IsSolid() {
		t.Errorf("locate(%v) = %v, want a solid triangle near vertex 1", q, v)
	}
}

func TestDefaultNumSamples(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 1},
		{1, 1},
		{64, 1},
		{1000, 3},
		{1000000, 25},
	}
	for _, tt := range tests {
		if got := defaultNumSamples(tt.n); got != tt.want {
			t.Errorf("defaultNumSamples(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
