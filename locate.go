// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cdt

import (
	"math"
	"math/rand"

	"github.com/2dChan/cdt/predicates"
	"github.com/golang/geo/r2"
)

// Point location is a jump-and-march: sample a handful of vertices, start at
// the nearest, then walk straight toward the query point crossing one edge
// at a time. Ghost triangles extend the walk past the convex hull. The rng
// is used for sampling and walk tie-breaks only, never for correctness.

// defaultNumSamples is the seed-sample rule m(n) used when the caller does
// not override it.
func defaultNumSamples(n int) int {
	m := int(math.Ceil(math.Cbrt(float64(n)) / 4))
	if m < 1 {
		m = 1
	}
	if m > 32 {
		m = 32
	}
	return m
}

// selectInitialPoint returns the candidate walk starts, nearest first:
// tryPoints joined with a random sample of the inserted vertices.
func (t *Triangulation) selectInitialPoint(q r2.Point, rng *rand.Rand, numSamples func(int) int, tryPoints []int) []int {
	if numSamples == nil {
		numSamples = defaultNumSamples
	}
	n := len(t.vertices)
	m := numSamples(n)
	if m > n {
		m = n
	}

	candidates := make([]int, 0, len(tryPoints)+m)
	seen := make(map[int]struct{}, len(tryPoints)+m)
	push := func(v int) {
		if v == GhostVertex || v == EmptyVertex {
			return
		}
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		candidates = append(candidates, v)
	}
	for _, v := range tryPoints {
		push(v)
	}
	for range m {
		push(t.vertices[rng.Intn(n)])
	}

	distSq := func(v int) float64 {
		d := t.points[v].Sub(q)
		return d.Dot(d)
	}
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && distSq(candidates[j]) < distSq(candidates[j-1]); j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}
	return candidates
}

// locate finds the triangle containing q, walking from the best candidate
// seed. The returned flag classifies q against the triangle; OutsideTriangle
// is only possible when the triangle is a ghost, and means q lies beyond the
// convex hull inside that ghost's face.
func (t *Triangulation) locate(q r2.Point, rng *rand.Rand, numSamples func(int) int, tryPoints []int) (Triangle, predicates.TrianglePosition, error) {
	candidates := t.selectInitialPoint(q, rng, numSamples, tryPoints)
	maxSteps := 10*len(t.triangles) + 100

	steps := 0
	for _, k := range candidates {
		tri, flag, ok := t.walk(q, k, rng, maxSteps, &steps)
		if ok {
			return tri, flag, nil
		}
	}
	return Triangle{}, predicates.OutsideTriangle, WalkFailureError{Point: q, Steps: steps}
}

// walk marches from vertex k toward q. It reports ok=false when the step
// budget runs out or a stale adjacency is crossed; the caller then restarts
// from the next candidate.
func (t *Triangulation) walk(q r2.Point, k int, rng *rand.Rand, maxSteps int, steps *int) (Triangle, predicates.TrianglePosition, bool) {
	var cur [3]int
	found := false
	for e := range t.adjacent2Vertex[k] {
		cur = [3]int{e.U, e.V, k}
		found = true
		break
	}
	if !found {
		return Triangle{}, predicates.OutsideTriangle, false
	}

	entry := Edge{EmptyVertex, EmptyVertex}
	for {
		*steps++
		if *steps > maxSteps {
			return Triangle{}, predicates.OutsideTriangle, false
		}

		if tri := NewTriangle(cur[0], cur[1], cur[2]); tri.IsGhost() {
			next, flag, done := t.ghostStep(tri, q)
			if done {
				return tri, flag, true
			}
			cur = next
			entry = Edge{EmptyVertex, EmptyVertex}
			continue
		}

		pa, pb, pc := t.points[cur[0]], t.points[cur[1]], t.points[cur[2]]
		edges := [3][2]int{{cur[0], cur[1]}, {cur[1], cur[2]}, {cur[2], cur[0]}}
		start := rng.Intn(3)
		crossed := false
		for i := range 3 {
			e := edges[(start+i)%3]
			if (Edge{e[0], e[1]}) == entry {
				continue
			}
			if predicates.Orient(t.points[e[0]], t.points[e[1]], q) >= 0 {
				continue
			}
			nxt := t.Adjacent(e[1], e[0])
			if nxt == EmptyVertex {
				// Stale adjacency: recent constrained edits can leave the
				// walk in a dead end. Restart from the next candidate.
				return Triangle{}, predicates.OutsideTriangle, false
			}
			cur = [3]int{e[1], e[0], nxt}
			entry = Edge{e[1], e[0]}
			crossed = true
			break
		}
		if crossed {
			continue
		}
		tri := NewTriangle(cur[0], cur[1], cur[2])
		return tri, predicates.TrianglePositionOf(pa, pb, pc, q), true
	}
}

// ghostStep handles the walk inside the ghost triangle tri = (a, b, ghost),
// whose face is the region beyond the hull edge (b, a). It either finishes
// the walk (done=true) or returns the next triangle triple to visit:
// sideways along the hull when q is collinear with the boundary edge, back
// into the solid part otherwise.
func (t *Triangulation) ghostStep(tri Triangle, q r2.Point) ([3]int, predicates.TrianglePosition, bool) {
	a, b := tri.I, tri.J
	pa, pb := t.points[a], t.points[b]

	switch predicates.OuterHalfplanePositionOf(pa, pb, q) {
	case predicates.InsideHalfplane:
		return [3]int{}, predicates.OutsideTriangle, true
	case predicates.OnHalfplane:
		return [3]int{}, predicates.OnTriangle, true
	}

	if predicates.Orient(pa, pb, q) == 0 {
		// Collinear with the boundary edge but beyond the segment: slide to
		// the neighbouring ghost on q's side.
		if predicates.SegmentPositionOf(pa, pb, q) == predicates.LeftOfSegment {
			return [3]int{a, GhostVertex, t.Adjacent(a, GhostVertex)}, 0, false
		}
		return [3]int{GhostVertex, b, t.Adjacent(GhostVertex, b)}, 0, false
	}

	// q is on the solid side of the boundary edge; step back inside.
	return [3]int{b, a, t.Adjacent(b, a)}, 0, false
}
