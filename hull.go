// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cdt

import (
	"sort"

	"github.com/2dChan/cdt/predicates"
)

// RecomputeConvexHull rebuilds the hull record by following the ghost
// envelope: each ghost triangle (a, b, ghost) closes the hull edge (b, a),
// so chaining b -> a around the boundary yields the counterclockwise hull
// cycle. It is a no-op when no ghost triangles exist.
func (t *Triangulation) RecomputeConvexHull() error {
	next := make(map[int]int)
	for tri := range t.triangles {
		if tri.IsGhost() {
			next[tri.J] = tri.I
		}
	}
	if len(next) == 0 {
		return nil
	}

	start := 0
	first := true
	for v := range next {
		if first || v < start {
			start = v
			first = false
		}
	}

	hull := make([]int, 0, len(next))
	for v := start; ; {
		hull = append(hull, v)
		w, ok := next[v]
		if !ok {
			return InvariantViolationError{Reason: "ghost envelope does not close a cycle"}
		}
		if w == start {
			break
		}
		if len(hull) > len(next) {
			return InvariantViolationError{Reason: "ghost envelope contains more than one cycle"}
		}
		v = w
	}
	if len(hull) != len(next) {
		return InvariantViolationError{Reason: "ghost envelope contains more than one cycle"}
	}
	t.hull = hull
	return nil
}

// LockConvexHull promotes every hull edge to a constrained boundary edge,
// so subsequent operations treat the hull as fixed.
func (t *Triangulation) LockConvexHull() {
	n := len(t.hull)
	for i := range n {
		t.addConstrainedEdge(t.hull[i], t.hull[(i+1)%n], false)
	}
}

// UnlockConvexHull removes hull edges from the all-constraints set, except
// those also present as user constraints.
func (t *Triangulation) UnlockConvexHull() {
	n := len(t.hull)
	for i := range n {
		e := normalizeEdge(t.hull[i], t.hull[(i+1)%n])
		if _, user := t.constrainedEdges[e]; !user {
			delete(t.allConstrainedEdges, e)
		}
	}
}

// ComputeRepresentativePoints resets the representative-point accumulator
// to the mean of the current solid vertices.
func (t *Triangulation) ComputeRepresentativePoints() {
	t.representative.reset()
	seen := make(map[int]struct{})
	for tri := range t.triangles {
		if !tri.IsSolid() {
			continue
		}
		for _, v := range []int{tri.I, tri.J, tri.K} {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			t.representative.add(t.points[v])
		}
	}
}

// Validate checks the triangulation invariants: map consistency, triangle
// orientation, the Delaunay property of unconstrained interior edges, the
// ghost envelope and constrained-edge containment. It returns an
// InvariantViolationError describing the first violation found.
func (t *Triangulation) Validate() error {
	// Triangle-consistency: triangles and adjacency agree in both
	// directions.
	for tri := range t.triangles {
		rotations := [3][3]int{
			{tri.I, tri.J, tri.K},
			{tri.J, tri.K, tri.I},
			{tri.K, tri.I, tri.J},
		}
		for _, h := range rotations {
			if t.Adjacent(h[0], h[1]) != h[2] {
				return InvariantViolationError{Reason: "adjacent map disagrees with triangle set"}
			}
		}
	}
	for e, w := range t.adjacent {
		if !t.ContainsTriangle(e.U, e.V, w) {
			return InvariantViolationError{Reason: "adjacent map references a missing triangle"}
		}
		if set, ok := t.adjacent2Vertex[w]; !ok {
			return InvariantViolationError{Reason: "adjacent2Vertex missing a vertex entry"}
		} else if _, ok := set[e]; !ok {
			return InvariantViolationError{Reason: "adjacent2Vertex missing an edge entry"}
		}
	}
	for w, set := range t.adjacent2Vertex {
		for e := range set {
			if t.Adjacent(e.U, e.V) != w {
				return InvariantViolationError{Reason: "adjacent2Vertex disagrees with adjacent map"}
			}
		}
	}

	// Neighbour-consistency.
	for u, set := range t.graph {
		for v := range set {
			if !t.ContainsEdge(u, v) {
				return InvariantViolationError{Reason: "graph contains a neighbour with no incident triangle"}
			}
		}
	}
	for e := range t.adjacent {
		if _, ok := t.graph[e.U][e.V]; !ok {
			return InvariantViolationError{Reason: "graph is missing a triangulated neighbour pair"}
		}
	}

	// Orientation and Delaunay legality.
	for tri := range t.triangles {
		if !tri.IsSolid() {
			continue
		}
		if predicates.Orient(t.points[tri.I], t.points[tri.J], t.points[tri.K]) != 1 {
			return InvariantViolationError{Reason: "solid triangle is not positively oriented"}
		}
	}
	for e := range t.adjacent {
		if e.U == GhostVertex || e.V == GhostVertex {
			continue
		}
		if t.IsLegal(e.U, e.V) != predicates.LegalEdge {
			return InvariantViolationError{Reason: "unconstrained interior edge is not Delaunay"}
		}
	}

	// Ghost envelope: boundary edges carry exactly one ghost.
	for e, w := range t.adjacent {
		if e.U == GhostVertex || e.V == GhostVertex || w == GhostVertex {
			continue
		}
		if t.Adjacent(e.V, e.U) == EmptyVertex && t.HasGhostTriangles() {
			return InvariantViolationError{Reason: "boundary edge has no ghost triangle"}
		}
	}

	// Constrained-edge containment.
	for e := range t.allConstrainedEdges {
		if !t.ContainsEdge(e.U, e.V) {
			return InvariantViolationError{Reason: "constrained edge is not an edge of any triangle"}
		}
	}
	return nil
}

// SolidVerticesOfTriangles returns the sorted vertices referenced by the
// current triangle set, ghost excluded.
func (t *Triangulation) SolidVerticesOfTriangles() []int {
	seen := make(map[int]struct{})
	for tri := range t.triangles {
		for _, v := range []int{tri.I, tri.J, tri.K} {
			if v != GhostVertex {
				seen[v] = struct{}{}
			}
		}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
