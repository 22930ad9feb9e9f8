// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cdt

import (
	"github.com/2dChan/cdt/predicates"
)

// DeletePoint removes the interior vertex v from the triangulation: its
// star is deleted and the link polygon is retriangulated with the Delaunay
// ear rule. Vertices on the boundary or incident to a constrained edge are
// rejected. The point itself stays in the store so indices remain stable.
func (t *Triangulation) DeletePoint(v int) error {
	if v == GhostVertex || len(t.graph[v]) == 0 {
		return ConstraintViolationError{U: v, V: v, Reason: "not a vertex of the triangulation"}
	}
	if _, ok := t.graph[v][GhostVertex]; ok {
		return ConstraintViolationError{U: v, V: v, Reason: "cannot delete a boundary vertex"}
	}
	for u := range t.graph[v] {
		if t.IsConstrained(u, v) {
			return ConstraintViolationError{U: u, V: v, Reason: "vertex lies on a constrained edge"}
		}
	}

	// The link polygon: each star triangle (a, b, v) contributes the
	// directed link edge a -> b; chaining them gives the CCW cycle.
	next := make(map[int]int)
	star := make([]Edge, 0, len(t.adjacent2Vertex[v]))
	for e := range t.adjacent2Vertex[v] {
		next[e.U] = e.V
		star = append(star, e)
	}
	poly := make([]int, 0, len(next))
	start := star[0].U
	for u := start; ; {
		poly = append(poly, u)
		w, ok := next[u]
		if !ok || len(poly) > len(next) {
			return InvariantViolationError{Reason: "vertex star does not close a cycle"}
		}
		if w == start {
			break
		}
		u = w
	}
	if len(poly) != len(next) {
		return InvariantViolationError{Reason: "vertex star does not close a cycle"}
	}

	for _, e := range star {
		t.deleteTriangle(e.U, e.V, v, false, false)
	}
	t.retriangulatePolygon(poly)

	for i, u := range t.vertices {
		if u == v {
			t.vertices = append(t.vertices[:i], t.vertices[i+1:]...)
			break
		}
	}
	t.ClearEmptyFeatures()
	return nil
}

// retriangulatePolygon fills the CCW polygon cavity left by a deleted
// vertex. Ears are clipped in Delaunay order: a convex corner whose
// circumcircle contains no other polygon vertex is always part of the
// Delaunay triangulation of the cavity.
func (t *Triangulation) retriangulatePolygon(poly []int) {
	n := len(poly)
	if n < 3 {
		return
	}
	if n == 3 {
		t.addTriangle(poly[0], poly[1], poly[2], false)
		return
	}

	for i := range n {
		a := poly[i]
		b := poly[(i+1)%n]
		c := poly[(i+2)%n]
		pa, pb, pc := t.points[a], t.points[b], t.points[c]
		if predicates.Orient(pa, pb, pc) != 1 {
			continue
		}
		ear := true
		for j := range n {
			d := poly[j]
			if d == a || d == b || d == c {
				continue
			}
			if predicates.InCircle(pa, pb, pc, t.points[d]) >= 0 {
				ear = false
				break
			}
		}
		if ear {
			t.addTriangle(a, b, c, false)
			rest := make([]int, 0, n-1)
			for j := range n {
				if poly[j] != b {
					rest = append(rest, poly[j])
				}
			}
			t.retriangulatePolygon(rest)
			return
		}
	}

	// Cocircular cavity vertices can starve the strict ear rule; fall back
	// to any convex empty ear with the test relaxed to the open disk.
	for i := range n {
		a := poly[i]
		b := poly[(i+1)%n]
		c := poly[(i+2)%n]
		pa, pb, pc := t.points[a], t.points[b], t.points[c]
		if predicates.Orient(pa, pb, pc) != 1 {
			continue
		}
		ear := true
		for j := range n {
			d := poly[j]
			if d == a || d == b || d == c {
				continue
			}
			if predicates.InCircle(pa, pb, pc, t.points[d]) > 0 {
				ear = false
				break
			}
		}
		if ear {
			t.addTriangle(a, b, c, false)
			rest := make([]int, 0, n-1)
			for j := range n {
				if poly[j] != b {
					rest = append(rest, poly[j])
				}
			}
			t.retriangulatePolygon(rest)
			return
		}
	}
}
