// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cdt

import (
	"github.com/2dChan/cdt/predicates"
	"github.com/golang/geo/r2"
)

// AddEdge registers the undirected edge (u, v) as a user constraint. When
// the edge is not already part of the triangulation it is inserted by
// flipping the diagonals crossed by the segment until the edge appears,
// after which the disturbed region is re-legalised. Crossing another
// constrained edge, or a segment that passes exactly through a third
// vertex, is a constraint violation.
func (t *Triangulation) AddEdge(u, v int) error {
	return t.addEdgeImpl(u, v, true)
}

// addEdgeImpl inserts and registers (u, v); user selects whether the edge
// also joins the user-constraint set (boundary edges do not).
func (t *Triangulation) addEdgeImpl(u, v int, user bool) error {
	if u == v {
		return ConstraintViolationError{U: u, V: v, Reason: "edge endpoints coincide"}
	}
	if len(t.graph[u]) == 0 || len(t.graph[v]) == 0 {
		return ConstraintViolationError{U: u, V: v, Reason: "endpoint is not a vertex of the triangulation"}
	}
	if t.ContainsEdge(u, v) {
		t.addConstrainedEdge(u, v, user)
		return nil
	}

	crossed, err := t.segmentCrossings(u, v)
	if err != nil {
		return err
	}

	// Flip crossed diagonals until (u, v) appears. A diagonal whose
	// quadrilateral is not convex cannot be flipped yet and goes to the
	// back of the queue; the classic argument guarantees progress.
	var created []Edge
	guard := 3 * (len(crossed) + 1) * (len(crossed) + 1) * (len(t.triangles) + 1)
	for len(crossed) > 0 {
		if guard--; guard < 0 {
			return InvariantViolationError{Reason: "constrained edge insertion did not converge"}
		}
		e := crossed[0]
		crossed = crossed[1:]
		if !t.ContainsEdge(e.U, e.V) {
			continue
		}
		w := t.Adjacent(e.U, e.V)
		x := t.Adjacent(e.V, e.U)
		if predicates.Meet(t.points[w], t.points[x], t.points[e.U], t.points[e.V]) != 1 {
			crossed = append(crossed, e)
			continue
		}
		if err := t.FlipEdge(e.U, e.V); err != nil {
			return err
		}
		d := Edge{w, x}
		if predicates.Meet(t.points[u], t.points[v], t.points[w], t.points[x]) == 1 {
			crossed = append(crossed, d)
		} else {
			created = append(created, d)
		}
	}

	t.addConstrainedEdge(u, v, user)
	t.restoreLegality(created)
	return nil
}

// DeleteEdge removes the undirected edge (u, v) from both constrained-edge
// sets. The triangulation topology is unchanged.
func (t *Triangulation) DeleteEdge(u, v int) {
	t.deleteConstrainedEdge(u, v)
}

// segmentCrossings returns the triangulation edges properly crossed by the
// open segment (u, v), in corridor order from u.
func (t *Triangulation) segmentCrossings(u, v int) ([]Edge, error) {
	pu, pv := t.points[u], t.points[v]

	// The first crossed edge is the far edge of one of u's star triangles.
	// A link vertex sitting on the open segment means the segment leaves u
	// through a corner, which the inserter cannot resolve.
	var a, b int
	found := false
	for e := range t.adjacent2Vertex[u] {
		for _, w := range []int{e.U, e.V} {
			if w != GhostVertex && onOpenSegment(t.points[w], pu, pv) {
				return nil, ConstraintViolationError{U: u, V: v, Reason: "segment passes through another vertex"}
			}
		}
	}
	for e := range t.adjacent2Vertex[u] {
		if e.U == GhostVertex || e.V == GhostVertex {
			continue
		}
		if predicates.Meet(pu, pv, t.points[e.U], t.points[e.V]) == 1 {
			a, b = e.U, e.V
			found = true
			break
		}
	}
	if !found {
		return nil, ConstraintViolationError{U: u, V: v, Reason: "no corridor toward the segment endpoint"}
	}

	crossed := []Edge{{a, b}}
	for {
		if t.IsConstrained(a, b) {
			return nil, ConstraintViolationError{U: u, V: v, Reason: "segment crosses a constrained edge"}
		}
		c := t.Adjacent(b, a)
		if c == v {
			return crossed, nil
		}
		if c == EmptyVertex || c == GhostVertex {
			return nil, InvariantViolationError{Reason: "segment corridor left the triangulation"}
		}
		if predicates.Orient(pu, pv, t.points[c]) == 0 {
			return nil, ConstraintViolationError{U: u, V: v, Reason: "segment passes through another vertex"}
		}
		// The corridor continues across whichever edge of (b, a, c) the
		// segment leaves through.
		if predicates.Meet(pu, pv, t.points[a], t.points[c]) == 1 {
			b = c
		} else {
			a = c
		}
		crossed = append(crossed, Edge{a, b})
	}
}

// onOpenSegment reports whether c lies strictly inside the segment (a, b).
func onOpenSegment(c, a, b r2.Point) bool {
	if predicates.Orient(a, b, c) != 0 {
		return false
	}
	return predicates.SegmentPositionOf(a, b, c) == predicates.OnSegment
}

// restoreLegality runs Lawson flips from the given edges: every illegal
// edge is flipped and the four edges of its quadrilateral are re-examined,
// until the region is locally Delaunay again.
func (t *Triangulation) restoreLegality(edges []Edge) {
	stack := append([]Edge(nil), edges...)
	guard := 50 * (len(t.triangles) + len(edges) + 10)
	for len(stack) > 0 {
		if guard--; guard < 0 {
			return
		}
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !t.ContainsEdge(e.U, e.V) {
			continue
		}
		if t.IsLegal(e.U, e.V) == predicates.LegalEdge {
			continue
		}
		w := t.Adjacent(e.U, e.V)
		x := t.Adjacent(e.V, e.U)
		if t.FlipEdge(e.U, e.V) != nil {
			continue
		}
		stack = append(stack,
			Edge{e.U, w}, Edge{w, e.V}, Edge{e.V, x}, Edge{x, e.U})
	}
}
