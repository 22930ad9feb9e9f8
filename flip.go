// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cdt

import (
	"github.com/2dChan/cdt/predicates"
)

// IsLegal classifies the edge (u, v). Constrained and boundary edges are
// always legal; an interior edge is illegal exactly when the vertex
// opposite one of its triangles lies strictly inside the circumcircle of
// the other.
func (t *Triangulation) IsLegal(u, v int) predicates.Legality {
	if t.IsConstrained(u, v) {
		return predicates.LegalEdge
	}
	w := t.Adjacent(u, v)
	x := t.Adjacent(v, u)
	if w == EmptyVertex || x == EmptyVertex || w == GhostVertex || x == GhostVertex {
		return predicates.LegalEdge
	}
	return predicates.LegalityOf(t.points[u], t.points[v], t.points[w], t.points[x])
}

// FlipEdge replaces the diagonal (u, v) of the quadrilateral formed by its
// two incident triangles with the opposite diagonal. Boundary and missing
// edges cannot be flipped.
func (t *Triangulation) FlipEdge(u, v int) error {
	w := t.Adjacent(u, v)
	x := t.Adjacent(v, u)
	if w == EmptyVertex || x == EmptyVertex {
		return ConstraintViolationError{U: u, V: v, Reason: "edge is not an interior edge"}
	}
	if w == GhostVertex || x == GhostVertex {
		return ConstraintViolationError{U: u, V: v, Reason: "cannot flip a boundary edge"}
	}
	t.deleteTriangle(u, v, w, false, false)
	t.deleteTriangle(v, u, x, false, false)
	t.addTriangle(u, x, w, false)
	t.addTriangle(v, w, x, false)
	return nil
}

// LegaliseEdge restores the Delaunay property across (u, v) after the
// vertex r was inserted on one of its sides: an illegal edge is flipped and
// the two edges newly facing r are legalised in turn.
func (t *Triangulation) LegaliseEdge(u, v, r int) {
	if t.IsLegal(u, v) == predicates.LegalEdge {
		return
	}
	far := t.Adjacent(u, v)
	if far == r {
		far = t.Adjacent(v, u)
	}
	if err := t.FlipEdge(u, v); err != nil {
		return
	}
	t.LegaliseEdge(u, far, r)
	t.LegaliseEdge(far, v, r)
}
