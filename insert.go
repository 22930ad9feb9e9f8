// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cdt

import (
	"github.com/2dChan/cdt/predicates"
	"github.com/golang/geo/r2"
)

// AddPoint appends p to the point store, inserts it into the triangulation
// and returns its 1-based index. Inserting a point that coincides with an
// existing vertex leaves the triangulation unchanged and, unless
// WithStrictDuplicates is set, is not an error.
func (t *Triangulation) AddPoint(p r2.Point, setters ...Option) (int, error) {
	opts, err := newOptions(setters)
	if err != nil {
		return 0, err
	}
	t.points = append(t.points, p)
	r := len(t.points) - 1
	if err := t.insert(r, opts); err != nil {
		return 0, err
	}
	return r, nil
}

// InsertPoint inserts the already stored point with index r into the
// triangulation.
func (t *Triangulation) InsertPoint(r int, setters ...Option) error {
	opts, err := newOptions(setters)
	if err != nil {
		return err
	}
	if r <= 0 || r >= len(t.points) {
		return ConstraintViolationError{U: r, V: r, Reason: "point index out of range"}
	}
	return t.insert(r, opts)
}

func (t *Triangulation) insert(r int, opts *Options) error {
	seeds := opts.tryPoints
	if opts.tryLastInsertedPoint && len(t.vertices) > 0 {
		seeds = append([]int{t.vertices[len(t.vertices)-1]}, seeds...)
	}
	return t.addPointBowyerWatson(r, seeds, opts)
}

// addPointBowyerWatson locates the stored point r and excavates its cavity.
// seeds are candidate walk starts tried before the random sample.
func (t *Triangulation) addPointBowyerWatson(r int, seeds []int, opts *Options) error {
	q := t.points[r]
	if !t.HasGhostTriangles() {
		t.AddGhostTriangles()
	}

	v, flag, err := t.locate(q, opts.rng, opts.numSamples, seeds)
	if err != nil {
		return err
	}

	switch flag {
	case predicates.OnTriangle:
		if dup := t.coincidentVertex(v, q); dup != EmptyVertex {
			if opts.strictDuplicates {
				return DuplicatePointError{Index: r, Existing: dup, Point: q}
			}
			return nil
		}
		eu, ev, ok := t.supportingEdge(v, q)
		if !ok {
			return InvariantViolationError{Reason: "located On flag without a supporting edge"}
		}
		t.insertOnEdge(r, eu, ev)
	case predicates.InsideTriangle:
		t.deleteTriangle(v.I, v.J, v.K, false, false)
		t.digCavity(r, v.I, v.J)
		t.digCavity(r, v.J, v.K)
		t.digCavity(r, v.K, v.I)
	default:
		// v is a ghost triangle (a, b, ghost); r lies beyond the hull edge
		// (b, a). Digging through the ghost fan extends the hull.
		t.deleteTriangle(v.I, v.J, v.K, false, false)
		t.digCavity(r, v.I, v.J)
		t.digCavity(r, v.J, GhostVertex)
		t.digCavity(r, GhostVertex, v.I)
	}

	t.vertices = append(t.vertices, r)
	if !opts.skipRepresentative {
		t.representative.add(q)
	}
	return nil
}

// digCavity excavates across the cavity frontier edge (i, j) as seen from
// the new point r. The triangle on the far side is eaten when its
// circumdisk contains r; constrained edges and the ghost vertex wall the
// cavity off. Frontier edges whose far triangle is already gone were
// reached twice and are skipped.
func (t *Triangulation) digCavity(r, i, j int) {
	ell := t.Adjacent(j, i)
	if ell == EmptyVertex {
		return
	}
	if ell != GhostVertex && !t.IsConstrained(i, j) && t.circumdiskContains(j, i, ell, r) {
		t.deleteTriangle(j, i, ell, false, false)
		t.digCavity(r, i, ell)
		t.digCavity(r, ell, j)
		return
	}
	// (i, j) is a cavity wall. A wall collinear with r would produce a
	// collapsed triangle; the fans on either side of r cover the region.
	if i != GhostVertex && j != GhostVertex &&
		predicates.Orient(t.points[i], t.points[j], t.points[r]) == 0 {
		return
	}
	t.addTriangle(r, i, j, false)
}

// circumdiskContains reports whether the circumdisk of the existing,
// positively oriented triangle (a, b, c) strictly contains the stored point
// r. For a ghost triangle the circumdisk degenerates to the open outer
// halfplane of its boundary edge.
func (t *Triangulation) circumdiskContains(a, b, c, r int) bool {
	tri := NewTriangle(a, b, c)
	if tri.IsGhost() {
		return predicates.OuterHalfplanePositionOf(t.points[tri.I], t.points[tri.J], t.points[r]) ==
			predicates.InsideHalfplane
	}
	return predicates.InCircle(t.points[a], t.points[b], t.points[c], t.points[r]) == 1
}

// coincidentVertex returns the vertex of v whose point equals q, or
// EmptyVertex.
func (t *Triangulation) coincidentVertex(v Triangle, q r2.Point) int {
	for _, w := range []int{v.I, v.J, v.K} {
		if w != GhostVertex && t.points[w] == q {
			return w
		}
	}
	return EmptyVertex
}

// supportingEdge returns the directed edge (u, v) of the located triangle
// that passes through q, oriented so that Adjacent(u, v) is a real vertex.
func (t *Triangulation) supportingEdge(v Triangle, q r2.Point) (int, int, bool) {
	if v.IsGhost() {
		// q lies on the hull edge (v.J, v.I) under the ghost.
		return v.J, v.I, true
	}
	edges := [3][2]int{{v.I, v.J}, {v.J, v.K}, {v.K, v.I}}
	for _, e := range edges {
		pu, pv := t.points[e[0]], t.points[e[1]]
		if predicates.Orient(pu, pv, q) != 0 {
			continue
		}
		if predicates.SegmentPositionOf(pu, pv, q) == predicates.OnSegment {
			if t.Adjacent(e[0], e[1]) != GhostVertex {
				return e[0], e[1], true
			}
			return e[1], e[0], true
		}
	}
	return EmptyVertex, EmptyVertex, false
}

// insertOnEdge inserts the stored point r lying on the open segment of the
// edge (u, v), where Adjacent(u, v) is real. Unconstrained interior edges
// need no special handling beyond the cavity dig; constrained edges wall
// the cavity, so the far side is excavated explicitly and the constraint is
// split; boundary edges additionally repair the ghost envelope.
func (t *Triangulation) insertOnEdge(r, u, v int) {
	w := t.Adjacent(u, v)
	x := t.Adjacent(v, u)
	constrained := t.IsConstrained(u, v)

	if !constrained && x != GhostVertex && x != EmptyVertex {
		t.deleteTriangle(u, v, w, false, false)
		t.digCavity(r, u, v)
		t.digCavity(r, v, w)
		t.digCavity(r, w, u)
		return
	}

	t.deleteTriangle(u, v, w, false, false)
	t.digCavity(r, v, w)
	t.digCavity(r, w, u)

	switch {
	case x == GhostVertex:
		t.deleteTriangle(v, u, GhostVertex, false, false)
		t.addTriangle(r, u, GhostVertex, false)
		t.addTriangle(v, r, GhostVertex, false)
	case x != EmptyVertex:
		t.deleteTriangle(v, u, x, false, false)
		t.digCavity(r, u, x)
		t.digCavity(r, x, v)
	}

	if constrained {
		t.replaceConstrainedEdge(u, v, r)
		t.splitBoundaryNode(u, v, r)
	}
}

// splitBoundaryNode inserts r between u and v in the boundary-node record
// when (u, v) is one of its edges.
func (t *Triangulation) splitBoundaryNode(u, v, r int) {
	n := len(t.boundaryNodes)
	for i := range n {
		a := t.boundaryNodes[i]
		b := t.boundaryNodes[(i+1)%n]
		if (a == u && b == v) || (a == v && b == u) {
			t.boundaryNodes = append(t.boundaryNodes[:i+1],
				append([]int{r}, t.boundaryNodes[i+1:]...)...)
			return
		}
	}
}

// SplitTriangle subdivides the existing triangle (i, j, k) into three at the
// stored point r. It is a raw topological edit; no Delaunay repair is
// performed.
func (t *Triangulation) SplitTriangle(i, j, k, r int) error {
	if !t.ContainsTriangle(i, j, k) {
		return ConstraintViolationError{U: i, V: j, Reason: "triangle is not part of the triangulation"}
	}
	t.deleteTriangle(i, j, k, false, false)
	t.addTriangle(r, i, j, false)
	t.addTriangle(r, j, k, false)
	t.addTriangle(r, k, i, false)
	t.noteVertex(r)
	return nil
}

// SplitEdge replaces the edge (u, v) by (u, r) and (r, v), subdividing the
// incident triangles at the stored point r. Constrained edges are split in
// the constraint sets and the boundary-node record. It is a raw topological
// edit; no Delaunay repair is performed.
func (t *Triangulation) SplitEdge(u, v, r int) error {
	w := t.Adjacent(u, v)
	x := t.Adjacent(v, u)
	if w == EmptyVertex && x == EmptyVertex {
		return ConstraintViolationError{U: u, V: v, Reason: "edge is not part of the triangulation"}
	}

	if w != EmptyVertex {
		t.deleteTriangle(u, v, w, false, false)
		if w == GhostVertex {
			t.addTriangle(u, r, GhostVertex, false)
			t.addTriangle(r, v, GhostVertex, false)
		} else {
			t.addTriangle(u, r, w, false)
			t.addTriangle(r, v, w, false)
		}
	}
	if x != EmptyVertex {
		t.deleteTriangle(v, u, x, false, false)
		if x == GhostVertex {
			t.addTriangle(v, r, GhostVertex, false)
			t.addTriangle(r, u, GhostVertex, false)
		} else {
			t.addTriangle(v, r, x, false)
			t.addTriangle(r, u, x, false)
		}
	}

	if t.IsConstrained(u, v) {
		t.replaceConstrainedEdge(u, v, r)
		t.splitBoundaryNode(u, v, r)
	}
	t.noteVertex(r)
	return nil
}

// noteVertex records r in the insertion-order vertex list if absent.
func (t *Triangulation) noteVertex(r int) {
	for _, v := range t.vertices {
		if v == r {
			return
		}
	}
	t.vertices = append(t.vertices, r)
}
