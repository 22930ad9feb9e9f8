// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cdt

// The topology index is three mutually consistent maps: adjacent (directed
// edge to opposite vertex), adjacent2Vertex (vertex to the set of directed
// edges opposite to it) and graph (undirected neighbour sets), plus the
// triangle set. All edits go through addTriangle and deleteTriangle so the
// maps never disagree; both are no-ops when their precondition fails.

// addTriangle registers the positively oriented triangle (u, v, w). With
// updateGhostEdges set, any edge of the triangle whose reverse is
// unoccupied receives a ghost triangle, closing the outer boundary.
func (t *Triangulation) addTriangle(u, v, w int, updateGhostEdges bool) {
	tri := NewTriangle(u, v, w)
	if _, ok := t.triangles[tri]; ok {
		return
	}
	t.triangles[tri] = struct{}{}

	for _, h := range [3][3]int{{u, v, w}, {v, w, u}, {w, u, v}} {
		e := Edge{h[0], h[1]}
		t.adjacent[e] = h[2]
		t.addAdjacent2Vertex(h[2], e)
		t.addNeighbour(h[0], h[1])
		t.addNeighbour(h[1], h[0])
	}

	if updateGhostEdges && tri.IsSolid() {
		for _, h := range [3][2]int{{u, v}, {v, w}, {w, u}} {
			if _, ok := t.adjacent[Edge{h[1], h[0]}]; !ok {
				t.addTriangle(h[1], h[0], GhostVertex, false)
			}
		}
	}
}

// deleteTriangle removes the triangle (u, v, w) under any rotation. With
// updateGhostEdges set, ghost triangles adjacent to the removed triangle's
// edges are removed as well unless protectBoundary keeps them alive.
func (t *Triangulation) deleteTriangle(u, v, w int, protectBoundary, updateGhostEdges bool) {
	tri := NewTriangle(u, v, w)
	if _, ok := t.triangles[tri]; !ok {
		return
	}
	delete(t.triangles, tri)

	for _, h := range [3][3]int{{u, v, w}, {v, w, u}, {w, u, v}} {
		e := Edge{h[0], h[1]}
		delete(t.adjacent, e)
		t.deleteAdjacent2Vertex(h[2], e)
	}
	for _, h := range [3][2]int{{u, v}, {v, w}, {w, u}} {
		if !t.ContainsEdge(h[0], h[1]) {
			t.deleteNeighbour(h[0], h[1])
			t.deleteNeighbour(h[1], h[0])
		}
	}

	if updateGhostEdges && !protectBoundary && tri.IsSolid() {
		for _, h := range [3][2]int{{u, v}, {v, w}, {w, u}} {
			if t.Adjacent(h[1], h[0]) == GhostVertex {
				t.deleteTriangle(h[1], h[0], GhostVertex, false, false)
			}
		}
	}
}

func (t *Triangulation) addAdjacent2Vertex(w int, e Edge) {
	set, ok := t.adjacent2Vertex[w]
	if !ok {
		set = make(map[Edge]struct{})
		t.adjacent2Vertex[w] = set
	}
	set[e] = struct{}{}
}

func (t *Triangulation) deleteAdjacent2Vertex(w int, e Edge) {
	if set, ok := t.adjacent2Vertex[w]; ok {
		delete(set, e)
	}
}

func (t *Triangulation) addNeighbour(u, v int) {
	set, ok := t.graph[u]
	if !ok {
		set = make(map[int]struct{})
		t.graph[u] = set
	}
	set[v] = struct{}{}
}

func (t *Triangulation) deleteNeighbour(u, v int) {
	if set, ok := t.graph[u]; ok {
		delete(set, v)
	}
}

// addConstrainedEdge inserts the undirected edge into the all-constraints
// set, and into the user set when user is true. The two sets are always
// edited together so they stay in sync.
func (t *Triangulation) addConstrainedEdge(u, v int, user bool) {
	e := normalizeEdge(u, v)
	t.allConstrainedEdges[e] = struct{}{}
	if user {
		t.constrainedEdges[e] = struct{}{}
	}
}

// deleteConstrainedEdge removes the undirected edge from both constraint
// sets.
func (t *Triangulation) deleteConstrainedEdge(u, v int) {
	e := normalizeEdge(u, v)
	delete(t.allConstrainedEdges, e)
	delete(t.constrainedEdges, e)
}

// replaceConstrainedEdge substitutes (u, r) and (r, v) for the constraint
// (u, v), preserving user membership.
func (t *Triangulation) replaceConstrainedEdge(u, v, r int) {
	e := normalizeEdge(u, v)
	_, user := t.constrainedEdges[e]
	t.deleteConstrainedEdge(u, v)
	t.addConstrainedEdge(u, r, user)
	t.addConstrainedEdge(r, v, user)
}

// AddGhostTriangles rebuilds the ghost envelope from the recorded convex
// hull: every hull edge (u, v) receives the ghost triangle (v, u, ghost).
func (t *Triangulation) AddGhostTriangles() {
	n := len(t.hull)
	for i := range n {
		u := t.hull[i]
		v := t.hull[(i+1)%n]
		t.addTriangle(v, u, GhostVertex, false)
	}
}

// DeleteGhostTriangles removes every ghost triangle, leaving only the solid
// triangulation. The convex hull record is unaffected.
func (t *Triangulation) DeleteGhostTriangles() {
	ghosts := t.GhostTriangles()
	for _, g := range ghosts {
		t.deleteTriangle(g.I, g.J, g.K, false, false)
	}
}

// ClearEmptyFeatures drops empty inner sets left behind by deletions.
func (t *Triangulation) ClearEmptyFeatures() {
	for v, set := range t.adjacent2Vertex {
		if len(set) == 0 {
			delete(t.adjacent2Vertex, v)
		}
	}
	for v, set := range t.graph {
		if len(set) == 0 {
			delete(t.graph, v)
		}
	}
}
