// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package cdt implements an incremental constrained planar Delaunay
// triangulation: Bowyer-Watson insertion with jump-and-march point location,
// sign-exact predicates, and ghost triangles closing the outer boundary.
//
// Points are referenced by 1-based index; index 0 is reserved. The single
// virtual vertex GhostVertex stands for the point at infinity and is shared
// by every unbounded face.
package cdt

import (
	"fmt"
	"slices"
	"sort"

	"github.com/golang/geo/r2"
)

const (
	// GhostVertex is the virtual vertex shared by all ghost triangles.
	GhostVertex = -1
	// EmptyVertex is the adjacency value reported for edges that are not
	// part of the triangulation. It is distinct from every valid vertex.
	EmptyVertex = 0
)

// Edge is an ordered pair of vertex indices. (U,V) and (V,U) are distinct
// keys of the adjacency index.
type Edge struct {
	U, V int
}

// Reversed returns the oppositely directed edge.
func (e Edge) Reversed() Edge {
	return Edge{e.V, e.U}
}

// normalizeEdge is the storage form for unordered edge sets.
func normalizeEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}
	return Edge{u, v}
}

// Triangle is an ordered vertex triple interpreted positively oriented.
// Triangles equal under cyclic shift are stored in one canonical rotation:
// ghost vertex last for ghost triangles, smallest vertex first otherwise.
type Triangle struct {
	I, J, K int
}

// NewTriangle returns the canonical rotation of (i, j, k).
func NewTriangle(i, j, k int) Triangle {
	switch GhostVertex {
	case i:
		return Triangle{j, k, i}
	case j:
		return Triangle{k, i, j}
	case k:
		return Triangle{i, j, k}
	}
	if j <= i && j <= k {
		return Triangle{j, k, i}
	}
	if k <= i && k <= j {
		return Triangle{k, i, j}
	}
	return Triangle{i, j, k}
}

// IsGhost reports whether the triangle contains the ghost vertex.
func (t Triangle) IsGhost() bool {
	return t.I == GhostVertex || t.J == GhostVertex || t.K == GhostVertex
}

// IsSolid reports whether all three vertices are real points.
func (t Triangle) IsSolid() bool {
	return !t.IsGhost()
}

// Vertices returns the vertex triple in canonical order.
func (t Triangle) Vertices() (int, int, int) {
	return t.I, t.J, t.K
}

// HasVertex reports whether v is one of the triangle's vertices.
func (t Triangle) HasVertex(v int) bool {
	return t.I == v || t.J == v || t.K == v
}

// Triangulation is a constrained planar Delaunay triangulation under
// incremental construction. The zero value is not usable; use Triangulate or
// NewTriangulation.
//
// A Triangulation is not safe for concurrent use. Views returned by query
// methods are valid only until the next mutating call.
type Triangulation struct {
	points []r2.Point // 1-based; points[0] is an unused sentinel

	adjacent        map[Edge]int
	adjacent2Vertex map[int]map[Edge]struct{}
	graph           map[int]map[int]struct{}
	triangles       map[Triangle]struct{}

	constrainedEdges    map[Edge]struct{} // user constraints, normalized
	allConstrainedEdges map[Edge]struct{} // user plus boundary, normalized

	vertices      []int // insertion order; the deterministic sampling pool
	hull          []int
	boundaryNodes []int

	representative representativePoint
}

// NewTriangulation returns an empty triangulation over the given point set.
// The points are copied behind a reserved sentinel slot; they are referenced
// by 1-based index thereafter.
func NewTriangulation(points []r2.Point) *Triangulation {
	stored := make([]r2.Point, len(points)+1)
	copy(stored[1:], points)
	return &Triangulation{
		points:              stored,
		adjacent:            make(map[Edge]int),
		adjacent2Vertex:     make(map[int]map[Edge]struct{}),
		graph:               make(map[int]map[int]struct{}),
		triangles:           make(map[Triangle]struct{}),
		constrainedEdges:    make(map[Edge]struct{}),
		allConstrainedEdges: make(map[Edge]struct{}),
	}
}

// NumPoints returns the number of stored points.
func (t *Triangulation) NumPoints() int {
	return len(t.points) - 1
}

// Point returns the point with 1-based index i.
// It panics if i does not reference a stored point.
func (t *Triangulation) Point(i int) r2.Point {
	if i <= 0 || i >= len(t.points) {
		panic(fmt.Sprintf("Point: index %d out of range [1 %d]", i, len(t.points)-1))
	}
	return t.points[i]
}

// NumTriangles returns the number of triangles, ghost triangles included.
func (t *Triangulation) NumTriangles() int {
	return len(t.triangles)
}

// NumSolidTriangles returns the number of solid triangles.
func (t *Triangulation) NumSolidTriangles() int {
	n := 0
	for tri := range t.triangles {
		if tri.IsSolid() {
			n++
		}
	}
	return n
}

// Adjacent returns the vertex w completing the triangle (u, v, w), or
// EmptyVertex if the directed edge (u, v) is not part of the triangulation.
func (t *Triangulation) Adjacent(u, v int) int {
	if w, ok := t.adjacent[Edge{u, v}]; ok {
		return w
	}
	return EmptyVertex
}

// ContainsTriangle reports whether (i, j, k) is a triangle of the
// triangulation, under any cyclic rotation.
func (t *Triangulation) ContainsTriangle(i, j, k int) bool {
	_, ok := t.triangles[NewTriangle(i, j, k)]
	return ok
}

// ContainsEdge reports whether the undirected edge (u, v) is an edge of some
// triangle.
func (t *Triangulation) ContainsEdge(u, v int) bool {
	if _, ok := t.adjacent[Edge{u, v}]; ok {
		return true
	}
	_, ok := t.adjacent[Edge{v, u}]
	return ok
}

// Neighbours returns the sorted neighbour set of v, ghost vertex included
// where applicable.
func (t *Triangulation) Neighbours(v int) []int {
	set, ok := t.graph[v]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(set))
	for u := range set {
		out = append(out, u)
	}
	sort.Ints(out)
	return out
}

// Triangles returns all triangles, ghosts included, in a deterministic
// order.
func (t *Triangulation) Triangles() []Triangle {
	out := make([]Triangle, 0, len(t.triangles))
	for tri := range t.triangles {
		out = append(out, tri)
	}
	sortTriangles(out)
	return out
}

// SolidTriangles returns the solid triangles in a deterministic order.
func (t *Triangulation) SolidTriangles() []Triangle {
	out := make([]Triangle, 0, len(t.triangles))
	for tri := range t.triangles {
		if tri.IsSolid() {
			out = append(out, tri)
		}
	}
	sortTriangles(out)
	return out
}

// GhostTriangles returns the ghost triangles in a deterministic order.
func (t *Triangulation) GhostTriangles() []Triangle {
	out := make([]Triangle, 0, len(t.triangles))
	for tri := range t.triangles {
		if tri.IsGhost() {
			out = append(out, tri)
		}
	}
	sortTriangles(out)
	return out
}

// SolidEdges returns the undirected edges between real vertices in a
// deterministic order.
func (t *Triangulation) SolidEdges() []Edge {
	return t.collectEdges(true)
}

// GhostEdges returns the undirected edges incident to the ghost vertex in a
// deterministic order.
func (t *Triangulation) GhostEdges() []Edge {
	return t.collectEdges(false)
}

func (t *Triangulation) collectEdges(solid bool) []Edge {
	seen := make(map[Edge]struct{})
	for e := range t.adjacent {
		isSolid := e.U != GhostVertex && e.V != GhostVertex
		if isSolid != solid {
			continue
		}
		seen[normalizeEdge(e.U, e.V)] = struct{}{}
	}
	out := make([]Edge, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	sortEdges(out)
	return out
}

// SolidVertices returns the sorted indices of all real vertices currently in
// the triangulation.
func (t *Triangulation) SolidVertices() []int {
	out := make([]int, 0, len(t.vertices))
	for _, v := range t.vertices {
		if len(t.graph[v]) > 0 {
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

// HasGhostTriangles reports whether the ghost envelope is present.
func (t *Triangulation) HasGhostTriangles() bool {
	return len(t.graph[GhostVertex]) > 0
}

// ConstrainedEdges returns the user-supplied constrained edges, normalized
// and sorted.
func (t *Triangulation) ConstrainedEdges() []Edge {
	return edgeSetSlice(t.constrainedEdges)
}

// AllConstrainedEdges returns the union of user constraints and boundary
// edges, normalized and sorted.
func (t *Triangulation) AllConstrainedEdges() []Edge {
	return edgeSetSlice(t.allConstrainedEdges)
}

// IsConstrained reports whether the undirected edge (u, v) is in the
// all-constraints set.
func (t *Triangulation) IsConstrained(u, v int) bool {
	_, ok := t.allConstrainedEdges[normalizeEdge(u, v)]
	return ok
}

// ConvexHull returns the vertices of the outer boundary in counterclockwise
// cyclic order. While the ghost envelope is present the hull is rebuilt
// from it, so the record stays current across incremental edits.
func (t *Triangulation) ConvexHull() []int {
	if t.HasGhostTriangles() {
		if err := t.RecomputeConvexHull(); err != nil {
			panic(err.Error())
		}
	}
	return slices.Clone(t.hull)
}

// BoundaryNodes returns the boundary-node record of a boundary-constrained
// build, or nil.
func (t *Triangulation) BoundaryNodes() []int {
	return slices.Clone(t.boundaryNodes)
}

// RepresentativePoint returns the running interior seed of the triangulated
// region.
func (t *Triangulation) RepresentativePoint() r2.Point {
	return t.representative.point()
}

func edgeSetSlice(set map[Edge]struct{}) []Edge {
	out := make([]Edge, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	sortEdges(out)
	return out
}

func sortTriangles(tris []Triangle) {
	sort.Slice(tris, func(a, b int) bool {
		if tris[a].I != tris[b].I {
			return tris[a].I < tris[b].I
		}
		if tris[a].J != tris[b].J {
			return tris[a].J < tris[b].J
		}
		return tris[a].K < tris[b].K
	})
}

func sortEdges(edges []Edge) {
	sort.Slice(edges, func(a, b int) bool {
		if edges[a].U != edges[b].U {
			return edges[a].U < edges[b].U
		}
		return edges[a].V < edges[b].V
	})
}

// representativePoint accumulates a running centroid used to seed
// point-in-polygon tests. It is a cheap interior seed, not an exact
// centroid.
type representativePoint struct {
	sumX, sumY float64
	count      int
}

func (r *representativePoint) add(p r2.Point) {
	r.sumX += p.X
	r.sumY += p.Y
	r.count++
}

func (r *representativePoint) reset() {
	*r = representativePoint{}
}

func (r *representativePoint) point() r2.Point {
	if r.count == 0 {
		return r2.Point{}
	}
	return r2.Point{X: r.sumX / float64(r.count), Y: r.sumY / float64(r.count)}
}
