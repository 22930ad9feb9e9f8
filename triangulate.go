// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cdt

import (
	"errors"
	"math/rand"

	"github.com/2dChan/cdt/predicates"
	"github.com/golang/geo/r2"
)

// Options collects the tunables of Triangulate and the incremental editing
// operations. Use the With* option constructors to change defaults.
type Options struct {
	randomise               bool
	deleteGhosts            bool
	deleteEmptyFeatures     bool
	tryLastInsertedPoint    bool
	recomputeRepresentative bool
	skipRepresentative      bool
	strictDuplicates        bool
	skipPoints              map[int]struct{}
	numSamples              func(int) int
	rng                     *rand.Rand
	pointOrder              []int
	tryPoints               []int
	constrainedEdges        []Edge
	boundaryNodes           []int
}

// Option mutates Options; invalid values are rejected with an error.
type Option func(*Options) error

func newOptions(setters []Option) (*Options, error) {
	opts := &Options{
		randomise:            true,
		tryLastInsertedPoint: true,
	}
	for _, set := range setters {
		if err := set(opts); err != nil {
			return nil, err
		}
	}
	if opts.rng == nil {
		opts.rng = rand.New(rand.NewSource(0))
	}
	return opts, nil
}

// WithRNG supplies the random source used for point-order shuffling, seed
// sampling and walk tie-breaks. Two builds from identical inputs and
// identically seeded sources produce identical triangle sets.
func WithRNG(rng *rand.Rand) Option {
	return func(o *Options) error {
		if rng == nil {
			return errors.New("WithRNG: rng must be non-nil")
		}
		o.rng = rng
		return nil
	}
}

// WithSeed is shorthand for WithRNG(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(o *Options) error {
		//nolint:gosec
		o.rng = rand.New(rand.NewSource(seed))
		return nil
	}
}

// WithRandomise toggles shuffling of the insertion order.
func WithRandomise(randomise bool) Option {
	return func(o *Options) error {
		o.randomise = randomise
		return nil
	}
}

// WithDeleteGhosts removes the ghost envelope after the build.
func WithDeleteGhosts(deleteGhosts bool) Option {
	return func(o *Options) error {
		o.deleteGhosts = deleteGhosts
		return nil
	}
}

// WithDeleteEmptyFeatures clears empty index slots after the build.
func WithDeleteEmptyFeatures(deleteEmptyFeatures bool) Option {
	return func(o *Options) error {
		o.deleteEmptyFeatures = deleteEmptyFeatures
		return nil
	}
}

// WithTryLastInsertedPoint seeds each walk with the previously inserted
// vertex. Enabled by default.
func WithTryLastInsertedPoint(try bool) Option {
	return func(o *Options) error {
		o.tryLastInsertedPoint = try
		return nil
	}
}

// WithSkipPoints excludes the given 1-based point indices from the build.
func WithSkipPoints(indices ...int) Option {
	return func(o *Options) error {
		if o.skipPoints == nil {
			o.skipPoints = make(map[int]struct{}, len(indices))
		}
		for _, i := range indices {
			o.skipPoints[i] = struct{}{}
		}
		return nil
	}
}

// WithNumSampleRule overrides the m(n) rule sizing the walk-seed sample.
func WithNumSampleRule(rule func(n int) int) Option {
	return func(o *Options) error {
		if rule == nil {
			return errors.New("WithNumSampleRule: rule must be non-nil")
		}
		o.numSamples = rule
		return nil
	}
}

// WithPointOrder supplies a pre-computed insertion order of 1-based point
// indices, overriding both shuffling and the skip set.
func WithPointOrder(order []int) Option {
	return func(o *Options) error {
		if len(order) == 0 {
			return errors.New("WithPointOrder: order must be non-empty")
		}
		o.pointOrder = order
		return nil
	}
}

// WithTryPoints adds candidate walk-start vertices tried before the random
// sample.
func WithTryPoints(indices ...int) Option {
	return func(o *Options) error {
		o.tryPoints = append(o.tryPoints, indices...)
		return nil
	}
}

// WithRecomputeRepresentativePoint recomputes the representative point from
// scratch after the build instead of keeping the running accumulation.
func WithRecomputeRepresentativePoint(recompute bool) Option {
	return func(o *Options) error {
		o.recomputeRepresentative = recompute
		return nil
	}
}

// WithSkipRepresentativeUpdate disables the per-insertion representative
// point accumulation.
func WithSkipRepresentativeUpdate(skip bool) Option {
	return func(o *Options) error {
		o.skipRepresentative = skip
		return nil
	}
}

// WithStrictDuplicates makes inserting a point that coincides with an
// existing vertex an error instead of a silent skip.
func WithStrictDuplicates(strict bool) Option {
	return func(o *Options) error {
		o.strictDuplicates = strict
		return nil
	}
}

// WithConstrainedEdges requires the given edges, as pairs of 1-based point
// indices, to appear in the triangulation.
func WithConstrainedEdges(edges ...Edge) Option {
	return func(o *Options) error {
		o.constrainedEdges = append(o.constrainedEdges, edges...)
		return nil
	}
}

// WithBoundaryNodes supplies a cyclic sequence of 1-based point indices
// whose consecutive pairs become constrained boundary edges.
func WithBoundaryNodes(nodes []int) Option {
	return func(o *Options) error {
		if len(nodes) < 3 {
			return errors.New("WithBoundaryNodes: at least three nodes required")
		}
		o.boundaryNodes = nodes
		return nil
	}
}

// Triangulate builds the Delaunay triangulation of points, inserting them
// incrementally in a (by default) random order. With constrained edges or
// boundary nodes supplied, the required edges are inserted after the
// Delaunay build.
func Triangulate(points []r2.Point, setters ...Option) (*Triangulation, error) {
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}
	t := NewTriangulation(points)

	order := t.pointOrder(opts)
	if len(order) < 3 {
		return nil, DegenerateInputError{NumPoints: len(order)}
	}

	order, ok := rotateToInitialTriangle(t, order)
	if !ok {
		return nil, DegenerateInputError{NumPoints: len(order)}
	}
	i, j, k := order[0], order[1], order[2]
	if predicates.Orient(t.points[i], t.points[j], t.points[k]) < 0 {
		j, k = k, j
	}
	t.addTriangle(i, j, k, true)
	t.vertices = append(t.vertices, i, j, k)
	t.representative.add(t.points[i])
	t.representative.add(t.points[j])
	t.representative.add(t.points[k])

	for _, r := range order[3:] {
		var seeds []int
		if opts.tryLastInsertedPoint {
			seeds = []int{t.vertices[len(t.vertices)-1]}
		}
		seeds = append(seeds, opts.tryPoints...)
		if err := t.addPointBowyerWatson(r, seeds, opts); err != nil {
			return nil, err
		}
	}

	for _, e := range opts.constrainedEdges {
		if err := t.AddEdge(e.U, e.V); err != nil {
			return nil, err
		}
	}
	if len(opts.boundaryNodes) > 0 {
		t.boundaryNodes = append([]int(nil), opts.boundaryNodes...)
		n := len(opts.boundaryNodes)
		for idx := range n {
			u := opts.boundaryNodes[idx]
			v := opts.boundaryNodes[(idx+1)%n]
			if err := t.addEdgeImpl(u, v, false); err != nil {
				return nil, err
			}
		}
	}

	if err := t.RecomputeConvexHull(); err != nil {
		return nil, err
	}
	if opts.recomputeRepresentative {
		t.ComputeRepresentativePoints()
	}
	if opts.deleteGhosts {
		t.DeleteGhostTriangles()
	}
	if opts.deleteEmptyFeatures {
		t.ClearEmptyFeatures()
	}
	return t, nil
}

// pointOrder computes the insertion order: the supplied order verbatim, or
// every point index minus the skip set, shuffled when requested.
func (t *Triangulation) pointOrder(opts *Options) []int {
	if opts.pointOrder != nil {
		return append([]int(nil), opts.pointOrder...)
	}
	order := make([]int, 0, t.NumPoints())
	for i := 1; i <= t.NumPoints(); i++ {
		if _, skip := opts.skipPoints[i]; skip {
			continue
		}
		order = append(order, i)
	}
	if opts.randomise {
		opts.rng.Shuffle(len(order), func(a, b int) {
			order[a], order[b] = order[b], order[a]
		})
	}
	return order
}

// rotateToInitialTriangle rotates the order until its first three points are
// not collinear. Consecutive collinear triples chain, so failing every
// rotation means the whole input is collinear.
func rotateToInitialTriangle(t *Triangulation, order []int) ([]int, bool) {
	n := len(order)
	for s := range n {
		i := order[s]
		j := order[(s+1)%n]
		k := order[(s+2)%n]
		if predicates.Orient(t.points[i], t.points[j], t.points[k]) != 0 {
			return append(order[s:], order[:s]...), true
		}
	}
	return order, false
}
