// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating planar point sets
// for triangulations.

package utils

import (
	"math/rand"

	"github.com/golang/geo/r2"
)

// GenerateRandomPoints generates cnt random points in the unit square.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)

	for i := range cnt {
		points[i] = r2.Point{X: random.Float64(), Y: random.Float64()}
	}

	return points
}

// GenerateGridPoints generates the w by h integer grid, row by row.
func GenerateGridPoints(w, h int) []r2.Point {
	points := make([]r2.Point, 0, w*h)
	for y := range h {
		for x := range w {
			points = append(points, r2.Point{X: float64(x), Y: float64(y)})
		}
	}
	return points
}
