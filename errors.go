// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cdt

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// DegenerateInputError reports that every input point is collinear, so no
// valid initial triangle exists.
type DegenerateInputError struct {
	NumPoints int
}

func (e DegenerateInputError) Error() string {
	return fmt.Sprintf("cdt: all %d input points are collinear; no valid initial triangle exists", e.NumPoints)
}

// DuplicatePointError reports an insertion whose point coincides with an
// existing vertex. It is returned only in strict mode; the default is to
// skip the duplicate silently.
type DuplicatePointError struct {
	Index    int
	Existing int
	Point    r2.Point
}

func (e DuplicatePointError) Error() string {
	return fmt.Sprintf("cdt: point %d (%v, %v) coincides with existing vertex %d",
		e.Index, e.Point.X, e.Point.Y, e.Existing)
}

// ConstraintViolationError reports a constrained-edge operation that cannot
// be carried out: missing endpoints, a crossing with another constrained
// edge, or a configuration the inserter cannot resolve.
type ConstraintViolationError struct {
	U, V   int
	Reason string
}

func (e ConstraintViolationError) Error() string {
	return fmt.Sprintf("cdt: constrained edge (%d, %d): %s", e.U, e.V, e.Reason)
}

// WalkFailureError reports that point location exceeded its safety bound.
// It protects against infinite loops on corrupted state.
type WalkFailureError struct {
	Point r2.Point
	Steps int
}

func (e WalkFailureError) Error() string {
	return fmt.Sprintf("cdt: point location for (%v, %v) gave up after %d steps",
		e.Point.X, e.Point.Y, e.Steps)
}

// InvariantViolationError reports that a topology invariant no longer holds.
// It indicates a bug in the library and should not be caught.
type InvariantViolationError struct {
	Reason string
}

func (e InvariantViolationError) Error() string {
	return "cdt: invariant violation: " + e.Reason
}
