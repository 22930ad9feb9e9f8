// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package predicates

import (
	"github.com/golang/geo/r2"
)

// TriangleOrientation classifies the winding of a triangle.
type TriangleOrientation int

const (
	NegativelyOriented TriangleOrientation = iota
	DegenerateTriangle
	PositivelyOriented
)

func (o TriangleOrientation) String() string {
	switch o {
	case NegativelyOriented:
		return "NegativelyOriented"
	case DegenerateTriangle:
		return "DegenerateTriangle"
	case PositivelyOriented:
		return "PositivelyOriented"
	}
	return "UnknownOrientation"
}

// CirclePosition classifies a point against a circle.
type CirclePosition int

const (
	OutsideCircle CirclePosition = iota
	OnCircle
	InsideCircle
)

func (c CirclePosition) String() string {
	switch c {
	case OutsideCircle:
		return "OutsideCircle"
	case OnCircle:
		return "OnCircle"
	case InsideCircle:
		return "InsideCircle"
	}
	return "UnknownCirclePosition"
}

// LinePosition classifies a point against a directed line.
type LinePosition int

const (
	RightOfLine LinePosition = iota
	OnLine
	LeftOfLine
)

func (l LinePosition) String() string {
	switch l {
	case RightOfLine:
		return "RightOfLine"
	case OnLine:
		return "OnLine"
	case LeftOfLine:
		return "LeftOfLine"
	}
	return "UnknownLinePosition"
}

// SegmentPosition classifies a point known to be collinear with a segment
// [a,b]: on the open segment, coincident with an endpoint, before a, or
// after b.
type SegmentPosition int

const (
	OnSegment SegmentPosition = iota
	DegenerateSegmentPosition
	LeftOfSegment
	RightOfSegment
)

func (s SegmentPosition) String() string {
	switch s {
	case OnSegment:
		return "OnSegment"
	case DegenerateSegmentPosition:
		return "DegenerateSegmentPosition"
	case LeftOfSegment:
		return "LeftOfSegment"
	case RightOfSegment:
		return "RightOfSegment"
	}
	return "UnknownSegmentPosition"
}

// SegmentsMeet classifies the intersection of two closed segments.
type SegmentsMeet int

const (
	NoIntersection SegmentsMeet = iota
	SingleIntersection
	MultipleIntersections
	TouchingIntersection
)

func (m SegmentsMeet) String() string {
	switch m {
	case NoIntersection:
		return "NoIntersection"
	case SingleIntersection:
		return "SingleIntersection"
	case MultipleIntersections:
		return "MultipleIntersections"
	case TouchingIntersection:
		return "TouchingIntersection"
	}
	return "UnknownSegmentsMeet"
}

// TrianglePosition classifies a point against a closed triangle.
type TrianglePosition int

const (
	OutsideTriangle TrianglePosition = iota
	OnTriangle
	InsideTriangle
)

func (p TrianglePosition) String() string {
	switch p {
	case OutsideTriangle:
		return "OutsideTriangle"
	case OnTriangle:
		return "OnTriangle"
	case InsideTriangle:
		return "InsideTriangle"
	}
	return "UnknownTrianglePosition"
}

// HalfplanePosition classifies a point against the oriented outer halfplane
// of a boundary edge.
type HalfplanePosition int

const (
	OutsideHalfplane HalfplanePosition = iota
	OnHalfplane
	InsideHalfplane
)

func (h HalfplanePosition) String() string {
	switch h {
	case OutsideHalfplane:
		return "OutsideHalfplane"
	case OnHalfplane:
		return "OnHalfplane"
	case InsideHalfplane:
		return "InsideHalfplane"
	}
	return "UnknownHalfplanePosition"
}

// Legality classifies an interior edge of a triangulation.
type Legality int

const (
	IllegalEdge Legality = iota
	LegalEdge
)

func (l Legality) String() string {
	switch l {
	case IllegalEdge:
		return "IllegalEdge"
	case LegalEdge:
		return "LegalEdge"
	}
	return "UnknownLegality"
}

// TriangleMeet classifies the intersection of a closed segment with a closed
// triangle.
type TriangleMeet int

const (
	SegmentOutside TriangleMeet = iota
	SegmentInside
	SegmentSingleCrossing
	SegmentMultipleCrossings
	SegmentTouching
)

func (m TriangleMeet) String() string {
	switch m {
	case SegmentOutside:
		return "SegmentOutside"
	case SegmentInside:
		return "SegmentInside"
	case SegmentSingleCrossing:
		return "SegmentSingleCrossing"
	case SegmentMultipleCrossings:
		return "SegmentMultipleCrossings"
	case SegmentTouching:
		return "SegmentTouching"
	}
	return "UnknownTriangleMeet"
}

// TriangleOrientationOf classifies the winding of triangle (a, b, c).
func TriangleOrientationOf(a, b, c r2.Point) TriangleOrientation {
	switch Orient(a, b, c) {
	case 1:
		return PositivelyOriented
	case -1:
		return NegativelyOriented
	}
	return DegenerateTriangle
}

// LinePositionOf classifies r against the directed line p->q.
func LinePositionOf(p, q, r r2.Point) LinePosition {
	switch Orient(p, q, r) {
	case 1:
		return LeftOfLine
	case -1:
		return RightOfLine
	}
	return OnLine
}

// CircumcirclePositionOf classifies p against the circumcircle of the
// positively oriented triangle (a, b, c).
func CircumcirclePositionOf(a, b, c, p r2.Point) CirclePosition {
	switch InCircle(a, b, c, p) {
	case 1:
		return InsideCircle
	case -1:
		return OutsideCircle
	}
	return OnCircle
}

// SegmentPositionOf classifies p, known to be collinear with a and b, against
// the segment [a,b].
func SegmentPositionOf(a, b, p r2.Point) SegmentPosition {
	switch SameSide(a, b, p) {
	case -1:
		return OnSegment
	case 0:
		return DegenerateSegmentPosition
	}
	// p lies outside the closed segment; a separates p from b exactly when p
	// is on a's side.
	if SameSide(p, b, a) == -1 {
		return LeftOfSegment
	}
	return RightOfSegment
}

// SegmentsMeetOf classifies the intersection of closed segments [p,q] and
// [a,b].
func SegmentsMeetOf(p, q, a, b r2.Point) SegmentsMeet {
	switch Meet(p, q, a, b) {
	case 1:
		return SingleIntersection
	case -1:
		return MultipleIntersections
	}
	if segmentsShareAPoint(p, q, a, b) {
		return TouchingIntersection
	}
	return NoIntersection
}

// segmentsShareAPoint reports whether the closed segments [p,q] and [a,b]
// have at least one common point, assuming they neither cross properly nor
// overlap collinearly.
func segmentsShareAPoint(p, q, a, b r2.Point) bool {
	return pointOnClosedSegment(p, q, a) || pointOnClosedSegment(p, q, b) ||
		pointOnClosedSegment(a, b, p) || pointOnClosedSegment(a, b, q)
}

// pointOnClosedSegment reports whether c lies on the closed segment [a,b].
func pointOnClosedSegment(a, b, c r2.Point) bool {
	if Orient(a, b, c) != 0 {
		return false
	}
	return onClosedSegment(a, b, c)
}

// TrianglePositionOf classifies p against the closed, positively oriented
// triangle (a, b, c).
func TrianglePositionOf(a, b, c, p r2.Point) TrianglePosition {
	edges := [3][2]r2.Point{{a, b}, {b, c}, {c, a}}
	onBoundary := false
	for _, e := range edges {
		switch LinePositionOf(e[0], e[1], p) {
		case RightOfLine:
			return OutsideTriangle
		case OnLine:
			switch SegmentPositionOf(e[0], e[1], p) {
			case OnSegment, DegenerateSegmentPosition:
				onBoundary = true
			default:
				return OutsideTriangle
			}
		}
	}
	if onBoundary {
		return OnTriangle
	}
	return InsideTriangle
}

// OuterHalfplanePositionOf classifies p against the outer halfplane of the
// directed boundary edge a->b: Inside if p lies strictly to the left of the
// line, On if p lies on the closed segment [a,b], Outside otherwise.
func OuterHalfplanePositionOf(a, b, p r2.Point) HalfplanePosition {
	switch LinePositionOf(a, b, p) {
	case LeftOfLine:
		return InsideHalfplane
	case RightOfLine:
		return OutsideHalfplane
	}
	switch SegmentPositionOf(a, b, p) {
	case OnSegment, DegenerateSegmentPosition:
		return OnHalfplane
	}
	return OutsideHalfplane
}

// LegalityOf classifies the edge (p, q) shared by the positively oriented
// triangle (p, q, w) and the opposite vertex x: the edge is illegal exactly
// when x lies strictly inside the circumcircle of (p, q, w).
func LegalityOf(p, q, w, x r2.Point) Legality {
	if InCircle(p, q, w, x) == 1 {
		return IllegalEdge
	}
	return LegalEdge
}

// TriangleMeetOf classifies how the closed segment [p,q] intersects the
// closed, positively oriented triangle (a, b, c):
//
//   - SegmentInside: the whole closed segment lies in the closed triangle
//     (chords between boundary points included);
//   - SegmentSingleCrossing: the segment crosses the boundary once, with one
//     end reaching the interior or the boundary and the other outside;
//   - SegmentMultipleCrossings: the segment passes through the interior with
//     both ends outside, or overlaps an edge collinearly in more than one
//     point;
//   - SegmentTouching: the segment meets the triangle only on its boundary
//     without entering, with at least one end outside;
//   - SegmentOutside: no common point.
func TriangleMeetOf(a, b, c, p, q r2.Point) TriangleMeet {
	edges := [3][2]r2.Point{{a, b}, {b, c}, {c, a}}

	crossings := 0
	for _, e := range edges {
		switch Meet(e[0], e[1], p, q) {
		case -1:
			return SegmentMultipleCrossings
		case 1:
			crossings++
		}
	}

	posP := TrianglePositionOf(a, b, c, p)
	posQ := TrianglePositionOf(a, b, c, q)
	if posP != OutsideTriangle && posQ != OutsideTriangle {
		return SegmentInside
	}
	if posP == InsideTriangle || posQ == InsideTriangle {
		return SegmentSingleCrossing
	}

	switch {
	case crossings >= 2:
		return SegmentMultipleCrossings
	case crossings == 1:
		return SegmentSingleCrossing
	}

	if posP == OnTriangle || posQ == OnTriangle {
		return SegmentTouching
	}
	for _, e := range edges {
		if SegmentsMeetOf(e[0], e[1], p, q) == TouchingIntersection {
			return SegmentTouching
		}
	}
	return SegmentOutside
}
