// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package predicates implements sign-exact geometric predicates for planar
// triangulations: orientation, in-circle, collinear side and segment-meet
// tests, plus the certificate types built on top of them.
//
// Each primitive returns a sign in {-1, 0, +1}. A floating-point filter with a
// forward error bound decides the easy cases; whenever the bound cannot
// certify the sign, the determinant is re-evaluated in exact rational
// arithmetic. The conversion from float64 to big.Rat is exact, so the fallback
// sign is correct for every finite double input.
package predicates

import (
	"math/big"

	"github.com/golang/geo/r2"
)

// epsilon is the float64 machine epsilon, 2^-53.
const epsilon = 1.1102230246251565e-16

var (
	ccwErrBound      = (3.0 + 16.0*epsilon) * epsilon
	inCircleErrBound = (10.0 + 96.0*epsilon) * epsilon
)

// Orient returns the position of r relative to the directed line p->q:
// +1 if r lies to the left, 0 if the three points are collinear, and -1 if r
// lies to the right.
func Orient(p, q, r r2.Point) int {
	detLeft := (p.X - r.X) * (q.Y - r.Y)
	detRight := (p.Y - r.Y) * (q.X - r.X)
	det := detLeft - detRight

	var detSum float64
	switch {
	case detLeft > 0:
		if detRight <= 0 {
			return sign(det)
		}
		detSum = detLeft + detRight
	case detLeft < 0:
		if detRight >= 0 {
			return sign(det)
		}
		detSum = -detLeft - detRight
	default:
		// detLeft == 0, so det == -detRight exactly.
		return sign(det)
	}

	if det >= ccwErrBound*detSum || -det >= ccwErrBound*detSum {
		return sign(det)
	}
	return orientExact(p, q, r)
}

// InCircle returns the position of p relative to the circumcircle of the
// positively oriented triangle (a, b, c): +1 inside, 0 on the circle, -1
// outside.
func InCircle(a, b, c, p r2.Point) int {
	adx := a.X - p.X
	ady := a.Y - p.Y
	bdx := b.X - p.X
	bdy := b.Y - p.Y
	cdx := c.X - p.X
	cdy := c.Y - p.Y

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	alift := adx*adx + ady*ady

	cdxady := cdx * ady
	adxcdy := adx * cdy
	blift := bdx*bdx + bdy*bdy

	adxbdy := adx * bdy
	bdxady := bdx * ady
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)

	permanent := (abs(bdxcdy)+abs(cdxbdy))*alift +
		(abs(cdxady)+abs(adxcdy))*blift +
		(abs(adxbdy)+abs(bdxady))*clift
	errBound := inCircleErrBound * permanent
	if det > errBound || -det > errBound {
		return sign(det)
	}
	return inCircleExact(a, b, c, p)
}

// SameSide reports where a and b lie along their common line relative to p,
// all three points being collinear: +1 if a and b are on the same side of p,
// 0 if a or b coincides with p, and -1 if p separates them. The comparison is
// exact: only coordinate comparisons are involved.
func SameSide(a, b, p r2.Point) int {
	sa := axisSign(a, p)
	sb := axisSign(b, p)
	if sa == 0 || sb == 0 {
		return 0
	}
	if sa == sb {
		return 1
	}
	return -1
}

// Meet classifies how segments [p,q] and [a,b] intersect: +1 if the open
// segments cross in a single interior point, 0 if the closed segments share at
// most one point that is an endpoint of one of them (or do not meet at all),
// and -1 if the closed segments are collinear and overlap in more than one
// point.
func Meet(p, q, a, b r2.Point) int {
	pqa := Orient(p, q, a)
	pqb := Orient(p, q, b)
	abp := Orient(a, b, p)
	abq := Orient(a, b, q)

	if pqa*pqb < 0 && abp*abq < 0 {
		return 1
	}

	if pqa == 0 && pqb == 0 && abp == 0 && abq == 0 {
		// Collinear segments: an overlap of more than one point is the only
		// configuration reported as -1. A single shared point on a common
		// line is necessarily an endpoint of one of the segments, which
		// counts as a touch.
		var shared []r2.Point
		for _, c := range []r2.Point{a, b} {
			if onClosedSegment(p, q, c) {
				shared = appendUniquePoint(shared, c)
			}
		}
		for _, c := range []r2.Point{p, q} {
			if onClosedSegment(a, b, c) {
				shared = appendUniquePoint(shared, c)
			}
		}
		if len(shared) > 1 {
			return -1
		}
		return 0
	}

	return 0
}

func appendUniquePoint(pts []r2.Point, p r2.Point) []r2.Point {
	for _, q := range pts {
		if q == p {
			return pts
		}
	}
	return append(pts, p)
}

// onClosedSegment reports whether c, assumed collinear with a and b, lies on
// the closed segment [a,b].
func onClosedSegment(a, b, c r2.Point) bool {
	if c == a || c == b {
		return true
	}
	return SameSide(a, b, c) == -1
}

// axisSign returns the sign of q relative to p along the x axis, or along
// the y axis when their x coordinates are equal.
func axisSign(q, p r2.Point) int {
	switch {
	case q.X > p.X:
		return 1
	case q.X < p.X:
		return -1
	case q.Y > p.Y:
		return 1
	case q.Y < p.Y:
		return -1
	}
	return 0
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// orientExact evaluates the orientation determinant in exact rational
// arithmetic.
func orientExact(p, q, r r2.Point) int {
	px, py := ratsOf(p)
	qx, qy := ratsOf(q)
	rx, ry := ratsOf(r)

	left := new(big.Rat).Mul(new(big.Rat).Sub(px, rx), new(big.Rat).Sub(qy, ry))
	right := new(big.Rat).Mul(new(big.Rat).Sub(py, ry), new(big.Rat).Sub(qx, rx))
	return left.Sub(left, right).Sign()
}

// inCircleExact evaluates the in-circle determinant in exact rational
// arithmetic.
func inCircleExact(a, b, c, p r2.Point) int {
	ax, ay := ratsOf(a)
	bx, by := ratsOf(b)
	cx, cy := ratsOf(c)
	px, py := ratsOf(p)

	adx := new(big.Rat).Sub(ax, px)
	ady := new(big.Rat).Sub(ay, py)
	bdx := new(big.Rat).Sub(bx, px)
	bdy := new(big.Rat).Sub(by, py)
	cdx := new(big.Rat).Sub(cx, px)
	cdy := new(big.Rat).Sub(cy, py)

	alift := ratNormSq(adx, ady)
	blift := ratNormSq(bdx, bdy)
	clift := ratNormSq(cdx, cdy)

	bcd := ratCross(bdx, bdy, cdx, cdy)
	cad := ratCross(cdx, cdy, adx, ady)
	abd := ratCross(adx, ady, bdx, bdy)

	det := new(big.Rat).Mul(alift, bcd)
	det.Add(det, new(big.Rat).Mul(blift, cad))
	det.Add(det, new(big.Rat).Mul(clift, abd))
	return det.Sign()
}

func ratsOf(p r2.Point) (*big.Rat, *big.Rat) {
	x := new(big.Rat).SetFloat64(p.X)
	y := new(big.Rat).SetFloat64(p.Y)
	if x == nil || y == nil {
		panic("predicates: non-finite coordinate")
	}
	return x, y
}

func ratNormSq(x, y *big.Rat) *big.Rat {
	xx := new(big.Rat).Mul(x, x)
	yy := new(big.Rat).Mul(y, y)
	return xx.Add(xx, yy)
}

func ratCross(ax, ay, bx, by *big.Rat) *big.Rat {
	l := new(big.Rat).Mul(ax, by)
	r := new(big.Rat).Mul(ay, bx)
	return l.Sub(l, r)
}
