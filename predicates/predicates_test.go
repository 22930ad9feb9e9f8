// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package predicates

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
)

// Orient

func TestOrient(t *testing.T) {
	tests := []struct {
		name    string
		p, q, r r2.Point
		want    int
	}{
		{"left", r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 0}, r2.Point{X: 0, Y: 1}, 1},
		{"right", r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 0}, r2.Point{X: 0, Y: -1}, -1},
		{"collinear", r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 0}, r2.Point{X: 2, Y: 0}, 0},
		{"collinear behind", r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 0}, r2.Point{X: -3, Y: 0}, 0},
		{"coincident", r2.Point{X: 0.5, Y: 0.5}, r2.Point{X: 0.5, Y: 0.5}, r2.Point{X: 0.5, Y: 0.5}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Orient(tt.p, tt.q, tt.r); got != tt.want {
				t.Errorf("Orient(%v, %v, %v) = %d, want %d", tt.p, tt.q, tt.r, got, tt.want)
			}
		})
	}
}

func TestOrient_NearDegenerate(t *testing.T) {
	//nolint:gosec
	random := rand.New(rand.NewSource(7))
	const trials = 100000
	for range trials {
		p := r2.Point{X: random.Float64(), Y: random.Float64()}
		d := r2.Point{X: random.Float64() - 0.5, Y: random.Float64() - 0.5}
		s := random.Float64() * 2
		q := p.Add(d)
		r := p.Add(d.Mul(s))
		// Push r off the line by a sub-ulp to a few-ulp amount, or not at
		// all; the rounded coordinates decide the true sign.
		switch random.Intn(3) {
		case 0:
			r.X += random.Float64() * 1e-16
		case 1:
			r.Y -= random.Float64() * 1e-16
		}
		if got, want := Orient(p, q, r), orientOracle(p, q, r); got != want {
			t.Fatalf("Orient(%v, %v, %v) = %d, oracle = %d", p, q, r, got, want)
		}
	}
}

// InCircle

func TestInCircle(t *testing.T) {
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 2, Y: 0}
	c := r2.Point{X: 0, Y: 2}
	tests := []struct {
		name string
		p    r2.Point
		want int
	}{
		{"center", r2.Point{X: 1, Y: 1}, 1},
		{"far", r2.Point{X: 5, Y: 5}, -1},
		{"cocircular", r2.Point{X: 2, Y: 2}, 0},
		{"vertex", r2.Point{X: 2, Y: 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InCircle(a, b, c, tt.p); got != tt.want {
				t.Errorf("InCircle(a, b, c, %v) = %d, want %d", tt.p, got, tt.want)
			}
		})
	}
}

func TestInCircle_NearDegenerate(t *testing.T) {
	//nolint:gosec
	random := rand.New(rand.NewSource(11))
	const trials = 100000
	onCircle := func(cx, cy, r, theta float64) r2.Point {
		return r2.Point{X: cx + r*math.Cos(theta), Y: cy + r*math.Sin(theta)}
	}
	for range trials {
		cx := random.Float64()
		cy := random.Float64()
		radius := random.Float64() + 0.5
		t0 := random.Float64() * 2
		t1 := t0 + random.Float64()*2
		t2 := t1 + random.Float64()*2
		a := onCircle(cx, cy, radius, t0)
		b := onCircle(cx, cy, radius, t1)
		c := onCircle(cx, cy, radius, t2)
		if Orient(a, b, c) != 1 {
			continue
		}
		perturb := radius * (random.Float64() - 0.5) * 1e-15
		p := onCircle(cx, cy, radius+perturb, random.Float64()*6)
		if got, want := InCircle(a, b, c, p), inCircleOracle(a, b, c, p); got != want {
			t.Fatalf("InCircle(%v, %v, %v, %v) = %d, oracle = %d", a, b, c, p, got, want)
		}
	}
}

// SameSide

func TestSameSide(t *testing.T) {
	tests := []struct {
		name    string
		a, b, p r2.Point
		want    int
	}{
		{"same side", r2.Point{X: 2, Y: 0}, r2.Point{X: 3, Y: 0}, r2.Point{X: 0, Y: 0}, 1},
		{"opposite sides", r2.Point{X: -1, Y: 0}, r2.Point{X: 1, Y: 0}, r2.Point{X: 0, Y: 0}, -1},
		{"a coincides", r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 0}, r2.Point{X: 0, Y: 0}, 0},
		{"b coincides", r2.Point{X: 1, Y: 0}, r2.Point{X: 0, Y: 0}, r2.Point{X: 0, Y: 0}, 0},
		{"vertical same", r2.Point{X: 0, Y: 2}, r2.Point{X: 0, Y: 5}, r2.Point{X: 0, Y: 1}, 1},
		{"vertical opposite", r2.Point{X: 0, Y: -2}, r2.Point{X: 0, Y: 5}, r2.Point{X: 0, Y: 1}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameSide(tt.a, tt.b, tt.p); got != tt.want {
				t.Errorf("SameSide(%v, %v, %v) = %d, want %d", tt.a, tt.b, tt.p, got, tt.want)
			}
		})
	}
}

// Meet

func TestMeet(t *testing.T) {
	tests := []struct {
		name       string
		p, q, a, b r2.Point
		want       int
	}{
		{
			"proper crossing",
			r2.Point{X: 0, Y: -1}, r2.Point{X: 0, Y: 1},
			r2.Point{X: -1, Y: 0}, r2.Point{X: 1, Y: 0},
			1,
		},
		{
			"disjoint",
			r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 0},
			r2.Point{X: 0, Y: 1}, r2.Point{X: 1, Y: 1},
			0,
		},
		{
			"shared endpoint",
			r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 0},
			r2.Point{X: 1, Y: 0}, r2.Point{X: 2, Y: 1},
			0,
		},
		{
			"endpoint in interior",
			r2.Point{X: 0, Y: 0}, r2.Point{X: 2, Y: 0},
			r2.Point{X: 1, Y: 0}, r2.Point{X: 1, Y: 1},
			0,
		},
		{
			"collinear overlap",
			r2.Point{X: 0, Y: 0}, r2.Point{X: 2, Y: 0},
			r2.Point{X: 1, Y: 0}, r2.Point{X: 3, Y: 0},
			-1,
		},
		{
			"collinear nested",
			r2.Point{X: 0, Y: 0}, r2.Point{X: 3, Y: 0},
			r2.Point{X: 1, Y: 0}, r2.Point{X: 2, Y: 0},
			-1,
		},
		{
			"collinear shared endpoint only",
			r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 0},
			r2.Point{X: 1, Y: 0}, r2.Point{X: 2, Y: 0},
			0,
		},
		{
			"collinear disjoint",
			r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 0},
			r2.Point{X: 2, Y: 0}, r2.Point{X: 3, Y: 0},
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Meet(tt.p, tt.q, tt.a, tt.b); got != tt.want {
				t.Errorf("Meet(%v, %v, %v, %v) = %d, want %d", tt.p, tt.q, tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// Benchmarks

func BenchmarkOrient(b *testing.B) {
	//nolint:gosec
	random := rand.New(rand.NewSource(0))
	pts := make([]r2.Point, 3*1024)
	for i := range pts {
		pts[i] = r2.Point{X: random.Float64(), Y: random.Float64()}
	}
	b.ReportAllocs()
	b.ResetTimer()
	i := 0
	for b.Loop() {
		Orient(pts[i], pts[i+1], pts[i+2])
		i = (i + 3) % 3072
	}
}

func BenchmarkInCircle(b *testing.B) {
	//nolint:gosec
	random := rand.New(rand.NewSource(0))
	pts := make([]r2.Point, 4*1024)
	for i := range pts {
		pts[i] = r2.Point{X: random.Float64(), Y: random.Float64()}
	}
	b.ReportAllocs()
	b.ResetTimer()
	i := 0
	for b.Loop() {
		InCircle(pts[i], pts[i+1], pts[i+2], pts[i+3])
		i = (i + 4) % 4096
	}
}

// Oracles: straight multi-precision evaluation of the determinants,
// independent of the filtered implementations.

func orientOracle(p, q, r r2.Point) int {
	px, py := bigRat(p.X), bigRat(p.Y)
	qx, qy := bigRat(q.X), bigRat(q.Y)
	rx, ry := bigRat(r.X), bigRat(r.Y)

	left := new(big.Rat).Mul(new(big.Rat).Sub(px, rx), new(big.Rat).Sub(qy, ry))
	right := new(big.Rat).Mul(new(big.Rat).Sub(py, ry), new(big.Rat).Sub(qx, rx))
	return left.Sub(left, right).Sign()
}

func inCircleOracle(a, b, c, p r2.Point) int {
	rows := [3][2]*big.Rat{}
	lifts := [3]*big.Rat{}
	for i, q := range []r2.Point{a, b, c} {
		dx := new(big.Rat).Sub(bigRat(q.X), bigRat(p.X))
		dy := new(big.Rat).Sub(bigRat(q.Y), bigRat(p.Y))
		rows[i] = [2]*big.Rat{dx, dy}
		xx := new(big.Rat).Mul(dx, dx)
		yy := new(big.Rat).Mul(dy, dy)
		lifts[i] = xx.Add(xx, yy)
	}
	det := new(big.Rat)
	for i := range 3 {
		j := (i + 1) % 3
		k := (i + 2) % 3
		minor := new(big.Rat).Mul(rows[j][0], rows[k][1])
		minor.Sub(minor, new(big.Rat).Mul(rows[j][1], rows[k][0]))
		det.Add(det, minor.Mul(minor, lifts[i]))
	}
	return det.Sign()
}

func bigRat(v float64) *big.Rat {
	r := new(big.Rat).SetFloat64(v)
	if r == nil {
		panic("bigRat: non-finite value")
	}
	return r
}
