// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Eps is the coordinate tolerance used by Point.Equal.
//
// Equality under Eps is reflexive and symmetric but not transitive: a chain of
// points spaced just under Eps apart compares equal pairwise with its
// neighbours while its ends do not. Points are not snapped or merged.
const Eps = 1e-7

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// R2 returns p as an r2.Point.
func (p Point) R2() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// Equal reports whether p and q differ by at most Eps in both coordinates.
func (p Point) Equal(q Point) bool {
	return p.ApproxEqual(q, Eps)
}

// ApproxEqual reports whether p and q differ by at most eps in both coordinates.
func (p Point) ApproxEqual(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return a.R2().Sub(b.R2()).Norm()
}

// Edge is an unordered pair of points.
type Edge struct {
	P1, P2 Point
}

// Equal reports whether e and o join the same points, in either order.
func (e Edge) Equal(o Edge) bool {
	return e.ApproxEqual(o, Eps)
}

// ApproxEqual is Equal with an explicit point tolerance.
func (e Edge) ApproxEqual(o Edge, eps float64) bool {
	return e.P1.ApproxEqual(o.P1, eps) && e.P2.ApproxEqual(o.P2, eps) ||
		e.P2.ApproxEqual(o.P1, eps) && e.P1.ApproxEqual(o.P2, eps)
}

// Length returns the distance between the endpoints.
func (e Edge) Length() float64 {
	return Distance(e.P1, e.P2)
}

func (e Edge) String() string {
	return fmt.Sprintf("%v-%v", e.P1, e.P2)
}

type Circle struct {
	Center Point
	R      float64
}

// ContainsPoint reports whether p lies strictly inside c.
// Points on the circle are not contained.
func (c Circle) ContainsPoint(p Point) bool {
	return Distance(c.Center, p) < c.R
}

// DegenerateTriangleError reports three collinear points, for which no
// circumcircle exists.
type DegenerateTriangleError struct {
	P1, P2, P3 Point
}

func (e *DegenerateTriangleError) Error() string {
	return fmt.Sprintf("delaunay: degenerate triangle %v %v %v: points are collinear", e.P1, e.P2, e.P3)
}

// Triangle is a triangle together with its edges and circumcircle.
type Triangle struct {
	P1, P2, P3 Point
	// E1 = P1-P2, E2 = P2-P3, E3 = P1-P3.
	E1, E2, E3 Edge
	Circle     Circle
}

// NewTriangle builds the triangle p1 p2 p3 and its circumcircle.
//
// The circumcentre is the intersection of the perpendicular bisectors of
// p1-p2 and p1-p3, solved with Cramer's rule. A *DegenerateTriangleError is
// returned when the points are collinear.
func NewTriangle(p1, p2, p3 Point) (Triangle, error) {
	// A1*x + B1*y = C1
	a1 := p2.X - p1.X
	b1 := p2.Y - p1.Y
	c1 := (p1.X+p2.X)/2*a1 + (p1.Y+p2.Y)/2*b1

	// A2*x + B2*y = C2
	a2 := p3.X - p1.X
	b2 := p3.Y - p1.Y
	c2 := (p1.X+p3.X)/2*a2 + (p1.Y+p3.Y)/2*b2

	det := a1*b2 - a2*b1
	if det == 0 {
		return Triangle{}, &DegenerateTriangleError{P1: p1, P2: p2, P3: p3}
	}

	center := Point{
		X: (b2*c1 - b1*c2) / det,
		Y: (a1*c2 - a2*c1) / det,
	}
	r := Distance(center, p1)
	if !isFinite(center.X) || !isFinite(center.Y) || !isFinite(r) {
		return Triangle{}, &DegenerateTriangleError{P1: p1, P2: p2, P3: p3}
	}

	return Triangle{
		P1:     p1,
		P2:     p2,
		P3:     p3,
		E1:     Edge{p1, p2},
		E2:     Edge{p2, p3},
		E3:     Edge{p1, p3},
		Circle: Circle{Center: center, R: r},
	}, nil
}

func (t Triangle) Vertices() [3]Point {
	return [3]Point{t.P1, t.P2, t.P3}
}

func (t Triangle) Edges() [3]Edge {
	return [3]Edge{t.E1, t.E2, t.E3}
}

// HasVertex reports whether any vertex of t equals p within eps.
func (t Triangle) HasVertex(p Point, eps float64) bool {
	return t.P1.ApproxEqual(p, eps) || t.P2.ApproxEqual(p, eps) || t.P3.ApproxEqual(p, eps)
}

// SharesEdge reports whether any edge of t equals any edge of u within eps.
func (t Triangle) SharesEdge(u Triangle, eps float64) bool {
	for _, e := range t.Edges() {
		for _, f := range u.Edges() {
			if e.ApproxEqual(f, eps) {
				return true
			}
		}
	}
	return false
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
