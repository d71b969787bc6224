// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package lifted computes Delaunay triangles as the lower convex hull of points
// lifted onto the paraboloid z = x² + y².
//
// It is independent of the Bowyer-Watson triangulator and serves as a
// reference to check it against.
package lifted

import (
	"errors"
	"fmt"
	"math"

	"github.com/2dChan/planarvoronoi/delaunay"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	defaultEps = 1e-12
)

type Options struct {
	Eps float64
}

type Option func(*Options) error

func WithEps(eps float64) Option {
	return func(o *Options) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// Triangles returns the Delaunay triangles of points as CCW index triples.
//
// NOTE: Points must be in general position. Four or more co-circular points
// produce faces of an arbitrary triangulation of their circle, and an input
// whose points are all co-circular is rejected.
func Triangles(points []delaunay.Point, setters ...Option) ([][3]int, error) {
	opts := Options{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	numVertices := len(points)
	if numVertices < 4 {
		return nil,
			errors.New("lifted: insufficient vertices for triangulation (minimum 4 required)")
	}

	lifted := lift(points)
	centroid := r3.Vector{}
	for _, v := range lifted {
		centroid = centroid.Add(v)
	}
	centroid = centroid.Mul(1 / float64(numVertices))

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, opts.Eps)
	if len(ch.Indices) == 0 || len(ch.Indices)%3 != 0 {
		return nil, errors.New("lifted: inconsistent number of indices returned from QuickHull")
	}

	var tris [][3]int
	for i := 0; i < len(ch.Indices); i += 3 {
		t := [3]int{ch.Indices[i], ch.Indices[i+1], ch.Indices[i+2]}
		a, b, c := lifted[t[0]], lifted[t[1]], lifted[t[2]]
		norm := b.Sub(a).Cross(c.Sub(a))
		if norm.Dot(a.Sub(centroid)) < 0 {
			norm = norm.Mul(-1)
		}
		if norm.Z >= 0 {
			continue
		}
		sortTriangleVerticesCCW(&t, points)
		tris = append(tris, t)
	}
	if len(tris) == 0 {
		return nil, errors.New("lifted: points are co-circular or collinear")
	}
	return tris, nil
}

// lift maps points into the unit box before lifting so that a fixed eps
// works for any canvas size.
func lift(points []delaunay.Point) []r3.Vector {
	rect := r2.EmptyRect()
	for _, p := range points {
		rect = rect.AddPoint(p.R2())
	}
	size := rect.Size()
	scale := math.Max(size.X, size.Y)
	if scale == 0 {
		scale = 1
	}

	lifted := make([]r3.Vector, len(points))
	for i, p := range points {
		q := p.R2().Sub(rect.Lo()).Mul(1 / scale)
		lifted[i] = r3.Vector{X: q.X, Y: q.Y, Z: q.X*q.X + q.Y*q.Y}
	}
	return lifted
}

func sortTriangleVerticesCCW(t *[3]int, v []delaunay.Point) {
	p0, p1, p2 := v[t[0]].R2(), v[t[1]].R2(), v[t[2]].R2()
	if p1.Sub(p0).Cross(p2.Sub(p0)) < 0 {
		t[1], t[2] = t[2], t[1]
	}
}

// Canonical returns the set of tris, each triple rotated to start at its
// smallest index, so that triangulations can be compared regardless of order.
func Canonical(tris [][3]int) map[[3]int]bool {
	set := make(map[[3]int]bool, len(tris))
	for _, t := range tris {
		for t[0] > t[1] || t[0] > t[2] {
			t[0], t[1], t[2] = t[1], t[2], t[0]
		}
		set[t] = true
	}
	return set
}
