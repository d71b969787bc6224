// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package delaunay computes planar Delaunay triangulations with the
// Bowyer-Watson algorithm.
package delaunay

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

const (
	defaultEps    = Eps
	defaultMargin = 30
)

type Triangulation struct {
	Vertices  []Point
	Triangles []Triangle
	// Indices holds the positions in Vertices of each triangle's corners,
	// sorted CCW.
	Indices [][3]int
	// NOTE: Sorted CCW per vertex. Fans of convex hull vertices are open and
	// start at the hull.
	IncidentTriangleIndices []int
	IncidentTriangleOffsets []int

	// Super is the bounding triangle every point was inserted into.
	Super Triangle
	// Eps is the point tolerance the triangulation was built with.
	Eps float64
	// Degenerate lists candidate triangles skipped because they were collinear.
	Degenerate []*DegenerateTriangleError
}

func (dt *Triangulation) IncidentTriangles(vIdx int) []int {
	if vIdx < 0 || vIdx+1 >= len(dt.IncidentTriangleOffsets) {
		panic("IncidentTriangles: vIdx out of range")
	}
	start := dt.IncidentTriangleOffsets[vIdx]
	end := dt.IncidentTriangleOffsets[vIdx+1]
	return dt.IncidentTriangleIndices[start:end]
}

func (dt *Triangulation) TriangleVertices(tIdx int) (Point, Point, Point) {
	if tIdx < 0 || tIdx >= len(dt.Indices) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := dt.Indices[tIdx]
	return dt.Vertices[t[0]], dt.Vertices[t[1]], dt.Vertices[t[2]]
}

type TriangulationOptions struct {
	Eps    float64
	Margin float64
}

type TriangulationOption func(*TriangulationOptions) error

// WithEps sets the point tolerance used for cavity edge matching and
// super-triangle removal.
func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// WithMargin sets the super-triangle margin factor.
func WithMargin(k float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if k < 1 || math.IsInf(k, 0) || math.IsNaN(k) {
			return fmt.Errorf("WithMargin: margin must be a finite value >= 1, got %v", k)
		}
		o.Margin = k
		return nil
	}
}

// NewTriangulation triangulates points inside the box [0, width] x [0, height].
//
// Points are inserted in the order given and the output depends on that order
// when circumcircle tests tie. Candidate triangles that turn out collinear are
// skipped and recorded in Degenerate. Empty input yields an empty
// triangulation.
func NewTriangulation(points []Point, width, height float64, setters ...TriangulationOption) (*Triangulation, error) {
	opts := TriangulationOptions{
		Eps:    defaultEps,
		Margin: defaultMargin,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("delaunay: bounds must be positive, got %vx%v", width, height)
	}

	numVertices := len(points)
	dt := &Triangulation{
		Vertices:                slices.Clone(points),
		IncidentTriangleOffsets: make([]int, numVertices+1),
		Eps:                     opts.Eps,
	}

	bounds := r2.Rect{
		X: r1.Interval{Lo: 0, Hi: width},
		Y: r1.Interval{Lo: 0, Hi: height},
	}
	super, err := superTriangle(bounds, opts.Margin)
	if err != nil {
		return nil, err
	}
	dt.Super = super
	if numVertices == 0 {
		return dt, nil
	}

	tris := []Triangle{super}
	for _, p := range points {
		kept := make([]Triangle, 0, len(tris)+2)
		var edges []Edge
		for _, t := range tris {
			if t.Circle.ContainsPoint(p) {
				edges = append(edges, t.E1, t.E2, t.E3)
			} else {
				kept = append(kept, t)
			}
		}

		for _, e := range boundaryEdges(edges, opts.Eps) {
			t, err := NewTriangle(e.P1, e.P2, p)
			if err != nil {
				var de *DegenerateTriangleError
				if errors.As(err, &de) {
					dt.Degenerate = append(dt.Degenerate, de)
					continue
				}
				return nil, err
			}
			kept = append(kept, t)
		}
		tris = kept
	}

	sv := super.Vertices()
	for _, t := range tris {
		if t.HasVertex(sv[0], opts.Eps) || t.HasVertex(sv[1], opts.Eps) || t.HasVertex(sv[2], opts.Eps) {
			continue
		}
		dt.Triangles = append(dt.Triangles, t)
	}

	if err := dt.buildIncidence(opts.Eps); err != nil {
		return nil, err
	}
	return dt, nil
}

func superTriangle(bounds r2.Rect, k float64) (Triangle, error) {
	size := bounds.Size()
	dmax := 3 * math.Max(size.X, size.Y)
	mid := bounds.Center()

	return NewTriangle(
		Point{mid.X - k*dmax, mid.Y - dmax},
		Point{mid.X + k*dmax, mid.Y - dmax},
		Point{mid.X, mid.Y + k*dmax},
	)
}

// boundaryEdges returns the edges that occur exactly once in edges, in their
// original order.
func boundaryEdges(edges []Edge, eps float64) []Edge {
	duplicate := make([]bool, len(edges))
	for i := range edges {
		for j := i + 1; j < len(edges); j++ {
			if edges[i].ApproxEqual(edges[j], eps) {
				duplicate[i] = true
				duplicate[j] = true
			}
		}
	}

	boundary := edges[:0]
	for i, e := range edges {
		if !duplicate[i] {
			boundary = append(boundary, e)
		}
	}
	return boundary
}

func (dt *Triangulation) buildIncidence(eps float64) error {
	numVertices := len(dt.Vertices)
	numTriangles := len(dt.Triangles)

	lookup := make(map[Point]int, numVertices)
	for i, p := range dt.Vertices {
		if _, ok := lookup[p]; !ok {
			lookup[p] = i
		}
	}
	vertexIndex := func(p Point) int {
		if i, ok := lookup[p]; ok {
			return i
		}
		for i, q := range dt.Vertices {
			if q.ApproxEqual(p, eps) {
				return i
			}
		}
		return -1
	}

	dt.Indices = make([][3]int, numTriangles)
	for i, t := range dt.Triangles {
		for j, p := range t.Vertices() {
			v := vertexIndex(p)
			if v < 0 {
				return fmt.Errorf("delaunay: triangle vertex %v is not an input point", p)
			}
			dt.Indices[i][j] = v
			dt.IncidentTriangleOffsets[v+1]++
		}
		sortTriangleVerticesCCW(&dt.Indices[i], dt.Vertices)
	}
	for i := 0; i < numVertices; i++ {
		dt.IncidentTriangleOffsets[i+1] += dt.IncidentTriangleOffsets[i]
	}

	dt.IncidentTriangleIndices = make([]int, numTriangles*3)
	nxt := make([]int, numVertices)
	copy(nxt, dt.IncidentTriangleOffsets[:numVertices])
	for i, tri := range dt.Indices {
		for _, v := range tri {
			dt.IncidentTriangleIndices[nxt[v]] = i
			nxt[v]++
		}
	}

	for i := 0; i < numVertices; i++ {
		sortIncidentTriangleIndicesCCW(i, dt.IncidentTriangles(i), dt.Indices)
	}
	return nil
}

func sortTriangleVerticesCCW(t *[3]int, v []Point) {
	p0, p1, p2 := v[t[0]].R2(), v[t[1]].R2(), v[t[2]].R2()
	if p1.Sub(p0).Cross(p2.Sub(p0)) < 0 {
		t[1], t[2] = t[2], t[1]
	}
}

// sortIncidentTriangleIndicesCCW orders the fan around vIdx so that each
// triangle is followed by its CCW neighbour. An open fan starts at the
// triangle that has no clockwise neighbour.
func sortIncidentTriangleIndicesCCW(vIdx int, incidentTris []int, tris [][3]int) {
	n := len(incidentTris)
	for i := 0; i < n; i++ {
		nxt := NextVertex(tris[incidentTris[i]], vIdx)
		first := true
		for j := 0; j < n; j++ {
			if j != i && PrevVertex(tris[incidentTris[j]], vIdx) == nxt {
				first = false
				break
			}
		}
		if first {
			incidentTris[0], incidentTris[i] = incidentTris[i], incidentTris[0]
			break
		}
	}

	for i := 1; i < n; i++ {
		prv := PrevVertex(tris[incidentTris[i-1]], vIdx)
		for j := i; j < n; j++ {
			if NextVertex(tris[incidentTris[j]], vIdx) == prv {
				incidentTris[i], incidentTris[j] = incidentTris[j], incidentTris[i]
				break
			}
		}
	}
}

func PrevVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[2]
	case t[1]:
		return t[0]
	case t[2]:
		return t[1]
	}
	panic("PrevVertex: vIdx not in triangle")
}

func NextVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("NextVertex: vIdx not in triangle")
}
