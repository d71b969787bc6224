// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package planarvoronoi

import (
	"fmt"

	"github.com/2dChan/planarvoronoi/delaunay"
)

// Result is a Delaunay triangulation together with its dual Voronoi diagram.
// It is rebuilt from scratch by every ComputeTriangulation call.
type Result struct {
	Sites     []delaunay.Point
	Triangles []delaunay.Triangle
	// DelaunayEdges holds E1, E2 and E3 of every triangle, in triangle order.
	DelaunayEdges []delaunay.Edge
	// VoronoiEdges joins the circumcentres of every pair of triangles that
	// share an edge.
	VoronoiEdges []delaunay.Edge
	// VoronoiPairs holds the indices in Triangles of the two triangles behind
	// each Voronoi edge.
	VoronoiPairs [][2]int
	Degenerate   []*delaunay.DegenerateTriangleError

	// NOTE: Sorted CCW per cell. Values are indices in Triangles, whose
	// circumcentres are the Voronoi vertices.
	CellVertices []int
	CellOffsets  []int
	// NOTE: Sorted CCW per cell. Open cells carry one more neighbour than
	// vertices.
	CellNeighbors       []int
	CellNeighborOffsets []int
	// Indices holds the CCW vertex indices in Sites of each triangle.
	Indices [][3]int
}

func (r *Result) NumCells() int {
	return len(r.Sites)
}

func (r *Result) Cell(i int) (Cell, error) {
	if i < 0 || i >= r.NumCells() {
		return Cell{}, fmt.Errorf("Cell: index %d out of range [0 %d)", i, r.NumCells())
	}
	return Cell{idx: i, r: r}, nil
}

// ComputeTriangulation triangulates points inside [0, width] x [0, height]
// and derives the Voronoi diagram.
//
// Points are inserted in the order given and copied into Sites. Empty input
// yields an empty Result.
func ComputeTriangulation(points []delaunay.Point, width, height float64, setters ...delaunay.TriangulationOption) (*Result, error) {
	dt, err := delaunay.NewTriangulation(points, width, height, setters...)
	if err != nil {
		return nil, err
	}

	numTriangles := len(dt.Triangles)
	r := &Result{
		Sites:         dt.Vertices,
		Triangles:     dt.Triangles,
		DelaunayEdges: make([]delaunay.Edge, 0, numTriangles*3),
		Degenerate:    dt.Degenerate,
		CellVertices:  dt.IncidentTriangleIndices,
		CellOffsets:   dt.IncidentTriangleOffsets,
		Indices:       dt.Indices,
	}

	for _, t := range dt.Triangles {
		r.DelaunayEdges = append(r.DelaunayEdges, t.E1, t.E2, t.E3)
	}

	for i := 0; i < numTriangles; i++ {
		for j := i + 1; j < numTriangles; j++ {
			ti, tj := dt.Triangles[i], dt.Triangles[j]
			if ti.SharesEdge(tj, dt.Eps) {
				r.VoronoiEdges = append(r.VoronoiEdges, delaunay.Edge{P1: ti.Circle.Center, P2: tj.Circle.Center})
				r.VoronoiPairs = append(r.VoronoiPairs, [2]int{i, j})
			}
		}
	}

	r.buildCellNeighbors(dt)
	return r, nil
}

func (r *Result) buildCellNeighbors(dt *delaunay.Triangulation) {
	numSites := len(r.Sites)
	r.CellNeighborOffsets = make([]int, numSites+1)
	r.CellNeighbors = make([]int, 0, len(r.CellVertices)+numSites)

	for vIdx := 0; vIdx < numSites; vIdx++ {
		fan := dt.IncidentTriangles(vIdx)
		for _, tIdx := range fan {
			r.CellNeighbors = append(r.CellNeighbors, delaunay.NextVertex(dt.Indices[tIdx], vIdx))
		}
		if n := len(fan); n > 0 {
			last := delaunay.PrevVertex(dt.Indices[fan[n-1]], vIdx)
			if last != delaunay.NextVertex(dt.Indices[fan[0]], vIdx) {
				r.CellNeighbors = append(r.CellNeighbors, last)
			}
		}
		r.CellNeighborOffsets[vIdx+1] = len(r.CellNeighbors)
	}
}
