// Package planarvoronoi implements planar Voronoi diagrams, built as the dual of a
// Bowyer-Watson Delaunay triangulation.

package planarvoronoi

import (
	"fmt"

	"github.com/2dChan/planarvoronoi/delaunay"
)

// Cell represents a Voronoi cell. It is a view structure for accessing a cell in a Result.
// The cell's index corresponds to the index of its site in the Result's Sites.
type Cell struct {
	idx int
	r   *Result
}

// SiteIndex returns the index of the site in the Result's Sites.
func (c Cell) SiteIndex() int {
	return c.idx
}

// Site returns the site point of the cell.
func (c Cell) Site() delaunay.Point {
	return c.r.Sites[c.idx]
}

// NumVertices returns the number of vertices in the cell.
func (c Cell) NumVertices() int {
	return c.r.CellOffsets[c.idx+1] - c.r.CellOffsets[c.idx]
}

// VertexIndices returns the indices in the Result's Triangles whose circumcentres
// form the cell, sorted in counter-clockwise order.
func (c Cell) VertexIndices() []int {
	return c.r.CellVertices[c.r.CellOffsets[c.idx]:c.r.CellOffsets[c.idx+1]]
}

// Vertex returns the vertex at the specified index.
// It returns an error if the index is out of range.
func (c Cell) Vertex(i int) (delaunay.Point, error) {
	start := c.r.CellOffsets[c.idx]
	end := c.r.CellOffsets[c.idx+1]
	if i < 0 || i >= end-start {
		return delaunay.Point{}, fmt.Errorf("Vertex: index %d out of range [0 %d)", i, end-start)
	}
	return c.r.Triangles[c.r.CellVertices[start+i]].Circle.Center, nil
}

// Closed reports whether the cell is bounded. Cells of convex hull sites are
// open: their vertices form a chain rather than a polygon.
func (c Cell) Closed() bool {
	n := c.NumVertices()
	return n > 0 && n == c.NumNeighbors()
}

// NumNeighbors returns the number of neighboring cells.
// This equals the number of vertices for closed cells and exceeds it by one
// for open cells.
func (c Cell) NumNeighbors() int {
	return c.r.CellNeighborOffsets[c.idx+1] - c.r.CellNeighborOffsets[c.idx]
}

// NeighborIndices returns the indices of the neighboring cells in the Result,
// sorted in counter-clockwise order.
func (c Cell) NeighborIndices() []int {
	return c.r.CellNeighbors[c.r.CellNeighborOffsets[c.idx]:c.r.CellNeighborOffsets[c.idx+1]]
}

// Neighbor returns the neighboring cell at the specified index.
// It returns an error if the index is out of range.
func (c Cell) Neighbor(i int) (Cell, error) {
	start := c.r.CellNeighborOffsets[c.idx]
	end := c.r.CellNeighborOffsets[c.idx+1]
	if i < 0 || i >= end-start {
		return Cell{}, fmt.Errorf("Neighbor: index %d out of range [0 %d)", i, end-start)
	}
	nc, err := c.r.Cell(c.r.CellNeighbors[start+i])
	if err != nil {
		return Cell{}, err
	}
	return nc, nil
}
