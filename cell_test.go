package planarvoronoi

import (
	"math"
	"slices"
	"testing"

	"github.com/2dChan/planarvoronoi/delaunay"
	"github.com/google/go-cmp/cmp"
)

// Cell

func TestCell_SiteIndex(t *testing.T) {
	r := mustComputeRandom(t, 100)
	for i := range r.Sites {
		c, err := r.Cell(i)
		if err != nil {
			t.Fatalf("r.Cell(%d) error = %v, want nil", i, err)
		}
		if got := c.SiteIndex(); got != i {
			t.Errorf("c.SiteIndex() = %v, want %v", got, i)
		}
	}
}

func TestCell_Site(t *testing.T) {
	r := mustComputeRandom(t, 100)
	for i, want := range r.Sites {
		c, err := r.Cell(i)
		if err != nil {
			t.Fatalf("r.Cell(%d) error = %v, want nil", i, err)
		}
		if got := c.Site(); got != want {
			t.Errorf("c.Site() = %v, want %v", got, want)
		}
	}
}

func TestCell_Closed(t *testing.T) {
	r := mustComputeTriangulation(t, pentagonPoints())
	// Sites 0-4 are the hull, 5 and 6 lie inside.
	want := []bool{false, false, false, false, false, true, true}
	for i, w := range want {
		c, err := r.Cell(i)
		if err != nil {
			t.Fatalf("r.Cell(%d) error = %v, want nil", i, err)
		}
		if got := c.Closed(); got != w {
			t.Errorf("cell %d: c.Closed() = %v, want %v", i, got, w)
		}
		wantNeighbors := c.NumVertices()
		if !w {
			wantNeighbors++
		}
		if got := c.NumNeighbors(); got != wantNeighbors {
			t.Errorf("cell %d: c.NumNeighbors() = %d, want %d", i, got, wantNeighbors)
		}
	}
}

func TestResult_CellOutOfRange(t *testing.T) {
	r := mustComputeTriangulation(t, pentagonPoints())
	for _, i := range []int{-1, r.NumCells()} {
		if _, err := r.Cell(i); err == nil {
			t.Errorf("r.Cell(%d) error = nil, want non-nil", i)
		}
	}
}

func TestCell_VertexIndices(t *testing.T) {
	r := mustComputeRandom(t, 100)
	for i := range r.Sites {
		c, err := r.Cell(i)
		if err != nil {
			t.Fatalf("r.Cell(%d) error = %v, want nil", i, err)
		}
		want := r.CellVertices[r.CellOffsets[i]:r.CellOffsets[i+1]]
		got := c.VertexIndices()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("c.VertexIndices() mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestCell_Vertex(t *testing.T) {
	r := mustComputeRandom(t, 100)
	for i := range r.Sites {
		c, err := r.Cell(i)
		if err != nil {
			t.Fatalf("r.Cell(%d) error = %v, want nil", i, err)
		}
		indices := c.VertexIndices()
		for j, idx := range indices {
			want := r.Triangles[idx].Circle.Center
			got, err := c.Vertex(j)
			if err != nil {
				t.Fatalf("c.Vertex(%d) error = %v, want nil", j, err)
			}
			if got != want {
				t.Errorf("c.Vertex(%d) = %v, want %v", j, got, want)
			}
			if d := delaunay.Distance(got, c.Site()); math.Abs(d-r.Triangles[idx].Circle.R) > 1e-6 {
				t.Errorf("cell %d: vertex %d is %v from the site, want circumradius %v", i, j, d, r.Triangles[idx].Circle.R)
			}
		}

		if _, err := c.Vertex(-1); err == nil {
			t.Errorf("c.Vertex(-1) error = nil, want non-nil")
		}
		if _, err := c.Vertex(c.NumVertices()); err == nil {
			t.Errorf("c.Vertex(%d) error = nil, want non-nil", c.NumVertices())
		}
	}
}

func TestCell_NeighborIndices(t *testing.T) {
	r := mustComputeRandom(t, 100)
	for i := range r.Sites {
		c, err := r.Cell(i)
		if err != nil {
			t.Fatalf("r.Cell(%d) error = %v, want nil", i, err)
		}
		for _, n := range c.NeighborIndices() {
			if n == i {
				t.Errorf("cell %d lists itself as a neighbor", i)
			}
			nc, err := r.Cell(n)
			if err != nil {
				t.Fatalf("r.Cell(%d) error = %v, want nil", n, err)
			}
			if !slices.Contains(nc.NeighborIndices(), i) {
				t.Errorf("cell %d is a neighbor of %d but not the other way around", n, i)
			}
		}
	}
}

func TestCell_Neighbor(t *testing.T) {
	r := mustComputeRandom(t, 100)
	for i := range r.Sites {
		c, err := r.Cell(i)
		if err != nil {
			t.Fatalf("r.Cell(%d) error = %v, want nil", i, err)
		}
		neighbors := c.NeighborIndices()
		for j, nIdx := range neighbors {
			got, err := c.Neighbor(j)
			if err != nil {
				t.Fatal(err)
			}
			if got.SiteIndex() != nIdx {
				t.Errorf("c.Neighbor(%d).SiteIndex() = %v, want %v", j, got.SiteIndex(), nIdx)
			}
		}
		if _, err := c.Neighbor(-1); err == nil {
			t.Errorf("c.Neighbor(-1) error = nil, want non-nil")
		}
		if _, err = c.Neighbor(c.NumNeighbors()); err == nil {
			t.Errorf("c.Neighbor(%d) error = nil, want non-nil", c.NumNeighbors())
		}
	}
}

func pentagonPoints() []delaunay.Point {
	return []delaunay.Point{
		{X: 50, Y: 5}, {X: 95, Y: 40}, {X: 70, Y: 95}, {X: 20, Y: 90}, {X: 5, Y: 35},
		{X: 50, Y: 50}, {X: 40, Y: 30},
	}
}
