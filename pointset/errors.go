// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package pointset

import (
	"fmt"

	"github.com/2dChan/planarvoronoi/delaunay"
	"github.com/golang/geo/r2"
)

// DuplicatePointError reports an Add of a point equal to one already stored.
type DuplicatePointError struct {
	Point    delaunay.Point
	Existing delaunay.Point
}

func (e *DuplicatePointError) Error() string {
	return fmt.Sprintf("pointset: point %v already exists as %v", e.Point, e.Existing)
}

// OutOfBoundsError reports an Add of a point outside the canvas.
type OutOfBoundsError struct {
	Point  delaunay.Point
	Bounds r2.Rect
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("pointset: point %v out of bounds [%g, %g] x [%g, %g]",
		e.Point, e.Bounds.X.Lo, e.Bounds.X.Hi, e.Bounds.Y.Lo, e.Bounds.Y.Hi)
}

// PointNotFoundError reports a Delete with no stored point within the pick
// tolerance.
type PointNotFoundError struct {
	X, Y      float64
	Tolerance float64
}

func (e *PointNotFoundError) Error() string {
	return fmt.Sprintf("pointset: no point within %g of (%g, %g)", e.Tolerance, e.X, e.Y)
}
