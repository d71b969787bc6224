// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating planar point sets.

package utils

import (
	"math/rand"

	"github.com/2dChan/planarvoronoi/delaunay"
)

// GenerateRandomPoints generates cnt random points in the box [0, width) x [0, height).
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, width, height float64, seed int64) []delaunay.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]delaunay.Point, cnt)

	for i := 0; i < cnt; i++ {
		points[i] = delaunay.Point{
			X: random.Float64() * width,
			Y: random.Float64() * height,
		}
	}

	return points
}
