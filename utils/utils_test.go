// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package utils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateRandomPoints_Length(t *testing.T) {
	tests := []struct {
		name string
		cnt  int
		seed int64
	}{
		{"zero points", 0, 42},
		{"one point", 1, 42},
		{"ten points", 10, 0},
		{"hundred points", 100, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := GenerateRandomPoints(tt.cnt, 100, 50, tt.seed)
			if len(points) != tt.cnt {
				t.Errorf("GenerateRandomPoints(%v, 100, 50, %v) len = %v, want %v", tt.cnt, tt.seed,
					len(points), tt.cnt)
			}
		})
	}
}

func TestGenerateRandomPoints_InBounds(t *testing.T) {
	const (
		cnt    = 1000
		seed   = 0
		width  = 1600
		height = 900
	)
	points := GenerateRandomPoints(cnt, width, height, seed)
	for i, p := range points {
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			t.Errorf("GenerateRandomPoints(%v, %v, %v, %v)[%d] = %v, want inside [0 %v) x [0 %v)",
				cnt, width, height, seed, i, p, width, height)
		}
	}
}

func TestGenerateRandomPoints_Determinism(t *testing.T) {
	const (
		cnt  = 10
		seed = 0
	)
	a := GenerateRandomPoints(cnt, 100, 100, seed)
	b := GenerateRandomPoints(cnt, 100, 100, seed)
	if diff := cmp.Diff(b, a); diff != "" {
		t.Errorf("GenerateRandomPoints(%v, 100, 100, %v) mismatch (-want +got):\n%v", cnt, seed, diff)
	}
}

func TestGenerateRandomPoints_SeedsDiffer(t *testing.T) {
	a := GenerateRandomPoints(20, 100, 100, 1)
	b := GenerateRandomPoints(20, 100, 100, 2)
	if cmp.Equal(a, b) {
		t.Errorf("GenerateRandomPoints with seeds 1 and 2 returned the same points")
	}
}

func TestGenerateRandomPoints_Distinct(t *testing.T) {
	points := GenerateRandomPoints(500, 1600, 900, 0)
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if points[i].Equal(points[j]) {
				t.Fatalf("points %d and %d are equal: %v", i, j, points[i])
			}
		}
	}
}
