// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package pointset

import (
	"errors"
	"testing"

	"github.com/2dChan/planarvoronoi/delaunay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	testWidth  = 100
	testHeight = 100
)

func TestNew(t *testing.T) {
	m, err := New(testWidth, testHeight)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Result().Triangles)
	assert.Empty(t, m.Result().VoronoiEdges)
	assert.Equal(t, float64(testWidth), m.Bounds().X.Hi)
	assert.Equal(t, float64(testHeight), m.Bounds().Y.Hi)
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		opts          []Option
	}{
		{"zero width", 0, testHeight, nil},
		{"negative height", testWidth, -5, nil},
		{"nil logger", testWidth, testHeight, []Option{WithLogger(nil)}},
		{"negative tolerance", testWidth, testHeight, []Option{WithPickTolerance(-1)}},
		{"bad eps", testWidth, testHeight, []Option{WithTriangulationOptions(delaunay.WithEps(0))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.width, tt.height, tt.opts...)
			assert.Error(t, err)
		})
	}
}

func TestManager_Add(t *testing.T) {
	m := mustNew(t)

	require.NoError(t, m.Add(0, 0))
	require.NoError(t, m.Add(10, 0))
	require.NoError(t, m.Add(5, 10))

	assert.Equal(t, []delaunay.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}}, m.Points())
	r := m.Result()
	assert.Len(t, r.Triangles, 1)
	assert.Len(t, r.DelaunayEdges, 3)
	assert.Len(t, r.VoronoiEdges, 0)
}

func TestManager_AddDuplicate(t *testing.T) {
	m := mustNew(t)
	for _, p := range [][2]float64{{10, 10}, {90, 15}, {80, 85}, {20, 70}} {
		require.NoError(t, m.Add(p[0], p[1]))
	}
	before := m.Result()

	err := m.Add(10+5e-8, 10-5e-8)
	var dup *DuplicatePointError
	require.True(t, errors.As(err, &dup), "Add error = %v, want *DuplicatePointError", err)
	assert.Equal(t, delaunay.Pt(10, 10), dup.Existing)

	assert.Equal(t, 4, m.Len())
	assert.Same(t, before, m.Result())
	assert.Len(t, m.Result().Triangles, len(before.Triangles))
	assert.Len(t, m.Result().VoronoiEdges, len(before.VoronoiEdges))
}

func TestManager_AddOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"x above width", testWidth + 1, 50},
		{"y above height", 50, testHeight + 0.5},
		{"negative x", -1, 50},
		{"negative y", 50, -0.001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustNew(t)
			err := m.Add(tt.x, tt.y)
			var oob *OutOfBoundsError
			require.True(t, errors.As(err, &oob), "Add error = %v, want *OutOfBoundsError", err)
			assert.Equal(t, 0, m.Len())
		})
	}
}

func TestManager_AddOnBoundary(t *testing.T) {
	m := mustNew(t)
	assert.NoError(t, m.Add(0, 0))
	assert.NoError(t, m.Add(testWidth, testHeight))
	assert.Equal(t, 2, m.Len())
}

func TestManager_Delete(t *testing.T) {
	m := mustNew(t)
	require.NoError(t, m.Add(10, 10))
	require.NoError(t, m.Add(50, 50))
	require.NoError(t, m.Add(90, 10))
	require.Len(t, m.Result().Triangles, 1)

	require.NoError(t, m.Delete(53, 46))
	assert.Equal(t, []delaunay.Point{{X: 10, Y: 10}, {X: 90, Y: 10}}, m.Points())
	assert.Empty(t, m.Result().Triangles)
}

func TestManager_DeleteFirstMatch(t *testing.T) {
	m := mustNew(t)
	require.NoError(t, m.Add(20, 20))
	require.NoError(t, m.Add(22, 22))

	require.NoError(t, m.Delete(21, 21))
	assert.Equal(t, []delaunay.Point{{X: 22, Y: 22}}, m.Points())
}

func TestManager_DeleteNotFound(t *testing.T) {
	m := mustNew(t)
	for _, p := range [][2]float64{{10, 10}, {90, 15}, {80, 85}} {
		require.NoError(t, m.Add(p[0], p[1]))
	}
	before := m.Result()

	err := m.Delete(16, 10)
	var nf *PointNotFoundError
	require.True(t, errors.As(err, &nf), "Delete error = %v, want *PointNotFoundError", err)
	assert.Equal(t, float64(DefaultPickTolerance), nf.Tolerance)
	assert.Equal(t, 3, m.Len())
	assert.Same(t, before, m.Result())
}

func TestManager_PickTolerance(t *testing.T) {
	m := mustNew(t, WithPickTolerance(1))
	require.NoError(t, m.Add(10, 10))

	assert.Error(t, m.Delete(12, 10))
	assert.NoError(t, m.Delete(11, 9))
	assert.Equal(t, 0, m.Len())
}

func TestManager_Clear(t *testing.T) {
	m := mustNew(t)
	for _, p := range [][2]float64{{10, 10}, {90, 15}, {80, 85}, {20, 70}} {
		require.NoError(t, m.Add(p[0], p[1]))
	}
	require.NotEmpty(t, m.Result().Triangles)

	require.NoError(t, m.Clear())
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Result().Triangles)
	assert.Empty(t, m.Result().DelaunayEdges)
	assert.Empty(t, m.Result().VoronoiEdges)
}

func TestManager_FailedRecomputeKeepsState(t *testing.T) {
	fail := false
	failing := func(*delaunay.TriangulationOptions) error {
		if fail {
			return errors.New("triangulation unavailable")
		}
		return nil
	}
	m := mustNew(t, WithTriangulationOptions(failing))
	for _, p := range [][2]float64{{10, 10}, {90, 15}, {80, 85}} {
		require.NoError(t, m.Add(p[0], p[1]))
	}
	points, result := m.Points(), m.Result()

	fail = true
	assert.Error(t, m.Add(20, 70))
	assert.Error(t, m.Delete(10, 10))
	assert.Error(t, m.Clear())

	assert.Equal(t, points, m.Points())
	assert.Same(t, result, m.Result())

	fail = false
	require.NoError(t, m.Add(20, 70))
	assert.Equal(t, 4, m.Len())
}

func TestManager_PointsIsCopy(t *testing.T) {
	m := mustNew(t)
	require.NoError(t, m.Add(10, 10))

	points := m.Points()
	points[0] = delaunay.Pt(99, 99)
	assert.Equal(t, delaunay.Pt(10, 10), m.Points()[0])
}

func TestManager_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	m := mustNew(t, WithLogger(zap.New(core)))

	require.NoError(t, m.Add(10, 10))
	assert.Error(t, m.Add(10, 10))
	assert.Error(t, m.Add(500, 10))
	require.NoError(t, m.Clear())

	assert.Equal(t, 1, logs.FilterMessage("point added").Len())
	assert.Equal(t, 2, logs.FilterMessage("point rejected").Len())
	assert.Equal(t, 1, logs.FilterMessage("points cleared").Len())
}

// Helpers

func mustNew(t *testing.T, opts ...Option) *Manager {
	t.Helper()
	m, err := New(testWidth, testHeight, opts...)
	require.NoError(t, err)
	return m
}
