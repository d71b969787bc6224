// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package pointset owns the editable point set of a canvas and keeps its
// triangulation current.
//
// Every mutation recomputes the triangulation from scratch before returning.
// A Manager is not safe for concurrent use.
package pointset

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/2dChan/planarvoronoi"
	"github.com/2dChan/planarvoronoi/delaunay"
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"go.uber.org/zap"
)

const (
	// DefaultPickTolerance is how far, per axis, Delete looks for a point.
	// It is unrelated to delaunay.Eps, which decides point identity.
	DefaultPickTolerance = 5
)

type Manager struct {
	bounds        r2.Rect
	pickTolerance float64
	triOpts       []delaunay.TriangulationOption
	logger        *zap.Logger

	points []delaunay.Point
	result *planarvoronoi.Result
}

type Option func(*Manager) error

func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) error {
		if logger == nil {
			return errors.New("WithLogger: logger must not be nil")
		}
		m.logger = logger
		return nil
	}
}

func WithPickTolerance(tol float64) Option {
	return func(m *Manager) error {
		if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
			return fmt.Errorf("WithPickTolerance: tolerance must be finite and non-negative, got %v", tol)
		}
		m.pickTolerance = tol
		return nil
	}
}

// WithTriangulationOptions passes opts to every triangulation run.
func WithTriangulationOptions(opts ...delaunay.TriangulationOption) Option {
	return func(m *Manager) error {
		m.triOpts = append(m.triOpts, opts...)
		return nil
	}
}

// New returns an empty Manager for the canvas [0, width] x [0, height].
func New(width, height float64, setters ...Option) (*Manager, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("pointset: canvas must be finite and positive, got %vx%v", width, height)
	}

	m := &Manager{
		bounds: r2.Rect{
			X: r1.Interval{Lo: 0, Hi: width},
			Y: r1.Interval{Lo: 0, Hi: height},
		},
		pickTolerance: DefaultPickTolerance,
		logger:        zap.NewNop(),
	}
	for _, set := range setters {
		if err := set(m); err != nil {
			return nil, err
		}
	}

	if err := m.commit(nil); err != nil {
		return nil, err
	}
	return m, nil
}

// Add appends (x, y) and recomputes the triangulation.
//
// It returns a *DuplicatePointError if an equal point is already stored and an
// *OutOfBoundsError if (x, y) lies outside the canvas. The set is unchanged
// whenever an error is returned.
func (m *Manager) Add(x, y float64) error {
	p := delaunay.Pt(x, y)

	if err := m.validate(p); err != nil {
		m.logger.Info("point rejected", zap.Stringer("point", p), zap.Error(err))
		return err
	}

	if err := m.commit(append(m.Points(), p)); err != nil {
		return err
	}
	m.logger.Info("point added", zap.Stringer("point", p), zap.Int("points", len(m.points)))
	return nil
}

func (m *Manager) validate(p delaunay.Point) error {
	for _, q := range m.points {
		if q.Equal(p) {
			return &DuplicatePointError{Point: p, Existing: q}
		}
	}
	if !m.bounds.ContainsPoint(p.R2()) {
		return &OutOfBoundsError{Point: p, Bounds: m.bounds}
	}
	return nil
}

// Delete removes the first stored point within the pick tolerance of (x, y)
// on both axes and recomputes the triangulation. It returns a
// *PointNotFoundError if there is none.
func (m *Manager) Delete(x, y float64) error {
	idx := m.pick(x, y)
	if idx < 0 {
		err := &PointNotFoundError{X: x, Y: y, Tolerance: m.pickTolerance}
		m.logger.Debug("nothing to delete", zap.Error(err))
		return err
	}

	p := m.points[idx]
	if err := m.commit(slices.Delete(m.Points(), idx, idx+1)); err != nil {
		return err
	}
	m.logger.Info("point deleted", zap.Stringer("point", p), zap.Int("points", len(m.points)))
	return nil
}

func (m *Manager) pick(x, y float64) int {
	for i, p := range m.points {
		if math.Abs(x-p.X) <= m.pickTolerance && math.Abs(y-p.Y) <= m.pickTolerance {
			return i
		}
	}
	return -1
}

// Clear removes every point.
func (m *Manager) Clear() error {
	if err := m.commit(nil); err != nil {
		return err
	}
	m.logger.Info("points cleared")
	return nil
}

// Points returns a copy of the stored points in insertion order.
func (m *Manager) Points() []delaunay.Point {
	points := make([]delaunay.Point, len(m.points))
	copy(points, m.points)
	return points
}

func (m *Manager) Len() int {
	return len(m.points)
}

func (m *Manager) Bounds() r2.Rect {
	return m.bounds
}

// Result returns the triangulation of the current points. It is replaced, not
// updated, by the next mutation.
func (m *Manager) Result() *planarvoronoi.Result {
	return m.result
}

// commit triangulates points and, only if that succeeds, makes them the
// stored set.
func (m *Manager) commit(points []delaunay.Point) error {
	start := time.Now()
	size := m.bounds.Size()

	result, err := planarvoronoi.ComputeTriangulation(points, size.X, size.Y, m.triOpts...)
	if err != nil {
		m.logger.Error("triangulation failed", zap.Int("points", len(points)), zap.Error(err))
		return err
	}
	for _, de := range result.Degenerate {
		m.logger.Warn("degenerate triangle skipped", zap.Error(de))
	}

	m.points = points
	m.result = result
	m.logger.Debug("triangulation recomputed",
		zap.Int("points", len(m.points)),
		zap.Int("triangles", len(result.Triangles)),
		zap.Int("voronoi_edges", len(result.VoronoiEdges)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
