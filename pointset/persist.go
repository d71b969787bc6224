// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package pointset

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/2dChan/planarvoronoi/render"
	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// LoadStats counts what happened to the lines or elements of a loaded file.
type LoadStats struct {
	Added     int
	Rejected  int
	Malformed int
}

// Save writes the points, one "x y" line each, in insertion order. Values use
// the shortest representation that parses back to the same float64.
func (m *Manager) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, p := range m.points {
		line := strconv.FormatFloat(p.X, 'g', -1, 64) + " " + strconv.FormatFloat(p.Y, 'g', -1, 64) + "\n"
		if _, err := bw.WriteString(line); err != nil {
			return errors.Wrap(err, "pointset: save")
		}
	}
	return errors.Wrap(bw.Flush(), "pointset: save")
}

func (m *Manager) SaveFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "pointset: create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "pointset: close %s", path)
		}
	}()

	return m.Save(f)
}

// Load replaces the points with those read from r.
//
// Each line is replayed through Add, so duplicates and out-of-bounds points
// are skipped like interactive input, and the triangulation is recomputed
// once per accepted point. Lines that are not two numbers are skipped.
func (m *Manager) Load(r io.Reader) (LoadStats, error) {
	var stats LoadStats
	if err := m.Clear(); err != nil {
		return stats, err
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		x, y, ok := parsePoint(line)
		if !ok {
			stats.Malformed++
			m.logger.Warn("malformed point line skipped", zap.Int("line", lineNo), zap.String("text", line))
			continue
		}
		if err := m.replay(x, y, &stats); err != nil {
			return stats, err
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, errors.Wrap(err, "pointset: load")
	}
	return stats, nil
}

func (m *Manager) LoadFile(path string) (LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadStats{}, errors.Wrapf(err, "pointset: open %s", path)
	}
	defer f.Close()

	stats, err := m.Load(f)
	if err != nil {
		return stats, errors.Wrapf(err, "pointset: load %s", path)
	}
	return stats, nil
}

// ImportSVG replaces the points with the site circles of an SVG written by
// render.SVG. Rendered coordinates are whole pixels, so sites come back
// rounded.
func (m *Manager) ImportSVG(r io.Reader) (LoadStats, error) {
	var stats LoadStats
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return stats, errors.Wrap(err, "pointset: parse svg")
	}
	if err := m.Clear(); err != nil {
		return stats, err
	}

	for _, g := range root.FindAll("g") {
		if g.Attributes["id"] != render.SitesID {
			continue
		}
		for _, el := range g.Children {
			if el.Name != "circle" {
				continue
			}
			x, errX := strconv.ParseFloat(el.Attributes["cx"], 64)
			y, errY := strconv.ParseFloat(el.Attributes["cy"], 64)
			if errX != nil || errY != nil {
				stats.Malformed++
				m.logger.Warn("malformed site circle skipped",
					zap.String("cx", el.Attributes["cx"]), zap.String("cy", el.Attributes["cy"]))
				continue
			}
			if err := m.replay(x, y, &stats); err != nil {
				return stats, err
			}
		}
	}
	return stats, nil
}

func (m *Manager) replay(x, y float64, stats *LoadStats) error {
	err := m.Add(x, y)
	var (
		dup *DuplicatePointError
		oob *OutOfBoundsError
	)
	switch {
	case err == nil:
		stats.Added++
	case errors.As(err, &dup), errors.As(err, &oob):
		stats.Rejected++
	default:
		return err
	}
	return nil
}

func parsePoint(line string) (float64, float64, bool) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return 0, 0, false
	}
	x, errX := strconv.ParseFloat(parts[0], 64)
	y, errY := strconv.ParseFloat(parts[1], 64)
	if errX != nil || errY != nil {
		return 0, 0, false
	}
	return x, y, true
}
