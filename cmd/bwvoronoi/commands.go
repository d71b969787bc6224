// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/2dChan/planarvoronoi/lifted"
	"github.com/2dChan/planarvoronoi/pointset"
	"github.com/2dChan/planarvoronoi/render"
	"github.com/2dChan/planarvoronoi/utils"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type renderFlags struct {
	hideVoronoi bool
	circles     bool
	inverse     bool
	preview     bool
}

func newManager(g globalFlags, logger *zap.Logger) (*pointset.Manager, error) {
	return pointset.New(*g.width, *g.height,
		pointset.WithLogger(logger),
		pointset.WithPickTolerance(*g.pickTolerance),
	)
}

func runGen(g globalFlags, logger *zap.Logger, stdout io.Writer, count int, seed int64, out string) error {
	if count < 0 {
		return fmt.Errorf("gen: count must be non-negative, got %d", count)
	}
	m, err := newManager(g, logger)
	if err != nil {
		return err
	}

	var rejected int
	for _, p := range utils.GenerateRandomPoints(count, *g.width, *g.height, seed) {
		if err := m.Add(p.X, p.Y); err != nil {
			var dup *pointset.DuplicatePointError
			if !errors.As(err, &dup) {
				return err
			}
			rejected++
		}
	}
	if err := m.SaveFile(out); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "wrote %d points to %s (%d duplicates skipped)\n", m.Len(), out, rejected)
	return nil
}

func runEdit(g globalFlags, logger *zap.Logger, stdout io.Writer, in, out string, add, del []string) error {
	m, err := newManager(g, logger)
	if err != nil {
		return err
	}
	if _, err := m.LoadFile(in); err != nil {
		return err
	}

	for _, s := range add {
		x, y, err := parsePair(s)
		if err != nil {
			return err
		}
		if err := m.Add(x, y); err != nil {
			fmt.Fprintf(stdout, "add %s: %v\n", s, err)
		}
	}
	for _, s := range del {
		x, y, err := parsePair(s)
		if err != nil {
			return err
		}
		if err := m.Delete(x, y); err != nil {
			fmt.Fprintf(stdout, "delete %s: %v\n", s, err)
		}
	}

	if err := m.SaveFile(out); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %d points to %s\n", m.Len(), out)
	return nil
}

func runRender(g globalFlags, logger *zap.Logger, stdout io.Writer, in, out string, flags renderFlags) error {
	m, err := newManager(g, logger)
	if err != nil {
		return err
	}
	stats, err := m.LoadFile(in)
	if err != nil {
		return err
	}
	logger.Info("points loaded",
		zap.Int("added", stats.Added),
		zap.Int("rejected", stats.Rejected),
		zap.Int("malformed", stats.Malformed),
	)

	style := render.DefaultStyle()
	style.HideVoronoi = flags.hideVoronoi
	style.ShowCircles = flags.circles
	style.Inverse = flags.inverse
	width, height := int(*g.width), int(*g.height)

	draw, err := imageWriter(out)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return errors.Wrapf(err, "create %s", out)
	}
	if err := draw(f, m, width, height, style); err != nil {
		f.Close()
		return errors.Wrapf(err, "render %s", out)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", out)
	}

	r := m.Result()
	fmt.Fprintf(stdout, "%d sites, %d triangles, %d voronoi edges -> %s\n",
		len(r.Sites), len(r.Triangles), len(r.VoronoiEdges), out)

	if !flags.preview {
		return nil
	}
	preview := out
	if strings.ToLower(filepath.Ext(out)) != ".png" {
		tmp, err := os.CreateTemp("", "bwvoronoi-*.png")
		if err != nil {
			return errors.Wrap(err, "preview")
		}
		defer os.Remove(tmp.Name())
		if err := render.PNG(tmp, r, width, height, style); err != nil {
			tmp.Close()
			return errors.Wrap(err, "preview")
		}
		if err := tmp.Close(); err != nil {
			return errors.Wrap(err, "preview")
		}
		preview = tmp.Name()
	}
	imgcat.CatFile(preview, stdout)
	return nil
}

type drawFunc func(w io.Writer, m *pointset.Manager, width, height int, style render.Style) error

// imageWriter picks the renderer from the extension of path.
func imageWriter(path string) (drawFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return func(w io.Writer, m *pointset.Manager, width, height int, style render.Style) error {
			return render.SVG(w, m.Result(), width, height, style)
		}, nil
	case ".png":
		return func(w io.Writer, m *pointset.Manager, width, height int, style render.Style) error {
			return render.PNG(w, m.Result(), width, height, style)
		}, nil
	}
	return nil, fmt.Errorf("render: unsupported image format %q, want .svg or .png", filepath.Ext(path))
}

func runVerify(g globalFlags, logger *zap.Logger, stdout io.Writer, in string, color bool) error {
	m, err := newManager(g, logger)
	if err != nil {
		return err
	}
	if _, err := m.LoadFile(in); err != nil {
		return err
	}

	rep, err := compareWithLifted(m)
	if err != nil {
		return err
	}
	au := aurora.NewAurora(color)
	if rep.ok() {
		fmt.Fprintf(stdout, "%s %d triangles match the lifted lower hull\n", au.Green("OK"), rep.common)
		if len(rep.slivers) > 0 {
			fmt.Fprintf(stdout, "%s %d hull sliver triangles lie outside the super-triangle\n",
				au.Yellow("WARN"), len(rep.slivers))
			for _, t := range rep.slivers {
				fmt.Fprintf(stdout, "  %s %v\n", au.Yellow("~"), t)
			}
		}
		return nil
	}

	fmt.Fprintf(stdout, "%s %d common, %d only in Bowyer-Watson, %d only in lifted hull, %d hull slivers\n",
		au.Red("MISMATCH"), rep.common, len(rep.onlyBW), len(rep.onlyLifted), len(rep.slivers))
	for _, t := range rep.onlyBW {
		fmt.Fprintf(stdout, "  %s %v\n", au.Yellow("-"), t)
	}
	for _, t := range rep.onlyLifted {
		fmt.Fprintf(stdout, "  %s %v\n", au.Cyan("+"), t)
	}
	return errors.New("verify: triangulations differ")
}

type report struct {
	common int
	onlyBW [][3]int
	// onlyLifted holds lifted-only triangles away from the convex hull.
	onlyLifted [][3]int
	// slivers holds lifted-only triangles connected to the convex hull.
	// A finite super-triangle cuts off thin triangles along the hull.
	slivers [][3]int
}

func (r report) ok() bool {
	return len(r.onlyBW) == 0 && len(r.onlyLifted) == 0
}

// compareWithLifted diffs the triangle sets of the Manager's triangulation
// and the lifted lower hull, each as sorted canonical index triples.
func compareWithLifted(m *pointset.Manager) (report, error) {
	var rep report
	points := m.Points()
	if len(points) < 4 {
		rep.common = len(m.Result().Triangles)
		return rep, nil
	}

	lt, err := lifted.Triangles(points)
	if err != nil {
		return rep, err
	}
	bw := lifted.Canonical(m.Result().Indices)
	lh := lifted.Canonical(lt)

	var missing [][3]int
	for t := range bw {
		if lh[t] {
			rep.common++
		} else {
			rep.onlyBW = append(rep.onlyBW, t)
		}
	}
	for t := range lh {
		if !bw[t] {
			missing = append(missing, t)
		}
	}
	rep.slivers, rep.onlyLifted = splitHullSlivers(lh, missing)
	sortTriples(rep.onlyBW)
	sortTriples(rep.onlyLifted)
	sortTriples(rep.slivers)
	return rep, nil
}

// splitHullSlivers separates the triangles of missing that reach the convex
// hull of the triangulation all, either through a hull edge or through an
// edge shared with another such triangle.
func splitHullSlivers(all map[[3]int]bool, missing [][3]int) (slivers, interior [][3]int) {
	uses := make(map[[2]int]int, 3*len(all))
	for t := range all {
		for _, e := range triangleEdges(t) {
			uses[e]++
		}
	}

	open := make(map[[2]int]bool)
	for e, n := range uses {
		if n == 1 {
			open[e] = true
		}
	}

	done := make([]bool, len(missing))
	for changed := true; changed; {
		changed = false
		for i, t := range missing {
			if done[i] {
				continue
			}
			edges := triangleEdges(t)
			if !open[edges[0]] && !open[edges[1]] && !open[edges[2]] {
				continue
			}
			done[i] = true
			changed = true
			for _, e := range edges {
				open[e] = true
			}
		}
	}

	for i, t := range missing {
		if done[i] {
			slivers = append(slivers, t)
		} else {
			interior = append(interior, t)
		}
	}
	return slivers, interior
}

func triangleEdges(t [3]int) [3][2]int {
	var edges [3][2]int
	for i := range t {
		a, b := t[i], t[(i+1)%3]
		if a > b {
			a, b = b, a
		}
		edges[i] = [2]int{a, b}
	}
	return edges
}

func sortTriples(ts [][3]int) {
	sort.Slice(ts, func(i, j int) bool {
		a, b := ts[i], ts[j]
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
}

func runImportSVG(g globalFlags, logger *zap.Logger, stdout io.Writer, in, out string) error {
	m, err := newManager(g, logger)
	if err != nil {
		return err
	}

	f, err := os.Open(in)
	if err != nil {
		return errors.Wrapf(err, "open %s", in)
	}
	defer f.Close()

	stats, err := m.ImportSVG(f)
	if err != nil {
		return err
	}
	if err := m.SaveFile(out); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "recovered %d sites (%d rejected, %d malformed) -> %s\n",
		stats.Added, stats.Rejected, stats.Malformed, out)
	return nil
}

// parsePair parses "x,y".
func parsePair(s string) (float64, float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "point %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "point %q", s)
	}
	return x, y, nil
}
