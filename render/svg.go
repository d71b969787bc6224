// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package render

import (
	"io"

	"github.com/2dChan/planarvoronoi"
	svg "github.com/ajstarks/svgo"
)

// SVG writes r as an SVG document of the given size. Coordinates are rounded
// to whole pixels.
func SVG(w io.Writer, r *planarvoronoi.Result, width, height int, style Style) error {
	ew := &errWriter{w: w}
	p := style.palette()

	canvas := svg.New(ew)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:"+rgb(p.background))

	if !style.HideVoronoi {
		canvas.Gid("voronoi")
		lineStyle := "stroke:" + rgb(p.voronoi) + ";stroke-width:1"
		for _, e := range r.VoronoiEdges {
			canvas.Line(px(e.P1.X), px(e.P1.Y), px(e.P2.X), px(e.P2.Y), lineStyle)
		}
		canvas.Gend()
	}

	if style.ShowCircles {
		canvas.Gid("circles")
		circleStyle := "fill:none;stroke:" + rgb(p.circle) + ";stroke-opacity:" + opacity(p.circle)
		for _, t := range r.Triangles {
			c := t.Circle
			canvas.Circle(px(c.Center.X), px(c.Center.Y), px(c.R), circleStyle)
		}
		canvas.Gend()
	}

	canvas.Gid("delaunay")
	lineStyle := "stroke:" + rgb(p.delaunay) + ";stroke-width:1"
	for _, e := range r.DelaunayEdges {
		canvas.Line(px(e.P1.X), px(e.P1.Y), px(e.P2.X), px(e.P2.Y), lineStyle)
	}
	canvas.Gend()

	canvas.Gid(SitesID)
	siteStyle := "fill:" + rgb(p.site)
	radius := px(style.siteRadius())
	for _, s := range r.Sites {
		canvas.Circle(px(s.X), px(s.Y), radius, siteStyle)
	}
	canvas.Gend()

	canvas.End()
	return ew.err
}

// errWriter keeps the first write error, since svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(b)
	ew.err = err
	return n, err
}
