// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package render

import (
	"io"

	"github.com/2dChan/planarvoronoi"
	"github.com/fogleman/gg"
)

// PNG writes r as a PNG image of the given size.
func PNG(w io.Writer, r *planarvoronoi.Result, width, height int, style Style) error {
	p := style.palette()

	c := gg.NewContext(width, height)
	c.SetColor(p.background)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.SetLineWidth(1)
	if !style.HideVoronoi {
		c.SetColor(p.voronoi)
		for _, e := range r.VoronoiEdges {
			c.DrawLine(e.P1.X, e.P1.Y, e.P2.X, e.P2.Y)
		}
		c.Stroke()
	}

	if style.ShowCircles {
		c.SetColor(p.circle)
		for _, t := range r.Triangles {
			c.DrawCircle(t.Circle.Center.X, t.Circle.Center.Y, t.Circle.R)
			c.Stroke()
		}
	}

	c.SetColor(p.delaunay)
	for _, e := range r.DelaunayEdges {
		c.DrawLine(e.P1.X, e.P1.Y, e.P2.X, e.P2.Y)
	}
	c.Stroke()

	c.SetColor(p.site)
	for _, s := range r.Sites {
		c.DrawCircle(s.X, s.Y, style.siteRadius())
		c.Fill()
	}

	return c.EncodePNG(w)
}
