// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package render draws a triangulation Result as SVG or PNG.
package render

import (
	"fmt"
	"image/color"
	"math"
)

// SitesID is the id of the SVG group holding one circle per site.
const SitesID = "sites"

type Style struct {
	// HideVoronoi omits the Voronoi edges.
	HideVoronoi bool
	// ShowCircles draws the circumcircle of every triangle.
	ShowCircles bool
	// Inverse switches to dark lines on a light background.
	Inverse    bool
	SiteRadius float64
}

func DefaultStyle() Style {
	return Style{SiteRadius: 6}
}

type palette struct {
	background color.RGBA
	delaunay   color.RGBA
	voronoi    color.RGBA
	circle     color.RGBA
	site       color.RGBA
}

func (s Style) palette() palette {
	p := palette{
		background: color.RGBA{33, 33, 33, 255},
		delaunay:   color.RGBA{255, 255, 255, 255},
		voronoi:    color.RGBA{255, 150, 134, 255},
		circle:     color.RGBA{205, 215, 240, 150},
		site:       color.RGBA{255, 85, 79, 255},
	}
	if s.Inverse {
		p.background = color.RGBA{255, 255, 255, 255}
		p.delaunay = color.RGBA{0, 0, 0, 255}
		p.site = color.RGBA{0, 0, 0, 255}
	}
	return p
}

func (s Style) siteRadius() float64 {
	if s.SiteRadius <= 0 {
		return DefaultStyle().SiteRadius
	}
	return s.SiteRadius
}

func rgb(c color.RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func opacity(c color.RGBA) string {
	return fmt.Sprintf("%.3g", float64(c.A)/255)
}

func px(v float64) int {
	return int(math.Round(v))
}
