// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command bwvoronoi generates, edits, renders and checks planar point sets
// with their Delaunay triangulation and Voronoi diagram.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"
)

type globalFlags struct {
	width         *float64
	height        *float64
	logLevel      *string
	pickTolerance *float64
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "bwvoronoi:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	app := kingpin.New("bwvoronoi", "Delaunay triangulation and Voronoi diagram of planar point sets.")
	app.HelpFlag.Short('h')

	g := globalFlags{
		width:         app.Flag("width", "Canvas width.").Envar("BWVORONOI_WIDTH").Default("1600").Float64(),
		height:        app.Flag("height", "Canvas height.").Envar("BWVORONOI_HEIGHT").Default("900").Float64(),
		logLevel:      app.Flag("log-level", "Log level (debug, info, warn, error).").Envar("BWVORONOI_LOG_LEVEL").Default("warn").String(),
		pickTolerance: app.Flag("pick-tolerance", "Per-axis distance within which edit --delete finds a point.").Default("5").Float64(),
	}

	gen := app.Command("gen", "Write a file of random points.")
	genCount := gen.Flag("count", "Number of points.").Short('n').Default("100").Int()
	genSeed := gen.Flag("seed", "Random seed.").Default("0").Int64()
	genOut := gen.Flag("output", "Output point file.").Short('o').Required().String()

	edit := app.Command("edit", "Add and delete points of a point file.")
	editIn := edit.Arg("points", "Point file.").Required().ExistingFile()
	editAdd := edit.Flag("add", "Point to add, as x,y. Repeatable.").Strings()
	editDelete := edit.Flag("delete", "Point to delete, as x,y. Repeatable.").Strings()
	editOut := edit.Flag("output", "Output point file. Defaults to the input file.").Short('o').String()

	rnd := app.Command("render", "Render the triangulation of a point file as SVG or PNG.")
	rndIn := rnd.Arg("points", "Point file.").Required().ExistingFile()
	rndOut := rnd.Flag("output", "Output image, .svg or .png.").Short('o').Required().String()
	rndHideVoronoi := rnd.Flag("hide-voronoi", "Do not draw Voronoi edges.").Bool()
	rndCircles := rnd.Flag("circles", "Draw circumcircles.").Bool()
	rndInverse := rnd.Flag("inverse", "Dark lines on a light background.").Bool()
	rndPreview := rnd.Flag("preview", "Print the image to an iTerm2 compatible terminal.").Bool()

	verify := app.Command("verify", "Compare the triangulation with the lower hull of the lifted points.")
	verifyIn := verify.Arg("points", "Point file.").Required().ExistingFile()
	verifyColor := verify.Flag("color", "Colour the report.").Default("true").Bool()

	imp := app.Command("import-svg", "Recover the sites of a rendered SVG.")
	impIn := imp.Arg("svg", "SVG written by render.").Required().ExistingFile()
	impOut := imp.Flag("output", "Output point file.").Short('o').Required().String()

	cmd, err := app.Parse(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(*g.logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	switch cmd {
	case gen.FullCommand():
		return runGen(g, logger, stdout, *genCount, *genSeed, *genOut)
	case edit.FullCommand():
		out := *editOut
		if out == "" {
			out = *editIn
		}
		return runEdit(g, logger, stdout, *editIn, out, *editAdd, *editDelete)
	case rnd.FullCommand():
		return runRender(g, logger, stdout, *rndIn, *rndOut, renderFlags{
			hideVoronoi: *rndHideVoronoi,
			circles:     *rndCircles,
			inverse:     *rndInverse,
			preview:     *rndPreview,
		})
	case verify.FullCommand():
		return runVerify(g, logger, stdout, *verifyIn, *verifyColor)
	case imp.FullCommand():
		return runImportSVG(g, logger, stdout, *impIn, *impOut)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	return cfg.Build()
}
