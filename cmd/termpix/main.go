// Command termpix inspects how the terminal image subsystem slices a
// picture across a grid of cells: it loads an image file into the pool,
// rasterizes it over the requested cell span, prints a per-cell color
// preview, and can write the materialized span to a PNG for comparison.
package main

import (
	"fmt"
	"image/color"
	"image/png"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/termpix/termpix/internal/compose"
	"github.com/termpix/termpix/internal/imagepool"
	"github.com/termpix/termpix/internal/source"
)

type cli struct {
	Path       string `arg:"" help:"Image file to inspect (PNG, JPEG, GIF, BMP, TIFF, WebP)."`
	Columns    int    `help:"Grid columns to span the image onto." default:"20"`
	Rows       int    `help:"Grid rows to span the image onto." default:"10"`
	CellWidth  int    `help:"Terminal cell width in pixels." default:"10"`
	CellHeight int    `help:"Terminal cell height in pixels." default:"20"`
	Align      string `help:"Alignment inside the span." enum:"top-start,top-center,top-end,middle-start,middle-center,middle-end,bottom-start,bottom-center,bottom-end" default:"middle-center"`
	Resize     string `help:"Resize policy." enum:"none,fit,fill,stretch" default:"fit"`
	Out        string `help:"Write the materialized cell span to this PNG file."`
	Quiet      bool   `help:"Suppress the ANSI cell preview."`
}

func (c *cli) Validate(kctx *kong.Context) error {
	if c.Columns <= 0 || c.Rows <= 0 {
		return fmt.Errorf("grid span must be positive, got %dx%d", c.Columns, c.Rows)
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return fmt.Errorf("cell size must be positive, got %dx%d", c.CellWidth, c.CellHeight)
	}
	return nil
}

var alignments = map[string]imagepool.Alignment{
	"top-start":     imagepool.TopStart,
	"top-center":    imagepool.TopCenter,
	"top-end":       imagepool.TopEnd,
	"middle-start":  imagepool.MiddleStart,
	"middle-center": imagepool.MiddleCenter,
	"middle-end":    imagepool.MiddleEnd,
	"bottom-start":  imagepool.BottomStart,
	"bottom-center": imagepool.BottomCenter,
	"bottom-end":    imagepool.BottomEnd,
}

var resizeModes = map[string]imagepool.ResizeMode{
	"none":    imagepool.NoResize,
	"fit":     imagepool.ResizeToFit,
	"fill":    imagepool.ResizeToFill,
	"stretch": imagepool.StretchToFill,
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("termpix"),
		kong.Description("Inspect terminal image slicing and placement."),
	)
	kctx.FatalIfErrorf(run(&c))
}

func run(c *cli) error {
	raster, err := source.NewCache().Load(c.Path)
	if err != nil {
		return err
	}

	pool := imagepool.NewPool()
	h, err := pool.Create(raster.Data, raster.Size)
	if err != nil {
		return err
	}
	defer h.Release()

	span := imagepool.GridSize{Columns: c.Columns, Rows: c.Rows}
	r, err := imagepool.Rasterize(h, span, alignments[c.Align], resizeModes[c.Resize])
	if err != nil {
		return err
	}
	defer r.Release()

	slog.Info("rasterized",
		"image", c.Path,
		"pixels", raster.Size,
		"span", span,
		"cell", r.CellSize(),
		"align", r.Alignment(),
		"resize", r.Resize(),
	)

	if !c.Quiet {
		if err := printPreview(r); err != nil {
			return err
		}
	}

	if c.Out != "" {
		cellPx := imagepool.Size{Width: c.CellWidth, Height: c.CellHeight}
		out, err := compose.Materialize(r, cellPx, color.Black)
		if err != nil {
			return err
		}
		f, err := os.Create(c.Out)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := png.Encode(f, out); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		slog.Info("wrote materialized span", "file", c.Out, "size", imagepool.Size{
			Width:  out.Rect.Dx(),
			Height: out.Rect.Dy(),
		})
	}

	return nil
}

// printPreview prints one background-colored blank per grid cell, colored
// with the cell fragment's average color.
func printPreview(r *imagepool.Rasterized) error {
	span := r.Span()
	for row := 0; row < span.Rows; row++ {
		for col := 0; col < span.Columns; col++ {
			frag, err := r.Fragment(imagepool.CellCoord{Row: row, Column: col})
			if err != nil {
				return err
			}
			cr, cg, cb := compose.AverageColor(frag).RGB255()
			frag.Release()
			fmt.Printf("\x1b[48;2;%d;%d;%dm  ", cr, cg, cb)
		}
		fmt.Print("\x1b[0m\n")
	}
	return nil
}
