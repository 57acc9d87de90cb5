// Package chart renders the composite price analysis figure: a 2x2 grid of
// panels (price distribution boxplot, price lines, daily-return lines, and
// return-correlation heatmap) under a shared title, written as a PNG.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/etnz/bankviz"
	stdfnt "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Title is the shared figure title.
const Title = "Financial Analysis of Major US Banks"

// Figure geometry, matching a 20x15 inch canvas rendered at print resolution.
const (
	figureDPI    = 300
	figureWidth  = 20 * vg.Inch
	figureHeight = 15 * vg.Inch
	titleHeight  = 1 * vg.Inch
)

// Render draws the four panels and writes the figure as a PNG at path,
// overwriting any existing file. The write goes through a temporary file
// renamed into place, so a failed run never leaves a partial image behind.
func Render(t *bankviz.PriceTable, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".bankviz-*.png")
	if err != nil {
		return fmt.Errorf("could not create output file in %q: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteTo(t, tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write figure: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not save figure to %q: %w", path, err)
	}
	return nil
}

// WriteTo renders the figure as PNG bytes into w.
func WriteTo(t *bankviz.PriceTable, w io.Writer) error {
	plots, err := panels(t)
	if err != nil {
		return err
	}

	img := vgimg.NewWith(vgimg.UseWH(figureWidth, figureHeight), vgimg.UseDPI(figureDPI))
	dc := draw.New(img)

	// Reserve a band at the top of the canvas for the shared title,
	// and tile the four panels below it.
	band := draw.Crop(dc, 0, 0, figureHeight-titleHeight, 0)
	body := draw.Crop(dc, 0, 0, 0, -titleHeight)
	drawTitle(band)

	tiles := draw.Tiles{
		Rows: 2, Cols: 2,
		PadX: vg.Inch / 2, PadY: vg.Inch / 2,
		PadLeft: vg.Inch / 4, PadRight: vg.Inch / 4, PadBottom: vg.Inch / 4,
	}
	canvases := plot.Align(plots, tiles, body)
	for r := range plots {
		for c := range plots[r] {
			plots[r][c].Draw(canvases[r][c])
		}
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("could not encode figure: %w", err)
	}
	return nil
}

// drawTitle fills the given band with the centered figure title.
func drawTitle(band draw.Canvas) {
	sty := text.Style{
		Color: color.Black,
		Font: font.Font{
			Typeface: "Liberation",
			Variant:  "Sans",
			Weight:   stdfnt.WeightBold,
			Size:     vg.Points(28),
		},
		XAlign:  text.XCenter,
		YAlign:  text.YCenter,
		Handler: text.Plain{Fonts: font.NewCache(liberation.Collection())},
	}
	center := vg.Point{
		X: (band.Min.X + band.Max.X) / 2,
		Y: (band.Min.Y + band.Max.Y) / 2,
	}
	band.FillText(sty, center, Title)
}
