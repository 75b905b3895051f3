// Package plan draws a top-down view of the solids and the open sketch.
package plan

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/pkg/geometry"
)

// Options control the rendered image
type Options struct {
	Size    int     // longest image side in pixels
	Padding float64 // in pixels
	Grid    float64 // grid spacing in world units, 0 disables the grid
	Labels  bool

	Background color.Color
	GridColor  color.Color
	Sketch     color.Color
}

// DefaultOptions returns a light plan style
func DefaultOptions() Options {
	return Options{
		Size:       1024,
		Padding:    40,
		Grid:       1,
		Labels:     true,
		Background: color.White,
		GridColor:  color.RGBA{R: 225, G: 225, B: 230, A: 255},
		Sketch:     color.RGBA{R: 220, G: 50, B: 50, A: 255},
	}
}

// Render draws the footprints of the solids, each filled with its material
// colour, and the sketch as an open polyline
func Render(solids []*editor.Solid, sketch []geometry.Vector3, opts Options) (image.Image, error) {
	bbox := geometry.NewBoundingBox()
	for _, s := range solids {
		for _, p := range s.Footprint() {
			bbox.Extend(p)
		}
	}
	for _, p := range sketch {
		bbox.Extend(p)
	}
	if bbox.IsEmpty() {
		return nil, fmt.Errorf("nothing to draw")
	}

	size := bbox.Size()
	extent := math.Max(math.Max(size.X, size.Z), 1e-6)
	scale := (float64(opts.Size) - 2*opts.Padding) / extent
	if scale <= 0 {
		return nil, fmt.Errorf("image size %d too small for padding %v", opts.Size, opts.Padding)
	}

	width := int(math.Round(size.X*scale + 2*opts.Padding))
	height := int(math.Round(size.Z*scale + 2*opts.Padding))
	toScreen := func(p geometry.Vector3) (float64, float64) {
		return (p.X-bbox.Min.X)*scale + opts.Padding, (p.Z-bbox.Min.Z)*scale + opts.Padding
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(opts.Background)
	dc.Clear()

	if opts.Grid > 0 {
		drawGrid(dc, bbox, opts, toScreen)
	}

	for _, s := range solids {
		drawFootprint(dc, s, toScreen)
	}

	if len(sketch) > 0 {
		dc.SetColor(opts.Sketch)
		dc.SetLineWidth(2)
		x, y := toScreen(sketch[0])
		dc.MoveTo(x, y)
		for _, p := range sketch[1:] {
			dc.LineTo(toScreen(p))
		}
		dc.Stroke()
		for _, p := range sketch {
			x, y := toScreen(p)
			dc.DrawCircle(x, y, 3)
			dc.Fill()
		}
	}

	if opts.Labels {
		face, err := labelFace(12)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
		dc.SetColor(color.Black)
		for _, s := range solids {
			x, y := toScreen(s.Bounds().Center())
			dc.DrawStringAnchored(fmt.Sprintf("%s (h=%.2f)", s.Name, s.Height), x, y, 0.5, 0.5)
		}
	}

	return dc.Image(), nil
}

// SavePNG renders the plan into a PNG file
func SavePNG(path string, solids []*editor.Solid, sketch []geometry.Vector3, opts Options) error {
	img, err := Render(solids, sketch, opts)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}
	return nil
}

func drawGrid(dc *gg.Context, bbox geometry.BoundingBox, opts Options, toScreen func(geometry.Vector3) (float64, float64)) {
	dc.SetColor(opts.GridColor)
	dc.SetLineWidth(1)

	startX := math.Floor(bbox.Min.X/opts.Grid) * opts.Grid
	for x := startX; x <= bbox.Max.X; x += opts.Grid {
		x1, y1 := toScreen(geometry.GroundPoint(x, bbox.Min.Z))
		x2, y2 := toScreen(geometry.GroundPoint(x, bbox.Max.Z))
		dc.DrawLine(x1, y1, x2, y2)
	}
	startZ := math.Floor(bbox.Min.Z/opts.Grid) * opts.Grid
	for z := startZ; z <= bbox.Max.Z; z += opts.Grid {
		x1, y1 := toScreen(geometry.GroundPoint(bbox.Min.X, z))
		x2, y2 := toScreen(geometry.GroundPoint(bbox.Max.X, z))
		dc.DrawLine(x1, y1, x2, y2)
	}
	dc.Stroke()
}

func drawFootprint(dc *gg.Context, s *editor.Solid, toScreen func(geometry.Vector3) (float64, float64)) {
	footprint := s.Footprint()
	if len(footprint) < 3 {
		return
	}

	x, y := toScreen(footprint[0])
	dc.MoveTo(x, y)
	for _, p := range footprint[1:] {
		dc.LineTo(toScreen(p))
	}
	dc.ClosePath()
	dc.SetColor(s.Material.Color)
	dc.FillPreserve()
	dc.SetColor(color.Black)
	dc.SetLineWidth(1.5)
	dc.Stroke()
}

func labelFace(size float64) (font.Face, error) {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
