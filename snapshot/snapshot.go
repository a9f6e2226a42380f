// Package snapshot renders a scene to an image without a window.
package snapshot

import (
	"image"
	"io"
	"log"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/smasonuk/sieview"
	"github.com/smasonuk/sieview/project"
)

type Options struct {
	Width      int
	Height     int
	Background sieview.Color
	LineWidth  float64
	PointSize  float64
	Shading    bool
}

func DefaultOptions() Options {
	return OptionsFromConfig(sieview.DefaultViewerConfig())
}

func OptionsFromConfig(cfg sieview.ViewerConfig) Options {
	return Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: cfg.BackgroundColor(),
		LineWidth:  1,
		PointSize:  3,
		Shading:    true,
	}
}

type Snapshot struct {
	dc *gg.Context
}

// Render draws the scene as seen by cam.
func Render(scene *sieview.Scene, cam *sieview.Camera, opts Options) (*Snapshot, error) {
	renderables, err := scene.Draw()
	if err != nil {
		return nil, err
	}
	p := project.New(cam, opts.Width, opts.Height)
	p.Shading = opts.Shading
	frame := p.Frame(renderables)
	log.Printf("Snapshot: %d primitives, %d labels", len(frame.Items), len(frame.Labels))
	return RenderFrame(frame, opts), nil
}

// RenderFrame paints an already projected frame.
func RenderFrame(frame project.Frame, opts Options) *Snapshot {
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(opts.Background.RGBA())
	dc.Clear()

	dc.SetLineWidth(opts.LineWidth)
	for _, it := range frame.Items {
		dc.SetColor(it.Color)
		switch it.Kind {
		case sieview.Triangles:
			dc.MoveTo(it.Points[0].X(), it.Points[0].Y())
			for _, p := range it.Points[1:] {
				dc.LineTo(p.X(), p.Y())
			}
			dc.ClosePath()
			// stroke in the fill color to hide seams between neighbouring triangles
			dc.FillPreserve()
			dc.SetLineWidth(0.5)
			dc.Stroke()
			dc.SetLineWidth(opts.LineWidth)
		case sieview.Lines:
			dc.DrawLine(it.Points[0].X(), it.Points[0].Y(), it.Points[1].X(), it.Points[1].Y())
			dc.Stroke()
		case sieview.Points:
			dc.DrawPoint(it.Points[0].X(), it.Points[0].Y(), opts.PointSize)
			dc.Fill()
		}
	}

	dc.SetFontFace(basicfont.Face7x13)
	for _, l := range frame.Labels {
		dc.SetColor(l.Color)
		dc.DrawStringAnchored(l.Text, l.Pos.X(), l.Pos.Y(), 0.5, 0.5)
	}
	return &Snapshot{dc: dc}
}

func (s *Snapshot) Image() image.Image {
	return s.dc.Image()
}

func (s *Snapshot) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

func (s *Snapshot) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}
