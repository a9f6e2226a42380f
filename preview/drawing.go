package preview

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/smasonuk/sieview"
	"github.com/smasonuk/sieview/project"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// fillConvexPolygon fans the polygon from its first point. Clipped triangles
// have at most four corners so the indices always fit in uint16.
func fillConvexPolygon(screen *ebiten.Image, item project.Item) {
	if len(item.Points) < 3 {
		return
	}

	indices := make([]uint16, 0, (len(item.Points)-2)*3)
	for i := 2; i < len(item.Points); i++ {
		indices = append(indices, 0, uint16(i-1), uint16(i))
	}

	cr, cg, cb, ca := colorScale(item.Color)
	vertices := make([]ebiten.Vertex, len(item.Points))
	for i, p := range item.Points {
		vertices[i] = ebiten.Vertex{
			DstX:   float32(p.X()),
			DstY:   float32(p.Y()),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(vertices, indices, whiteSub, op)
}

func colorScale(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0, float32(c.A) / 255.0
}

// drawFrame paints a depth sorted frame onto screen.
func drawFrame(screen *ebiten.Image, frame project.Frame, lineWidth, pointSize float32) {
	for _, it := range frame.Items {
		switch it.Kind {
		case sieview.Triangles:
			fillConvexPolygon(screen, it)
		case sieview.Lines:
			a, b := it.Points[0], it.Points[1]
			vector.StrokeLine(screen, float32(a.X()), float32(a.Y()), float32(b.X()), float32(b.Y()), lineWidth, it.Color, true)
		case sieview.Points:
			p := it.Points[0]
			vector.DrawFilledCircle(screen, float32(p.X()), float32(p.Y()), pointSize, it.Color, true)
		}
	}

	// debug font glyphs are 6x16
	for _, l := range frame.Labels {
		x := int(l.Pos.X()) - len(l.Text)*3
		y := int(l.Pos.Y()) - 8
		ebitenutil.DebugPrintAt(screen, l.Text, x, y)
	}
}
