package sieview

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Dot is a text label anchored at a point. Renderers draw it at a constant
// screen size regardless of zoom.
type Dot struct {
	Point mgl64.Vec3
	Text  string
}

func NewDot(point mgl64.Vec3, text any) Dot {
	return Dot{Point: point, Text: fmt.Sprint(text)}
}

func (d Dot) String() string {
	return fmt.Sprintf("Dot(%v, %q)", d.Point, d.Text)
}

// Transform applies m to the anchor point.
func (d *Dot) Transform(m mgl64.Mat4) {
	d.Point = mgl64.TransformCoordinate(d.Point, m)
}
