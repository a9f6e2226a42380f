package sieview

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Color is an RGB color with components in the 0-1 range.
type Color struct {
	R, G, B float64
}

var (
	White     = Color{1, 1, 1}
	Black     = Color{0, 0, 0}
	Grey      = Color{0.5, 0.5, 0.5}
	Red       = Color{1, 0, 0}
	Green     = Color{0, 1, 0}
	Blue      = Color{0, 0, 1}
	MeshGrey  = Color{0.8, 0.8, 0.8}
	GridColor = Color{0.8, 0.8, 0.8}
)

func NewColor(r, g, b float64) Color {
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b)}
}

func ColorFromRGB255(r, g, b uint8) Color {
	return Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
}

// ColorFromHex parses "#rrggbb" or "#rgb".
func ColorFromHex(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, errors.Wrapf(err, "parse color %q", hex)
	}
	return Color{R: c.R, G: c.G, B: c.B}, nil
}

// MustColorFromHex is like ColorFromHex but panics on malformed input. Only
// use it with literals.
func MustColorFromHex(hex string) Color {
	c, err := ColorFromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// CoerceColor converts any image/color value, ignoring alpha.
func CoerceColor(c color.Color) Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return Black
	}
	return Color{R: cf.R, G: cf.G, B: cf.B}
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func (c Color) Hex() string {
	return c.toColorful().Clamped().Hex()
}

// IsLight reports whether the color's HSL lightness is above one half.
func (c Color) IsLight() bool {
	_, _, l := c.toColorful().Hsl()
	return l > 0.5
}

// Darkened reduces the HSL lightness by the given percentage of its current value.
func (c Color) Darkened(factor float64) Color {
	factor = math.Max(0, math.Min(100, factor))
	h, s, l := c.toColorful().Hsl()
	return fromColorful(colorful.Hsl(h, s, l*(1-factor/100)))
}

// Lightened moves the HSL lightness towards white by the given percentage of
// the remaining distance.
func (c Color) Lightened(factor float64) Color {
	factor = math.Max(0, math.Min(100, factor))
	h, s, l := c.toColorful().Hsl()
	return fromColorful(colorful.Hsl(h, s, l+(1-l)*factor/100))
}

// Contrast returns the color used for outlines drawn on top of c.
func (c Color) Contrast() Color {
	if c.IsLight() {
		return c.Darkened(50)
	}
	return c.Lightened(50)
}

// Vec3 returns the normalized float32 triple written into render buffers.
func (c Color) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(clamp01(c.R)), float32(clamp01(c.G)), float32(clamp01(c.B))}
}

func (c Color) RGBA() color.RGBA {
	r, g, b := c.toColorful().Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func fromColorful(c colorful.Color) Color {
	c = c.Clamped()
	return Color{R: c.R, G: c.G, B: c.B}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
