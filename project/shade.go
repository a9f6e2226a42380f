package project

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// minimum brightness for any surface
	ambientLight = 0.65
	// higher values give a tighter spotlight cone around the view axis
	spotlightConePower   = 10.0
	spotlightLightAmount = 1.0 - ambientLight
	minChannel           = 7
)

// Shade darkens c for a face with the given view space centre and unit
// normal. Faces square on to the camera in the middle of the view keep their
// color; faces turned away get ambient light only.
func Shade(c color.RGBA, centre, normal mgl64.Vec3) color.RGBA {
	diffuseFactor := math.Max(0, normal[2])

	var spotlightFactor float64
	if l := centre.Len(); l > 0 {
		cosAngle := math.Max(0, -centre[2]/l)
		spotlightFactor = math.Pow(cosAngle, spotlightConePower)
	} else {
		spotlightFactor = 1.0
	}

	finalBrightness := ambientLight + diffuseFactor*spotlightFactor*spotlightLightAmount
	d := 240 - int(finalBrightness*240)

	return color.RGBA{
		R: uint8(clamp(int(c.R)-d, minChannel, 255)),
		G: uint8(clamp(int(c.G)-d, minChannel, 255)),
		B: uint8(clamp(int(c.B)-d, minChannel, 255)),
		A: c.A,
	}
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
