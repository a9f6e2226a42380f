package sieview

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

type Viewport string

const (
	Perspective Viewport = "perspective"
	Top         Viewport = "top"
)

func (v Viewport) Valid() bool {
	return v == Perspective || v == Top
}

type Camera struct {
	Viewport Viewport
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
	Near     float64
	Far      float64
	Fov      float64 // vertical, degrees
	Zoom     float64
}

func NewCamera(viewport Viewport) (*Camera, error) {
	c := &Camera{
		Viewport: viewport,
		Near:     0.1,
		Far:      10000,
		Fov:      50,
		Zoom:     1,
	}
	switch viewport {
	case Perspective:
		c.Position = mgl64.Vec3{0, -10, 5}
		c.Up = mgl64.Vec3{0, 0, 1}
	case Top:
		c.Position = mgl64.Vec3{0, 0, 1}
		c.Up = mgl64.Vec3{0, 1, 0}
	default:
		return nil, errors.Wrapf(ErrUnknownViewport, "%q", viewport)
	}
	return c, nil
}

// ZoomExtents moves the camera so that box fills the view. An empty box, or
// one with no extent, leaves the camera as it is.
func (c *Camera) ZoomExtents(box BBox, width, height int) error {
	if box.IsEmpty() {
		return nil
	}
	d := box.MaxExtent()
	if d == 0 {
		return nil
	}
	center := box.Center()

	switch c.Viewport {
	case Perspective:
		c.Position = mgl64.Vec3{center[0], center[1] - d, center[2] + 0.5*d}
		c.Target = center
		c.Zoom = 1
	case Top:
		c.Position = mgl64.Vec3{center[0], center[1], center[2] + d}
		c.Target = center
		c.Zoom = math.Min(0.75*float64(width)/d, 0.75*float64(height)/d)
	default:
		return errors.Wrapf(ErrUnknownViewport, "%q", c.Viewport)
	}
	return nil
}

func (c *Camera) ZoomIn() {
	c.Zoom *= 2
}

func (c *Camera) ZoomOut() {
	c.Zoom /= 2
}

// Orbit rotates the camera position around the target: azimuth about the up
// axis, elevation about the camera's right axis. Angles are in radians.
func (c *Camera) Orbit(azimuth, elevation float64) {
	offset := c.Position.Sub(c.Target)
	up := c.Up.Normalize()

	offset = mgl64.QuatRotate(azimuth, up).Rotate(offset)

	right := offset.Cross(up)
	if right.Len() > 1e-9 {
		rotated := mgl64.QuatRotate(elevation, right.Normalize()).Rotate(offset)
		// stop short of the poles so the view matrix stays defined
		if math.Abs(rotated.Normalize().Dot(up)) < 0.995 {
			offset = rotated
		}
	}
	c.Position = c.Target.Add(offset)
}

func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// Projection returns the projection matrix for a viewport of the given size
// in pixels. Top views use one world unit per pixel at zoom 1.
func (c *Camera) Projection(width, height float64) mgl64.Mat4 {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	if c.Viewport == Top {
		hw, hh := width/2/zoom, height/2/zoom
		return mgl64.Ortho(-hw, hw, -hh, hh, c.Near, c.Far)
	}
	fov := 2 * math.Atan(math.Tan(mgl64.DegToRad(c.Fov)/2)/zoom)
	return mgl64.Perspective(fov, width/height, c.Near, c.Far)
}
