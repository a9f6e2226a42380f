// Package project turns scene buffers into depth sorted 2D primitives for
// painter's algorithm renderers.
package project

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/smasonuk/sieview"
)

// Projector maps world coordinates to pixels for one camera and viewport
// size. Screen y grows downwards.
type Projector struct {
	Width, Height float64
	Shading       bool

	near float64
	view mgl64.Mat4
	proj mgl64.Mat4
}

func New(cam *sieview.Camera, width, height int) *Projector {
	w, h := float64(width), float64(height)
	return &Projector{
		Width:   w,
		Height:  h,
		Shading: true,
		near:    cam.Near,
		view:    cam.View(),
		proj:    cam.Projection(w, h),
	}
}

// ToView moves a world point into camera space.
func (p *Projector) ToView(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(v, p.view)
}

// ViewToScreen projects a camera space point to pixel coordinates.
func (p *Projector) ViewToScreen(v mgl64.Vec3) mgl64.Vec2 {
	ndc := mgl64.TransformCoordinate(v, p.proj)
	return mgl64.Vec2{
		(ndc[0] + 1) / 2 * p.Width,
		(1 - ndc[1]) / 2 * p.Height,
	}
}

// ScreenToView is the inverse of ViewToScreen for a point at the given
// distance along the view axis.
func (p *Projector) ScreenToView(s mgl64.Vec2, depth float64) mgl64.Vec3 {
	m := p.proj
	z := -depth
	w := m.At(3, 2)*z + m.At(3, 3)
	ndcX := s[0]/p.Width*2 - 1
	ndcY := 1 - s[1]/p.Height*2
	x := (ndcX*w - m.At(0, 2)*z - m.At(0, 3)) / m.At(0, 0)
	y := (ndcY*w - m.At(1, 2)*z - m.At(1, 3)) / m.At(1, 1)
	return mgl64.Vec3{x, y, z}
}

// Project returns the pixel position of a world point, or false if it is
// behind the near plane.
func (p *Projector) Project(v mgl64.Vec3) (mgl64.Vec2, bool) {
	vv := p.ToView(v)
	if !inFront(vv, p.near) {
		return mgl64.Vec2{}, false
	}
	return p.ViewToScreen(vv), true
}

// Item is one projected primitive.
type Item struct {
	Kind   sieview.Primitive
	Points []mgl64.Vec2
	Color  color.RGBA
	Depth  float64
}

type Label struct {
	Pos   mgl64.Vec2
	Text  string
	Color color.RGBA
	Depth float64
}

// Frame is everything needed to paint one image.
type Frame struct {
	Items  []Item
	Labels []Label
}

// Frame projects renderables and sorts the result farthest first.
func (p *Projector) Frame(renderables []sieview.Renderable) Frame {
	var f Frame
	for _, r := range renderables {
		f.Items = p.AppendBuffer(f.Items, r.Buffer)
		for _, d := range r.Labels {
			vv := p.ToView(d.Point)
			if !inFront(vv, p.near) {
				continue
			}
			f.Labels = append(f.Labels, Label{
				Pos:   p.ViewToScreen(vv),
				Text:  d.Text,
				Color: r.Color.RGBA(),
				Depth: -vv[2],
			})
		}
	}
	SortByDepth(f.Items)
	sort.SliceStable(f.Labels, func(i, j int) bool {
		return f.Labels[i].Depth > f.Labels[j].Depth
	})
	return f
}

// AppendBuffer projects and clips every primitive of buf onto items.
func (p *Projector) AppendBuffer(items []Item, buf sieview.FlatBuffer) []Item {
	n := buf.Primitive.Arity()
	view := make([]mgl64.Vec3, n)
	for i := 0; i+n <= len(buf.Positions); i += n {
		for k := 0; k < n; k++ {
			view[k] = p.ToView(vec64(buf.Positions[i+k]))
		}
		c := rgba(buf.Colors[i])

		switch buf.Primitive {
		case sieview.Points:
			if !inFront(view[0], p.near) {
				continue
			}
			items = append(items, Item{
				Kind:   sieview.Points,
				Points: []mgl64.Vec2{p.ViewToScreen(view[0])},
				Color:  c,
				Depth:  -view[0][2],
			})

		case sieview.Lines:
			a, b, ok := ClipSegmentNear(view[0], view[1], p.near)
			if !ok {
				continue
			}
			items = append(items, Item{
				Kind:   sieview.Lines,
				Points: []mgl64.Vec2{p.ViewToScreen(a), p.ViewToScreen(b)},
				Color:  c,
				Depth:  -(a[2] + b[2]) / 2,
			})

		case sieview.Triangles:
			if p.Shading {
				c = Shade(c, sieview.FaceCentroid(view), sieview.FaceNormal(view))
			}
			clipped := ClipPolygonNear(view, p.near)
			if len(clipped) < 3 {
				continue
			}
			points := make([]mgl64.Vec2, len(clipped))
			for k, v := range clipped {
				points[k] = p.ViewToScreen(v)
			}
			items = append(items, Item{
				Kind:   sieview.Triangles,
				Points: points,
				Color:  c,
				Depth:  farthest(clipped),
			})
		}
	}
	return items
}

// SortByDepth orders items farthest first. Depth is measured along the view
// axis: the farthest corner for triangles and the midpoint for lines, so the
// edges of a face are painted after the face itself.
func SortByDepth(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Depth > items[j].Depth
	})
}

func farthest(points []mgl64.Vec3) float64 {
	d := -points[0][2]
	for _, p := range points[1:] {
		d = max(d, -p[2])
	}
	return d
}

func vec64(v mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

func rgba(c mgl32.Vec3) color.RGBA {
	return sieview.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}.RGBA()
}
