package sieview

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BBox is an axis aligned bounding box. The zero value is not empty; use
// EmptyBBox to start an accumulation.
type BBox struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

func EmptyBBox() BBox {
	inf := math.Inf(1)
	return BBox{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

func BBoxOf(points []mgl64.Vec3) BBox {
	b := EmptyBBox()
	for _, p := range points {
		b = b.Extend(p)
	}
	return b
}

func (b BBox) IsEmpty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

func (b BBox) Extend(p mgl64.Vec3) BBox {
	for i := 0; i < 3; i++ {
		b.Min[i] = math.Min(b.Min[i], p[i])
		b.Max[i] = math.Max(b.Max[i], p[i])
	}
	return b
}

func (b BBox) Union(o BBox) BBox {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return b.Extend(o.Min).Extend(o.Max)
}

func (b BBox) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b BBox) Size() mgl64.Vec3 {
	if b.IsEmpty() {
		return mgl64.Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// MaxExtent is the largest of the box's three side lengths.
func (b BBox) MaxExtent() float64 {
	s := b.Size()
	return math.Max(s[0], math.Max(s[1], s[2]))
}
