package sieview

import "github.com/go-gl/mathgl/mgl64"

// Box is an axis aligned box given by its center and side lengths along X
// (width), Y (depth) and Z (height).
type Box struct {
	Center mgl64.Vec3
	Width  float64
	Depth  float64
	Height float64
}

func NewBox(width, depth, height float64) *Box {
	return &Box{Width: width, Depth: depth, Height: height}
}

// NewBoxFromBBox returns the box spanning b. An empty bounding box gives a
// zero sized box at the origin.
func NewBoxFromBBox(b BBox) *Box {
	if b.IsEmpty() {
		return &Box{}
	}
	s := b.Size()
	return &Box{Center: b.Center(), Width: s[0], Depth: s[1], Height: s[2]}
}

// Vertices lists the bottom rectangle counter-clockwise seen from above,
// followed by the top rectangle in the same order.
func (b *Box) Vertices() []mgl64.Vec3 {
	dx, dy, dz := b.Width/2, b.Depth/2, b.Height/2
	c := b.Center
	return []mgl64.Vec3{
		{c[0] - dx, c[1] - dy, c[2] - dz},
		{c[0] + dx, c[1] - dy, c[2] - dz},
		{c[0] + dx, c[1] + dy, c[2] - dz},
		{c[0] - dx, c[1] + dy, c[2] - dz},
		{c[0] - dx, c[1] - dy, c[2] + dz},
		{c[0] + dx, c[1] - dy, c[2] + dz},
		{c[0] + dx, c[1] + dy, c[2] + dz},
		{c[0] - dx, c[1] + dy, c[2] + dz},
	}
}

// Faces are wound so their normals point outwards.
func (b *Box) Faces() [][]int {
	return [][]int{
		{0, 3, 2, 1},
		{4, 5, 6, 7},
		{0, 1, 5, 4},
		{1, 2, 6, 5},
		{2, 3, 7, 6},
		{3, 0, 4, 7},
	}
}

func (b *Box) Edges() []Edge {
	return []Edge{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
}

func (b *Box) AABB() BBox {
	return BBoxOf(b.Vertices())
}

// Polygon is a single closed polygon, drawn as one face and its boundary.
type Polygon struct {
	Points []mgl64.Vec3
}

func NewPolygon(points []mgl64.Vec3) *Polygon {
	return &Polygon{Points: points}
}

func (p *Polygon) Vertices() []mgl64.Vec3 {
	return p.Points
}

// Faces is empty for polygons with fewer than three points.
func (p *Polygon) Faces() [][]int {
	if len(p.Points) < 3 {
		return nil
	}
	face := make([]int, len(p.Points))
	for i := range face {
		face[i] = i
	}
	return [][]int{face}
}

func (p *Polygon) Edges() []Edge {
	if len(p.Points) < 2 {
		return nil
	}
	if len(p.Points) == 2 {
		return []Edge{{0, 1}}
	}
	edges := make([]Edge, len(p.Points))
	for i := range p.Points {
		edges[i] = Edge{i, (i + 1) % len(p.Points)}
	}
	return edges
}

func (p *Polygon) AABB() BBox {
	return BBoxOf(p.Points)
}

func (p *Polygon) Normal() mgl64.Vec3 {
	return FaceNormal(p.Points)
}
