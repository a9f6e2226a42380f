package sieview

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Primitive is how a buffer's vertices are grouped when drawn.
type Primitive int

const (
	Points Primitive = iota
	Lines
	Triangles
)

func (p Primitive) String() string {
	switch p {
	case Points:
		return "points"
	case Lines:
		return "lines"
	case Triangles:
		return "triangles"
	}
	return "unknown"
}

// Arity is the number of vertices per primitive.
func (p Primitive) Arity() int {
	switch p {
	case Lines:
		return 2
	case Triangles:
		return 3
	}
	return 1
}

// FlatBuffer is a non-indexed draw buffer: one position and one color per
// vertex occurrence.
type FlatBuffer struct {
	Primitive Primitive
	Positions []mgl32.Vec3
	Colors    []mgl32.Vec3
}

func (b *FlatBuffer) add(p mgl64.Vec3, c mgl32.Vec3) {
	b.Positions = append(b.Positions, vec32(p))
	b.Colors = append(b.Colors, c)
}

// Append adds the contents of o to the end of b.
func (b *FlatBuffer) Append(o FlatBuffer) {
	b.Positions = append(b.Positions, o.Positions...)
	b.Colors = append(b.Colors, o.Colors...)
}

func (b FlatBuffer) Len() int {
	return len(b.Positions)
}

// PrimitiveCount is the number of segments or triangles in the buffer.
func (b FlatBuffer) PrimitiveCount() int {
	return len(b.Positions) / b.Primitive.Arity()
}

// PositionArray returns the positions as [x0, y0, z0, x1, ...].
func (b FlatBuffer) PositionArray() []float32 {
	return flatten(b.Positions)
}

func (b FlatBuffer) ColorArray() []float32 {
	return flatten(b.Colors)
}

// Bounds returns the min and max corner of the positions. Both are zero for
// an empty buffer.
func (b FlatBuffer) Bounds() (lo, hi mgl32.Vec3) {
	if len(b.Positions) == 0 {
		return
	}
	lo = mgl32.Vec3{math32.Inf(1), math32.Inf(1), math32.Inf(1)}
	hi = mgl32.Vec3{math32.Inf(-1), math32.Inf(-1), math32.Inf(-1)}
	for _, p := range b.Positions {
		for i := 0; i < 3; i++ {
			lo[i] = math32.Min(lo[i], p[i])
			hi[i] = math32.Max(hi[i], p[i])
		}
	}
	return
}

func flatten(vs []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

// ShapeEdgesBuffer emits both end points of every edge of shape, all in the
// same color.
func ShapeEdgesBuffer(shape Shape, color Color) (FlatBuffer, error) {
	vertices := shape.Vertices()
	edges := shape.Edges()
	c := color.Vec3()

	buf := FlatBuffer{
		Primitive: Lines,
		Positions: make([]mgl32.Vec3, 0, len(edges)*2),
		Colors:    make([]mgl32.Vec3, 0, len(edges)*2),
	}
	for i, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= len(vertices) || v < 0 || v >= len(vertices) {
			return FlatBuffer{}, errors.Wrapf(ErrIndexOutOfBounds, "edge %d (%d, %d) with %d vertices", i, u, v, len(vertices))
		}
		buf.add(vertices[u], c)
		buf.add(vertices[v], c)
	}
	return buf, nil
}

// ShapeFacesBuffer triangulates every face of shape and emits the three
// corners of each triangle, all in the same color.
func (t *Triangulator) ShapeFacesBuffer(shape Shape, color Color) (FlatBuffer, error) {
	c := color.Vec3()
	return t.facesBuffer(shape, func(int) mgl32.Vec3 { return c })
}

// ShapeFacesBufferColored is ShapeFacesBuffer with one color per face.
func (t *Triangulator) ShapeFacesBufferColored(shape Shape, faceColor func(face int) Color) (FlatBuffer, error) {
	return t.facesBuffer(shape, func(face int) mgl32.Vec3 { return faceColor(face).Vec3() })
}

func (t *Triangulator) facesBuffer(shape Shape, faceColor func(int) mgl32.Vec3) (FlatBuffer, error) {
	vertices := shape.Vertices()

	buf := FlatBuffer{Primitive: Triangles}
	for i, face := range shape.Faces() {
		tris, err := t.TriangulateFace(face, vertices)
		if err != nil {
			return FlatBuffer{}, errors.Wrapf(err, "face %d", i)
		}
		c := faceColor(i)
		for _, tri := range tris {
			buf.add(vertices[tri[0]], c)
			buf.add(vertices[tri[1]], c)
			buf.add(vertices[tri[2]], c)
		}
	}
	return buf, nil
}

// BufferMode selects which part of the shapes is turned into a buffer.
type BufferMode int

const (
	EdgesMode BufferMode = iota
	FacesMode
)

// ShapesToEdgesBuffer concatenates the edge buffers of shapes in order.
func ShapesToEdgesBuffer(shapes []Shape, color Color) (FlatBuffer, error) {
	return shapesToBuffer(shapes, Lines, func(s Shape) (FlatBuffer, error) {
		return ShapeEdgesBuffer(s, color)
	})
}

// ShapesToFacesBuffer concatenates the face buffers of shapes in order.
func (t *Triangulator) ShapesToFacesBuffer(shapes []Shape, color Color) (FlatBuffer, error) {
	return shapesToBuffer(shapes, Triangles, func(s Shape) (FlatBuffer, error) {
		return t.ShapeFacesBuffer(s, color)
	})
}

func (t *Triangulator) ShapesToBuffer(shapes []Shape, color Color, mode BufferMode) (FlatBuffer, error) {
	switch mode {
	case EdgesMode:
		return ShapesToEdgesBuffer(shapes, color)
	case FacesMode:
		return t.ShapesToFacesBuffer(shapes, color)
	}
	return FlatBuffer{}, errors.Errorf("unknown buffer mode %d", mode)
}

func shapesToBuffer(shapes []Shape, primitive Primitive, build func(Shape) (FlatBuffer, error)) (FlatBuffer, error) {
	out := FlatBuffer{
		Primitive: primitive,
		Positions: []mgl32.Vec3{},
		Colors:    []mgl32.Vec3{},
	}
	for i, s := range shapes {
		buf, err := build(s)
		if err != nil {
			return FlatBuffer{}, errors.Wrapf(err, "shape %d", i)
		}
		out.Append(buf)
	}
	return out, nil
}
