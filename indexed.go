package sieview

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// IndexedBuffer keeps each vertex once and draws primitives through an index
// list. ItemSize is the number of indices per primitive: 3 for triangles, 2
// for lines and 0 when there is no index list (a point cloud).
type IndexedBuffer struct {
	Vertices []mgl32.Vec3
	Indices  []uint32
	ItemSize int
}

func (b IndexedBuffer) Primitive() Primitive {
	switch b.ItemSize {
	case 2:
		return Lines
	case 3:
		return Triangles
	}
	return Points
}

// PrimitiveCount is the number of primitives drawn by the buffer.
func (b IndexedBuffer) PrimitiveCount() int {
	if b.ItemSize == 0 {
		return len(b.Vertices)
	}
	return len(b.Indices) / b.ItemSize
}

// VertexArray returns the vertices as [x0, y0, z0, x1, ...].
func (b IndexedBuffer) VertexArray() []float32 {
	return flatten(b.Vertices)
}

// Flat expands the buffer into a non-indexed buffer with a uniform color.
// Indices are checked again since the buffer may have been built by hand.
func (b IndexedBuffer) Flat(color Color) (FlatBuffer, error) {
	c := color.Vec3()
	out := FlatBuffer{Primitive: b.Primitive()}
	if b.ItemSize == 0 {
		for _, v := range b.Vertices {
			out.Positions = append(out.Positions, v)
			out.Colors = append(out.Colors, c)
		}
		return out, nil
	}
	for n, i := range b.Indices {
		if int64(i) >= int64(len(b.Vertices)) {
			return FlatBuffer{}, errors.Wrapf(ErrIndexOutOfBounds, "index %d is %d with %d vertices", n, i, len(b.Vertices))
		}
		out.Positions = append(out.Positions, b.Vertices[i])
		out.Colors = append(out.Colors, c)
	}
	return out, nil
}

func toVec32(vertices []mgl64.Vec3) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(vertices))
	for i, v := range vertices {
		out[i] = vec32(v)
	}
	return out
}

func checkIndex(index, count int) (uint32, error) {
	if index < 0 || index >= count {
		return 0, errors.Wrapf(ErrIndexOutOfBounds, "index %d with %d vertices", index, count)
	}
	return uint32(index), nil
}

// VerticesAndFacesToIndexed triangulates faces over a shared vertex array.
// Triangles are emitted in face order.
func (t *Triangulator) VerticesAndFacesToIndexed(vertices []mgl64.Vec3, faces [][]int) (IndexedBuffer, error) {
	indices := make([]uint32, 0, len(faces)*3)
	for i, face := range faces {
		for _, v := range face {
			if _, err := checkIndex(v, len(vertices)); err != nil {
				return IndexedBuffer{}, errors.Wrapf(err, "face %d", i)
			}
		}
		tris, err := t.TriangulateFace(face, vertices)
		if err != nil {
			return IndexedBuffer{}, errors.Wrapf(err, "face %d", i)
		}
		for _, tri := range tris {
			indices = append(indices, uint32(tri[0]), uint32(tri[1]), uint32(tri[2]))
		}
	}
	return IndexedBuffer{Vertices: toVec32(vertices), Indices: indices, ItemSize: 3}, nil
}

func VerticesAndEdgesToIndexed(vertices []mgl64.Vec3, edges []Edge) (IndexedBuffer, error) {
	indices := make([]uint32, 0, len(edges)*2)
	for i, e := range edges {
		u, err := checkIndex(e[0], len(vertices))
		if err != nil {
			return IndexedBuffer{}, errors.Wrapf(err, "edge %d", i)
		}
		v, err := checkIndex(e[1], len(vertices))
		if err != nil {
			return IndexedBuffer{}, errors.Wrapf(err, "edge %d", i)
		}
		indices = append(indices, u, v)
	}
	return IndexedBuffer{Vertices: toVec32(vertices), Indices: indices, ItemSize: 2}, nil
}

func VerticesToPoints(vertices []mgl64.Vec3) IndexedBuffer {
	return IndexedBuffer{Vertices: toVec32(vertices)}
}

// ShapeToIndexed builds the indexed face buffer of a single shape.
func (t *Triangulator) ShapeToIndexed(shape Shape) (IndexedBuffer, error) {
	return t.VerticesAndFacesToIndexed(shape.Vertices(), shape.Faces())
}
