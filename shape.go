package sieview

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Shape is anything that can be drawn as vertices, edges and faces. Face and
// edge entries index into Vertices.
type Shape interface {
	Vertices() []mgl64.Vec3
	Edges() []Edge
	Faces() [][]int
}

// MeshData is the host side of a mesh: raw access that may be expensive to
// compute on every call.
type MeshData interface {
	VertexXYZ() []mgl64.Vec3
	EdgeList() []Edge
	FaceVertexLists() [][]int
}

// MeshShape exposes a MeshData as a Shape, computing each view on first use
// and keeping it for the lifetime of the MeshShape. It does not notice
// changes to the underlying mesh; build a new MeshShape after mutating it.
type MeshShape struct {
	mesh MeshData

	vertices     []mgl64.Vec3
	edges        []Edge
	faces        [][]int
	haveVertices bool
	haveEdges    bool
	haveFaces    bool
}

func NewMeshShape(mesh MeshData) *MeshShape {
	return &MeshShape{mesh: mesh}
}

func (s *MeshShape) Vertices() []mgl64.Vec3 {
	if !s.haveVertices {
		s.vertices = s.mesh.VertexXYZ()
		s.haveVertices = true
	}
	return s.vertices
}

func (s *MeshShape) Edges() []Edge {
	if !s.haveEdges {
		s.edges = s.mesh.EdgeList()
		s.haveEdges = true
	}
	return s.edges
}

func (s *MeshShape) Faces() [][]int {
	if !s.haveFaces {
		s.faces = s.mesh.FaceVertexLists()
		s.haveFaces = true
	}
	return s.faces
}

// AsShape returns v unchanged if it already is a Shape and wraps a MeshData
// in a MeshShape.
func AsShape(v any) (Shape, error) {
	switch g := v.(type) {
	case Shape:
		return g, nil
	case MeshData:
		return NewMeshShape(g), nil
	}
	return nil, errors.Wrapf(ErrNotAShape, "%T", v)
}
