package sieview

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Edge is an unordered pair of vertex indices.
type Edge [2]int

// Mesh is a polygon mesh: a vertex list and faces given as ordered lists of
// vertex indices. Faces may be triangles, quads or arbitrary n-gons.
type Mesh struct {
	Points []mgl64.Vec3
	Faces  [][]int

	// FaceColors holds per-face colors when the source provided them. Faces
	// past the end of the slice have no color of their own.
	FaceColors []Color

	pointIndex map[mgl64.Vec3]int
}

func NewMesh() *Mesh {
	return &Mesh{
		Points:     make([]mgl64.Vec3, 0, 100),
		pointIndex: make(map[mgl64.Vec3]int),
	}
}

// NewMeshFromVerticesAndFaces builds a mesh from raw arrays, validating every
// face against the vertex list.
func NewMeshFromVerticesAndFaces(vertices []mgl64.Vec3, faces [][]int) (*Mesh, error) {
	m := NewMesh()
	for _, v := range vertices {
		m.AddVertex(v)
	}
	for i, f := range faces {
		if _, err := m.AddFace(f); err != nil {
			return nil, errors.Wrapf(err, "face %d", i)
		}
	}
	return m, nil
}

// AddVertex appends a vertex, even if one with the same coordinates exists.
func (m *Mesh) AddVertex(p mgl64.Vec3) int {
	if m.pointIndex == nil {
		m.pointIndex = make(map[mgl64.Vec3]int)
	}
	m.Points = append(m.Points, p)
	index := len(m.Points) - 1
	if _, found := m.pointIndex[p]; !found {
		m.pointIndex[p] = index
	}
	return index
}

// AddPoint returns the index of an existing vertex with exactly these
// coordinates, or appends a new one.
func (m *Mesh) AddPoint(p mgl64.Vec3) int {
	if m.pointIndex == nil {
		m.rebuildIndex()
	}
	if index, found := m.pointIndex[p]; found {
		return index
	}
	return m.AddVertex(p)
}

func (m *Mesh) AddFace(indices []int) (int, error) {
	if len(indices) < 3 {
		return -1, errors.Wrapf(ErrInvalidFace, "%d vertices", len(indices))
	}
	for _, v := range indices {
		if v < 0 || v >= len(m.Points) {
			return -1, errors.Wrapf(ErrInvalidFace, "vertex %d of %d", v, len(m.Points))
		}
	}
	face := make([]int, len(indices))
	copy(face, indices)
	m.Faces = append(m.Faces, face)
	return len(m.Faces) - 1, nil
}

// AddFacePoints adds a face given by coordinates, sharing vertices with
// identical coordinates. Consecutive repeats (a triangle stored as a quad
// with a doubled corner) are collapsed.
func (m *Mesh) AddFacePoints(points []mgl64.Vec3) (int, error) {
	indices := make([]int, 0, len(points))
	for _, p := range points {
		index := m.AddPoint(p)
		if len(indices) > 0 && indices[len(indices)-1] == index {
			continue
		}
		indices = append(indices, index)
	}
	if len(indices) > 1 && indices[0] == indices[len(indices)-1] {
		indices = indices[:len(indices)-1]
	}
	return m.AddFace(indices)
}

// SetFaceColor sets the color of one face, filling the other faces with
// fallback if no colors were set so far.
func (m *Mesh) SetFaceColor(face int, c Color, fallback Color) {
	for len(m.FaceColors) < len(m.Faces) {
		m.FaceColors = append(m.FaceColors, fallback)
	}
	m.FaceColors[face] = c
}

func (m *Mesh) VertexCount() int {
	return len(m.Points)
}

func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// VertexXYZ returns a copy of the vertex coordinates.
func (m *Mesh) VertexXYZ() []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(m.Points))
	copy(out, m.Points)
	return out
}

// FaceVertexLists returns a copy of the faces.
func (m *Mesh) FaceVertexLists() [][]int {
	out := make([][]int, len(m.Faces))
	for i, f := range m.Faces {
		out[i] = append([]int(nil), f...)
	}
	return out
}

// EdgeList returns every edge of the mesh once, in the order the edges are
// first met while walking the face boundaries.
func (m *Mesh) EdgeList() []Edge {
	seen := make(map[Edge]struct{})
	edges := make([]Edge, 0, len(m.Faces)*2)
	for _, face := range m.Faces {
		for i, u := range face {
			v := face[(i+1)%len(face)]
			key := Edge{u, v}
			if v < u {
				key = Edge{v, u}
			}
			if _, found := seen[key]; found {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, Edge{u, v})
		}
	}
	return edges
}

func (m *Mesh) AABB() BBox {
	return BBoxOf(m.Points)
}

// Centre moves all points so that the center of the bounding box is at the origin.
func (m *Mesh) Centre() {
	if len(m.Points) == 0 {
		return
	}
	c := m.AABB().Center()
	m.transform(func(p mgl64.Vec3) mgl64.Vec3 { return p.Sub(c) })
}

func (m *Mesh) Scale(scale float64) {
	m.transform(func(p mgl64.Vec3) mgl64.Vec3 { return p.Mul(scale) })
}

func (m *Mesh) transform(fn func(mgl64.Vec3) mgl64.Vec3) {
	for i := range m.Points {
		m.Points[i] = fn(m.Points[i])
	}
	m.rebuildIndex()
}

func (m *Mesh) rebuildIndex() {
	m.pointIndex = make(map[mgl64.Vec3]int, len(m.Points))
	for i, p := range m.Points {
		if _, found := m.pointIndex[p]; !found {
			m.pointIndex[p] = i
		}
	}
}

// Copy must also duplicate the pointIndex map.
func (m *Mesh) Copy() *Mesh {
	newPointIndex := make(map[mgl64.Vec3]int, len(m.pointIndex))
	for key, value := range m.pointIndex {
		newPointIndex[key] = value
	}

	return &Mesh{
		Points:     append([]mgl64.Vec3(nil), m.Points...),
		Faces:      m.FaceVertexLists(),
		FaceColors: append([]Color(nil), m.FaceColors...),
		pointIndex: newPointIndex,
	}
}
