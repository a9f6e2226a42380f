package sieview

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingMesh struct {
	*Mesh
	vertexCalls, edgeCalls, faceCalls int
}

func (m *countingMesh) VertexXYZ() []mgl64.Vec3 {
	m.vertexCalls++
	return m.Mesh.VertexXYZ()
}

func (m *countingMesh) EdgeList() []Edge {
	m.edgeCalls++
	return m.Mesh.EdgeList()
}

func (m *countingMesh) FaceVertexLists() [][]int {
	m.faceCalls++
	return m.Mesh.FaceVertexLists()
}

func TestMeshShapeComputesEachViewOnce(t *testing.T) {
	host := &countingMesh{Mesh: unitSquare(t)}
	shape := NewMeshShape(host)

	assert.Equal(t, 0, host.vertexCalls+host.edgeCalls+host.faceCalls)

	for i := 0; i < 3; i++ {
		assert.Len(t, shape.Vertices(), 4)
		assert.Len(t, shape.Edges(), 4)
		assert.Len(t, shape.Faces(), 1)
	}
	assert.Equal(t, 1, host.vertexCalls)
	assert.Equal(t, 1, host.edgeCalls)
	assert.Equal(t, 1, host.faceCalls)

	_, err := NewTriangulator().ShapeFacesBuffer(shape, Red)
	assert.NoError(t, err)
	_, err = ShapeEdgesBuffer(shape, Red)
	assert.NoError(t, err)
	assert.Equal(t, 1, host.vertexCalls)
}

func TestMeshShapeIsLazyPerView(t *testing.T) {
	host := &countingMesh{Mesh: unitSquare(t)}
	shape := NewMeshShape(host)

	shape.Edges()
	assert.Equal(t, 0, host.vertexCalls)
	assert.Equal(t, 1, host.edgeCalls)
	assert.Equal(t, 0, host.faceCalls)
}

func TestMeshShapeKeepsSnapshot(t *testing.T) {
	m := unitSquare(t)
	shape := NewMeshShape(m)
	assert.Len(t, shape.Vertices(), 4)

	m.AddVertex(mgl64.Vec3{5, 5, 5})
	assert.Len(t, shape.Vertices(), 4)
	assert.Len(t, NewMeshShape(m).Vertices(), 5)
}

func TestMeshShapeEmptyMesh(t *testing.T) {
	shape := NewMeshShape(NewMesh())
	assert.Empty(t, shape.Vertices())
	assert.Empty(t, shape.Edges())
	assert.Empty(t, shape.Faces())

	buf, err := NewTriangulator().ShapeFacesBuffer(shape, Red)
	assert.NoError(t, err)
	assert.Equal(t, 0, buf.Len())
}

func TestAsShape(t *testing.T) {
	t.Run("Shapes pass through", func(t *testing.T) {
		box := NewBox(1, 2, 3)
		shape, err := AsShape(box)
		require.NoError(t, err)
		assert.Same(t, box, shape)

		wrapped := NewMeshShape(NewMesh())
		shape, err = AsShape(wrapped)
		require.NoError(t, err)
		assert.Same(t, wrapped, shape)
	})

	t.Run("Meshes are wrapped", func(t *testing.T) {
		m := unitSquare(t)
		shape, err := AsShape(m)
		require.NoError(t, err)
		require.IsType(t, &MeshShape{}, shape)
		assert.Equal(t, m.Points, shape.Vertices())
		assert.Equal(t, m.Faces, shape.Faces())
	})

	t.Run("Other values are rejected", func(t *testing.T) {
		for _, v := range []any{nil, 42, []mgl64.Vec3{{0, 0, 0}}} {
			_, err := AsShape(v)
			assert.True(t, errors.Is(err, ErrNotAShape), "%T: %v", v, err)
		}
	})
}
