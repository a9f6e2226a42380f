package sieview

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridBuffer(t *testing.T) {
	g := NewGrid()
	buf := g.Buffer()

	assert.Equal(t, Lines, buf.Primitive)
	assert.Equal(t, 2*(g.Divisions+1), buf.PrimitiveCount())

	lo, hi := buf.Bounds()
	assert.Equal(t, mgl32.Vec3{-10, -10, 0}, lo)
	assert.Equal(t, mgl32.Vec3{10, 10, 0}, hi)

	var centre int
	for _, c := range buf.Colors {
		if c == Grey.Vec3() {
			centre++
		}
	}
	assert.Equal(t, 4, centre)

	assert.Equal(t, 0, Grid{}.Buffer().Len())
}

func TestAxesBuffer(t *testing.T) {
	buf := AxesBuffer(0.5)
	require.Equal(t, 6, buf.Len())
	assert.Equal(t, mgl32.Vec3{0.5, 0, 0}, buf.Positions[1])
	assert.Equal(t, mgl32.Vec3{0, 0.5, 0}, buf.Positions[3])
	assert.Equal(t, mgl32.Vec3{0, 0, 0.5}, buf.Positions[5])
	assert.Equal(t, Blue.Vec3(), buf.Colors[5])
}

func renderablesByName(rs []Renderable) map[string]Renderable {
	out := make(map[string]Renderable, len(rs))
	for _, r := range rs {
		out[r.Name] = r
	}
	return out
}

func TestSceneDraw(t *testing.T) {
	s := NewScene()
	s.AddShape("box", NewBox(2, 2, 2), MeshGrey)

	g := NewGraph()
	g.AddEdge(g.AddNode(mgl64.Vec3{0, 0, 0}), g.AddNode(mgl64.Vec3{5, 0, 0}))
	s.AddGraph("graph", g, Blue)
	s.AddDot(NewDot(mgl64.Vec3{0, 0, 3}, 42), Black)

	rs, err := s.Draw()
	require.NoError(t, err)

	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"grid", "axes", "box.faces", "box.edges", "graph.edges", "graph.nodes", "42"}, names)

	byName := renderablesByName(rs)
	assert.Equal(t, 12, byName["box.faces"].Buffer.PrimitiveCount())
	assert.Equal(t, 12, byName["box.edges"].Buffer.PrimitiveCount())
	assert.Equal(t, MeshGrey.Contrast().Vec3(), byName["box.edges"].Buffer.Colors[0])
	assert.Equal(t, Blue.Vec3(), byName["graph.edges"].Buffer.Colors[0])
	assert.Equal(t, Points, byName["graph.nodes"].Buffer.Primitive)
	assert.Equal(t, []Dot{{Point: mgl64.Vec3{0, 0, 3}, Text: "42"}}, byName["42"].Labels)

	ext := s.Extents()
	assert.Equal(t, mgl64.Vec3{-1, -1, -1}, ext.Min)
	assert.Equal(t, mgl64.Vec3{5, 1, 3}, ext.Max)
}

func TestSceneDrawHelpersOff(t *testing.T) {
	s := NewScene()
	s.ShowGrid = false
	s.ShowAxes = false
	obj := s.AddShape("box", NewBox(1, 1, 1), Red)
	obj.ShowEdges = false

	rs, err := s.Draw()
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, "box.faces", rs[0].Name)
}

func TestSceneMeshFaceColors(t *testing.T) {
	m, err := NewMeshFromVerticesAndFaces(
		[]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		[][]int{{0, 1, 2}, {0, 2, 3}},
	)
	require.NoError(t, err)
	m.SetFaceColor(1, Red, Green)

	s := NewScene()
	s.AddMesh("mesh", m, Blue)
	rs, err := s.Draw()
	require.NoError(t, err)

	faces := renderablesByName(rs)["mesh.faces"].Buffer
	require.Equal(t, 6, faces.Len())
	assert.Equal(t, Green.Vec3(), faces.Colors[0])
	assert.Equal(t, Red.Vec3(), faces.Colors[3])
}

func TestSceneAddGeometry(t *testing.T) {
	t.Run("Mixed shapes and meshes share buffers", func(t *testing.T) {
		s := NewScene()
		obj, err := s.AddGeometry("mixed", []any{NewBox(1, 1, 1), unitSquare(t)}, Blue)
		require.NoError(t, err)
		assert.Equal(t, "mixed", obj.Name)

		rs, err := s.Draw()
		require.NoError(t, err)
		byName := renderablesByName(rs)
		assert.Equal(t, 12+2, byName["mixed.faces"].Buffer.PrimitiveCount())
		assert.Equal(t, 12+4, byName["mixed.edges"].Buffer.PrimitiveCount())
	})

	t.Run("A single mesh keeps its face colors", func(t *testing.T) {
		m := unitSquare(t)
		m.SetFaceColor(0, Red, Green)

		s := NewScene()
		_, err := s.AddGeometry("mesh", []any{m}, Blue)
		require.NoError(t, err)
		rs, err := s.Draw()
		require.NoError(t, err)
		assert.Equal(t, Red.Vec3(), renderablesByName(rs)["mesh.faces"].Buffer.Colors[0])
	})

	t.Run("Unknown values are rejected", func(t *testing.T) {
		s := NewScene()
		_, err := s.AddGeometry("bad", []any{NewBox(1, 1, 1), "box"}, Blue)
		assert.True(t, errors.Is(err, ErrNotAShape))
		assert.Contains(t, err.Error(), "bad item 1")
		assert.Empty(t, s.Objects)
	})
}

func TestSceneDrawError(t *testing.T) {
	s := NewScene()
	s.AddShape("broken", rawShape{vertices: lShape, faces: [][]int{{0, 9, 1}}}, Red)

	_, err := s.Draw()
	assert.True(t, errors.Is(err, ErrInvalidFace))
	assert.Contains(t, err.Error(), `"broken"`)
}

func TestSceneEmptyExtents(t *testing.T) {
	assert.True(t, NewScene().Extents().IsEmpty())
}

func TestDot(t *testing.T) {
	d := NewDot(mgl64.Vec3{1, 0, 0}, 3.5)
	assert.Equal(t, "3.5", d.Text)

	d.Transform(mgl64.Translate3D(0, 2, 0))
	assert.Equal(t, mgl64.Vec3{1, 2, 0}, d.Point)
	assert.Contains(t, d.String(), `"3.5"`)
}

func TestPrimitiveShapes(t *testing.T) {
	box := NewBoxFromBBox(BBoxOf([]mgl64.Vec3{{0, 0, 0}, {2, 4, 6}}))
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, box.Center)
	assert.Equal(t, BBoxOf([]mgl64.Vec3{{0, 0, 0}, {2, 4, 6}}), box.AABB())

	verts := box.Vertices()
	centre := box.Center
	for i, face := range box.Faces() {
		points := make([]mgl64.Vec3, len(face))
		for k, v := range face {
			points[k] = verts[v]
		}
		outward := FaceCentroid(points).Sub(centre)
		assert.Greater(t, FaceNormal(points).Dot(outward), 0.0, "face %d points inwards", i)
	}

	assert.Len(t, NewPolygon(lShape).Edges(), 6)
	assert.Len(t, NewPolygon(lShape[:2]).Edges(), 1)
	assert.Nil(t, NewPolygon(lShape[:2]).Faces())
	assert.Nil(t, NewPolygon(nil).Edges())
	assert.True(t, NewPolygon(lShape).Normal().ApproxEqual(mgl64.Vec3{0, 0, 1}))
}
