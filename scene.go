package sieview

import "github.com/pkg/errors"

// Renderable is one draw call worth of data produced by Scene.Draw.
type Renderable struct {
	Name   string
	Buffer FlatBuffer
	Labels []Dot
	Color  Color // label color
}

// SceneObject is something added to a Scene. Exactly one of the geometry
// fields is set.
type SceneObject struct {
	Name      string
	Color     Color
	ShowFaces bool
	ShowEdges bool

	shapes     []Shape
	faceColors []Color
	graph      *Graph
	dot        *Dot
}

// EdgeColor is the color used for the object's edges.
func (o *SceneObject) EdgeColor() Color {
	if o.graph != nil {
		return o.Color
	}
	return o.Color.Contrast()
}

func (o *SceneObject) AABB() BBox {
	b := EmptyBBox()
	for _, s := range o.shapes {
		b = b.Union(BBoxOf(s.Vertices()))
	}
	if o.graph != nil {
		b = b.Union(o.graph.AABB())
	}
	if o.dot != nil {
		b = b.Extend(o.dot.Point)
	}
	return b
}

func (o *SceneObject) faceColor(face int) Color {
	if face < len(o.faceColors) {
		return o.faceColors[face]
	}
	return o.Color
}

type Scene struct {
	Objects      []*SceneObject
	Grid         Grid
	ShowGrid     bool
	ShowAxes     bool
	AxesSize     float64
	Triangulator *Triangulator
}

func NewScene() *Scene {
	return &Scene{
		Grid:         NewGrid(),
		ShowGrid:     true,
		ShowAxes:     true,
		AxesSize:     0.5,
		Triangulator: NewTriangulator(),
	}
}

func (s *Scene) add(o *SceneObject) *SceneObject {
	s.Objects = append(s.Objects, o)
	return o
}

// AddMesh adds a mesh, drawing its per-face colors when it has them.
func (s *Scene) AddMesh(name string, m *Mesh, color Color) *SceneObject {
	return s.add(&SceneObject{
		Name:       name,
		Color:      color,
		ShowFaces:  true,
		ShowEdges:  true,
		shapes:     []Shape{NewMeshShape(m)},
		faceColors: append([]Color(nil), m.FaceColors...),
	})
}

func (s *Scene) AddShape(name string, shape Shape, color Color) *SceneObject {
	return s.AddShapes(name, []Shape{shape}, color)
}

// AddShapes adds a collection drawn with a single faces buffer and a single
// edges buffer.
func (s *Scene) AddShapes(name string, shapes []Shape, color Color) *SceneObject {
	return s.add(&SceneObject{
		Name:      name,
		Color:     color,
		ShowFaces: true,
		ShowEdges: true,
		shapes:    shapes,
	})
}

// AddGeometry adds shapes, meshes or any other MeshData as one object. A
// single *Mesh goes through AddMesh so its face colors are kept.
func (s *Scene) AddGeometry(name string, geometry []any, color Color) (*SceneObject, error) {
	if len(geometry) == 1 {
		if m, ok := geometry[0].(*Mesh); ok {
			return s.AddMesh(name, m, color), nil
		}
	}
	shapes := make([]Shape, len(geometry))
	for i, g := range geometry {
		shape, err := AsShape(g)
		if err != nil {
			return nil, errors.Wrapf(err, "%s item %d", name, i)
		}
		shapes[i] = shape
	}
	return s.AddShapes(name, shapes, color), nil
}

func (s *Scene) AddGraph(name string, g *Graph, color Color) *SceneObject {
	return s.add(&SceneObject{
		Name:      name,
		Color:     color,
		ShowEdges: true,
		graph:     g,
	})
}

func (s *Scene) AddDot(dot Dot, color Color) *SceneObject {
	return s.add(&SceneObject{
		Name:  dot.Text,
		Color: color,
		dot:   &dot,
	})
}

// Extents is the union of every object's bounding box.
func (s *Scene) Extents() BBox {
	b := EmptyBBox()
	for _, o := range s.Objects {
		b = b.Union(o.AABB())
	}
	return b
}

// Draw builds fresh buffers for the whole scene. Helpers come first so
// objects are painted over them.
func (s *Scene) Draw() ([]Renderable, error) {
	tri := s.Triangulator
	if tri == nil {
		tri = NewTriangulator()
	}

	var out []Renderable
	if s.ShowGrid {
		out = append(out, Renderable{Name: "grid", Buffer: s.Grid.Buffer()})
	}
	if s.ShowAxes {
		out = append(out, Renderable{Name: "axes", Buffer: AxesBuffer(s.AxesSize)})
	}

	for _, o := range s.Objects {
		rs, err := s.drawObject(tri, o)
		if err != nil {
			return nil, errors.Wrapf(err, "draw %q", o.Name)
		}
		out = append(out, rs...)
	}
	return out, nil
}

func (s *Scene) drawObject(tri *Triangulator, o *SceneObject) ([]Renderable, error) {
	var out []Renderable

	switch {
	case o.dot != nil:
		out = append(out, Renderable{Name: o.Name, Labels: []Dot{*o.dot}, Color: o.Color})

	case o.graph != nil:
		if o.ShowEdges {
			lines, err := NodesAndEdgesToIndexed(o.graph)
			if err != nil {
				return nil, err
			}
			flat, err := lines.Flat(o.EdgeColor())
			if err != nil {
				return nil, err
			}
			out = append(out, Renderable{Name: o.Name + ".edges", Buffer: flat})
		}
		points, err := NodesToPoints(o.graph).Flat(o.Color)
		if err != nil {
			return nil, err
		}
		out = append(out, Renderable{Name: o.Name + ".nodes", Buffer: points})

	default:
		if o.ShowFaces {
			var (
				faces FlatBuffer
				err   error
			)
			if len(o.faceColors) > 0 && len(o.shapes) == 1 {
				faces, err = tri.ShapeFacesBufferColored(o.shapes[0], o.faceColor)
			} else {
				faces, err = tri.ShapesToFacesBuffer(o.shapes, o.Color)
			}
			if err != nil {
				return nil, err
			}
			out = append(out, Renderable{Name: o.Name + ".faces", Buffer: faces})
		}
		if o.ShowEdges {
			edges, err := ShapesToEdgesBuffer(o.shapes, o.EdgeColor())
			if err != nil {
				return nil, err
			}
			out = append(out, Renderable{Name: o.Name + ".edges", Buffer: edges})
		}
	}
	return out, nil
}
