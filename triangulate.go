package sieview

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/rclancey/earcut"
)

// Triangle holds three vertex indices.
type Triangle [3]int

// EarClipper triangulates a simple polygon. The returned triples index into
// points.
type EarClipper interface {
	EarClip(points []mgl64.Vec3) ([]Triangle, error)
}

// EarClipperFunc adapts a plain function to EarClipper.
type EarClipperFunc func(points []mgl64.Vec3) ([]Triangle, error)

func (f EarClipperFunc) EarClip(points []mgl64.Vec3) ([]Triangle, error) {
	return f(points)
}

// EarcutClipper triangulates with the earcut algorithm after projecting the
// polygon onto its own plane.
type EarcutClipper struct{}

func (EarcutClipper) EarClip(points []mgl64.Vec3) ([]Triangle, error) {
	if len(points) < 3 {
		return nil, nil
	}

	coords := projectToPlane(points)
	indices, err := earcut.Earcut(coords, nil, 2)
	if err != nil {
		return nil, errors.Wrapf(err, "earcut %d-vertex polygon", len(points))
	}
	if len(indices)%3 != 0 {
		return nil, errors.Errorf("earcut returned %d indices, not divisible by 3", len(indices))
	}

	triangles := make([]Triangle, 0, len(indices)/3)
	for i := 0; i < len(indices); i += 3 {
		triangles = append(triangles, Triangle{indices[i], indices[i+1], indices[i+2]})
	}
	return triangles, nil
}

// projectToPlane flattens points to [x0, y0, x1, y1, ...] in a basis of the
// polygon's plane, keeping the winding as seen from the normal side.
func projectToPlane(points []mgl64.Vec3) []float64 {
	n := FaceNormal(points)

	ref := mgl64.Vec3{1, 0, 0}
	if abs(n[0]) > 0.9 {
		ref = mgl64.Vec3{0, 1, 0}
	}
	u := ref.Sub(n.Mul(ref.Dot(n))).Normalize()
	v := n.Cross(u)

	origin := points[0]
	coords := make([]float64, len(points)*2)
	for i, p := range points {
		d := p.Sub(origin)
		coords[i*2] = d.Dot(u)
		coords[i*2+1] = d.Dot(v)
	}
	return coords
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Triangulator splits faces into triangles. Triangles are passed through,
// quads are always split along the v0-v2 diagonal and larger faces go to the
// Clipper.
//
// The quad split ignores which diagonal is shorter, so strongly skewed or
// non-planar quads may fold the wrong way. Output stays stable for callers
// comparing buffers.
type Triangulator struct {
	Clipper EarClipper
}

func NewTriangulator() *Triangulator {
	return &Triangulator{Clipper: EarcutClipper{}}
}

// TriangulateFace returns triangles over the original vertex indices of face.
func (t *Triangulator) TriangulateFace(face []int, vertices []mgl64.Vec3) ([]Triangle, error) {
	if len(face) < 3 {
		return nil, errors.Wrapf(ErrInvalidFace, "%d vertices", len(face))
	}
	for _, v := range face {
		if v < 0 || v >= len(vertices) {
			return nil, errors.Wrapf(ErrInvalidFace, "vertex %d of %d", v, len(vertices))
		}
	}

	switch len(face) {
	case 3:
		return []Triangle{{face[0], face[1], face[2]}}, nil
	case 4:
		return []Triangle{
			{face[0], face[1], face[2]},
			{face[0], face[2], face[3]},
		}, nil
	}

	points := make([]mgl64.Vec3, len(face))
	for i, v := range face {
		points[i] = vertices[v]
	}

	clipper := t.Clipper
	if clipper == nil {
		clipper = EarcutClipper{}
	}
	ears, err := clipper.EarClip(points)
	if err != nil {
		return nil, errors.Wrapf(err, "triangulate %d-gon", len(face))
	}

	triangles := make([]Triangle, 0, len(ears))
	for _, ear := range ears {
		var tri Triangle
		for k, local := range ear {
			if local < 0 || local >= len(face) {
				return nil, errors.Wrapf(ErrInvalidFace, "ear index %d for %d-gon", local, len(face))
			}
			tri[k] = face[local]
		}
		triangles = append(triangles, tri)
	}
	return triangles, nil
}

// TriangulateFaces triangulates every face in order.
func (t *Triangulator) TriangulateFaces(faces [][]int, vertices []mgl64.Vec3) ([]Triangle, error) {
	var triangles []Triangle
	for i, face := range faces {
		tris, err := t.TriangulateFace(face, vertices)
		if err != nil {
			return nil, errors.Wrapf(err, "face %d", i)
		}
		triangles = append(triangles, tris...)
	}
	return triangles, nil
}
