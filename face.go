package sieview

import "github.com/go-gl/mathgl/mgl64"

// FaceNormal returns the unit normal of a polygon using Newell's method, which
// stays stable for concave and slightly non-planar faces. Degenerate polygons
// get +Z.
func FaceNormal(points []mgl64.Vec3) mgl64.Vec3 {
	var n mgl64.Vec3
	for i, p := range points {
		q := points[(i+1)%len(points)]
		n[0] += (p[1] - q[1]) * (p[2] + q[2])
		n[1] += (p[2] - q[2]) * (p[0] + q[0])
		n[2] += (p[0] - q[0]) * (p[1] + q[1])
	}
	if n.Len() == 0 {
		return mgl64.Vec3{0, 0, 1}
	}
	return n.Normalize()
}

// FaceArea is the area of a planar polygon in 3D.
func FaceArea(points []mgl64.Vec3) float64 {
	var sum mgl64.Vec3
	for i, p := range points {
		sum = sum.Add(p.Cross(points[(i+1)%len(points)]))
	}
	return sum.Len() / 2
}

// get midpoint of the face
func FaceCentroid(points []mgl64.Vec3) mgl64.Vec3 {
	if len(points) == 0 {
		return mgl64.Vec3{}
	}
	var sum mgl64.Vec3
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(points)))
}
