package project

import "github.com/go-gl/mathgl/mgl64"

// In view space the camera looks down -Z, so a point is in front of the near
// plane when -z >= near.
func inFront(p mgl64.Vec3, near float64) bool {
	return -p[2] >= near
}

// intersectNearPlane returns the point where segment p1-p2 crosses the near
// plane. A segment parallel to the plane returns p1.
func intersectNearPlane(p1, p2 mgl64.Vec3, near float64) mgl64.Vec3 {
	dz := p2[2] - p1[2]
	if dz == 0 {
		return p1
	}
	t := (-near - p1[2]) / dz
	return p1.Add(p2.Sub(p1).Mul(t))
}

// ClipPolygonNear clips a view space polygon against the near plane. The
// result is empty when the whole polygon is behind it.
func ClipPolygonNear(poly []mgl64.Vec3, near float64) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, 0, len(poly)+1)
	if len(poly) == 0 {
		return out
	}

	prev := poly[len(poly)-1]
	prevIn := inFront(prev, near)
	for _, cur := range poly {
		curIn := inFront(cur, near)
		switch {
		case curIn && prevIn:
			out = append(out, cur)
		case curIn && !prevIn:
			out = append(out, intersectNearPlane(prev, cur, near), cur)
		case !curIn && prevIn:
			out = append(out, intersectNearPlane(prev, cur, near))
		}
		prev, prevIn = cur, curIn
	}
	return out
}

// ClipSegmentNear clips a view space segment against the near plane.
func ClipSegmentNear(a, b mgl64.Vec3, near float64) (mgl64.Vec3, mgl64.Vec3, bool) {
	aIn, bIn := inFront(a, near), inFront(b, near)
	switch {
	case aIn && bIn:
		return a, b, true
	case aIn:
		return a, intersectNearPlane(a, b, near), true
	case bIn:
		return intersectNearPlane(a, b, near), b, true
	}
	return a, b, false
}
