package sieview

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCamera(t *testing.T) {
	cam, err := NewCamera(Perspective)
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{0, -10, 5}, cam.Position)
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, cam.Up)
	assert.Equal(t, 50.0, cam.Fov)
	assert.Equal(t, 0.1, cam.Near)
	assert.Equal(t, 10000.0, cam.Far)

	_, err = NewCamera(Viewport("side"))
	assert.True(t, errors.Is(err, ErrUnknownViewport))
}

func TestZoomExtents(t *testing.T) {
	box := BBoxOf([]mgl64.Vec3{{0, 0, 0}, {2, 4, 6}})

	testCases := []struct {
		name     string
		viewport Viewport
		position mgl64.Vec3
		zoom     float64
	}{
		{
			name:     "Perspective backs off along -Y and up",
			viewport: Perspective,
			position: mgl64.Vec3{1, -4, 6},
			zoom:     1,
		},
		{
			name:     "Top sits above and scales to the window",
			viewport: Top,
			position: mgl64.Vec3{1, 2, 9},
			zoom:     0.75 * 580 / 6,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cam, err := NewCamera(tc.viewport)
			require.NoError(t, err)
			cam.Zoom = 3

			require.NoError(t, cam.ZoomExtents(box, 1100, 580))
			assert.True(t, cam.Position.ApproxEqual(tc.position), "position %v", cam.Position)
			assert.Equal(t, mgl64.Vec3{1, 2, 3}, cam.Target)
			assert.InDelta(t, tc.zoom, cam.Zoom, float64EqualityThreshold)
		})
	}
}

func TestZoomExtentsNoOp(t *testing.T) {
	for _, box := range []BBox{EmptyBBox(), BBoxOf([]mgl64.Vec3{{1, 1, 1}})} {
		cam, err := NewCamera(Perspective)
		require.NoError(t, err)
		before := *cam

		require.NoError(t, cam.ZoomExtents(box, 100, 100))
		assert.Equal(t, before, *cam)
	}
}

func TestZoomInOut(t *testing.T) {
	cam, err := NewCamera(Top)
	require.NoError(t, err)

	cam.ZoomIn()
	cam.ZoomIn()
	assert.Equal(t, 4.0, cam.Zoom)
	cam.ZoomOut()
	assert.Equal(t, 2.0, cam.Zoom)
}

func assertVecNear(t *testing.T, expected, actual mgl64.Vec3, delta float64) {
	t.Helper()
	assert.LessOrEqual(t, expected.Sub(actual).Len(), delta, "got %v, want %v", actual, expected)
}

func TestOrbit(t *testing.T) {
	cam, err := NewCamera(Perspective)
	require.NoError(t, err)
	start := cam.Position
	dist := start.Sub(cam.Target).Len()

	cam.Orbit(math.Pi/2, 0)
	assert.InDelta(t, dist, cam.Position.Sub(cam.Target).Len(), 1e-9)
	assert.InDelta(t, start.Z(), cam.Position.Z(), 1e-9)
	assert.InDelta(t, 10, cam.Position.X(), 1e-9)

	cam.Orbit(3*math.Pi/2, 0)
	assertVecNear(t, start, cam.Position, 1e-9)

	cam.Orbit(0, 0.3)
	assert.InDelta(t, dist, cam.Position.Sub(cam.Target).Len(), 1e-9)
	assert.Greater(t, start.Sub(cam.Position).Len(), 1e-6)
}

func TestOrbitStopsAtPole(t *testing.T) {
	for _, elevation := range []float64{math.Pi / 2, -math.Pi / 2} {
		cam, err := NewCamera(Perspective)
		require.NoError(t, err)
		cam.Position = mgl64.Vec3{0, -10, 0}

		cam.Orbit(0, elevation)
		assertVecNear(t, mgl64.Vec3{0, -10, 0}, cam.Position, 1e-9)
	}
}

func TestCameraMatrices(t *testing.T) {
	cam, err := NewCamera(Perspective)
	require.NoError(t, err)

	target := mgl64.TransformCoordinate(cam.Target, cam.View())
	assert.InDelta(t, 0, target.X(), 1e-9)
	assert.InDelta(t, 0, target.Y(), 1e-9)
	assert.InDelta(t, -cam.Position.Len(), target.Z(), 1e-9)

	clip := mgl64.TransformCoordinate(target, cam.Projection(800, 600))
	assert.InDelta(t, 0, clip.X(), 1e-9)
	assert.InDelta(t, 0, clip.Y(), 1e-9)
	assert.True(t, clip.Z() > -1 && clip.Z() < 1)

	top, err := NewCamera(Top)
	require.NoError(t, err)
	top.Zoom = 2
	p := mgl64.TransformCoordinate(mgl64.Vec3{100, 0, 0}, top.Projection(800, 600))
	assert.InDelta(t, 0.5, p.X(), 1e-9)
}
