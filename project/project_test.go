package project

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smasonuk/sieview"
)

const float64EqualityThreshold = 1e-6

func assertPointsNear(t *testing.T, expected, actual []mgl64.Vec3) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.True(t, expected[i].ApproxEqualThreshold(actual[i], float64EqualityThreshold),
			"point %d: got %v, want %v", i, actual[i], expected[i])
	}
}

func TestClipPolygonNear(t *testing.T) {
	const near = 10
	testCases := []struct {
		name     string
		input    []mgl64.Vec3
		expected []mgl64.Vec3
	}{
		{
			name:     "Polygon fully in front of near plane",
			input:    []mgl64.Vec3{{0, 0, -20}, {1, 0, -20}, {0, 1, -20}},
			expected: []mgl64.Vec3{{0, 0, -20}, {1, 0, -20}, {0, 1, -20}},
		},
		{
			name:     "Polygon fully behind near plane",
			input:    []mgl64.Vec3{{0, 0, -5}, {1, 0, -5}, {0, 1, -5}},
			expected: []mgl64.Vec3{},
		},
		{
			name:     "Polygon with one point in front",
			input:    []mgl64.Vec3{{0, 0, -15}, {0, 1, -5}, {1, 0, -5}},
			expected: []mgl64.Vec3{{0.5, 0, -10}, {0, 0, -15}, {0, 0.5, -10}},
		},
		{
			name:     "Polygon with two points in front",
			input:    []mgl64.Vec3{{0, 0, -5}, {0, 1, -15}, {1, 0, -15}},
			expected: []mgl64.Vec3{{0.5, 0, -10}, {0, 0.5, -10}, {0, 1, -15}, {1, 0, -15}},
		},
		{
			name:     "Polygon on the near plane",
			input:    []mgl64.Vec3{{0, 0, -10}, {1, 0, -10}, {0, 1, -10}},
			expected: []mgl64.Vec3{{0, 0, -10}, {1, 0, -10}, {0, 1, -10}},
		},
		{
			name:     "Empty polygon",
			input:    nil,
			expected: []mgl64.Vec3{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assertPointsNear(t, tc.expected, ClipPolygonNear(tc.input, near))
		})
	}
}

func TestIntersectNearPlane(t *testing.T) {
	testCases := []struct {
		name     string
		p1, p2   mgl64.Vec3
		expected mgl64.Vec3
	}{
		{
			name:     "Standard intersection",
			p1:       mgl64.Vec3{0, 0, 0},
			p2:       mgl64.Vec3{0, 0, -20},
			expected: mgl64.Vec3{0, 0, -10},
		},
		{
			name:     "Intersection with non-zero X and Y",
			p1:       mgl64.Vec3{10, 20, 0},
			p2:       mgl64.Vec3{30, 40, -20},
			expected: mgl64.Vec3{20, 30, -10},
		},
		{
			name:     "Line parallel to near plane",
			p1:       mgl64.Vec3{10, 10, -5},
			p2:       mgl64.Vec3{20, 20, -5},
			expected: mgl64.Vec3{10, 10, -5},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := intersectNearPlane(tc.p1, tc.p2, 10)
			assert.True(t, got.ApproxEqualThreshold(tc.expected, float64EqualityThreshold), "got %v", got)
		})
	}
}

func TestClipSegmentNear(t *testing.T) {
	a, b, ok := ClipSegmentNear(mgl64.Vec3{0, 0, -20}, mgl64.Vec3{0, 0, 0}, 10)
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{0, 0, -20}, a)
	assert.True(t, b.ApproxEqual(mgl64.Vec3{0, 0, -10}))

	a, b, ok = ClipSegmentNear(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{4, 0, -20}, 10)
	require.True(t, ok)
	assert.True(t, a.ApproxEqual(mgl64.Vec3{2, 0, -10}))
	assert.Equal(t, mgl64.Vec3{4, 0, -20}, b)

	_, _, ok = ClipSegmentNear(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -5}, 10)
	assert.False(t, ok)
}

func TestCoordinateConversion(t *testing.T) {
	for _, viewport := range []sieview.Viewport{sieview.Perspective, sieview.Top} {
		cam, err := sieview.NewCamera(viewport)
		require.NoError(t, err)
		p := New(cam, 800, 600)

		testPoints := []struct {
			name string
			v    mgl64.Vec3
		}{
			{"Center point", mgl64.Vec3{0, 0, -50}},
			{"Arbitrary point", mgl64.Vec3{15, -25, -75}},
			{"Point with large depth", mgl64.Vec3{100, 200, -1000}},
			{"Point with small depth", mgl64.Vec3{1, 2, -0.5}},
		}

		for _, tp := range testPoints {
			t.Run(string(viewport)+" "+tp.name, func(t *testing.T) {
				s := p.ViewToScreen(tp.v)
				back := p.ScreenToView(s, -tp.v.Z())
				assert.True(t, back.ApproxEqualThreshold(tp.v, float64EqualityThreshold),
					"original %v, after converting back %v", tp.v, back)
			})
		}
	}
}

func TestProjectCentre(t *testing.T) {
	cam, err := sieview.NewCamera(sieview.Perspective)
	require.NoError(t, err)
	p := New(cam, 800, 600)

	s, ok := p.Project(cam.Target)
	require.True(t, ok)
	assert.InDelta(t, 400, s.X(), 1e-6)
	assert.InDelta(t, 300, s.Y(), 1e-6)

	// above the target appears higher on screen
	s, ok = p.Project(mgl64.Vec3{0, 0, 1})
	require.True(t, ok)
	assert.Less(t, s.Y(), 300.0)

	_, ok = p.Project(cam.Position.Mul(2))
	assert.False(t, ok)
}

func TestShade(t *testing.T) {
	grey := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	testCases := []struct {
		name     string
		c        color.RGBA
		centre   mgl64.Vec3
		normal   mgl64.Vec3
		expected color.RGBA
	}{
		{
			name:     "Head-on lighting, in spotlight center",
			c:        grey,
			centre:   mgl64.Vec3{0, 0, -10},
			normal:   mgl64.Vec3{0, 0, 1},
			expected: grey,
		},
		{
			name:     "Facing away from light",
			c:        grey,
			centre:   mgl64.Vec3{0, 0, -10},
			normal:   mgl64.Vec3{0, 0, -1},
			expected: color.RGBA{R: 116, G: 116, B: 116, A: 255},
		},
		{
			name:     "90 degrees to light",
			c:        grey,
			centre:   mgl64.Vec3{10, 0, -10},
			normal:   mgl64.Vec3{1, 0, 0},
			expected: color.RGBA{R: 116, G: 116, B: 116, A: 255},
		},
		{
			name:     "45 degrees to light, off spotlight center",
			c:        grey,
			centre:   mgl64.Vec3{10, 0, -10},
			normal:   mgl64.Vec3{0.70710678118, 0, 0.70710678118},
			expected: color.RGBA{R: 117, G: 117, B: 117, A: 255},
		},
		{
			name:     "Color clamping low",
			c:        color.RGBA{R: 10, G: 10, B: 10, A: 255},
			centre:   mgl64.Vec3{0, 0, -10},
			normal:   mgl64.Vec3{0, 0, -1},
			expected: color.RGBA{R: 7, G: 7, B: 7, A: 255},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Shade(tc.c, tc.centre, tc.normal))
		})
	}
}

func TestFrameOrdersFarthestFirst(t *testing.T) {
	cam, err := sieview.NewCamera(sieview.Top)
	require.NoError(t, err)
	cam.Position = mgl64.Vec3{0, 0, 100}
	p := New(cam, 200, 200)
	p.Shading = false

	low := sieview.NewPolygon([]mgl64.Vec3{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}})
	high := sieview.NewPolygon([]mgl64.Vec3{{-1, -1, 5}, {1, -1, 5}, {1, 1, 5}})

	s := sieview.NewScene()
	s.ShowGrid = false
	s.ShowAxes = false
	s.AddShape("high", high, sieview.Red)
	s.AddShape("low", low, sieview.Blue)
	s.AddDot(sieview.NewDot(mgl64.Vec3{0, 0, 1}, "a"), sieview.Black)

	rs, err := s.Draw()
	require.NoError(t, err)
	f := p.Frame(rs)

	require.Len(t, f.Items, 8)
	assert.Equal(t, sieview.Blue.RGBA(), f.Items[0].Color)
	assert.Equal(t, sieview.Triangles, f.Items[0].Kind)
	for _, it := range f.Items[1:4] {
		assert.Equal(t, sieview.Lines, it.Kind)
	}
	assert.Equal(t, sieview.Red.RGBA(), f.Items[4].Color)
	for i := 1; i < len(f.Items); i++ {
		assert.GreaterOrEqual(t, f.Items[i-1].Depth, f.Items[i].Depth)
	}

	require.Len(t, f.Labels, 1)
	assert.Equal(t, "a", f.Labels[0].Text)
	assert.InDelta(t, 100, f.Labels[0].Pos.X(), 1e-6)
}
