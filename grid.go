package sieview

import "github.com/go-gl/mathgl/mgl64"

// Grid is a square grid of lines in the XY plane, centred on the origin.
type Grid struct {
	Size       float64
	Divisions  int
	Color      Color
	CenterLine Color
}

func NewGrid() Grid {
	return Grid{
		Size:       20,
		Divisions:  20,
		Color:      MustColorFromHex("#cccccc"),
		CenterLine: Grey,
	}
}

// Buffer returns Divisions+1 lines along each axis. The two lines through
// the origin use CenterLine.
func (g Grid) Buffer() FlatBuffer {
	buf := FlatBuffer{Primitive: Lines}
	if g.Divisions <= 0 || g.Size <= 0 {
		return buf
	}
	half := g.Size / 2
	step := g.Size / float64(g.Divisions)
	for i := 0; i <= g.Divisions; i++ {
		k := -half + float64(i)*step
		c := g.Color.Vec3()
		if 2*i == g.Divisions {
			c = g.CenterLine.Vec3()
		}
		buf.add(mgl64.Vec3{-half, k, 0}, c)
		buf.add(mgl64.Vec3{half, k, 0}, c)
		buf.add(mgl64.Vec3{k, -half, 0}, c)
		buf.add(mgl64.Vec3{k, half, 0}, c)
	}
	return buf
}

// AxesBuffer draws the X, Y and Z axes in red, green and blue.
func AxesBuffer(size float64) FlatBuffer {
	buf := FlatBuffer{Primitive: Lines}
	var origin mgl64.Vec3
	for i, c := range []Color{Red, Green, Blue} {
		var end mgl64.Vec3
		end[i] = size
		buf.add(origin, c.Vec3())
		buf.add(end, c.Vec3())
	}
	return buf
}
