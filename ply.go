package sieview

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

type plyHeader struct {
	vertexCount    int
	faceCount      int
	hasVertexColor bool
	hasFaceColor   bool
}

type plyVertex struct {
	point mgl64.Vec3
	color [3]float64
}

func LoadPLYFile(fileName string) (*Mesh, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open PLY file %s", fileName)
	}
	defer file.Close()

	mesh, err := LoadPLY(file)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing PLY file %s", fileName)
	}
	return mesh, nil
}

// LoadPLY reads an ASCII PLY file. Face colors come from the face element if
// it has them, otherwise from the average of the face's vertex colors.
func LoadPLY(reader io.Reader) (*Mesh, error) {
	scanner := bufio.NewScanner(reader)
	line := 0
	next := func() ([]string, bool) {
		for scanner.Scan() {
			line++
			parts := strings.Fields(scanner.Text())
			if len(parts) > 0 {
				return parts, true
			}
		}
		return nil, false
	}

	header, err := readPLYHeader(next)
	if err != nil {
		return nil, err
	}

	vertices := make([]plyVertex, 0, header.vertexCount)
	for i := 0; i < header.vertexCount; i++ {
		parts, ok := next()
		if !ok {
			return nil, errors.Errorf("unexpected end of file while reading vertex %d", i)
		}
		v, err := parsePLYVertex(parts, header.hasVertexColor)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		vertices = append(vertices, v)
	}

	mesh := NewMesh()
	for _, v := range vertices {
		mesh.AddVertex(v.point)
	}

	for i := 0; i < header.faceCount; i++ {
		parts, ok := next()
		if !ok {
			return nil, errors.Errorf("unexpected end of file while reading face %d", i)
		}
		indices, faceColor, err := parsePLYFace(parts, header.hasFaceColor)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		face, err := mesh.AddFace(indices)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}

		switch {
		case header.hasFaceColor:
			mesh.SetFaceColor(face, faceColor, MeshGrey)
		case header.hasVertexColor:
			var sum [3]float64
			for _, idx := range indices {
				for c := range sum {
					sum[c] += vertices[idx].color[c]
				}
			}
			n := float64(len(indices))
			mesh.SetFaceColor(face, NewColor(sum[0]/n, sum[1]/n, sum[2]/n), MeshGrey)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading from PLY source")
	}

	log.Printf("PLY: %d vertices, %d faces", mesh.VertexCount(), mesh.FaceCount())
	return mesh, nil
}

func readPLYHeader(next func() ([]string, bool)) (plyHeader, error) {
	var h plyHeader
	parts, ok := next()
	if !ok || parts[0] != "ply" {
		return h, errors.New("missing ply magic")
	}

	var currentElement string
	for {
		parts, ok := next()
		if !ok {
			return h, errors.New("unexpected end of file in PLY header")
		}
		switch parts[0] {
		case "format":
			if len(parts) < 2 || parts[1] != "ascii" {
				return h, errors.Errorf("unsupported PLY format %v", parts[1:])
			}
		case "element":
			if len(parts) != 3 {
				return h, errors.Errorf("bad element line %q", strings.Join(parts, " "))
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil {
				return h, errors.Wrapf(err, "element %s count", parts[1])
			}
			currentElement = parts[1]
			switch currentElement {
			case "vertex":
				h.vertexCount = count
			case "face":
				h.faceCount = count
			}
		case "property":
			name := parts[len(parts)-1]
			if name == "red" || name == "diffuse_red" {
				switch currentElement {
				case "vertex":
					h.hasVertexColor = true
				case "face":
					h.hasFaceColor = true
				}
			}
		case "end_header":
			return h, nil
		}
	}
}

func parsePLYVertex(parts []string, hasColor bool) (plyVertex, error) {
	var v plyVertex
	want := 3
	if hasColor {
		want = 6
	}
	if len(parts) < want {
		return v, errors.Errorf("expected %d vertex values, got %d", want, len(parts))
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(parts[i], 64)
		if err != nil {
			return v, errors.Wrapf(err, "vertex coordinate %d", i)
		}
		v.point[i] = f
	}
	v.color = [3]float64{1, 1, 1}
	if hasColor {
		for i := 0; i < 3; i++ {
			c, err := strconv.ParseUint(parts[3+i], 10, 8)
			if err != nil {
				return v, errors.Wrapf(err, "vertex color %d", i)
			}
			v.color[i] = float64(c) / 255
		}
	}
	return v, nil
}

func parsePLYFace(parts []string, hasColor bool) ([]int, Color, error) {
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, Color{}, errors.Wrap(err, "face vertex count")
	}
	want := n + 1
	if hasColor {
		want += 3
	}
	if n < 0 || len(parts) != want {
		return nil, Color{}, errors.Errorf("expected %d face values, got %d", want, len(parts))
	}

	indices := make([]int, n)
	for j := 0; j < n; j++ {
		idx, err := strconv.Atoi(parts[j+1])
		if err != nil {
			return nil, Color{}, errors.Wrapf(err, "face index %d", j)
		}
		indices[j] = idx
	}

	var c Color
	if hasColor {
		var rgb [3]uint8
		for i := range rgb {
			v, err := strconv.ParseUint(parts[n+1+i], 10, 8)
			if err != nil {
				return nil, Color{}, errors.Wrapf(err, "face color %d", i)
			}
			rgb[i] = uint8(v)
		}
		c = ColorFromRGB255(rgb[0], rgb[1], rgb[2])
	}
	return indices, c, nil
}

// WritePLY writes the mesh as ASCII PLY. Face colors are written when the
// mesh has any.
func (m *Mesh) WritePLY(w io.Writer) error {
	writer := bufio.NewWriter(w)
	withColor := len(m.FaceColors) > 0

	_, _ = fmt.Fprintln(writer, "ply")
	_, _ = fmt.Fprintln(writer, "format ascii 1.0")
	_, _ = fmt.Fprintln(writer, "comment Generated by sieview")
	_, _ = fmt.Fprintf(writer, "element vertex %d\n", len(m.Points))
	_, _ = fmt.Fprintln(writer, "property float x")
	_, _ = fmt.Fprintln(writer, "property float y")
	_, _ = fmt.Fprintln(writer, "property float z")
	_, _ = fmt.Fprintf(writer, "element face %d\n", len(m.Faces))
	_, _ = fmt.Fprintln(writer, "property list uchar int vertex_indices")
	if withColor {
		_, _ = fmt.Fprintln(writer, "property uchar red")
		_, _ = fmt.Fprintln(writer, "property uchar green")
		_, _ = fmt.Fprintln(writer, "property uchar blue")
	}
	_, _ = fmt.Fprintln(writer, "end_header")

	for _, p := range m.Points {
		_, _ = fmt.Fprintf(writer, "%v %v %v\n", p[0], p[1], p[2])
	}

	for i, face := range m.Faces {
		_, _ = fmt.Fprintf(writer, "%d", len(face))
		for _, idx := range face {
			_, _ = fmt.Fprintf(writer, " %d", idx)
		}
		if withColor {
			c := MeshGrey.RGBA()
			if i < len(m.FaceColors) {
				c = m.FaceColors[i].RGBA()
			}
			_, _ = fmt.Fprintf(writer, " %d %d %d", c.R, c.G, c.B)
		}
		_, _ = fmt.Fprintln(writer)
	}

	return writer.Flush()
}

func (m *Mesh) SavePLY(fileName string) (err error) {
	file, err := os.Create(fileName)
	if err != nil {
		return errors.Wrapf(err, "could not create PLY file %s", fileName)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "could not close PLY file %s", fileName)
		}
	}()

	if err := m.WritePLY(file); err != nil {
		return errors.Wrapf(err, "error writing PLY file %s", fileName)
	}
	return nil
}
