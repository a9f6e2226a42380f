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

func LoadDXFFile(fileName string) (*Mesh, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open DXF file %s", fileName)
	}
	defer file.Close()

	mesh, err := LoadDXF(file)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing DXF file %s", fileName)
	}
	return mesh, nil
}

// LoadDXF reads the 3DFACE entities of an ASCII DXF file into a mesh.
// Corners with equal coordinates share a vertex, and a face whose fourth
// corner repeats the third becomes a triangle.
func LoadDXF(reader io.Reader) (*Mesh, error) {
	scanner := bufio.NewScanner(reader)
	mesh := NewMesh()

	var (
		line    int
		corners *[4]mgl64.Vec3
	)
	flush := func() error {
		if corners == nil {
			return nil
		}
		_, err := mesh.AddFacePoints(corners[:])
		corners = nil
		if err != nil {
			return errors.Wrapf(err, "3DFACE ending on line %d", line)
		}
		return nil
	}

	for scanner.Scan() {
		line++
		code, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: bad group code", line)
		}
		if !scanner.Scan() {
			return nil, errors.Errorf("line %d: group code %d has no value", line, code)
		}
		line++
		value := strings.TrimSpace(scanner.Text())

		if code == 0 {
			if err := flush(); err != nil {
				return nil, err
			}
			if value == "3DFACE" {
				corners = &[4]mgl64.Vec3{}
			}
			continue
		}
		if corners == nil {
			continue
		}

		// 10-13 are X of corners 1-4, 20-23 Y, 30-33 Z
		axis, corner := code/10-1, code%10
		if axis < 0 || axis > 2 || corner > 3 {
			continue
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: could not parse float value %q", line, value)
		}
		corners[corner][axis] = f
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading from DXF source")
	}
	if err := flush(); err != nil {
		return nil, err
	}

	log.Printf("DXF: %d vertices, %d faces", mesh.VertexCount(), mesh.FaceCount())
	return mesh, nil
}

// WriteDXF writes the mesh as 3DFACE entities. Triangles repeat their third
// corner. Faces with more than four vertices are triangulated first.
func (m *Mesh) WriteDXF(w io.Writer, tri *Triangulator) error {
	if tri == nil {
		tri = NewTriangulator()
	}
	writer := bufio.NewWriter(w)
	writePair := func(code int, value interface{}) {
		_, _ = fmt.Fprintf(writer, "%d\n%v\n", code, value)
	}

	writePair(0, "SECTION")
	writePair(2, "HEADER")
	writePair(0, "ENDSEC")

	writePair(0, "SECTION")
	writePair(2, "ENTITIES")

	writeFace := func(idx []int) {
		writePair(0, "3DFACE")
		writePair(8, "0")
		for c := 0; c < 4; c++ {
			p := m.Points[idx[min(c, len(idx)-1)]]
			writePair(10+c, p[0])
			writePair(20+c, p[1])
			writePair(30+c, p[2])
		}
	}

	for i, face := range m.Faces {
		if len(face) <= 4 {
			writeFace(face)
			continue
		}
		tris, err := tri.TriangulateFace(face, m.Points)
		if err != nil {
			return errors.Wrapf(err, "face %d", i)
		}
		for _, t := range tris {
			writeFace(t[:])
		}
	}

	writePair(0, "ENDSEC")
	writePair(0, "EOF")

	return writer.Flush()
}

func (m *Mesh) SaveDXF(fileName string) (err error) {
	file, err := os.Create(fileName)
	if err != nil {
		return errors.Wrapf(err, "could not create DXF file %s", fileName)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "could not close DXF file %s", fileName)
		}
	}()

	if err := m.WriteDXF(file, nil); err != nil {
		return errors.Wrapf(err, "error writing DXF file %s", fileName)
	}
	return nil
}
