package sieview

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var ErrUnsupportedFile = errors.New("unsupported file type")

// AddFile loads a .ply, .dxf or .svg file into the scene, named after the
// file.
func (s *Scene) AddFile(path string, color Color) (*SceneObject, error) {
	name := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ply":
		m, err := LoadPLYFile(path)
		if err != nil {
			return nil, err
		}
		return s.AddGeometry(name, []any{m}, color)
	case ".dxf":
		m, err := LoadDXFFile(path)
		if err != nil {
			return nil, err
		}
		return s.AddGeometry(name, []any{m}, color)
	case ".svg":
		polygons, err := LoadSVGPolygonsFile(path)
		if err != nil {
			return nil, err
		}
		geometry := make([]any, len(polygons))
		for i, p := range polygons {
			geometry[i] = p
		}
		return s.AddGeometry(name, geometry, color)
	}
	return nil, errors.Wrapf(ErrUnsupportedFile, "%s", path)
}
