package sieview

import (
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

func LoadSVGPolygonsFile(fileName string) ([]*Polygon, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open SVG file %s", fileName)
	}
	defer file.Close()

	polygons, err := LoadSVGPolygons(file)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing SVG file %s", fileName)
	}
	return polygons, nil
}

// LoadSVGPolygons returns every <polygon> element as a Polygon in the z=0
// plane. SVG y runs down the page, so it is negated, and each polygon is
// wound counter-clockwise seen from +Z.
func LoadSVGPolygons(reader io.Reader) ([]*Polygon, error) {
	rootEl, err := svgparser.Parse(reader, true)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	var polygons []*Polygon
	for i, el := range rootEl.FindAll("polygon") {
		points, err := parseSVGPoints(el.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		if len(points) < 3 {
			return nil, errors.Wrapf(ErrInvalidFace, "polygon %d has %d points", i, len(points))
		}
		if FaceNormal(points).Z() < 0 {
			for l, r := 0, len(points)-1; l < r; l, r = l+1, r-1 {
				points[l], points[r] = points[r], points[l]
			}
		}
		polygons = append(polygons, NewPolygon(points))
	}

	log.Printf("SVG: %d polygons", len(polygons))
	return polygons, nil
}

func parseSVGPoints(s string) ([]mgl64.Vec3, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}

	points := make([]mgl64.Vec3, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, mgl64.Vec3{x, -y, 0})
	}
	return points, nil
}
