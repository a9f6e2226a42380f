package sieview

import "github.com/pkg/errors"

var (
	// ErrInvalidFace is returned for faces with fewer than three vertices or
	// with vertex indices that do not resolve to a coordinate.
	ErrInvalidFace = errors.New("invalid face")

	// ErrIndexOutOfBounds is returned when an edge or index buffer entry
	// references a vertex that does not exist.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrNotAShape is returned by AsShape for values that are neither a
	// Shape nor a MeshData.
	ErrNotAShape = errors.New("not a shape")

	ErrUnknownViewport = errors.New("unknown viewport")
	ErrInvalidConfig   = errors.New("invalid viewer config")
)
