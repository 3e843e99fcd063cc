package voxelgo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMap is returned when an operation needs at least one occupied
	// chunk.
	ErrEmptyMap = errors.New("map has no occupied chunks")
)

// ErrInvalidChunkShape indicates a chunk shape whose components are not all
// positive powers of two.
type ErrInvalidChunkShape struct {
	Shape string
}

func (e *ErrInvalidChunkShape) Error() string {
	return fmt.Sprintf("invalid chunk shape: %s (components must be positive powers of two)", e.Shape)
}

// ErrNonCubicChunkShape indicates a chunk shape that cannot back an octree
// because its edges are not all equal.
type ErrNonCubicChunkShape struct {
	Shape string
}

func (e *ErrNonCubicChunkShape) Error() string {
	return fmt.Sprintf("non-cubic chunk shape: %s (octrees require equal power-of-two edges)", e.Shape)
}
