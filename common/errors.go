package common

import (
	"errors"
	"fmt"
)

var (
	// ErrSurfaceReparented is returned when a surface gets a new owner after
	// its position inside the previous owner has been read.
	ErrSurfaceReparented = errors.New("surface already attached to a polytope")
	// ErrFunnelAlreadyUsed is returned by a second path extraction on the same funnel.
	ErrFunnelAlreadyUsed = errors.New("funnel algorithm can only be used once")
)

// UnsupportedShapeError reports a shape kind the polytope builder cannot expand.
type UnsupportedShapeError struct {
	ObjectName string
	Kind       string
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("shape type %s not supported by navigation mesh generator (object: %s)", e.Kind, e.ObjectName)
}

// DegenerateGeometryError reports an unstable geometric construction such as
// the intersection of near parallel planes.
type DegenerateGeometryError struct {
	Reason string
}

func (e *DegenerateGeometryError) Error() string {
	return "degenerate geometry: " + e.Reason
}

func NewDegenerateGeometryError(format string, args ...any) error {
	return &DegenerateGeometryError{Reason: fmt.Sprintf(format, args...)}
}

// PreconditionError reports malformed input handed to one of the algorithms.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return "precondition violation: " + e.Reason
}

func NewPreconditionError(format string, args ...any) error {
	return &PreconditionError{Reason: fmt.Sprintf(format, args...)}
}
