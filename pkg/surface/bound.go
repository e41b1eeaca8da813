package surface

import "fmt"

// Bound limits which points of the infinite plane count as being on the
// surface. The set of bound kinds is closed; a nil Bound means the surface is
// unbounded.
type Bound interface {
	isBound()
}

// Rectangle bounds a surface to |u| <= XHalfBound and |v| <= YHalfBound,
// measured from the surface center along its local axes.
//
// Half-bounds are expected to be non-negative. A negative half-bound is
// accepted, and then no point of the surface is within the bound.
type Rectangle struct {
	XHalfBound float64
	YHalfBound float64
}

// NewRectangle returns a rectangular bound with the given half-widths.
func NewRectangle(xHalfBound, yHalfBound float64) Bound {
	return Rectangle{XHalfBound: xHalfBound, YHalfBound: yHalfBound}
}

func (Rectangle) isBound() {}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle(%g x %g)", r.XHalfBound, r.YHalfBound)
}

// Other is a placeholder for bound shapes that have no query support yet.
// Any membership query against it panics.
type Other struct{}

func (Other) isBound() {}

func (Other) String() string { return "Other" }

// unsupportedBound is the panic message for a bound kind with no query
// support.
func unsupportedBound(b Bound) string {
	return fmt.Sprintf("surface: unsupported bound kind %T", b)
}
