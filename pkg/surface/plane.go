// Package surface models planar surfaces embedded in 3D space: their local
// frame, conversion between global and local coordinates, and point
// membership against optional bounds.
package surface

import (
	"fmt"
	"math"

	"github.com/taigrr/planar/pkg/math3d"
)

// Epsilon is the float64 machine epsilon (2^-52). It is the absolute
// tolerance for the on-plane test, the bound edges, and the choice of
// reference axis when building the local frame.
//
// The tolerance does not scale with the magnitude of the coordinates, so
// points far from the origin may fail the on-plane test because of rounding
// alone.
const Epsilon = 0x1p-52

// PlaneSurface is a plane through Center with unit normal T. U and V span the
// plane and, with T, form a right-handed orthonormal frame (V = T × U).
//
// Local 3D coordinates are ordered (T, U, V): the first component is the
// signed distance from the plane, the other two are the in-plane coordinates
// returned by GlobalToLocal2D.
//
// A PlaneSurface is immutable once built and safe for concurrent use.
type PlaneSurface struct {
	center  math3d.Vec3
	t, u, v math3d.Vec3
	bounds  Bound

	// Computed once in New.
	affine        math3d.Mat4
	affineInverse math3d.Mat4
}

// New builds a surface through center with the given normal. The normal need
// not be unit length. A nil bounds makes the surface infinite.
//
// The in-plane axis U is Z × T when dot(Z, T) < Epsilon and X × T otherwise.
// A normal along -Z would make Z × T vanish, so it takes X × T as well.
func New(center, normal math3d.Vec3, bounds Bound) (*PlaneSurface, error) {
	a := normal.Abs()
	m := math.Max(a.X, math.Max(a.Y, a.Z))
	if m == 0 || !normal.IsFinite() {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateNormal, normal)
	}

	// Prescale by the largest component so Len cannot overflow or underflow.
	t := normal.Div(m).Normalize()

	var u math3d.Vec3
	if dz := math3d.UnitZ().Dot(t); dz < Epsilon && 1-math.Abs(dz) >= Epsilon {
		u = math3d.UnitZ().Cross(t).Normalize()
	} else {
		u = math3d.UnitX().Cross(t).Normalize()
	}
	v := t.Cross(u)

	affine := math3d.FromBasis(t, u, v, center)
	inverse, ok := affine.Inverse()
	if !ok {
		// Unreachable for an orthonormal frame (det = 1).
		return nil, fmt.Errorf("%w: singular frame for %v", ErrDegenerateNormal, normal)
	}

	return &PlaneSurface{
		center:        center,
		t:             t,
		u:             u,
		v:             v,
		bounds:        bounds,
		affine:        affine,
		affineInverse: inverse,
	}, nil
}

// MustNew is like New but panics if the normal is degenerate.
func MustNew(center, normal math3d.Vec3, bounds Bound) *PlaneSurface {
	s, err := New(center, normal, bounds)
	if err != nil {
		panic(err)
	}
	return s
}

// Center returns the origin of the local coordinate system.
func (s *PlaneSurface) Center() math3d.Vec3 { return s.center }

// T returns the unit normal.
func (s *PlaneSurface) T() math3d.Vec3 { return s.t }

// U returns the first in-plane axis.
func (s *PlaneSurface) U() math3d.Vec3 { return s.u }

// V returns the second in-plane axis.
func (s *PlaneSurface) V() math3d.Vec3 { return s.v }

// Normal is an alias for T.
func (s *PlaneSurface) Normal() math3d.Vec3 { return s.t }

// Bounds returns the surface bound, or nil for an infinite surface.
func (s *PlaneSurface) Bounds() Bound { return s.bounds }

// Affine returns the local-to-global transform.
func (s *PlaneSurface) Affine() math3d.Mat4 { return s.affine }

// IsPointOnSurface reports whether point lies on the plane and within the
// bounds. Bounds are only consulted for points on the plane.
//
// It panics if the surface has a bound kind with no query support.
func (s *PlaneSurface) IsPointOnSurface(point math3d.Vec3) bool {
	return s.IsPointOnPlane(point) && s.isPointInBounds(point)
}

// IsPointOnPlane reports whether point is within Epsilon of the infinite
// plane, ignoring bounds.
func (s *PlaneSurface) IsPointOnPlane(point math3d.Vec3) bool {
	return math.Abs(s.SignedDistance(point)) <= Epsilon
}

// SignedDistance returns the distance of point from the plane, positive on
// the side T points to.
func (s *PlaneSurface) SignedDistance(point math3d.Vec3) float64 {
	return s.t.Dot(point.Sub(s.center))
}

// isPointInBounds does not check that point lies on the plane.
func (s *PlaneSurface) isPointInBounds(point math3d.Vec3) bool {
	if s.bounds == nil {
		return true
	}
	return s.ContainsLocal(s.GlobalToLocal2D(point))
}

// ContainsLocal reports whether the local 2D point lies within the bounds.
// Points on the edge, or outside it by up to Epsilon, are inside.
//
// It panics if the surface has a bound kind with no query support.
func (s *PlaneSurface) ContainsLocal(local math3d.Vec2) bool {
	switch b := s.bounds.(type) {
	case nil:
		return true
	case Rectangle:
		return math.Abs(local.X) <= b.XHalfBound+Epsilon &&
			math.Abs(local.Y) <= b.YHalfBound+Epsilon
	default:
		panic(unsupportedBound(b))
	}
}

// GlobalToLocal2D returns the in-plane coordinates of point. The result is
// only meaningful for points on the plane; the off-plane component is
// dropped. Use GlobalToLocal for arbitrary points.
func (s *PlaneSurface) GlobalToLocal2D(point math3d.Vec3) math3d.Vec2 {
	d := point.Sub(s.center)
	return math3d.V2(s.u.Dot(d), s.v.Dot(d))
}

// Local2DToGlobal maps in-plane coordinates to the global point on the plane.
func (s *PlaneSurface) Local2DToGlobal(local math3d.Vec2) math3d.Vec3 {
	return s.center.Add(s.u.Scale(local.X)).Add(s.v.Scale(local.Y))
}

// GlobalToLocal maps any global point to local (T, U, V) coordinates.
func (s *PlaneSurface) GlobalToLocal(point math3d.Vec3) math3d.Vec3 {
	return s.affineInverse.MulVec3(point)
}

// LocalToGlobal maps local (T, U, V) coordinates to a global point.
func (s *PlaneSurface) LocalToGlobal(local math3d.Vec3) math3d.Vec3 {
	return s.affine.MulVec3(local)
}

func (s *PlaneSurface) String() string {
	bounds := "unbounded"
	if s.bounds != nil {
		bounds = fmt.Sprint(s.bounds)
	}
	return fmt.Sprintf("PlaneSurface{center: %v, t: %v, u: %v, v: %v, bounds: %s}",
		s.center, s.t, s.u, s.v, bounds)
}
