package main

import (
	"fmt"
	"io"
	"math"

	"github.com/taigrr/planar/pkg/math3d"
	"github.com/taigrr/planar/pkg/surface"
)

// sampleGlobal is the global point converted to local coordinates and back.
var sampleGlobal = math3d.V3(4, 7, 4)

// writeReport prints the helper operations on a sample vector, the
// membership of point in s and the coordinate round trips of sampleGlobal.
func writeReport(w io.Writer, s *surface.PlaneSurface, point math3d.Vec3) {
	a := math3d.V3(1, 2, 4)
	b := math3d.V3(-2, 6, -1)

	fmt.Fprintf(w, "Vector a is %v\n", a)
	fmt.Fprintf(w, "Vector b is %v\n", b)
	fmt.Fprintf(w, "Vector a translated by b is %v\n\n", math3d.TranslatePoint(a, b))

	fmt.Fprintf(w, "Vector a rotated by pi about the x-axis is %v\n", math3d.RotateAboutXAxis(a, math.Pi))
	fmt.Fprintf(w, "Vector a rotated by pi about the y-axis is %v\n", math3d.RotateAboutYAxis(a, math.Pi))
	fmt.Fprintf(w, "Vector a rotated by pi about the z-axis is %v\n\n", math3d.RotateAboutZAxis(a, math.Pi))

	fmt.Fprintf(w, "Surface: %v\n", s)
	fmt.Fprintf(w, "Point p is %v\n", point)
	fmt.Fprintf(w, "Signed distance of p from the plane: %g\n", s.SignedDistance(point))
	fmt.Fprintf(w, "Is p on the surface: %t\n\n", s.IsPointOnSurface(point))

	g := sampleGlobal
	fmt.Fprintf(w, "Global point g is %v\n", g)

	local2 := s.GlobalToLocal2D(g)
	fmt.Fprintf(w, "In 2D, g in surface coordinates is %v\n", local2)
	fmt.Fprintf(w, "Converted back to global coordinates it is %v\n", s.Local2DToGlobal(local2))
	if !s.IsPointOnPlane(g) {
		fmt.Fprintf(w, "(g is off the plane, so the 2D round trip drops its distance)\n")
	}
	fmt.Fprintln(w)

	local3 := s.GlobalToLocal(g)
	fmt.Fprintf(w, "In 3D, g in surface coordinates (t, u, v) is %v\n", local3)
	fmt.Fprintf(w, "Converted back to global coordinates it is %v\n", s.LocalToGlobal(local3))
}
