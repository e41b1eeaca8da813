package main

import (
	"fmt"
	"io"

	"github.com/taigrr/planar/pkg/math3d"
	"github.com/taigrr/planar/pkg/models"
	"github.com/taigrr/planar/pkg/surface"
)

// classification counts how the points of a model relate to a surface.
type classification struct {
	Total     int
	OnPlane   int
	OnSurface int
}

func classify(ps *models.PointSet, s *surface.PlaneSurface) classification {
	c := classification{Total: ps.Len()}
	for _, p := range ps.Points {
		if !s.IsPointOnPlane(p) {
			continue
		}
		c.OnPlane++
		if s.IsPointOnSurface(p) {
			c.OnSurface++
		}
	}
	return c
}

// classifyModel loads the model at path, moves it by offset and reports its
// points against s. With verbose set, every point is listed with its signed
// distance from the plane and its distance from the surface center.
func classifyModel(w io.Writer, s *surface.PlaneSurface, path string, offset math3d.Vec3, verbose bool) error {
	ps, err := models.LoadPoints(path)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	if offset != math3d.Zero3() {
		ps.Transform(math3d.Translate(offset))
	}

	fmt.Fprintf(w, "Loaded: %s (%d points, bounds %v..%v)\n", ps.Name, ps.Len(), ps.BoundsMin, ps.BoundsMax)
	fmt.Fprintf(w, "Model center %v, size %v\n", ps.Center(), ps.Size())

	if verbose {
		for i, p := range ps.Points {
			status := "off"
			switch {
			case s.IsPointOnSurface(p):
				status = "surface"
			case s.IsPointOnPlane(p):
				status = "plane"
			}
			fmt.Fprintf(w, "%6d %v distance %-12g from center %-12g %s\n",
				i, p, s.SignedDistance(p), p.Distance(s.Center()), status)
		}
	}

	c := classify(ps, s)
	fmt.Fprintf(w, "On surface: %d\nOn plane:   %d\nTotal:      %d\n", c.OnSurface, c.OnPlane, c.Total)
	return nil
}
