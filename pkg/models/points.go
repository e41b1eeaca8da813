// Package models reads point samples from 3D model files so they can be
// queried against surfaces.
package models

import "github.com/taigrr/planar/pkg/math3d"

// PointSet is a flat list of model positions.
type PointSet struct {
	Name   string
	Points []math3d.Vec3

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewPointSet creates an empty point set.
func NewPointSet(name string) *PointSet {
	return &PointSet{
		Name:   name,
		Points: make([]math3d.Vec3, 0),
	}
}

// Len returns the number of points.
func (ps *PointSet) Len() int {
	return len(ps.Points)
}

// CalculateBounds computes the axis-aligned bounding box.
func (ps *PointSet) CalculateBounds() {
	if len(ps.Points) == 0 {
		ps.BoundsMin, ps.BoundsMax = math3d.Zero3(), math3d.Zero3()
		return
	}

	ps.BoundsMin = ps.Points[0]
	ps.BoundsMax = ps.Points[0]

	for _, p := range ps.Points[1:] {
		ps.BoundsMin = ps.BoundsMin.Min(p)
		ps.BoundsMax = ps.BoundsMax.Max(p)
	}
}

// Center returns the center of the bounding box.
func (ps *PointSet) Center() math3d.Vec3 {
	return ps.BoundsMin.Add(ps.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (ps *PointSet) Size() math3d.Vec3 {
	return ps.BoundsMax.Sub(ps.BoundsMin)
}

// Transform applies an affine matrix to every point.
func (ps *PointSet) Transform(mat math3d.Mat4) {
	for i := range ps.Points {
		ps.Points[i] = mat.MulVec3(ps.Points[i])
	}
	ps.CalculateBounds()
}
