package main

import (
	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/planar/pkg/math3d"
)

// ProbeAxis eases one coordinate of the probe toward its target with a
// critically damped spring.
type ProbeAxis struct {
	Position float64
	velocity float64
	spring   harmonica.Spring
}

// NewProbeAxis creates an axis updated fps times per second.
func NewProbeAxis(fps int) ProbeAxis {
	return ProbeAxis{
		// Frequency 6.0 settles in well under a second, damping 1.0 = no overshoot
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

// Update advances the axis one frame toward target.
func (a *ProbeAxis) Update(target float64) {
	a.Position, a.velocity = a.spring.Update(a.Position, a.velocity, target)
}

// Probe is a point in surface-local 2D coordinates that follows Target.
type Probe struct {
	Target math3d.Vec2
	U, V   ProbeAxis
	fps    int
}

// NewProbe creates a probe at the surface center.
func NewProbe(fps int) *Probe {
	return &Probe{
		U:   NewProbeAxis(fps),
		V:   NewProbeAxis(fps),
		fps: fps,
	}
}

// Update advances the probe one frame.
func (p *Probe) Update() {
	p.U.Update(p.Target.X)
	p.V.Update(p.Target.Y)
}

// Local returns the current probe position.
func (p *Probe) Local() math3d.Vec2 {
	return math3d.V2(p.U.Position, p.V.Position)
}

// Reset moves the probe and its target back to the surface center.
func (p *Probe) Reset() {
	p.Target = math3d.Vec2{}
	p.U = NewProbeAxis(p.fps)
	p.V = NewProbeAxis(p.fps)
}
