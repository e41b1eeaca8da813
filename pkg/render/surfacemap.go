package render

import (
	"image/color"
	"math"

	"github.com/taigrr/planar/pkg/math3d"
	"github.com/taigrr/planar/pkg/surface"
)

// defaultUnboundedScale is the scale used by Fit for surfaces without a
// finite extent.
const defaultUnboundedScale = 0.25

// SurfaceMap paints a surface in its own local 2D coordinates: U to the
// right, V up, with Origin at the center of the framebuffer.
type SurfaceMap struct {
	Surface *surface.PlaneSurface
	Scale   float64     // Local units per pixel
	Origin  math3d.Vec2 // Local coordinates shown at the framebuffer center

	Inside   color.RGBA
	Outside  color.RGBA
	Axis     color.RGBA
	ShowAxes bool
}

// NewSurfaceMap creates a map of s at the given scale with default colors.
func NewSurfaceMap(s *surface.PlaneSurface, scale float64) *SurfaceMap {
	return &SurfaceMap{
		Surface:  s,
		Scale:    scale,
		Inside:   ColorInside,
		Outside:  ColorBackground,
		Axis:     ColorAxis,
		ShowAxes: true,
	}
}

// Fit picks a scale that shows the whole rectangular bound inside fb with a
// small margin, and recenters on the surface center.
func (m *SurfaceMap) Fit(fb *Framebuffer) {
	m.Origin = math3d.Vec2{}
	m.Scale = defaultUnboundedScale

	r, ok := m.Surface.Bounds().(surface.Rectangle)
	if !ok || fb.Width < 2 || fb.Height < 2 {
		return
	}
	const margin = 1.2
	sx := 2 * r.XHalfBound * margin / float64(fb.Width-1)
	sy := 2 * r.YHalfBound * margin / float64(fb.Height-1)
	if s := math.Max(sx, sy); s > 0 {
		m.Scale = s
	}
}

func (m *SurfaceMap) pixelCenter(fb *Framebuffer) (float64, float64) {
	return float64(fb.Width-1) / 2, float64(fb.Height-1) / 2
}

// LocalAt returns the local 2D coordinates shown at pixel (x, y).
func (m *SurfaceMap) LocalAt(fb *Framebuffer, x, y int) math3d.Vec2 {
	cx, cy := m.pixelCenter(fb)
	return m.Origin.Add(math3d.V2(float64(x)-cx, cy-float64(y)).Scale(m.Scale))
}

// PixelAt returns the pixel nearest to the local 2D point. The result may lie
// outside the framebuffer.
func (m *SurfaceMap) PixelAt(fb *Framebuffer, local math3d.Vec2) (int, int) {
	cx, cy := m.pixelCenter(fb)
	d := local.Sub(m.Origin).Scale(1 / m.Scale)
	return int(math.Round(cx + d.X)), int(math.Round(cy - d.Y))
}

// Render paints every pixel by whether its local point is within the
// surface bounds, then overlays the U and V axes through the surface center.
//
// It panics for bound kinds the surface cannot query.
func (m *SurfaceMap) Render(fb *Framebuffer) {
	for y := range fb.Height {
		for x := range fb.Width {
			c := m.Outside
			if m.Surface.ContainsLocal(m.LocalAt(fb, x, y)) {
				c = m.Inside
			}
			fb.Pixels[y*fb.Width+x] = c
		}
	}

	if !m.ShowAxes {
		return
	}
	ox, oy := m.PixelAt(fb, math3d.Vec2{})
	if oy >= 0 && oy < fb.Height {
		fb.DrawLine(0, oy, fb.Width-1, oy, m.Axis)
	}
	if ox >= 0 && ox < fb.Width {
		fb.DrawLine(ox, 0, ox, fb.Height-1, m.Axis)
	}
}
