package render

import (
	"testing"

	"github.com/taigrr/planar/pkg/math3d"
	"github.com/taigrr/planar/pkg/surface"
)

func TestSurfaceMapRectangle(t *testing.T) {
	s := surface.MustNew(math3d.Zero3(), math3d.V3(1, 0, 0), surface.NewRectangle(2, 1))
	fb := NewFramebuffer(21, 11)
	m := NewSurfaceMap(s, 0.25)
	m.ShowAxes = false
	m.Render(fb)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"center", 10, 5, true},
		{"right edge", 18, 2, true},
		{"past right edge", 19, 2, false},
		{"left edge", 2, 8, true},
		{"past left edge", 1, 8, false},
		{"past top edge", 18, 0, false},
		{"top edge", 10, 1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := fb.GetPixel(tc.x, tc.y) == m.Inside
			if got != tc.want {
				t.Errorf("pixel (%d, %d) local %v inside = %v, want %v",
					tc.x, tc.y, m.LocalAt(fb, tc.x, tc.y), got, tc.want)
			}
		})
	}
}

func TestSurfaceMapUnbounded(t *testing.T) {
	s := surface.MustNew(math3d.V3(5, 5, 5), math3d.V3(1, 2, 3), nil)
	fb := NewFramebuffer(8, 6)
	m := NewSurfaceMap(s, 100)
	m.ShowAxes = false
	m.Render(fb)

	for i, p := range fb.Pixels {
		if p != m.Inside {
			t.Fatalf("pixel %d = %v, want inside color", i, p)
		}
	}
}

func TestSurfaceMapAxes(t *testing.T) {
	s := surface.MustNew(math3d.Zero3(), math3d.V3(0, 0, 1), surface.NewRectangle(1, 1))
	fb := NewFramebuffer(9, 9)
	m := NewSurfaceMap(s, 0.5)
	m.Render(fb)

	for i := range 9 {
		if fb.GetPixel(i, 4) != m.Axis {
			t.Errorf("u axis pixel (%d, 4) = %v", i, fb.GetPixel(i, 4))
		}
		if fb.GetPixel(4, i) != m.Axis {
			t.Errorf("v axis pixel (4, %d) = %v", i, fb.GetPixel(4, i))
		}
	}
}

func TestSurfaceMapPixelRoundTrip(t *testing.T) {
	s := surface.MustNew(math3d.Zero3(), math3d.V3(1, 0, 0), nil)
	fb := NewFramebuffer(40, 30)
	m := NewSurfaceMap(s, 0.3)
	m.Origin = math3d.V2(2, -1)

	for _, p := range [][2]int{{0, 0}, {39, 29}, {17, 4}, {20, 15}} {
		x, y := m.PixelAt(fb, m.LocalAt(fb, p[0], p[1]))
		if x != p[0] || y != p[1] {
			t.Errorf("PixelAt(LocalAt(%v)) = (%d, %d)", p, x, y)
		}
	}

	// V grows upward.
	if m.LocalAt(fb, 0, 0).Y <= m.LocalAt(fb, 0, 29).Y {
		t.Error("expected the top row to have the larger V coordinate")
	}
}

func TestSurfaceMapFit(t *testing.T) {
	fb := NewFramebuffer(41, 21)

	s := surface.MustNew(math3d.Zero3(), math3d.V3(1, 0, 0), surface.NewRectangle(5, 10))
	m := NewSurfaceMap(s, 1)
	m.Origin = math3d.V2(3, 3)
	m.Fit(fb)

	if m.Origin != (math3d.Vec2{}) {
		t.Errorf("Fit should recenter, origin = %v", m.Origin)
	}
	// Both corners of the rectangle must be on screen.
	for _, corner := range []math3d.Vec2{math3d.V2(5, 10), math3d.V2(-5, -10)} {
		x, y := m.PixelAt(fb, corner)
		if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
			t.Errorf("corner %v at pixel (%d, %d) is off screen", corner, x, y)
		}
	}

	unbounded := NewSurfaceMap(surface.MustNew(math3d.Zero3(), math3d.V3(1, 0, 0), nil), 7)
	unbounded.Fit(fb)
	if unbounded.Scale != defaultUnboundedScale {
		t.Errorf("unbounded scale = %v, want %v", unbounded.Scale, defaultUnboundedScale)
	}
}
