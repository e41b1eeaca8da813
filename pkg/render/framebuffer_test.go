package render

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
)

func TestFramebufferPixels(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.Clear(ColorBackground)
	fb.SetPixel(1, 2, ColorInside)
	fb.SetPixel(-1, 0, ColorInside) // ignored
	fb.SetPixel(4, 0, ColorInside)  // ignored

	if got := fb.GetPixel(1, 2); got != ColorInside {
		t.Errorf("GetPixel(1, 2) = %v, want %v", got, ColorInside)
	}
	if got := fb.GetPixel(0, 0); got != ColorBackground {
		t.Errorf("GetPixel(0, 0) = %v, want %v", got, ColorBackground)
	}
	if got := fb.GetPixel(9, 9); got != (color.RGBA{}) {
		t.Errorf("out of range GetPixel = %v, want transparent", got)
	}
}

func TestDrawLineAndCross(t *testing.T) {
	fb := NewFramebuffer(7, 7)
	fb.DrawLine(0, 0, 6, 6, ColorAxis)
	for i := range 7 {
		if fb.GetPixel(i, i) != ColorAxis {
			t.Errorf("diagonal pixel (%d, %d) not set", i, i)
		}
	}

	fb.Clear(color.RGBA{})
	fb.DrawCross(3, 3, 2, ColorProbeOn)
	set := 0
	for _, p := range fb.Pixels {
		if p == ColorProbeOn {
			set++
		}
	}
	if set != 9 {
		t.Errorf("cross set %d pixels, want 9", set)
	}
}

func TestSavePNG(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Clear(ColorInside)
	path := filepath.Join(t.TempDir(), "map.png")

	if err := fb.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("expected a non-empty file, err = %v", err)
	}
}

// recordScreen captures SetCell calls; other Screen methods are not used by
// Draw.
type recordScreen struct {
	uv.Screen
	cells map[[2]int]*uv.Cell
}

func (r *recordScreen) SetCell(x, y int, c *uv.Cell) {
	r.cells[[2]int{x, y}] = c
}

func TestDrawHalfBlocks(t *testing.T) {
	fb := NewFramebuffer(2, 4)
	fb.Clear(ColorBackground)
	fb.SetPixel(1, 2, ColorProbeOn)
	fb.SetPixel(1, 3, ColorProbeOff)
	fb.SetPixel(0, 0, color.RGBA{})

	scr := &recordScreen{cells: map[[2]int]*uv.Cell{}}
	fb.Draw(scr, uv.Rectangle(image.Rect(0, 0, 2, 2)))

	if len(scr.cells) != 4 {
		t.Fatalf("drew %d cells, want 4", len(scr.cells))
	}
	cell := scr.cells[[2]int{1, 1}]
	if cell.Content != "▀" {
		t.Errorf("content = %q", cell.Content)
	}
	if cell.Style.Fg != color.Color(ColorProbeOn) || cell.Style.Bg != color.Color(ColorProbeOff) {
		t.Errorf("style = %v / %v", cell.Style.Fg, cell.Style.Bg)
	}
	if scr.cells[[2]int{0, 0}].Style.Fg != nil {
		t.Error("transparent pixel should map to the default color")
	}
}
