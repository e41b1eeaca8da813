// planar - plane surface calculator
// Builds a plane surface from a center, a normal and optional half-bounds,
// then reports how points relate to it.
//
// Modes:
//
//	(default)   Print the helper rotations and every query for -point
//	-model      Classify the vertices of a glTF/GLB model against the surface
//	-png        Write a map of the surface bounds to a PNG file
//	-view       Interactive terminal map with a probe point
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/taigrr/planar/pkg/render"
	"github.com/taigrr/planar/pkg/surface"
)

var (
	centerFlag = flag.String("center", "2,6,1", "Surface center (x,y,z)")
	normalFlag = flag.String("normal", "1,0,0", "Surface normal (x,y,z), need not be unit length")
	boundsFlag = flag.String("bounds", "5,10", "Rectangle half-bounds along u,v (empty or none for an infinite plane)")
	pointFlag  = flag.String("point", "0,2,4", "Point to query (x,y,z)")
	modelPath  = flag.String("model", "", "Classify the vertices of a .gltf/.glb model")
	offsetFlag = flag.String("offset", "0,0,0", "Translate the -model points by (x,y,z) before classifying")
	pngPath    = flag.String("png", "", "Write a map of the surface to this PNG file")
	pngSize    = flag.Int("png-width", 160, "Width of the PNG map in pixels")
	viewMode   = flag.Bool("view", false, "Open the interactive terminal map")
	targetFPS  = flag.Int("fps", 60, "Target FPS for -view")
	verbose    = flag.Bool("v", false, "List every model point with -model")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "planar - plane surface calculator\n\n")
		fmt.Fprintf(os.Stderr, "Usage: planar [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nViewer controls:\n")
		fmt.Fprintf(os.Stderr, "  Arrows/WASD - Move probe target\n")
		fmt.Fprintf(os.Stderr, "  Mouse click - Set probe target\n")
		fmt.Fprintf(os.Stderr, "  +/-         - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset probe and zoom\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD overlay\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := configFromFlags()
	if err != nil {
		return err
	}

	s, err := surface.New(cfg.center, cfg.normal, cfg.bounds)
	if err != nil {
		return fmt.Errorf("build surface: %w", err)
	}

	switch {
	case *viewMode:
		if *targetFPS <= 0 {
			return fmt.Errorf("-fps must be positive, got %d", *targetFPS)
		}
		return runViewer(s, *targetFPS)
	case *modelPath != "":
		return classifyModel(os.Stdout, s, *modelPath, cfg.offset, *verbose)
	case *pngPath != "":
		return writeMapPNG(s, *pngPath, *pngSize)
	default:
		writeReport(os.Stdout, s, cfg.point)
		return nil
	}
}

// writeMapPNG renders the surface bounds with a 5:3 aspect ratio.
func writeMapPNG(s *surface.PlaneSurface, path string, width int) error {
	if width < 2 {
		return fmt.Errorf("-png-width must be at least 2, got %d", width)
	}
	fb := render.NewFramebuffer(width, width*3/5)
	m := render.NewSurfaceMap(s, 1)
	m.Fit(fb)
	m.Render(fb)
	if err := fb.SavePNG(path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	fmt.Printf("Wrote %s (%dx%d, %g units per pixel)\n", path, fb.Width, fb.Height, m.Scale)
	return nil
}
