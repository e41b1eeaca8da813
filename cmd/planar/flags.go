package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/taigrr/planar/pkg/math3d"
	"github.com/taigrr/planar/pkg/surface"
)

// parseFloats parses exactly n comma-separated numbers.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated values, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d of %q: %w", i+1, s, err)
		}
		out[i] = f
	}
	return out, nil
}

// parseVec3 parses "x,y,z".
func parseVec3(s string) (math3d.Vec3, error) {
	f, err := parseFloats(s, 3)
	if err != nil {
		return math3d.Vec3{}, err
	}
	return math3d.V3(f[0], f[1], f[2]), nil
}

// parseBounds parses "xhalf,yhalf" into a rectangular bound. An empty string
// or "none" means unbounded.
func parseBounds(s string) (surface.Bound, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return nil, nil
	}
	f, err := parseFloats(s, 2)
	if err != nil {
		return nil, err
	}
	if f[0] < 0 || f[1] < 0 {
		return nil, fmt.Errorf("half-bounds must be non-negative, got %q", s)
	}
	return surface.NewRectangle(f[0], f[1]), nil
}

// config is the parsed form of the command-line flags.
type config struct {
	center math3d.Vec3
	normal math3d.Vec3
	bounds surface.Bound
	point  math3d.Vec3
	offset math3d.Vec3
}

func configFromFlags() (config, error) {
	var cfg config
	var err error

	if cfg.center, err = parseVec3(*centerFlag); err != nil {
		return cfg, fmt.Errorf("-center: %w", err)
	}
	if cfg.normal, err = parseVec3(*normalFlag); err != nil {
		return cfg, fmt.Errorf("-normal: %w", err)
	}
	if cfg.bounds, err = parseBounds(*boundsFlag); err != nil {
		return cfg, fmt.Errorf("-bounds: %w", err)
	}
	if cfg.point, err = parseVec3(*pointFlag); err != nil {
		return cfg, fmt.Errorf("-point: %w", err)
	}
	if cfg.offset, err = parseVec3(*offsetFlag); err != nil {
		return cfg, fmt.Errorf("-offset: %w", err)
	}
	return cfg, nil
}
