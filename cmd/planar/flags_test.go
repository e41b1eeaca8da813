package main

import (
	"testing"

	"github.com/taigrr/planar/pkg/math3d"
	"github.com/taigrr/planar/pkg/surface"
)

func TestParseVec3(t *testing.T) {
	tests := []struct {
		in      string
		want    math3d.Vec3
		wantErr bool
	}{
		{"2,6,1", math3d.V3(2, 6, 1), false},
		{" -1.5, 0 ,1e3", math3d.V3(-1.5, 0, 1000), false},
		{"1,2", math3d.Vec3{}, true},
		{"1,2,3,4", math3d.Vec3{}, true},
		{"1,x,3", math3d.Vec3{}, true},
		{"", math3d.Vec3{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseVec3(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseVec3(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("parseVec3(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseBounds(t *testing.T) {
	tests := []struct {
		in      string
		want    surface.Bound
		wantErr bool
	}{
		{"", nil, false},
		{"none", nil, false},
		{"NONE", nil, false},
		{"5,10", surface.NewRectangle(5, 10), false},
		{"0,0", surface.NewRectangle(0, 0), false},
		{"-1,2", nil, true},
		{"5", nil, true},
		{"a,b", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseBounds(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseBounds(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("parseBounds(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestConfigFromFlagDefaults(t *testing.T) {
	cfg, err := configFromFlags()
	if err != nil {
		t.Fatalf("default flags: %v", err)
	}
	if cfg.center != math3d.V3(2, 6, 1) || cfg.normal != math3d.V3(1, 0, 0) || cfg.point != math3d.V3(0, 2, 4) {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.offset != math3d.Zero3() {
		t.Errorf("offset = %v, want zero", cfg.offset)
	}
	if cfg.bounds != surface.NewRectangle(5, 10) {
		t.Errorf("bounds = %v, want Rectangle(5 x 10)", cfg.bounds)
	}
}
