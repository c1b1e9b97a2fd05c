package main

import (
	"strings"
	"testing"

	"github.com/banshee-data/spherepack/internal/config"
)

// resetFlags restores the override flags to their defaults after a test
// mutates them.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		*container = ""
		*radius = 0
		*radiusMin = 0
		*radiusMax = 0
		*seed = -1
		*maxAttempts = -1
	})
}

func TestBuildContainer(t *testing.T) {
	cases := []struct {
		name     string
		body     func(cfg *config.RunConfig)
		wantDesc string
	}{
		{
			name:     "defaults to sphere r=2",
			body:     func(cfg *config.RunConfig) {},
			wantDesc: "sphere r=2",
		},
		{
			name: "spherical container with explicit radius",
			body: func(cfg *config.RunConfig) {
				kind, r := "sphere", 3.5
				cfg.Container, cfg.ContainerRadius = &kind, &r
			},
			wantDesc: "sphere r=3.5",
		},
		{
			name: "cuboid container",
			body: func(cfg *config.RunConfig) {
				kind, x, y, z := "cuboid", 2.0, 3.0, 4.0
				cfg.Container = &kind
				cfg.CuboidX, cfg.CuboidY, cfg.CuboidZ = &x, &y, &z
			},
			wantDesc: "cuboid 2×3×4",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.EmptyRunConfig()
			tc.body(cfg)
			boundary, desc, err := buildContainer(cfg)
			if err != nil {
				t.Fatalf("buildContainer: %v", err)
			}
			if boundary == nil {
				t.Fatal("buildContainer returned nil container")
			}
			if desc != tc.wantDesc {
				t.Errorf("desc = %q, want %q", desc, tc.wantDesc)
			}
		})
	}
}

func TestApplyFlagOverrides(t *testing.T) {
	resetFlags(t)
	*container = "cuboid"
	*radiusMin = 0.02
	*radiusMax = 0.08
	*seed = 7
	*maxAttempts = 500

	cfg := config.EmptyRunConfig()
	if err := applyFlagOverrides(cfg); err != nil {
		t.Fatalf("applyFlagOverrides: %v", err)
	}

	if cfg.GetContainer() != "cuboid" {
		t.Errorf("GetContainer = %q, want cuboid", cfg.GetContainer())
	}
	if cfg.GetRadiusMin() != 0.02 || cfg.GetRadiusMax() != 0.08 {
		t.Errorf("radii = [%v, %v), want [0.02, 0.08)", cfg.GetRadiusMin(), cfg.GetRadiusMax())
	}
	if cfg.GetSeed() != 7 {
		t.Errorf("GetSeed = %d, want 7", cfg.GetSeed())
	}
	if cfg.GetMaxAttempts() != 500 {
		t.Errorf("GetMaxAttempts = %d, want 500", cfg.GetMaxAttempts())
	}
}

func TestApplyFlagOverrides_UnsetFlagsKeepConfig(t *testing.T) {
	resetFlags(t)

	seedVal := int64(11)
	cfg := config.EmptyRunConfig()
	cfg.Seed = &seedVal

	if err := applyFlagOverrides(cfg); err != nil {
		t.Fatalf("applyFlagOverrides: %v", err)
	}
	if cfg.GetSeed() != 11 {
		t.Errorf("GetSeed = %d, want config value 11", cfg.GetSeed())
	}
	if cfg.GetContainer() != "sphere" {
		t.Errorf("GetContainer = %q, want default sphere", cfg.GetContainer())
	}
}

func TestApplyFlagOverrides_RejectsInvalid(t *testing.T) {
	resetFlags(t)
	*radiusMin = 0.2
	*radiusMax = 0.1

	err := applyFlagOverrides(config.EmptyRunConfig())
	if err == nil {
		t.Fatal("expected error for inverted radius bounds")
	}
	if !strings.Contains(err.Error(), "radius") {
		t.Errorf("error %q should mention the radius bounds", err)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "a", "b"); got != "a" {
		t.Errorf("firstNonEmpty = %q, want a", got)
	}
	if got := firstNonEmpty("", ""); got != "" {
		t.Errorf("firstNonEmpty = %q, want empty", got)
	}
}
