// Package config loads run configuration for the pack CLI from JSON files.
// Fields are pointer-typed so a partial file overrides only what it names;
// the Get* methods supply defaults for everything else.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// RunConfig is the root configuration for a packing run.
type RunConfig struct {
	// Engine params
	Seed        *int64 `json:"seed,omitempty"`
	MaxAttempts *int   `json:"max_attempts,omitempty"`

	// Size distribution
	RadiusMin *float64 `json:"radius_min,omitempty"`
	RadiusMax *float64 `json:"radius_max,omitempty"`

	// Container geometry: "sphere" or "cuboid"
	Container       *string  `json:"container,omitempty"`
	ContainerRadius *float64 `json:"container_radius,omitempty"`
	CuboidX         *float64 `json:"cuboid_x,omitempty"`
	CuboidY         *float64 `json:"cuboid_y,omitempty"`
	CuboidZ         *float64 `json:"cuboid_z,omitempty"`

	// Outputs
	DBPath        *string `json:"db_path,omitempty"`
	MigrationsDir *string `json:"migrations_dir,omitempty"`
	ReportPath    *string `json:"report_path,omitempty"`
}

// EmptyRunConfig returns a RunConfig with all fields unset.
func EmptyRunConfig() *RunConfig {
	return &RunConfig{}
}

// LoadRunConfig loads a RunConfig from a JSON file. The file must have a
// .json extension and stay under the max file size. Absent fields keep their
// defaults, so partial configs are safe.
func LoadRunConfig(path string) (*RunConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyRunConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that set fields carry usable values.
func (c *RunConfig) Validate() error {
	if c.Seed != nil && *c.Seed < 0 {
		return fmt.Errorf("seed must be non-negative, got %d", *c.Seed)
	}
	if c.RadiusMin != nil && *c.RadiusMin <= 0 {
		return fmt.Errorf("radius_min must be positive, got %f", *c.RadiusMin)
	}
	if c.RadiusMax != nil && *c.RadiusMax <= 0 {
		return fmt.Errorf("radius_max must be positive, got %f", *c.RadiusMax)
	}
	if c.RadiusMin != nil && c.RadiusMax != nil && *c.RadiusMin > *c.RadiusMax {
		return fmt.Errorf("radius_min %f exceeds radius_max %f", *c.RadiusMin, *c.RadiusMax)
	}
	if c.MaxAttempts != nil && *c.MaxAttempts < 0 {
		return fmt.Errorf("max_attempts must be non-negative, got %d", *c.MaxAttempts)
	}
	if c.Container != nil {
		switch *c.Container {
		case "sphere", "cuboid":
		default:
			return fmt.Errorf("container must be \"sphere\" or \"cuboid\", got %q", *c.Container)
		}
	}
	if c.ContainerRadius != nil && *c.ContainerRadius <= 0 {
		return fmt.Errorf("container_radius must be positive, got %f", *c.ContainerRadius)
	}
	for name, v := range map[string]*float64{"cuboid_x": c.CuboidX, "cuboid_y": c.CuboidY, "cuboid_z": c.CuboidZ} {
		if v != nil && *v <= 0 {
			return fmt.Errorf("%s must be positive, got %f", name, *v)
		}
	}
	return nil
}

// GetSeed returns the configured RNG seed, default 0.
func (c *RunConfig) GetSeed() int64 {
	if c.Seed == nil {
		return 0
	}
	return *c.Seed
}

// GetMaxAttempts returns the attempt budget, default 0 (unlimited).
func (c *RunConfig) GetMaxAttempts() int {
	if c.MaxAttempts == nil {
		return 0
	}
	return *c.MaxAttempts
}

// GetRadiusMin returns the lower radius bound, default 0.05.
func (c *RunConfig) GetRadiusMin() float64 {
	if c.RadiusMin == nil {
		return 0.05
	}
	return *c.RadiusMin
}

// GetRadiusMax returns the upper radius bound, default 0.1.
func (c *RunConfig) GetRadiusMax() float64 {
	if c.RadiusMax == nil {
		return 0.1
	}
	return *c.RadiusMax
}

// GetContainer returns the container kind, default "sphere".
func (c *RunConfig) GetContainer() string {
	if c.Container == nil {
		return "sphere"
	}
	return *c.Container
}

// GetContainerRadius returns the spherical container radius, default 2.
func (c *RunConfig) GetContainerRadius() float64 {
	if c.ContainerRadius == nil {
		return 2
	}
	return *c.ContainerRadius
}

// GetCuboid returns the cuboid side lengths, default 4×4×4.
func (c *RunConfig) GetCuboid() (x, y, z float64) {
	x, y, z = 4, 4, 4
	if c.CuboidX != nil {
		x = *c.CuboidX
	}
	if c.CuboidY != nil {
		y = *c.CuboidY
	}
	if c.CuboidZ != nil {
		z = *c.CuboidZ
	}
	return x, y, z
}

// GetDBPath returns the SQLite output path, empty when persistence is off.
func (c *RunConfig) GetDBPath() string {
	if c.DBPath == nil {
		return ""
	}
	return *c.DBPath
}

// GetMigrationsDir returns the migrations directory applied when opening the
// database, empty when only the inline schema bootstrap is wanted.
func (c *RunConfig) GetMigrationsDir() string {
	if c.MigrationsDir == nil {
		return ""
	}
	return *c.MigrationsDir
}

// GetReportPath returns the HTML report path, empty when reporting is off.
func (c *RunConfig) GetReportPath() string {
	if c.ReportPath == nil {
		return ""
	}
	return *c.ReportPath
}
