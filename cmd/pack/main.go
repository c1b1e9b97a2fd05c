// Command pack runs an advancing-front sphere packing and reports its
// structural statistics. Optionally persists the run to SQLite and renders an
// HTML report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/banshee-data/spherepack/internal/config"
	"github.com/banshee-data/spherepack/internal/report"
	"github.com/banshee-data/spherepack/internal/store"
	"github.com/banshee-data/spherepack/pack"
	"github.com/banshee-data/spherepack/shapes"
	"github.com/banshee-data/spherepack/sizes"
)

var (
	configPath  = flag.String("config", "", "Path to a JSON run configuration")
	container   = flag.String("container", "", "Container kind: sphere or cuboid (overrides config)")
	radius      = flag.Float64("radius", 0, "Spherical container radius (overrides config)")
	radiusMin   = flag.Float64("min", 0, "Minimum sphere radius (overrides config)")
	radiusMax   = flag.Float64("max", 0, "Maximum sphere radius (overrides config)")
	seed        = flag.Int64("seed", -1, "RNG seed (overrides config; -1 keeps config value)")
	maxAttempts = flag.Int("max-attempts", -1, "Attempt budget, 0 = unlimited (overrides config)")
	dbPath      = flag.String("db", "", "Persist the run to this SQLite database")
	migrations  = flag.String("migrations", "", "Apply this migrations directory when opening the database")
	reportPath  = flag.String("report", "", "Write an HTML report to this path")
	histPath    = flag.String("hist", "", "Write a radius histogram PNG to this path")
)

func main() {
	flag.Parse()

	cfg := config.EmptyRunConfig()
	if *configPath != "" {
		loaded, err := config.LoadRunConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if err := applyFlagOverrides(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	boundary, desc, err := buildContainer(cfg)
	if err != nil {
		log.Fatalf("Failed to build container: %v", err)
	}

	runSeed := cfg.GetSeed()
	sampler := sizes.NewUniform(cfg.GetRadiusMin(), cfg.GetRadiusMax(), uint64(runSeed))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Printf("Packing %s with radii in [%v, %v), seed %d", desc, cfg.GetRadiusMin(), cfg.GetRadiusMax(), runSeed)
	p, err := pack.New(ctx, boundary, sampler, pack.Params{Seed: runSeed, MaxAttempts: cfg.GetMaxAttempts()})
	if err != nil {
		log.Fatalf("Packing failed: %v", err)
	}

	printStats(p)

	if path := firstNonEmpty(*dbPath, cfg.GetDBPath()); path != "" {
		db, err := store.NewDB(path)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()
		if dir := firstNonEmpty(*migrations, cfg.GetMigrationsDir()); dir != "" {
			if err := db.MigrateUp(dir); err != nil {
				log.Fatalf("Failed to apply migrations: %v", err)
			}
			log.Printf("Applied migrations from %s", dir)
		}
		id, err := db.SaveRun(p, desc, runSeed)
		if err != nil {
			log.Fatalf("Failed to save run: %v", err)
		}
		log.Printf("Saved run %s to %s", id, path)
	}

	if path := firstNonEmpty(*reportPath, cfg.GetReportPath()); path != "" {
		if err := report.WriteHTML(p, path); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
		log.Printf("Wrote report to %s", path)
	}

	if *histPath != "" {
		if err := report.SaveRadiusHistogram(p, *histPath); err != nil {
			log.Fatalf("Failed to write histogram: %v", err)
		}
		log.Printf("Wrote histogram to %s", *histPath)
	}
}

func applyFlagOverrides(cfg *config.RunConfig) error {
	if *container != "" {
		cfg.Container = container
	}
	if *radius > 0 {
		cfg.ContainerRadius = radius
	}
	if *radiusMin > 0 {
		cfg.RadiusMin = radiusMin
	}
	if *radiusMax > 0 {
		cfg.RadiusMax = radiusMax
	}
	if *seed >= 0 {
		cfg.Seed = seed
	}
	if *maxAttempts >= 0 {
		cfg.MaxAttempts = maxAttempts
	}
	return cfg.Validate()
}

func buildContainer(cfg *config.RunConfig) (pack.Container, string, error) {
	switch cfg.GetContainer() {
	case "cuboid":
		x, y, z := cfg.GetCuboid()
		c, err := shapes.NewCuboid(x, y, z)
		return c, fmt.Sprintf("cuboid %v×%v×%v", x, y, z), err
	default:
		c, err := shapes.NewSphere(cfg.GetContainerRadius())
		return c, fmt.Sprintf("sphere r=%v", cfg.GetContainerRadius()), err
	}
}

func printStats(p *pack.Packing) {
	stats := p.RadiusStats()
	log.Printf("Placed %d spheres (radius mean %.4f, min %.4f, max %.4f)",
		len(p.Spheres), stats.Mean, stats.Min, stats.Max)
	log.Printf("Volume fraction: %.2f%%", p.VolumeFraction()*100)
	log.Printf("Void ratio: %.4f", p.VoidRatio())
	log.Printf("Coordination number: %.3f", p.CoordinationNumber())

	phi := p.FabricTensor()
	var rows []string
	for a := 0; a < 3; a++ {
		rows = append(rows, fmt.Sprintf("[%7.4f %7.4f %7.4f]", phi.At(a, 0), phi.At(a, 1), phi.At(a, 2)))
	}
	log.Printf("Fabric tensor:\n  %s", strings.Join(rows, "\n  "))
	log.Printf("Anisotropy: %.4f", p.Anisotropy())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
