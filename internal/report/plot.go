package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/spherepack/pack"
)

// SaveRadiusHistogram writes a PNG histogram of the placed radii. The output
// format follows the file extension, so .png, .svg and .pdf all work.
func SaveRadiusHistogram(p *pack.Packing, path string) error {
	if len(p.Spheres) == 0 {
		return fmt.Errorf("nothing to plot: packing is empty")
	}
	radii := make(plotter.Values, len(p.Spheres))
	for i, s := range p.Spheres {
		radii[i] = s.Radius
	}

	hist, err := plotter.NewHist(radii, 16)
	if err != nil {
		return fmt.Errorf("failed to build histogram: %w", err)
	}

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("Radius distribution (%d spheres)", len(p.Spheres))
	pl.X.Label.Text = "radius"
	pl.Y.Label.Text = "count"
	pl.Add(hist)

	if err := pl.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save histogram: %w", err)
	}
	return nil
}
