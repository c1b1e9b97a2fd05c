// Package report renders finished packings for visual inspection: an
// interactive go-echarts HTML page and a gonum/plot radius histogram.
package report

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/spherepack/pack"
)

// viridis palette for the radius visual map.
var viridis = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// WriteHTML renders an interactive report for a packing: the XY projection of
// sphere centers coloured by radius, the contact-count distribution, and a
// headline statistics line.
func WriteHTML(p *pack.Packing, path string) error {
	page := components.NewPage()
	page.AddCharts(centerScatter(p), contactBar(p))

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func centerScatter(p *pack.Packing) *charts.Scatter {
	data := make([]opts.ScatterData, 0, len(p.Spheres))
	minR, maxR := 0.0, 0.0
	if len(p.Spheres) > 0 {
		stats := p.RadiusStats()
		minR, maxR = stats.Min, stats.Max
	}
	for _, s := range p.Spheres {
		data = append(data, opts.ScatterData{Value: []interface{}{s.Center.X, s.Center.Y, s.Radius}})
	}

	subtitle := fmt.Sprintf("spheres=%d ν=%.4f e=%.4f Z=%.2f",
		len(p.Spheres), p.VolumeFraction(), p.VoidRatio(), p.CoordinationNumber())

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Sphere Packing", Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Packing (XY projection)", Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "X", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Y", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(minR),
			Max:        float32(maxR),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)
	scatter.AddSeries("centers", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))
	return scatter
}

func contactBar(p *pack.Packing) *charts.Bar {
	hist := p.ContactHistogram()
	counts := make([]int, 0, len(hist))
	for c := range hist {
		counts = append(counts, c)
	}
	sort.Ints(counts)

	labels := make([]string, 0, len(counts))
	values := make([]opts.BarData, 0, len(counts))
	for _, c := range counts {
		labels = append(labels, fmt.Sprintf("%d", c))
		values = append(values, opts.BarData{Value: hist[c]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Contact-count distribution"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "contacts"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "spheres"}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("spheres", values)
	return bar
}
