// Package charts renders the pipeline's figures as self-contained HTML
// chart artifacts via go-echarts.
package charts

import (
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	mfstats "github.com/montanaflynn/stats"

	"claimstat/domain/core"
	domstats "claimstat/domain/stats"
)

const (
	chartWidth  = "900px"
	chartHeight = "500px"
)

// Histogram renders a grouped frequency distribution as a bar chart.
func Histogram(dist domstats.FrequencyDistribution, title, xLabel, path string) error {
	if len(dist.Bins) == 0 {
		return core.NewRenderError(path, core.ErrEmptyInput)
	}

	labels := make([]string, len(dist.Bins))
	data := make([]opts.BarData, len(dist.Bins))
	for i, b := range dist.Bins {
		labels[i] = b.Label
		data[i] = opts.BarData{Value: b.Count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight, PageTitle: title}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: xLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Frequency"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("Frequency", data)

	return renderToFile(bar, path)
}

// BoxPlot renders one box per named group. Pass a single group for the
// whole-column variant.
func BoxPlot(names []string, groups [][]float64, title, yLabel, path string) error {
	if len(groups) == 0 || len(names) != len(groups) {
		return core.NewRenderError(path, core.ErrEmptyInput)
	}

	data := make([]opts.BoxPlotData, len(groups))
	for i, g := range groups {
		five, err := fiveNumber(g)
		if err != nil {
			return core.NewRenderError(path, err)
		}
		data[i] = opts.BoxPlotData{Name: names[i], Value: five}
	}

	bp := charts.NewBoxPlot()
	bp.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight, PageTitle: title}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithYAxisOpts(opts.YAxis{Name: yLabel}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bp.SetXAxis(names)
	bp.AddSeries(yLabel, data)

	return renderToFile(bp, path)
}

// Scatter renders an x/y point cloud over numeric axes.
func Scatter(x, y []float64, title, xLabel, yLabel, path string) error {
	if len(x) == 0 || len(x) != len(y) {
		return core.NewRenderError(path, core.NewLengthMismatchError(len(x), len(y)))
	}

	data := make([]opts.ScatterData, len(x))
	for i := range x {
		data[i] = opts.ScatterData{Value: []interface{}{x[i], y[i]}, SymbolSize: 6}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight, PageTitle: title}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: xLabel, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yLabel, Type: "value"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	scatter.AddSeries(yLabel, data)

	return renderToFile(scatter, path)
}

// fiveNumber computes the min/Q1/median/Q3/max vector echarts box plots use.
func fiveNumber(data []float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, core.ErrEmptyInput
	}
	min, _ := mfstats.Min(data)
	max, _ := mfstats.Max(data)
	median, _ := mfstats.Median(data)
	q1, err := mfstats.Percentile(data, 25)
	if err != nil {
		q1 = min
	}
	q3, err := mfstats.Percentile(data, 75)
	if err != nil {
		q3 = max
	}
	return []float64{min, q1, median, q3, max}, nil
}

type renderable interface {
	Render(w io.Writer) error
}

func renderToFile(chart renderable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return core.NewRenderError(path, err)
	}
	defer f.Close()

	if err := chart.Render(f); err != nil {
		return core.NewRenderError(path, err)
	}
	return nil
}
