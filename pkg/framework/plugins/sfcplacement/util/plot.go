package util

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/framework"
)

// NewPathDelayChart builds a bar chart comparing, per SFC with a found path,
// the link delay, the end-to-end delay and the delay budget.
func NewPathDelayChart(results []framework.PlacementResult) (*charts.Bar, error) {
	var (
		labels     []string
		linkData   []opts.BarData
		totalData  []opts.BarData
		budgetData []opts.BarData
	)
	for _, r := range results {
		if !r.Found() {
			continue
		}
		labels = append(labels, "SFC "+strconv.Itoa(r.SFC.ID))
		linkData = append(linkData, opts.BarData{Value: r.LinkDelay})
		totalData = append(totalData, opts.BarData{Value: r.LinkDelay + r.ProcessingDelay})
		budgetData = append(budgetData, opts.BarData{Value: r.SFC.MaxDelay})
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("no SFC has a path to plot")
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Path delay per SFC",
			Subtitle: fmt.Sprintf("%d of %d SFCs placed", len(labels), len(results)),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "delay",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	bar.SetXAxis(labels).
		AddSeries("Link delay", linkData).
		AddSeries("End-to-end delay", totalData).
		AddSeries("Max delay", budgetData).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
		)
	return bar, nil
}

// PlotPathDelays renders NewPathDelayChart as an HTML file
func PlotPathDelays(results []framework.PlacementResult, filename string) error {
	bar, err := NewPathDelayChart(results)
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return bar.Render(f)
}
