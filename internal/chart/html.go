package chart

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderHTML encodes the figure as a self-contained interactive page
// (echarts assets referenced by CDN, everything else inline).
func RenderHTML(fig Figure) ([]byte, error) {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fig.Title,
			Width:     "1280px",
			Height:    "720px",
		}),
		charts.WithTitleOpts(opts.Title{Title: fig.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 90}}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(false), Min: 0.9, Max: 1.1}),
	)

	sc.SetXAxis(fig.Ticks)

	sc.AddSeries("Contractual", scatterData(fig, fig.Contractual, "circle"),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: fig.Theme.Contract}))

	// echarts colors per series, not per point, so actual markers are split
	// into one series per color bucket (status hue).
	todayPending := fig.ShowToday
	for _, group := range groupByColor(fig.Actual) {
		seriesOpts := []charts.SeriesOpts{
			charts.WithItemStyleOpts(opts.ItemStyle{Color: group.color}),
		}
		if todayPending {
			// the today line rides the first actual series; one is enough
			seriesOpts = append(seriesOpts,
				charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{
					Name:  "Today",
					XAxis: fig.tickIndex(fig.TodayPeriod),
				}),
			)
			todayPending = false
		}
		sc.AddSeries(fmt.Sprintf("Actual (%s)", group.label), scatterData(fig, group.points, "rect"), seriesOpts...)
	}

	// Annotations ride markerless scatter series with the label shown;
	// echarts colors labels per series, hence the per-color grouping.
	// Unnamed series stay out of the legend.
	for _, group := range labelGroups(append(append([]Label{}, fig.Labels...), fig.Index...)) {
		sc.AddSeries("", labelData(fig, group.labels),
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Color:     group.color,
				Position:  "inside",
				Formatter: "{b}",
			}),
		)
	}

	var buf bytes.Buffer
	if err := sc.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func scatterData(fig Figure, points []Point, symbol string) []opts.ScatterData {
	data := make([]opts.ScatterData, 0, len(points))
	for _, p := range points {
		name := p.Name
		if p.Badge != "" {
			name = fmt.Sprintf("%s (%s)", p.Name, p.Badge)
		}
		data = append(data, opts.ScatterData{
			Name:       fmt.Sprintf("%s — %s", name, p.Label),
			Value:      []interface{}{fig.tickIndex(p.Period), p.Y},
			Symbol:     symbol,
			SymbolSize: 18,
		})
	}
	return data
}

func labelData(fig Figure, labels []Label) []opts.ScatterData {
	data := make([]opts.ScatterData, 0, len(labels))
	for _, l := range labels {
		data = append(data, opts.ScatterData{
			Name:   l.Text,
			Value:  []interface{}{fig.tickIndex(l.Period), l.Y},
			Symbol: "none",
		})
	}
	return data
}

type colorGroup struct {
	label  string
	color  string
	points []Point
}

var colorLabels = map[string]string{
	"#22c55e": "Early",
	"#ef4444": "Delayed",
	"#a1a1aa": "Pending",
	"#f59e0b": "Overdue",
	"#64748b": "No Baseline",
}

func groupByColor(points []Point) []colorGroup {
	var order []string
	byColor := make(map[string][]Point)
	for _, p := range points {
		if _, ok := byColor[p.Color]; !ok {
			order = append(order, p.Color)
		}
		byColor[p.Color] = append(byColor[p.Color], p)
	}

	groups := make([]colorGroup, 0, len(order))
	for _, c := range order {
		label, ok := colorLabels[c]
		if !ok {
			label = "On-Time"
		}
		groups = append(groups, colorGroup{label: label, color: c, points: byColor[c]})
	}
	return groups
}
