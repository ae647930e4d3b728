package chart

import (
	"bytes"
	"errors"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrRasterDisabled is returned when the PNG export path is switched off.
// The rest of the app keeps working; callers surface the message inline.
var ErrRasterDisabled = errors.New("png rendering disabled")

// Rasterizer renders figures to static PNG bytes. The raster path is
// optional equipment: when disabled by config the Render call fails with
// ErrRasterDisabled and every other export stays available.
type Rasterizer struct {
	enabled bool
	width   int
	height  int
}

// NewRasterizer builds a PNG renderer. Disabled renderers still answer
// Available so handlers can report the state without attempting a render.
func NewRasterizer(enabled bool) *Rasterizer {
	return &Rasterizer{enabled: enabled, width: 1280, height: 720}
}

// Available reports whether PNG export is switched on.
func (rz *Rasterizer) Available() bool {
	return rz != nil && rz.enabled
}

// Render rasterizes the figure.
func (rz *Rasterizer) Render(fig Figure) ([]byte, error) {
	if !rz.Available() {
		return nil, ErrRasterDisabled
	}

	graph := gochart.Chart{
		Title:  fig.Title,
		Width:  rz.width,
		Height: rz.height,
		XAxis: gochart.XAxis{
			Ticks: axisTicks(fig),
		},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: 0.9, Max: 1.1},
			Style: gochart.Hidden(),
		},
		Series: rz.series(fig),
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (rz *Rasterizer) series(fig Figure) []gochart.Series {
	var series []gochart.Series

	// track baselines span the whole axis
	series = append(series,
		lineSeries("", []float64{float64(fig.XMin), float64(fig.XMax)}, trackContractual, fig.Theme.BaseContract, nil),
		lineSeries("", []float64{float64(fig.XMin), float64(fig.XMax)}, trackActual, fig.Theme.BaseActual, nil),
	)

	series = append(series, markerSeries("Contractual", fig.Contractual, fig.Theme.Contract))
	for _, group := range groupByColor(fig.Actual) {
		series = append(series, markerSeries("Actual ("+group.label+")", group.points, group.color))
	}

	for _, group := range labelGroups(append(append([]Label{}, fig.Labels...), fig.Index...)) {
		series = append(series, annotationSeries(group))
	}

	if fig.ShowToday {
		today := float64(fig.TodayPeriod)
		series = append(series, gochart.ContinuousSeries{
			Name:    "Today",
			XValues: []float64{today, today},
			YValues: []float64{0.9, 1.1},
			Style: gochart.Style{
				StrokeColor:     drawing.ColorFromHex("111827"),
				StrokeWidth:     2.0,
				StrokeDashArray: []float64{4.0, 4.0},
			},
		})
	}
	return series
}

func annotationSeries(group labelGroup) gochart.Series {
	values := make([]gochart.Value2, 0, len(group.labels))
	for _, l := range group.labels {
		values = append(values, gochart.Value2{XValue: float64(l.Period), YValue: l.Y, Label: l.Text})
	}
	return gochart.AnnotationSeries{
		Annotations: values,
		Style: gochart.Style{
			FontSize:    9.0,
			FontColor:   drawing.ColorFromHex(strings.TrimPrefix(group.color, "#")),
			FillColor:   drawing.ColorTransparent,
			StrokeWidth: gochart.Disabled,
		},
	}
}

func markerSeries(name string, points []Point, color string) gochart.Series {
	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		xs = append(xs, float64(p.Period))
		ys = append(ys, p.Y)
	}
	return gochart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style: gochart.Style{
			StrokeWidth: gochart.Disabled,
			DotWidth:    7.0,
			DotColor:    drawing.ColorFromHex(strings.TrimPrefix(color, "#")),
		},
	}
}

func lineSeries(name string, xs []float64, y float64, color string, dash []float64) gochart.Series {
	ys := make([]float64, len(xs))
	for i := range ys {
		ys[i] = y
	}
	return gochart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style: gochart.Style{
			StrokeColor:     drawing.ColorFromHex(strings.TrimPrefix(color, "#")),
			StrokeWidth:     5.0,
			StrokeDashArray: dash,
		},
	}
}

func axisTicks(fig Figure) []gochart.Tick {
	ticks := make([]gochart.Tick, 0, len(fig.Ticks))
	for i, label := range fig.Ticks {
		ticks = append(ticks, gochart.Tick{Value: float64(fig.XMin + i), Label: label})
	}
	return ticks
}
