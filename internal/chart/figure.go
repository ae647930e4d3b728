// Package chart builds the renderable timeline figure from a computed view
// and encodes it as interactive HTML or a static PNG. The figure model is
// renderer-neutral so both encoders consume the same points.
package chart

import (
	"fmt"
	"strconv"

	"github.com/aayush1982/universal-timeline-viewer/internal/model"
	"github.com/aayush1982/universal-timeline-viewer/internal/timeline"
)

// Track y positions. The chart is a thin horizontal band: contractual
// markers ride the upper track, actual markers the lower one.
const (
	trackContractual = 1.00
	trackActual      = 0.98
)

// Label row y positions: contractual names above the upper track, the
// period index between the tracks, status-colored names below the lower.
const (
	labelContractual = 1.022
	labelIndex       = 0.99
	labelActual      = 0.958
)

const indexColor = "#334155"

// Point is one marker on the timeline.
type Point struct {
	Name   string
	Period int // periods relative to the anchor
	Y      float64
	Color  string
	Label  string // tick-formatted date for the tooltip
	Badge  string // "Delay +19d" style annotation, may be empty
}

// Label is one text annotation pinned to a period on the axis.
type Label struct {
	Text   string
	Period int
	Y      float64
	Color  string
}

// Figure is the renderable chart: two marker tracks over a shared period
// axis, plus the today line, text annotations and tick labels.
type Figure struct {
	Title       string
	Theme       Theme
	Contractual []Point
	Actual      []Point
	Labels      []Label  // milestone name annotations, empty when toggled off
	Index       []Label  // period index row, empty when toggled off
	Ticks       []string // one label per period from XMin to XMax
	XMin        int
	XMax        int
	TodayPeriod int
	ShowToday   bool
}

// NewFigure lays a computed view out as chart geometry.
func NewFigure(v timeline.View, opts model.ViewOptions) Figure {
	fig := Figure{
		Title:       "Milestone Timeline",
		Theme:       ThemeByName(opts.Theme),
		XMin:        v.XMin,
		XMax:        v.XMax,
		TodayPeriod: v.TodayPeriod,
		ShowToday:   opts.ShowToday,
	}

	for p := v.XMin; p <= v.XMax; p++ {
		d := timeline.PeriodStart(v.Anchor, p, v.Granularity)
		fig.Ticks = append(fig.Ticks, opts.TickFormat.Format(&d))
	}

	for _, r := range v.Rows {
		if r.ContractualPeriod != nil {
			fig.Contractual = append(fig.Contractual, Point{
				Name:   r.Name,
				Period: *r.ContractualPeriod,
				Y:      trackContractual,
				Color:  fig.Theme.Contract,
				Label:  r.ContractualLabel,
			})
		}
		if r.ActualPeriod != nil {
			fig.Actual = append(fig.Actual, Point{
				Name:   r.Name,
				Period: *r.ActualPeriod,
				Y:      trackActual,
				Color:  fig.Theme.StatusColor(r),
				Label:  r.ActualLabel,
				Badge:  badge(r, opts),
			})
		}
	}

	if opts.ShowLabels {
		fig.Labels = nameLabels(v.Rows, fig.Theme, opts)
	}
	if opts.ShowMonthIndex {
		for p := v.XMin; p <= v.XMax; p++ {
			fig.Index = append(fig.Index, Label{Text: strconv.Itoa(p), Period: p, Y: labelIndex, Color: indexColor})
		}
	}
	return fig
}

// nameLabels builds the rotated-name annotation rows: the contractual name
// above the upper track and a status-colored name below the lower one.
// Rows without an actual marker (pending, overdue) pin the status label to
// their contractual period so their state is still visible on the chart.
func nameLabels(rows []timeline.Row, theme Theme, opts model.ViewOptions) []Label {
	var labels []Label
	for _, r := range rows {
		if r.ContractualPeriod != nil {
			labels = append(labels, Label{Text: r.Name, Period: *r.ContractualPeriod, Y: labelContractual, Color: theme.Contract})
		}

		period := r.ActualPeriod
		if period == nil {
			period = r.ContractualPeriod
		}
		if period == nil {
			continue
		}
		text := r.Name
		if b := badge(r, opts); b != "" {
			text = fmt.Sprintf("%s (%s)", r.Name, b)
		}
		labels = append(labels, Label{Text: text, Period: *period, Y: labelActual, Color: theme.StatusColor(r)})
	}
	return labels
}

func badge(r timeline.Row, opts model.ViewOptions) string {
	if !opts.ShowBadges || r.DelayDays == nil {
		return ""
	}
	switch {
	case *r.DelayDays > 0:
		return fmt.Sprintf("Delay +%dd", *r.DelayDays)
	case *r.DelayDays < 0:
		return fmt.Sprintf("Early %dd", -*r.DelayDays)
	default:
		return "On-Time"
	}
}

// tickIndex converts a period offset into the category-axis index.
func (f Figure) tickIndex(period int) int {
	return period - f.XMin
}

type labelGroup struct {
	color  string
	labels []Label
}

// labelGroups buckets annotations by color, preserving first-seen order,
// since both encoders color text per series rather than per item.
func labelGroups(labels []Label) []labelGroup {
	var order []string
	byColor := make(map[string][]Label)
	for _, l := range labels {
		if _, ok := byColor[l.Color]; !ok {
			order = append(order, l.Color)
		}
		byColor[l.Color] = append(byColor[l.Color], l)
	}

	groups := make([]labelGroup, 0, len(order))
	for _, c := range order {
		groups = append(groups, labelGroup{color: c, labels: byColor[c]})
	}
	return groups
}
