// Package timeline is the functional core of the dashboard: given parsed
// milestones and a view configuration it derives status labels, timeline
// periods and KPIs. Build is a pure function; every request recomputes the
// whole view from the session's dataset and options.
package timeline

import (
	"strings"
	"time"

	"github.com/aayush1982/universal-timeline-viewer/internal/model"
)

// Row is one milestone with everything the chart and table need derived.
type Row struct {
	model.Milestone
	Status     model.StatusLabel `json:"status"`
	Overdue    bool              `json:"overdue,omitempty"`
	ActualOnly bool              `json:"actual_only,omitempty"`
	DelayDays  *int              `json:"delay_days,omitempty"`

	ContractualPeriod *int   `json:"contractual_period,omitempty"`
	ActualPeriod      *int   `json:"actual_period,omitempty"`
	ContractualLabel  string `json:"contractual_label"`
	ActualLabel       string `json:"actual_label"`
}

// View is the full recomputed dashboard state for one render.
type View struct {
	Rows        []Row                               `json:"rows"`
	KPI         KPI                                 `json:"kpi"`
	Groups      map[string]map[model.StatusLabel]int `json:"groups,omitempty"`
	Anchor      time.Time                           `json:"anchor"`
	Granularity model.Granularity                   `json:"granularity"`
	TodayPeriod int                                 `json:"today_period"`
	XMin        int                                 `json:"x_min"`
	XMax        int                                 `json:"x_max"`
	Warnings    []string                            `json:"warnings,omitempty"`
}

// Build classifies, buckets, filters and aggregates in one pass. today is a
// parameter rather than read inside so renders are reproducible in tests.
func Build(ms []model.Milestone, opts model.ViewOptions, today time.Time) View {
	anchor, warnings := ResolveAnchor(ms, opts, today)

	rows := make([]Row, 0, len(ms))
	for _, m := range ms {
		cl := Classify(m, today)
		r := Row{
			Milestone:         m,
			Status:            cl.Status,
			Overdue:           cl.Overdue,
			ActualOnly:        cl.ActualOnly,
			DelayDays:         cl.DelayDays,
			ContractualPeriod: periodOf(anchor, m.Contractual, opts.Granularity),
			ActualPeriod:      periodOf(anchor, m.Actual, opts.Granularity),
			ContractualLabel:  opts.TickFormat.Format(m.Contractual),
			ActualLabel:       opts.TickFormat.Format(m.Actual),
		}
		rows = append(rows, r)
	}

	rows = applyFilters(rows, opts, today)

	todayPeriod := PeriodOffset(anchor, truncateDay(today), opts.Granularity)
	xMin, xMax := axisRange(rows, todayPeriod)

	return View{
		Rows:        rows,
		KPI:         ComputeKPI(rows),
		Groups:      groupsOrNil(rows, opts),
		Anchor:      anchor,
		Granularity: opts.Granularity,
		TodayPeriod: todayPeriod,
		XMin:        xMin,
		XMax:        xMax,
		Warnings:    warnings,
	}
}

// applyFilters runs search, status and future-only filters, in that order,
// before any KPI or axis computation so the cards reflect what is visible.
func applyFilters(rows []Row, opts model.ViewOptions, today time.Time) []Row {
	out := rows[:0:0]
	search := strings.ToLower(strings.TrimSpace(opts.Search))
	now := truncateDay(today)

	for _, r := range rows {
		if search != "" && !strings.Contains(strings.ToLower(r.Name), search) {
			continue
		}
		if len(opts.StatusFilter) > 0 && !containsStatus(opts.StatusFilter, r.Status) {
			continue
		}
		if opts.FutureOnly && r.Contractual != nil && r.Contractual.Before(now) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func containsStatus(set []model.StatusLabel, s model.StatusLabel) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// axisRange spans from min(0, earliest period) out to two periods past
// today so the today line never sits on the edge of the chart.
func axisRange(rows []Row, todayPeriod int) (int, int) {
	min, max := 0, todayPeriod+2
	for _, r := range rows {
		for _, p := range []*int{r.ContractualPeriod, r.ActualPeriod} {
			if p == nil {
				continue
			}
			if *p < min {
				min = *p
			}
			if *p > max {
				max = *p
			}
		}
	}
	return min, max
}

func groupsOrNil(rows []Row, opts model.ViewOptions) map[string]map[model.StatusLabel]int {
	if opts.Mapping.Group == "" {
		return nil
	}
	return GroupBreakdown(rows)
}
