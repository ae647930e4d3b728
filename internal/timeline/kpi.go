package timeline

import "github.com/aayush1982/universal-timeline-viewer/internal/model"

// KPI is the summary card set over a classified milestone list. Percentage
// and averages are nil when their denominator is empty, rendered as "N/A"
// rather than treated as an error.
type KPI struct {
	Total        int                       `json:"total"`
	WithActual   int                       `json:"with_actual"`
	ByStatus     map[model.StatusLabel]int `json:"by_status"`
	OnTimePct    *float64                  `json:"on_time_pct,omitempty"`
	AvgDelayDays *float64                  `json:"avg_delay_days,omitempty"`
	AvgEarlyDays *float64                  `json:"avg_early_days,omitempty"`
}

// ComputeKPI aggregates the classified rows. On-time percentage uses
// OnTime / (Total − Pending); Pending rows count toward Total but never
// toward the delay or early averages.
func ComputeKPI(rows []Row) KPI {
	kpi := KPI{ByStatus: make(map[model.StatusLabel]int)}

	var delaySum, earlySum float64
	var delayN, earlyN int

	for _, r := range rows {
		kpi.Total++
		kpi.ByStatus[r.Status]++
		if r.Actual != nil {
			kpi.WithActual++
		}
		if r.DelayDays == nil {
			continue
		}
		switch {
		case *r.DelayDays > 0:
			delaySum += float64(*r.DelayDays)
			delayN++
		case *r.DelayDays < 0:
			earlySum += float64(-*r.DelayDays)
			earlyN++
		}
	}

	if evaluated := kpi.Total - kpi.ByStatus[model.StatusPending]; evaluated > 0 {
		pct := float64(kpi.ByStatus[model.StatusOnTime]) / float64(evaluated) * 100.0
		kpi.OnTimePct = &pct
	}
	if delayN > 0 {
		avg := delaySum / float64(delayN)
		kpi.AvgDelayDays = &avg
	}
	if earlyN > 0 {
		avg := earlySum / float64(earlyN)
		kpi.AvgEarlyDays = &avg
	}
	return kpi
}

// GroupBreakdown cross-tabulates group against status. Rows without a
// mapped group fall under the empty key.
func GroupBreakdown(rows []Row) map[string]map[model.StatusLabel]int {
	out := make(map[string]map[model.StatusLabel]int)
	for _, r := range rows {
		if out[r.Group] == nil {
			out[r.Group] = make(map[model.StatusLabel]int)
		}
		out[r.Group][r.Status]++
	}
	return out
}
