package timeline

import (
	"time"

	"github.com/aayush1982/universal-timeline-viewer/internal/model"
)

// MonthOffset returns the whole-month distance from anchor to d, ignoring
// day-of-month. Negative when d precedes the anchor.
func MonthOffset(anchor, d time.Time) int {
	return (d.Year()-anchor.Year())*12 + int(d.Month()) - int(anchor.Month())
}

// PeriodOffset buckets d into an integer period index relative to the
// anchor. Monthly mode is the raw month offset; quarterly mode divides by
// three truncating toward zero, so the anchor's own quarter is period 0 on
// both sides of it.
func PeriodOffset(anchor, d time.Time, g model.Granularity) int {
	months := MonthOffset(anchor, d)
	if g == model.GranularityQuarterly {
		return months / 3
	}
	return months
}

// PeriodStart returns the calendar date a period index maps back to, used
// for tick labels along the axis.
func PeriodStart(anchor time.Time, period int, g model.Granularity) time.Time {
	return anchor.AddDate(0, period*g.Months(), 0)
}

func periodOf(anchor time.Time, d *time.Time, g model.Granularity) *int {
	if d == nil {
		return nil
	}
	p := PeriodOffset(anchor, *d, g)
	return &p
}
