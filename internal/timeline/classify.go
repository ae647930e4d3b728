package timeline

import (
	"time"

	"github.com/aayush1982/universal-timeline-viewer/internal/model"
)

// Classification is the derived schedule state of one milestone.
type Classification struct {
	Status model.StatusLabel

	// Overdue marks a Delayed milestone whose contractual date has passed
	// without an actual date (anticipated overdue, not measured slippage).
	Overdue bool

	// ActualOnly marks a milestone with an actual date but no contractual
	// baseline to compare against.
	ActualOnly bool

	// DelayDays is actual minus contractual in whole days, negative when
	// early. Nil unless both dates are present.
	DelayDays *int
}

// Classify derives the status of a milestone relative to today. Comparison
// is by calendar date only; time-of-day is discarded.
//
// Precedence: both dates absent → Pending; contractual only → Delayed when
// overdue else Pending; both present → compare actual against contractual.
// An actual date with no contractual baseline is Pending with ActualOnly
// set, since there is nothing to measure it against.
func Classify(m model.Milestone, today time.Time) Classification {
	c := dateOnly(m.Contractual)
	a := dateOnly(m.Actual)
	now := truncateDay(today)

	switch {
	case c == nil && a == nil:
		return Classification{Status: model.StatusPending}
	case c == nil:
		return Classification{Status: model.StatusPending, ActualOnly: true}
	case a == nil:
		if c.Before(now) {
			return Classification{Status: model.StatusDelayed, Overdue: true}
		}
		return Classification{Status: model.StatusPending}
	}

	days := int(a.Sub(*c).Hours() / 24)
	cl := Classification{DelayDays: &days}
	switch {
	case a.Equal(*c):
		cl.Status = model.StatusOnTime
	case a.Before(*c):
		cl.Status = model.StatusEarly
	default:
		cl.Status = model.StatusDelayed
	}
	return cl
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := truncateDay(*t)
	return &d
}
