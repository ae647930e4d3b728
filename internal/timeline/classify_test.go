package timeline

import (
	"testing"
	"time"

	"github.com/aayush1982/universal-timeline-viewer/internal/model"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestClassifyPrecedence(t *testing.T) {
	today := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC) // time of day must not matter

	tests := []struct {
		name        string
		contractual *time.Time
		actual      *time.Time
		wantStatus  model.StatusLabel
		wantOverdue bool
	}{
		{"both absent", nil, nil, model.StatusPending, false},
		{"contractual overdue no actual", date(2025, 1, 10), nil, model.StatusDelayed, true},
		{"contractual today no actual", date(2025, 6, 1), nil, model.StatusPending, false},
		{"contractual future no actual", date(2025, 9, 1), nil, model.StatusPending, false},
		{"equal dates", date(2025, 3, 1), date(2025, 3, 1), model.StatusOnTime, false},
		{"actual before contractual", date(2025, 1, 10), date(2025, 1, 5), model.StatusEarly, false},
		{"actual after contractual", date(2025, 3, 1), date(2025, 3, 20), model.StatusDelayed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl := Classify(model.Milestone{Name: "M", Contractual: tt.contractual, Actual: tt.actual}, today)
			if cl.Status != tt.wantStatus {
				t.Fatalf("status = %s, want %s", cl.Status, tt.wantStatus)
			}
			if cl.Overdue != tt.wantOverdue {
				t.Fatalf("overdue = %v, want %v", cl.Overdue, tt.wantOverdue)
			}
		})
	}
}

func TestClassifyDelayDays(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	cl := Classify(model.Milestone{Contractual: date(2025, 1, 10), Actual: date(2025, 1, 5)}, today)
	if cl.DelayDays == nil || *cl.DelayDays != -5 {
		t.Fatalf("early delay days = %v, want -5", cl.DelayDays)
	}

	cl = Classify(model.Milestone{Contractual: date(2025, 3, 1), Actual: date(2025, 3, 20)}, today)
	if cl.DelayDays == nil || *cl.DelayDays != 19 {
		t.Fatalf("delayed delay days = %v, want 19", cl.DelayDays)
	}

	// no delay statistics without both dates
	cl = Classify(model.Milestone{Contractual: date(2025, 1, 10)}, today)
	if cl.DelayDays != nil {
		t.Fatalf("delay days without actual = %v, want nil", cl.DelayDays)
	}
}

func TestClassifyActualOnly(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	cl := Classify(model.Milestone{Actual: date(2025, 2, 1)}, today)
	if cl.Status != model.StatusPending || !cl.ActualOnly {
		t.Fatalf("actual-only classified as %s (actualOnly=%v), want Pending with flag", cl.Status, cl.ActualOnly)
	}
	if cl.DelayDays != nil {
		t.Fatalf("actual-only must carry no delay statistics")
	}
}

func TestClassifyIgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	c := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	a := time.Date(2025, 3, 1, 23, 45, 0, 0, time.UTC)

	cl := Classify(model.Milestone{Contractual: &c, Actual: &a}, today)
	if cl.Status != model.StatusOnTime {
		t.Fatalf("same-day dates with different times = %s, want On-Time", cl.Status)
	}
}
