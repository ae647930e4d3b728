package timeline

import (
	"testing"
	"time"

	"github.com/aayush1982/universal-timeline-viewer/internal/model"
)

func TestPeriodOffsetMonthly(t *testing.T) {
	anchor := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		d    time.Time
		want int
	}{
		{time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), 3},
		{time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 12},
		{time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC), -2},
	}
	for _, tt := range tests {
		if got := PeriodOffset(anchor, tt.d, model.GranularityMonthly); got != tt.want {
			t.Errorf("PeriodOffset(%s) = %d, want %d", tt.d.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestPeriodOffsetQuarterly(t *testing.T) {
	anchor := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		d    time.Time
		want int
	}{
		{time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 0},  // month 1
		{time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), 1}, // month 3
		{time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), 3}, // month 11
		// truncation toward zero: 2 months before the anchor is still quarter 0
		{time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), -1},
	}
	for _, tt := range tests {
		if got := PeriodOffset(anchor, tt.d, model.GranularityQuarterly); got != tt.want {
			t.Errorf("PeriodOffset(%s) = %d, want %d", tt.d.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestPeriodStartRoundTrip(t *testing.T) {
	anchor := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	for _, p := range []int{-4, 0, 3, 13} {
		d := PeriodStart(anchor, p, model.GranularityMonthly)
		if got := PeriodOffset(anchor, d, model.GranularityMonthly); got != p {
			t.Errorf("monthly round trip for period %d gave %d", p, got)
		}
	}
	for _, p := range []int{-2, 0, 5} {
		d := PeriodStart(anchor, p, model.GranularityQuarterly)
		if got := PeriodOffset(anchor, d, model.GranularityQuarterly); got != p {
			t.Errorf("quarterly round trip for period %d gave %d", p, got)
		}
	}
}
