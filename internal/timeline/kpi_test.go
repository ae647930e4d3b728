package timeline

import (
	"math"
	"testing"
	"time"

	"github.com/aayush1982/universal-timeline-viewer/internal/model"
)

func classified(t *testing.T, ms []model.Milestone, today time.Time) []Row {
	t.Helper()
	v := Build(ms, model.DefaultViewOptions(), today)
	return v.Rows
}

func TestComputeKPI(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	ms := []model.Milestone{
		{Name: "NTP", Contractual: date(2025, 1, 1), Actual: date(2025, 1, 1)},       // OnTime
		{Name: "Hydro", Contractual: date(2025, 2, 1), Actual: date(2025, 1, 22)},    // Early 10d
		{Name: "Light-Up", Contractual: date(2025, 3, 1), Actual: date(2025, 3, 20)}, // Delayed 19
		{Name: "Sync", Contractual: date(2025, 4, 1), Actual: date(2025, 4, 6)},      // Delayed 5
		{Name: "COD", Contractual: date(2026, 12, 15)},                               // Pending (future)
		{Name: "Handover"},                                                           // Pending (no dates)
	}

	kpi := ComputeKPI(classified(t, ms, today))

	if kpi.Total != 6 {
		t.Fatalf("total = %d, want 6", kpi.Total)
	}
	if kpi.WithActual != 4 {
		t.Fatalf("with_actual = %d, want 4", kpi.WithActual)
	}
	if kpi.ByStatus[model.StatusPending] != 2 {
		t.Fatalf("pending = %d, want 2", kpi.ByStatus[model.StatusPending])
	}

	// on-time % over the 4 non-Pending rows
	if kpi.OnTimePct == nil || math.Abs(*kpi.OnTimePct-25.0) > 1e-9 {
		t.Fatalf("on_time_pct = %v, want 25.0", kpi.OnTimePct)
	}
	if kpi.AvgDelayDays == nil || math.Abs(*kpi.AvgDelayDays-12.0) > 1e-9 {
		t.Fatalf("avg_delay_days = %v, want 12.0", kpi.AvgDelayDays)
	}
	if kpi.AvgEarlyDays == nil || math.Abs(*kpi.AvgEarlyDays-10.0) > 1e-9 {
		t.Fatalf("avg_early_days = %v, want 10.0", kpi.AvgEarlyDays)
	}
}

func TestComputeKPIAllPendingIsNA(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	ms := []model.Milestone{
		{Name: "A"},
		{Name: "B", Contractual: date(2026, 1, 1)},
	}

	kpi := ComputeKPI(classified(t, ms, today))
	if kpi.OnTimePct != nil {
		t.Fatalf("on_time_pct = %v, want N/A (nil)", kpi.OnTimePct)
	}
	if kpi.AvgDelayDays != nil || kpi.AvgEarlyDays != nil {
		t.Fatalf("averages should be N/A with no measured rows")
	}
}

func TestComputeKPIActualOnlyStaysUnmeasured(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	ms := []model.Milestone{
		{Name: "NTP", Contractual: date(2025, 1, 1), Actual: date(2025, 1, 1)},
		{Name: "Mobilization", Actual: date(2025, 2, 1)}, // no baseline
	}

	kpi := ComputeKPI(classified(t, ms, today))

	// the baseline-less row counts as Pending: out of the on-time
	// denominator, so the one measured row gives 100%
	if kpi.ByStatus[model.StatusPending] != 1 {
		t.Fatalf("pending = %d, want 1", kpi.ByStatus[model.StatusPending])
	}
	if kpi.OnTimePct == nil || *kpi.OnTimePct != 100.0 {
		t.Fatalf("on_time_pct = %v, want 100.0", kpi.OnTimePct)
	}
	if kpi.WithActual != 2 {
		t.Fatalf("with_actual = %d, want 2", kpi.WithActual)
	}
}

func TestGroupBreakdown(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	ms := []model.Milestone{
		{Name: "A", Group: "Boiler", Contractual: date(2025, 1, 1), Actual: date(2025, 1, 1)},
		{Name: "B", Group: "Boiler", Contractual: date(2025, 2, 1), Actual: date(2025, 2, 10)},
		{Name: "C", Group: "Electrical"},
	}

	groups := GroupBreakdown(classified(t, ms, today))
	if groups["Boiler"][model.StatusOnTime] != 1 || groups["Boiler"][model.StatusDelayed] != 1 {
		t.Fatalf("boiler breakdown wrong: %v", groups["Boiler"])
	}
	if groups["Electrical"][model.StatusPending] != 1 {
		t.Fatalf("electrical breakdown wrong: %v", groups["Electrical"])
	}
}
