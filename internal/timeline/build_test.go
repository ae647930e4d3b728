package timeline

import (
	"reflect"
	"testing"
	"time"

	"github.com/aayush1982/universal-timeline-viewer/internal/model"
)

func TestBuildNTPScenario(t *testing.T) {
	today := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	ms := []model.Milestone{
		{Name: "Notice to Proceed", Contractual: date(2025, 1, 1), Actual: date(2025, 1, 1)},
		{Name: "Hydro Test", Contractual: date(2025, 4, 15)},
	}

	v := Build(ms, model.DefaultViewOptions(), today)

	if !v.Anchor.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("anchor = %s, want 2025-01-01", v.Anchor)
	}
	hydro := v.Rows[1]
	if hydro.ContractualPeriod == nil || *hydro.ContractualPeriod != 3 {
		t.Fatalf("hydro period = %v, want 3", hydro.ContractualPeriod)
	}
}

func TestBuildIdempotent(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	ms := []model.Milestone{
		{Name: "NTP", Contractual: date(2025, 1, 1), Actual: date(2025, 1, 1)},
		{Name: "COD", Contractual: date(2026, 12, 15)},
		{Name: "Floating"},
	}
	opts := model.DefaultViewOptions()

	first := Build(ms, opts, today)
	second := Build(ms, opts, today)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("rebuilding with unchanged inputs produced a different view")
	}
}

func TestBuildFilters(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	ms := []model.Milestone{
		{Name: "Boiler Hydro", Contractual: date(2025, 1, 1), Actual: date(2025, 1, 1)},
		{Name: "Boiler Light-Up", Contractual: date(2025, 2, 1), Actual: date(2025, 2, 10)},
		{Name: "Synchronization", Contractual: date(2026, 9, 30)},
	}

	opts := model.DefaultViewOptions()
	opts.Search = "boiler"
	v := Build(ms, opts, today)
	if len(v.Rows) != 2 {
		t.Fatalf("search filter kept %d rows, want 2", len(v.Rows))
	}

	opts = model.DefaultViewOptions()
	opts.StatusFilter = []model.StatusLabel{model.StatusDelayed}
	v = Build(ms, opts, today)
	if len(v.Rows) != 1 || v.Rows[0].Name != "Boiler Light-Up" {
		t.Fatalf("status filter gave %v", v.Rows)
	}
	// KPIs follow the filtered set
	if v.KPI.Total != 1 {
		t.Fatalf("filtered KPI total = %d, want 1", v.KPI.Total)
	}

	opts = model.DefaultViewOptions()
	opts.FutureOnly = true
	v = Build(ms, opts, today)
	if len(v.Rows) != 1 || v.Rows[0].Name != "Synchronization" {
		t.Fatalf("future-only filter gave %v", v.Rows)
	}
}

func TestBuildAxisRangeCoversToday(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	ms := []model.Milestone{
		{Name: "NTP", Contractual: date(2025, 1, 1)},
	}

	v := Build(ms, model.DefaultViewOptions(), today)
	if v.XMin != 0 {
		t.Fatalf("x_min = %d, want 0", v.XMin)
	}
	// today is month 5; axis pads two periods past it
	if v.TodayPeriod != 5 || v.XMax != 7 {
		t.Fatalf("today=%d x_max=%d, want 5 and 7", v.TodayPeriod, v.XMax)
	}
}

func TestBuildGroupsOnlyWhenMapped(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	ms := []model.Milestone{{Name: "A", Group: "Boiler", Contractual: date(2025, 1, 1)}}

	v := Build(ms, model.DefaultViewOptions(), today)
	if v.Groups != nil {
		t.Fatal("groups computed without a mapped group column")
	}

	opts := model.DefaultViewOptions()
	opts.Mapping.Group = "Category"
	v = Build(ms, opts, today)
	if v.Groups == nil || v.Groups["Boiler"] == nil {
		t.Fatalf("groups missing: %v", v.Groups)
	}
}
