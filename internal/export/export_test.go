package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/aayush1982/universal-timeline-viewer/internal/model"
	"github.com/aayush1982/universal-timeline-viewer/internal/timeline"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func intp(v int) *int { return &v }

func sampleRows() []timeline.Row {
	return []timeline.Row{
		{
			Milestone:         model.Milestone{Name: "Notice to Proceed", Group: "Project", Contractual: date(2025, 1, 15), Actual: date(2025, 1, 15)},
			Status:            model.StatusOnTime,
			DelayDays:         intp(0),
			ContractualPeriod: intp(0),
			ActualPeriod:      intp(0),
		},
		{
			Milestone:         model.Milestone{Name: "COD", Group: "Commercial", Contractual: date(2026, 12, 15)},
			Status:            model.StatusPending,
			ContractualPeriod: intp(23),
		},
	}
}

func TestCSVExport(t *testing.T) {
	data, err := CSV(sampleRows())
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want header + 2 rows", len(records))
	}
	if records[0][0] != "Milestone" || records[0][4] != "Status" {
		t.Fatalf("header = %v", records[0])
	}
	if records[1][2] != "2025-01-15" || records[1][4] != "On-Time" {
		t.Fatalf("first row = %v", records[1])
	}
	// absent values stay empty, not zero
	if records[2][3] != "" || records[2][5] != "" {
		t.Fatalf("pending row = %v", records[2])
	}
	if records[2][6] != "23" {
		t.Fatalf("pending contractual period = %q, want 23", records[2][6])
	}
}

func TestExcelExport(t *testing.T) {
	data, err := Excel(sampleRows())
	if err != nil {
		t.Fatalf("Excel: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Filtered" {
		t.Fatalf("sheets = %v, want [Filtered]", sheets)
	}

	rows, err := f.GetRows("Filtered")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[1][0] != "Notice to Proceed" || rows[1][4] != "On-Time" {
		t.Fatalf("first data row = %v", rows[1])
	}
}
