package ingest

import (
	"github.com/xuri/excelize/v2"
)

const templateSheet = "Unit#1"

// templateRows are the sample milestones shipped in the downloadable
// template so a new user sees the expected column shape.
var templateRows = [][]interface{}{
	{"Milestones", "Contractual", "Actual/ Anticipated", "Category"},
	{"Notice to Proceed", "2025-01-15", "2025-01-15", "Project"},
	{"Boiler Hydrostatic Test", "2026-03-30", "", "Boiler"},
	{"Boiler Light-Up", "2026-07-15", "2026-07-20", "Boiler"},
	{"Synchronization", "2026-09-30", "", "Electrical"},
	{"COD", "2026-12-15", "", "Commercial"},
}

// Template builds the starter workbook offered for download.
func Template() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", templateSheet); err != nil {
		return nil, err
	}
	for i, row := range templateRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(templateSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
