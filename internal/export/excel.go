package export

import (
	"github.com/xuri/excelize/v2"

	"github.com/aayush1982/universal-timeline-viewer/internal/timeline"
)

const excelSheet = "Filtered"

// Excel encodes the view rows as a single-sheet workbook.
func Excel(rows []timeline.Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", excelSheet); err != nil {
		return nil, err
	}
	for i, row := range tabulate(rows) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		if err := f.SetSheetRow(excelSheet, cell, &cells); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
