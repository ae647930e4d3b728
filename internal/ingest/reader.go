// Package ingest turns uploaded spreadsheet bytes into raw datasets and
// extracts typed milestones from them once a column mapping is chosen.
// Parsing is deliberately forgiving: bad cells become warnings, never
// request-fatal errors.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/aayush1982/universal-timeline-viewer/internal/model"
)

// Read parses an uploaded file into a raw Dataset. Excel workbooks honor
// the sheet argument (empty picks the first sheet); CSV has a single
// implicit sheet. Legacy .xls is not supported and reports UnreadableFile.
func Read(filename string, r io.Reader, sheet string) (*model.Dataset, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return readExcel(filename, r, sheet)
	case ".csv":
		return readCSV(filename, r)
	default:
		return nil, fmt.Errorf("%w: %s (want .xlsx, .xlsm or .csv)", ErrUnreadableFile, filename)
	}
}

func readExcel(filename string, r io.Reader, sheet string) (*model.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrEmptyDataset)
	}
	if sheet == "" {
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", ErrUnreadableFile, sheet, err)
	}

	ds, err := fromTable(filename, sheet, rows)
	if err != nil {
		return nil, err
	}
	ds.Sheets = sheets
	return ds, nil
}

func readCSV(filename string, r io.Reader) (*model.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are padded later

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	return fromTable(filename, "", rows)
}

func fromTable(filename, sheet string, rows [][]string) (*model.Dataset, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = cleanHeader(h)
	}

	body := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		body = append(body, padRow(row, len(headers)))
	}
	if len(body) == 0 {
		return nil, ErrEmptyDataset
	}

	return &model.Dataset{
		Filename: filename,
		Sheet:    sheet,
		Headers:  headers,
		Rows:     body,
	}, nil
}

// cleanHeader trims and collapses embedded newlines, which Excel headers
// wrapped across lines otherwise carry into the mapping dropdowns.
func cleanHeader(h string) string {
	return strings.Join(strings.Fields(h), " ")
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func padRow(row []string, n int) []string {
	if len(row) >= n {
		return row[:n]
	}
	out := make([]string, n)
	copy(out, row)
	return out
}

// ListSheets returns the sheet names of an Excel upload, empty for CSV.
func ListSheets(filename string, r io.Reader) ([]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
	default:
		return nil, nil
	}
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}
