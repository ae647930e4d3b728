package ingest

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts covers what shows up in real milestone sheets: ISO, slash and
// dash forms, month names, and excelize's default number-format output.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-06",
	"1-2-06",
	"02-Jan-06",
	"2-Jan-06",
	"02-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	time.RFC3339,
}

// emptyCells are values treated as an intentionally absent date.
var emptyCells = map[string]bool{"": true, "-": true, "—": true, "n/a": true, "na": true, "tbd": true}

// ParseDate converts a spreadsheet cell into a calendar date normalized to
// midnight UTC. The second return is false only for a malformed value; an
// intentionally blank cell is (nil, true). Excel serial numbers are
// accepted since raw cells survive some CSV exports.
func ParseDate(cell string) (*time.Time, bool) {
	s := strings.TrimSpace(cell)
	if emptyCells[strings.ToLower(s)] {
		return nil, true
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d, true
		}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if d, ok := fromExcelSerial(serial); ok {
			return &d, true
		}
	}

	return nil, false
}

// fromExcelSerial converts an Excel serial day number. Day 1 is
// 1900-01-01, with the epoch shifted to 1899-12-30 to absorb Excel's
// fictitious 1900 leap day. Values outside a sane date window are
// rejected so plain numeric columns are not mistaken for dates.
func fromExcelSerial(serial float64) (time.Time, bool) {
	if serial < 61 || serial > 219146 { // 1900-03-01 .. 2499-12-31
		return time.Time{}, false
	}
	epoch := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	d := epoch.AddDate(0, 0, int(serial))
	return d, true
}
