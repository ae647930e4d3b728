package export

import (
	"bytes"
	"encoding/csv"

	"github.com/aayush1982/universal-timeline-viewer/internal/timeline"
)

// CSV encodes the view rows as a flat UTF-8 CSV with a header row.
func CSV(rows []timeline.Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(tabulate(rows)); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
