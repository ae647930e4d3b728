// Package export encodes a computed view as downloadable artifacts. Every
// encoder works off the same classified rows the dashboard shows, so a
// download always matches the filtered view on screen.
package export

import (
	"strconv"
	"time"

	"github.com/aayush1982/universal-timeline-viewer/internal/timeline"
)

// Columns of the tabular exports, in order.
var columns = []string{"Milestone", "Group", "Contractual", "Actual", "Status", "Delay Days", "Contractual Period", "Actual Period"}

const dateLayout = "2006-01-02"

// tabulate flattens rows into the shared export shape. Absent dates and
// periods render as empty cells, not zero values.
func tabulate(rows []timeline.Row) [][]string {
	out := make([][]string, 0, len(rows)+1)
	out = append(out, columns)
	for _, r := range rows {
		out = append(out, []string{
			r.Name,
			r.Group,
			formatDate(r.Contractual),
			formatDate(r.Actual),
			r.Status.String(),
			formatInt(r.DelayDays),
			formatInt(r.ContractualPeriod),
			formatInt(r.ActualPeriod),
		})
	}
	return out
}

func formatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(dateLayout)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
