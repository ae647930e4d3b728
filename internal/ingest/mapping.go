package ingest

import (
	"fmt"
	"strings"

	"github.com/aayush1982/universal-timeline-viewer/internal/model"
)

// Candidate headers for the column-mapping guess, tried in order. These are
// the spellings seen across real milestone sheets; matching is exact after
// trimming and lowercasing.
var (
	nameCandidates     = []string{"Milestones", "Milestone", "Activity", "Name", "Event"}
	contractCandidates = []string{"Contractual", "Baseline", "Planned", "Target", "Plan", "Contract"}
	actualCandidates   = []string{"Actual/ Anticipated", "Actual/Anticipated", "Actual", "Forecast", "Anticipated", "Revised", "Achieved"}
	groupCandidates    = []string{"Category", "Discipline", "Phase", "Package", "System", "Area"}
)

// GuessMapping preselects a column mapping from the uploaded headers. The
// required fields fall back to the first column when nothing matches so the
// dropdowns always have a selection; Group stays empty unless a candidate
// header is present.
func GuessMapping(headers []string) model.ColumnMapping {
	return model.ColumnMapping{
		Name:        guess(headers, nameCandidates, true),
		Contractual: guess(headers, contractCandidates, true),
		Actual:      guess(headers, actualCandidates, true),
		Group:       guess(headers, groupCandidates, false),
	}
}

func guess(headers, candidates []string, fallbackFirst bool) string {
	for _, c := range candidates {
		for _, h := range headers {
			if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(c)) {
				return h
			}
		}
	}
	if fallbackFirst && len(headers) > 0 {
		return headers[0]
	}
	return ""
}

// ExtractMilestones applies a column mapping to the raw dataset. Rows with
// a blank name are dropped with a warning; unparseable dates become absent
// dates with a warning. Neither is fatal.
func ExtractMilestones(ds *model.Dataset, mapping model.ColumnMapping) ([]model.Milestone, []string, error) {
	idx, err := resolveIndexes(ds.Headers, mapping)
	if err != nil {
		return nil, nil, err
	}

	var ms []model.Milestone
	var warnings []string
	for i, row := range ds.Rows {
		rowNum := i + 2 // header is row 1

		name := strings.TrimSpace(cellAt(row, idx.name))
		if name == "" {
			warnings = append(warnings, fmt.Sprintf("row %d: blank milestone name, row dropped", rowNum))
			continue
		}

		m := model.Milestone{Name: name}
		if idx.group >= 0 {
			m.Group = strings.TrimSpace(cellAt(row, idx.group))
		}

		cell := cellAt(row, idx.contractual)
		if d, ok := ParseDate(cell); ok {
			m.Contractual = d
		} else {
			warnings = append(warnings, fmt.Sprintf("row %d: unparseable contractual date %q, treated as absent", rowNum, cell))
		}

		cell = cellAt(row, idx.actual)
		if d, ok := ParseDate(cell); ok {
			m.Actual = d
		} else {
			warnings = append(warnings, fmt.Sprintf("row %d: unparseable actual date %q, treated as absent", rowNum, cell))
		}

		ms = append(ms, m)
	}

	if len(ms) == 0 {
		return nil, warnings, ErrEmptyDataset
	}
	return ms, warnings, nil
}

type columnIndexes struct {
	name, contractual, actual, group int
}

func resolveIndexes(headers []string, mapping model.ColumnMapping) (columnIndexes, error) {
	idx := columnIndexes{group: -1}
	var err error

	if idx.name, err = headerIndex(headers, mapping.Name, "name"); err != nil {
		return idx, err
	}
	if idx.contractual, err = headerIndex(headers, mapping.Contractual, "contractual date"); err != nil {
		return idx, err
	}
	if idx.actual, err = headerIndex(headers, mapping.Actual, "actual date"); err != nil {
		return idx, err
	}
	if mapping.Group != "" {
		if idx.group, err = headerIndex(headers, mapping.Group, "group"); err != nil {
			return idx, err
		}
	}
	return idx, nil
}

func headerIndex(headers []string, header, field string) (int, error) {
	if strings.TrimSpace(header) == "" {
		return -1, fmt.Errorf("%w: %s", ErrMissingColumn, field)
	}
	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(header)) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s (%q not in sheet)", ErrMissingColumn, field, header)
}

func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
