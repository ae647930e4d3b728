package timeline

import (
	"strings"
	"time"

	"github.com/aayush1982/universal-timeline-viewer/internal/model"
)

const noticeToProceed = "notice to proceed"

// ResolveAnchor picks the date that becomes period 0 of the timeline.
// Fallback chain: custom date when the mode asks for one, then the
// contractual date of the "Notice to Proceed" row, then the earliest
// contractual date, then today. Every fallback past the requested mode is
// reported as a warning so the UI can surface it inline.
func ResolveAnchor(ms []model.Milestone, opts model.ViewOptions, today time.Time) (time.Time, []string) {
	var warnings []string

	if opts.AnchorMode == model.AnchorCustom {
		if opts.AnchorDate != nil {
			return truncateDay(*opts.AnchorDate), nil
		}
		warnings = append(warnings, "custom anchor selected but no date supplied; falling back to first contractual date")
	}

	if opts.AnchorMode == model.AnchorNoticeToProceed {
		for _, m := range ms {
			if strings.ToLower(strings.TrimSpace(m.Name)) == noticeToProceed && m.Contractual != nil {
				return truncateDay(*m.Contractual), warnings
			}
		}
		warnings = append(warnings, "'Notice to Proceed' not found with a contractual date; falling back to first contractual date")
	}

	if first := earliestContractual(ms); first != nil {
		return truncateDay(*first), warnings
	}

	warnings = append(warnings, "no contractual dates present; anchoring timeline on today")
	return truncateDay(today), warnings
}

func earliestContractual(ms []model.Milestone) *time.Time {
	var min *time.Time
	for _, m := range ms {
		if m.Contractual == nil {
			continue
		}
		if min == nil || m.Contractual.Before(*min) {
			min = m.Contractual
		}
	}
	return min
}
