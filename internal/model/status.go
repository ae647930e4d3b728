package model

import (
	"fmt"
	"strings"
)

// StatusLabel classifies a milestone against today's date.
type StatusLabel string

const (
	StatusOnTime  StatusLabel = "On-Time"
	StatusEarly   StatusLabel = "Early"
	StatusDelayed StatusLabel = "Delayed"
	StatusPending StatusLabel = "Pending"
)

// AllStatuses lists the labels in display order.
func AllStatuses() []StatusLabel {
	return []StatusLabel{StatusOnTime, StatusEarly, StatusDelayed, StatusPending}
}

func (s StatusLabel) String() string { return string(s) }

// ParseStatus canonicalizes a status label. Legacy spellings from older
// exports ("Pending (Overdue)", "Actual Only") fold into their current
// labels so re-imported filters keep working.
func ParseStatus(s string) (StatusLabel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on-time", "on time", "ontime":
		return StatusOnTime, nil
	case "early":
		return StatusEarly, nil
	case "delayed", "delay", "pending (overdue)":
		return StatusDelayed, nil
	case "pending", "actual only":
		return StatusPending, nil
	default:
		return "", fmt.Errorf("unknown status label: %q", s)
	}
}
