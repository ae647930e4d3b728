package model

import (
	"fmt"
	"strings"
	"time"
)

// Granularity is the bucket width of the timeline axis.
type Granularity string

const (
	GranularityMonthly   Granularity = "monthly"
	GranularityQuarterly Granularity = "quarterly"
)

// Months returns the calendar months per period.
func (g Granularity) Months() int {
	if g == GranularityQuarterly {
		return 3
	}
	return 1
}

func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly", "month", "":
		return GranularityMonthly, nil
	case "quarterly", "quarter":
		return GranularityQuarterly, nil
	default:
		return "", fmt.Errorf("unknown granularity: %q", s)
	}
}

// AnchorMode selects which date becomes period 0 of the axis.
type AnchorMode string

const (
	AnchorFirstContractual AnchorMode = "first-contractual"
	AnchorNoticeToProceed  AnchorMode = "notice-to-proceed"
	AnchorCustom           AnchorMode = "custom"
)

func ParseAnchorMode(s string) (AnchorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first-contractual", "first contractual", "":
		return AnchorFirstContractual, nil
	case "notice-to-proceed", "notice to proceed", "ntp":
		return AnchorNoticeToProceed, nil
	case "custom":
		return AnchorCustom, nil
	default:
		return "", fmt.Errorf("unknown anchor mode: %q", s)
	}
}

// TickFormat names a date display style for axis ticks and row labels.
type TickFormat string

const (
	TickMmmYY   TickFormat = "Mmm-YY"
	TickMonYYYY TickFormat = "Mon YYYY"
	TickISO     TickFormat = "YYYY-MM"
)

func (f TickFormat) layout() string {
	switch f {
	case TickMonYYYY:
		return "Jan 2006"
	case TickISO:
		return "2006-01"
	default:
		return "Jan-06"
	}
}

// Format renders a date in this tick style; absent dates render as a dash.
func (f TickFormat) Format(d *time.Time) string {
	if d == nil {
		return "—"
	}
	return d.Format(f.layout())
}

// ColumnMapping names which uploaded columns feed each milestone field.
// Group is optional and empty when no grouping column is mapped.
type ColumnMapping struct {
	Name        string `json:"name"`
	Contractual string `json:"contractual"`
	Actual      string `json:"actual"`
	Group       string `json:"group,omitempty"`
}

// ViewOptions is the per-session view configuration: column mapping, axis
// setup, filters and display toggles. The whole struct is replaced on every
// options update.
type ViewOptions struct {
	Mapping     ColumnMapping `json:"mapping"`
	AnchorMode  AnchorMode    `json:"anchor_mode"`
	AnchorDate  *time.Time    `json:"anchor_date,omitempty"`
	Granularity Granularity   `json:"granularity"`
	TickFormat  TickFormat    `json:"tick_format"`

	StatusFilter []StatusLabel `json:"status_filter,omitempty"`
	Search       string        `json:"search,omitempty"`
	FutureOnly   bool          `json:"future_only,omitempty"`

	ShowToday      bool   `json:"show_today"`
	ShowLabels     bool   `json:"show_labels"`
	ShowBadges     bool   `json:"show_badges"`
	ShowMonthIndex bool   `json:"show_month_index"`
	Theme          string `json:"theme"`
}

// DefaultViewOptions is the configuration a fresh session starts with.
func DefaultViewOptions() ViewOptions {
	return ViewOptions{
		AnchorMode:  AnchorFirstContractual,
		Granularity: GranularityMonthly,
		TickFormat:  TickMmmYY,
		ShowToday:   true,
		ShowLabels:  true,
		ShowBadges:  true,
		Theme:       "default",
	}
}
