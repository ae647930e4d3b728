// Package model holds the shared domain types: milestones, the raw
// uploaded dataset and the per-session view configuration. Everything here
// is plain data; classification and bucketing live in internal/timeline.
package model

import "time"

// Milestone is one extracted row of the uploaded sheet. Either date may be
// absent; classification handles every combination.
type Milestone struct {
	Name        string     `json:"name"`
	Group       string     `json:"group,omitempty"`
	Contractual *time.Time `json:"contractual,omitempty"`
	Actual      *time.Time `json:"actual,omitempty"`
}

// Dataset is the uploaded table as parsed, before any column mapping is
// applied. Keeping the raw cells in the session lets the user remap columns
// without re-uploading the file.
type Dataset struct {
	Filename string     `json:"filename"`
	Sheet    string     `json:"sheet,omitempty"`
	Sheets   []string   `json:"sheets,omitempty"`
	Headers  []string   `json:"headers"`
	Rows     [][]string `json:"rows"`
	Warnings []string   `json:"warnings,omitempty"`
}
