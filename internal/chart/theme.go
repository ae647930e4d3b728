package chart

import (
	"github.com/aayush1982/universal-timeline-viewer/internal/model"
	"github.com/aayush1982/universal-timeline-viewer/internal/timeline"
)

// Theme is the marker and baseline palette of the chart.
type Theme struct {
	Name         string
	Contract     string
	Actual       string
	BaseContract string
	BaseActual   string
}

var themes = map[string]Theme{
	"default":       {Name: "default", Contract: "#1d4ed8", Actual: "#16a34a", BaseContract: "#93c5fd", BaseActual: "#86efac"},
	"blue-green":    {Name: "blue-green", Contract: "#2563eb", Actual: "#059669", BaseContract: "#93c5fd", BaseActual: "#a7f3d0"},
	"purple-orange": {Name: "purple-orange", Contract: "#7c3aed", Actual: "#ea580c", BaseContract: "#d8b4fe", BaseActual: "#fed7aa"},
	"teal-amber":    {Name: "teal-amber", Contract: "#0d9488", Actual: "#d97706", BaseContract: "#99f6e4", BaseActual: "#fde68a"},
}

// ThemeByName looks up a palette, falling back to the default theme for
// unknown names so a stale session option cannot break rendering.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["default"]
}

// StatusColor picks the marker color for an actual/anticipated point.
// Overdue-pending and actual-only rows keep their own hues even though
// they share status labels with other rows.
func (t Theme) StatusColor(r timeline.Row) string {
	if r.Overdue {
		return "#f59e0b"
	}
	if r.ActualOnly {
		return "#64748b"
	}
	switch r.Status {
	case model.StatusOnTime:
		return t.Actual
	case model.StatusEarly:
		return "#22c55e"
	case model.StatusDelayed:
		return "#ef4444"
	default:
		return "#a1a1aa"
	}
}
