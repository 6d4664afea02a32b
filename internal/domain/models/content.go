// internal/domain/models/content.go
package models

import "strings"

// Priority ranks an alert or maintenance item.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Class returns the CSS modifier used for the priority ("high", "medium", "low").
func (p Priority) Class() string {
	return strings.ToLower(string(p))
}

// Color returns the accent colour associated with the priority.
func (p Priority) Color() string {
	switch p {
	case PriorityHigh:
		return "tomato"
	case PriorityMedium:
		return "orange"
	default:
		return "dodgerblue"
	}
}

// Alert is an AI-generated notice about one property.
type Alert struct {
	Property string   `json:"property"`
	Issue    string   `json:"issue"`
	Priority Priority `json:"priority"`
}

// InnovationEntry is one item on the future-innovation roadmap.
type InnovationEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Year        int    `json:"year"`
}

// MaintenanceTimelineItem is an upcoming predicted maintenance task.
type MaintenanceTimelineItem struct {
	Task      string   `json:"task"`
	Property  string   `json:"property"`
	DueInDays int      `json:"due_in_days"`
	Severity  Priority `json:"severity"`
}

// InfoCard is a static headline card. Value may be empty for text-only cards.
// Body may contain a small amount of inline markup and is sanitized before
// it reaches a template.
type InfoCard struct {
	Title string
	Value string
	Body  string
}

// AllProperties is the sentinel first entry of the property selector.
const AllProperties = "All Properties"

// DefaultSiteName is used when no site name is configured.
const DefaultSiteName = "PropertyPulse AI"
