package types

// Alert is one row of the collected alert dataset. Services and
// InfraComponents hold zero or more names joined with ", ". DataTimestamp is
// the collection-time event timestamp in the fixed dataset format
// "YYYY-MM-DD HH:MM:SS.ffffff±HHMM". Text is the raw serialized payload,
// kept verbatim.
type Alert struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Source          string `json:"source"`
	Tags            string `json:"tags,omitempty"`
	Services        string `json:"services,omitempty"`
	InfraComponents string `json:"infraComponents,omitempty"`
	DataTimestamp   string `json:"dataTimestamp"`
	Text            string `json:"text,omitempty"`
}

type AlertGroup struct {
	Name   string  `json:"name"`
	Label  string  `json:"label"`
	Alerts []Alert `json:"alerts"`
}

// GroupedAlerts is the grouping engine's output. Groups preserves first-seen
// insertion order of group names. A single alert may appear in several
// groups, or exactly once in Ungrouped, never both.
type GroupedAlerts struct {
	Groups    []AlertGroup `json:"groups"`
	Ungrouped []Alert      `json:"ungrouped"`
}

// AlertDetails is the display record for a single selected alert. Timestamp
// holds the extracted payload timestamp formatted as "2006-01-02 15:04:05",
// or "N/A" when no timestamp could be extracted.
type AlertDetails struct {
	Title     string `json:"title"`
	Source    string `json:"source"`
	Tags      string `json:"tags"`
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}
