package alertanalysis

import (
	"github.com/diwise/alert-analysis/pkg/types"
)

const detailTimestampLayout = "2006-01-02 15:04:05"

// TimestampNotAvailable is the sentinel shown when no timestamp could be
// extracted from an alert's payload.
const TimestampNotAvailable = "N/A"

// formatDetails produces the display record for one alert. The raw payload
// text is passed through verbatim.
func formatDetails(alert types.Alert) types.AlertDetails {
	timestamp := TimestampNotAvailable

	if ts, ok := payloadTimestamp(alert.Text); ok {
		timestamp = ts.Format(detailTimestampLayout)
	}

	return types.AlertDetails{
		Title:     alert.Title,
		Source:    alert.Source,
		Tags:      alert.Tags,
		Timestamp: timestamp,
		Text:      alert.Text,
	}
}
