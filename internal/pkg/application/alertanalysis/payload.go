package alertanalysis

import (
	"encoding/json"
	"math"
	"time"
)

// payloadTimestamp attempts to pull an event timestamp out of an alert's raw
// payload. The payload is expected to be JSON with a numeric epoch value
// (seconds) at data.event.data_timestamp. Extraction is best effort: any
// parse failure, missing path or type mismatch yields ok == false, never an
// error. Callers must handle absence.
func payloadTimestamp(text string) (time.Time, bool) {
	var payload struct {
		Data struct {
			Event struct {
				DataTimestamp *float64 `json:"data_timestamp"`
			} `json:"event"`
		} `json:"data"`
	}

	err := json.Unmarshal([]byte(text), &payload)
	if err != nil || payload.Data.Event.DataTimestamp == nil {
		return time.Time{}, false
	}

	sec, frac := math.Modf(*payload.Data.Event.DataTimestamp)

	return time.Unix(int64(sec), int64(frac*float64(time.Second))), true
}
