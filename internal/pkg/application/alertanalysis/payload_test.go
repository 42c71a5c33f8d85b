package alertanalysis

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestPayloadTimestampIsAbsentWhenPathIsMissing(t *testing.T) {
	is := is.New(t)

	payloads := []string{
		"",
		"not json at all",
		`{"data": {}}`,
		`{"data": {"event": {}}}`,
		`{"data": {"event": {"data_timestamp": "tomorrow"}}}`,
		`{"event": {"data_timestamp": 1700000000}}`,
	}

	for _, text := range payloads {
		_, ok := payloadTimestamp(text)
		is.True(!ok) // no timestamp should be extracted
	}
}

func TestPayloadTimestampFromNumericEpoch(t *testing.T) {
	is := is.New(t)

	ts, ok := payloadTimestamp(`{"data": {"event": {"data_timestamp": 1700000000}}}`)

	is.True(ok)
	is.Equal(ts, time.Unix(1700000000, 0))
}
