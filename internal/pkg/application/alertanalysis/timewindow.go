package alertanalysis

import (
	"fmt"
	"time"

	"github.com/diwise/alert-analysis/pkg/types"
)

type Window string

const (
	WindowAll       Window = "all"
	WindowToday     Window = "today"
	WindowYesterday Window = "yesterday"
	WindowLastWeek  Window = "last_week"
)

var ErrUnknownWindow = fmt.Errorf("unknown time filter window")

func ParseWindow(s string) (Window, error) {
	switch w := Window(s); w {
	case WindowAll, WindowToday, WindowYesterday, WindowLastWeek:
		return w, nil
	}

	return "", fmt.Errorf("%w %q", ErrUnknownWindow, s)
}

// dataTimestampLayout is the fixed format every data_timestamp column value
// must conform to. A value that does not parse is a violation of the input
// contract, not a row to be silently dropped.
const dataTimestampLayout = "2006-01-02 15:04:05.000000-0700"

type MalformedTimestampError struct {
	AlertID string
	Value   string
	Err     error
}

func (e *MalformedTimestampError) Error() string {
	msg := fmt.Sprintf("alert %s has a malformed data timestamp %q", e.AlertID, e.Value)
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}

	return msg
}

func (e *MalformedTimestampError) Unwrap() error {
	return e.Err
}

// parseDataTimestamp parses a data_timestamp column value and discards its
// recorded utc offset, returning the literal clock reading in local time so
// that it can be compared against local midnights.
func parseDataTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(dataTimestampLayout, value)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.Local), nil
}

// filterByWindow returns the subset of alerts whose data timestamp falls
// within the requested window, relative to now. Relative input order is
// preserved and WindowAll returns the input unchanged. The policy decides
// whether a malformed data_timestamp fails the whole call or skips the row.
func filterByWindow(alerts []types.Alert, window Window, now time.Time, policy MalformedTimestampPolicy) ([]types.Alert, error) {
	if window == WindowAll {
		return alerts, nil
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var start, end time.Time

	switch window {
	case WindowToday:
		start = midnight
	case WindowYesterday:
		start = midnight.AddDate(0, 0, -1)
		end = midnight
	case WindowLastWeek:
		start = midnight.AddDate(0, 0, -7)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownWindow, string(window))
	}

	filtered := make([]types.Alert, 0, len(alerts))

	for _, a := range alerts {
		ts, err := parseDataTimestamp(a.DataTimestamp)
		if err != nil {
			if policy == MalformedTimestampSkip {
				continue
			}

			return nil, &MalformedTimestampError{AlertID: a.ID, Value: a.DataTimestamp, Err: err}
		}

		if ts.Before(start) {
			continue
		}

		// yesterday is a half-open interval, the other windows are
		// unbounded above
		if !end.IsZero() && !ts.Before(end) {
			continue
		}

		filtered = append(filtered, a)
	}

	return filtered, nil
}
