package alertanalysis

import (
	"fmt"
	"testing"

	"github.com/diwise/alert-analysis/pkg/types"
	"github.com/matryer/is"
)

func TestGroupingFansOutAcrossInfraComponents(t *testing.T) {
	is := is.New(t)

	result := groupAlerts([]types.Alert{
		{ID: "a", InfraComponents: "db, cache"},
	}, DefaultNoiseSource)

	is.Equal(len(result.Groups), 2)
	is.Equal(result.Groups[0].Name, "db")
	is.Equal(result.Groups[1].Name, "cache")
	is.Equal(alertIDs(result.Groups[0].Alerts), []string{"a"})
	is.Equal(alertIDs(result.Groups[1].Alerts), []string{"a"})
	is.Equal(len(result.Ungrouped), 0)
}

func TestGroupingPrefersInfraComponentsOverServices(t *testing.T) {
	is := is.New(t)

	result := groupAlerts([]types.Alert{
		{ID: "a", InfraComponents: "db", Services: "checkout"},
	}, DefaultNoiseSource)

	is.Equal(len(result.Groups), 1)
	is.Equal(result.Groups[0].Name, "db")
}

func TestGroupingFallsBackToServices(t *testing.T) {
	is := is.New(t)

	result := groupAlerts([]types.Alert{
		{ID: "a", Services: "checkout, payments"},
	}, DefaultNoiseSource)

	is.Equal(len(result.Groups), 2)
	is.Equal(result.Groups[0].Name, "checkout")
	is.Equal(result.Groups[1].Name, "payments")
	is.Equal(len(result.Ungrouped), 0)
}

func TestGroupingExcludesTheNoiseSource(t *testing.T) {
	is := is.New(t)

	result := groupAlerts([]types.Alert{
		{ID: "a", Source: "Doctor Droid", InfraComponents: "db", Services: "checkout"},
	}, DefaultNoiseSource)

	is.Equal(len(result.Groups), 0)
	is.Equal(len(result.Ungrouped), 0)
}

func TestGroupingNoiseSourceIsConfigurable(t *testing.T) {
	is := is.New(t)

	result := groupAlerts([]types.Alert{
		{ID: "a", Source: "Chatterbox", InfraComponents: "db"},
		{ID: "b", Source: "Doctor Droid", InfraComponents: "db"},
	}, "Chatterbox")

	is.Equal(len(result.Groups), 1)
	is.Equal(alertIDs(result.Groups[0].Alerts), []string{"b"})
}

func TestGroupingFallsBackToUngroupedExactlyOnce(t *testing.T) {
	is := is.New(t)

	result := groupAlerts([]types.Alert{
		{ID: "a"},
	}, DefaultNoiseSource)

	is.Equal(len(result.Groups), 0)
	is.Equal(alertIDs(result.Ungrouped), []string{"a"})
}

func TestGroupingTreatsEmptyEntriesAsAbsent(t *testing.T) {
	is := is.New(t)

	result := groupAlerts([]types.Alert{
		{ID: "a", InfraComponents: "db, "},
		{ID: "b", InfraComponents: "", Services: "checkout"},
	}, DefaultNoiseSource)

	is.Equal(len(result.Groups), 2)
	is.Equal(result.Groups[0].Name, "db")
	is.Equal(result.Groups[1].Name, "checkout")
	is.Equal(len(result.Ungrouped), 0)
}

func TestGroupLabelsIncludeTheAlertCount(t *testing.T) {
	is := is.New(t)

	result := groupAlerts([]types.Alert{
		{ID: "a", InfraComponents: "db"},
		{ID: "b", InfraComponents: "db"},
	}, DefaultNoiseSource)

	is.Equal(result.Groups[0].Label, "db (2 alerts)")
}

func TestGroupSortIsNewestFirstAndStable(t *testing.T) {
	is := is.New(t)

	withEpoch := func(epoch int64) string {
		return fmt.Sprintf(`{"data": {"event": {"data_timestamp": %d}}}`, epoch)
	}

	result := groupAlerts([]types.Alert{
		{ID: "no-timestamp", InfraComponents: "db", Text: "not json"},
		{ID: "older", InfraComponents: "db", Text: withEpoch(1699996400)},
		{ID: "newer-first", InfraComponents: "db", Text: withEpoch(1700000000)},
		{ID: "newer-second", InfraComponents: "db", Text: withEpoch(1700000000)},
	}, DefaultNoiseSource)

	is.Equal(len(result.Groups), 1)
	// equal timestamps keep their relative order, absent timestamps sink
	// to the bottom
	is.Equal(alertIDs(result.Groups[0].Alerts), []string{"newer-first", "newer-second", "older", "no-timestamp"})
}
