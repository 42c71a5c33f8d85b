package alertanalysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/diwise/alert-analysis/pkg/types"
	"github.com/samber/lo"
)

// groupAlerts partitions alerts into named groups plus an ungrouped list.
// Alerts from the noise source are dropped before grouping and never appear
// anywhere in the result. An alert fans out into every group named by its
// infra components when it has any, otherwise into every group named by its
// services, otherwise it lands in ungrouped exactly once. Group names are
// kept in first-seen insertion order and each group is sorted by extracted
// payload timestamp, newest first.
func groupAlerts(alerts []types.Alert, noiseSource string) types.GroupedAlerts {
	result := types.GroupedAlerts{
		Groups:    []types.AlertGroup{},
		Ungrouped: []types.Alert{},
	}

	alerts = lo.Filter(alerts, func(a types.Alert, _ int) bool {
		return a.Source != noiseSource
	})

	index := map[string]int{}

	add := func(name string, a types.Alert) {
		i, ok := index[name]
		if !ok {
			i = len(result.Groups)
			index[name] = i
			result.Groups = append(result.Groups, types.AlertGroup{Name: name})
		}

		result.Groups[i].Alerts = append(result.Groups[i].Alerts, a)
	}

	for _, a := range alerts {
		if components := splitNames(a.InfraComponents); len(components) > 0 {
			for _, c := range components {
				add(c, a)
			}
			continue
		}

		if services := splitNames(a.Services); len(services) > 0 {
			for _, s := range services {
				add(s, a)
			}
			continue
		}

		result.Ungrouped = append(result.Ungrouped, a)
	}

	for i := range result.Groups {
		g := &result.Groups[i]
		sortByPayloadTimestamp(g.Alerts)
		g.Label = fmt.Sprintf("%s (%d alerts)", g.Name, len(g.Alerts))
	}

	return result
}

// splitNames splits a ", " joined list of names. Empty entries are treated
// as absent, never as group names.
func splitNames(joined string) []string {
	return lo.Filter(strings.Split(joined, ", "), func(name string, _ int) bool {
		return name != ""
	})
}

// sortByPayloadTimestamp orders alerts by their extracted payload timestamp
// in descending order. Alerts without an extractable timestamp compare as
// the zero time and sink to the bottom. The sort is stable, so alerts with
// equal timestamps keep their relative order.
func sortByPayloadTimestamp(alerts []types.Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		ti, _ := payloadTimestamp(alerts[i].Text)
		tj, _ := payloadTimestamp(alerts[j].Text)
		return ti.After(tj)
	})
}
