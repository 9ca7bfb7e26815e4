package care

import (
	"fmt"
	"slices"
	"strings"

	"github.com/geoquest/GeoQuest_Go/internal/domain"
)

// FormatHistory renders up to HistoryLimit logs as one line each, newest first.
func FormatHistory(logs []domain.CareLog) string {
	if len(logs) == 0 {
		return NoHistoryPlaceholder
	}

	sorted := slices.Clone(logs)
	slices.SortStableFunc(sorted, func(a, b domain.CareLog) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(sorted) > HistoryLimit {
		sorted = sorted[:HistoryLimit]
	}

	lines := make([]string, 0, len(sorted))
	for _, l := range sorted {
		lines = append(lines, fmt.Sprintf("- %s on %s", l.Action, l.CreatedAt.Format(historyDateLayout)))
	}
	return strings.Join(lines, "\n")
}
