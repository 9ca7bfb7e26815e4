package care

import (
	"fmt"
	"time"

	"github.com/geoquest/GeoQuest_Go/internal/domain"
)

// NextDueDate returns completedAt advanced by frequencyDays calendar days.
// Frequencies below one day are rejected rather than producing a due date at
// or before completion.
func NextDueDate(frequencyDays int, completedAt time.Time) (time.Time, error) {
	if frequencyDays < 1 {
		return time.Time{}, fmt.Errorf("%w: got %d", domain.ErrInvalidFrequency, frequencyDays)
	}
	return completedAt.AddDate(0, 0, frequencyDays), nil
}
