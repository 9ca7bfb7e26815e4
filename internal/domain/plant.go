package domain

import "time"

// Plant is a user's registered plant. HealthScore is always the score of the
// most recently committed verification.
type Plant struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	HealthScore int       `json:"health_score"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CareTask is a recurring care chore attached to a plant
type CareTask struct {
	ID              string     `json:"id"`
	PlantID         string     `json:"plant_id"`
	Title           string     `json:"title"`
	FrequencyDays   int        `json:"frequency_days"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	NextDueAt       *time.Time `json:"next_due_at,omitempty"`
}
