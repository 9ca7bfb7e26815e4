package domain

import (
	"fmt"
	"strings"
	"time"
)

// CareAction is the kind of care event recorded in a CareLog
type CareAction string

const (
	CareActionTaskComplete CareAction = "TASK_COMPLETE"
	CareActionDailyCheckin CareAction = "DAILY_CHECKIN"
)

// Valid reports whether a is a known action
func (a CareAction) Valid() bool {
	return a == CareActionTaskComplete || a == CareActionDailyCheckin
}

// CareLog is the append-only record of one committed verification
type CareLog struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	PlantID          string     `json:"plant_id"`
	Action           CareAction `json:"action"`
	PhotoURL         string     `json:"photo_url"`
	LocationVerified bool       `json:"location_verified"`
	CreatedAt        time.Time  `json:"created_at"`
}

// CareSubmission is one photo submitted for verification.
// TaskID is empty for an untargeted check-in.
type CareSubmission struct {
	UserID   string
	PlantID  string
	TaskID   string
	Image    []byte
	MimeType string
}

// HealthAssessment is the structured result of the perception model
type HealthAssessment struct {
	HealthScore int    `json:"healthScore"`
	Status      string `json:"status"`
	Tip         string `json:"tip"`
}

// Health score bounds
const (
	MinHealthScore = 0
	MaxHealthScore = 100
)

// Validate rejects assessments that must not reach storage
func (a HealthAssessment) Validate() error {
	if a.HealthScore < MinHealthScore || a.HealthScore > MaxHealthScore {
		return fmt.Errorf("%w: healthScore %d outside %d-%d", ErrUpstreamData, a.HealthScore, MinHealthScore, MaxHealthScore)
	}
	if strings.TrimSpace(a.Status) == "" {
		return fmt.Errorf("%w: empty status", ErrUpstreamData)
	}
	return nil
}

// CareVerificationResult is returned to the caller after a committed verification
type CareVerificationResult struct {
	CareLog      CareLog `json:"care_log"`
	HealthScore  int     `json:"health_score"`
	Status       string  `json:"status"`
	Tip          string  `json:"tip"`
	XPGained     int     `json:"xp_gained"`
	TotalXP      int64   `json:"total_xp"`
	TaskAdvanced bool    `json:"task_advanced"`
}
