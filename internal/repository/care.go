package repository

import (
	"context"
	"time"

	"github.com/geoquest/GeoQuest_Go/internal/domain"
)

// CareLog defines read access to care history
type CareLog interface {
	// ListRecentCareLogs returns at most limit logs for the plant, newest first
	ListRecentCareLogs(ctx context.Context, plantID string, limit int) ([]domain.CareLog, error)
}

// Care is the persistence surface of the care verification workflow
type Care interface {
	Plant
	CareLog
	BeginTx(ctx context.Context) (CareTx, error)
}

// CareTx is the unit of work for one verification. Nothing written through it
// is visible until Commit.
type CareTx interface {
	Tx
	UpdatePlantHealth(ctx context.Context, plantID string, healthScore int) error
	// GetCareTaskForUpdate locks the task row. Returns nil, nil when the task
	// does not exist or belongs to another plant.
	GetCareTaskForUpdate(ctx context.Context, taskID, plantID string) (*domain.CareTask, error)
	UpdateCareTaskSchedule(ctx context.Context, taskID string, completedAt, nextDueAt time.Time) error
	// InsertCareLog fills in the generated ID
	InsertCareLog(ctx context.Context, log *domain.CareLog) error
	// IncrementUserXP returns the new total, or domain.ErrUserNotFound
	IncrementUserXP(ctx context.Context, userID string, amount int) (int64, error)
}
