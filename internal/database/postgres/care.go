package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/geoquest/GeoQuest_Go/internal/domain"
	"github.com/geoquest/GeoQuest_Go/internal/repository"
)

// CareRepository implements repository.Care for PostgreSQL
type CareRepository struct {
	db *pgxpool.Pool
}

// NewCareRepository creates a new CareRepository
func NewCareRepository(db *pgxpool.Pool) *CareRepository {
	return &CareRepository{db: db}
}

// GetPlantByID retrieves a plant, or domain.ErrPlantNotFound
func (r *CareRepository) GetPlantByID(ctx context.Context, plantID string) (*domain.Plant, error) {
	pid, err := parsePlantUUID(plantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPlantNotFound, err)
	}

	query := `
		SELECT plant_id::text, owner_id::text, name, latitude, longitude, health_score, created_at, updated_at
		FROM plants
		WHERE plant_id = $1
	`

	var p domain.Plant
	err = r.db.QueryRow(ctx, query, pid).Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Latitude,
		&p.Longitude,
		&p.HealthScore,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlantNotFound
		}
		return nil, fmt.Errorf("failed to get plant: %w", err)
	}
	return &p, nil
}

// ListRecentCareLogs returns at most limit logs for the plant, newest first
func (r *CareRepository) ListRecentCareLogs(ctx context.Context, plantID string, limit int) ([]domain.CareLog, error) {
	pid, err := parsePlantUUID(plantID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT log_id::text, user_id::text, plant_id::text, action, photo_url, location_verified, created_at
		FROM care_logs
		WHERE plant_id = $1
		ORDER BY created_at DESC, log_id
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, pid, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query care logs: %w", err)
	}
	defer rows.Close()

	logs := make([]domain.CareLog, 0, limit)
	for rows.Next() {
		var l domain.CareLog
		var action string
		if err := rows.Scan(&l.ID, &l.UserID, &l.PlantID, &action, &l.PhotoURL, &l.LocationVerified, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan care log: %w", err)
		}
		l.Action = domain.CareAction(action)
		logs = append(logs, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return logs, nil
}

// BeginTx starts the unit of work for one verification
func (r *CareRepository) BeginTx(ctx context.Context) (repository.CareTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	return &careTx{tx: tx}, nil
}

type careTx struct {
	tx pgx.Tx
}

func (t *careTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *careTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("%w: %w", repository.ErrTxClosed, err)
	}
	return err
}

func (t *careTx) UpdatePlantHealth(ctx context.Context, plantID string, healthScore int) error {
	pid, err := parsePlantUUID(plantID)
	if err != nil {
		return err
	}

	tag, err := t.tx.Exec(ctx, `
		UPDATE plants
		SET health_score = $2, updated_at = NOW()
		WHERE plant_id = $1
	`, pid, healthScore)
	if err != nil {
		return fmt.Errorf("failed to update plant health: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlantNotFound
	}
	return nil
}

func (t *careTx) GetCareTaskForUpdate(ctx context.Context, taskID, plantID string) (*domain.CareTask, error) {
	tid, err := parseTaskUUID(taskID)
	if err != nil {
		// an unparseable id cannot resolve to a task
		return nil, nil
	}
	pid, err := parsePlantUUID(plantID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT task_id::text, plant_id::text, title, frequency_days, last_completed_at, next_due_at
		FROM care_tasks
		WHERE task_id = $1 AND plant_id = $2
		FOR UPDATE
	`

	var task domain.CareTask
	err = t.tx.QueryRow(ctx, query, tid, pid).Scan(
		&task.ID,
		&task.PlantID,
		&task.Title,
		&task.FrequencyDays,
		&task.LastCompletedAt,
		&task.NextDueAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get care task: %w", err)
	}
	return &task, nil
}

func (t *careTx) UpdateCareTaskSchedule(ctx context.Context, taskID string, completedAt, nextDueAt time.Time) error {
	tid, err := parseTaskUUID(taskID)
	if err != nil {
		return err
	}

	_, err = t.tx.Exec(ctx, `
		UPDATE care_tasks
		SET last_completed_at = $2, next_due_at = $3
		WHERE task_id = $1
	`, tid, completedAt, nextDueAt)
	if err != nil {
		return fmt.Errorf("failed to update care task schedule: %w", err)
	}
	return nil
}

func (t *careTx) InsertCareLog(ctx context.Context, log *domain.CareLog) error {
	uid, err := parseUserUUID(log.UserID)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUserNotFound, err)
	}
	pid, err := parsePlantUUID(log.PlantID)
	if err != nil {
		return err
	}

	err = t.tx.QueryRow(ctx, `
		INSERT INTO care_logs (user_id, plant_id, action, photo_url, location_verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING log_id::text
	`, uid, pid, string(log.Action), log.PhotoURL, log.LocationVerified, log.CreatedAt).Scan(&log.ID)
	if err != nil {
		if isForeignKeyViolation(err, fkCareLogsUser) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to insert care log: %w", err)
	}
	return nil
}

func (t *careTx) IncrementUserXP(ctx context.Context, userID string, amount int) (int64, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrUserNotFound, err)
	}

	var total int64
	err = t.tx.QueryRow(ctx, `
		UPDATE users
		SET xp = xp + $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING xp
	`, uid, amount).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to increment user xp: %w", err)
	}
	return total, nil
}
