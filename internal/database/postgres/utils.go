package postgres

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// parseUserUUID parses a user ID string to uuid.UUID with consistent error message.
func parseUserUUID(userID string) (uuid.UUID, error) {
	u, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id: %w", err)
	}
	return u, nil
}

func parsePlantUUID(plantID string) (uuid.UUID, error) {
	u, err := uuid.Parse(plantID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid plant id: %w", err)
	}
	return u, nil
}

func parseTaskUUID(taskID string) (uuid.UUID, error) {
	u, err := uuid.Parse(taskID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid task id: %w", err)
	}
	return u, nil
}

// isForeignKeyViolation reports whether err violated the named constraint
func isForeignKeyViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == PgErrorCodeForeignKeyViolation &&
		pgErr.ConstraintName == constraint
}
