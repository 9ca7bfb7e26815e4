package repository

import (
	"context"
	"errors"

	"github.com/geoquest/GeoQuest_Go/internal/domain"
)

// ErrTxClosed is returned by Rollback after the transaction already committed or rolled back
var ErrTxClosed = errors.New(domain.ErrMsgTxClosed)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
