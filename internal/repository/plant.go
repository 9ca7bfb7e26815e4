package repository

import (
	"context"

	"github.com/geoquest/GeoQuest_Go/internal/domain"
)

// Plant defines read access to plants
type Plant interface {
	// GetPlantByID returns domain.ErrPlantNotFound when no plant has the id
	GetPlantByID(ctx context.Context, plantID string) (*domain.Plant, error)
}
