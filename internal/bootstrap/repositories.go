package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/geoquest/GeoQuest_Go/internal/database/postgres"
	"github.com/geoquest/GeoQuest_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Care repository.Care
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Care: postgres.NewCareRepository(dbPool),
	}
}
