package postgres

import (
	"context"
	"flag"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/geoquest/GeoQuest_Go/internal/database"
	"github.com/geoquest/GeoQuest_Go/internal/database/dbtest"
)

var (
	container         *dbtest.Container
	testPool          *pgxpool.Pool
	migrationsApplied bool
	migrationsMux     sync.Mutex
)

func TestMain(m *testing.M) {
	flag.Parse()
	if !testing.Short() {
		container = dbtest.Start(context.Background(), "geoquest_repo")
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	container.Terminate(context.Background())
	os.Exit(code)
}

// requirePool skips when no database is available and applies migrations once
func requirePool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if !container.Available() {
		t.Skip("Skipping integration test: database not available")
	}

	migrationsMux.Lock()
	defer migrationsMux.Unlock()

	ctx := context.Background()
	if testPool == nil {
		pool, err := database.NewPool(ctx, database.PoolSettings{
			ConnString:      container.ConnString,
			MaxConns:        10,
			MaxConnIdleTime: time.Minute,
			MaxConnLifetime: 5 * time.Minute,
		})
		if err != nil {
			t.Fatalf("failed to connect to database: %v", err)
		}
		testPool = pool
	}
	if !migrationsApplied {
		if err := database.Migrate(ctx, testPool); err != nil {
			t.Fatalf("failed to apply migrations: %v", err)
		}
		migrationsApplied = true
	}
	return testPool
}

type fixture struct {
	userID  string
	plantID string
	taskID  string
}

// seedFixture inserts a fresh user, plant and 3-day task
func seedFixture(t *testing.T, pool *pgxpool.Pool) fixture {
	t.Helper()
	ctx := context.Background()
	var f fixture

	err := pool.QueryRow(ctx,
		`INSERT INTO users (username) VALUES ('gardener_' || substr(md5(random()::text), 1, 12)) RETURNING user_id::text`,
	).Scan(&f.userID)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	err = pool.QueryRow(ctx,
		`INSERT INTO plants (owner_id, name, latitude, longitude, health_score)
		 VALUES ($1, 'Basil', 44.34, 10.99, 65) RETURNING plant_id::text`, f.userID,
	).Scan(&f.plantID)
	if err != nil {
		t.Fatalf("failed to seed plant: %v", err)
	}

	err = pool.QueryRow(ctx,
		`INSERT INTO care_tasks (plant_id, title, frequency_days) VALUES ($1, 'Water', 3) RETURNING task_id::text`, f.plantID,
	).Scan(&f.taskID)
	if err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}
	return f
}
