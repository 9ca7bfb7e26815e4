package database

import (
	"context"
	"flag"
	"math"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/geoquest/GeoQuest_Go/internal/database/dbtest"
)

var container *dbtest.Container

func TestMain(m *testing.M) {
	flag.Parse()
	if !testing.Short() {
		container = dbtest.Start(context.Background(), "geoquest_pool")
	}

	code := m.Run()

	container.Terminate(context.Background())
	os.Exit(code)
}

func openTestPool(t *testing.T, maxConns int) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if !container.Available() {
		t.Skip("Skipping integration test: database not available")
	}

	pool, err := NewPool(context.Background(), PoolSettings{
		ConnString:      container.ConnString,
		MaxConns:        maxConns,
		MaxConnIdleTime: time.Minute,
		MaxConnLifetime: 5 * time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestPoolSettings_Apply(t *testing.T) {
	tests := []struct {
		name         string
		settings     PoolSettings
		wantMax      int32
		wantMin      int32
		wantIdle     time.Duration
		wantLifetime time.Duration
	}{
		{
			name:         "explicit values",
			settings:     PoolSettings{MaxConns: 12, MaxConnIdleTime: time.Minute, MaxConnLifetime: time.Hour},
			wantMax:      12,
			wantMin:      DefaultMinConnections,
			wantIdle:     time.Minute,
			wantLifetime: time.Hour,
		},
		{
			name:     "min never exceeds max",
			settings: PoolSettings{MaxConns: 1},
			wantMax:  1,
			wantMin:  1,
		},
		{
			name:     "max clamps to int32",
			settings: PoolSettings{MaxConns: math.MaxInt32 + 1},
			wantMax:  math.MaxInt32,
			wantMin:  DefaultMinConnections,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := pgxpool.ParseConfig("postgres://u:p@localhost:5432/geoquest")
			require.NoError(t, err)
			defaults := *cfg

			tt.settings.apply(cfg)

			assert.Equal(t, tt.wantMax, cfg.MaxConns)
			assert.Equal(t, tt.wantMin, cfg.MinConns)
			if tt.wantIdle == 0 {
				tt.wantIdle = defaults.MaxConnIdleTime
			}
			if tt.wantLifetime == 0 {
				tt.wantLifetime = defaults.MaxConnLifetime
			}
			assert.Equal(t, tt.wantIdle, cfg.MaxConnIdleTime)
			assert.Equal(t, tt.wantLifetime, cfg.MaxConnLifetime)
			assert.Equal(t, ApplicationName, cfg.ConnConfig.RuntimeParams["application_name"])
		})
	}
}

func TestPoolSettings_KeepsExplicitApplicationName(t *testing.T) {
	cfg, err := pgxpool.ParseConfig("postgres://u:p@localhost:5432/geoquest?application_name=migrate")
	require.NoError(t, err)

	PoolSettings{}.apply(cfg)

	assert.Equal(t, "migrate", cfg.ConnConfig.RuntimeParams["application_name"])
}

func TestNewPool_InvalidConnString(t *testing.T) {
	_, err := NewPool(context.Background(), PoolSettings{ConnString: "postgres://%zz"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

func TestNewPool_TagsConnections(t *testing.T) {
	pool := openTestPool(t, 3)

	var name string
	require.NoError(t, pool.QueryRow(context.Background(), "SHOW application_name").Scan(&name))
	assert.Equal(t, ApplicationName, name)
	assert.Equal(t, int32(3), pool.Config().MaxConns)
}

func TestPool_ReleasesConnectionsAfterErrors(t *testing.T) {
	pool := openTestPool(t, 4)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		_, err := pool.Exec(ctx, "SELECT * FROM no_such_table")
		assert.Error(t, err)
	}

	assert.Zero(t, pool.Stat().AcquiredConns())
}

func TestPool_BlocksWhenExhausted(t *testing.T) {
	pool := openTestPool(t, 2)
	ctx := context.Background()

	held := make([]*pgxpool.Conn, 0, 2)
	for i := 0; i < 2; i++ {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err)
		held = append(held, conn)
	}

	shortCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	_, err := pool.Acquire(shortCtx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	held[0].Release()
	conn, err := pool.Acquire(ctx)
	require.NoError(t, err)
	conn.Release()
	held[1].Release()
}

func TestPool_ConcurrentQueries(t *testing.T) {
	pool := openTestPool(t, 5)

	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < 25; i++ {
		g.Go(func() error {
			var got int
			if err := pool.QueryRow(ctx, "SELECT $1::int", i).Scan(&got); err != nil {
				return err
			}
			assert.Equal(t, i, got)
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Zero(t, pool.Stat().AcquiredConns())
}

func TestMigrate_UpDownUp(t *testing.T) {
	pool := openTestPool(t, 5)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, pool))
	version, err := MigrationVersion(ctx, pool)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	var tables int
	err = pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM information_schema.tables
		WHERE table_schema = 'public' AND table_name IN ('users', 'plants', 'care_tasks', 'care_logs')`).Scan(&tables)
	require.NoError(t, err)
	assert.Equal(t, 4, tables)

	require.NoError(t, MigrateDown(ctx, pool))
	version, err = MigrationVersion(ctx, pool)
	require.NoError(t, err)
	assert.Zero(t, version)

	require.NoError(t, Migrate(ctx, pool))
}
