// Package dbtest starts a throwaway PostgreSQL container for integration tests.
package dbtest

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image          = "postgres:15-alpine"
	startupTimeout = 30 * time.Second
)

// Container is a running database and the DSN that reaches it
type Container struct {
	ConnString string
	terminate  func(context.Context) error
}

// Terminate stops the container; it is safe on a nil or unavailable container
func (c *Container) Terminate(ctx context.Context) {
	if c == nil || c.terminate == nil {
		return
	}
	if err := c.terminate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "dbtest: failed to terminate container: %v\n", err)
	}
}

// Available reports whether tests can connect
func (c *Container) Available() bool {
	return c != nil && c.ConnString != ""
}

// Start runs a container named after database. When Docker is missing it
// returns an unavailable container so callers can skip instead of fail.
func Start(ctx context.Context, database string) (c *Container) {
	c = &Container{}
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "dbtest: recovered from testcontainers panic: %v\n", r)
			c = &Container{}
		}
	}()

	pg, err := postgres.Run(ctx, image,
		postgres.WithDatabase(database),
		postgres.WithUsername("geoquest"),
		postgres.WithPassword("geoquest"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(startupTimeout)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dbtest: postgres unavailable, integration tests will skip: %v\n", err)
		return c
	}

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Fprintf(os.Stderr, "dbtest: no connection string: %v\n", err)
		_ = pg.Terminate(ctx)
		return c
	}

	c.ConnString = connStr
	c.terminate = func(ctx context.Context) error { return pg.Terminate(ctx) }
	return c
}
