package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/geoquest/GeoQuest_Go/internal/config"
	"github.com/geoquest/GeoQuest_Go/internal/database"
)

const commandTimeout = 2 * time.Minute

const usage = `usage: migrate <command>

commands:
  up         apply all pending migrations
  down       roll back the most recent migration
  status     print the state of every migration
  version    print the current schema version
  create-db  create the configured database if it does not exist
  reset      drop and recreate the configured database, then migrate up`

func main() {
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.LoadDatabase()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := runCommand(ctx, cfg, flag.Arg(0)); err != nil {
		log.Fatalf("migrate %s: %v", flag.Arg(0), err)
	}
}

func runCommand(ctx context.Context, cfg *config.Config, command string) error {
	switch command {
	case "create-db":
		return createDatabase(ctx, cfg)
	case "reset":
		if err := resetDatabase(ctx, cfg); err != nil {
			return err
		}
		return withPool(ctx, cfg, func(ctx context.Context, pool *pgxpool.Pool) error {
			return database.Migrate(ctx, pool)
		})
	case "up":
		return withPool(ctx, cfg, func(ctx context.Context, pool *pgxpool.Pool) error {
			return database.Migrate(ctx, pool)
		})
	case "down":
		return withPool(ctx, cfg, func(ctx context.Context, pool *pgxpool.Pool) error {
			return database.MigrateDown(ctx, pool)
		})
	case "status":
		return withPool(ctx, cfg, func(ctx context.Context, pool *pgxpool.Pool) error {
			return database.MigrationStatus(ctx, pool)
		})
	case "version":
		return withPool(ctx, cfg, func(ctx context.Context, pool *pgxpool.Pool) error {
			version, err := database.MigrationVersion(ctx, pool)
			if err != nil {
				return err
			}
			fmt.Printf("schema version: %d\n", version)
			return nil
		})
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

func withPool(ctx context.Context, cfg *config.Config, fn func(context.Context, *pgxpool.Pool) error) error {
	pool, err := database.NewPool(ctx, cfg.PoolSettings())
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(ctx, pool)
}

// createDatabase creates the configured database through the maintenance database
func createDatabase(ctx context.Context, cfg *config.Config) error {
	conn, err := pgx.Connect(ctx, cfg.GetAdminConnString())
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		log.Printf("Database %s already exists.", cfg.DBName)
		return nil
	}

	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	log.Printf("Database %s created.", cfg.DBName)
	return nil
}

// resetDatabase terminates sessions on the configured database, drops it and creates it empty
func resetDatabase(ctx context.Context, cfg *config.Config) error {
	if cfg.IsProduction() {
		return fmt.Errorf("refusing to reset a production database")
	}

	conn, err := pgx.Connect(ctx, cfg.GetAdminConnString())
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	log.Printf("Terminating existing connections to database %s...", cfg.DBName)
	_, err = conn.Exec(ctx, `
		SELECT pg_terminate_backend(pid)
		FROM pg_stat_activity
		WHERE datname = $1 AND pid <> pg_backend_pid()`, cfg.DBName)
	if err != nil {
		log.Printf("Warning: failed to terminate connections: %v", err)
	}

	ident := pgx.Identifier{cfg.DBName}.Sanitize()
	if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
		return fmt.Errorf("failed to drop database: %w", err)
	}
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	log.Printf("Database %s reset.", cfg.DBName)
	return nil
}
