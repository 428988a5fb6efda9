// Package db provides database connectivity and migration functionality for the todo API.
// It establishes the pgx connection pool, exposes it to repositories through sqlx,
// enables the PostgreSQL extensions the schema relies on and runs the embedded migrations.
package db

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net/url"
	// `time` is used for setting timeouts and connection pool configurations.
	"time"

	"github.com/golang-migrate/migrate/v4"
	// The postgres database driver for golang-migrate. It pulls in `lib/pq` for its error types.
	"github.com/golang-migrate/migrate/v4/database/postgres"
	// `iofs` reads migrations from an `fs.FS`, here the files embedded into the binary.
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	// `stdlib` adapts pgx to `database/sql`, which is what sqlx and golang-migrate expect.
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/MehradEsmaeilZad81/TodoList/apperror"
	"github.com/MehradEsmaeilZad81/TodoList/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DriverName is the database/sql driver name registered by pgx's stdlib package.
// sqlx uses it to pick `$n` placeholders.
const DriverName = "pgx"

// Extensions the schema depends on. pg_trgm backs the trigram indexes used by todo search.
var extensions = []string{"pg_trgm"}

// DSN builds the connection URL for cfg. User and password are escaped.
func DSN(cfg *config.PoolConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:     "/" + cfg.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// NewPool establishes the pgxpool connection pool and verifies it with a ping.
func NewPool(ctx context.Context, cfg *config.PoolConfig) (*pgxpool.Pool, error) {
	// `pgxpool.ParseConfig` parses the DSN string into a `pgxpool.Config` struct.
	poolConfig, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error parsing DSN for database %s", cfg.DBName), err)
	}

	poolConfig.MaxConns = int32(cfg.MaxSize)
	poolConfig.MaxConnIdleTime = 10 * time.Minute
	poolConfig.MaxConnLifetime = 30 * time.Minute

	// A timeout keeps startup from blocking forever on an unreachable database.
	createCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(createCtx, poolConfig)
	if err != nil {
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error creating pgxpool for database %s", cfg.DBName), err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close() // Clean up on connection failure
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error connecting to the database %s with pgxpool", cfg.DBName), err)
	}

	return pool, nil
}

// NewSQLX exposes pool as a *sqlx.DB. Connections are borrowed from the pool,
// so closing the pool is enough on shutdown.
func NewSQLX(pool *pgxpool.Pool) *sqlx.DB {
	return sqlx.NewDb(stdlib.OpenDBFromPool(pool), DriverName)
}

// EnableExtensions creates the PostgreSQL extensions the schema needs.
// It must run before migrations, which create indexes using pg_trgm operator classes.
func EnableExtensions(ctx context.Context, pool *pgxpool.Pool) error {
	for _, ext := range extensions {
		// `CREATE EXTENSION IF NOT EXISTS` is idempotent; it won't error if the extension already exists.
		query := fmt.Sprintf("CREATE EXTENSION IF NOT EXISTS %s;", ext)

		execCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		_, err := pool.Exec(execCtx, query)
		cancel() // Cancel after exec
		if err != nil {
			return apperror.NewDatabaseError(fmt.Sprintf("failed to create extension %s", ext), err)
		}
	}
	return nil
}

// RunMigrations applies any pending migrations embedded under db/migrations.
// golang-migrate closes the *sql.DB it is handed, so it gets a dedicated one
// opened from the pool's connection settings rather than the shared pool.
func RunMigrations(pool *pgxpool.Pool) (uint, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return 0, apperror.NewMigrationError("failed to open embedded migrations", err)
	}

	sqlDB := stdlib.OpenDB(*pool.Config().ConnConfig.Copy())
	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		sqlDB.Close()
		return 0, apperror.NewMigrationError("failed to create migration driver", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		sqlDB.Close()
		return 0, apperror.NewMigrationError("failed to create migrator", err)
	}
	// m.Close() returns two errors, one for the source and one for the database.
	defer m.Close()

	// `migrate.ErrNoChange` is returned if there are no new migrations to apply, which is not an actual error.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, apperror.NewMigrationError("failed to run migrations", err)
	}

	version, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, apperror.NewMigrationError("failed to read migration version", err)
	}
	return version, nil
}
