// Package postgres wires the primary/replica connection pool and runs
// schema migrations at startup.
package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/bxcodec/dbresolver/v2"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Connection is a hub for the primary/replica postgres pool. Reads are
// load-balanced across replicas; writes always go to the primary.
type Connection struct {
	ConnectionStringPrimary string
	ConnectionStringReplica string
	PrimaryDBName           string
	MigrationsPath          string
	db                      dbresolver.DB
	connected               bool
}

// Connect opens the primary and replica pools, runs pending migrations
// against the primary, and verifies connectivity.
func (c *Connection) Connect() error {
	dbPrimary, err := sql.Open("pgx", c.ConnectionStringPrimary)
	if err != nil {
		return fmt.Errorf("open primary database: %w", err)
	}

	dbReplica, err := sql.Open("pgx", c.ConnectionStringReplica)
	if err != nil {
		return fmt.Errorf("open replica database: %w", err)
	}

	db := dbresolver.New(
		dbresolver.WithPrimaryDBs(dbPrimary),
		dbresolver.WithReplicaDBs(dbReplica),
		dbresolver.WithLoadBalancer(dbresolver.RoundRobinLB),
	)

	if c.MigrationsPath != "" {
		driver, err := postgres.WithInstance(dbPrimary, &postgres.Config{
			MultiStatementEnabled: true,
			DatabaseName:          c.PrimaryDBName,
			SchemaName:            "public",
		})
		if err != nil {
			return fmt.Errorf("build migration driver: %w", err)
		}

		m, err := migrate.NewWithDatabaseInstance("file://"+c.MigrationsPath, c.PrimaryDBName, driver)
		if err != nil {
			return fmt.Errorf("load migrations: %w", err)
		}

		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	c.db = db
	c.connected = true

	return nil
}

// DB returns the resolver-backed connection, connecting lazily if this is
// the first call.
func (c *Connection) DB() (dbresolver.DB, error) {
	if !c.connected {
		if err := c.Connect(); err != nil {
			return nil, err
		}
	}

	return c.db, nil
}
