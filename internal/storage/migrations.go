package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrationManager applies the embedded schema files in version order.
// The SQL is written to run unchanged on sqlite3 and postgres.
type MigrationManager struct {
	db *sql.DB
}

// NewMigrationManager creates a new migration manager.
func NewMigrationManager(db *sql.DB) *MigrationManager {
	return &MigrationManager{db: db}
}

// MigrationStatus represents the status of migrations.
type MigrationStatus struct {
	Applied []string
	Pending []string
}

// UpToDate reports whether no migrations are pending.
func (s *MigrationStatus) UpToDate() bool {
	return len(s.Pending) == 0
}

// Status lists applied and pending migrations.
func (m *MigrationManager) Status(ctx context.Context) (*MigrationStatus, error) {
	if err := m.ensureSchemaMigrationsTable(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	all, err := listMigrations()
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return nil, fmt.Errorf("read applied migrations: %w", err)
	}

	status := &MigrationStatus{}
	for _, name := range all {
		if applied[name] {
			status.Applied = append(status.Applied, name)
		} else {
			status.Pending = append(status.Pending, name)
		}
	}
	return status, nil
}

// Migrate applies all pending migrations and returns the resulting status.
func (m *MigrationManager) Migrate(ctx context.Context) (*MigrationStatus, error) {
	status, err := m.Status(ctx)
	if err != nil {
		return nil, err
	}

	for _, name := range status.Pending {
		if err := m.apply(ctx, name); err != nil {
			return nil, fmt.Errorf("run migration %s: %w", name, err)
		}
		status.Applied = append(status.Applied, name)
	}
	status.Pending = nil

	return status, nil
}

func (m *MigrationManager) ensureSchemaMigrationsTable(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL
		)
	`)
	return err
}

func (m *MigrationManager) appliedVersions(ctx context.Context) (map[string]bool, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

func (m *MigrationManager) apply(ctx context.Context, name string) error {
	body, err := migrationFiles.ReadFile("migrations/" + name)
	if err != nil {
		return err
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, string(body)); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, applied_at) VALUES ($1, $2)`,
		name, time.Now().UTC(),
	); err != nil {
		return err
	}

	return tx.Commit()
}

func listMigrations() ([]string, error) {
	entries, err := fs.ReadDir(migrationFiles, "migrations")
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
