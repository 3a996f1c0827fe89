package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"influence-nexus/db/migrations"
)

// ErrDirtySchema means a previous migration failed halfway. It needs manual
// repair with `migrate force`.
var ErrDirtySchema = errors.New("database schema is dirty")

// Migrate moves the schema at addr to migrations.Version and reports the
// version it started from (0 for an empty database).
func Migrate(addr string) (from uint, err error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, fmt.Errorf("open embedded migrations: %w", err)
	}
	defer src.Close()

	m, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return 0, fmt.Errorf("connect migrate: %w", err)
	}
	defer m.Close()

	from, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		from = 0
	case err != nil:
		return 0, fmt.Errorf("read schema version: %w", err)
	case dirty:
		return from, fmt.Errorf("%w at version %d", ErrDirtySchema, from)
	}

	if err = m.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return from, fmt.Errorf("migrate to %d: %w", migrations.Version, err)
	}
	return from, nil
}
