package db

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"bulk-trafficker/db/migrations"
)

// Migrate brings the journal schema to migrations.Version.
func Migrate(addr string) error {
	return withMigrate(addr, func(mg *migrate.Migrate) error {
		return mg.Migrate(migrations.Version)
	})
}

// MigrateDown removes the journal schema.
func MigrateDown(addr string) error {
	return withMigrate(addr, func(mg *migrate.Migrate) error {
		return mg.Down()
	})
}

func withMigrate(addr string, fn func(*migrate.Migrate) error) error {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return err
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = fn(mg); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
