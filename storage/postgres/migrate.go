package postgres

import (
	"rmu/credit_bank_service/pkg/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/pkg/errors"
)

// Migrator applies the SQL files under a directory to one database.
type Migrator struct {
	m   *migrate.Migrate
	log logger.LoggerI
}

// NewMigrator expects a postgres:// DSN, as produced by psqlpool.DSN.
func NewMigrator(path, dsn string, log logger.LoggerI) (*Migrator, error) {
	m, err := migrate.New("file://"+path, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "create migrator")
	}

	return &Migrator{m: m, log: log}, nil
}

func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "migrate up")
	}
	mg.logVersion("migrated up")
	return nil
}

func (mg *Migrator) Down() error {
	if err := mg.m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "migrate down")
	}
	mg.logVersion("migrated down")
	return nil
}

// Steps moves n migrations forward, or backward when n is negative.
func (mg *Migrator) Steps(n int) error {
	if err := mg.m.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrapf(err, "migrate %d steps", n)
	}
	mg.logVersion("migrated steps")
	return nil
}

func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	if srcErr != nil {
		return srcErr
	}
	return dbErr
}

func (mg *Migrator) logVersion(msg string) {
	version, dirty, err := mg.Version()
	if err != nil {
		mg.log.Warn("read migration version", logger.Error(err))
		return
	}
	mg.log.Info(msg, logger.Any("version", version), logger.Any("dirty", dirty))
}
