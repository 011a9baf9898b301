package postgres

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-marketing-api/infrastructure/database/migrations"
)

var ErrDirtyDatabase = errors.New("database is in dirty state")

// Migrate aplica as migrações embutidas até migrations.Version
func Migrate(dsn string) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	defer source.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", source, dsn)
	if err != nil {
		return err
	}
	defer mg.Close()

	version, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return ErrDirtyDatabase
	}

	if err = mg.Migrate(migrations.Version); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logrus.WithField("version", version).Info("Banco de dados já está na versão mais recente")
			return nil
		}
		return err
	}

	logrus.WithFields(logrus.Fields{
		"from": version,
		"to":   migrations.Version,
	}).Info("Migrações aplicadas com sucesso")

	return nil
}
