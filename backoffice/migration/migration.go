package migration

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/procargo/backoffice/config"
	"github.com/procargo/backoffice/pkg/logger"
)

//go:embed mongo/*.json
var mongoMigrations embed.FS

// RunMongoMigration applies the index migrations embedded under mongo/.
func RunMongoMigration(cfg config.MongoDBConfig) error {
	src, err := iofs.New(mongoMigrations, "mongo")
	if err != nil {
		return fmt.Errorf("open migration source, err: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, cfg.DatabaseURI())
	if err != nil {
		return fmt.Errorf("init mongo migration, err: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logger.Logger(context.Background()).Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("close migration")
		}
	}()

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run mongo migration, err: %w", err)
	}
	version, dirty, _ := m.Version()
	logger.Logger(context.Background()).Info().Uint("version", version).Bool("dirty", dirty).Msg("mongo migration finished")
	return nil
}
