package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/config"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/database"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/contract"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/kvstore"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/observability"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/migrator/sqlite"
)

const badgerGCInterval = 10 * time.Minute

var (
	cfg    *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "rotafacil",
	Short:         "Escala de equipes e frotas de entrega",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintln(os.Stderr, "Warning: .env file not found")
		}
		cfg = config.Load()
		logger = observability.InitLogger("rotafacil", cfg.LogLevel)
	},
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd, printCmd, rosterCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStorage opens the configured collection backend. The SQLite schema is
// migrated on open.
func openStorage(ctx context.Context) (contract.DataManager, error) {
	log := observability.Component(logger, "storage")

	switch cfg.StorageDriver {
	case config.StorageSQLite:
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}

		log.Info().Str("path", cfg.DatabasePath).Msg("running migrations")
		if err := sqlite.Migrate(db.DB()); err != nil {
			_ = db.Close()
			return nil, err
		}
		return database.NewInstance(db), nil

	case config.StorageBadger:
		store, err := kvstore.New(cfg.BadgerDir, log)
		if err != nil {
			return nil, err
		}
		store.StartGCRoutine(ctx, badgerGCInterval)
		return store, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func location() *time.Location {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		logger.Warn().Err(err).Str("tz", cfg.TimeZone).Msg("unknown time zone, using local time")
		return time.Local
	}
	return loc
}
