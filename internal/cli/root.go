package cli

import (
	"fmt"

	"localnews/database"
	"localnews/internal/config"
	"localnews/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	EnvFile string
	Verbose bool
}

// NewRootCommand creates the newsctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "newsctl",
		Short:         "Admin tool for the local news API",
		Long:          "Run migrations, seed sample articles, issue admin tokens and inspect the article store.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "optional .env file to load")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log progress to stderr")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewTokenCommand(opts))
	cmd.AddCommand(NewCountCommand(opts))

	return cmd
}

func (o *RootOptions) load() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(o.EnvFile)
	if err != nil {
		return nil, nil, err
	}
	if !o.Verbose {
		return cfg, zap.NewNop(), nil
	}
	log, err := logger.New(cfg.Production())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return cfg, log, nil
}

// openDB opens and migrates the database. The caller closes it.
func (o *RootOptions) openDB() (*gorm.DB, *zap.Logger, func(), error) {
	cfg, log, err := o.load()
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return nil, nil, nil, err
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	if err := database.MigrateDatabase(db, log); err != nil {
		closeDB()
		return nil, nil, nil, err
	}
	return db, log, closeDB, nil
}
