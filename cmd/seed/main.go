package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"userservice/internal/config"
	"userservice/internal/db"
	"userservice/internal/logger"
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "seed",
	Short:        "Manage the user service schema and reference data",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(rolesCmd)
	rootCmd.AddCommand(resetCmd)
}

// bootDB loads config and opens the database connection.
func bootDB(ctx context.Context) (*gorm.DB, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	logger.Init(logger.Options{Level: cfg.Log.Level, Pretty: !cfg.IsProduction()})
	return db.Open(cfg.Database)
}

// seed migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the roles and users tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		gdb, err := bootDB(cmd.Context())
		if err != nil {
			return err
		}
		if err := db.Migrate(gdb); err != nil {
			return err
		}
		log := logger.Get()
		log.Info().Msg("migrations completed")
		return nil
	},
}

// seed roles [names...]
var rolesCmd = &cobra.Command{
	Use:   "roles [names...]",
	Short: "Insert roles that do not exist yet (default: admin customer)",
	RunE: func(cmd *cobra.Command, args []string) error {
		gdb, err := bootDB(cmd.Context())
		if err != nil {
			return err
		}
		if err := db.Migrate(gdb); err != nil {
			return err
		}
		created, err := db.SeedRoles(gdb, args...)
		if err != nil {
			return err
		}
		log := logger.Get()
		log.Info().Int("created", created).Msg("roles seeded")
		return nil
	},
}

// seed reset
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop the users and roles tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		gdb, err := bootDB(cmd.Context())
		if err != nil {
			return err
		}
		if err := db.Reset(gdb); err != nil {
			return err
		}
		log := logger.Get()
		log.Warn().Msg("users and roles tables dropped")
		return nil
	},
}
