package main

import (
	"context"
	"fmt"
	"os"

	"rmu/credit_bank_service/config"
	initialsetup "rmu/credit_bank_service/pkg/initial_setup"
	"rmu/credit_bank_service/pkg/logger"
	psqlpool "rmu/credit_bank_service/pkg/pool"
	"rmu/credit_bank_service/storage/postgres"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

var (
	cfg            config.Config
	migrationsPath string
	dsn            string
	adminEmail     string
	adminPassword  string
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply credit bank schema migrations",
}

func withMigrator(fn func(m *postgres.Migrator) error) error {
	log := logger.NewLogger("migrate", logger.LevelInfo)
	defer logger.Cleanup(log)

	m, err := postgres.NewMigrator(migrationsPath, dsn, log)
	if err != nil {
		return err
	}
	defer m.Close()

	return fn(m)
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator((*postgres.Migrator).Up)
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back all migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator((*postgres.Migrator).Down)
	},
}

var stepsCmd = &cobra.Command{
	Use:   "steps N",
	Short: "Apply N migrations, or roll back when N is negative",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := cast.ToIntE(args[0])
		if err != nil {
			return fmt.Errorf("steps: %q is not a number", args[0])
		}
		return withMigrator(func(m *postgres.Migrator) error { return m.Steps(n) })
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *postgres.Migrator) error {
			version, dirty, err := m.Version()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version %d dirty=%t\n", version, dirty)
			return nil
		})
	},
}

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create the default super_admin account if it is missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.NewLogger("migrate", logger.LevelInfo)
		defer logger.Cleanup(log)

		ctx := context.Background()
		strg, err := postgres.NewPostgres(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer strg.CloseDB()

		admin, created, err := initialsetup.CreateDefaultAdmin(ctx, strg.User(), log, adminEmail, adminPassword)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "admin id=%d created=%t\n", admin.Id, created)
		return nil
	},
}

func main() {
	cfg = config.Load()

	rootCmd.PersistentFlags().StringVar(&migrationsPath, "path", cfg.MigrationsPath, "migrations directory")
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", psqlpool.DSN(cfg), "postgres connection string")
	seedAdminCmd.Flags().StringVar(&adminEmail, "email", cfg.AdminEmail, "admin email")
	seedAdminCmd.Flags().StringVar(&adminPassword, "password", cfg.AdminPassword, "admin password")
	rootCmd.AddCommand(upCmd, downCmd, stepsCmd, versionCmd, seedAdminCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
