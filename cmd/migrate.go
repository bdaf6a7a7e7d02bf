package cmd

import (
	"fmt"
	"strings"

	"github.com/killallgit/lecture-api/internal/database"
	"github.com/killallgit/lecture-api/internal/models"
	"github.com/killallgit/lecture-api/pkg/config"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the database schema for the Lecture Relay API.

The schema is managed with GORM auto-migration. "up" creates or alters
the lectures and transcriptions tables to match the current models;
"status" reports which tables exist.`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the current schema",
	RunE:  runMigrateUp,
}

// migrateStatusCmd shows which tables exist
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show schema status",
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

func openDatabase() (*database.DB, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Lecture{}, &models.Transcription{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Schema Status")
	fmt.Fprintln(out, strings.Repeat("=", 40))

	migrator := db.Migrator()
	for _, table := range []string{"lectures", "transcriptions"} {
		state := "missing"
		if migrator.HasTable(table) {
			state = "present"
		}
		fmt.Fprintf(out, "  %-16s %s\n", table, state)
	}

	return nil
}
