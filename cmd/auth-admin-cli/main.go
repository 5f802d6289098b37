// Package main is the entry point for the auth-admin-cli application.
// It registers the schema migration and data management commands and
// executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MGTheTrain/auth-admin/cmd/auth-admin-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "auth-admin-cli",
		Short: "Database management CLI for auth-admin",
		Long: `auth-admin-cli manages the auth-admin database from the command line.
It migrates the schema and creates, lists and deletes users, houses, courses
and class enrollments.

The database is read from the same YAML file as the web application
(--config, CONFIG_PATH or configs/web-app.yaml).`,
		SilenceUsage: true,
	}

	if err := commands.InitCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
