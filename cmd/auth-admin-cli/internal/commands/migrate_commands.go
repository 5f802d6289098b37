package commands

import (
	"github.com/MGTheTrain/auth-admin/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
)

// MigrateCmd creates or updates the database schema
func (handler *CommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	if err := persistence.AutoMigrate(handler.env.DB); err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), "Database schema is up to date")
	return nil
}

// InitMigrateCommands registers the migrate command
func InitMigrateCommands(rootCmd *cobra.Command, handler *CommandHandler) {
	var migrateCmd = &cobra.Command{
		Use:      "migrate",
		Short:    "Create or update the database schema",
		Args:     cobra.NoArgs,
		PreRunE:  handler.open,
		RunE:     handler.MigrateCmd,
		PostRunE: handler.close,
	}
	rootCmd.AddCommand(migrateCmd)
}
