package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noah-isme/timetable-api/internal/app"
	"github.com/noah-isme/timetable-api/pkg/database"
)

func newMigrateCommand(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, deps, func(ctx context.Context, a *app.App) error {
				if err := database.RunMigrations(a.DB.DB, a.Logger.Named("migrate")); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
				return nil
			})
		},
	})

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Revert the most recent migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, deps, func(ctx context.Context, a *app.App) error {
				if err := database.RollbackMigrations(a.DB.DB, steps, a.Logger.Named("migrate")); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "rolled back %d migration(s)\n", steps)
				return nil
			})
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to revert")
	cmd.AddCommand(down)

	return cmd
}
