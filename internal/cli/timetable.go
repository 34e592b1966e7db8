package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/noah-isme/timetable-api/internal/app"
	"github.com/noah-isme/timetable-api/internal/dto"
)

func newGenerateCommand(deps Deps) *cobra.Command {
	var departmentID string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate the timetable of a department",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, deps, func(ctx context.Context, a *app.App) error {
				report, err := a.Timetable.Generate(ctx, dto.GenerateTimetableRequest{DepartmentID: departmentID})
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), report)
			})
		},
	}
	cmd.Flags().StringVar(&departmentID, "department", "", "department id")
	_ = cmd.MarkFlagRequired("department")
	return cmd
}

func newViewCommand(deps Deps) *cobra.Command {
	var departmentID string
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Print the stored timetable of a department",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, deps, func(ctx context.Context, a *app.App) error {
				timetable, err := a.Timetable.ViewSchedule(ctx, departmentID)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "DAY\tSLOT\tSECTION\tCOURSE\tTEACHER\tROOM")
				for _, e := range timetable.Entries {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", e.Day, e.TimeSlot, e.SectionName, e.CourseName, e.TeacherName, e.RoomName)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().StringVar(&departmentID, "department", "", "department id")
	_ = cmd.MarkFlagRequired("department")
	return cmd
}

func newCheckCommand(deps Deps) *cobra.Command {
	var req dto.ConflictCheckRequest
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether a teacher, room or section is free at a day and slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, deps, func(ctx context.Context, a *app.App) error {
				result, err := a.Timetable.CheckConflict(ctx, req)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), result)
			})
		},
	}
	cmd.Flags().StringVar(&req.Day, "day", "", "weekday, e.g. Monday")
	cmd.Flags().StringVar(&req.TimeSlot, "slot", "", "time slot, e.g. 09:00-10:00")
	cmd.Flags().StringVar(&req.TeacherID, "teacher", "", "teacher id")
	cmd.Flags().StringVar(&req.RoomID, "room", "", "room id")
	cmd.Flags().StringVar(&req.SectionID, "section", "", "section id")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("slot")
	return cmd
}

func newCacheCommand(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the timetable view cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "purge",
		Short: "Drop every cached department view",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, deps, func(ctx context.Context, a *app.App) error {
				if err := a.Timetable.PurgeViewCache(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "timetable view cache purged")
				return nil
			})
		},
	})
	return cmd
}
