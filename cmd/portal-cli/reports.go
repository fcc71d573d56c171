package main

import (
	"github.com/spf13/cobra"

	"github.com/courseportal/portal-cli/internal/portal"
)

func init() {
	rootCmd.AddCommand(reportsCommand())
}

func reportsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "progress reports",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "user user-id",
			Short: "progress report for a user",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := requireSession(portal.RoleAdmin); err != nil {
					return err
				}
				report, err := app.client.UserProgress(cmd.Context(), app.manager.Snapshot().Token, args[0])
				if err != nil {
					return err
				}
				return printJSON(report)
			},
		},
		&cobra.Command{
			Use:   "course course-id",
			Short: "progress report for a course",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := requireSession(portal.RoleAdmin); err != nil {
					return err
				}
				report, err := app.client.CourseProgress(cmd.Context(), app.manager.Snapshot().Token, args[0])
				if err != nil {
					return err
				}
				return printJSON(report)
			},
		},
	)
	return cmd
}
