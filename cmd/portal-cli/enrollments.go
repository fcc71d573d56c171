package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/courseportal/portal-cli/internal/portal"
)

func init() {
	rootCmd.AddCommand(enrollCommand())
	rootCmd.AddCommand(enrollmentsCommand())
}

// sessionUserID returns the id of the signed-in user, preferring the fetched
// profile over the token claims.
func sessionUserID() (string, error) {
	s := app.manager.Snapshot()
	if s.User != nil {
		return s.User.ID, nil
	}
	if s.Claims != nil && s.Claims.Subject != "" {
		return s.Claims.Subject, nil
	}
	return "", errors.New("no signed-in user")
}

func enrollCommand() *cobra.Command {
	var user string
	cmd := &cobra.Command{
		Use:   "enroll course-id",
		Short: "enroll in a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			userID := user
			if userID == "" {
				var err error
				if userID, err = sessionUserID(); err != nil {
					return err
				}
			}
			enrollment, err := app.client.Enroll(cmd.Context(), app.manager.Snapshot().Token, userID, args[0])
			if err != nil {
				return err
			}
			return printJSON(enrollment)
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "enroll another user (defaults to yourself)")
	return cmd
}

func enrollmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enrollments",
		Short: "view and update course enrollments",
	}
	cmd.AddCommand(
		enrollmentsListCommand(),
		enrollmentsSetStatusCommand(),
		enrollmentsProgressCommand(),
	)
	return cmd
}

func enrollmentsListCommand() *cobra.Command {
	var user string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list enrollments",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			userID := user
			if userID == "" {
				var err error
				if userID, err = sessionUserID(); err != nil {
					return err
				}
			}
			enrollments, err := app.client.ListEnrollments(cmd.Context(), app.manager.Snapshot().Token, userID)
			if err != nil {
				return err
			}
			return printJSON(enrollments)
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "list another user's enrollments (defaults to yourself)")
	return cmd
}

func enrollmentsSetStatusCommand() *cobra.Command {
	var (
		user   string
		status string
	)
	cmd := &cobra.Command{
		Use:   "set-status enrollment-id",
		Short: "change the status of an enrollment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			if status == "" {
				return errors.New("status is required")
			}
			userID := user
			if userID == "" {
				var err error
				if userID, err = sessionUserID(); err != nil {
					return err
				}
			}
			enrollment, err := app.client.UpdateEnrollmentStatus(cmd.Context(), app.manager.Snapshot().Token, userID, args[0],
				portal.EnrollmentStatusRequest{Status: portal.EnrollmentStatus(status)})
			if err != nil {
				return err
			}
			return printJSON(enrollment)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&user, "user", "", "act on another user's enrollment (defaults to yourself)")
	flags.StringVar(&status, "status", "", "new status (INICIADO, EN_PROGRESO, COMPLETADO)")
	return cmd
}

func enrollmentsProgressCommand() *cobra.Command {
	var (
		user      string
		module    string
		status    string
		completed int
	)
	cmd := &cobra.Command{
		Use:   "progress enrollment-id",
		Short: "record progress in a module of an enrollment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			if module == "" {
				return errors.New("module is required")
			}
			userID := user
			if userID == "" {
				var err error
				if userID, err = sessionUserID(); err != nil {
					return err
				}
			}
			progress, err := app.client.UpsertModuleProgress(cmd.Context(), app.manager.Snapshot().Token, userID, args[0],
				portal.ModuleProgressRequest{
					ModuleID:          module,
					Status:            portal.EnrollmentStatus(status),
					CompletedChapters: completed,
				})
			if err != nil {
				return err
			}
			return printJSON(progress)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&user, "user", "", "act on another user's enrollment (defaults to yourself)")
	flags.StringVar(&module, "module", "", "module id")
	flags.StringVar(&status, "status", "", "module status (INICIADO, EN_PROGRESO, COMPLETADO)")
	flags.IntVar(&completed, "completed-chapters", 0, "number of completed chapters")
	return cmd
}
