package main

import (
	"github.com/spf13/cobra"

	"github.com/courseportal/portal-cli/internal/portal"
)

func init() {
	rootCmd.AddCommand(coursesCommand())
}

// courseEditorRoles may create, update and delete courses and their content.
var courseEditorRoles = []portal.Role{portal.RoleAdmin, portal.RoleInstructor}

func coursesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "browse and manage courses",
	}
	cmd.AddCommand(
		coursesListCommand(),
		coursesShowCommand(),
		coursesCreateCommand(),
		coursesUpdateCommand(),
		coursesDeleteCommand(),
	)
	return cmd
}

func coursesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list all courses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			courses, err := app.client.ListCourses(cmd.Context(), app.manager.Snapshot().Token)
			if err != nil {
				return err
			}
			return printJSON(courses)
		},
	}
}

func coursesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show course-id",
		Short: "show a course with its modules and chapters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			course, err := app.client.Course(cmd.Context(), app.manager.Snapshot().Token, args[0])
			if err != nil {
				return err
			}
			return printJSON(course)
		},
	}
}

func courseRequestFlags(cmd *cobra.Command, req *portal.CourseRequest) {
	flags := cmd.Flags()
	flags.StringVar(&req.Code, "code", "", "course code")
	flags.StringVar(&req.Title, "title", "", "course title")
	flags.StringVar(&req.Description, "description", "", "course description")
	flags.StringVar((*string)(&req.Status), "status", "", "course status (DRAFT, PUBLISHED, ARCHIVED)")
}

func coursesCreateCommand() *cobra.Command {
	var req portal.CourseRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "create a course",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(courseEditorRoles...); err != nil {
				return err
			}
			course, err := app.client.CreateCourse(cmd.Context(), app.manager.Snapshot().Token, req)
			if err != nil {
				return err
			}
			return printJSON(course)
		},
	}
	courseRequestFlags(cmd, &req)
	return cmd
}

func coursesUpdateCommand() *cobra.Command {
	var req portal.CourseRequest
	cmd := &cobra.Command{
		Use:   "update course-id",
		Short: "update a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(courseEditorRoles...); err != nil {
				return err
			}
			course, err := app.client.UpdateCourse(cmd.Context(), app.manager.Snapshot().Token, args[0], req)
			if err != nil {
				return err
			}
			return printJSON(course)
		},
	}
	courseRequestFlags(cmd, &req)
	return cmd
}

func coursesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete course-id",
		Short: "delete a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(courseEditorRoles...); err != nil {
				return err
			}
			return app.client.DeleteCourse(cmd.Context(), app.manager.Snapshot().Token, args[0])
		},
	}
}
