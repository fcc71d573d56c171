package main

import (
	"github.com/spf13/cobra"

	"github.com/courseportal/portal-cli/internal/portal"
)

func init() {
	rootCmd.AddCommand(modulesCommand())
	rootCmd.AddCommand(chaptersCommand())
}

func modulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modules",
		Short: "manage the modules of a course",
	}
	cmd.AddCommand(modulesAddCommand(), modulesUpdateCommand(), modulesDeleteCommand())
	return cmd
}

func moduleRequestFlags(cmd *cobra.Command, req *portal.ModuleRequest) {
	flags := cmd.Flags()
	flags.StringVar(&req.Title, "title", "", "module title")
	flags.StringVar(&req.Summary, "summary", "", "module summary")
	flags.IntVar(&req.OrderIndex, "order", 0, "position within the course")
}

func modulesAddCommand() *cobra.Command {
	var req portal.ModuleRequest
	cmd := &cobra.Command{
		Use:   "add course-id",
		Short: "add a module to a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(courseEditorRoles...); err != nil {
				return err
			}
			module, err := app.client.CreateModule(cmd.Context(), app.manager.Snapshot().Token, args[0], req)
			if err != nil {
				return err
			}
			return printJSON(module)
		},
	}
	moduleRequestFlags(cmd, &req)
	return cmd
}

func modulesUpdateCommand() *cobra.Command {
	var req portal.ModuleRequest
	cmd := &cobra.Command{
		Use:   "update course-id module-id",
		Short: "update a module",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(courseEditorRoles...); err != nil {
				return err
			}
			module, err := app.client.UpdateModule(cmd.Context(), app.manager.Snapshot().Token, args[0], args[1], req)
			if err != nil {
				return err
			}
			return printJSON(module)
		},
	}
	moduleRequestFlags(cmd, &req)
	return cmd
}

func modulesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete course-id module-id",
		Short: "remove a module from a course",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(courseEditorRoles...); err != nil {
				return err
			}
			return app.client.DeleteModule(cmd.Context(), app.manager.Snapshot().Token, args[0], args[1])
		},
	}
}

func chaptersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chapters",
		Short: "manage the chapters of a module",
	}
	cmd.AddCommand(chaptersAddCommand(), chaptersUpdateCommand(), chaptersDeleteCommand())
	return cmd
}

func chapterRequestFlags(cmd *cobra.Command, req *portal.ChapterRequest) {
	flags := cmd.Flags()
	flags.StringVar(&req.Title, "title", "", "chapter title")
	flags.StringVar(&req.Content, "content", "", "chapter content")
	flags.IntVar(&req.OrderIndex, "order", 0, "position within the module")
	flags.IntVar(&req.DurationMinutes, "duration", 0, "duration in minutes")
}

func chaptersAddCommand() *cobra.Command {
	var req portal.ChapterRequest
	cmd := &cobra.Command{
		Use:   "add course-id module-id",
		Short: "add a chapter to a module",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(courseEditorRoles...); err != nil {
				return err
			}
			chapter, err := app.client.CreateChapter(cmd.Context(), app.manager.Snapshot().Token, args[0], args[1], req)
			if err != nil {
				return err
			}
			return printJSON(chapter)
		},
	}
	chapterRequestFlags(cmd, &req)
	return cmd
}

func chaptersUpdateCommand() *cobra.Command {
	var req portal.ChapterRequest
	cmd := &cobra.Command{
		Use:   "update course-id module-id chapter-id",
		Short: "update a chapter",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(courseEditorRoles...); err != nil {
				return err
			}
			chapter, err := app.client.UpdateChapter(cmd.Context(), app.manager.Snapshot().Token, args[0], args[1], args[2], req)
			if err != nil {
				return err
			}
			return printJSON(chapter)
		},
	}
	chapterRequestFlags(cmd, &req)
	return cmd
}

func chaptersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete course-id module-id chapter-id",
		Short: "remove a chapter from a module",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(courseEditorRoles...); err != nil {
				return err
			}
			return app.client.DeleteChapter(cmd.Context(), app.manager.Snapshot().Token, args[0], args[1], args[2])
		},
	}
}
