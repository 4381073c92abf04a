/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// coursesCmd represents the courses command
var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the published course catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		env := newAppEnv()

		courses, err := env.client.PublishedCourses(cmd.Context())
		if err != nil {
			return fmt.Errorf("list courses: %w", err)
		}
		if env.cfg.DisableProgressAPI {
			env.logger.Debug().Msg("progress API disabled by configuration")
		}

		if len(courses) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No published courses")
			return nil
		}
		for _, course := range courses {
			fmt.Fprintf(cmd.OutOrStdout(), "%4d  %-30s  %-12s  %s\n", course.ID, course.Title, course.Category, course.Instructor)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)
}
