/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/learnhub/lmscli/internal/httpx"
)

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Probe backend connectivity",
	Long: `Probes the backend health endpoint, falling back to the public
course catalog. The result is best-effort: an unreachable report can be
wrong (captive portals, flaky links), so it is a hint, not a verdict.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env := newAppEnv()

		probe := httpx.NewProbe(env.http, env.cfg.APIBaseURL)
		if probe.Check(cmd.Context()) {
			fmt.Fprintf(cmd.OutOrStdout(), "Backend reachable at %s\n", env.cfg.APIBaseURL)
			return nil
		}
		return errors.New("backend appears unreachable (best-effort check)")
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
