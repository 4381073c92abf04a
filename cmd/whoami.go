/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/learnhub/lmscli/internal/guard"
)

var whoamiRequireRole string

// whoamiCmd represents the whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		env := newAppEnv()

		var redirected string
		gate := guard.NewGate(
			guard.Policy{RequiredRole: whoamiRequireRole},
			guard.NavigatorFunc(func(path string) { redirected = path }),
		)
		cancel := gate.Bind(env.state)
		defer cancel()

		env.state.Init(cmd.Context())

		snap := env.state.Snapshot()
		switch decision := gate.Apply(snap); decision.Outcome {
		case guard.OutcomeGranted:
			user := snap.User
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", user.FullName(), user.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "Role: %s\n", user.Role)
			if user.Bio != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Bio: %s\n", user.Bio)
			}
			return nil
		case guard.OutcomeLoginRequired:
			return fmt.Errorf("not logged in (were this a browser, you would land on %s); run 'lmscli login'", redirected)
		case guard.OutcomeRoleDenied:
			return fmt.Errorf("insufficient permissions: role %q required", whoamiRequireRole)
		default:
			return errors.New("session state not loaded")
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)

	whoamiCmd.Flags().StringVar(&whoamiRequireRole, "require-role", "", "fail unless the session has this role")
}
