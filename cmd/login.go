/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the backend and store the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		env := newAppEnv()

		email := strings.TrimSpace(loginEmail)
		if email == "" {
			return errors.New("--email is required")
		}

		password := loginPassword
		if password == "" {
			password = os.Getenv("LMS_PASSWORD")
		}
		if password == "" {
			fmt.Fprint(cmd.OutOrStdout(), "Password: ")
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			password = strings.TrimRight(line, "\r\n")
		}
		if password == "" {
			return errors.New("password is required")
		}

		user, err := env.session.Login(cmd.Context(), email, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		env.state.ApplyLogin(user)
		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", user.FullName(), user.Role)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "account email")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "account password (prompted when omitted; LMS_PASSWORD is also honored)")
}
