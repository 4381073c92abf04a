/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/learnhub/lmscli/internal/api"
)

var profileUpdateTarget int

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the authenticated profile",
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Patch profile fields (bio, name, phone, address, avatar)",
	RunE: func(cmd *cobra.Command, args []string) error {
		env := newAppEnv()

		current, err := env.session.FetchProfile(cmd.Context())
		if err != nil {
			return fmt.Errorf("not logged in: %w", err)
		}

		target := profileUpdateTarget
		if target == 0 {
			target = current.ID
		}

		update := api.ProfileUpdate{Fields: map[string]any{}}
		for _, name := range []string{"bio", "fname", "lname", "phone", "address"} {
			if cmd.Flags().Changed(name) {
				value, _ := cmd.Flags().GetString(name)
				update.Fields[name] = value
			}
		}
		if cmd.Flags().Changed("avatar") {
			path, _ := cmd.Flags().GetString("avatar")
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read avatar: %w", err)
			}
			update.Avatar = &api.AvatarUpload{Filename: filepath.Base(path), Data: data}
		}

		token, err := env.tokens.Read()
		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}

		updated, err := env.client.UpdateUser(cmd.Context(), token, target, update)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}

		// Refresh the cached user without a re-fetch.
		if updated.ID == current.ID {
			env.state.SetUser(&updated)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Updated profile of %s\n", updated.FullName())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileUpdateCmd)

	profileUpdateCmd.Flags().String("bio", "", "profile bio")
	profileUpdateCmd.Flags().String("fname", "", "first name")
	profileUpdateCmd.Flags().String("lname", "", "last name")
	profileUpdateCmd.Flags().String("phone", "", "phone number")
	profileUpdateCmd.Flags().String("address", "", "postal address")
	profileUpdateCmd.Flags().String("avatar", "", "path to an avatar image")
	profileUpdateCmd.Flags().IntVar(&profileUpdateTarget, "user", 0, "target user id (defaults to the authenticated user; other users require the admin role)")
}
