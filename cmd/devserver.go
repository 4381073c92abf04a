/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/learnhub/lmscli/config"
	"github.com/learnhub/lmscli/internal/devserver"
	"github.com/learnhub/lmscli/internal/log"
)

// devserverCmd represents the devserver command
var devserverCmd = &cobra.Command{
	Use:   "devserver",
	Short: "Run the bundled stub LMS backend",
	Long: `Runs an in-memory stand-in for the LMS backend. Usage:

	lmscli devserver

Seeded accounts (password "password123"): jane@learnhub.dev (admin),
tom@learnhub.dev (instructor), mia@learnhub.dev (student).`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig()
		logger := log.New(cfg.Environment)

		srv, err := devserver.New(cfg.DevServer, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start dev server: %v\n", err)
			os.Exit(1)
		}
		if err := srv.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "dev server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(devserverCmd)
}
