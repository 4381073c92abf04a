/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/learnhub/lmscli/config"
	"github.com/learnhub/lmscli/internal/api"
	"github.com/learnhub/lmscli/internal/log"
	"github.com/learnhub/lmscli/internal/session"
	"github.com/learnhub/lmscli/internal/state"
	"github.com/learnhub/lmscli/internal/tokenstore"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lmscli",
	Short: "Command-line client for the LearnHub LMS backend",
	Long: `lmscli is a command-line client for the LearnHub LMS backend.

It manages a local session (login, logout, profile) and browses the
course catalog. The only state it keeps on disk is the session token.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appEnv bundles the wired client-side components. It is built per command
// invocation so that nothing session-related lives in a package variable.
type appEnv struct {
	cfg     config.Config
	logger  zerolog.Logger
	http    *http.Client
	client  *api.Client
	tokens  tokenstore.Store
	session *session.Manager
	state   *state.Store
}

func newAppEnv() *appEnv {
	cfg := config.LoadConfig()
	logger := log.New(cfg.Environment)
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	client := api.NewClient(cfg.APIBaseURL, httpClient, logger)
	tokens := tokenstore.NewFileStore(cfg.TokenPath)
	manager := session.NewManager(client, tokens, logger)

	return &appEnv{
		cfg:     cfg,
		logger:  logger,
		http:    httpClient,
		client:  client,
		tokens:  tokens,
		session: manager,
		state:   state.New(tokens, manager),
	}
}
