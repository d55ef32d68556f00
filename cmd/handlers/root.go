// Package handlers wires the CLI commands to the generation, validation,
// persistence, and serving layers.
package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ideaforge/internal/config"
)

var cfgFile string

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ideaforge",
		Short: "ideaforge generates and validates personalized SaaS business ideas.",
		Long: `ideaforge turns a founder profile (skills, interests, constraints, values)
into scored SaaS business ideas, synthesizes market-validation data for any
idea, and stores saved ideas in PostgreSQL.

Idea generation uses the Gemini API when GEMINI_API_KEY is configured and
falls back to a built-in synthesizer otherwise, so every command works
without credentials.`,
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ideaforge.yaml)")

	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewValidateCmd())
	rootCmd.AddCommand(NewMigrateCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	_, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if config.Get().App.ConfigFile != "" {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", config.Get().App.ConfigFile)
	}
}
