package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the threads CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "threads",
		Short: "Threads - a minimal social networking backend",
		Long: `Threads is a minimal social networking backend with accounts,
posts, replies, likes, a follow graph, and cookie-based sessions.`,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
