// Package main implements the bookmark-api command: the HTTP server that
// manages users' bookmarks, plus operator subcommands for migrations and
// password hashing.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Configuration is read from BOOKMARK_*
// environment variables and an optional config file.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bookmark-api",
		Short:         "Multi-user bookmark manager HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newHashPasswordCmd(),
	)

	return rootCmd
}

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")

	return cmd
}
