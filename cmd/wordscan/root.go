// Package main provides the entry point for the wordscan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for wordscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordscan",
		Short: "Word translations scraped from public dictionary sites",
		Long: `Wordscan retrieves word translations from WordReference and Linguee.
It fetches each site's result page and extracts the translations, parts of
speech, example phrases, and pronunciation links into one normalized report.

No API key is needed; the tool reads the same public pages a browser would.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewLookupCmd())
	cmd.AddCommand(NewLangsCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
