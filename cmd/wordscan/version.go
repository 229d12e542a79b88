package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Release builds inject these through -ldflags; source builds leave them
// empty and the functions below fall back to module build info.
var (
	version = ""
	commit  = ""
	date    = ""
)

// getVersion reports the module version, preferring the ldflags value over
// what the Go module system recorded. "(devel)" marks a source build.
func getVersion() string {
	if version != "" {
		return version
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok && buildInfo.Main.Version != "" {
		return buildInfo.Main.Version
	}
	return "(devel)"
}

// getCommit reports the VCS revision the binary was built from, shortened
// to seven characters the way git abbreviates hashes.
func getCommit() string {
	if commit != "" {
		return commit
	}
	if revision := buildSetting("vcs.revision"); revision != "" {
		if len(revision) > 7 {
			return revision[:7]
		}
		return revision
	}
	return "unknown"
}

// getDate reports when the binary was built.
func getDate() string {
	if date != "" {
		return date
	}
	if t := buildSetting("vcs.time"); t != "" {
		return t
	}
	return "unknown"
}

// buildSetting looks up one key in the build info the toolchain stamped
// into the binary. Missing info and missing keys both come back empty.
func buildSetting(key string) string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range buildInfo.Settings {
		if setting.Key == key {
			return setting.Value
		}
	}
	return ""
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of wordscan.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wordscan version %s\n", getVersion())
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", getCommit())
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", getDate())
		},
	}
}
