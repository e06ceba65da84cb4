package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set by the release build (ldflags), mirroring the
// teacher's own goreleaser-injected version string.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "mclaunch",
	Short:   "A standalone Minecraft Java Edition launcher core",
	Version: Version,
}

// Execute runs the root command, exiting the process on error (each
// subcommand's own RunE is already wrapped by internal/uicmd.New, so
// this only catches cobra-level failures like unknown flags).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
