package main

import (
	"os"

	"github.com/ringlite/ringlite/internal/cmd"
	"github.com/ringlite/ringlite/internal/cmn/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   config.AppSlug,
	Short: "RingLite license and trial management",
	Long: `RingLite license and trial management.

It tracks the free-use quota of this installation, verifies license keys
offline against the built-in public key and records successful activations.
`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(cmd.Status())
	rootCmd.AddCommand(cmd.Use())
	rootCmd.AddCommand(cmd.Activate())
	rootCmd.AddCommand(cmd.Nag())
	rootCmd.AddCommand(cmd.Verify())
	rootCmd.AddCommand(cmd.Keygen())
	rootCmd.AddCommand(cmd.Issue())
	rootCmd.AddCommand(cmd.Doctor())
	rootCmd.AddCommand(cmd.Version())

	config.Version = version
}

var version = "0.0.0"
