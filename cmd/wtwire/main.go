// Command wtwire inspects watchtower wire messages and protocol captures.
//
// Usage:
//
//	wtwire <command> [flags]
//
// Commands:
//
//	decode   Decode a hex-encoded message
//	dump     Decode a stream of framed messages
//	log      View, filter, export and summarize capture files
//	version  Print version information
//
// Examples:
//
//	# Decode a DeleteSessionReply
//	wtwire decode 025f0050
//
//	# Decode every frame in a recorded stream and save a capture
//	wtwire dump --log session.wtlog stream.bin
//
//	# Show only StateUpdate messages from a capture
//	wtwire log view --type StateUpdate session.wtlog
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wtwire",
		Short: "Inspect watchtower wire messages",
		Long: `wtwire decodes watchtower protocol messages and inspects the
capture files written by the protocol logger.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		decodeCmd(),
		dumpCmd(),
		logCmd(),
		versionCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
