package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DR-BoneZ/lightning-wire-msgs-go/cmd/wtwire/commands"
)

func logCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Work with protocol capture files",
		Long: `View, filter, export and summarize capture files (.wtlog) written
by the protocol logger.`,
	}

	cmd.AddCommand(
		logViewCmd(),
		logFilterCmd(),
		logExportCmd(),
		logStatsCmd(),
	)
	return cmd
}

// addFilterFlags registers the event selection flags shared by view and
// filter.
func addFilterFlags(cmd *cobra.Command, opts *commands.FilterOptions) {
	cmd.Flags().StringVar(&opts.ConnID, "conn-id", "", "Filter by connection ID")
	cmd.Flags().StringVar(&opts.Layer, "layer", "", "Filter by layer (transport, wire, session)")
	cmd.Flags().StringVar(&opts.Direction, "direction", "", "Filter by direction (in, out)")
	cmd.Flags().StringVar(&opts.Category, "category", "", "Filter by category (message, state, error)")
	cmd.Flags().StringVar(&opts.MessageType, "type", "", "Filter by message type name or number")
	cmd.Flags().StringVar(&opts.TimeStart, "time-start", "", "Only events at or after this RFC 3339 time")
	cmd.Flags().StringVar(&opts.TimeEnd, "time-end", "", "Only events before this RFC 3339 time")
}

func logViewCmd() *cobra.Command {
	var opts commands.FilterOptions

	cmd := &cobra.Command{
		Use:   "view <file.wtlog>",
		Short: "View a capture in human-readable form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := commands.BuildFilter(opts)
			if err != nil {
				return err
			}
			return commands.RunView(args[0], filter, cmd.OutOrStdout())
		},
	}

	addFilterFlags(cmd, &opts)
	return cmd
}

func logFilterCmd() *cobra.Command {
	var (
		opts   commands.FilterOptions
		output string
	)

	cmd := &cobra.Command{
		Use:   "filter <file.wtlog>",
		Short: "Copy matching events to a new capture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := commands.BuildFilter(opts)
			if err != nil {
				return err
			}
			n, err := commands.RunFilter(args[0], output, filter)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Filtered %d events to %s\n", n, output)
			return nil
		},
	}

	addFilterFlags(cmd, &opts)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output capture file (required)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func logExportCmd() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export <file.wtlog>",
		Short: "Export a capture as JSON lines or CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunExport(args[0], format, output)
		},
	}

	cmd.Flags().StringVar(&format, "format", "jsonl", "Output format (jsonl, csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	return cmd
}

func logStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file.wtlog>",
		Short: "Summarize a capture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunStats(args[0], cmd.OutOrStdout())
		},
	}
}
