package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DR-BoneZ/lightning-wire-msgs-go/cmd/wtwire/commands"
	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/log"
)

func decodeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "decode [hex]",
		Short: "Decode a hex-encoded message",
		Long: `Decode one message, type tag included, from hex given as arguments
or on standard input. Whitespace and a 0x prefix are ignored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, "")
			if input == "" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				input = string(data)
			}
			data, err := commands.ParseHex(input)
			if err != nil {
				return err
			}
			return commands.RunDecode(data, asJSON, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the description as JSON")
	return cmd
}

func dumpCmd() *cobra.Command {
	var (
		raw       bool
		keepGoing bool
		logPath   string
		direction string
		role      string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Decode a stream of framed messages",
		Long: `Decode every message in a file, or standard input, where each
message is preceded by a 4-byte big-endian length. With --raw the
messages follow each other with no length prefix.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := commands.DumpOptions{Raw: raw, KeepGoing: keepGoing}

			var err error
			if opts.Direction, err = commands.ParseDirectionFlag(direction); err != nil {
				return err
			}
			if opts.Role, err = commands.ParseRoleFlag(role); err != nil {
				return err
			}

			var loggers []log.Logger
			if logPath != "" {
				fl, err := log.NewFileLogger(logPath)
				if err != nil {
					return err
				}
				defer fl.Close()
				loggers = append(loggers, fl)
			}
			if verbose {
				handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
				loggers = append(loggers, log.NewSlogAdapter(slog.New(handler)))
			}
			if len(loggers) > 0 {
				opts.Logger = log.NewMultiLogger(loggers...)
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			n, err := commands.RunDump(in, opts, cmd.OutOrStdout())
			fmt.Fprintf(cmd.ErrOrStderr(), "%d messages\n", n)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Input has no frame prefixes")
	cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "Skip frames that fail to decode")
	cmd.Flags().StringVar(&logPath, "log", "", "Append protocol events to this capture file")
	cmd.Flags().StringVar(&direction, "direction", "in", "Direction recorded in events (in, out)")
	cmd.Flags().StringVar(&role, "role", "client", "Local role recorded in events (client, tower)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log protocol events to standard error")
	return cmd
}
