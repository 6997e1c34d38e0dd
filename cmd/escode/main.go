package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/escode"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	config   string
	wrap     string
	logFile  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:           "escode [file]",
		Short:         "A small terminal text editor with a line-number gutter",
		Long:          `escode edits one plain UTF-8 text file at a time. It shows line numbers, the caret position and the current file, and pairs brackets and quotes as you type.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       escode.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd, f, path)
		},
	}

	cmd.PersistentFlags().StringVar(&f.config, "config", "", "settings file (default is the user config dir)")
	cmd.Flags().StringVar(&f.wrap, "wrap", "", "wrap mode: none, word or grapheme")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "write logs to this file")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(newConfigCmd(&f))
	return cmd
}
