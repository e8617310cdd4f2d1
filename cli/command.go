package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const longHelp = `Rotate a sequence of int32 values to the left.

  rotate                   demo: [1,2,3,4,5,6,7] rotated by 2 and 8
  rotate AMOUNT            rotate the demo sequence by AMOUNT
  rotate E1 E2 ... AMOUNT  rotate E1..En by AMOUNT

AMOUNT must be a non-negative integer; elements may be negative.
Both the copying rotator and the in-place rotator (offset 2) are run.

Environment:
  ROTATE_STRATEGY   in-place algorithm: shift (default), reverse, juggle
  ROTATE_LOG_LEVEL  debug, info, warn (default), error`

// NewCommand builds the root command. Flag parsing is disabled so that
// negative element tokens such as -3 reach the argument parser; a lone
// -h or --help prints help. The exit status is stored in *status.
func NewCommand(stdout, stderr io.Writer, v *viper.Viper, status *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "rotate [elements...] [amount]",
		Short:              "rotate - left-rotate a sequence of integers",
		Long:               longHelp,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
				*status = ExitOK
				return cmd.Help()
			}

			cfg, err := LoadConfig(v)
			if err != nil {
				fmt.Fprintln(stderr, "error:", err)
				*status = ExitUsage
				return nil
			}

			logger := NewLogger(cfg.LogLevel, stderr)
			defer func() { _ = logger.Sync() }()

			*status = Run(args, stdout, stderr, cfg, logger)
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd
}

// Execute runs the command over args and returns the process exit status.
func Execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	status := ExitOK
	cmd := NewCommand(stdout, stderr, viper.New(), &status)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitFailure
	}

	return status
}
