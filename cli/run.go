package cli

import (
	"fmt"
	"io"

	"github.com/katalvlaran/rotate/format"
	"github.com/katalvlaran/rotate/rotation"
	"go.uber.org/zap"
)

// inPlaceBanner separates the copying results from the in-place run.
const inPlaceBanner = "==Calling more memory efficient function, the original array is overridden when done."

// Run parses args, rotates, and prints to stdout. Problems go to stderr.
// It returns an exit status and never terminates the process.
func Run(args []string, stdout, stderr io.Writer, cfg Config, logger *zap.Logger) int {
	if logger == nil {
		logger = zap.NewNop()
	}

	inv, err := ParseArgs(args)
	if err != nil {
		logger.Warn("rejected arguments", zap.Strings("args", args), zap.Error(err))
		fmt.Fprintln(stderr, err)

		return ExitUsage
	}
	logger.Debug("parsed invocation",
		zap.Int32s("sequence", inv.Sequence),
		zap.Ints("amounts", inv.Amounts),
		zap.Bool("demo", inv.Demo),
		zap.Stringer("strategy", cfg.Strategy),
	)

	if err := drive(stdout, inv, cfg, logger); err != nil {
		logger.Error("rotation failed", zap.Error(err))
		fmt.Fprintln(stderr, "error:", err)

		return ExitFailure
	}

	return ExitOK
}

// drive prints the original, each copying rotation, then the in-place run.
// inv.Sequence is overwritten by the in-place rotation.
func drive(w io.Writer, inv Invocation, cfg Config, logger *zap.Logger) error {
	if err := format.Fprint(w, format.OriginalLabel, inv.Sequence); err != nil {
		return err
	}
	for _, amount := range inv.Amounts {
		rotated, err := rotation.RotateLeft(inv.Sequence, amount)
		if err != nil {
			return fmt.Errorf("rotate left by %d: %w", amount, err)
		}
		logger.Debug("rotated copy", zap.Int("amount", amount), zap.Int32s("result", rotated))
		if err := format.Fprint(w, format.RotatedLabel(amount), rotated); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, inPlaceBanner+"\n"); err != nil {
		return err
	}
	if err := format.Fprint(w, format.OriginalLabel, inv.Sequence); err != nil {
		return err
	}
	if err := rotation.RotateInPlace(inv.Sequence, inv.InPlaceAmount, rotation.WithStrategy(cfg.Strategy)); err != nil {
		return fmt.Errorf("rotate in place by %d: %w", inv.InPlaceAmount, err)
	}
	logger.Debug("rotated in place",
		zap.Int("amount", inv.InPlaceAmount),
		zap.Stringer("strategy", cfg.Strategy),
		zap.Int32s("result", inv.Sequence),
	)

	return format.Fprint(w, format.RotatedLabel(inv.InPlaceAmount), inv.Sequence)
}
