// vtreplay feeds a captured terminal session through the console
// emulator and shows the result: the final screen, an animation of
// it on the current terminal, or a live tcell display.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/bdwalton/vtcons/logging"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var fv flagValues

	cmd := &cobra.Command{
		Use:   "vtreplay [flags] recording",
		Short: "Replay captured terminal output through the console emulator",
		Long: `vtreplay interprets a recording of terminal output, such as a
script(1) typescript, exactly as the system console would.

In dump mode the final screen is printed. In play mode the screen is
redrawn on the current terminal as the recording progresses, and live
mode draws into a full screen display until a key is pressed.`,
		Example: `  # Print the final screen of a typescript
  vtreplay typescript

  # Replay with its timing, twice as fast
  vtreplay -m play -t timing --speed 2 typescript

  # Replay an old 8-bit cons25 capture in a full screen display
  vtreplay -m live --eight_bit --cons25 capture.gz`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(fv.config)
			if err != nil {
				return err
			}
			fv.apply(cmd, &cfg)
			if err := cfg.validate(); err != nil {
				return err
			}

			level, _ := logging.ParseLevel(cfg.LogLevel)
			if err := logging.Setup(cfg.LogFile, level); err != nil {
				return fmt.Errorf("couldn't setup logging: %w", err)
			}

			chunks, err := loadChunks(args[0], fv.timing, cfg)
			if err != nil {
				return err
			}
			slog.Debug("loaded recording", "file", args[0], "chunks", len(chunks), "mode", cfg.Mode)

			return run(cmd.Context(), cmd.OutOrStdout(), cfg, chunks)
		},
	}
	fv.register(cmd)

	return cmd
}
