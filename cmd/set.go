package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/FyshOS/vidmode/internal/logger"
)

var (
	setRate int
	setFor  time.Duration
)

var setCmd = &cobra.Command{
	Use:   "set WIDTHxHEIGHT",
	Short: "Switch to the mode closest to a size until interrupted",
	Long: `Switch the screen to the mode closest to WIDTHxHEIGHT, wait for Ctrl-C (or
the --for duration) and switch back to the desktop mode.

  vidmode set 1024x768              # until Ctrl-C
  vidmode set 800x600 -r 75 --for 10s`,
	Args: cobra.ExactArgs(1),
	RunE: runSet,
}

func init() {
	setCmd.Flags().IntVarP(&setRate, "rate", "r", 0, "Desired refresh rate in Hz (default: server default)")
	setCmd.Flags().DurationVar(&setFor, "for", 0, "Restore after this long instead of waiting for a signal")
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	width, height, err := parseSize(args[0])
	if err != nil {
		return err
	}

	conn, session, screen, err := openSession()
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if setFor > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, setFor)
		defer cancel()
	}

	m, err := session.SetMode(screen, width, height, setRate)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.RestoreMode(screen); err != nil {
			logger.Error("Failed to restore desktop mode", "screen", screen, "err", err)
			return
		}
		logger.Info("Restored desktop mode", "screen", screen)
	}()

	if err := printMatch(cmd.OutOrStdout(), m, session.Provider().Name(), false); err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}
