package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

const defaultWatchInterval = 5 * time.Second

var (
	watchInterval time.Duration
	watchDryRun   bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Send a log file every time it changes",
	Long: `Watches a log file and sends it whenever it is written or recreated.

Sends are throttled to at most one per --interval. Changes that arrive
while waiting are merged into the next send. Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", defaultWatchInterval, "Minimum time between sends")
	watchCmd.Flags().BoolVar(&watchDryRun, "dry-run", false, "Print each message instead of sending it")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := buildOptions{dryRun: watchDryRun, interval: watchInterval}
	return withServices(opts, func(set *serviceSet) error {
		if set.watcher == nil {
			return errNotConfigured
		}

		out := cmd.OutOrStdout()
		cmd.Println(styled(out, mutedStyle, "Watching "+args[0]+" (Ctrl+C to stop)"))

		err := set.watcher.Watch(ctx, args[0], func(status string, err error) {
			if err != nil {
				cmd.PrintErrln(FormatError(cmd.ErrOrStderr(), userError(err)))
				return
			}
			cmd.Println(styled(out, successStyle, status))
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
}

