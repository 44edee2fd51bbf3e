package cmd

import (
	"time"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/roboarena/foundation/core/log"

	"github.com/msto63/roboarena/internal/arena"
	"github.com/msto63/roboarena/internal/tui/arenaview"
)

const defaultWatchDelay = 150 * time.Millisecond

var watchFlags matchFlags

var watchCmd = &cobra.Command{
	Use:   "watch A.rcl [B.rcl]",
	Short: "Play a match in the terminal viewer",
	Long: `Plays program A against program B and renders every tick.

Keys:
  a           toggle auto-scroll of the event log
  g / G       jump to top / bottom
  PgUp/PgDn   scroll
  q / Ctrl+C  quit (stops a running match)`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchFlags.register(watchCmd, -1)
}

func runWatch(cmd *cobra.Command, args []string) error {
	programs, err := loadPrograms(args)
	if err != nil {
		return err
	}
	sc, err := watchFlags.loadScenario()
	if err != nil {
		return err
	}

	// the viewer owns the terminal
	quiet := logger.WithLevel(mdwlog.LevelError)
	a, err := arena.New(sc, quiet)
	if err != nil {
		return err
	}

	opts := watchFlags.options()
	opts.Logger = quiet
	if opts.TickDelay == 0 {
		opts.TickDelay = defaultWatchDelay
	}

	res, err := arenaview.Run(cmd.Context(), a, programs, opts, arenaview.DefaultConfig())
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), res)
	saveResult(cmd.Context(), res, watchFlags.noStore)
	return nil
}
