package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msto63/roboarena/internal/repl"
	"github.com/msto63/roboarena/pkg/core/version"
)

var replFlags matchFlags

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run statements interactively against a sandbox robot",
	Long: `Starts an interactive prompt. Every complete input is parsed and
executed once by the first robot of a sandbox arena; one action
advances the arena by one tick. Endless programs are halted after
a fixed number of actions.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

var replMaxActions int

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().StringVar(&replFlags.scenario, "scenario", "", "scenario file (default: config or built-in arena)")
	replCmd.Flags().Int64Var(&replFlags.seed, "seed", 0, "override the scenario seed")
	replCmd.Flags().IntVar(&replMaxActions, "max-actions", 1000, "actions per input before the program is halted")
}

func runRepl(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	sc, err := replFlags.loadScenario()
	if err != nil {
		return err
	}
	s, err := repl.NewSession(repl.Options{
		Scenario:   sc,
		Engine:     engine,
		Logger:     logger,
		MaxActions: replMaxActions,
	})
	if err != nil {
		return err
	}
	return repl.Start(ctx, s, cmd.OutOrStdout(), version.Platform)
}
