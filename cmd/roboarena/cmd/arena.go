package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/roboarena/foundation/core/log"
	"github.com/msto63/roboarena/foundation/rcl/ast"
	"github.com/msto63/roboarena/internal/arena"
	"github.com/msto63/roboarena/internal/match"
	"github.com/msto63/roboarena/internal/store"
)

// idleProgram plays the second robot when only one file is given
const idleProgram = "loop{wait;}"

// matchFlags are shared by run and watch
type matchFlags struct {
	scenario  string
	maxTicks  int
	tickDelay time.Duration
	seed      int64
	noStore   bool
}

// register adds the flags to cmd. A negative delay means the configured
// tick delay is used.
func (f *matchFlags) register(cmd *cobra.Command, delay time.Duration) {
	cmd.Flags().StringVar(&f.scenario, "scenario", "", "scenario file (default: config or built-in arena)")
	cmd.Flags().IntVar(&f.maxTicks, "max-ticks", 0, "tick limit (default: config)")
	cmd.Flags().DurationVar(&f.tickDelay, "tick-delay", delay, "pause between ticks, negative uses the config")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "override the scenario seed")
	cmd.Flags().BoolVar(&f.noStore, "no-store", false, "do not save the result to the history")
}

// loadScenario picks the scenario from the flag, the config or the default
func (f *matchFlags) loadScenario() (*arena.Scenario, error) {
	path := f.scenario
	if path == "" {
		path = cfg.Match.Scenario
	}

	sc := arena.DefaultScenario()
	if path != "" {
		var err error
		if sc, err = arena.LoadScenario(path); err != nil {
			return nil, err
		}
	}

	switch {
	case f.seed != 0:
		sc.Seed = f.seed
	case cfg.Match.Seed != 0:
		sc.Seed = cfg.Match.Seed
	}
	return sc, nil
}

func (f *matchFlags) options() match.Options {
	opts := match.Options{
		MaxTicks:      cfg.Match.MaxTicks,
		TickDelay:     cfg.Match.TickDelay.Duration,
		ActionTimeout: cfg.Match.ActionTimeout.Duration,
		Logger:        logger,
	}
	if f.maxTicks > 0 {
		opts.MaxTicks = f.maxTicks
	}
	if f.tickDelay >= 0 {
		opts.TickDelay = f.tickDelay
	}
	return opts
}

// loadPrograms parses one or two program files
func loadPrograms(paths []string) ([]*ast.Program, error) {
	programs := make([]*ast.Program, 0, 2)
	for _, p := range paths {
		prog, err := engine.ParseFile(p)
		if err != nil {
			return nil, err
		}
		programs = append(programs, prog)
	}
	if len(programs) == 1 {
		idle, err := engine.Parse(idleProgram)
		if err != nil {
			return nil, err
		}
		programs = append(programs, idle)
	}
	return programs, nil
}

// saveResult stores a finished match unless the store is disabled
func saveResult(ctx context.Context, res *match.Result, disabled bool) {
	if disabled || !cfg.Store.Enabled {
		return
	}
	s, err := store.Open(store.Config{Path: cfg.StorePath()})
	if err != nil {
		logger.WarnWithErr("Could not open match history", err)
		return
	}
	defer s.Close()

	if err := s.Save(ctx, store.FromResult(res)); err != nil {
		logger.WarnWithErr("Could not save match", err, mdwlog.Fields{"match": res.ID})
	}
}

func printResult(out io.Writer, res *match.Result) {
	fmt.Fprintf(out, "match %s on %s\n", res.ID, res.Scenario)
	for _, r := range res.Robots {
		fmt.Fprintf(out, "  %-6s fuel %-4d pos %d,%d  barrels %d  rams %d  actions %d\n",
			r.Name, r.Fuel, r.Pos.X, r.Pos.Y, r.Collected, r.Rams, r.Actions)
	}
	if res.Err != nil {
		failColor.Fprint(out, "error ")
		fmt.Fprintln(out, res.Err)
	}
	if res.Draw() {
		fmt.Fprintf(out, "draw after %d tick(s) (%s)\n", res.Ticks, res.Reason)
		return
	}
	okColor.Fprint(out, res.Winner)
	fmt.Fprintf(out, " wins after %d tick(s) (%s)\n", res.Ticks, res.Reason)
}
