package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/roboarena/foundation/core/log"
	"github.com/msto63/roboarena/foundation/rcl"
	"github.com/msto63/roboarena/pkg/core/config"
	"github.com/msto63/roboarena/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *mdwlog.Logger
	engine *rcl.Engine
)

var rootCmd = &cobra.Command{
	Use:   "roboarena",
	Short: "roboarena - Robot Control Language arena",
	Long: `roboarena parses, checks and runs programs written in the robot
control language (RCL) and plays them against each other in a
simulated arena.

Commands:
  parse    - print the canonical form of a program
  check    - report syntax errors and program statistics
  fmt      - pretty print programs
  run      - play a match headless and store the result
  watch    - play a match in the terminal viewer
  history  - list stored matches
  repl     - run statements interactively against a sandbox robot`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $ROBOARENA_CONFIG or ./roboarena.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads configuration and builds the shared logger and engine
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		printError("failed to load config", err)
		return err
	}

	lc := logging.FromConfig(cfg)
	if verbose {
		lc.Level = "debug"
	}
	logger = logging.NewLogger(lc)
	mdwlog.SetDefault(logger)

	engine, err = rcl.NewEngine(rcl.Options{
		Logger:         logger,
		MaxSourceBytes: cfg.Parser.MaxSourceBytes,
		CacheSize:      cfg.Parser.CacheSize,
	})
	if err != nil {
		printError("failed to create engine", err)
		return err
	}
	return nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
