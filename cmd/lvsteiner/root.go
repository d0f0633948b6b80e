package main

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvsteiner/internal/config"
	"github.com/katalvlaran/lvsteiner/internal/logging"
)

// Input holds the persistent flags and the resolved configuration.
type Input struct {
	configPath  string
	envFile     string
	verbose     bool
	logFormat   string
	sharedQueue bool
	verify      bool
	noSolution  string
	memoryLimit uint64
	output      string

	cfg config.Config
}

func newRootCommand(ctx context.Context, version string) *cobra.Command {
	input := &Input{}
	rootCmd := &cobra.Command{
		Use:               "lvsteiner",
		Short:             "Solve minimum Steiner tree and balanced Steiner forest instances.",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: input.resolve,
	}
	addPersistentFlags(rootCmd.PersistentFlags(), input)

	rootCmd.AddCommand(
		newSolveCommand(ctx, input, "tree"),
		newSolveCommand(ctx, input, "forest"),
		newGenCommand(input),
	)

	return rootCmd
}

func addPersistentFlags(fs *pflag.FlagSet, input *Input) {
	fs.StringVarP(&input.configPath, "config", "c", "", "config file (.yaml, .yml or .toml); default: searched under XDG config dirs")
	fs.StringVar(&input.envFile, "env-file", "", "dotenv file with LVSTEINER_* overrides")
	fs.BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	fs.StringVar(&input.logFormat, "log-format", "", "log format: text or json")
	fs.BoolVar(&input.sharedQueue, "shared-queue", false, "reuse one relaxation queue across masks")
	fs.BoolVar(&input.verify, "verify", false, "cross-check small cases with exhaustive search")
	fs.StringVar(&input.noSolution, "no-solution", "", "line written for infeasible cases")
	fs.Uint64Var(&input.memoryLimit, "memory-limit", 0, "reject cases whose DP tables need more bytes than this (0: available memory when memory_guard is on)")
	fs.StringVarP(&input.output, "output", "o", "", "write answers to this file instead of stdout")
}

// resolve layers defaults, config file, environment and flags, then sets up
// the standard logger.
func (i *Input) resolve(cmd *cobra.Command, _ []string) error {
	path := i.configPath
	if path == "" {
		path = config.Discover()
	}
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return err
		}
	}
	if err := cfg.ApplyEnv(i.envFile); err != nil {
		return err
	}

	flags := cmd.Flags()
	if i.verbose {
		cfg.Log.Level = log.DebugLevel.String()
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = i.logFormat
	}
	if flags.Changed("shared-queue") {
		cfg.Solver.SharedQueue = i.sharedQueue
	}
	if flags.Changed("verify") {
		cfg.Solver.Verify = i.verify
	}
	if flags.Changed("no-solution") {
		cfg.Solver.NoSolution = i.noSolution
	}
	if flags.Changed("memory-limit") {
		cfg.Solver.MemoryLimit = i.memoryLimit
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logging.Configure(log.StandardLogger(), cfg.Log, cmd.ErrOrStderr()); err != nil {
		return err
	}
	if path != "" {
		log.Debugf("Using config %s", path)
	}
	i.cfg = cfg

	return nil
}
