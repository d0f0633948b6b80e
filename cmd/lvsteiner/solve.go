package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsteiner/internal/ingest"
	"github.com/katalvlaran/lvsteiner/internal/query"
	"github.com/katalvlaran/lvsteiner/steiner"
)

var solveHelp = map[ingest.Format]string{
	ingest.FormatTree:   "Minimum Steiner tree per case. Input: cases until EOF, each `n m k`, m edges `u v w`, k terminals.",
	ingest.FormatForest: "Minimum balanced Steiner forest per case. Input: `T`, then T cases `n m h` and m edges; terminals are 1..h and n-h+1..n.",
}

func newSolveCommand(ctx context.Context, input *Input, name string) *cobra.Command {
	format := ingest.Format(name)
	return &cobra.Command{
		Use:   fmt.Sprintf("%s [file]", name),
		Short: solveHelp[format],
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(ctx, cmd, input, format, args)
		},
	}
}

func runSolve(ctx context.Context, cmd *cobra.Command, input *Input, format ingest.Format, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer f.Close()
		in = f
		log.Debugf("Reading %s cases from %s", format, args[0])
	}

	out, closeOut, err := openOutput(cmd, input.output)
	if err != nil {
		return err
	}
	defer closeOut()

	var solverOpts []steiner.Option
	if input.cfg.Solver.SharedQueue {
		solverOpts = append(solverOpts, steiner.WithSharedQueue())
	}
	runner := query.NewRunner(out,
		query.WithNoSolution(input.cfg.Solver.NoSolution),
		query.WithVerify(input.cfg.Solver.Verify),
		query.WithSolver(steiner.NewSolver(solverOpts...)),
		query.WithMemoryLimit(input.cfg.Solver.MemoryLimit),
		query.WithMemoryGuard(input.cfg.Solver.MemoryGuard),
	)
	_, err = runner.Run(ctx, ingest.NewReader(in, format))

	return err
}

// openOutput returns the command's stdout, or a created file when path is set.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "create output")
	}

	return f, func() {
		if err := f.Close(); err != nil {
			log.Warnf("closing %s: %v", path, err)
		}
	}, nil
}
