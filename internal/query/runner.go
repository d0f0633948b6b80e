// Package query answers a stream of Steiner cases with one reusable solver,
// writing one line per case.
package query

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsteiner/internal/ingest"
	"github.com/katalvlaran/lvsteiner/steiner"
)

// DefaultNoSolution is written for infeasible cases unless overridden.
const DefaultNoSolution = "No solution"

// ErrVerifyMismatch means the DP and the exhaustive oracle disagreed.
var ErrVerifyMismatch = errors.New("query: solver and exhaustive search disagree")

// Result describes one answered case.
type Result struct {
	Index    int
	Weight   int64
	Feasible bool
	Verified bool
	Elapsed  time.Duration
}

// Summary aggregates a Run.
type Summary struct {
	Cases      int
	Infeasible int
	Verified   int
	Elapsed    time.Duration
}

// Runner owns the solver and the output stream.
type Runner struct {
	out        io.Writer
	logger     log.FieldLogger
	solver     *steiner.Solver
	noSolution string
	verify     bool

	memLimit  uint64
	memGuard  bool
	probed    bool
	available uint64
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger replaces the standard logrus logger.
func WithLogger(l log.FieldLogger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithNoSolution sets the token written for infeasible cases.
func WithNoSolution(token string) Option {
	return func(r *Runner) { r.noSolution = token }
}

// WithVerify cross-checks every small enough case against steiner.Exhaustive.
func WithVerify(on bool) Option {
	return func(r *Runner) { r.verify = on }
}

// WithSolver replaces the default solver, e.g. one built with
// steiner.WithSharedQueue().
func WithSolver(s *steiner.Solver) Option {
	return func(r *Runner) { r.solver = s }
}

// NewRunner returns a Runner writing answers to out.
func NewRunner(out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		out:        out,
		logger:     log.StandardLogger(),
		solver:     steiner.NewSolver(),
		noSolution: DefaultNoSolution,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run answers every case from rd until EOF, the first error, or ctx ends.
func (r *Runner) Run(ctx context.Context, rd *ingest.Reader) (Summary, error) {
	var sum Summary
	start := time.Now()
	for {
		if err := ctx.Err(); err != nil {
			return sum, errors.Wrap(err, "query: interrupted")
		}
		c, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return sum, errors.WithMessagef(err, "case %d", sum.Cases+1)
		}

		res, err := r.Solve(c)
		if err != nil {
			return sum, err
		}
		sum.Cases++
		if !res.Feasible {
			sum.Infeasible++
		}
		if res.Verified {
			sum.Verified++
		}
	}
	sum.Elapsed = time.Since(start)
	r.logger.WithFields(log.Fields{
		"cases":      sum.Cases,
		"infeasible": sum.Infeasible,
		"verified":   sum.Verified,
		"elapsed":    sum.Elapsed,
	}).Info("Finished")

	return sum, nil
}

// Solve answers a single case and writes its line.
func (r *Runner) Solve(c *ingest.Case) (Result, error) {
	res := Result{Index: c.Index}
	if err := r.admit(c); err != nil {
		return res, err
	}
	start := time.Now()

	weight, err := r.minCost(c)
	res.Elapsed = time.Since(start)
	switch {
	case errors.Is(err, steiner.ErrNoSolution):
		res.Weight = steiner.Inf
	case err != nil:
		return res, errors.Wrapf(err, "query: case %d", c.Index)
	default:
		res.Weight, res.Feasible = weight, true
	}

	entry := r.logger.WithFields(log.Fields{
		"case":      c.Index,
		"nodes":     c.Graph.Order(),
		"edges":     c.Graph.Size(),
		"terminals": len(c.Terminals),
		"elapsed":   res.Elapsed,
	})
	if !res.Feasible {
		entry = entry.WithField("components", r.terminalComponents(c))
	}
	entry.Debug("Solved case")

	if r.verify {
		ok, err := r.check(c, res)
		if err != nil {
			return res, err
		}
		res.Verified = ok
	}

	line := r.noSolution
	if res.Feasible {
		line = strconv.FormatInt(res.Weight, 10)
	}
	if _, err = fmt.Fprintln(r.out, line); err != nil {
		return res, errors.Wrap(err, "query: write answer")
	}

	return res, nil
}

func (r *Runner) minCost(c *ingest.Case) (int64, error) {
	if c.IsForest() {
		f, err := r.solver.Forest(c.Graph, c.GroupA, c.GroupB)
		if err != nil {
			return steiner.Inf, err
		}
		return f.MinCost()
	}
	t, err := r.solver.Tree(c.Graph, c.Terminals)
	if err != nil {
		return steiner.Inf, err
	}

	return t.MinCost()
}

// check compares res with the exhaustive oracle. It reports false without
// error when the case is too large to enumerate.
func (r *Runner) check(c *ingest.Case, res Result) (bool, error) {
	var (
		want int64
		err  error
	)
	if c.IsForest() {
		want, err = steiner.ExhaustiveForest(c.Graph, c.GroupA, c.GroupB)
	} else {
		want, err = steiner.Exhaustive(c.Graph, c.Terminals)
	}
	switch {
	case errors.Is(err, steiner.ErrTooLarge):
		r.logger.WithField("case", c.Index).Debug("Skipped verification")
		return false, nil
	case errors.Is(err, steiner.ErrNoSolution):
		if res.Feasible {
			return false, errors.Wrapf(ErrVerifyMismatch, "case %d: solver %d, exhaustive none", c.Index, res.Weight)
		}
		return true, nil
	case err != nil:
		return false, errors.Wrapf(err, "query: verify case %d", c.Index)
	}
	if !res.Feasible || want != res.Weight {
		got := "none"
		if res.Feasible {
			got = strconv.FormatInt(res.Weight, 10)
		}
		return false, errors.Wrapf(ErrVerifyMismatch, "case %d: solver %s, exhaustive %d", c.Index, got, want)
	}

	return true, nil
}

// terminalComponents maps each terminal to its connected component, which
// explains an infeasible answer in the debug log.
func (r *Runner) terminalComponents(c *ingest.Case) []int {
	label := c.Graph.Components()
	out := make([]int, len(c.Terminals))
	for i, v := range c.Terminals {
		out[i] = label[v]
	}

	return out
}
