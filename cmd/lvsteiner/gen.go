package main

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvsteiner/builder"
	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/internal/ingest"
)

type genInput struct {
	nodes     int
	rows      int
	cols      int
	extra     int
	terminals int
	cases     int
	seed      int64
}

// topology turns the gen flags into a node count, a constructor and whether
// terminals should be drawn at random.
type topology func(g *genInput) (int, builder.Constructor, bool)

var topologies = map[string]topology{
	"path": func(g *genInput) (int, builder.Constructor, bool) {
		return g.nodes, builder.Path(g.nodes), false
	},
	"cycle": func(g *genInput) (int, builder.Constructor, bool) {
		return g.nodes, builder.Cycle(g.nodes), false
	},
	"star": func(g *genInput) (int, builder.Constructor, bool) {
		return g.nodes, builder.Star(g.nodes), true
	},
	"grid": func(g *genInput) (int, builder.Constructor, bool) {
		return g.rows * g.cols, builder.Grid(g.rows, g.cols), false
	},
	"random": func(g *genInput) (int, builder.Constructor, bool) {
		return g.nodes, builder.RandomSparse(g.nodes, g.extra), true
	},
}

func newGenCommand(input *Input) *cobra.Command {
	gen := &genInput{}
	cmd := &cobra.Command{
		Use:       "gen path|cycle|star|grid|random",
		Short:     "Emit tree-format instances from a generated topology.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"path", "cycle", "star", "grid", "random"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				gen.seed = input.cfg.Gen.Seed
			}
			out, closeOut, err := openOutput(cmd, input.output)
			if err != nil {
				return err
			}
			defer closeOut()

			cases, err := generate(gen, args[0], input.cfg.Gen.MinWeight, input.cfg.Gen.MaxWeight)
			if err != nil {
				return err
			}
			return ingest.WriteTree(out, cases...)
		},
	}
	addGenFlags(cmd.Flags(), gen)

	return cmd
}

func addGenFlags(fs *pflag.FlagSet, gen *genInput) {
	fs.IntVarP(&gen.nodes, "nodes", "n", 10, "node count (path, cycle, star, random)")
	fs.IntVar(&gen.rows, "rows", 3, "grid rows")
	fs.IntVar(&gen.cols, "cols", 3, "grid columns")
	fs.IntVar(&gen.extra, "extra", 10, "extra random edges on top of the spanning path (random)")
	fs.IntVarP(&gen.terminals, "terminals", "k", 3, "terminal count")
	fs.IntVar(&gen.cases, "cases", 1, "number of instances")
	fs.Int64Var(&gen.seed, "seed", 1, "RNG seed; case i uses seed+i")
}

// generate builds gen.cases instances of the named topology.
func generate(gen *genInput, name string, minW, maxW int64) ([]*ingest.Case, error) {
	topo, ok := topologies[name]
	if !ok {
		return nil, errors.Errorf("unknown topology %q", name)
	}
	if gen.cases < 1 {
		return nil, errors.Errorf("--cases must be ≥ 1, got %d", gen.cases)
	}

	out := make([]*ingest.Case, 0, gen.cases)
	for i := 0; i < gen.cases; i++ {
		seed := gen.seed + int64(i)
		n, ctor, randomTerms := topo(gen)
		g, err := builder.BuildGraph(n, []builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithUniformWeight(minW, maxW),
		}, ctor)
		if err != nil {
			return nil, err
		}

		terms, err := pickTerminals(name, n, gen.terminals, seed, randomTerms)
		if err != nil {
			return nil, err
		}
		log.WithFields(log.Fields{"case": i + 1, "nodes": n, "edges": g.Size(), "terminals": terms}).Debug("Generated")
		out = append(out, &ingest.Case{Index: i + 1, Graph: g, Terminals: terms})
	}

	return out, nil
}

func pickTerminals(name string, n, k int, seed int64, random bool) ([]int, error) {
	if name == "star" {
		// Leaves are nodes 2..n.
		if n < 2 {
			return nil, errors.Wrapf(core.ErrBadOrder, "star needs at least 2 nodes")
		}
		return builder.Terminals(n-1, k, builder.WithSeed(seed), builder.WithIDScheme(func(i int) int { return i + 2 }))
	}
	if random {
		return builder.Terminals(n, k, builder.WithSeed(seed))
	}

	return builder.Terminals(n, k)
}
