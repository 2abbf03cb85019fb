package main

import (
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bidipath/bench"
	"github.com/katalvlaran/bidipath/builder"
	"github.com/katalvlaran/bidipath/core"
	"github.com/katalvlaran/bidipath/dijkstra"
	"github.com/katalvlaran/bidipath/graphviz"
)

// randomFlags are the generator flags shared by path and generate.
type randomFlags struct {
	nodes        int
	edgesPerNode int
	maxWeight    int
	seed         int64
}

func (f *randomFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.nodes, "nodes", 1000, "Number of nodes")
	cmd.Flags().IntVar(&f.edgesPerNode, "edges-per-node", 10, "Random edges drawn per node")
	cmd.Flags().IntVar(&f.maxWeight, "max-weight", 10, "Maximum integer edge weight")
	cmd.Flags().Int64Var(&f.seed, "seed", 42, "Random seed")
}

func (f *randomFlags) build(log logrus.FieldLogger) (*core.Graph[int], error) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(f.seed)},
		builder.Random(f.nodes, f.edgesPerNode, f.maxWeight),
	)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"nodes": g.NodeCount(),
		"edges": g.EdgeCount(),
		"seed":  f.seed,
	}).Debug("graph generated")

	return g, nil
}

func newPathCmd(a *app) *cobra.Command {
	var (
		gen       randomFlags
		source    int
		target    int
		algorithm string
		earlyExit bool
		dotPath   string
	)

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Find a shortest path on a generated random graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			alg, err := bench.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			g, err := gen.build(a.log)
			if err != nil {
				return err
			}

			var st dijkstra.Stats
			opts := []dijkstra.Option{dijkstra.WithStats(&st), dijkstra.WithLogger(a.log)}
			if earlyExit {
				opts = append(opts, dijkstra.WithEarlyExit())
			}
			d, path, err := alg.Search(cmd.Context(), g, source, target, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if math.IsInf(d, 1) {
				fmt.Fprintf(out, "no path from %d to %d\n", source, target)
			} else {
				fmt.Fprintf(out, "distance: %g\n", d)
				fmt.Fprintf(out, "path: %v\n", path)
			}
			fmt.Fprintf(out, "expanded: %d\n", st.Expanded)

			if dotPath == "" {
				return nil
			}
			dot, err := graphviz.Export(g, path)
			if err != nil {
				return err
			}
			if err := os.WriteFile(dotPath, []byte(dot), 0o644); err != nil {
				return fmt.Errorf("write dot: %w", err)
			}
			a.log.WithField("file", dotPath).Info("dot written")

			return nil
		},
	}

	gen.register(cmd)
	cmd.Flags().IntVar(&source, "source", 0, "Source node")
	cmd.Flags().IntVar(&target, "target", 999, "Target node")
	cmd.Flags().StringVar(&algorithm, "algorithm", string(bench.Bidirectional), "Algorithm: dijkstra|bidirectional|parallel")
	cmd.Flags().BoolVar(&earlyExit, "early-exit", false, "Stop bidirectional search once the best meeting is proven optimal")
	cmd.Flags().StringVar(&dotPath, "dot", "", "Write the graph with the path highlighted as DOT to this file")

	return cmd
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		gen     randomFlags
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random graph and print it as DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := gen.build(a.log)
			if err != nil {
				return err
			}
			dot, err := graphviz.Export(g, nil)
			if err != nil {
				return err
			}
			if outPath == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), dot)
				return err
			}
			if err := os.WriteFile(outPath, []byte(dot), 0o644); err != nil {
				return fmt.Errorf("write dot: %w", err)
			}
			a.log.WithField("file", outPath).Info("dot written")

			return nil
		},
	}

	gen.register(cmd)
	cmd.Flags().StringVar(&outPath, "out", "", "Output file (default: stdout)")

	return cmd
}
