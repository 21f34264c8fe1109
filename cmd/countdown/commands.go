package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/usecase"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		target      int
		kind        string
		depth       int
		siblingScan bool
	)
	cmd := &cobra.Command{
		Use:   "solve --target N n1 n2 ...",
		Short: "Search for an expression reaching the target",
		Example: "  countdown solve --target 327 6 7 7 1 5 8\n" +
			"  countdown solve --target 113 --solver heuristic --depth 8 50 25 3 1 10 7",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseNumbers(args)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("solver") {
				a.cfg.Solver.Kind = kind
				if kind != "both" {
					k, err := domain.ParseSolverKind(kind)
					if err != nil {
						return err
					}
					a.cfg.Solver.Kind = k.String()
				}
			}
			if flags.Changed("sibling-scan") {
				a.cfg.Solver.SiblingScan = siblingScan
			}
			if flags.Changed("depth") {
				a.cfg.Solver.Depth = depth
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			a.svc.Solvers = a.solvers(a.cfg.Solver.Depth)

			kinds, err := solverKinds(a.cfg.Solver.Kind)
			if err != nil {
				return err
			}
			ctx, cancel := a.context(cmd.Context())
			defer cancel()

			results := make([]domain.Result, 0, len(kinds))
			for _, k := range kinds {
				res, err := a.svc.Solve(ctx, k, target, numbers)
				if err != nil {
					return err
				}
				results = append(results, res)
			}
			return a.printer.Results(domain.NewPuzzle(numbers, target), results)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&target, "target", "t", 0, "target value")
	f.StringVarP(&kind, "solver", "s", "both", "exhaustive|heuristic|both")
	f.IntVarP(&depth, "depth", "d", 8, "heuristic depth budget")
	f.BoolVar(&siblingScan, "sibling-scan", false, "heuristic keeps expanding siblings after an exact match")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func solverKinds(s string) ([]domain.SolverKind, error) {
	if s == "both" {
		return []domain.SolverKind{domain.Exhaustive, domain.Heuristic}, nil
	}
	k, err := domain.ParseSolverKind(s)
	if err != nil {
		return nil, err
	}
	return []domain.SolverKind{k}, nil
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		large, count, target int
		seed                 int64
		classic              bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Draw a random puzzle from the large and small pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := a.cfg.Generator
			if cmd.Flags().Changed("large") {
				g.Large = large
			}
			if cmd.Flags().Changed("count") {
				g.Count = count
			}
			if cmd.Flags().Changed("seed") {
				g.Seed = seed
			}
			if classic {
				g.Large = -1
			}
			p, st, err := a.svc.Generate(cmd.Context(), seedOrNow(g.Seed), target, g.Large, g.Count)
			if err != nil {
				return err
			}
			return a.printer.Puzzle(p, st)
		},
	}
	f := cmd.Flags()
	f.IntVar(&large, "large", 2, "how many large numbers (0-4)")
	f.IntVar(&count, "count", 6, "how many numbers in total")
	f.IntVar(&target, "target", 0, "fixed target in [101, 999]; 0 draws one")
	f.Int64Var(&seed, "seed", 0, "random seed; 0 uses the clock")
	f.BoolVar(&classic, "classic", false, "six numbers with 1-4 large, ignoring --large and --count")
	return cmd
}

func newCompareCmd(a *app) *cobra.Command {
	var (
		seed   int64
		target int
	)
	cmd := &cobra.Command{
		Use:   "compare [n1 n2 ...]",
		Short: "Run both solvers on one puzzle and compare them",
		Long: `compare runs the exhaustive search and the heuristic on the same puzzle.
Without numbers a classic puzzle is generated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd.Context())
			defer cancel()

			var p *domain.Puzzle
			if len(args) > 0 {
				numbers, err := parseNumbers(args)
				if err != nil {
					return err
				}
				if target == 0 {
					return fmt.Errorf("--target is required with explicit numbers")
				}
				p = domain.NewPuzzle(numbers, target)
			} else {
				s := seed
				if s == 0 {
					s = a.cfg.Generator.Seed
				}
				var err error
				p, _, err = a.svc.Generate(ctx, seedOrNow(s), 0, -1, 0)
				if err != nil {
					return err
				}
			}
			c, err := a.svc.Compare(ctx, p)
			if err != nil {
				return err
			}
			return a.printer.Comparison(c)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for the generated puzzle; 0 uses the clock")
	cmd.Flags().IntVarP(&target, "target", "t", 0, "target value when numbers are given")
	return cmd
}

func newHintCmd(a *app) *cobra.Command {
	var (
		target int
		kind   string
	)
	cmd := &cobra.Command{
		Use:   "hint --target N n1 n2 ...",
		Short: "Suggest a first step towards the target",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseNumbers(args)
			if err != nil {
				return err
			}
			k, err := domain.ParseSolverKind(kind)
			if err != nil {
				return err
			}
			ctx, cancel := a.context(cmd.Context())
			defer cancel()
			h, ok, err := a.svc.Hint(ctx, k, target, numbers)
			if err != nil {
				return err
			}
			return a.printer.Hint(h, ok)
		},
	}
	cmd.Flags().IntVarP(&target, "target", "t", 0, "target value")
	cmd.Flags().StringVarP(&kind, "solver", "s", "exhaustive", "exhaustive|heuristic")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func newBenchCmd(a *app) *cobra.Command {
	var (
		puzzles, workers, depth int
		seed                    int64
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare both solvers over many generated puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b := a.cfg.Bench
			if cmd.Flags().Changed("puzzles") {
				b.Puzzles = puzzles
			}
			if cmd.Flags().Changed("workers") {
				b.Workers = workers
			}
			if cmd.Flags().Changed("depth") {
				b.Depth = depth
			}
			a.cfg.Bench = b
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			a.svc.Solvers = a.solvers(b.Depth)

			s := seed
			if s == 0 {
				s = a.cfg.Generator.Seed
			}
			sum, err := a.svc.Bench(cmd.Context(), usecase.BenchOptions{
				Seed:    seedOrNow(s),
				Puzzles: b.Puzzles,
				Workers: b.Workers,
			})
			if err != nil {
				return err
			}
			return a.printer.Bench(sum)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&puzzles, "puzzles", "n", 20, "number of classic puzzles")
	f.IntVarP(&workers, "workers", "w", 4, "comparisons run in parallel")
	f.IntVar(&depth, "depth", 8, "heuristic depth budget")
	f.Int64Var(&seed, "seed", 0, "seed of the first puzzle; 0 uses the clock")
	return cmd
}
