package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"svw.info/countdown/internal/adapters/terminal"
	"svw.info/countdown/internal/config"
	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/generator"
	"svw.info/countdown/internal/hint"
	"svw.info/countdown/internal/metrics"
	"svw.info/countdown/internal/ports"
	"svw.info/countdown/internal/solver"
	"svw.info/countdown/internal/usecase"
	"svw.info/countdown/internal/validator"
)

// app is the state shared by every subcommand, built in PersistentPreRunE.
type app struct {
	configPath  string
	logLevel    string
	output      string
	metricsFile string

	cfg     config.Config
	reg     *prometheus.Registry
	svc     *usecase.Service
	printer *terminal.Printer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "countdown",
		Short: "Solve and generate Countdown numbers puzzles",
		Long: `countdown searches for arithmetic expressions that combine a set of
numbers with + - * / to reach a target, using either an exhaustive search
or a depth-bounded heuristic.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.flushMetrics()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "countdown.yaml", "config file (YAML or JSON); missing file means defaults")
	pf.StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error")
	pf.StringVarP(&a.output, "output", "o", "", "text|json|yaml")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")

	root.AddCommand(
		newSolveCmd(a),
		newGenerateCmd(a),
		newCompareCmd(a),
		newHintCmd(a),
		newBenchCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("output") {
		cfg.Log.Output = a.output
	}
	if flags.Changed("metrics-file") {
		cfg.Bench.MetricsFile = a.metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	a.cfg = cfg

	format, err := terminal.ParseFormat(cfg.Log.Output)
	if err != nil {
		return err
	}
	a.printer = terminal.New(cmd.OutOrStdout(), format)

	logger := newLogger(cmd.ErrOrStderr(), cfg.Log.Level)
	a.reg = prometheus.NewRegistry()
	a.svc = usecase.NewService(
		a.solvers(cfg.Solver.Depth),
		func(seed int64) ports.Generator { return generator.NewRandom(seed) },
		validator.New(),
		hint.NewFirstStep(),
		metrics.New(a.reg),
		logger,
	)
	logger.Debug("config", "path", a.configPath, "solver", cfg.Solver.Kind, "depth", cfg.Solver.Depth)
	return nil
}

// solvers returns a factory building fresh solvers with the configured heuristic depth.
func (a *app) solvers(depth int) usecase.SolverFactory {
	scan := a.cfg.Solver.SiblingScan
	return func(kind domain.SolverKind) (ports.Solver, error) {
		return solver.New(kind, solver.WithDepth(depth), solver.WithSiblingScan(scan))
	}
}

func (a *app) flushMetrics() error {
	if a.reg == nil || a.cfg.Bench.MetricsFile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(a.cfg.Bench.MetricsFile, a.reg); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}

// context applies the configured solver timeout, if any.
func (a *app) context(parent context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.Solver.Timeout > 0 {
		return context.WithTimeout(parent, a.cfg.Solver.Timeout)
	}
	return context.WithCancel(parent)
}

func seedOrNow(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

func parseNumbers(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no numbers given")
	}
	out := make([]int, len(args))
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("number %d: %w", i+1, err)
		}
		out[i] = n
	}
	return out, nil
}
