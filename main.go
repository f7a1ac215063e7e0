package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/crillab/gopheropt/card"
	"github.com/crillab/gopheropt/maxsat"
	"github.com/crillab/gopheropt/metrics"
	"github.com/crillab/gopheropt/opt"
	"github.com/crillab/gopheropt/pb"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	config      string
	strategy    string
	backend     string
	verbose     bool
	dumpDir     string
	metricsFile string
	timeout     time.Duration
}

func newRootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:          "gopheropt",
		Short:        "Maximizes objectives over SAT and pseudo-boolean constraints",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "logs every refinement step")
	root.PersistentFlags().DurationVar(&f.timeout, "timeout", 0, "stops the search after the given duration, 0 for no limit")

	solveCmd := &cobra.Command{
		Use:   "solve problem.yaml",
		Short: "Maximizes the objectives of a YAML problem, in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0], f)
		},
	}
	solveCmd.Flags().StringVar(&f.config, "config", "", "YAML optimizer configuration")
	solveCmd.Flags().StringVar(&f.strategy, "strategy", "", "refinement strategy: linear, binary or descending")
	solveCmd.Flags().StringVar(&f.backend, "backend", "pb", "constraint backend: pb or card")
	solveCmd.Flags().StringVar(&f.dumpDir, "dump-dir", "", "writes a benchmark in this directory before each check")
	solveCmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "writes solver metrics to this file, in the Prometheus text format")

	maxsatCmd := &cobra.Command{
		Use:   "maxsat problem.wcnf",
		Short: "Solves a weighted partial MAXSAT problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMaxsat(cmd, args[0], f)
		},
	}

	root.AddCommand(solveCmd, maxsatCmd)
	return root
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func loadConfig(f flags) (opt.Config, error) {
	cfg := opt.DefaultConfig()
	if f.config != "" {
		file, err := os.Open(f.config)
		if err != nil {
			return cfg, errors.Wrap(err, "could not open configuration")
		}
		defer file.Close()
		if cfg, err = opt.LoadConfig(file); err != nil {
			return cfg, err
		}
	}
	if f.strategy != "" {
		cfg.Strategy = f.strategy
	}
	if f.dumpDir != "" {
		cfg.DumpDir = f.dumpDir
	}
	cfg.Verbose = cfg.Verbose || f.verbose
	return cfg, cfg.Validate()
}

func runSolve(cmd *cobra.Command, path string, f flags) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "could not open problem")
	}
	defer file.Close()
	p, err := LoadProblem(file)
	if err != nil {
		return err
	}
	var in *instance
	switch f.backend {
	case "pb":
		in, err = buildPB(p, pb.WithLogger(logger))
	case "card":
		in, err = buildCard(p, card.WithLogger(logger))
	default:
		err = errors.Errorf("unknown backend %q", f.backend)
	}
	if err != nil {
		return err
	}
	logger.WithField("instance", in.String()).Info("problem loaded")

	reg := prometheus.NewRegistry()
	s, err := opt.New(in.backend,
		opt.WithConfig(cfg),
		opt.WithLogger(logger),
		opt.WithObserver(metrics.New(reg)),
	)
	if err != nil {
		return err
	}
	for i, t := range in.terms {
		if _, err := s.Register(t, in.adjusters[i]); err != nil {
			return errors.Wrapf(err, "objective %s", in.names[i])
		}
	}
	ctx, cancel := withTimeout(cmd.Context(), f.timeout)
	defer cancel()
	if _, err := s.MaximizeAll(ctx); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for i, name := range in.names {
		v, _ := s.Value(i)
		outcome, _ := s.Outcome(i)
		fmt.Fprintf(out, "%s %v %s\n", name, v, outcome)
	}
	st := s.Stats()
	logger.WithFields(logrus.Fields{"checks": st.NbChecks, "sat": st.NbSat, "unsat": st.NbUnsat}).Info("done")
	if f.metricsFile != "" {
		if err := prometheus.WriteToTextfile(f.metricsFile, reg); err != nil {
			return errors.Wrap(err, "could not write metrics")
		}
	}
	return nil
}

func runMaxsat(cmd *cobra.Command, path string, f flags) error {
	logger := newLogger(cmd.ErrOrStderr(), f.verbose)
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "could not open problem")
	}
	defer file.Close()
	cs, err := maxsat.ParseWCNF(file)
	if err != nil {
		return errors.Wrap(err, "could not parse problem")
	}
	p, err := maxsat.New(cs, pb.WithLogger(logger))
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout(cmd.Context(), f.timeout)
	defer cancel()
	model, cost, err := p.Solve(ctx, opt.WithLogger(logger))
	out := cmd.OutOrStdout()
	switch {
	case errors.Is(err, maxsat.ErrNotOptimal):
		fmt.Fprintln(out, "s UNKNOWN")
		return nil
	case err != nil:
		return err
	case cost < 0:
		fmt.Fprintln(out, "s UNSATISFIABLE")
		return nil
	}
	fmt.Fprintf(out, "o %d\ns OPTIMUM FOUND\n", cost)
	fmt.Fprintf(out, "v %s\n", modelLine(model))
	return nil
}

// modelLine lists the literals of m. Shorter names come first, so that numeric names are in order.
func modelLine(m maxsat.Model) string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) < len(names[j])
		}
		return names[i] < names[j]
	})
	line := ""
	for i, name := range names {
		if i > 0 {
			line += " "
		}
		if !m[name] {
			line += "-"
		}
		line += name
	}
	return line
}
