package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvpoly/polygon"
	"github.com/katalvlaran/lvpoly/sequence"
)

// app carries the state shared by one command invocation.
type app struct {
	// flags
	configPath string
	verbose    bool
	maxEdges   int
	radius     float64
	output     string

	cfg    Config
	logger *zap.Logger
}

// newRootCmd assembles the command tree. Each call returns an independent
// tree, so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "polygons",
		Short: "Measure regular polygons inscribed in a circle",
		Long: `polygons computes interior angle, side length, apothem, area and
perimeter of regular polygons with a shared circumradius, and finds the
polygon with the best area-to-perimeter ratio among edge counts 3..m.

Settings come from defaults, then an optional YAML file (--config),
then explicitly given flags.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (keys: max_edges, radius, output)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging on stderr")
	pf.IntVarP(&a.maxEdges, "max-edges", "m", DefaultMaxEdges, "largest edge count in the sequence")
	pf.Float64VarP(&a.radius, "radius", "r", DefaultRadius, "circumradius shared by all polygons")
	pf.StringVarP(&a.output, "output", "o", DefaultOutput, "output format: text or yaml")

	root.AddCommand(
		&cobra.Command{
			Use:   "describe <edges>",
			Short: "Print the measurements of one polygon",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runDescribe,
		},
		&cobra.Command{
			Use:   "table",
			Short: "Print every polygon with 3..max-edges edges",
			Args:  cobra.NoArgs,
			RunE:  a.runTable,
		},
		&cobra.Command{
			Use:   "best",
			Short: "Print the polygon with the best area-to-perimeter ratio",
			Args:  cobra.NoArgs,
			RunE:  a.runBest,
		},
	)

	return root
}

// setup builds the logger and resolves the effective Config.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if a.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger.Named("polygons")

	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("max-edges") {
		cfg.MaxEdges = a.maxEdges
	}
	if flags.Changed("radius") {
		cfg.Radius = a.radius
	}
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger.Debug("config resolved",
		zap.String("file", a.configPath),
		zap.Int("max_edges", cfg.MaxEdges),
		zap.Float64("radius", cfg.Radius),
		zap.String("output", cfg.Output))

	return nil
}

func (a *app) runDescribe(cmd *cobra.Command, args []string) error {
	edges, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("edge count %q: %w", args[0], err)
	}
	p, err := polygon.New(edges, a.cfg.Radius)
	if err != nil {
		return fmt.Errorf("describe: %w", err)
	}
	a.logger.Debug("polygon built", zap.Stringer("polygon", p))

	return writeReports(cmd.OutOrStdout(), a.cfg.Output, newReport(p))
}

func (a *app) runTable(cmd *cobra.Command, args []string) error {
	s, err := a.sequence()
	if err != nil {
		return fmt.Errorf("table: %w", err)
	}
	reports := make([]polygonReport, 0, s.Len())
	for p := range s.Values() {
		reports = append(reports, newReport(p))
	}

	return writeReports(cmd.OutOrStdout(), a.cfg.Output, reports...)
}

func (a *app) runBest(cmd *cobra.Command, args []string) error {
	s, err := a.sequence()
	if err != nil {
		return fmt.Errorf("best: %w", err)
	}
	best, err := s.MaxEfficiency()
	if err != nil {
		return fmt.Errorf("best: %w", err)
	}
	a.logger.Debug("max efficiency selected",
		zap.Stringer("sequence", s),
		zap.Stringer("polygon", best),
		zap.Float64("efficiency", best.Efficiency()))

	return writeReports(cmd.OutOrStdout(), a.cfg.Output, newReport(best))
}

func (a *app) sequence() (*sequence.Sequence, error) {
	s, err := sequence.New(a.cfg.MaxEdges, a.cfg.Radius)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("sequence built", zap.Stringer("sequence", s), zap.Int("len", s.Len()))

	return s, nil
}
