// Package cli implements the toyinventory command line front end over the
// inventory core.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"toyinventory/internal/codec"
	"toyinventory/internal/config"
	"toyinventory/internal/core"
	"toyinventory/internal/infra/logger"
	"toyinventory/internal/infra/persistence"
	"toyinventory/pkg/domain"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// session holds what a single command invocation works on.
type session struct {
	configPath string
	dataPath   string
	logLevel   string

	log      *logrus.Logger
	store    domain.RecordStore
	closeFn  func() error
	inv      *core.Inventory
	diags    []codec.Diagnostic
	gatherer prometheus.Gatherer
	expvar   *core.ExpvarMetricsRecorder
}

func newRootCmd() *cobra.Command {
	s := &session{}
	cmd := &cobra.Command{
		Use:               "toyinventory",
		Short:             "Inspect and update a toy store inventory",
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			return s.open(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return s.close()
		},
	}
	cmd.PersistentFlags().StringVarP(&s.configPath, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().StringVarP(&s.dataPath, "data", "d", "", "record file (overrides storage.path)")
	cmd.PersistentFlags().StringVar(&s.logLevel, "log-level", "", "log level: debug|info|warn|error")

	cmd.AddCommand(
		listCmd(s),
		searchCmd(s),
		buyCmd(s),
		addCmd(s),
		removeCmd(s),
		suggestCmd(s),
		checkCmd(s),
	)
	return cmd
}

func (s *session) open(cmd *cobra.Command) error {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return err
	}
	if s.dataPath != "" {
		cfg.Storage.Path = s.dataPath
	}
	if s.logLevel != "" {
		cfg.Log.Level = s.logLevel
	}
	s.log, err = logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	metrics, err := s.metrics(cfg.Metrics)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s.store, s.closeFn, err = persistence.Open(ctx, cfg.Storage)
	if err != nil {
		logger.LogError(s.log, "cli", "open", "opening record store", cfg.Storage.Driver, err)
		return err
	}
	s.inv, s.diags, err = core.Load(ctx, s.store, core.WithLogger(s.log), core.WithMetrics(metrics))
	if err != nil {
		logger.LogError(s.log, "cli", "open", "loading inventory", nil, err)
		return err
	}
	return nil
}

func (s *session) metrics(cfg config.Metrics) (core.MetricsRecorder, error) {
	switch strings.ToLower(cfg.Exporter) {
	case config.ExporterExpvar:
		s.expvar = core.NewExpvarMetricsRecorder(cfg.Name)
		return s.expvar, nil
	case config.ExporterPrometheus:
		reg := prometheus.NewRegistry()
		rec, err := core.NewPrometheusMetricsRecorder(reg)
		if err != nil {
			return nil, err
		}
		s.gatherer = reg
		return rec, nil
	default:
		return nil, nil
	}
}

func (s *session) close() error {
	s.dumpMetrics()
	if s.closeFn == nil {
		return nil
	}
	fn := s.closeFn
	s.closeFn = nil
	return fn()
}

func (s *session) dumpMetrics() {
	if s.log == nil {
		return
	}
	if s.expvar != nil {
		snap := s.expvar.Snapshot()
		s.log.WithFields(logrus.Fields{
			"results": snap.Results,
			"sales":   snap.Sales,
		}).Debug("metrics")
	}
	if s.gatherer != nil {
		families, err := s.gatherer.Gather()
		if err != nil {
			s.log.WithError(err).Warn("gather metrics")
			return
		}
		fields := logrus.Fields{}
		for _, mf := range families {
			fields[mf.GetName()] = len(mf.GetMetric())
		}
		s.log.WithFields(fields).Debug("metrics")
	}
}

// save writes the inventory back after a mutating command.
func (s *session) save(cmd *cobra.Command) error {
	if err := s.inv.Save(cmd.Context(), s.store); err != nil {
		logger.LogError(s.log, "cli", "save", "writing records", s.inv.Len(), err)
		return err
	}
	return nil
}

func printToys(cmd *cobra.Command, toys []domain.Toy, empty string) {
	out := cmd.OutOrStdout()
	if len(toys) == 0 {
		fmt.Fprintln(out, empty)
		return
	}
	for _, t := range toys {
		fmt.Fprintln(out, t.String())
	}
}
