package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"studydesk/internal/config"
	"studydesk/internal/core"
	"studydesk/pkg/domain"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type rootFlags struct {
	configPath string
	driver     string
	fileDir    string
	sqlitePath string
	logLevel   string
}

// app carries what every subcommand needs once the root hooks have run.
type app struct {
	flags  rootFlags
	out    io.Writer
	errOut io.Writer
	now    func() time.Time

	logger   *slog.Logger
	registry *prometheus.Registry
	storage  *core.Storage
	store    *core.Store
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// resolveConfig layers command-line flags over config.Load.
func (a *app) resolveConfig() (config.Config, error) {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if a.flags.driver != "" {
		cfg.Storage.Driver = a.flags.driver
	}
	if a.flags.fileDir != "" {
		cfg.Storage.FileDir = a.flags.fileDir
	}
	if a.flags.sqlitePath != "" {
		cfg.Storage.SQLitePath = a.flags.sqlitePath
	}
	if a.flags.logLevel != "" {
		cfg.LogLevel = a.flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (a *app) open(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := a.resolveConfig()
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))

	a.registry = prometheus.NewRegistry()
	metrics, err := core.NewMetrics(a.registry)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	a.storage, err = core.OpenPersistentStore(ctx, cfg.Storage, a.logger)
	if err != nil {
		return err
	}
	if a.storage.Fallback {
		fmt.Fprintf(a.errOut, "warning: %s storage unavailable, changes will not be saved\n", cfg.Storage.Driver)
	}
	a.store = core.NewStore(ctx, a.storage,
		core.WithLogger(a.logger),
		core.WithMetrics(metrics),
		core.WithIDGenerator(core.IDGeneratorFor(cfg.IDs)),
	)
	a.logger.Debug("storage opened", "driver", a.storage.Driver(), "requested", a.storage.Requested)
	return nil
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	a.logMetrics()
	err := a.store.Close()
	a.store = nil
	if err != nil {
		return fmt.Errorf("close storage: %w", err)
	}
	return nil
}

// logMetrics dumps the collected counters at debug level.
func (a *app) logMetrics() {
	if a.registry == nil || !a.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	families, err := a.registry.Gather()
	if err != nil {
		a.logger.Debug("gather metrics failed", "error", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := []any{"metric", mf.GetName()}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				attrs = append(attrs, "value", m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				attrs = append(attrs, "value", m.GetGauge().GetValue())
			}
			a.logger.Debug("metric", attrs...)
		}
	}
}

func (a *app) today() domain.Date { return domain.DateOf(a.now()) }

// dateOr parses s, or returns the default when s is empty.
func dateOr(s string, def domain.Date) (domain.Date, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return domain.ParseDate(s)
}

var errRequired = errors.New("is required")

func required(name, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", fmt.Errorf("--%s %w", name, errRequired)
	}
	return v, nil
}
