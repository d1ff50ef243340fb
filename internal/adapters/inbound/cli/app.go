package cli

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/designqa/designqa/internal/adapters/outbound/advisor"
	"github.com/designqa/designqa/internal/adapters/outbound/collector"
	"github.com/designqa/designqa/internal/adapters/outbound/config"
	"github.com/designqa/designqa/internal/adapters/outbound/gitinfo"
	"github.com/designqa/designqa/internal/adapters/outbound/logging"
	"github.com/designqa/designqa/internal/application"
	"github.com/designqa/designqa/internal/domain"
)

// app is the wired object graph every command runs against.
type app struct {
	env       config.ServerEnv
	cfg       domain.ProjectConfig
	logger    *zap.Logger
	collector *collector.Collector
	selection *collector.Selection
	svc       *application.AnalyzeService
}

// newApp loads env and project config and wires the service. defaultLevel
// applies when neither --log-level nor DESIGNQA_LOG_LEVEL is given.
func newApp(opts *globalOptions, defaultLevel string) (*app, error) {
	env, err := config.LoadServerEnv()
	if err != nil {
		return nil, err
	}

	level := defaultLevel
	switch {
	case opts.logLevel != "":
		level = opts.logLevel
	case envSet("DESIGNQA_LOG_LEVEL"):
		level = env.LogLevel
	}
	logger, err := logging.New(level)
	if err != nil {
		return nil, err
	}

	dir := env.ConfigDir
	if opts.configDir != "" {
		dir = opts.configDir
	}
	cfg, err := config.New().Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	col := collector.New(collector.Options{DefaultBackground: cfg.DefaultBackground})
	sel := collector.NewSelection()
	svc := application.NewAnalyzeService(cfg, col, collector.NewFileLoader(), sel, logger,
		application.WithAugmenter(advisor.New()),
		application.WithGitInfo(gitinfo.New()),
	)

	return &app{
		env:       env,
		cfg:       cfg,
		logger:    logger,
		collector: col,
		selection: sel,
		svc:       svc,
	}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}

func envSet(key string) bool {
	v, ok := os.LookupEnv(key)
	return ok && v != ""
}
