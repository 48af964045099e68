package app

import (
	"context"
	"fmt"
	"time"

	"github.com/semmidev/s3sweep/internal/adapter/notifier"
	"github.com/semmidev/s3sweep/internal/adapter/storage"
	"github.com/semmidev/s3sweep/internal/config"
	"github.com/semmidev/s3sweep/internal/domain"
	"github.com/semmidev/s3sweep/internal/infrastructure/logger"
	"github.com/semmidev/s3sweep/internal/infrastructure/scheduler"
	"github.com/semmidev/s3sweep/internal/usecase"
)

// Options carries the per-invocation arguments, as opposed to the config
// file's connection settings.
type Options struct {
	PathSpecs []string
	Threshold time.Duration
	DryRun    bool
	Quiet     bool
	Verbose   bool
}

type App struct {
	config  *config.Config
	logger  *logger.Logger
	sweepUC *usecase.Sweep
}

func New(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	log, err := logger.New(cfg.App.LogLevel, cfg.App.LogFile, opts.Quiet, opts.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	st, err := storage.NewS3(ctx, cfg.S3)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize S3 storage: %w", err)
	}

	var notify domain.Notifier
	if cfg.Notify.Telegram.Enabled {
		tg, err := notifier.NewTelegram(cfg.Notify.Telegram)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize telegram notifier: %w", err)
		}
		log.Debugf("Telegram summary notification enabled")
		notify = tg
	}

	sweepUC := usecase.NewSweep(st, notify, log, opts.PathSpecs, opts.Threshold, opts.DryRun)

	return &App{
		config:  cfg,
		logger:  log,
		sweepUC: sweepUC,
	}, nil
}

// Run performs a single sweep, or keeps sweeping on the configured cron
// schedule until the context is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a.config.Schedule == "" {
		return a.sweepUC.Execute(ctx)
	}

	sched := scheduler.New(a.logger)
	if err := sched.AddJob(a.config.Schedule, a.sweepUC.Execute); err != nil {
		return fmt.Errorf("failed to schedule sweep: %w", err)
	}

	a.logger.Infof("Scheduling sweep: %s", a.config.Schedule)
	sched.Start()
	defer sched.Stop()

	<-ctx.Done()
	return nil
}

func (a *App) Shutdown() {
	a.logger.Close()
}
