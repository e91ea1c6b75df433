// Package housekeeping prunes aged send history on a schedule.
package housekeeping

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/madsmiley/mailbridge/pkg/logger"
)

// ErrInvalidSchedule rejects cron expressions ParseStandard cannot read.
var ErrInvalidSchedule = errors.New("housekeeping: invalid cron schedule")

// LogPruner is the slice of the log store the pruner needs.
type LogPruner interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Config holds pruning settings.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	// Schedule is a standard five-field cron expression. The default runs
	// nightly at 03:00, off the traffic peak.
	Schedule string `env:"MAILBRIDGE_CLEANUP_SCHEDULE" envDefault:"0 3 * * *"`

	// RetentionDays is how long entries are kept. Non-positive falls back
	// to thirty days.
	RetentionDays int `env:"MAILBRIDGE_LOG_RETENTION_DAYS" envDefault:"30"`
}

// Pruner deletes log entries older than the retention window, either on a
// cron schedule via Start or on demand via RunOnce.
type Pruner struct {
	store    LogPruner
	schedule cron.Schedule
	retain   time.Duration
	log      *slog.Logger
	now      func() time.Time
}

// Option customizes a Pruner.
type Option func(*Pruner)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pruner) {
		if l != nil {
			p.log = l
		}
	}
}

// WithClock overrides the time source for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Pruner) {
		if now != nil {
			p.now = now
		}
	}
}

// New creates a Pruner. The schedule is parsed eagerly so a bad expression
// fails at startup rather than at 3 AM.
func New(store LogPruner, cfg Config, opts ...Option) (*Pruner, error) {
	if cfg.Schedule == "" {
		cfg.Schedule = "0 3 * * *"
	}
	schedule, err := cron.ParseStandard(cfg.Schedule)
	if err != nil {
		return nil, errors.Join(ErrInvalidSchedule, err)
	}

	days := cfg.RetentionDays
	if days <= 0 {
		days = 30
	}

	p := &Pruner{
		store:    store,
		schedule: schedule,
		retain:   time.Duration(days) * 24 * time.Hour,
		log:      logger.NewNope(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Start blocks, pruning on the configured schedule until the context is
// canceled. Run it in a goroutine.
func (p *Pruner) Start(ctx context.Context) error {
	for {
		next := p.schedule.Next(p.now())
		timer := time.NewTimer(next.Sub(p.now()))

		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			if _, err := p.RunOnce(ctx); err != nil {
				p.log.ErrorContext(ctx, "log pruning failed", slog.String("error", err.Error()))
			}
		}
	}
}

// RunOnce prunes everything older than the retention window and reports how
// many entries were removed.
func (p *Pruner) RunOnce(ctx context.Context) (int64, error) {
	cutoff := p.now().Add(-p.retain)
	removed, err := p.store.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		p.log.InfoContext(ctx, "pruned email log entries",
			slog.Int64("removed", removed),
			slog.Time("cutoff", cutoff))
	}
	return removed, nil
}
