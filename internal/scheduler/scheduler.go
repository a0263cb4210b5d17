// Package scheduler runs the periodic outfit suggestion job.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/outfique/backend/internal/domain"
	"github.com/outfique/backend/internal/service"
)

// Pusher delivers a notification to the signed-in user
type Pusher interface {
	Push(ctx context.Context, kind domain.NotificationType, actor, message string) (domain.Notification, error)
}

// SuggestionJob tells the signed-in user that today's suggestions are ready
type SuggestionJob struct {
	City    string
	Users   service.UserSource
	Weather service.WeatherProvider
	Inbox   Pusher
	Logger  *slog.Logger
	Timeout time.Duration
}

// Run executes the job once. It does nothing when nobody is signed in.
func (j *SuggestionJob) Run(ctx context.Context) error {
	if j.Users.CurrentUser() == nil {
		j.Logger.Debug("suggestion job skipped, no user signed in")
		return nil
	}

	if j.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}

	message := service.SuggestionMessage
	snapshot, err := j.Weather.GetCurrentWeather(ctx, j.City)
	if err != nil {
		j.Logger.Warn("suggestion job using fallback weather", "city", j.City, "error", err)
	} else {
		message = fmt.Sprintf("%s: %d°C and %s in %s", message, snapshot.Temperature, snapshot.Condition, snapshot.Location)
	}

	if _, err := j.Inbox.Push(ctx, domain.NotificationSuggestion, "outfique_ai", message); err != nil {
		return fmt.Errorf("scheduler: failed to push suggestion: %w", err)
	}
	return nil
}

// Scheduler wraps a cron runner
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// cronLogger routes cron's own logging (including recovered panics) to slog
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: "+msg, append([]interface{}{"error", err}, keysAndValues...)...)
}

// New creates a scheduler that accepts six-field (seconds first) cron specs
func New(logger *slog.Logger) *Scheduler {
	cl := cronLogger{logger: logger}
	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl)),
		),
		logger: logger,
	}
}

// AddSuggestionJob schedules job on spec
func (s *Scheduler) AddSuggestionJob(spec string, job *SuggestionJob) error {
	_, err := s.cron.AddFunc(spec, func() {
		if err := job.Run(context.Background()); err != nil {
			s.logger.Error("suggestion job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("scheduler: invalid schedule %q: %w", spec, err)
	}
	s.logger.Info("suggestion job scheduled", "spec", spec, "city", job.City)
	return nil
}

// Start runs the scheduler in the background
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for running jobs until ctx ends
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("scheduler stop timed out")
	}
}

// Entries reports how many jobs are scheduled
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
