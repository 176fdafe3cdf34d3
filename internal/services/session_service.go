// Package services implements the sprint use cases: running a timed focus
// session and listing the session history.
package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/xvierd/sprint-cli/internal/config"
	"github.com/xvierd/sprint-cli/internal/domain"
	"github.com/xvierd/sprint-cli/internal/ports"
)

// SessionService runs one session through Configuring, Running and Completed.
type SessionService struct {
	history  ports.HistoryLog
	notifier ports.Notifier
	view     ports.TimerView

	sleeper  ports.Sleeper
	picker   ports.MessagePicker
	messages []string
	now      func() time.Time
	logger   *log.Logger

	timer           config.TimerConfig
	presets         []config.Preset
	timestampFormat string

	state domain.TimerState
}

// NewSessionService creates a session service with the default timer settings.
func NewSessionService(history ports.HistoryLog, notifier ports.Notifier, view ports.TimerView) *SessionService {
	defaults := config.DefaultConfig()
	return &SessionService{
		history:         history,
		notifier:        notifier,
		view:            view,
		sleeper:         TimeSleeper{},
		picker:          globalRand{},
		messages:        DefaultMessages,
		now:             time.Now,
		logger:          log.Default(),
		timer:           defaults.Timer,
		presets:         defaults.Presets,
		timestampFormat: defaults.History.TimestampFormat,
		state:           domain.StateConfiguring,
	}
}

// SetConfig applies the timer, preset and timestamp settings.
func (s *SessionService) SetConfig(cfg *config.Config) {
	s.timer = cfg.Timer
	s.presets = cfg.Presets
	s.timestampFormat = cfg.History.TimestampFormat
}

// SetSleeper replaces the one-second wait between ticks.
func (s *SessionService) SetSleeper(sleeper ports.Sleeper) {
	s.sleeper = sleeper
}

// SetPicker replaces the source of randomness for motivational messages.
func (s *SessionService) SetPicker(picker ports.MessagePicker) {
	s.picker = picker
}

// SetMessages replaces the motivational message bank.
func (s *SessionService) SetMessages(messages []string) {
	s.messages = messages
}

// SetClock replaces the clock used to timestamp log entries.
func (s *SessionService) SetClock(now func() time.Time) {
	s.now = now
}

// SetLogger sets the diagnostics logger.
func (s *SessionService) SetLogger(logger *log.Logger) {
	s.logger = logger
}

// State returns the current lifecycle phase.
func (s *SessionService) State() domain.TimerState {
	return s.state
}

// Start configures a session interactively and runs it to completion.
// It returns domain.ErrCancelled if the user backs out of configuration.
func (s *SessionService) Start(ctx context.Context, prompter ports.Prompter) (*domain.Session, error) {
	session, err := s.Configure(prompter)
	if err != nil {
		return nil, err
	}
	if err := s.Run(ctx, session); err != nil {
		return session, err
	}
	return session, nil
}

// Configure asks for a task name and a duration preset.
func (s *SessionService) Configure(prompter ports.Prompter) (*domain.Session, error) {
	s.state = domain.StateConfiguring

	task, err := prompter.PromptTask(domain.ValidateTask)
	if err != nil {
		return nil, err
	}

	preset, err := prompter.PromptPreset(s.presets)
	if err != nil {
		return nil, err
	}

	session, err := domain.NewSession(task, preset.Minutes)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// Run counts down the session one second at a time, then completes it.
// If ctx is cancelled mid-countdown nothing is logged and ctx.Err() is returned.
func (s *SessionService) Run(ctx context.Context, session *domain.Session) error {
	s.state = domain.StateRunning
	total := session.TotalSeconds()

	s.logger.Debug("session started", "id", session.ID, "task", session.Task, "seconds", total)
	s.view.Start(session)

	for remaining := total; remaining > 0; remaining-- {
		if remaining%s.timer.MotivationEvery == 0 && remaining != total {
			s.view.Motivate(s.pickMessage())
		}

		s.view.Tick(s.tick(remaining, total))

		if err := s.sleeper.Sleep(ctx, time.Second); err != nil {
			s.logger.Debug("session abandoned", "id", session.ID, "remaining", remaining)
			s.view.Abandon(session)
			return err
		}
	}

	return s.complete(ctx, session)
}

// tick builds the render snapshot for one remaining-seconds value.
func (s *SessionService) tick(remaining, total int) domain.Tick {
	t := domain.Tick{
		Remaining:   remaining,
		Total:       total,
		BarWidth:    s.timer.BarWidth,
		FinalSprint: remaining <= s.timer.SprintThreshold,
	}
	t.Filled = int(math.Round(t.Elapsed() * float64(s.timer.BarWidth)))
	return t
}

func (s *SessionService) pickMessage() string {
	if len(s.messages) == 0 {
		return ""
	}
	return s.messages[s.picker.IntN(len(s.messages))]
}

// complete shows the banner, notifies, and appends exactly one log entry.
func (s *SessionService) complete(ctx context.Context, session *domain.Session) error {
	s.state = domain.StateCompleted
	s.view.Complete(session)

	if s.notifier != nil {
		if err := s.notifier.NotifySessionComplete(session.Task); err != nil {
			// Notifications are best effort.
			s.logger.Warn("notification failed", "err", err)
		}
	}

	entry := domain.NewLogEntry(session, s.now(), s.timestampFormat)
	// The countdown is over, so a late interrupt must not drop the entry.
	if err := s.history.Append(context.WithoutCancel(ctx), entry); err != nil {
		return fmt.Errorf("failed to save session to %s: %w", s.history.Path(), err)
	}

	s.logger.Debug("session logged", "id", session.ID, "entry", entry.String())
	s.view.Farewell(session, s.history.Path())
	return nil
}
