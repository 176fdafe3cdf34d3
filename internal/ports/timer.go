package ports

import (
	"context"
	"time"

	"github.com/xvierd/sprint-cli/internal/config"
	"github.com/xvierd/sprint-cli/internal/domain"
)

// Prompter collects the session configuration from the user.
// Both methods return domain.ErrCancelled when the user backs out.
type Prompter interface {
	// PromptTask asks for a task name, re-prompting until validate accepts it.
	PromptTask(validate func(string) error) (string, error)

	// PromptPreset asks the user to pick one of the duration presets.
	PromptPreset(presets []config.Preset) (config.Preset, error)
}

// TimerView renders the running countdown and the completion screen.
// This is a driving port (called by the application layer).
type TimerView interface {
	// Start is called once before the first tick.
	Start(session *domain.Session)

	// Tick redraws the single status line.
	Tick(tick domain.Tick)

	// Motivate shows one motivational message above the status line.
	Motivate(message string)

	// Complete shows the completion banner.
	Complete(session *domain.Session)

	// Farewell shows the closing message after the log entry is written.
	Farewell(session *domain.Session, logPath string)

	// Abandon is called when the countdown is interrupted.
	Abandon(session *domain.Session)
}

// HistoryView renders recent log entries.
type HistoryView interface {
	// Empty is shown when there is no history to list.
	Empty(logPath string)

	// Entries shows parsed entries, most recent first.
	Entries(entries []domain.LogEntry)
}

// Sleeper suspends the countdown between ticks.
type Sleeper interface {
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in that case.
	Sleep(ctx context.Context, d time.Duration) error
}

// MessagePicker chooses a motivational message index in [0, n).
// *math/rand/v2.Rand satisfies it.
type MessagePicker interface {
	IntN(n int) int
}
