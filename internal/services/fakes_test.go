package services

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/xvierd/sprint-cli/internal/config"
	"github.com/xvierd/sprint-cli/internal/domain"
)

type fakeHistory struct {
	path      string
	lines     []string
	appendErr error
	tailErr   error
}

// Append rejects a cancelled context like the log file does.
func (h *fakeHistory) Append(ctx context.Context, entry domain.LogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if h.appendErr != nil {
		return h.appendErr
	}
	h.lines = append(h.lines, entry.String())
	return nil
}

func (h *fakeHistory) Tail(_ context.Context, n int) ([]string, error) {
	if h.tailErr != nil {
		return nil, h.tailErr
	}
	start := len(h.lines) - n
	if start < 0 {
		start = 0
	}
	return append([]string(nil), h.lines[start:]...), nil
}

func (h *fakeHistory) Path() string { return h.path }

type fakeNotifier struct {
	tasks []string
	err   error
}

func (n *fakeNotifier) NotifySessionComplete(task string) error {
	n.tasks = append(n.tasks, task)
	return n.err
}

type fakeTimerView struct {
	events    []string
	ticks     []domain.Tick
	messages  []string
	motivated []int // remaining seconds of the tick that followed each message
	farewell  string
}

func (v *fakeTimerView) Start(*domain.Session) { v.events = append(v.events, "start") }

func (v *fakeTimerView) Tick(t domain.Tick) {
	if len(v.messages) > len(v.motivated) {
		v.motivated = append(v.motivated, t.Remaining)
	}
	v.ticks = append(v.ticks, t)
}

func (v *fakeTimerView) Motivate(msg string) { v.messages = append(v.messages, msg) }

func (v *fakeTimerView) Complete(*domain.Session) { v.events = append(v.events, "complete") }

func (v *fakeTimerView) Farewell(_ *domain.Session, path string) {
	v.events = append(v.events, "farewell")
	v.farewell = path
}

func (v *fakeTimerView) Abandon(*domain.Session) { v.events = append(v.events, "abandon") }

type fakeHistoryView struct {
	empty   bool
	entries []domain.LogEntry
}

func (v *fakeHistoryView) Empty(string) { v.empty = true }

func (v *fakeHistoryView) Entries(entries []domain.LogEntry) { v.entries = entries }

// countingSleeper never blocks; it cancels once cancelAfter sleeps have happened.
type countingSleeper struct {
	calls       int
	cancelAfter int
	cancel      context.CancelFunc
}

func (s *countingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.calls++
	if s.cancel != nil && s.calls == s.cancelAfter {
		s.cancel()
	}
	return ctx.Err()
}

// lateCancelSleeper cancels during the last sleep but lets it finish, as
// when an interrupt lands right as the countdown reaches zero.
type lateCancelSleeper struct {
	calls  int
	last   int
	cancel context.CancelFunc
}

func (s *lateCancelSleeper) Sleep(context.Context, time.Duration) error {
	s.calls++
	if s.calls == s.last {
		s.cancel()
	}
	return nil
}

// sequencePicker returns the given indexes in order, cycling.
type sequencePicker struct {
	seq []int
	i   int
}

func (p *sequencePicker) IntN(n int) int {
	v := p.seq[p.i%len(p.seq)] % n
	p.i++
	return v
}

type fakePrompter struct {
	tasks      []string
	taskErr    error
	presetIdx  int
	presetErr  error
	rejections int
}

func (p *fakePrompter) PromptTask(validate func(string) error) (string, error) {
	if p.taskErr != nil {
		return "", p.taskErr
	}
	for _, task := range p.tasks {
		if err := validate(task); err != nil {
			p.rejections++
			continue
		}
		return task, nil
	}
	return "", domain.ErrCancelled
}

func (p *fakePrompter) PromptPreset(presets []config.Preset) (config.Preset, error) {
	if p.presetErr != nil {
		return config.Preset{}, p.presetErr
	}
	return presets[p.presetIdx], nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}
