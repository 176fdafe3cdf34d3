// Package domain contains the core entities of sprint: the focus session,
// the log entry it produces, and the timer's lifecycle states.
// Nothing in here touches the terminal or the filesystem.
package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Common domain errors.
var (
	ErrEmptyTask      = errors.New("task name cannot be empty")
	ErrInvalidMinutes = errors.New("duration must be a positive number of minutes")
	ErrCancelled      = errors.New("cancelled by user")
	ErrNoHistory      = errors.New("no session history")
)

// Session is one focus interval: a task label and a duration in minutes.
// It is immutable once created.
type Session struct {
	ID      string
	Task    string
	Minutes float64
}

// NewSession validates the task and duration and returns a new session.
func NewSession(task string, minutes float64) (*Session, error) {
	if err := ValidateTask(task); err != nil {
		return nil, err
	}
	if minutes <= 0 || math.IsNaN(minutes) || math.IsInf(minutes, 0) {
		return nil, ErrInvalidMinutes
	}
	return &Session{
		ID:      newSessionID(),
		Task:    task,
		Minutes: minutes,
	}, nil
}

// ValidateTask rejects task names that are empty or whitespace only.
func ValidateTask(task string) error {
	if strings.TrimSpace(task) == "" {
		return ErrEmptyTask
	}
	return nil
}

// TotalSeconds is the whole number of seconds the countdown runs for.
// Sub-second durations floor to zero.
func (s *Session) TotalSeconds() int {
	return int(math.Floor(s.Minutes * 60))
}

// FormatMinutes renders minutes the way the user picked them: 25, 0.1, 1.5.
func FormatMinutes(minutes float64) string {
	return strconv.FormatFloat(minutes, 'f', -1, 64)
}
