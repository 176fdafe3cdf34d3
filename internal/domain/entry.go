package domain

import (
	"fmt"
	"strings"
	"time"
)

// DefaultTimestampFormat mimics an en-US locale date/time string.
const DefaultTimestampFormat = "1/2/2006, 3:04:05 PM"

// entryDelimiter separates the bracketed timestamp from the details.
const entryDelimiter = "] "

// LogEntry is the persisted text record of one completed session.
type LogEntry struct {
	Timestamp string
	Details   string
}

// NewLogEntry builds the entry for a completed session.
func NewLogEntry(s *Session, at time.Time, layout string) LogEntry {
	if layout == "" {
		layout = DefaultTimestampFormat
	}
	return LogEntry{
		Timestamp: "[" + at.Format(layout),
		Details:   fmt.Sprintf("%s (%sm)", s.Task, FormatMinutes(s.Minutes)),
	}
}

// String renders the entry as a single log line without the trailing newline.
func (e LogEntry) String() string {
	return e.Timestamp + entryDelimiter + e.Details
}

// ParseLogLine splits a line once on "] ". The timestamp part keeps its
// leading bracket. Lines without the delimiter yield empty details.
func ParseLogLine(line string) LogEntry {
	ts, details, _ := strings.Cut(line, entryDelimiter)
	return LogEntry{Timestamp: ts, Details: details}
}

// FormatClock formats a number of seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
