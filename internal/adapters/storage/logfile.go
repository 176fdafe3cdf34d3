// Package storage provides the flat-file implementation of the history port.
package storage

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xvierd/sprint-cli/internal/domain"
	"github.com/xvierd/sprint-cli/internal/ports"
)

// logFile implements ports.HistoryLog as a plain text file, one entry per line.
type logFile struct {
	path string
}

// Ensure logFile implements ports.HistoryLog.
var _ ports.HistoryLog = (*logFile)(nil)

// New returns a history log backed by the file at path. The file is created
// on the first Append.
func New(path string) ports.HistoryLog {
	return &logFile{path: path}
}

// Path returns the log file location.
func (l *logFile) Path() string {
	return l.path
}

// Append adds one line to the end of the log.
func (l *logFile) Append(ctx context.Context, entry domain.LogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	if _, err := f.WriteString(entry.String() + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write log entry: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

// Tail returns the last n lines of the log in file order. Blank lines count
// like any other line; the final newline does not start one. A missing file
// yields domain.ErrNoHistory.
func (l *logFile) Tail(ctx context.Context, n int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNoHistory
		}
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if n < 0 {
		n = 0
	}

	// Ring of the last n lines; the log is read whole but only n are kept.
	ring := make([]string, 0, n)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if n == 0 {
			continue
		}
		if len(ring) == n {
			copy(ring, ring[1:])
			ring = ring[:n-1]
		}
		ring = append(ring, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}

	return ring, nil
}
