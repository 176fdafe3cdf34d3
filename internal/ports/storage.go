// Package ports defines the interfaces (driven and driving ports)
// between the sprint services and the terminal, filesystem and desktop.
package ports

import (
	"context"

	"github.com/xvierd/sprint-cli/internal/domain"
)

// HistoryLog is the append-only session log.
// This is a driven port (implemented by adapters).
type HistoryLog interface {
	// Append writes one entry as a new line at the end of the log.
	Append(ctx context.Context, entry domain.LogEntry) error

	// Tail returns up to n raw lines from the end of the log, in file order.
	// It returns domain.ErrNoHistory when the log does not exist yet.
	Tail(ctx context.Context, n int) ([]string, error)

	// Path returns where the log lives.
	Path() string
}

// Notifier raises a desktop notification.
type Notifier interface {
	NotifySessionComplete(task string) error
}
