package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/xvierd/sprint-cli/internal/domain"
	"github.com/xvierd/sprint-cli/internal/ports"
)

// DefaultHistoryLimit is how many entries the history view lists.
const DefaultHistoryLimit = 10

// HistoryService lists the most recent completed sessions.
type HistoryService struct {
	history ports.HistoryLog
	view    ports.HistoryView
	limit   int
}

// NewHistoryService creates a new history service.
func NewHistoryService(history ports.HistoryLog, view ports.HistoryView) *HistoryService {
	return &HistoryService{
		history: history,
		view:    view,
		limit:   DefaultHistoryLimit,
	}
}

// SetLimit changes how many entries are listed.
func (s *HistoryService) SetLimit(limit int) {
	if limit > 0 {
		s.limit = limit
	}
}

// Recent returns up to limit entries, most recent first.
// A missing log yields domain.ErrNoHistory.
func (s *HistoryService) Recent(ctx context.Context) ([]domain.LogEntry, error) {
	lines, err := s.history.Tail(ctx, s.limit)
	if err != nil {
		return nil, err
	}

	slices.Reverse(lines)
	entries := make([]domain.LogEntry, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, domain.ParseLogLine(line))
	}
	return entries, nil
}

// Show renders the recent entries, or a notice when there are none.
func (s *HistoryService) Show(ctx context.Context) error {
	entries, err := s.Recent(ctx)
	if errors.Is(err, domain.ErrNoHistory) {
		s.view.Empty(s.history.Path())
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(entries) == 0 {
		s.view.Empty(s.history.Path())
		return nil
	}

	s.view.Entries(entries)
	return nil
}
