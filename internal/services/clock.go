package services

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/xvierd/sprint-cli/internal/ports"
)

// TimeSleeper waits on a real timer.
type TimeSleeper struct{}

// Ensure TimeSleeper implements ports.Sleeper.
var _ ports.Sleeper = TimeSleeper{}

// Sleep blocks for d or until ctx is cancelled.
func (TimeSleeper) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// globalRand picks from the auto-seeded math/rand/v2 source.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }
