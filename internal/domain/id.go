package domain

import "github.com/google/uuid"

// newSessionID returns a random identifier used to correlate diagnostics for one run.
func newSessionID() string {
	return uuid.NewString()
}
