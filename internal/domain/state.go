package domain

// TimerState is the lifecycle phase of a single timer run.
type TimerState string

const (
	StateConfiguring TimerState = "configuring"
	StateRunning     TimerState = "running"
	StateCompleted   TimerState = "completed"
)

// Tick is the snapshot rendered once per second while a session runs.
type Tick struct {
	Remaining   int
	Total       int
	Filled      int
	BarWidth    int
	FinalSprint bool
}

// Elapsed returns the completed fraction of the session, 0 when total is zero.
func (t Tick) Elapsed() float64 {
	if t.Total == 0 {
		return 0
	}
	return 1 - float64(t.Remaining)/float64(t.Total)
}

// Clock returns the remaining time as zero-padded MM:SS.
func (t Tick) Clock() string {
	return FormatClock(t.Remaining)
}

// GetStateLabel returns a human-readable label for the timer state.
func GetStateLabel(s TimerState) string {
	switch s {
	case StateConfiguring:
		return "Configuring"
	case StateRunning:
		return "Running"
	case StateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}
