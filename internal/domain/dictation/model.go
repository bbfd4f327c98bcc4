package dictation

import "time"

// State is the lifecycle state of the dictation toggle. There is no
// in-memory state machine: the state is derived from the on-disk session
// record plus a process liveness check.
type State int

const (
	StateIdle State = iota
	StateRecording
)

func (s State) String() string {
	if s == StateRecording {
		return "recording"
	}
	return "idle"
}

// StopResult holds the outcome of a completed stop cycle. An empty
// Transcript means no speech was detected, which is a success.
type StopResult struct {
	Transcript string
	Duration   time.Duration
}
