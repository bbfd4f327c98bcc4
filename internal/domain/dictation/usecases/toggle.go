package usecases

import (
	"context"

	"github.com/marcandre259/dictate/internal/domain/dictation"
	"github.com/marcandre259/dictate/internal/session"
)

// Toggle dispatches to start or stop based on the current state.
type Toggle struct {
	Sessions *session.Store
	Start    *Start
	Stop     *Stop
}

// Execute runs stop when a live capture session exists and start
// otherwise. It returns the state the toggle observed; StateRecording
// means the stop branch ran and result is populated. A session record
// referencing a dead process reads as idle — start reconciles it.
func (t *Toggle) Execute(ctx context.Context) (dictation.State, *dictation.StopResult, error) {
	sess, err := t.Sessions.Load()
	if err == nil && sess != nil && t.Sessions.Alive(sess) {
		result, err := t.Stop.Execute(ctx)
		return dictation.StateRecording, result, err
	}

	return dictation.StateIdle, nil, t.Start.Execute()
}
