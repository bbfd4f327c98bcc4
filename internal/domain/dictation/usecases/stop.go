package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/marcandre259/dictate/internal/audio"
	"github.com/marcandre259/dictate/internal/domain/dictation"
	"github.com/marcandre259/dictate/internal/session"
	"github.com/marcandre259/dictate/internal/transcriber"
)

// Deliverer runs the side effects for a non-empty transcript.
type Deliverer interface {
	Deliver(text string) error
}

// Stop terminates the capture session, transcribes the recording, and
// delivers the text.
type Stop struct {
	Sessions      *session.Store
	Recorder      CaptureController
	Transcriber   transcriber.Transcriber
	Delivery      Deliverer
	RecordingPath string
	StopGrace     time.Duration
	SilenceRMS    float64
	Logger        *slog.Logger
}

func (s *Stop) Execute(ctx context.Context) (*dictation.StopResult, error) {
	sess, err := s.Sessions.Load()
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, dictation.ErrNotRecording
	}

	// Consume the session record before the process dies: a crash
	// mid-stop must not leave a record pointing at a dead recorder.
	if err := s.Sessions.Clear(); err != nil {
		return nil, err
	}

	// SIGTERM lets the recorder write proper WAV headers. The process
	// may already be gone; that reconciles silently.
	_ = s.Recorder.SignalStop(sess.PID)

	if !audio.WaitForFile(s.RecordingPath, quietWindow(s.StopGrace), s.StopGrace) {
		return nil, dictation.ErrArtifactMissing
	}

	result := &dictation.StopResult{Duration: time.Since(sess.StartedAt)}

	if audio.Silent(s.RecordingPath, s.SilenceRMS) {
		s.discardArtifact(result)
		return result, nil
	}

	text, err := s.Transcriber.Transcribe(ctx, s.RecordingPath)
	if err != nil {
		// The artifact is kept for inspection; the next start removes it.
		return nil, fmt.Errorf("%w: %v", dictation.ErrTranscriptionFailed, err)
	}

	if text == "" {
		s.discardArtifact(result)
		return result, nil
	}

	result.Transcript = text
	s.Logger.Info("transcribed", "chars", len(text), "text", text)

	deliverErr := s.Delivery.Deliver(text)
	if err := os.Remove(s.RecordingPath); err != nil && !os.IsNotExist(err) {
		s.Logger.Warn("could not remove recording", "path", s.RecordingPath, "error", err)
	}
	return result, deliverErr
}

// discardArtifact handles the silence outcome: success, no side effects.
func (s *Stop) discardArtifact(result *dictation.StopResult) {
	s.Logger.Info("no speech detected", "duration", result.Duration)
	if err := os.Remove(s.RecordingPath); err != nil && !os.IsNotExist(err) {
		s.Logger.Warn("could not remove recording", "path", s.RecordingPath, "error", err)
	}
}

// quietWindow derives the write-quiescence window from the grace period,
// keeping it well under the hard deadline.
func quietWindow(grace time.Duration) time.Duration {
	quiet := grace / 4
	if quiet > 200*time.Millisecond {
		quiet = 200 * time.Millisecond
	}
	return quiet
}
