package usecases

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/marcandre259/dictate/internal/session"
)

// CaptureController starts and signals the external capture process.
type CaptureController interface {
	Check() error
	StartBackground(outputPath string) (pid int, err error)
	SignalStop(pid int) error
}

// Start begins a new capture session.
type Start struct {
	Sessions      *session.Store
	Recorder      CaptureController
	RecordingPath string
	Logger        *slog.Logger
}

// Execute spawns the detached capture process and records its identity.
// A leftover session, live or stale, is reconciled first rather than
// treated as an error.
func (s *Start) Execute() error {
	if sess, err := s.Sessions.Load(); err == nil && sess != nil {
		if s.Sessions.Alive(sess) {
			s.Logger.Info("terminating previous capture", "pid", sess.PID)
			_ = s.Recorder.SignalStop(sess.PID)
		}
		if err := s.Sessions.Clear(); err != nil {
			return err
		}
	}

	// No audio from a previous session may leak into this one.
	if err := os.Remove(s.RecordingPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stale recording: %w", err)
	}

	if err := s.Recorder.Check(); err != nil {
		return err
	}

	pid, err := s.Recorder.StartBackground(s.RecordingPath)
	if err != nil {
		return fmt.Errorf("starting recording: %w", err)
	}

	sess := &session.Session{PID: pid, StartedAt: time.Now()}
	if err := s.Sessions.Save(sess); err != nil {
		_ = s.Recorder.SignalStop(pid)
		return fmt.Errorf("saving session: %w", err)
	}

	s.Logger.Info("recording started", "pid", pid, "path", s.RecordingPath)
	return nil
}
