package dictation

import "errors"

var (
	// ErrNotRecording is returned by stop when no capture session exists.
	// Deliberately an error rather than a no-op so misuse is visible.
	ErrNotRecording = errors.New("no recording in progress")

	// ErrArtifactMissing is returned when the capture process terminated
	// without producing an audio file.
	ErrArtifactMissing = errors.New("recording file not found")

	// ErrTranscriptionFailed wraps any abnormal termination of the
	// transcription engine. Delivery never runs after it.
	ErrTranscriptionFailed = errors.New("transcription failed")

	// Delivery-stage partial failures. Clipboard and history are
	// independent best-effort steps; either error is surfaced without
	// suppressing the other step.
	ErrClipboardWrite = errors.New("clipboard write failed")
	ErrHistoryWrite   = errors.New("history write failed")
)
