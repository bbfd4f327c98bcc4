// Package transcriber converts finished WAV recordings into text.
package transcriber

import "context"

// Transcriber is the contract with the external transcription engine.
// An empty string with a nil error means no speech was recognized and is
// distinct from a failure.
type Transcriber interface {
	Transcribe(ctx context.Context, wavPath string) (string, error)
}
