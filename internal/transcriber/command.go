package transcriber

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Command runs an external transcription command on the WAV file. The
// file path is appended as the last argument; stdout is the transcript.
type Command struct {
	Argv    []string
	Timeout time.Duration
}

func NewCommand(argv []string, timeout time.Duration) *Command {
	return &Command{Argv: argv, Timeout: timeout}
}

func (c *Command) Transcribe(ctx context.Context, wavPath string) (string, error) {
	if len(c.Argv) == 0 {
		return "", errors.New("transcribe command not configured")
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	args := append(append([]string{}, c.Argv[1:]...), wavPath)
	cmd := exec.CommandContext(ctx, c.Argv[0], args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("timed out after %s", c.Timeout)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%w: %s", err, msg)
		}
		return "", err
	}

	return strings.TrimSpace(stdout.String()), nil
}
