// Package delivery sequences the side effects run once transcript text
// is available: clipboard write, history append, synthetic paste.
package delivery

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"

	"github.com/marcandre259/dictate/internal/domain/dictation"
)

// Pipeline delivers non-empty transcript text to the user's focus point.
// Clipboard and history are independent best-effort steps: both always
// run, and their failures are joined into the returned error. The paste
// keystroke only fires when the clipboard write succeeded, since pasting
// after a failed write would insert stale clipboard content.
type Pipeline struct {
	HistoryPath string
	Paste       bool
	Logger      *slog.Logger

	writeClipboard func(string) error
	sendPaste      func() error
	now            func() time.Time
}

func NewPipeline(historyPath string, paste bool, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		HistoryPath:    historyPath,
		Paste:          paste,
		Logger:         logger,
		writeClipboard: clipboard.WriteAll,
		sendPaste:      pasteKeystroke,
		now:            time.Now,
	}
}

func (p *Pipeline) Deliver(text string) error {
	var errs []error

	clipOK := true
	if err := p.writeClipboard(text); err != nil {
		clipOK = false
		errs = append(errs, fmt.Errorf("%w: %v", dictation.ErrClipboardWrite, err))
	}

	if err := AppendHistory(p.HistoryPath, p.now(), text); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", dictation.ErrHistoryWrite, err))
	}

	if clipOK && p.Paste {
		// Fire-and-forget; there is no recoverable failure mode here.
		if err := p.sendPaste(); err != nil {
			p.Logger.Warn("paste keystroke failed", "error", err)
		}
	}

	return errors.Join(errs...)
}
