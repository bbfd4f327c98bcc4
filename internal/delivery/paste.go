package delivery

import (
	"runtime"
	"time"

	"github.com/micmonay/keybd_event"
)

// pasteKeystroke sends the platform paste chord (Cmd+V on macOS, Ctrl+V
// elsewhere) at the current input focus.
func pasteKeystroke() error {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return err
	}

	if runtime.GOOS == "darwin" {
		kb.HasSuper(true)
	} else {
		kb.HasCTRL(true)
	}
	kb.SetKeys(keybd_event.VK_V)

	// Give the hotkey handler that invoked us time to release its own
	// modifiers, otherwise they combine with the chord.
	time.Sleep(80 * time.Millisecond)
	return kb.Launching()
}
