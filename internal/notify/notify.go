// Package notify shows desktop notifications. They are a convenience for
// hotkey-driven use where no terminal is visible, not part of the
// contract; failures are ignored.
package notify

import "github.com/gen2brain/beeep"

func Send(title, message string) {
	_ = beeep.Notify(title, message, "")
}
