package audio

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WaitForFile blocks until path exists and has seen no writes for the
// quiet window, or until timeout elapses. It reports whether the file
// exists when the wait ends. Used after signaling the recorder: the
// process is not our child, so we cannot wait on it directly.
func WaitForFile(path string, quiet, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return waitPoll(path, deadline)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(path)); err != nil {
		return waitPoll(path, deadline)
	}

	lastWrite := time.Now()
	for time.Now().Before(deadline) {
		if time.Since(lastWrite) >= quiet && fileExists(path) {
			return true
		}
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return waitPoll(path, deadline)
			}
			if ev.Name == path && ev.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				lastWrite = time.Now()
			}
		case _, ok := <-w.Errors:
			if !ok {
				return waitPoll(path, deadline)
			}
		case <-time.After(50 * time.Millisecond):
		}
	}
	return fileExists(path)
}

// waitPoll is the fallback when no watcher is available: consider the
// file final once its size stops changing between polls.
func waitPoll(path string, deadline time.Time) bool {
	var lastSize int64 = -1
	for time.Now().Before(deadline) {
		if info, err := os.Stat(path); err == nil {
			if info.Size() == lastSize {
				return true
			}
			lastSize = info.Size()
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fileExists(path)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
