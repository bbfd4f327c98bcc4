// Package session persists the identity of the running capture process
// across independent CLI invocations. The session file is the only
// synchronization primitive between start, stop, and toggle; overlapping
// invocations are out of contract.
package session

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/natefinch/atomic"
)

// Session identifies the currently running capture process.
type Session struct {
	PID       int       `json:"pid"`
	StartedAt time.Time `json:"started_at"`
}

// Store reads and writes the single-slot session record.
type Store struct {
	dir string
}

func NewStore(stateDir string) *Store {
	return &Store{dir: stateDir}
}

func (s *Store) path() string {
	return filepath.Join(s.dir, "session.json")
}

// Load returns the persisted session, or nil when none exists. A nil
// session means idle; callers still need Alive to rule out a stale record.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Save persists the session atomically (write-temp-then-rename), so a
// concurrent reader never observes a partial record.
func (s *Store) Save(sess *Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	return atomic.WriteFile(s.path(), bytes.NewReader(data))
}

// Clear removes the session record. Missing is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Alive reports whether the session's process still exists. A record
// referencing a dead PID is stale and must be read as idle.
func (s *Store) Alive(sess *Session) bool {
	if sess == nil || sess.PID <= 0 {
		return false
	}
	proc, err := os.FindProcess(sess.PID)
	if err != nil {
		return false
	}
	// Signal 0 performs the existence check without delivering anything.
	return proc.Signal(syscall.Signal(0)) == nil
}
