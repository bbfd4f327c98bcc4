// Package audio controls the external capture subprocess and inspects
// the WAV artifact it produces.
package audio

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

// Recorder spawns and signals the capture binary (sox's rec by default).
type Recorder struct {
	binary     string
	sampleRate int
	channels   int
	bitDepth   int
}

func NewRecorder(binary string, sampleRate, channels, bitDepth int) *Recorder {
	return &Recorder{
		binary:     binary,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
	}
}

// Check verifies the capture binary is installed.
func (r *Recorder) Check() error {
	if _, err := exec.LookPath(r.binary); err != nil {
		return fmt.Errorf("%s not found. Install with: brew install sox", r.binary)
	}
	return nil
}

// StartBackground spawns the capture process writing PCM WAV to
// outputPath and returns its PID. The child runs in its own session and
// keeps recording after this invocation exits; ownership of its lifetime
// is given up immediately.
func (r *Recorder) StartBackground(outputPath string) (int, error) {
	cmd := exec.Command(r.binary,
		"-r", strconv.Itoa(r.sampleRate),
		"-c", strconv.Itoa(r.channels),
		"-b", strconv.Itoa(r.bitDepth),
		outputPath,
	)
	// Detach from the controlling terminal so the recorder survives the
	// start invocation and any hotkey-helper shell around it.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return 0, err
	}

	pid := cmd.Process.Pid
	_ = cmd.Process.Release()
	return pid, nil
}

// SignalStop sends SIGTERM so the recorder can flush and write valid WAV
// framing. A forceful kill would corrupt the artifact.
func (r *Recorder) SignalStop(pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return proc.Signal(syscall.SIGTERM)
}
