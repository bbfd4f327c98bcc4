package cli

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcandre259/dictate/config"
	"github.com/marcandre259/dictate/internal/output"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)
			cfg := deps.Config
			ok := true

			if _, err := exec.LookPath(cfg.Recorder); err != nil {
				f.SetupCheck(cfg.Recorder, false, "not found. Install with: brew install sox")
				ok = false
			} else {
				f.SetupCheck(cfg.Recorder, true, "installed")
			}

			switch cfg.Engine {
			case config.EngineWhisper:
				if cfg.WhisperURL == "" {
					f.SetupCheck("transcription server", false, "whisper_url not set. Add whisper_url to config or set DICTATE_WHISPER_URL")
					ok = false
				} else {
					f.SetupCheck("transcription server", true, cfg.WhisperURL)
				}
			default:
				if len(cfg.TranscribeCommand) == 0 {
					f.SetupCheck("transcribe command", false, "not set. Add transcribe_command to config or set DICTATE_TRANSCRIBE_COMMAND")
					ok = false
				} else if _, err := exec.LookPath(cfg.TranscribeCommand[0]); err != nil {
					f.SetupCheck("transcribe command", false, cfg.TranscribeCommand[0]+" not found on PATH")
					ok = false
				} else {
					f.SetupCheck("transcribe command", true, strings.Join(cfg.TranscribeCommand, " "))
				}
			}

			f.SetupCheck("state directory", writable(cfg.StateDir), cfg.StateDir)
			f.SetupCheck("recording path", writable(filepath.Dir(cfg.RecordingPath)), cfg.RecordingPath)
			f.SetupCheck("history log", true, cfg.HistoryPath)

			if ok {
				f.Success("\nAll prerequisites met. Bind 'dictate toggle' to a hotkey and speak!")
			} else {
				f.Warning("\nSome prerequisites are missing.")
			}
			return nil
		},
	}
}

func writable(dir string) bool {
	tmp, err := os.CreateTemp(dir, ".dictate-doctor-*")
	if err != nil {
		return false
	}
	tmp.Close()
	os.Remove(tmp.Name())
	return true
}
