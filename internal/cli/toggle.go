package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/marcandre259/dictate/internal/domain/dictation"
	"github.com/marcandre259/dictate/internal/notify"
	"github.com/marcandre259/dictate/internal/output"
)

func NewToggleCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Start or stop recording based on current state",
		Long:  "Performs exactly one of start/stop. This is the command to bind to a hotkey or menu item.",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stderr)

			state, result, err := deps.App.Toggle.Execute(cmd.Context())
			if state == dictation.StateRecording {
				reportStop(formatter, result)
				return err
			}

			if err != nil {
				notify.Send("Dictate", "Recording failed: "+err.Error())
				return err
			}
			formatter.RecordingStarted()
			return nil
		},
	}
}
