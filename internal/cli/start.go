package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/marcandre259/dictate/internal/notify"
	"github.com/marcandre259/dictate/internal/output"
)

func NewStartCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start capturing microphone audio",
		Long:  "Spawn the background recorder. The recording keeps running after this command exits; use 'dictate stop' to finish.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Stdout carries no payload for lifecycle commands; status
			// goes to stderr so callers can pipe cleanly.
			formatter := output.NewFormatter(os.Stderr)

			if err := deps.App.Start.Execute(); err != nil {
				notify.Send("Dictate", "Recording failed: "+err.Error())
				return err
			}

			formatter.RecordingStarted()
			return nil
		},
	}
}
