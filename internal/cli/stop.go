package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/marcandre259/dictate/internal/domain/dictation"
	"github.com/marcandre259/dictate/internal/output"
)

func NewStopCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop recording, transcribe, and deliver the text",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stderr)

			result, err := deps.App.Stop.Execute(cmd.Context())
			reportStop(formatter, result)
			return err
		},
	}
}

// reportStop prints the stop outcome; shared with the toggle command.
// Delivery may partially fail with a result still present, so the result
// is reported independently of the returned error.
func reportStop(formatter *output.Formatter, result *dictation.StopResult) {
	if result == nil {
		return
	}
	formatter.RecordingStopped(result.Duration)
	if result.Transcript == "" {
		formatter.NoSpeech()
	} else {
		formatter.Transcript(result.Transcript)
	}
}
