package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/marcandre259/dictate/config"
	"github.com/marcandre259/dictate/internal/app"
	"github.com/marcandre259/dictate/internal/version"
)

type Dependencies struct {
	App    *app.App
	Config *config.Config
	Logger *slog.Logger
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dictate",
		Short: "Toggle voice dictation from a hotkey",
		Long: "A local dictation toggle: one invocation starts microphone capture,\n" +
			"the next stops it, transcribes the audio, and puts the text on the\n" +
			"clipboard and at your cursor. Bind 'dictate toggle' to a hotkey.",
		SilenceUsage: true,
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.AddCommand(NewStartCmd(deps))
	rootCmd.AddCommand(NewStopCmd(deps))
	rootCmd.AddCommand(NewToggleCmd(deps))
	rootCmd.AddCommand(NewHistoryCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}
