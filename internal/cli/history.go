package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcandre259/dictate/internal/delivery"
	"github.com/marcandre259/dictate/internal/output"
)

func NewHistoryCmd(deps *Dependencies) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent transcripts",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := delivery.Tail(deps.Config.HistoryPath, limit)
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				output.NewFormatter(os.Stderr).Info("No transcripts yet")
				return nil
			}

			for _, line := range entries {
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of entries to show (0 for all)")

	return cmd
}
