package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/DreamwareDevelopment/timescape/internal/tui"
)

func newLogCmd(app *App) *cobra.Command {
	var (
		limit       int
		clear       bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show previously picked instants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.store()
			if err != nil {
				return err
			}

			if clear {
				return s.Clear(cmd.Context())
			}

			picks, err := s.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if interactive {
				chosen, err := tui.BrowseHistory(picks)
				if err != nil {
					return err
				}
				if chosen != nil {
					fmt.Fprintln(cmd.OutOrStdout(), chosen.Chosen.Format(time.RFC3339))
				}
				return nil
			}

			for _, p := range picks {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t(picked %s)\n",
					p.Chosen.Format(time.RFC3339),
					p.PickedAt.Local().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Max entries to show (0 = all)")
	cmd.Flags().BoolVar(&clear, "clear", false, "Delete all history")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse history in a list")

	return cmd
}
