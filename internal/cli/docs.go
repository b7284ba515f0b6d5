package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DreamwareDevelopment/timescape/internal/docs"
	"github.com/DreamwareDevelopment/timescape/internal/tui"
)

func newDocsCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show on-demand documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, p := range docs.Pages() {
					fmt.Fprintf(out, "%-8s %s\n", p.Topic, p.Summary)
				}
				return nil
			}

			page, ok := docs.Find(args[0])
			if !ok {
				return fmt.Errorf("unknown docs topic: %q (run `timescape docs` to list topics)", args[0])
			}
			if raw {
				fmt.Fprint(out, page.Body())
				return nil
			}
			fmt.Fprintln(out, tui.RenderMarkdown(page.Body(), 78))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown")

	return cmd
}
