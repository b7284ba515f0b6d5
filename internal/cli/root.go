package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DreamwareDevelopment/timescape/internal/store"
)

type App struct {
	Dir string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "timescape",
		Short:        "Compose a date/time from independently editable fields",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Open the interactive picker
  timescape

  # Date only, bounded to the past
  timescape pick --date-only --max now

  # Review previous picks
  timescape log
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive picker with defaults.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runPick(cmd, app, pickFlags{save: true})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("TIMESCAPE_DIR", ""), "Path to the data dir (default: ~/.timescape)")

	cmd.AddCommand(newPickCmd(app))
	cmd.AddCommand(newLogCmd(app))
	cmd.AddCommand(newDocsCmd())

	return cmd
}

func (app *App) store() (store.Store, error) {
	dir := strings.TrimSpace(app.Dir)
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return store.Store{}, err
		}
		dir = d
	}
	return store.Store{Dir: dir}, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
