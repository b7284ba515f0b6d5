package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/DreamwareDevelopment/timescape/internal/compose"
	"github.com/DreamwareDevelopment/timescape/internal/tui"
)

type pickFlags struct {
	initial string
	min     string
	max     string

	hour12   bool
	twoDigit bool
	wrap     bool
	snap     int
	wheel    bool
	strict   bool

	seconds  bool
	dateOnly bool
	timeOnly bool

	save bool
}

func newPickCmd(app *App) *cobra.Command {
	flags := pickFlags{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Interactively compose a date/time and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, app, flags)
		},
	}

	cmd.Flags().StringVar(&flags.initial, "initial", "", "Seed the fields with a datetime")
	cmd.Flags().StringVar(&flags.min, "min", "", "Lower bound (datetime or 'now')")
	cmd.Flags().StringVar(&flags.max, "max", "", "Upper bound (datetime or 'now')")
	cmd.Flags().BoolVar(&flags.hour12, "hour12", false, "12-hour clock with an am/pm field")
	cmd.Flags().BoolVar(&flags.twoDigit, "2-digit", false, "Zero-pad field display")
	cmd.Flags().BoolVar(&flags.wrap, "wrap", false, "Step fields within their own range (no carry)")
	cmd.Flags().IntVar(&flags.snap, "snap", 0, "Snap stepping onto multiples of N minutes/seconds")
	cmd.Flags().BoolVar(&flags.wheel, "wheel", false, "Enable mouse-wheel stepping")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Fields always hold a value (no clearing)")
	cmd.Flags().BoolVar(&flags.seconds, "seconds", false, "Include a seconds field")
	cmd.Flags().BoolVar(&flags.dateOnly, "date-only", false, "Only day/month/year fields")
	cmd.Flags().BoolVar(&flags.timeOnly, "time-only", false, "Only time fields")
	cmd.Flags().BoolVar(&flags.save, "save", true, "Append the accepted pick to the history")

	return cmd
}

func pickUnits(flags pickFlags) ([]compose.Unit, error) {
	if flags.dateOnly && flags.timeOnly {
		return nil, fmt.Errorf("--date-only and --time-only are mutually exclusive")
	}
	var units []compose.Unit
	if !flags.timeOnly {
		units = append(units, compose.Days, compose.Months, compose.Years)
	}
	if !flags.dateOnly {
		units = append(units, compose.Hours, compose.Minutes)
		if flags.seconds {
			units = append(units, compose.Seconds)
		}
		if flags.hour12 {
			units = append(units, compose.AmPm)
		}
	}
	return units, nil
}

func runPick(cmd *cobra.Command, app *App, flags pickFlags) error {
	units, err := pickUnits(flags)
	if err != nil {
		return err
	}

	opts := compose.Options{
		Hour12:          flags.hour12,
		WrapAround:      flags.wrap,
		WheelControl:    flags.wheel,
		DisallowPartial: flags.strict,
	}
	if flags.twoDigit {
		opts.Digits = compose.Digits2
	}
	if flags.snap > 0 {
		opts.SnapToStep = true
		opts.Steps = map[compose.Unit]int{
			compose.Minutes: flags.snap,
			compose.Seconds: flags.snap,
		}
	}
	if opts.Min, err = parseBound(flags.min); err != nil {
		return err
	}
	if opts.Max, err = parseBound(flags.max); err != nil {
		return err
	}

	cfg := tui.Config{Units: units, Options: opts}
	if flags.initial != "" {
		t, err := parseInstant(flags.initial)
		if err != nil {
			return err
		}
		cfg.Initial = &t
	}

	m, err := tui.Run(cfg)
	if err != nil {
		return err
	}
	if !m.Accepted {
		return fmt.Errorf("cancelled")
	}

	fmt.Fprintln(cmd.OutOrStdout(), m.Chosen.Format(time.RFC3339))

	if flags.save {
		s, err := app.store()
		if err != nil {
			return err
		}
		if err := s.Append(cmd.Context(), m.Chosen); err != nil {
			return err
		}
	}
	return nil
}
