package cli

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/DreamwareDevelopment/timescape/internal/compose"
)

var (
	reDateOnly = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reDateTime = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[ T]\d{2}:\d{2}(:\d{2})?$`)
)

// parseInstant parses a flag value as a local wall-clock instant:
// - YYYY-MM-DD (midnight local)
// - YYYY-MM-DD HH:MM[:SS]
// - RFC3339 / RFC3339Nano (converted to local)
func parseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty datetime")
	}

	if reDateOnly.MatchString(s) {
		return time.ParseInLocation("2006-01-02", s, time.Local)
	}
	if reDateTime.MatchString(s) {
		s = strings.Replace(s, "T", " ", 1)
		layout := "2006-01-02 15:04"
		if strings.Count(s, ":") == 2 {
			layout = "2006-01-02 15:04:05"
		}
		return time.ParseInLocation(layout, s, time.Local)
	}
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return ts.Local(), nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.Local(), nil
	}

	return time.Time{}, fmt.Errorf("invalid datetime %q (expected YYYY-MM-DD, YYYY-MM-DD HH:MM[:SS], or RFC3339)", s)
}

// parseBound parses a min/max flag value. The literal "now" yields the
// current-instant bound, re-resolved at every validation rather than here.
func parseBound(s string) (*compose.Bound, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if strings.EqualFold(s, "now") {
		return compose.Now(), nil
	}
	t, err := parseInstant(s)
	if err != nil {
		return nil, err
	}
	return compose.At(t), nil
}
