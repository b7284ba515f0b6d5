package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/DreamwareDevelopment/timescape/internal/docs"
)

// Help pages never wrap wider than this, even on wide terminals.
const helpWrapLimit = 78

// markdownSink renders help markdown at one width at a time, rebuilding its
// glamour renderer only when the width or background style changes. That is
// all the picker needs: the overlay follows the terminal width and the docs
// command uses a fixed one.
type markdownSink struct {
	mu    sync.Mutex
	width int
	style string
	r     *glamour.TermRenderer
}

var helpSink markdownSink

func (s *markdownSink) render(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width > helpWrapLimit {
		width = helpWrapLimit
	}
	if width < 10 {
		width = 10
	}
	style := "light"
	if lipgloss.HasDarkBackground() {
		style = "dark"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.r == nil || s.width != width || s.style != style {
		r, err := glamour.NewTermRenderer(
			// WithAutoStyle can block on terminal queries in some
			// setups; the detected background picks the style instead.
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		s.r, s.width, s.style = r, width, style
	}
	out, err := s.r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// RenderMarkdown renders a help page for the given output width, falling back
// to the raw markdown when the renderer cannot be built.
func RenderMarkdown(md string, width int) string {
	return helpSink.render(md, width)
}

func renderHelp(width int) string {
	return RenderMarkdown(docs.Keys(), width)
}
