package tui

import (
	"strings"
	"testing"
)

func TestRenderMarkdownEmptyInput(t *testing.T) {
	if got := RenderMarkdown("   \n", 40); got != "" {
		t.Fatalf("blank markdown renders empty, got %q", got)
	}
}

func TestRenderHelpShowsKeyBindings(t *testing.T) {
	out := renderHelp(120)
	if out == "" {
		t.Fatalf("help overlay must render the key-binding page")
	}
	if !strings.Contains(out, "Keys") {
		t.Fatalf("overlay is missing the page heading")
	}
	if strings.HasSuffix(out, "\n") {
		t.Fatalf("rendered help must not end in a newline")
	}

	// Same width and background reuse the built renderer.
	if again := renderHelp(120); again != out {
		t.Fatalf("repeated render at one width must be stable")
	}
}
