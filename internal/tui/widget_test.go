package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DreamwareDevelopment/timescape/internal/compose"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeDigits(t *testing.T, m Model, digits string) Model {
	t.Helper()
	for _, r := range digits {
		mAny, _ := m.Update(keyRune(r))
		m = mAny.(Model)
	}
	return m
}

func dateOnlyModel() Model {
	return NewModel(Config{
		Units: []compose.Unit{compose.Days, compose.Months, compose.Years},
	})
}

func TestTypingCommitsAndAdvances(t *testing.T) {
	m := dateOnlyModel()

	if u, ok := m.focusedUnit(); !ok || u != compose.Days {
		t.Fatalf("group focus lands on the first unset field, got %v ok=%v", u, ok)
	}

	m = typeDigits(t, m, "5")
	if m.Composer().Lookup(compose.Days).Unset() {
		t.Fatalf("day 5 commits on a single digit")
	}
	if u, _ := m.focusedUnit(); u != compose.Months {
		t.Fatalf("focus advances to months, got %v", u)
	}

	m = typeDigits(t, m, "12")
	if u, _ := m.focusedUnit(); u != compose.Years {
		t.Fatalf("focus advances to years, got %v", u)
	}

	m = typeDigits(t, m, "2025")
	d, ok := m.Composer().Date()
	if !ok {
		t.Fatalf("composite must be complete after all fields commit")
	}
	if d.Year() != 2025 || d.Month() != time.December || d.Day() != 5 {
		t.Fatalf("composed %v, want 2025-12-05", d)
	}
}

func TestArrowKeysStepFocusedField(t *testing.T) {
	seed := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local)
	m := NewModel(Config{
		Units:   []compose.Unit{compose.Days, compose.Months, compose.Years},
		Initial: &seed,
	})

	mAny, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = mAny.(Model)

	d, ok := m.Composer().Date()
	if !ok || d.Day() != 16 {
		t.Fatalf("up steps the focused day: got %v ok=%v", d, ok)
	}

	mAny, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = mAny.(Model)
	if d, _ := m.Composer().Date(); d.Day() != 15 {
		t.Fatalf("down steps back, got %v", d)
	}
}

func TestLeftRightWrapInsideWidget(t *testing.T) {
	m := dateOnlyModel()

	mAny, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = mAny.(Model)
	if u, _ := m.focusedUnit(); u != compose.Years {
		t.Fatalf("left from the first field wraps to the last, got %v", u)
	}

	mAny, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = mAny.(Model)
	if u, _ := m.focusedUnit(); u != compose.Days {
		t.Fatalf("right from the last field wraps to the first, got %v", u)
	}
}

func TestTabPastLastFieldAccepts(t *testing.T) {
	m := dateOnlyModel()
	m = typeDigits(t, m, "5") // day commits, focus on months
	m = typeDigits(t, m, "7") // month commits, focus on years
	m = typeDigits(t, m, "2025")

	mAny, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = mAny.(Model)

	if !m.Accepted {
		t.Fatalf("tab at the boundary accepts a complete composite")
	}
	if cmd == nil {
		t.Fatalf("accept must quit the program")
	}
	if m.Chosen.Day() != 5 || m.Chosen.Month() != time.July || m.Chosen.Year() != 2025 {
		t.Fatalf("chosen %v, want 2025-07-05", m.Chosen)
	}
}

func TestAcceptFlushesPendingBuffer(t *testing.T) {
	seed := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local)
	m := NewModel(Config{
		Units:   []compose.Unit{compose.Days, compose.Months, compose.Years},
		Initial: &seed,
	})

	// A single "1" in the day field is still buffered; accepting must
	// flush it into a committed value first.
	m = typeDigits(t, m, "1")
	mAny, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = mAny.(Model)

	if !m.Accepted {
		t.Fatalf("accept after flush")
	}
	if m.Chosen.Day() != 1 {
		t.Fatalf("buffered 1 flushed into day, got %d", m.Chosen.Day())
	}
}

func TestIncompleteAcceptStays(t *testing.T) {
	m := dateOnlyModel()
	mAny, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = mAny.(Model)
	if m.Accepted || cmd != nil {
		t.Fatalf("an incomplete composite cannot be accepted")
	}
	if !strings.Contains(m.View(), "incomplete") {
		t.Fatalf("view must call out missing fields")
	}
}

func TestEscCancels(t *testing.T) {
	m := dateOnlyModel()
	mAny, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = mAny.(Model)
	if m.Accepted {
		t.Fatalf("esc must not accept")
	}
	if cmd == nil {
		t.Fatalf("esc quits")
	}
}

func TestWheelStepsWhenEnabled(t *testing.T) {
	seed := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local)
	m := NewModel(Config{
		Units:   []compose.Unit{compose.Days, compose.Months, compose.Years},
		Options: compose.Options{WheelControl: true},
		Initial: &seed,
	})

	mAny, _ := m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	m = mAny.(Model)
	if d, _ := m.Composer().Date(); d.Day() != 16 {
		t.Fatalf("wheel up steps the focused field, got %v", d)
	}
}

func TestWheelIgnoredWhenDisabled(t *testing.T) {
	seed := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local)
	m := NewModel(Config{
		Units:   []compose.Unit{compose.Days, compose.Months, compose.Years},
		Initial: &seed,
	})

	mAny, _ := m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	m = mAny.(Model)
	if d, _ := m.Composer().Date(); d.Day() != 15 {
		t.Fatalf("wheel must be inert unless enabled, got %v", d)
	}
}

func TestSeparatorsFollowFieldKinds(t *testing.T) {
	if got := separatorBetween(compose.Days, compose.Months); got != "/" {
		t.Fatalf("date/date separator = %q", got)
	}
	if got := separatorBetween(compose.Hours, compose.Minutes); got != ":" {
		t.Fatalf("time/time separator = %q", got)
	}
	if got := separatorBetween(compose.Years, compose.Hours); got != "  " {
		t.Fatalf("date/time separator = %q", got)
	}
	if got := separatorBetween(compose.Minutes, compose.AmPm); got != " " {
		t.Fatalf("am/pm separator = %q", got)
	}
}
