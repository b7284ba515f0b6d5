package tui

import (
	"strings"
	"time"

	"github.com/DreamwareDevelopment/timescape/internal/compose"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// Config selects which fields the widget shows and how the composer behaves.
type Config struct {
	// Units in visual order, left to right.
	Units []compose.Unit

	Options compose.Options

	// Initial seeds the composite; nil starts with every field unset.
	Initial *time.Time

	Title string
}

// fieldSlot backs one field's port with a textinput. Slots are shared by
// pointer across model copies so port writes survive bubbletea's
// value-semantics update cycle.
type fieldSlot struct {
	unit  compose.Unit
	input textinput.Model
}

// focusState is shared across model copies; composer-driven focus changes
// land here via slotPort.Focus.
type focusState struct {
	unit compose.Unit
	ok   bool
}

type slotPort struct {
	slot  *fieldSlot
	focus *focusState
}

func (p slotPort) Read() string { return p.slot.input.Value() }

func (p slotPort) Write(value string) {
	p.slot.input.SetValue(value)
	p.slot.input.CursorEnd()
}

func (p slotPort) Focus() {
	p.focus.unit = p.slot.unit
	p.focus.ok = true
}

// Model is the date/time picker widget.
type Model struct {
	composer *compose.Composer
	slots    []*fieldSlot
	focus    *focusState

	title    string
	width    int
	showHelp bool

	// Outcome, read by the caller after Run.
	Accepted bool
	Chosen   time.Time
}

func placeholderFor(u compose.Unit) string {
	switch u {
	case compose.Days:
		return "dd"
	case compose.Months:
		return "mm"
	case compose.Years:
		return "yyyy"
	case compose.Hours:
		return "hh"
	case compose.Minutes:
		return "mm"
	case compose.Seconds:
		return "ss"
	case compose.AmPm:
		return "--"
	default:
		return "??"
	}
}

// NewModel builds the widget and its composer, registering one port per
// configured unit in visual order.
func NewModel(cfg Config) Model {
	var c *compose.Composer
	if cfg.Initial != nil {
		c = compose.NewAt(*cfg.Initial, cfg.Options)
	} else {
		c = compose.New(cfg.Options)
	}

	m := Model{
		composer: c,
		focus:    &focusState{},
		title:    cfg.Title,
		width:    60,
	}
	for _, u := range cfg.Units {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholderFor(u)
		ti.CharLimit = u.DisplayWidth()
		ti.Width = u.DisplayWidth()
		slot := &fieldSlot{unit: u, input: ti}
		m.slots = append(m.slots, slot)
		c.RegisterField(slotPort{slot: slot, focus: m.focus}, u, false)
	}
	// Group-level focus: the first unset field takes it.
	c.FocusFirst()
	m.applyFocus()
	return m
}

// Composer exposes the underlying composer (tests, embedding).
func (m Model) Composer() *compose.Composer { return m.composer }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) slotFor(u compose.Unit) *fieldSlot {
	for _, s := range m.slots {
		if s.unit == u {
			return s
		}
	}
	return nil
}

func (m Model) focusedUnit() (compose.Unit, bool) {
	return m.focus.unit, m.focus.ok
}

// applyFocus mirrors the composer-selected focus onto the textinputs.
func (m *Model) applyFocus() {
	for _, s := range m.slots {
		if m.focus.ok && s.unit == m.focus.unit {
			s.input.Focus()
		} else {
			s.input.Blur()
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if u, ok := m.focusedUnit(); ok {
				m.composer.Wheel(u, 1)
			}
		case tea.MouseButtonWheelDown:
			if u, ok := m.focusedUnit(); ok {
				m.composer.Wheel(u, -1)
			}
		}
		m.applyFocus()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cur, focused := m.focusedUnit()

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.Accepted = false
		return m, tea.Quit

	case tea.KeyCtrlS:
		return m.accept()

	case tea.KeyUp:
		if focused {
			m.composer.ArrowUp(cur)
		}
	case tea.KeyDown:
		if focused {
			m.composer.ArrowDown(cur)
		}
	case tea.KeyLeft:
		if focused {
			m.composer.FocusNext(cur, -1, true)
		}
	case tea.KeyRight, tea.KeyEnter:
		if focused {
			m.composer.FocusNext(cur, 1, true)
		}
	case tea.KeyTab:
		if focused && !m.composer.Tab(cur, false) {
			// Boundary: nothing beyond the widget in a dedicated
			// picker, so tabbing out accepts.
			return m.accept()
		}
	case tea.KeyShiftTab:
		if focused {
			m.composer.Tab(cur, true)
		}
	case tea.KeyBackspace:
		if focused {
			m.composer.Backspace(cur)
		}
	case tea.KeyDelete:
		if focused {
			m.composer.Delete(cur)
		}

	case tea.KeyRunes:
		for _, r := range msg.Runes {
			switch {
			case r >= '0' && r <= '9':
				if focused {
					m.composer.Digit(cur, int(r-'0'))
					cur, focused = m.focusedUnit()
				}
			case r == 'a' || r == 'A' || r == 'p' || r == 'P':
				if focused {
					m.composer.Letter(cur, r)
					cur, focused = m.focusedUnit()
				}
			case r == '?':
				m.showHelp = !m.showHelp
			}
		}
	}

	m.applyFocus()
	return m, nil
}

func (m Model) accept() (tea.Model, tea.Cmd) {
	// Flush any still-buffered digits before deciding completeness.
	if cur, ok := m.focusedUnit(); ok {
		fin := m.composer.FocusOut(cur)
		fin()
	}
	if t, ok := m.composer.Date(); ok {
		m.Accepted = true
		m.Chosen = t
		return m, tea.Quit
	}
	// Incomplete composite: stay and let the footer show what is missing.
	m.applyFocus()
	return m, nil
}

// separatorBetween picks the glyph rendered between two adjacent fields.
func separatorBetween(a, b compose.Unit) string {
	dateUnit := func(u compose.Unit) bool {
		return u == compose.Days || u == compose.Months || u == compose.Years
	}
	switch {
	case b == compose.AmPm:
		return " "
	case dateUnit(a) && dateUnit(b):
		return "/"
	case !dateUnit(a) && !dateUnit(b):
		return ":"
	default:
		return "  "
	}
}

func (m Model) renderSlot(s *fieldSlot) string {
	focused := m.focus.ok && m.focus.unit == s.unit
	text := s.input.Value()
	if text == "" {
		if focused {
			return styleFieldFocused().Render(s.input.Placeholder)
		}
		return stylePlaceholder().Render(s.input.Placeholder)
	}
	if focused {
		return styleFieldFocused().Render(text)
	}
	return styleField().Render(text)
}

func (m Model) fieldLine() string {
	var b strings.Builder
	for i, s := range m.slots {
		if i > 0 {
			b.WriteString(styleSeparator().Render(separatorBetween(m.slots[i-1].unit, s.unit)))
		}
		b.WriteString(m.renderSlot(s))
	}
	line := b.String()
	if m.width > 0 && xansi.StringWidth(line) > m.width {
		// Never exceed the terminal width; terminate ANSI styling to
		// prevent bleed.
		line = xansi.Cut(line, 0, m.width) + "\x1b[0m"
	}
	return line
}

func (m Model) missingUnits() []string {
	var out []string
	for _, f := range m.composer.Fields() {
		if f.Unset() {
			out = append(out, f.Unit().String())
		}
	}
	return out
}

func (m Model) View() string {
	var b strings.Builder
	title := m.title
	if title == "" {
		title = "Pick a date/time"
	}
	b.WriteString(styleTitle().Render(title))
	b.WriteString("\n\n  ")
	b.WriteString(m.fieldLine())
	b.WriteString("\n\n")

	if missing := m.missingUnits(); len(missing) > 0 {
		b.WriteString(styleWarn().Render("incomplete: " + strings.Join(missing, ", ")))
		b.WriteString("\n")
	} else if t, ok := m.composer.Date(); ok {
		b.WriteString(styleMuted().Render(t.Format("Mon, 02 Jan 2006 15:04:05")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleMuted().Render("type digits · ←/→ move · ↑/↓ step · ctrl+s accept · esc cancel · ? help"))

	if m.showHelp {
		b.WriteString("\n\n")
		b.WriteString(renderHelp(m.width))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// Run opens the widget full-screen and returns the final model.
func Run(cfg Config) (Model, error) {
	applyColorProfilePreference()
	applyThemePreference()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Options.WheelControl {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	out, err := tea.NewProgram(NewModel(cfg), opts...).Run()
	if err != nil {
		return Model{}, err
	}
	return out.(Model), nil
}
