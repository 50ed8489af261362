// Package tui is the interactive terminal front end for the converter.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/raphaelgruber/unitconv/internal/converter"
	"github.com/raphaelgruber/unitconv/internal/units"
)

// focus is the control receiving keys.
type focus int

const (
	focusValue focus = iota
	focusFrom
	focusTo
	numFocus
)

// Model is the bubbletea model for the converter screen. All converter
// state lives in state and changes only through converter.Reduce.
type Model struct {
	state  converter.State
	input  textinput.Model
	focus  focus
	cursor int // highlighted row of the open menu
	theme  Theme
	logger *slog.Logger
	quit   bool
}

// New creates a model starting from s. A nil logger discards logs.
func New(s converter.State, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ti := textinput.New()
	ti.Placeholder = "Enter Value"
	ti.Prompt = "> "
	ti.SetValue(s.Input)
	ti.Focus()

	return Model{
		state:  s,
		input:  ti,
		theme:  defaultTheme,
		logger: logger.With("session", uuid.New().String()[:8]),
	}
}

// State returns the current converter state.
func (m Model) State() converter.State {
	return m.state
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c":
		m.quit = true
		return m, tea.Quit
	case "tab":
		return m.moveFocus(1), nil
	case "shift+tab":
		return m.moveFocus(-1), nil
	case "ctrl+s":
		return m.dispatch(converter.SwapUnits{}), nil
	}

	if m.menuOpen() {
		return m.updateMenu(key), nil
	}

	switch m.focus {
	case focusValue:
		return m.updateInput(msg)
	case focusFrom, focusTo:
		switch key.String() {
		case "enter", "space", " ", "down", "j":
			return m.openMenu(), nil
		case "s":
			return m.dispatch(converter.SwapUnits{}), nil
		case "q", "esc":
			m.quit = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// updateInput forwards a key to the text field and reduces any change.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.state.Input {
		m = m.dispatch(converter.InputChanged{Text: v})
	}
	return m, cmd
}

// updateMenu handles keys while a unit menu is open.
func (m Model) updateMenu(key tea.KeyPressMsg) Model {
	all := units.Units()
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(all)-1 {
			m.cursor++
		}
	case "enter", "space", " ":
		if m.focus == focusFrom {
			return m.dispatch(converter.SelectFrom{Unit: all[m.cursor]})
		}
		return m.dispatch(converter.SelectTo{Unit: all[m.cursor]})
	case "esc", "q":
		return m.dismissMenus()
	}
	return m
}

func (m Model) menuOpen() bool {
	return m.state.FromMenuOpen || m.state.ToMenuOpen
}

// openMenu opens the menu of the focused selector with its unit highlighted.
func (m Model) openMenu() Model {
	if m.focus == focusFrom {
		m.cursor = int(m.state.From)
		return m.dispatch(converter.ToggleFromMenu{})
	}
	m.cursor = int(m.state.To)
	return m.dispatch(converter.ToggleToMenu{})
}

func (m Model) dismissMenus() Model {
	if m.state.FromMenuOpen {
		m = m.dispatch(converter.DismissFromMenu{})
	}
	if m.state.ToMenuOpen {
		m = m.dispatch(converter.DismissToMenu{})
	}
	return m
}

func (m Model) moveFocus(delta int) Model {
	m = m.dismissMenus()
	m.focus = (m.focus + focus(delta) + numFocus) % numFocus
	if m.focus == focusValue {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	return m
}

// dispatch runs ev through the reducer and logs result changes.
func (m Model) dispatch(ev converter.Event) Model {
	prev := m.state
	m.state = converter.Reduce(m.state, ev)
	if m.state.Output != prev.Output || m.state.From != prev.From || m.state.To != prev.To {
		m.logger.Debug("conversion updated",
			"event", fmt.Sprintf("%T", ev),
			"input", m.state.Input,
			"from", m.state.From.Symbol(),
			"to", m.state.To.Symbol(),
			"output", m.state.Output)
	}
	return m
}

// View renders the converter screen.
func (m Model) View() tea.View {
	return tea.NewView(m.renderContent())
}

// renderContent builds the display string.
func (m Model) renderContent() string {
	if m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.titleStyle().Render("Unit Converter"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	from := m.theme.buttonStyle(m.focus == focusFrom).Render("From: " + m.state.From.String() + " ▾")
	to := m.theme.buttonStyle(m.focus == focusTo).Render("To: " + m.state.To.String() + " ▾")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, from, "  ", to))
	b.WriteString("\n")

	if m.menuOpen() {
		b.WriteString(m.renderMenu())
	}

	_, err := units.ParseNumber(m.state.Input)
	b.WriteString("\n")
	b.WriteString(m.theme.resultStyle(err == nil).Render("Result: " + m.state.Output))
	b.WriteString("\n")
	b.WriteString(m.theme.hintStyle().Render("Factor: " + units.FormatFloat(m.state.Factor())))
	b.WriteString("\n\n")
	b.WriteString(m.theme.hintStyle().Render("tab: next field • enter: open/select • ctrl+s: swap • ctrl+c: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderMenu() string {
	var b strings.Builder
	for i, u := range units.Units() {
		marker := "  "
		if i == m.cursor {
			marker = "› "
		}
		b.WriteString(m.theme.menuItemStyle(i == m.cursor).Render(marker + u.String()))
		b.WriteString("\n")
	}
	return b.String()
}

// Run runs the interactive converter and returns the final state.
func Run(initial converter.State, logger *slog.Logger) (converter.State, error) {
	p := tea.NewProgram(New(initial, logger))

	final, err := p.Run()
	if err != nil {
		return initial, fmt.Errorf("converter UI error: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.state, nil
	}
	return initial, nil
}
