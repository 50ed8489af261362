package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/raphaelgruber/unitconv/internal/converter"
	"github.com/raphaelgruber/unitconv/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	keyTab      = tea.KeyPressMsg{Code: tea.KeyTab}
	keyShiftTab = tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	keyEnter    = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyDown     = tea.KeyPressMsg{Code: tea.KeyDown}
	keyUp       = tea.KeyPressMsg{Code: tea.KeyUp}
	keyEsc      = tea.KeyPressMsg{Code: tea.KeyEscape}
	keyCtrlC    = tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	keyCtrlS    = tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
)

func press(t *testing.T, m Model, keys ...tea.Msg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return m
}

func TestModel_TypingConverts(t *testing.T) {
	m := New(converter.Initial(), nil)
	m = typeText(t, m, "10")

	assert.Equal(t, "10", m.State().Input)
	assert.Equal(t, "0.1", m.State().Output)
	assert.Contains(t, m.renderContent(), "Result: 0.1")
	assert.Contains(t, m.renderContent(), "Factor: 0.01")
}

func TestModel_InvalidInputShowsZero(t *testing.T) {
	m := typeText(t, New(converter.Initial(), nil), "abc")
	assert.Equal(t, "0.0", m.State().Output)
	assert.Contains(t, m.renderContent(), "Factor: 1.0")
}

func TestModel_SelectFromMenu(t *testing.T) {
	m := typeText(t, New(converter.Initial(), nil), "1")

	// Focus "From" (Centimeters), open, move down to Meters, select.
	m = press(t, m, keyTab, keyEnter)
	require.True(t, m.State().FromMenuOpen)
	assert.Contains(t, m.renderContent(), "› Centimeters")

	m = press(t, m, keyDown, keyEnter)
	assert.False(t, m.State().FromMenuOpen)
	assert.Equal(t, units.Meters, m.State().From)

	// Focus "To" (Meters), move down to Feet.
	m = press(t, m, keyTab, keyEnter, keyDown, keyEnter)
	assert.Equal(t, units.Feet, m.State().To)
	assert.Equal(t, "3.28084", m.State().Output)
}

func TestModel_MenuCursorBounds(t *testing.T) {
	m := New(converter.New(units.Millimeters, units.Feet), nil)
	m = press(t, m, keyTab, keyEnter, keyUp, keyUp)
	assert.Equal(t, 0, m.cursor)

	m = press(t, m, keyEsc, keyShiftTab, keyShiftTab, keyEnter, keyDown, keyDown)
	assert.True(t, m.State().ToMenuOpen)
	assert.Equal(t, len(units.Units())-1, m.cursor)
}

func TestModel_EscDismissesMenu(t *testing.T) {
	m := press(t, New(converter.Initial(), nil), keyTab, keyEnter, keyDown, keyEsc)
	assert.False(t, m.State().FromMenuOpen)
	assert.Equal(t, units.Centimeters, m.State().From)
}

func TestModel_TabClosesOpenMenu(t *testing.T) {
	m := press(t, New(converter.Initial(), nil), keyTab, keyEnter, keyTab)
	assert.False(t, m.State().FromMenuOpen)
	assert.Equal(t, focusTo, m.focus)
}

func TestModel_FocusWraps(t *testing.T) {
	m := press(t, New(converter.Initial(), nil), keyTab, keyTab, keyTab)
	assert.Equal(t, focusValue, m.focus)

	m = press(t, m, keyShiftTab)
	assert.Equal(t, focusTo, m.focus)
}

func TestModel_Swap(t *testing.T) {
	m := typeText(t, New(converter.Initial(), nil), "0.1")
	m = press(t, m, keyCtrlS)

	assert.Equal(t, units.Meters, m.State().From)
	assert.Equal(t, units.Centimeters, m.State().To)
	assert.Equal(t, "10.0", m.State().Output)
}

func TestModel_Quit(t *testing.T) {
	m := New(converter.Initial(), nil)
	next, cmd := m.Update(keyCtrlC)
	require.NotNil(t, cmd)
	assert.Equal(t, "", next.(Model).renderContent())
}

func TestModel_IgnoresOtherMessages(t *testing.T) {
	m := New(converter.Initial(), nil)
	next, cmd := m.Update(struct{}{})
	assert.Nil(t, cmd)
	assert.Equal(t, m.State(), next.(Model).State())
}
