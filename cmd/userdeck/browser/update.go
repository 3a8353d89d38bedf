package browser

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case profilesFetchedMsg:
		m.handleFetched(msg)
		return m, nil

	case profilesFetchFailedMsg:
		m.handleFetchFailed(msg)
		return m, nil

	case launchFailedMsg:
		m.openLog.Warn("could not open handler", zap.String("uri", msg.uri), zap.Error(msg.err))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	// Cursor blink and other input bookkeeping.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Force):
		return m.quit()
	case key.Matches(msg, m.keys.Focus):
		cmd := m.toggleFocus()
		return m, cmd
	}

	if m.focus == focusInput {
		return m.updateInput(msg)
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Help), msg.Type == tea.KeyEsc:
			m.showHelp = false
			m.refreshList()
		case key.Matches(msg, m.keys.Up):
			m.list.SetYOffset(m.list.YOffset - 1)
		case key.Matches(msg, m.keys.Down):
			m.list.SetYOffset(m.list.YOffset + 1)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.renderHelp()
	case key.Matches(msg, m.keys.Fetch):
		return m, m.fetchProfiles()
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Remove):
		m.removeSelected()
	case key.Matches(msg, m.keys.Mail):
		if p, ok := m.deck.At(m.selected); ok {
			return m, m.openURI(p.MailtoURI())
		}
	case key.Matches(msg, m.keys.Call):
		if p, ok := m.deck.At(m.selected); ok {
			return m, m.openURI(p.TelURI())
		}
	}
	return m, nil
}

// updateInput feeds a key to the count field. Edits that would leave
// anything but an optional '-' followed by digits are rolled back; every
// accepted edit becomes the requested count.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		return m, m.fetchProfiles()
	}

	prevValue, prevPos := m.input.Value(), m.input.Position()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	value := m.input.Value()
	if value == prevValue {
		return m, cmd
	}
	n, ok := parseCount(value)
	if !ok {
		m.input.SetValue(prevValue)
		m.input.SetCursor(prevPos)
		return m, cmd
	}
	m.deck.SetRequestedCount(n)
	return m, cmd
}

// parseCount reads the count field. An empty field or a lone '-' counts as
// zero.
func parseCount(s string) (int, bool) {
	digits := s
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	if digits == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (m *Model) toggleFocus() tea.Cmd {
	var cmd tea.Cmd
	if m.focus == focusInput {
		m.focus = focusList
		m.input.Blur()
	} else {
		m.focus = focusInput
		m.showHelp = false
		cmd = m.input.Focus()
	}
	m.keys.setFocus(m.focus)
	m.refreshList()
	return cmd
}

func (m *Model) moveSelection(delta int) {
	n := m.deck.Len()
	if n == 0 {
		return
	}
	m.selected = min(max(m.selected+delta, 0), n-1)
	m.refreshList()
}

func (m *Model) removeSelected() {
	p, _ := m.deck.At(m.selected)
	if !m.deck.Remove(m.selected) {
		return
	}
	m.uiLog.Debug("profile removed",
		zap.Int("position", m.selected),
		zap.String("id", p.ID()),
		zap.Int("remaining", m.deck.Len()),
	)
	m.refreshList()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.cancel()
	return m, tea.Quit
}
