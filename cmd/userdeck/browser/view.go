package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"userdeck/cmd/userdeck/ui"
)

// chromeHeight is the number of lines around the card list: header,
// controls, divider and help bar.
const chromeHeight = 4

const emptyListText = "No profiles yet. Press enter to get users."

// refreshList re-renders every card and records where each one starts so
// the selected card can be scrolled into view.
func (m *Model) refreshList() {
	n := m.deck.Len()
	if m.selected >= n {
		m.selected = max(n-1, 0)
	}

	width := m.width
	if m.maxCardWidth > 0 && width > m.maxCardWidth {
		width = m.maxCardWidth
	}

	m.cardOffsets = make([]int, 0, n)
	m.cardHeights = make([]int, 0, n)

	var content string
	if n == 0 {
		content = m.styles.Muted.Render(emptyListText)
	} else {
		cards := make([]string, 0, n)
		line := 0
		for i, p := range m.deck.Profiles() {
			card := ui.RenderCard(m.styles, p, ui.CardOptions{
				Width:      width,
				ShowAvatar: m.showAvatar,
				Selected:   m.focus == focusList && i == m.selected,
			})
			h := lipgloss.Height(card)
			m.cardOffsets = append(m.cardOffsets, line)
			m.cardHeights = append(m.cardHeights, h)
			cards = append(cards, card)
			line += h
		}
		content = strings.Join(cards, "\n")
	}

	if m.showHelp {
		return
	}
	m.list.SetContent(content)
	m.ensureSelectedVisible()
}

func (m *Model) ensureSelectedVisible() {
	if m.selected >= len(m.cardOffsets) {
		return
	}
	top := m.cardOffsets[m.selected]
	bottom := top + m.cardHeights[m.selected]

	switch {
	case top < m.list.YOffset:
		m.list.SetYOffset(top)
	case bottom > m.list.YOffset+m.list.Height:
		m.list.SetYOffset(min(top, bottom-m.list.Height))
	}
}

func (m *Model) renderHelp() {
	if m.helpRendered == "" {
		out, err := ui.RenderMarkdown(helpMarkdown, m.helpStyle, m.width-2)
		if err != nil {
			m.uiLog.Warn("help render failed", zap.Error(err))
			out = helpMarkdown
		}
		m.helpRendered = out
	}
	m.list.SetContent(m.helpRendered)
	m.list.SetYOffset(0)
}

// View renders the browser.
func (m Model) View() string {
	header := m.styles.Header.Render("userdeck") + " " +
		m.styles.Counter.Render(fmt.Sprintf("Results: %d", m.deck.Len()))

	controls := m.styles.Label.Render("Count") + m.input.View() + "  " +
		m.styles.FetchButton.Render("enter Get users")

	return strings.Join([]string{
		header,
		controls,
		m.styles.RenderDivider(m.width),
		m.list.View(),
		m.styles.Footer.Render(m.help.View(m.keys)),
	}, "\n")
}
