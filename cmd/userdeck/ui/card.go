package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"userdeck/internal/randomuser"
)

// CardOptions controls how a profile card is laid out.
type CardOptions struct {
	// Width is the total card width in cells, borders included. Zero lets
	// the content decide.
	Width int
	// ShowAvatar adds the avatar URL line.
	ShowAvatar bool
	// Selected draws the card with the selection border.
	Selected bool
}

// RenderCard draws one profile with its email, call and remove actions.
func RenderCard(s Styles, p randomuser.Profile, opts CardOptions) string {
	var sb strings.Builder

	sb.WriteString(s.CardName.Render(orDash(p.FullName())))
	sb.WriteString("\n")

	field := func(label, value string) {
		sb.WriteString(s.Label.Render(label))
		sb.WriteString(s.Body.Render(orDash(value)))
		sb.WriteString("\n")
	}
	field("Address", p.Address())
	field("Age", strconv.Itoa(p.DOB.Age))
	field("Email", p.Email)
	field("Phone", p.ContactNumber())
	if opts.ShowAvatar {
		field("Avatar", p.Avatar())
	}

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		s.ActionButton.Render("m Email"), " ",
		s.ActionButton.Render("c Call"), " ",
		s.RemoveButton.Render("x Remove"),
	))

	style := s.Card
	if opts.Selected {
		style = s.SelectedCard
	}
	if opts.Width > 2 {
		style = style.Width(opts.Width - 2)
	}
	return style.Render(sb.String())
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
