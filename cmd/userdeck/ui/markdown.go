package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"

	"userdeck/internal/randomuser"
)

// ProfilesMarkdown writes profiles as a markdown document, one section per
// profile.
func ProfilesMarkdown(profiles []randomuser.Profile) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Results: %d\n\n", len(profiles))
	for i, p := range profiles {
		fmt.Fprintf(&sb, "## %d. %s\n\n", i, orDash(p.FullName()))
		fmt.Fprintf(&sb, "- **Address:** %s\n", orDash(p.Address()))
		fmt.Fprintf(&sb, "- **Age:** %s\n", strconv.Itoa(p.DOB.Age))
		if p.Email != "" {
			fmt.Fprintf(&sb, "- **Email:** [%s](%s)\n", p.Email, p.MailtoURI())
		}
		if n := p.ContactNumber(); n != "" {
			fmt.Fprintf(&sb, "- **Phone:** [%s](%s)\n", n, p.TelURI())
		}
		if a := p.Avatar(); a != "" {
			fmt.Fprintf(&sb, "- **Avatar:** %s\n", a)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderMarkdown renders md for the terminal. style is a glamour standard
// style name ("dark", "light", "notty", ...); width <= 0 disables wrapping.
func RenderMarkdown(md, style string, width int) (string, error) {
	if width < 0 {
		width = 0
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
