package browser

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Focus  key.Binding
	Submit key.Binding
	Fetch  key.Binding
	Up     key.Binding
	Down   key.Binding
	Remove key.Binding
	Mail   key.Binding
	Call   key.Binding
	Help   key.Binding
	Quit   key.Binding
	Force  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "get users"),
		),
		Fetch: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "get users"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "remove"),
		),
		Mail: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "email"),
		),
		Call: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "call"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Force: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// setFocus enables only the bindings that apply to the focused area, so
// the help bar lists what the user can actually press.
func (k *keyMap) setFocus(f focusArea) {
	onList := f == focusList
	k.Submit.SetEnabled(!onList)
	for _, b := range []*key.Binding{&k.Fetch, &k.Up, &k.Down, &k.Remove, &k.Mail, &k.Call, &k.Help, &k.Quit} {
		b.SetEnabled(onList)
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Submit, k.Fetch, k.Up, k.Down, k.Mail, k.Call, k.Remove, k.Help, k.Quit, k.Force}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Submit, k.Fetch},
		{k.Up, k.Down},
		{k.Mail, k.Call, k.Remove},
		{k.Help, k.Quit, k.Force},
	}
}
