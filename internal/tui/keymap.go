package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	TurnLeft  key.Binding
	TurnRight key.Binding
	Advance   key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		TurnLeft: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a", "turn port"),
		),
		TurnRight: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d", "turn starboard"),
		),
		Advance: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w", "ahead one hex"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TurnLeft, k.TurnRight, k.Advance, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.TurnLeft, k.TurnRight, k.Advance}, {k.Quit}}
}
