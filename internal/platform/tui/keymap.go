package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the viewer key bindings. It implements help.KeyMap so
// the help bar can render itself.
type keyMap struct {
	Pause key.Binding
	Step  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Step: key.NewBinding(
			key.WithKeys("s", "."),
			key.WithHelp("s", "step"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the mini help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Step, k.Quit}
}

// FullHelp returns all bindings, grouped in columns.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Pause, k.Step, k.Quit}}
}
