package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/azure-skies/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Fire  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Fire, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "move right"),
		),
		Fire: key.NewBinding(
			key.WithKeys("z", " "),
			key.WithHelp("z/space", "fire"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Resolve maps a key message to a game key. quit is true for quit keys.
// Unbound keys return core.KeyUnknown.
func (k KeyMap) Resolve(msg tea.KeyMsg) (gameKey core.Key, quit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.KeyUnknown, true
	case key.Matches(msg, k.Left):
		return core.KeyLeft, false
	case key.Matches(msg, k.Right):
		return core.KeyRight, false
	case key.Matches(msg, k.Fire):
		return core.KeyFire, false
	}
	return core.KeyUnknown, false
}
