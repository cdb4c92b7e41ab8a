// Package keymap defines keybindings for the review screen.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the review screen.
type KeyMap struct {
	// Apply writes the patched note.
	Apply key.Binding

	// Skip leaves the note untouched.
	Skip key.Binding

	// Quit exits without writing.
	Quit key.Binding

	// Up scrolls the review up.
	Up key.Binding

	// Down scrolls the review down.
	Down key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Apply: key.NewBinding(
			key.WithKeys("a", "s", "enter"),
			key.WithHelp("a/enter", "apply"),
		),
		Skip: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "skip"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "x", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
	}
}

// ShortHelp returns the keybindings shown under the review pane.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Apply, k.Skip, k.Quit}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
