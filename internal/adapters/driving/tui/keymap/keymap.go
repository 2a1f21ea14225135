// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// ToggleOpen shows or hides the search overlay.
	ToggleOpen key.Binding

	// Open shows the overlay when it is hidden.
	Open key.Binding

	// Close hides the overlay.
	Close key.Binding

	// ClearQuery wipes the current query and results.
	ClearQuery key.Binding

	// ClearHistory wipes the recent-search list.
	ClearHistory key.Binding

	// Up navigates up in the result list.
	Up key.Binding

	// Down navigates down in the result list.
	Down key.Binding

	// Select picks the highlighted result.
	Select key.Binding
}

// DefaultKeyMap returns the default keybindings. Plain letters stay
// free for typing; everything except Open uses control keys.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		ToggleOpen: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "toggle search"),
		),
		Open: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		ClearQuery: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear query"),
		),
		ClearHistory: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear history"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
	}
}

// OverlayHelp returns keybindings shown while the overlay is open.
func (k *KeyMap) OverlayHelp() []key.Binding {
	return []key.Binding{k.Up, k.Select, k.ClearQuery, k.Close, k.Quit}
}

// ClosedHelp returns keybindings shown while the overlay is hidden.
func (k *KeyMap) ClosedHelp() []key.Binding {
	return []key.Binding{k.Open, k.ToggleOpen, k.Quit}
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
