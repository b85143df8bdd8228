package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gubarz/cheatpick/internal/menu"
)

// KeyMap defines the key bindings of the picker
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Line editing
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	Backspace key.Binding
	Delete    key.Binding

	// Actions
	Accept   key.Binding
	Complete key.Binding
	Back     key.Binding
	Abort    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "ctrl+b"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "ctrl+f"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "ctrl+a"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "ctrl+e"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete", "ctrl+d"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort"),
		),
	}
}

// keyRoute pairs a binding with the logical key it produces
type keyRoute struct {
	binding key.Binding
	key     menu.Key
}

// routes is ordered so that the first matching binding wins
func (k KeyMap) routes() []keyRoute {
	return []keyRoute{
		{k.Accept, menu.KeyEnter},
		{k.Back, menu.KeyEscape},
		{k.Up, menu.KeyUp},
		{k.Down, menu.KeyDown},
		{k.PageUp, menu.KeyPageUp},
		{k.PageDown, menu.KeyPageDown},
		{k.Complete, menu.KeyTab},
		{k.Left, menu.KeyLeft},
		{k.Right, menu.KeyRight},
		{k.Home, menu.KeyHome},
		{k.End, menu.KeyEnd},
		{k.Backspace, menu.KeyBackspace},
		{k.Delete, menu.KeyDelete},
	}
}

// Translate converts a terminal key message into logical events. Pasted text
// arrives as several runes in one message and yields one event per rune.
func (k KeyMap) Translate(msg tea.KeyMsg) []menu.Event {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		events := make([]menu.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, menu.Rune(r))
		}
		return events
	case tea.KeySpace:
		return []menu.Event{menu.Rune(' ')}
	}

	for _, entry := range k.routes() {
		if key.Matches(msg, entry.binding) {
			return []menu.Event{menu.Press(entry.key)}
		}
	}
	return nil
}

// modeHelp exposes the bindings relevant to one menu mode to bubbles/help
type modeHelp struct {
	keys KeyMap
	mode menu.Mode
}

// ShortHelp returns key bindings for the short help view.
func (h modeHelp) ShortHelp() []key.Binding {
	k := h.keys
	if h.mode == menu.ModeArgs {
		back := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
		next := key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab/↓", "next arg"))
		run := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept"))
		return []key.Binding{run, next, back}
	}
	return []key.Binding{k.Accept, k.Up, k.Down, k.Complete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (h modeHelp) FullHelp() [][]key.Binding {
	k := h.keys
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Accept, k.Complete, k.Back, k.Abort},
	}
}
