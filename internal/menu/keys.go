package menu

// Key is a logical key, independent of terminal key codes
type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
)

var keyNames = map[Key]string{
	KeyRune:      "rune",
	KeyEnter:     "enter",
	KeyEscape:    "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyHome:      "home",
	KeyEnd:       "end",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "unknown"
}

// Event is one logical key press. Rune is set only for KeyRune.
type Event struct {
	Key  Key
	Rune rune
}

// Press returns an event for a non-character key
func Press(k Key) Event {
	return Event{Key: k}
}

// Rune returns an event for typing ch
func Rune(ch rune) Event {
	return Event{Key: KeyRune, Rune: ch}
}

// Type returns one event per character of s
func Type(s string) []Event {
	events := make([]Event, 0, len(s))
	for _, ch := range s {
		events = append(events, Rune(ch))
	}
	return events
}

func (e Event) String() string {
	if e.Key == KeyRune {
		return string(e.Rune)
	}
	return e.Key.String()
}
