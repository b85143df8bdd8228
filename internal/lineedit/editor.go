package lineedit

import (
	"strings"
	"unicode/utf8"
)

// Printable ASCII range accepted by Insert
const (
	minPrintable = 32
	maxPrintable = 126
)

// Editor is a single-line text buffer with a cursor in [0, len(buffer)]
type Editor struct {
	buf    []rune
	cursor int
}

// New creates an editor holding value with the cursor at its end
func New(value string) *Editor {
	e := &Editor{}
	e.SetValue(value)
	return e
}

// Value returns the buffer contents
func (e *Editor) Value() string {
	return string(e.buf)
}

// Cursor returns the cursor offset from the start of the buffer
func (e *Editor) Cursor() int {
	return e.cursor
}

// Len returns the buffer length in characters
func (e *Editor) Len() int {
	return len(e.buf)
}

// SetValue replaces the buffer and moves the cursor to the end
func (e *Editor) SetValue(value string) {
	e.buf = []rune(value)
	e.cursor = len(e.buf)
}

// Insert adds ch at the cursor and advances it. Characters outside printable
// ASCII are ignored.
func (e *Editor) Insert(ch rune) bool {
	if ch < minPrintable || ch > maxPrintable {
		return false
	}
	e.buf = append(e.buf, 0)
	copy(e.buf[e.cursor+1:], e.buf[e.cursor:])
	e.buf[e.cursor] = ch
	e.cursor++
	return true
}

// DeleteBefore removes the character left of the cursor (backspace)
func (e *Editor) DeleteBefore() bool {
	if e.cursor == 0 {
		return false
	}
	e.buf = append(e.buf[:e.cursor-1], e.buf[e.cursor:]...)
	e.cursor--
	return true
}

// DeleteAt removes the character under the cursor (delete forward)
func (e *Editor) DeleteAt() bool {
	if e.cursor >= len(e.buf) {
		return false
	}
	e.buf = append(e.buf[:e.cursor], e.buf[e.cursor+1:]...)
	return true
}

// MoveLeft moves the cursor one character left
func (e *Editor) MoveLeft() {
	if e.cursor > 0 {
		e.cursor--
	}
}

// MoveRight moves the cursor one character right
func (e *Editor) MoveRight() {
	if e.cursor < len(e.buf) {
		e.cursor++
	}
}

// MoveHome moves the cursor to the start
func (e *Editor) MoveHome() {
	e.cursor = 0
}

// MoveEnd moves the cursor to the end
func (e *Editor) MoveEnd() {
	e.cursor = len(e.buf)
}

// Complete replaces a non-empty buffer with the longest common prefix of the
// candidates that start with it, and moves the cursor to the end. It reports
// whether the buffer changed.
func (e *Editor) Complete(candidates []string) bool {
	current := e.Value()
	if current == "" {
		return false
	}

	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, current) {
			matches = append(matches, c)
		}
	}
	if len(matches) == 0 {
		return false
	}

	completed := CommonPrefix(matches)
	e.SetValue(completed)
	return completed != current
}

// Clone returns an independent copy
func (e *Editor) Clone() *Editor {
	c := &Editor{cursor: e.cursor, buf: make([]rune, len(e.buf))}
	copy(c.buf, e.buf)
	return c
}

// CommonPrefix returns the longest prefix shared by every string in values
func CommonPrefix(values []string) string {
	if len(values) == 0 {
		return ""
	}
	prefix := values[0]
	for _, v := range values[1:] {
		n := 0
		for n < len(prefix) && n < len(v) && prefix[n] == v[n] {
			n++
		}
		for n > 0 && n < len(prefix) && !utf8.RuneStart(prefix[n]) {
			n--
		}
		prefix = prefix[:n]
	}
	return prefix
}
