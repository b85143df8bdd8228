package template

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// placeholderRe matches <name> tokens. Names carry no spaces or angle brackets.
var placeholderRe = regexp.MustCompile(`<([^ <>]+)>`)

// Placeholders returns the distinct placeholder names of cmd in
// first-occurrence order
func Placeholders(cmd string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range placeholderRe.FindAllStringSubmatch(cmd, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Style tells the renderer how to draw a preview span
type Style int

const (
	StyleLiteral     Style = iota // Literal template text
	StylePlaceholder              // Slot of an argument without focus
	StyleFocused                  // Slot of the focused argument
)

// Segment is a piece of the template: literal text, or a slot bound to an
// argument (Arg >= 0)
type Segment struct {
	Text string
	Arg  int
}

// IsSlot reports whether the segment is a placeholder slot
func (s Segment) IsSlot() bool {
	return s.Arg >= 0
}

// Span is a run of preview text sharing one style
type Span struct {
	Text  string
	Style Style
}

// Line is one reflowed preview line
type Line []Span

// Text returns the plain text of the line
func (l Line) Text() string {
	var b strings.Builder
	for _, span := range l {
		b.WriteString(span.Text)
	}
	return b.String()
}

// Engine renders previews for a command template and builds the final command
type Engine struct {
	Command string
	Args    *ArgumentSet
}

// NewEngine creates an engine for cmd with a fresh argument set prefilled
// from globals
func NewEngine(cmd string, globals map[string]string) *Engine {
	return &Engine{
		Command: cmd,
		Args:    NewArgumentSet(Placeholders(cmd), globals),
	}
}

// Segments splits the template into alternating literal and slot segments.
// A slot shows its value, or <name> while the value is empty.
func (e *Engine) Segments() []Segment {
	var segs []Segment
	last := 0
	for _, loc := range placeholderRe.FindAllStringSubmatchIndex(e.Command, -1) {
		name := e.Command[loc[2]:loc[3]]
		pos := e.Args.Position(name)
		if pos < 0 {
			continue
		}
		if loc[0] > last {
			segs = append(segs, Segment{Text: e.Command[last:loc[0]], Arg: -1})
		}
		text := e.Args.At(pos).Value
		if text == "" {
			text = "<" + name + ">"
		}
		segs = append(segs, Segment{Text: text, Arg: pos})
		last = loc[1]
	}
	if last < len(e.Command) {
		segs = append(segs, Segment{Text: e.Command[last:], Arg: -1})
	}
	return segs
}

// Preview reflows the segments into lines of at most width characters.
// Wrapping is decided per character, so a slot may split across two lines.
func (e *Engine) Preview(focused, width int) []Line {
	width = max(width, 1)
	lines := []Line{nil}
	n := 0
	for _, seg := range e.Segments() {
		style := StyleLiteral
		if seg.IsSlot() {
			style = StylePlaceholder
			if seg.Arg == focused {
				style = StyleFocused
			}
		}
		for _, r := range seg.Text {
			if n >= width {
				lines = append(lines, nil)
				n = 0
			}
			n++
			lines[len(lines)-1] = appendRune(lines[len(lines)-1], r, style)
		}
	}
	return lines
}

func appendRune(line Line, r rune, style Style) Line {
	if k := len(line) - 1; k >= 0 && line[k].Style == style {
		line[k].Text += string(r)
		return line
	}
	return append(line, Span{Text: string(r), Style: style})
}

// TotalChars returns the length of the flattened preview
func (e *Engine) TotalChars() int {
	total := 0
	for _, seg := range e.Segments() {
		total += utf8.RuneCountInString(seg.Text)
	}
	return total
}

// ExtraLines returns how many lines beyond the first the preview needs at
// width
func (e *Engine) ExtraLines(width int) int {
	return ExtraLines(e.TotalChars(), width)
}

// ExtraLines returns (totalChars-1)/width, never negative
func ExtraLines(totalChars, width int) int {
	width = max(width, 1)
	if totalChars <= 0 {
		return 0
	}
	return (totalChars - 1) / width
}

// TryBuild returns the template with every placeholder substituted, or false
// while any argument is still empty
func (e *Engine) TryBuild() (string, bool) {
	return Build(e.Command, e.Args)
}

// Build substitutes every <name> in cmd with its value from args. It fails
// unless every argument is set.
func Build(cmd string, args *ArgumentSet) (string, bool) {
	if !args.Ready() {
		return "", false
	}
	return placeholderRe.ReplaceAllStringFunc(cmd, func(tok string) string {
		if v, ok := args.Lookup(tok[1 : len(tok)-1]); ok {
			return v
		}
		return tok
	}), true
}
