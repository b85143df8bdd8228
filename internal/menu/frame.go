package menu

import (
	"fmt"

	"github.com/gubarz/cheatpick/internal/cheat"
	"github.com/gubarz/cheatpick/internal/template"
)

// Row is one visible list entry
type Row struct {
	Record   *cheat.Record
	Selected bool
}

// ArgRow is one argument line of the Args popup
type ArgRow struct {
	Name    string
	Value   string
	Focused bool
}

// Frame describes what to draw for the current state. It carries no glyphs or
// colors; the renderer decides those.
type Frame struct {
	Mode   Mode
	Width  int
	Height int

	// List
	Query       string
	QueryCursor int
	Rows        []Row
	Counter     string
	Info        *cheat.Record

	// Args
	Args         []ArgRow
	ArgCursor    int
	Preview      []template.Line
	PreviewWidth int
	ExtraLines   int
	Missing      []string
}

// Frame builds the draw instructions for the current state
func (m *Machine) Frame() Frame {
	f := Frame{
		Mode:        m.mode,
		Width:       m.width,
		Height:      m.height,
		Query:       m.query.Value(),
		QueryCursor: m.query.Cursor(),
		Info:        m.Selected(),
		Counter:     m.counter(),
	}

	start, end := m.pager.Window()
	for i := start; i < end; i++ {
		f.Rows = append(f.Rows, Row{
			Record:   m.filtered[i],
			Selected: i == m.pager.Position(),
		})
	}

	if m.args != nil {
		a := m.args
		for i, arg := range a.engine.Args.All() {
			f.Args = append(f.Args, ArgRow{Name: arg.Name, Value: arg.Value, Focused: i == a.current})
		}
		f.ArgCursor = a.editors[a.current].Cursor()
		f.PreviewWidth = m.previewWidth()
		f.Preview = a.engine.Preview(a.current, f.PreviewWidth)
		f.ExtraLines = a.engine.ExtraLines(f.PreviewWidth)
		f.Missing = a.engine.Args.Missing()
	}
	return f
}

func (m *Machine) counter() string {
	if len(m.filtered) == 0 {
		return "> 0 / 0 "
	}
	return fmt.Sprintf("> %d / %d ", m.pager.Position()+1, len(m.filtered))
}
