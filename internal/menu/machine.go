package menu

import (
	"github.com/gubarz/cheatpick/internal/cheat"
	"github.com/gubarz/cheatpick/internal/lineedit"
	"github.com/gubarz/cheatpick/internal/pager"
	"github.com/gubarz/cheatpick/internal/search"
	"github.com/gubarz/cheatpick/internal/template"
)

// Layout constants: rows taken by the info box, prompt and footer around the
// list, and columns taken by the argument popup around the preview.
const (
	listChrome    = 7
	previewMargin = 17

	defaultWidth  = 80
	defaultHeight = 24
)

// Mode is the state of the menu
type Mode int

const (
	ModeList Mode = iota // Searching and selecting a record
	ModeArgs             // Filling in placeholder values
	ModeDone             // Finished, see Result
)

func (m Mode) String() string {
	switch m {
	case ModeList:
		return "list"
	case ModeArgs:
		return "args"
	default:
		return "done"
	}
}

// Result is the outcome of a finished menu
type Result struct {
	Command  string        // Fully substituted command
	Record   *cheat.Record // Record the command came from
	Selected bool          // False when the user cancelled
}

// argsState is the Args mode data for one selected record
type argsState struct {
	record  *cheat.Record
	engine  *template.Engine
	editors []*lineedit.Editor
	current int
}

// Machine is the picker state machine. It owns the search state, the
// selection cursor and, in Args mode, the argument set of the chosen record.
type Machine struct {
	catalog  *cheat.Catalog
	globals  map[string]string
	mode     Mode
	query    *lineedit.Editor
	filtered []*cheat.Record
	pager    *pager.Pager
	args     *argsState
	result   Result

	width  int
	height int
}

// New creates a machine in List mode over catalog. globals prefills argument
// values by name and is never written.
func New(catalog *cheat.Catalog, globals map[string]string) *Machine {
	m := &Machine{
		catalog:  catalog,
		globals:  globals,
		mode:     ModeList,
		query:    lineedit.New(""),
		filtered: catalog.Records(),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.pager = pager.New(len(m.filtered), m.pageSize())
	return m
}

// Mode returns the current state
func (m *Machine) Mode() Mode { return m.mode }

// Done reports whether the machine reached its terminal state
func (m *Machine) Done() bool { return m.mode == ModeDone }

// Result returns the outcome once Done
func (m *Machine) Result() Result { return m.result }

// Query returns the search text
func (m *Machine) Query() string { return m.query.Value() }

// Filtered returns the records matching the current query
func (m *Machine) Filtered() []*cheat.Record { return m.filtered }

// Position returns the selected index and the first visible row
func (m *Machine) Position() (position, pageStart int) {
	return m.pager.Position(), m.pager.PageStart()
}

// CurrentArg returns the focused argument index in Args mode, or -1
func (m *Machine) CurrentArg() int {
	if m.args == nil {
		return -1
	}
	return m.args.current
}

// Arguments returns the argument values in Args mode
func (m *Machine) Arguments() []template.Argument {
	if m.args == nil {
		return nil
	}
	return m.args.engine.Args.All()
}

// Selected returns the record under the cursor, or nil on an empty list
func (m *Machine) Selected() *cheat.Record {
	if len(m.filtered) == 0 {
		return nil
	}
	return m.filtered[m.pager.Position()%len(m.filtered)]
}

// SetQuery replaces the search text, as if typed, and refilters
func (m *Machine) SetQuery(q string) {
	m.query.SetValue(q)
	m.refilter()
}

// Resize records the viewport and re-derives the page size and preview width
func (m *Machine) Resize(width, height int) {
	m.width = width
	m.height = height
	m.pager.SetPageSize(m.pageSize())
}

func (m *Machine) pageSize() int {
	return max(m.height-listChrome, 1)
}

func (m *Machine) previewWidth() int {
	return max(m.width-previewMargin, 1)
}

// Handle processes one key event
func (m *Machine) Handle(ev Event) {
	switch m.mode {
	case ModeList:
		m.handleList(ev)
	case ModeArgs:
		m.handleArgs(ev)
	}
}

// Step applies ev to a copy of m and returns the copy with its frame. m is
// left untouched.
func Step(m *Machine, ev Event) (*Machine, Frame) {
	next := m.Clone()
	next.Handle(ev)
	return next, next.Frame()
}

// Clone returns an independent copy of the machine
func (m *Machine) Clone() *Machine {
	c := *m
	c.query = m.query.Clone()
	p := *m.pager
	c.pager = &p
	if m.args != nil {
		a := *m.args
		a.engine = &template.Engine{Command: m.args.engine.Command, Args: m.args.engine.Args.Clone()}
		a.editors = make([]*lineedit.Editor, len(m.args.editors))
		for i, e := range m.args.editors {
			a.editors[i] = e.Clone()
		}
		c.args = &a
	}
	return &c
}

func (m *Machine) handleList(ev Event) {
	switch ev.Key {
	case KeyEnter:
		m.selectCurrent()
	case KeyEscape:
		m.finish(Result{})
	case KeyUp:
		m.pager.MoveBy(-1)
	case KeyDown:
		m.pager.MoveBy(1)
	case KeyPageUp:
		m.pager.MovePage(-1)
	case KeyPageDown:
		m.pager.MovePage(1)
	case KeyTab:
		if m.query.Complete(search.CompletionCandidates(m.filtered)) {
			m.refilter()
		}
	default:
		if editLine(m.query, ev) {
			m.refilter()
		}
	}
}

// selectCurrent finishes with the selected record, or moves to Args mode
// when it has placeholders
func (m *Machine) selectCurrent() {
	record := m.Selected()
	if record == nil {
		return
	}

	engine := template.NewEngine(record.Command, m.globals)
	if engine.Args.Len() == 0 {
		m.finish(Result{Command: record.Command, Record: record, Selected: true})
		return
	}

	editors := make([]*lineedit.Editor, engine.Args.Len())
	for i := range editors {
		editors[i] = lineedit.New(engine.Args.At(i).Value)
	}
	m.args = &argsState{record: record, engine: engine, editors: editors}
	m.mode = ModeArgs
}

func (m *Machine) handleArgs(ev Event) {
	a := m.args
	switch ev.Key {
	case KeyEnter:
		if cmd, ok := a.engine.TryBuild(); ok {
			m.finish(Result{Command: cmd, Record: a.record, Selected: true})
		}
	case KeyEscape:
		m.args = nil
		m.mode = ModeList
	case KeyTab, KeyDown:
		m.focusArg((a.current + 1) % len(a.editors))
	case KeyUp:
		m.focusArg((a.current - 1 + len(a.editors)) % len(a.editors))
	case KeyPageUp, KeyPageDown:
		// nothing to page through
	default:
		ed := a.editors[a.current]
		if editLine(ed, ev) {
			a.engine.Args.Set(a.current, ed.Value())
		}
	}
}

func (m *Machine) focusArg(i int) {
	m.args.current = i
	m.args.editors[i].MoveEnd()
}

func (m *Machine) finish(r Result) {
	m.args = nil
	m.result = r
	m.mode = ModeDone
}

// refilter recomputes the filtered list and resets the cursor
func (m *Machine) refilter() {
	m.filtered = search.Filter(m.catalog.Records(), m.query.Value())
	m.pager.SetLen(len(m.filtered))
}

// editLine routes a text editing key to ed and reports whether the buffer
// changed
func editLine(ed *lineedit.Editor, ev Event) bool {
	switch ev.Key {
	case KeyRune:
		return ed.Insert(ev.Rune)
	case KeyBackspace:
		return ed.DeleteBefore()
	case KeyDelete:
		return ed.DeleteAt()
	case KeyLeft:
		ed.MoveLeft()
	case KeyRight:
		ed.MoveRight()
	case KeyHome:
		ed.MoveHome()
	case KeyEnd:
		ed.MoveEnd()
	}
	return false
}
