package ui

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gubarz/cheatpick/internal/cheat"
	"github.com/gubarz/cheatpick/internal/config"
	"github.com/gubarz/cheatpick/internal/menu"
)

// mainModel is the Bubble Tea model driving the menu state machine.
// List and Args share one alt-screen session.
type mainModel struct {
	machine *menu.Machine
	keys    KeyMap
	help    help.Model
	columns columnConfig
	aborted bool
}

// newMainModel creates a new mainModel over machine
func newMainModel(machine *menu.Machine) mainModel {
	return mainModel{
		machine: machine,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		columns: loadColumnConfig(),
	}
}

// Init implements tea.Model
func (m mainModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.machine.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Abort) {
			m.aborted = true
			return m, tea.Quit
		}

		before := m.machine.Mode()
		for _, ev := range m.keys.Translate(msg) {
			m.machine.Handle(ev)
			if m.machine.Done() {
				break
			}
		}
		if mode := m.machine.Mode(); mode != before {
			log.Printf("mode %s -> %s", before, mode)
		}
		if m.machine.Done() {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m mainModel) View() string {
	if m.aborted || m.machine.Done() {
		return ""
	}

	f := m.machine.Frame()
	if f.Mode == menu.ModeArgs {
		return m.renderArgs(f)
	}
	return m.renderList(f)
}

// ============================================================================
// Run TUI
// ============================================================================

// Options tune how the picker starts
type Options struct {
	Query string // Initial search query
	Auto  bool   // Pick the only match without showing the list
}

// getTTY returns file handles for TUI input/output
// Uses /dev/tty to bypass shell pipes and command substitution
func getTTY() (in *os.File, out *os.File, cleanup func()) {
	var closers []func()

	// If stdout is captured (e.g. by $()), draw on /dev/tty instead
	if isCaptured(os.Stdout) {
		out, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		if err != nil {
			out = os.Stderr // Last resort fallback
		} else {
			closers = append(closers, func() { out.Close() })
		}

		in, err := os.OpenFile("/dev/tty", os.O_RDONLY, 0)
		if err != nil {
			in = os.Stdin
		} else {
			closers = append(closers, func() { in.Close() })
		}

		// Tell lipgloss to use the TTY for color detection
		lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(out))

		return in, out, func() {
			for _, c := range closers {
				c()
			}
		}
	}

	return os.Stdin, os.Stdout, func() {}
}

// isCaptured reports whether f is a pipe or file rather than a terminal.
// A file that cannot be stat'ed is treated as a terminal.
func isCaptured(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode()&os.ModeCharDevice == 0
}

// setupLogging sends the standard logger to the configured log file, or
// discards it so nothing is written over the TUI
func setupLogging() (func(), error) {
	path := config.GetLogFile()
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "cheatpick")
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	return func() { f.Close() }, nil
}

// Run shows the picker over catalog and returns the outcome. A result with
// Selected false means the user cancelled.
func Run(catalog *cheat.Catalog, globals map[string]string, opts Options) (menu.Result, error) {
	closeLog, err := setupLogging()
	if err != nil {
		return menu.Result{}, err
	}
	defer closeLog()

	machine := menu.New(catalog, globals)
	log.Printf("catalog loaded: %d records, %d globals", catalog.Len(), len(globals))

	if opts.Query != "" {
		machine.SetQuery(opts.Query)

		// With exactly one match, --auto selects it; a template with
		// placeholders then opens straight in Args mode
		if opts.Auto && len(machine.Filtered()) == 1 {
			machine.Handle(menu.Press(menu.KeyEnter))
			if machine.Done() {
				return machine.Result(), nil
			}
		}
	}

	ttyIn, ttyOut, cleanup := getTTY()
	RefreshStyles() // Refresh after getTTY sets up the renderer
	p := tea.NewProgram(newMainModel(machine), tea.WithAltScreen(), tea.WithOutput(ttyOut), tea.WithInput(ttyIn))
	finalModel, err := p.Run()
	cleanup()

	if err != nil {
		return menu.Result{}, fmt.Errorf("running picker: %w", err)
	}

	result := finalModel.(mainModel)
	if result.aborted {
		log.Printf("aborted")
		return menu.Result{}, nil
	}
	log.Printf("finished: selected=%v", result.machine.Result().Selected)
	return result.machine.Result(), nil
}
