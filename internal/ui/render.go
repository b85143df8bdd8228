package ui

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/gubarz/cheatpick/internal/cheat"
	"github.com/gubarz/cheatpick/internal/config"
	"github.com/gubarz/cheatpick/internal/menu"
)

// ============================================================================
// String Builder Pool - reduces GC pressure from rendering
// ============================================================================

var builderPool = sync.Pool{
	New: func() interface{} {
		return &strings.Builder{}
	},
}

func getBuilder() *strings.Builder {
	b := builderPool.Get().(*strings.Builder)
	b.Reset()
	return b
}

func putBuilder(b *strings.Builder) {
	if b.Cap() < 64*1024 { // Don't pool huge builders
		builderPool.Put(b)
	}
}

// ============================================================================
// Columns
// ============================================================================

// columnConfig holds the list column shares in percent of the row
type columnConfig struct {
	title   int
	name    int
	command int
}

// loadColumnConfig reads column shares, falling back to 20/30/50
func loadColumnConfig() columnConfig {
	title, name, command := config.GetColumns()
	if title < 0 || name < 0 || command < 0 || title+name+command <= 0 {
		return columnConfig{title: 20, name: 30, command: 50}
	}
	return columnConfig{title: title, name: name, command: command}
}

// widths splits usable cells between the three columns, one gap cell
// between each pair
func (c columnConfig) widths(usable int) (title, name, command int) {
	total := c.title + c.name + c.command
	usable = max(usable-2, 0)
	title = usable * c.title / total
	name = usable * c.name / total
	command = usable - title - name
	return
}

// fit truncates or pads s to exactly w cells
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, w, "…"), w)
}

// ============================================================================
// List view
// ============================================================================

// renderList builds the List mode screen: info box, rows, prompt, footer
func (m mainModel) renderList(f menu.Frame) string {
	b := getBuilder()
	defer putBuilder(b)

	b.WriteString(m.renderInfo(f.Info, f.Width))
	b.WriteString("\n")

	rows := max(f.Height-listChrome, 1)
	for i := 0; i < rows; i++ {
		if i < len(f.Rows) {
			b.WriteString(m.renderRow(f.Rows[i], f.Width))
		}
		b.WriteString("\n")
	}

	b.WriteString(renderPrompt(f.Query, f.QueryCursor))
	b.WriteString("\n")
	b.WriteString(renderFooter(f))
	b.WriteString("\n")
	b.WriteString(m.help.View(modeHelp{keys: m.keys, mode: f.Mode}))
	return b.String()
}

// listChrome is the number of lines around the rows: four for the info box
// and one each for prompt, footer and help
const listChrome = 7

// renderInfo renders the bordered info box for the selected record
func (m mainModel) renderInfo(r *cheat.Record, width int) string {
	inner := max(width-4, 1)
	var head, cmd string
	if r != nil {
		title := r.DisplayTitle()
		head = styles.Title.Render(runewidth.Truncate(title, inner, "…"))
		if rest := inner - runewidth.StringWidth(title) - 1; rest > 0 && r.Name != "" {
			head += " " + styles.Name.Render(runewidth.Truncate(r.Name, rest, "…"))
		}
		cmd = styles.Command.Render(runewidth.Truncate(r.PrintableCommand, inner, "…"))
	}
	return styles.Border.Padding(0, 1).Width(max(width-2, 1)).Render(head + "\n" + cmd)
}

// renderRow renders a single list row with the title, name and command columns
func (m mainModel) renderRow(row menu.Row, width int) string {
	tw, nw, cw := m.columns.widths(width - 2)
	r := row.Record

	tStyle, nStyle, cStyle := styles.Title, styles.Name, styles.Command
	gap := " "
	if row.Selected {
		tStyle = styles.WithSelection(tStyle)
		nStyle = styles.WithSelection(nStyle)
		cStyle = styles.WithSelection(cStyle)
		gap = styles.Selected.Render(gap)
	}

	line := tStyle.Render(fit(r.DisplayTitle(), tw)) + gap +
		nStyle.Render(fit(r.Name, nw)) + gap +
		cStyle.Render(fit(r.PrintableCommand, cw))
	if row.Selected {
		return styles.Cursor.Render("▶ ") + line
	}
	return "  " + line
}

// renderPrompt renders the search line with the editor cursor
func renderPrompt(query string, cursor int) string {
	return styles.Cursor.Render("> ") + withCursor(query, cursor)
}

// renderFooter renders the counter and the source file of the selection
func renderFooter(f menu.Frame) string {
	footer := styles.Dim.Render(f.Counter)
	if f.Info != nil && f.Info.SourceFile != "" {
		footer += styles.Dim.Render(filepath.Base(f.Info.SourceFile))
	}
	return footer
}

// withCursor renders text with a reverse-video cell at rune offset cursor
func withCursor(text string, cursor int) string {
	runes := []rune(text)
	cursor = max(0, min(cursor, len(runes)))
	under := " "
	after := ""
	if cursor < len(runes) {
		under = string(runes[cursor])
		after = string(runes[cursor+1:])
	}
	return string(runes[:cursor]) + lipgloss.NewStyle().Reverse(true).Render(under) + after
}

// ============================================================================
// Args view
// ============================================================================

// renderArgs builds the Args mode screen: a centered popup with the live
// preview, the argument rows and the names still missing
func (m mainModel) renderArgs(f menu.Frame) string {
	b := getBuilder()
	defer putBuilder(b)

	b.WriteString(renderPreview(f))
	b.WriteString("\n")
	b.WriteString(styles.Divider.Render(strings.Repeat("─", f.PreviewWidth)))

	for _, arg := range f.Args {
		b.WriteString("\n")
		if arg.Focused {
			b.WriteString(styles.Cursor.Render("▶ "))
			b.WriteString(styles.ArgName.Bold(true).Render(arg.Name))
			b.WriteString(" = ")
			b.WriteString(withCursor(arg.Value, f.ArgCursor))
			continue
		}
		b.WriteString("  ")
		b.WriteString(styles.ArgName.Render(arg.Name))
		b.WriteString(" = ")
		b.WriteString(arg.Value)
	}

	if len(f.Missing) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Dim.Render("missing: " + strings.Join(f.Missing, ", ")))
	}

	box := styles.Border.Padding(0, 1).Width(f.PreviewWidth + 2).Render(b.String())
	screen := lipgloss.Place(f.Width, max(f.Height-1, 1), lipgloss.Center, lipgloss.Center, box)
	return screen + "\n" + m.help.View(modeHelp{keys: m.keys, mode: f.Mode})
}

// renderPreview draws the command preview in the 1+ExtraLines rows it
// wraps to at the popup width
func renderPreview(f menu.Frame) string {
	rows := 1 + f.ExtraLines
	lines := make([]string, rows)
	for i := 0; i < rows && i < len(f.Preview); i++ {
		var line strings.Builder
		for _, span := range f.Preview[i] {
			line.WriteString(styles.ForSpan(span.Style).Render(span.Text))
		}
		lines[i] = line.String()
	}
	return strings.Join(lines, "\n")
}
