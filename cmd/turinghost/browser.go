package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/reglet-dev/turing-sdk/host/world"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// browserModel is a table over a world snapshot.
type browserModel struct {
	views       []world.ObjectView
	shown       []world.ObjectView
	table       table.Model
	beatmapOnly bool
}

func newBrowserModel(views []world.ObjectView) *browserModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "", Width: 1},
			{Title: "Beat", Width: 8},
			{Title: "Kind", Width: 16},
			{Title: "Handle", Width: 10},
			{Title: "Position", Width: 24},
		}),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	m := &browserModel{views: views, table: t}
	m.refresh()
	return m
}

func (m *browserModel) refresh() {
	m.shown = m.shown[:0]
	for _, v := range m.views {
		if m.beatmapOnly && !v.InBeatmap {
			continue
		}
		m.shown = append(m.shown, v)
	}
	m.table.SetRows(tableRows(m.shown))
	m.table.SetCursor(0)
}

func tableRows(views []world.ObjectView) []table.Row {
	rows := make([]table.Row, 0, len(views))
	for _, v := range views {
		mark := ""
		if v.InBeatmap {
			mark = "*"
		}
		rows = append(rows, table.Row{mark, formatBeat(v), v.Kind.String(), v.Handle.String(), formatFloats(v.Position[:])})
	}
	return rows
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "b":
			m.beatmapOnly = !m.beatmapOnly
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *browserModel) selected() (world.ObjectView, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.shown) {
		return world.ObjectView{}, false
	}
	return m.shown[i], true
}

func (m *browserModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("World: %d objects", len(m.views))
	if m.beatmapOnly {
		title = fmt.Sprintf("Beatmap: %d of %d objects", len(m.shown), len(m.views))
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")

	if v, ok := m.selected(); ok {
		b.WriteString(detailStyle.Render(fmt.Sprintf("orientation %s  color %s",
			formatFloats(v.Orientation[:]), formatFloats(v.Color[:]))))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓: move • b: toggle beatmap only • q: quit"))
	return b.String()
}

func browse(views []world.ObjectView) error {
	_, err := tea.NewProgram(newBrowserModel(views), tea.WithAltScreen()).Run()
	return err
}
