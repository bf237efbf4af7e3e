package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	paddingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#444444"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	fieldColors = []lipgloss.Color{
		"#98FB98", "#87CEEB", "#FFD700", "#FFA07A",
		"#DDA0DD", "#40E0D0", "#F0E68C", "#FF69B4",
	}
)

type model struct {
	err    error
	report *report
	input  textinput.Model
	table  table.Model
}

func newModel(names []string) *model {
	ti := textinput.New()
	ti.Placeholder = "s32 f64 s8"
	ti.Prompt = "fields: "
	ti.Width = 50
	ti.SetValue(strings.Join(names, " "))
	ti.Focus()

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "type", Width: 6},
			{Title: "offset", Width: 6},
			{Title: "size", Width: 4},
			{Title: "align", Width: 5},
			{Title: "pad", Width: 3},
		}),
		table.WithHeight(10),
	)

	m := &model{input: ti, table: t}
	m.recompute()
	return m
}

func (m *model) recompute() {
	names := strings.Fields(m.input.Value())
	if len(names) == 0 {
		m.report, m.err = nil, nil
		m.table.SetRows(nil)
		return
	}
	r, err := newReport(names)
	if err != nil {
		m.err = err
		return
	}
	m.report, m.err = r, nil

	rows := make([]table.Row, len(names))
	for k, name := range names {
		f := r.desc.Fields[k]
		rows[k] = table.Row{
			strconv.Itoa(k),
			name,
			strconv.Itoa(int(r.desc.Offset(k))),
			strconv.Itoa(int(f.Size)),
			strconv.Itoa(int(f.Align)),
			strconv.Itoa(int(r.desc.Padding(k))),
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			if m.input.Focused() {
				m.input.Blur()
				m.table.Focus()
			} else {
				m.table.Blur()
				m.input.Focus()
			}
			return m, nil

		case "enter":
			m.recompute()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.input.Focused() {
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *model) byteMapView() string {
	var b strings.Builder
	selected := m.table.Cursor()
	for i, k := range m.report.byteMap() {
		if i > 0 && i%8 == 0 {
			b.WriteByte(' ')
		}
		cell := string(fieldRune(k))
		if k < 0 {
			b.WriteString(paddingStyle.Render(cell))
			continue
		}
		style := lipgloss.NewStyle().Foreground(fieldColors[k%len(fieldColors)])
		if k == selected && m.table.Focused() {
			style = style.Reverse(true)
		}
		b.WriteString(style.Render(cell))
	}
	return b.String()
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Record Layout"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	case m.report != nil:
		b.WriteString(m.table.View())
		b.WriteString("\n\n")
		b.WriteString(summaryStyle.Render(m.report.summary()))
		b.WriteString("\n")
		b.WriteString(m.byteMapView())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter recompute • tab switch focus • ↑/↓ select field • esc quit"))
	return b.String()
}
