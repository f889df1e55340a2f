// Package ui draws the bubbletea progress view of a multi-file decode.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"ember/internal/driver"
)

// fileRow is the last known state of one input.
type fileRow struct {
	path     string
	stage    driver.Stage
	status   driver.Status
	literals int
}

// label: "cached" для повторного использования, иначе по стадии.
func (r fileRow) label() string {
	switch r.status {
	case driver.StatusQueued:
		return "queued"
	case driver.StatusError:
		return "error"
	case driver.StatusDone:
		if r.stage == driver.StageCache {
			return "cached"
		}
		return "done"
	}
	if r.stage == driver.StageLoad {
		return "loading"
	}
	return "decoding"
}

// weight is how far along the row is, for the bar.
func (r fileRow) weight() float64 {
	switch {
	case r.status.Final():
		return 1
	case r.status == driver.StatusQueued:
		return 0
	case r.stage == driver.StageLoad:
		return 0.2
	}
	return 0.5
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	labelStyle = map[string]lipgloss.Style{
		"done":     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"cached":   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"error":    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		"loading":  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		"decoding": lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	}
	plainStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

type progressModel struct {
	title   string
	events  <-chan driver.Event
	spinner spinner.Model
	bar     progress.Model
	rows    []fileRow
	byPath  map[string]int
	width   int
	closed  bool
}

type eventMsg driver.Event
type closedMsg struct{}

// NewProgressModel renders progress of files from events and quits once
// events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	m := &progressModel{
		title:   title,
		events:  events,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("6")))),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(76)),
		rows:    make([]fileRow, len(files)),
		byPath:  make(map[string]int, len(files)),
		width:   80,
	}
	for i, f := range files {
		m.rows[i] = fileRow{path: f}
		m.byPath[f] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next())
}

// next ждёт следующее событие драйвера.
func (m *progressModel) next() tea.Cmd {
	return func() tea.Msg {
		if ev, ok := <-m.events; ok {
			return eventMsg(ev)
		}
		return closedMsg{}
	}
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(driver.Event(msg)), m.next())
	case closedMsg:
		m.closed = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.closed {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) apply(ev driver.Event) tea.Cmd {
	i, ok := m.byPath[ev.File]
	if !ok {
		return nil
	}
	r := &m.rows[i]
	r.stage, r.status = ev.Stage, ev.Status
	if ev.Status.Final() {
		r.literals = ev.Literals
	}
	var sum float64
	for _, row := range m.rows {
		sum += row.weight()
	}
	return m.bar.SetPercent(sum / float64(len(m.rows)))
}

// tally returns finished files and literals decoded so far.
func (m *progressModel) tally() (files, literals int) {
	for _, r := range m.rows {
		if r.status.Final() {
			files++
			literals += r.literals
		}
	}
	return files, literals
}

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	files, literals := m.tally()
	header := fmt.Sprintf("%s (%d/%d files, %d literals)", m.title, files, len(m.rows), literals)
	if m.closed {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")
	const labelWidth = 10
	pathWidth := max(m.width-labelWidth-4, 20)
	for _, r := range m.rows {
		label := r.label()
		style, ok := labelStyle[label]
		if !ok {
			style = plainStyle
		}
		fmt.Fprintf(&b, "  %s %s\n", style.Render(fmt.Sprintf("%*s", labelWidth, label)), truncate(r.path, pathWidth))
	}
	b.WriteByte('\n')
	if m.closed {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteByte('\n')
	return b.String()
}

// truncate cuts value to width display cells; wide runes count twice.
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	tail := "..."
	if width <= len(tail) {
		tail = ""
	}
	return runewidth.Truncate(value, width, tail)
}
