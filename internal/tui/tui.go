// Package tui provides a Bubble Tea terminal user interface for steam-stats.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/steam-stats/internal/analysis"
	"github.com/handiism/steam-stats/internal/config"
	"github.com/handiism/steam-stats/internal/report"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

const (
	// maxLogs is how many progress messages the log pane keeps.
	maxLogs = 10

	// defaultYearRows is the year table height when TopYears is unlimited.
	defaultYearRows = 10
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateLoading
	StateResults
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   analysis.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	freeBar   progress.Model
	paidBar   progress.Model
	years     table.Model
	settings  *config.Settings
	logs      []LogEntry
	summary   analysis.Summary
	source    string
	err       error

	width  int
	height int
}

// LoadDoneMsg is sent when the data file has been loaded and analyzed.
type LoadDoneMsg struct {
	Path    string
	Summary analysis.Summary
	Events  []analysis.ProgressEvent
	Err     error
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	ti := textinput.New()
	ti.Placeholder = config.DefaultDataFile
	ti.SetValue(settings.ResolveDataPath())
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	freeBar := progress.New(progress.WithGradient("#95E1A3", "#4ECDC4"))
	freeBar.Width = 40
	paidBar := progress.New(progress.WithGradient("#FFE66D", "#FF6B6B"))
	paidBar.Width = 40

	rows := settings.TopYears
	if rows <= 0 {
		rows = defaultYearRows
	}
	years := table.New(
		table.WithColumns([]table.Column{
			{Title: "Ano", Width: 6},
			{Title: "Jogos", Width: 8},
		}),
		table.WithHeight(rows+1),
	)

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		freeBar:   freeBar,
		paidBar:   paidBar,
		years:     years,
		settings:  settings,
		logs:      make([]LogEntry, 0),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := min(max(msg.Width-30, 20), 60)
		m.freeBar.Width = barWidth
		m.paidBar.Width = barWidth
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.state != StateLoading {
				return m, tea.Quit
			}

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				m.state = StateLoading
				return m, tea.Batch(m.loadData(), m.spinner.Tick)
			}

		case "q":
			if m.state == StateResults || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateResults || m.state == StateError {
				m.state = StateInput
				m.logs = nil
				m.err = nil
				m.summary = analysis.Summary{}
				m.source = ""
				m.years.SetRows(nil)
				m.textInput.Focus()
				return m, textinput.Blink
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case LoadDoneMsg:
		for _, event := range msg.Events {
			m.appendLog(event)
		}
		m.summary = msg.Summary
		m.source = msg.Path
		m.years.SetRows(yearRows(analysis.TopYears(msg.Summary.Years, m.settings.TopYears)))
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.state = StateResults
		}
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) appendLog(event analysis.ProgressEvent) {
	if event.Level == analysis.LevelVerbose && !m.settings.Verbose {
		return
	}
	m.logs = append(m.logs, LogEntry{Message: event.Message, Level: event.Level})
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

func yearRows(counts []analysis.YearCount) []table.Row {
	rows := make([]table.Row, len(counts))
	for i, yc := range counts {
		rows[i] = table.Row{yc.Year, strconv.Itoa(yc.Count)}
	}
	return rows
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎮 Steam Stats"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Free vs. paid, busiest release year and average price"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateLoading:
		b.WriteString(m.viewLoading())
	case StateResults:
		b.WriteString(m.viewResults())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("CSV file to analyze:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Plain, .gz or .zst files with \"Price\" and \"Release date\" columns"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewLoading() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Loading " + m.textInput.Value() + "..."))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewResults() string {
	var b strings.Builder

	b.WriteString(dimStyle.Render("File: " + m.source))
	b.WriteString("\n")
	b.WriteString(report.Styled(m.summary))
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf("Gratuitos %6.2f%% ", m.summary.FreePercent)))
	b.WriteString(m.freeBar.ViewAs(m.summary.FreePercent / 100))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Pagos     %6.2f%% ", m.summary.PaidPercent)))
	b.WriteString(m.paidBar.ViewAs(m.summary.PaidPercent / 100))
	b.WriteString("\n\n")

	if len(m.summary.Years) > 0 {
		b.WriteString(subtitleStyle.Render("Lançamentos por ano:"))
		b.WriteString("\n")
		b.WriteString(m.years.View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
		b.WriteString("\n\n")
	}
	b.WriteString(report.Styled(m.summary))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case analysis.LevelError:
			style = errorStyle
			prefix = "✗"
		case analysis.LevelWarning:
			style = warningStyle
			prefix = "!"
		case analysis.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case analysis.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: analyze • esc: quit"
	case StateLoading:
		return "ctrl+c: quit"
	case StateResults, StateError:
		return "r: another file • q: quit"
	}
	return ""
}

// loadData loads and analyzes the file named in the text input.
func (m Model) loadData() tea.Cmd {
	path := strings.TrimSpace(m.textInput.Value())
	opts := m.settings.ToLoadOptions()

	return func() tea.Msg {
		var events []analysis.ProgressEvent
		a := analysis.New(path, opts, func(event analysis.ProgressEvent) {
			events = append(events, event)
		})
		summary := a.Summary()

		return LoadDoneMsg{
			Path:    a.Path(),
			Summary: summary,
			Events:  events,
			Err:     a.Err(),
		}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
