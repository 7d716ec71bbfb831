package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Stage represents the current stage of a batch run
type Stage int

const (
	StageLoadLexicon Stage = iota
	StageParse
	StageAnalyze
	StageRunRules
	StageDone
)

// Message types for updating the model
type (
	StageMsg     Stage
	OperationMsg string
	TotalMsg     int
	ItemDoneMsg  string
	DoneMsg      struct{ Err error }
)

// Model is the Bubbletea model for progress display
type Model struct {
	stage     Stage
	spinner   spinner.Model
	progress  progress.Model
	currentOp string
	total     int
	done      int
	width     int
	quitting  bool
	err       error
}

// NewModel creates a new progress model
func NewModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	p := progress.New(progress.WithDefaultGradient())

	return Model{
		stage:    StageLoadLexicon,
		spinner:  s,
		progress: p,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-4, 60)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StageMsg:
		m.stage = Stage(msg)
		m.currentOp = ""
		m.done = 0
		return m, nil

	case OperationMsg:
		m.currentOp = string(msg)
		return m, nil

	case TotalMsg:
		m.total = int(msg)
		return m, nil

	case ItemDoneMsg:
		m.done++
		m.currentOp = string(msg)
		return m, nil

	case DoneMsg:
		m.err = msg.Err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// Percent returns the completed share of the current stage.
func (m Model) Percent() float64 {
	if m.total <= 0 {
		return 0
	}
	return min(float64(m.done)/float64(m.total), 1)
}

// View renders the model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	switch m.stage {
	case StageLoadLexicon:
		sb.WriteString(m.spinner.View())
		sb.WriteString(" Loading lexicon...")

	case StageParse:
		sb.WriteString(m.spinner.View())
		sb.WriteString(" Reading inputs")
		if m.currentOp != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", m.currentOp))
		}

	case StageAnalyze, StageRunRules:
		if m.total > 0 {
			sb.WriteString(m.progress.ViewAs(m.Percent()))
			sb.WriteString(fmt.Sprintf(" %d/%d\n", m.done, m.total))
		}
		sb.WriteString(m.spinner.View())
		sb.WriteString(" ")
		switch {
		case m.currentOp != "":
			sb.WriteString(m.currentOp)
		case m.stage == StageAnalyze:
			sb.WriteString("Analyzing observations...")
		default:
			sb.WriteString("Running rules...")
		}
	}

	return sb.String()
}
