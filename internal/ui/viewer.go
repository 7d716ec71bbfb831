package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pthm/readcheck/internal/config"
	"github.com/pthm/readcheck/internal/report"
)

// ViewerItem is one analyzed observation shown by the viewer
type ViewerItem struct {
	Source string
	Report report.Report
}

// ViewerModel is the bubbletea model for browsing the reports of a file.
// The left pane lists observations, the right pane shows the selected
// report with its sentence-length chart.
type ViewerModel struct {
	title      string
	items      []ViewerItem
	thresholds config.Thresholds
	render     func(report.Report) string
	cursor     int
	viewport   viewport.Model
	ready      bool
	width      int
	height     int
	showChart  bool
	keys       viewerKeyMap
	styles     viewerStyles
	chart      *Styles
}

type viewerKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	ToggleChart key.Binding
	Quit        key.Binding
}

type viewerStyles struct {
	selected  lipgloss.Style
	item      lipgloss.Style
	over      lipgloss.Style
	dim       lipgloss.Style
	pane      lipgloss.Style
	header    lipgloss.Style
	statusBar lipgloss.Style
	helpBar   lipgloss.Style
}

func defaultViewerKeyMap() viewerKeyMap {
	return viewerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup/b", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " "),
			key.WithHelp("pgdn/space", "scroll down"),
		),
		ToggleChart: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle chart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func defaultViewerStyles() viewerStyles {
	return viewerStyles{
		selected:  lipgloss.NewStyle().Background(lipgloss.Color("237")).Bold(true),
		item:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		over:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		pane:      lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderRight(true).BorderForeground(lipgloss.Color("240")),
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236")).Padding(0, 1),
		statusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1),
		helpBar:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Background(lipgloss.Color("235")),
	}
}

// NewViewerModel creates a viewer over items. render produces the detail
// text of a report.
func NewViewerModel(title string, items []ViewerItem, t config.Thresholds, render func(report.Report) string) ViewerModel {
	return ViewerModel{
		title:      title,
		items:      items,
		thresholds: t,
		render:     render,
		showChart:  true,
		keys:       defaultViewerKeyMap(),
		styles:     defaultViewerStyles(),
		chart:      NewStyles(true),
	}
}

// Cursor returns the index of the selected item
func (m ViewerModel) Cursor() int {
	return m.cursor
}

// Init initializes the model
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.refreshDetail()
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
				m.refreshDetail()
			}

		case key.Matches(msg, m.keys.PageUp):
			m.viewport.HalfViewUp()

		case key.Matches(msg, m.keys.PageDown):
			m.viewport.HalfViewDown()

		case key.Matches(msg, m.keys.ToggleChart):
			m.showChart = !m.showChart
			m.refreshDetail()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.detailWidth(), m.bodyHeight())
			m.ready = true
		} else {
			m.viewport.Width = m.detailWidth()
			m.viewport.Height = m.bodyHeight()
		}
		m.refreshDetail()
	}

	return m, nil
}

func (m *ViewerModel) listWidth() int {
	return max(min(40, m.width/3), 12)
}

func (m *ViewerModel) detailWidth() int {
	return max(m.width-m.listWidth()-2, 20)
}

// bodyHeight reserves the header, status and help lines
func (m *ViewerModel) bodyHeight() int {
	return max(m.height-3, 5)
}

// refreshDetail renders the selected report into the viewport
func (m *ViewerModel) refreshDetail() {
	if !m.ready || len(m.items) == 0 {
		return
	}

	item := m.items[m.cursor]
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n\n", item.Source)
	if m.showChart && len(item.Report.SentenceLengths) > 0 {
		sb.WriteString("Sentence length\n")
		barWidth := max(m.detailWidth()-10, 10)
		sb.WriteString(SentenceChart(item.Report.SentenceLengths, m.thresholds.MaxSentenceLength, barWidth, m.chart))
		sb.WriteString("\n")
	}
	if m.render != nil {
		sb.WriteString(m.render(item.Report))
	}

	m.viewport.SetContent(sb.String())
	m.viewport.GotoTop()
}

// View renders the viewer
func (m ViewerModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var sb strings.Builder

	header := fmt.Sprintf("%s  %d observations", m.title, len(m.items))
	sb.WriteString(m.styles.header.Width(m.width).Render(header))
	sb.WriteString("\n")

	list := m.styles.pane.Width(m.listWidth()).Height(m.bodyHeight()).Render(m.renderList())
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, " "+m.viewport.View()))
	sb.WriteString("\n")

	status := ""
	if len(m.items) > 0 {
		r := m.items[m.cursor].Report
		status = fmt.Sprintf("EFLAW %s  Grade %s  Words %d  Long sentences %d",
			r.EFLAW.Labeled, r.GradeLevel.Labeled, r.WordCount, r.LongSentenceCount)
	}
	sb.WriteString(m.styles.statusBar.Width(m.width).Render(status))
	sb.WriteString("\n")

	help := fmt.Sprintf(" ↑↓ select  pgup/pgdn scroll  c chart(%s)  q quit", boolToOnOff(m.showChart))
	sb.WriteString(m.styles.helpBar.Width(m.width).Render(help))

	return sb.String()
}

func (m *ViewerModel) renderList() string {
	height := m.bodyHeight()
	width := m.listWidth() - 2

	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := min(start+height, len(m.items))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		item := m.items[i]
		score := fmt.Sprintf("%3d", item.Report.EFLAW.Value)
		label := truncateRunes(item.Source, max(width-len(score)-1, 1))
		line := fmt.Sprintf("%-*s %s", width-len(score)-1, label, score)

		switch {
		case i == m.cursor:
			line = m.styles.selected.Render(line)
		case item.Report.EFLAW.Value > m.thresholds.EFLAWThreshold:
			line = m.styles.over.Render(line)
		default:
			line = m.styles.item.Render(line)
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return m.styles.dim.Render("no observations")
	}
	return strings.Join(lines, "\n")
}

// truncateRunes keeps the end of s, which holds the line number of a source
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[len(r)-n:])
	}
	return "…" + string(r[len(r)-n+1:])
}

func boolToOnOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
