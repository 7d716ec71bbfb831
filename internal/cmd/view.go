package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pthm/readcheck/internal/reporter"
	"github.com/pthm/readcheck/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Browse the reports of a file interactively",
	Long: `Open an interactive viewer listing the observations of a file with
the readability report and sentence-length chart of the selected one.

Keyboard shortcuts:
  ↑/k, ↓/j       select observation
  pgup/pgdn      scroll the report
  c              toggle the sentence-length chart
  q              quit`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	RootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	u := GetUI()
	if !u.IsInteractive() {
		return errors.New("view needs an interactive terminal; use batch for piped output")
	}

	spinner := u.StartSimpleSpinner(u.ErrWriter, fmt.Sprintf("Analyzing %s...", filepath.Base(args[0])))
	items, err := viewItems(cmd, args[0])
	spinner.Stop()
	if err != nil {
		return err
	}

	render := reporter.NewReadabilityReporter(io.Discard, u, cfg.Thresholds).Render
	m := ui.NewViewerModel(args[0], items, cfg.Thresholds, render)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}

func viewItems(cmd *cobra.Command, path string) ([]ui.ViewerItem, error) {
	a, err := newAnalyzer()
	if err != nil {
		return nil, err
	}

	inputs, _, err := collectInputs(a, []string{path}, nil, false, nil)
	if err != nil {
		return nil, err
	}

	seq, err := analyzeInputs(cmd, a, inputs, nil)
	if err != nil {
		return nil, err
	}

	items := make([]ui.ViewerItem, 0, seq.Len())
	for i, rep := range seq.Reports() {
		items = append(items, ui.ViewerItem{Source: inputs[i].unit.Source, Report: rep})
	}
	return items, nil
}
