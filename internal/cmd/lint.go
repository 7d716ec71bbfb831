package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pthm/readcheck/internal/reporter"
	"github.com/pthm/readcheck/internal/rules"
	"github.com/pthm/readcheck/internal/ui"
)

var (
	lintAll     bool
	lintExclude []string
)

var lintCmd = &cobra.Command{
	Use:   "lint <file|dir|glob>...",
	Short: "Check observations against the readability thresholds",
	Long: `Run the readability rules over every observation and print the
issues found. Exits non-zero when any error-severity issue is found.

Examples:
  readcheck lint findings.md
  readcheck lint --all 'reports/**/*.md'
  readcheck lint --format json . > issues.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLint,
}

func init() {
	lintCmd.Flags().BoolVar(&lintAll, "all", false, "Include informational rules")
	lintCmd.Flags().StringSliceVar(&lintExclude, "exclude", nil, "Glob patterns of files to skip")
	RootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	u := GetUI()

	progress := u.StartProgress()
	defer func() {
		if progress != nil {
			progress.Done(nil)
		}
	}()

	// Stage 1: Load lexicon
	progress.SetStage(ui.StageLoadLexicon)
	a, err := newAnalyzer()
	if err != nil {
		return err
	}

	// Stage 2: Parse inputs
	progress.SetStage(ui.StageParse)
	exclude := append(append([]string{}, cfg.Batch.Exclude...), lintExclude...)
	inputs, _, err := collectInputs(a, args, exclude, false, progress)
	if err != nil {
		return err
	}

	// Stage 3: Analyze
	seq, err := analyzeInputs(cmd, a, inputs, progress)
	if err != nil {
		return err
	}

	ctx := &rules.AnalysisContext{Thresholds: cfg.Thresholds}
	for i, rep := range seq.Reports() {
		ctx.Observations = append(ctx.Observations, rules.Observed{
			File:   inputs[i].file,
			Line:   inputs[i].line,
			Text:   inputs[i].unit.Text,
			Report: rep,
		})
	}

	// Stage 4: Run rules
	ruleList := rules.DefaultRegistry().Rules(lintAll)
	progress.SetStage(ui.StageRunRules)
	progress.SetTotal(len(ruleList))

	issues, err := rules.RunAll(ctx, ruleList, func(r rules.Rule) {
		progress.ItemDone(r.Name())
	})
	if err != nil {
		return err
	}

	progress.Done(nil)
	progress = nil

	logger.Debug().Int("observations", len(ctx.Observations)).Int("issues", len(issues)).Msg("lint complete")

	// Stage 5: Report results
	var rep reporter.Reporter
	switch format {
	case "json":
		rep = reporter.NewJSONReporter(cmd.OutOrStdout())
	default:
		rep = reporter.NewTerminalReporter(cmd.OutOrStdout())
	}

	if err := rep.Report(issues); err != nil {
		return err
	}
	if reporter.ComputeSummary(issues).Errors > 0 {
		return reporter.ErrLintFailed
	}
	return nil
}
