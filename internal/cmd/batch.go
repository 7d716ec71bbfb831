package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pthm/readcheck/internal/report"
	"github.com/pthm/readcheck/internal/reporter"
	"github.com/pthm/readcheck/internal/ui"
)

var (
	batchExclude []string
	batchWorkers int
	batchStrict  bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <file|dir|glob>...",
	Short: "Report on every observation in a set of files",
	Long: `Split each input into observations and print one readability report
per observation, in input order.

Markdown files yield one observation per paragraph or list item, plain
text files one per blank-line separated paragraph, and JSON or YAML files
one per entry of their observation list.

Examples:
  readcheck batch findings.md
  readcheck batch 'reports/**/*.md' --exclude '**/drafts/**'
  readcheck batch --format json observations.yaml > reports.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringSliceVar(&batchExclude, "exclude", nil, "Glob patterns of files to skip")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Observations analyzed concurrently (default from config)")
	batchCmd.Flags().BoolVar(&batchStrict, "strict", false, "Fail on the first observation that cannot be scored")
	RootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
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
	exclude := append(append([]string{}, cfg.Batch.Exclude...), batchExclude...)
	inputs, skipped, err := collectInputs(a, args, exclude, batchStrict, progress)
	if err != nil {
		return err
	}

	// Stage 3: Analyze
	seq, err := analyzeInputs(cmd, a, inputs, progress)
	if err != nil {
		return err
	}

	progress.Done(nil)
	progress = nil

	run := reporter.Run{
		ID:         uuid.NewString(),
		Thresholds: cfg.Thresholds,
		Skipped:    skipped,
	}
	logger.Info().
		Str("run", run.ID).
		Int("reports", seq.Len()).
		Int("skipped", len(skipped)).
		Msg("batch complete")

	return reportWriter(cmd.OutOrStdout()).WriteReports(run, seq.Reports())
}

// analyzeInputs measures inputs on the configured worker count, reporting
// progress per observation
func analyzeInputs(cmd *cobra.Command, a *report.Analyzer, inputs []input, progress *ui.ProgressController) (*report.Sequence, error) {
	workers := cfg.Batch.Workers
	if batchWorkers > 0 {
		workers = batchWorkers
	}

	progress.SetStage(ui.StageAnalyze)
	progress.SetTotal(len(inputs))

	parts, err := a.MeasureAll(cmd.Context(), units(inputs), workers, func(u report.Unit) {
		progress.ItemDone(u.Source)
	})
	if err != nil {
		return nil, fmt.Errorf("analyzing observations: %w", err)
	}
	return a.Collect(parts), nil
}
