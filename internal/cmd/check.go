package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/readcheck/internal/report"
	"github.com/pthm/readcheck/internal/reporter"
)

var checkCmd = &cobra.Command{
	Use:   "check [text...]",
	Short: "Check the readability of a single text",
	Long: `Check the readability of one text given as arguments or on stdin.

Examples:
  readcheck check "The control was not operating effectively during the year."
  pbpaste | readcheck check
  readcheck check --format json < observation.txt`,
	RunE: runCheck,
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if len(args) == 0 {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(b)
	}

	a, err := newAnalyzer()
	if err != nil {
		return err
	}

	rep, err := a.Analyze(text)
	if err != nil {
		return fmt.Errorf("checking text: %w", err)
	}

	run := reporter.Run{Thresholds: cfg.Thresholds}
	return reportWriter(cmd.OutOrStdout()).WriteReports(run, []report.Report{rep})
}
