package cmd

import (
	"fmt"

	"github.com/pthm/readcheck/internal/discovery"
	"github.com/pthm/readcheck/internal/parser"
	"github.com/pthm/readcheck/internal/report"
	"github.com/pthm/readcheck/internal/reporter"
	"github.com/pthm/readcheck/internal/ui"
)

// input is one observation queued for analysis
type input struct {
	unit report.Unit
	file string
	line int
}

// collectInputs expands args, parses every file and keeps the observations
// the analyzer can score. Unscorable observations are returned as skipped,
// or fail the run when strict is set.
func collectInputs(a *report.Analyzer, args, exclude []string, strict bool, progress *ui.ProgressController) ([]input, []reporter.Skipped, error) {
	files, err := discovery.Expand(args, exclude)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug().Int("files", len(files)).Strs("exclude", exclude).Msg("discovered inputs")

	var (
		inputs  []input
		skipped []reporter.Skipped
	)
	for _, file := range files {
		progress.SetOperation(file)

		doc, err := parser.Parse(file)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug().
			Str("file", file).
			Str("type", doc.FileType.String()).
			Int("observations", len(doc.Observations)).
			Msg("parsed input")

		for _, o := range doc.Observations {
			source := doc.Source(o)
			if err := a.Validate(o.Text); err != nil {
				if strict {
					return nil, nil, fmt.Errorf("%s: %w", source, err)
				}
				logger.Info().Str("source", source).Err(err).Msg("skipped observation")
				skipped = append(skipped, reporter.Skipped{Source: source, Reason: err.Error()})
				continue
			}
			inputs = append(inputs, input{
				unit: report.Unit{Source: source, Text: o.Text},
				file: file,
				line: o.Line,
			})
		}
	}

	return inputs, skipped, nil
}

func units(inputs []input) []report.Unit {
	out := make([]report.Unit, len(inputs))
	for i, in := range inputs {
		out[i] = in.unit
	}
	return out
}
