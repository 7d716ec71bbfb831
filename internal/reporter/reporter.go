package reporter

import (
	"github.com/pthm/readcheck/internal/config"
	"github.com/pthm/readcheck/internal/report"
	"github.com/pthm/readcheck/internal/rules"
)

// Reporter defines the interface for outputting lint results
type Reporter interface {
	// Report outputs the lint results
	Report(issues []rules.Issue) error
}

// ReportWriter defines the interface for outputting readability reports
type ReportWriter interface {
	WriteReports(run Run, reports []report.Report) error
}

// Run describes the invocation that produced a set of reports
type Run struct {
	ID         string            `json:"id,omitempty"`
	Thresholds config.Thresholds `json:"thresholds"`
	Skipped    []Skipped         `json:"skipped,omitempty"`
}

// Skipped is an observation that could not be scored
type Skipped struct {
	Source string `json:"source"`
	Reason string `json:"reason"`
}

// Summary holds summary statistics for a lint run
type Summary struct {
	TotalIssues int `json:"totalIssues"`
	Errors      int `json:"errors"`
	Warnings    int `json:"warnings"`
	Suggestions int `json:"suggestions"`
	Info        int `json:"info"`
	Files       int `json:"files"`
}

// ComputeSummary computes summary statistics from issues
func ComputeSummary(issues []rules.Issue) Summary {
	s := Summary{
		TotalIssues: len(issues),
	}

	files := make(map[string]bool)
	for _, issue := range issues {
		files[issue.File] = true
		switch issue.Severity {
		case rules.Error:
			s.Errors++
		case rules.Warning:
			s.Warnings++
		case rules.Suggestion:
			s.Suggestions++
		case rules.Info:
			s.Info++
		}
	}
	s.Files = len(files)

	return s
}
