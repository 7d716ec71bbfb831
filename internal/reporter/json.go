package reporter

import (
	"encoding/json"
	"io"

	"github.com/pthm/readcheck/internal/report"
	"github.com/pthm/readcheck/internal/rules"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format of a lint run
type JSONOutput struct {
	Issues  []JSONIssue `json:"issues"`
	Summary Summary     `json:"summary"`
}

// JSONIssue represents an issue in JSON format
type JSONIssue struct {
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	File     string `json:"file"`
	Line     int    `json:"line,omitempty"`
	Context  string `json:"context,omitempty"`
}

// JSONReports represents the JSON output format of readability reports
type JSONReports struct {
	Run     Run             `json:"run"`
	Reports []report.Report `json:"reports"`
}

// Report outputs issues as JSON
func (r *JSONReporter) Report(issues []rules.Issue) error {
	output := JSONOutput{
		Issues:  make([]JSONIssue, 0, len(issues)),
		Summary: ComputeSummary(issues),
	}

	for _, issue := range issues {
		output.Issues = append(output.Issues, JSONIssue{
			Rule:     issue.Rule,
			Severity: issue.Severity.String(),
			Message:  issue.Message,
			File:     issue.File,
			Line:     issue.Line,
			Context:  issue.Context,
		})
	}

	return r.encode(output)
}

// WriteReports outputs readability reports as JSON
func (r *JSONReporter) WriteReports(run Run, reports []report.Report) error {
	if reports == nil {
		reports = []report.Report{}
	}
	return r.encode(JSONReports{Run: run, Reports: reports})
}

func (r *JSONReporter) encode(v any) error {
	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
