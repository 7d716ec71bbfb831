package rules

import (
	"github.com/pthm/readcheck/internal/config"
	"github.com/pthm/readcheck/internal/report"
)

// Severity represents the severity level of an issue
type Severity int

const (
	Info Severity = iota
	Suggestion
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Suggestion:
		return "suggestion"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Issue represents a linting issue
type Issue struct {
	Rule     string
	Severity Severity
	Message  string
	File     string
	Line     int
	Context  string
}

// Observed is one analyzed observation of a file.
type Observed struct {
	File   string
	Line   int
	Text   string
	Report report.Report
}

// AnalysisContext provides context for rule analysis
type AnalysisContext struct {
	Thresholds   config.Thresholds
	Observations []Observed
}

// ObservationsMatching returns the observations matching the predicate.
func (ctx *AnalysisContext) ObservationsMatching(predicate func(Observed) bool) []Observed {
	var out []Observed
	for _, o := range ctx.Observations {
		if predicate(o) {
			out = append(out, o)
		}
	}
	return out
}

// RuleConfig defines how a rule should be invoked
type RuleConfig struct {
	// Informational rules describe the text without flagging a problem.
	// They only run when requested with --all.
	Informational bool
}

// Rule defines the interface for lint rules
type Rule interface {
	// Name returns the unique identifier for this rule
	Name() string

	// Description returns a human-readable description
	Description() string

	// Config returns the rule's configuration
	Config() RuleConfig

	// Run executes the rule and returns any issues found.
	Run(ctx *AnalysisContext) ([]Issue, error)
}

// issueAt returns an issue located at o.
func issueAt(rule Rule, severity Severity, o Observed, message string) Issue {
	return Issue{
		Rule:     rule.Name(),
		Severity: severity,
		Message:  message,
		File:     o.File,
		Line:     o.Line,
	}
}
