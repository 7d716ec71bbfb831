package rules

import (
	"fmt"
	"strings"
)

// JargonRule suggests a replacement for each jargon term found
type JargonRule struct{}

func (r *JargonRule) Name() string {
	return "jargon"
}

func (r *JargonRule) Description() string {
	return "Checks for jargon that has a plainer replacement"
}

func (r *JargonRule) Config() RuleConfig {
	return RuleConfig{}
}

func (r *JargonRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	var issues []Issue
	for _, o := range ctx.Observations {
		for _, m := range o.Report.Jargon.Matches {
			issues = append(issues, issueAt(r, Suggestion, o,
				fmt.Sprintf("Replace jargon %q with %q", m.Term, m.Replacement)))
		}
	}
	return issues, nil
}

// SimpleWordsRule lists words that have a simpler alternative
type SimpleWordsRule struct{}

func (r *SimpleWordsRule) Name() string {
	return "simple-words"
}

func (r *SimpleWordsRule) Description() string {
	return "Lists words that have a simpler alternative"
}

func (r *SimpleWordsRule) Config() RuleConfig {
	return RuleConfig{Informational: true}
}

func (r *SimpleWordsRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	var issues []Issue
	for _, o := range ctx.Observations {
		for _, m := range o.Report.SimpleWords.Matches {
			issues = append(issues, issueAt(r, Info, o,
				fmt.Sprintf("%q could be simplified to %q", m.Term, m.Replacement)))
		}
	}
	return issues, nil
}

// DifficultWordsRule lists the difficult words of each observation
type DifficultWordsRule struct{}

func (r *DifficultWordsRule) Name() string {
	return "difficult-words"
}

func (r *DifficultWordsRule) Description() string {
	return "Lists words with four or more syllables"
}

func (r *DifficultWordsRule) Config() RuleConfig {
	return RuleConfig{Informational: true}
}

func (r *DifficultWordsRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	var issues []Issue
	for _, o := range ctx.ObservationsMatching(func(o Observed) bool {
		return o.Report.DifficultWordCount > 0
	}) {
		words := make([]string, 0, len(o.Report.DifficultWords))
		for _, w := range o.Report.DifficultWords {
			words = append(words, w.String())
		}
		issues = append(issues, issueAt(r, Info, o, fmt.Sprintf(
			"%d difficult words: %s", o.Report.DifficultWordCount, strings.Join(words, ", "))))
	}
	return issues, nil
}

// ToneRule notes observations that are not neutral and objective
type ToneRule struct{}

func (r *ToneRule) Name() string {
	return "tone"
}

func (r *ToneRule) Description() string {
	return "Notes observations with a non-neutral or subjective tone"
}

func (r *ToneRule) Config() RuleConfig {
	return RuleConfig{Informational: true}
}

func (r *ToneRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	var issues []Issue
	for _, o := range ctx.Observations {
		var notes []string
		if o.Report.Polarity != "neutral" {
			notes = append(notes, "polarity is "+o.Report.Polarity)
		}
		if strings.HasSuffix(o.Report.Subjectivity, "subjective") {
			notes = append(notes, "text reads as "+o.Report.Subjectivity)
		}
		if len(notes) == 0 {
			continue
		}
		issues = append(issues, issueAt(r, Info, o, "Tone: "+strings.Join(notes, "; ")))
	}
	return issues, nil
}
