package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// maxContext is the rune length sentence context is truncated to.
const maxContext = 120

// EFLAWScoreRule flags observations whose EFLAW score exceeds the threshold
type EFLAWScoreRule struct{}

func (r *EFLAWScoreRule) Name() string {
	return "eflaw-score"
}

func (r *EFLAWScoreRule) Description() string {
	return "Checks that the EFLAW readability score stays within the threshold"
}

func (r *EFLAWScoreRule) Config() RuleConfig {
	return RuleConfig{}
}

func (r *EFLAWScoreRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	limit := ctx.Thresholds.EFLAWThreshold

	var issues []Issue
	for _, o := range ctx.ObservationsMatching(func(o Observed) bool {
		return o.Report.EFLAW.Value > limit
	}) {
		issue := issueAt(r, Error, o, fmt.Sprintf(
			"EFLAW score %d exceeds threshold of %d (%s)",
			o.Report.EFLAW.Value, limit, o.Report.EFLAW.Band))
		issue.Context = o.Report.Suggestions
		issues = append(issues, issue)
	}
	return issues, nil
}

// GradeLevelRule flags observations whose Gunning-Fog grade exceeds the threshold
type GradeLevelRule struct{}

func (r *GradeLevelRule) Name() string {
	return "grade-level"
}

func (r *GradeLevelRule) Description() string {
	return "Checks that the Gunning-Fog grade level stays within the threshold"
}

func (r *GradeLevelRule) Config() RuleConfig {
	return RuleConfig{}
}

func (r *GradeLevelRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	limit := ctx.Thresholds.GunningFogThreshold

	var issues []Issue
	for _, o := range ctx.ObservationsMatching(func(o Observed) bool {
		return o.Report.GradeLevel.Value > limit
	}) {
		issues = append(issues, issueAt(r, Warning, o, fmt.Sprintf(
			"Grade level %d exceeds threshold of %d (%s)",
			o.Report.GradeLevel.Value, limit, o.Report.GradeLevel.Band)))
	}
	return issues, nil
}

// LongSentencesRule flags each sentence longer than the maximum length
type LongSentencesRule struct{}

func (r *LongSentencesRule) Name() string {
	return "long-sentences"
}

func (r *LongSentencesRule) Description() string {
	return "Checks for sentences longer than the recommended maximum"
}

func (r *LongSentencesRule) Config() RuleConfig {
	return RuleConfig{}
}

func (r *LongSentencesRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	limit := ctx.Thresholds.MaxSentenceLength

	var issues []Issue
	for _, o := range ctx.Observations {
		for _, s := range o.Report.SentenceLengths {
			if s.WordCount <= limit {
				continue
			}
			issue := issueAt(r, Warning, o, fmt.Sprintf(
				"Sentence %d has %d words, exceeds recommended maximum of %d",
				s.Ordinal, s.WordCount, limit))
			issue.Context = truncate(s.Text, maxContext)
			issues = append(issues, issue)
		}
	}
	return issues, nil
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "…"
}
