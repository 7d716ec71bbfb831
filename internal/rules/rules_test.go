package rules

import (
	"errors"
	"strings"
	"testing"

	"github.com/pthm/readcheck/internal/config"
	"github.com/pthm/readcheck/internal/lexicon"
	"github.com/pthm/readcheck/internal/readability"
	"github.com/pthm/readcheck/internal/report"
)

func testContext(reports ...report.Report) *AnalysisContext {
	ctx := &AnalysisContext{Thresholds: config.DefaultThresholds()}
	for i, r := range reports {
		ctx.Observations = append(ctx.Observations, Observed{
			File:   "notes.md",
			Line:   (i + 1) * 10,
			Report: r,
		})
	}
	return ctx
}

func easyReport() report.Report {
	return report.Report{
		ID:           1,
		EFLAW:        readability.Score{Value: 9, Band: "Very easy to understand."},
		GradeLevel:   readability.Score{Value: 8, Band: "8th grade level."},
		Jargon:       lexicon.Checklist{Text: lexicon.NoJargonFound},
		SimpleWords:  lexicon.Checklist{Text: lexicon.NoWordsToSimplify},
		Suggestions:  report.NoSuggestions,
		Polarity:     "neutral",
		Subjectivity: "objective",
	}
}

func hardReport() report.Report {
	r := easyReport()
	r.ID = 2
	r.EFLAW = readability.Score{Value: 31, Band: "Very confusing."}
	r.GradeLevel = readability.Score{Value: 19, Band: "College graduate level."}
	r.SentenceLengths = []readability.SentenceLength{
		{Key: "SentNo.1", Ordinal: 1, WordCount: 12, Text: "short enough"},
		{Key: "SentNo.2", Ordinal: 2, WordCount: 25, Text: "far too long"},
	}
	r.Jargon = lexicon.Checklist{
		Text:    "leverage >> use",
		Matches: []lexicon.Entry{{Term: "leverage", Replacement: "use"}},
	}
	r.SimpleWords = lexicon.Checklist{
		Text:    "utilise >> use",
		Matches: []lexicon.Entry{{Term: "utilise", Replacement: "use"}},
	}
	r.DifficultWords = []readability.DifficultWord{{Word: "organisation", Syllables: 5}}
	r.DifficultWordCount = 1
	r.Suggestions = "Reduce the size of the 1 lengthy sentences."
	r.Polarity = "negative"
	r.Subjectivity = "very subjective"
	return r
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{Info, "info"},
		{Suggestion, "suggestion"},
		{Warning, "warning"},
		{Error, "error"},
		{Severity(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.expected {
				t.Errorf("Severity.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRules(t *testing.T) {
	tests := []struct {
		name     string
		rule     Rule
		expected []Issue
	}{
		{
			name: "eflaw-score",
			rule: &EFLAWScoreRule{},
			expected: []Issue{{
				Rule: "eflaw-score", Severity: Error, File: "notes.md", Line: 20,
				Message: "EFLAW score 31 exceeds threshold of 25 (Very confusing.)",
				Context: "Reduce the size of the 1 lengthy sentences.",
			}},
		},
		{
			name: "grade-level",
			rule: &GradeLevelRule{},
			expected: []Issue{{
				Rule: "grade-level", Severity: Warning, File: "notes.md", Line: 20,
				Message: "Grade level 19 exceeds threshold of 17 (College graduate level.)",
			}},
		},
		{
			name: "long-sentences",
			rule: &LongSentencesRule{},
			expected: []Issue{{
				Rule: "long-sentences", Severity: Warning, File: "notes.md", Line: 20,
				Message: "Sentence 2 has 25 words, exceeds recommended maximum of 20",
				Context: "far too long",
			}},
		},
		{
			name: "jargon",
			rule: &JargonRule{},
			expected: []Issue{{
				Rule: "jargon", Severity: Suggestion, File: "notes.md", Line: 20,
				Message: `Replace jargon "leverage" with "use"`,
			}},
		},
		{
			name: "simple-words",
			rule: &SimpleWordsRule{},
			expected: []Issue{{
				Rule: "simple-words", Severity: Info, File: "notes.md", Line: 20,
				Message: `"utilise" could be simplified to "use"`,
			}},
		},
		{
			name: "difficult-words",
			rule: &DifficultWordsRule{},
			expected: []Issue{{
				Rule: "difficult-words", Severity: Info, File: "notes.md", Line: 20,
				Message: "1 difficult words: organisation [5]",
			}},
		},
		{
			name: "tone",
			rule: &ToneRule{},
			expected: []Issue{{
				Rule: "tone", Severity: Info, File: "notes.md", Line: 20,
				Message: "Tone: polarity is negative; text reads as very subjective",
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.rule.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", tt.rule.Name(), tt.name)
			}
			if tt.rule.Description() == "" {
				t.Error("Description() is empty")
			}

			issues, err := tt.rule.Run(testContext(easyReport(), hardReport()))
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if len(issues) != len(tt.expected) {
				t.Fatalf("Run() returned %d issues, want %d: %+v", len(issues), len(tt.expected), issues)
			}
			for i, want := range tt.expected {
				if issues[i] != want {
					t.Errorf("issue %d = %+v, want %+v", i, issues[i], want)
				}
			}
		})
	}
}

func TestRulesAtThreshold(t *testing.T) {
	r := easyReport()
	r.EFLAW.Value = 25
	r.GradeLevel.Value = 17
	r.SentenceLengths = []readability.SentenceLength{{Ordinal: 1, WordCount: 20}}

	ctx := testContext(r)
	for _, rule := range DefaultRegistry().Rules(true) {
		issues, err := rule.Run(ctx)
		if err != nil {
			t.Fatalf("%s: Run() error = %v", rule.Name(), err)
		}
		if len(issues) != 0 {
			t.Errorf("%s: values at the threshold raised %+v", rule.Name(), issues)
		}
	}
}

func TestToneRule_SubjectiveOnly(t *testing.T) {
	r := easyReport()
	r.Subjectivity = "subjective"

	issues, _ := (&ToneRule{}).Run(testContext(r))
	if len(issues) != 1 || issues[0].Message != "Tone: text reads as subjective" {
		t.Errorf("Run() = %+v", issues)
	}
}

func TestLongSentencesRule_TruncatesContext(t *testing.T) {
	r := easyReport()
	r.SentenceLengths = []readability.SentenceLength{
		{Ordinal: 1, WordCount: 40, Text: strings.Repeat("word ", 40)},
	}

	issues, _ := (&LongSentencesRule{}).Run(testContext(r))
	if len(issues) != 1 {
		t.Fatalf("Run() returned %d issues, want 1", len(issues))
	}
	if got := []rune(issues[0].Context); len(got) != maxContext || got[len(got)-1] != '…' {
		t.Errorf("Context = %q, want %d runes ending in an ellipsis", issues[0].Context, maxContext)
	}
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()

	all := r.Rules(true)
	if len(all) != 8 {
		t.Errorf("Rules(true) returned %d rules, want 8", len(all))
	}

	core := r.Rules(false)
	var names []string
	for _, rule := range core {
		names = append(names, rule.Name())
	}
	if got := strings.Join(names, ","); got != "eflaw-score,grade-level,long-sentences,jargon,vague-wording" {
		t.Errorf("Rules(false) = %s", got)
	}

	if r.Get("tone") == nil {
		t.Error("Get(tone) = nil")
	}
	if r.Get("nope") != nil {
		t.Error("Get(nope) should be nil")
	}
}

type failingRule struct{ ToneRule }

func (r *failingRule) Run(*AnalysisContext) ([]Issue, error) {
	return nil, errors.New("boom")
}

func TestRunAll(t *testing.T) {
	ctx := testContext(easyReport(), hardReport())

	var ran []string
	issues, err := RunAll(ctx, DefaultRegistry().Rules(false), func(r Rule) {
		ran = append(ran, r.Name())
	})
	if err != nil {
		t.Fatalf("RunAll() error = %v", err)
	}
	if len(issues) != 4 {
		t.Errorf("RunAll() returned %d issues, want 4", len(issues))
	}
	if len(ran) != 5 {
		t.Errorf("done called %d times, want 5", len(ran))
	}

	if _, err := RunAll(ctx, []Rule{&failingRule{}}, nil); err == nil {
		t.Error("RunAll() with a failing rule should return an error")
	}
}

func TestVagueWordingRule(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "clean text",
			text:     "Three of 40 invoices were approved after payment.",
			expected: nil,
		},
		{
			name:     "incomplete list",
			text:     "Invoices, orders, etc. were not reviewed.",
			expected: []string{"vague-wording/incomplete-list"},
		},
		{
			name:     "hedged and unquantified",
			text:     "It appears that several transactions were not approved.",
			expected: []string{"vague-wording/hedging", "vague-wording/unquantified"},
		},
		{
			name:     "condition and criteria",
			text:     "Access is reviewed as needed in an appropriate manner.",
			expected: []string{"vague-wording/unclear-criteria", "vague-wording/vague-condition"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(easyReport())
			ctx.Observations[0].Text = tt.text

			issues, err := (&VagueWordingRule{}).Run(ctx)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			var got []string
			for _, issue := range issues {
				if issue.Severity != Suggestion || issue.Line != 10 {
					t.Errorf("issue = %+v", issue)
				}
				got = append(got, issue.Rule)
			}
			if strings.Join(got, ",") != strings.Join(tt.expected, ",") {
				t.Errorf("Run() rules = %v, want %v", got, tt.expected)
			}
		})
	}
}
