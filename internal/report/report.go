// Package report assembles readability reports from the individual scores
// and runs the analysis pipeline over one or many texts.
package report

import (
	"github.com/pthm/readcheck/internal/lexicon"
	"github.com/pthm/readcheck/internal/readability"
	"github.com/pthm/readcheck/internal/sentiment"
)

// Parts are the component results a Report is assembled from.
type Parts struct {
	Source        string
	EFLAW         readability.EFLAWResult
	GradeLevel    readability.Score
	Metrics       readability.Metrics
	LongSentences readability.LongSentences
	Jargon        lexicon.Checklist
	SimpleWords   lexicon.Checklist
	Suggestions   Suggestions
	Sentiment     sentiment.Labels
}

// Report is the readability report of one text. A Report owns its slices;
// nothing else holds a reference to them after assembly.
type Report struct {
	ID     int    `json:"id"`
	Source string `json:"source,omitempty"`

	EFLAW      readability.Score `json:"eflaw"`
	GradeLevel readability.Score `json:"gradeLevel"`

	SentenceCount   int                          `json:"sentenceCount"`
	SentenceLengths []readability.SentenceLength `json:"sentenceLengths"`
	MiniWordCount   int                          `json:"miniWordCount"`

	WordCount          int                         `json:"wordCount"`
	StatsSentenceCount int                         `json:"statsSentenceCount"`
	SyllableCount      int                         `json:"syllableCount"`
	WordSentenceRatio  int                         `json:"wordSentenceRatio"`
	DifficultWords     []readability.DifficultWord `json:"difficultWords"`
	DifficultWordCount int                         `json:"difficultWordCount"`

	LongSentenceCount      int `json:"longSentenceCount"`
	LongSentenceCandidates int `json:"longSentenceCandidates"`

	Jargon      lexicon.Checklist `json:"jargon"`
	SimpleWords lexicon.Checklist `json:"simpleWords"`

	Suggestions     string   `json:"suggestions"`
	SuggestionLines []string `json:"suggestionLines"`

	Polarity          string  `json:"polarity"`
	Subjectivity      string  `json:"subjectivity"`
	PolarityValue     float64 `json:"polarityValue"`
	SubjectivityValue float64 `json:"subjectivityValue"`
}

// Assemble builds the report with the given id from parts.
func Assemble(id int, parts Parts) Report {
	return Report{
		ID:     id,
		Source: parts.Source,

		EFLAW:      parts.EFLAW.Score,
		GradeLevel: parts.GradeLevel,

		SentenceCount:   parts.EFLAW.SentenceCount,
		SentenceLengths: clone(parts.EFLAW.SentenceLengths),
		MiniWordCount:   parts.EFLAW.MiniWordCount,

		WordCount:          parts.Metrics.WordCount,
		StatsSentenceCount: parts.Metrics.SentenceCount,
		SyllableCount:      parts.Metrics.SyllableCount,
		WordSentenceRatio:  parts.Metrics.WordSentenceRatio,
		DifficultWords:     clone(parts.Metrics.DifficultWords),
		DifficultWordCount: parts.Metrics.DifficultWordCount,

		LongSentenceCount:      parts.LongSentences.Count,
		LongSentenceCandidates: parts.LongSentences.Considered,

		Jargon:      cloneChecklist(parts.Jargon),
		SimpleWords: cloneChecklist(parts.SimpleWords),

		Suggestions:     parts.Suggestions.Text(),
		SuggestionLines: clone(parts.Suggestions.Lines),

		Polarity:          parts.Sentiment.Polarity,
		Subjectivity:      parts.Sentiment.Subjectivity,
		PolarityValue:     parts.Sentiment.PolarityValue,
		SubjectivityValue: parts.Sentiment.SubjectivityValue,
	}
}

// clone returns a copy of r that shares no slices with it.
func (r Report) clone() Report {
	r.SentenceLengths = clone(r.SentenceLengths)
	r.DifficultWords = clone(r.DifficultWords)
	r.Jargon = cloneChecklist(r.Jargon)
	r.SimpleWords = cloneChecklist(r.SimpleWords)
	r.SuggestionLines = clone(r.SuggestionLines)
	return r
}

func clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func cloneChecklist(c lexicon.Checklist) lexicon.Checklist {
	return lexicon.Checklist{Text: c.Text, Matches: clone(c.Matches)}
}

// Sequence is an ordered collection of reports whose ids match their
// 1-based position.
type Sequence struct {
	reports []Report
}

// NewSequence returns an empty sequence.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Append assembles parts as the next report and returns it.
func (s *Sequence) Append(parts Parts) Report {
	r := Assemble(len(s.reports)+1, parts)
	s.reports = append(s.reports, r)
	return r.clone()
}

// Len returns the number of reports.
func (s *Sequence) Len() int {
	return len(s.reports)
}

// Reports returns the reports in order.
func (s *Sequence) Reports() []Report {
	out := make([]Report, len(s.reports))
	for i, r := range s.reports {
		out[i] = r.clone()
	}
	return out
}

// Get returns the report with the given id.
func (s *Sequence) Get(id int) (Report, bool) {
	if id < 1 || id > len(s.reports) {
		return Report{}, false
	}
	return s.reports[id-1].clone(), true
}
