package report

import (
	"fmt"
	"strings"

	"github.com/pthm/readcheck/internal/config"
	"github.com/pthm/readcheck/internal/lexicon"
)

// NoSuggestions is the suggestion text of a report within the EFLAW
// threshold.
const NoSuggestions = "None. All good here."

const reviewJargon = "Review and replace the jargons, where possible (see table below)."

// SuggestionInput are the scores suggestions are derived from.
type SuggestionInput struct {
	EFLAWScore        int
	Jargon            lexicon.Checklist
	LongSentenceCount int
	MiniWordCount     int
}

// Suggestions is the improvement guidance of one report.
type Suggestions struct {
	Lines []string
}

// Text joins the suggestion lines with blank lines.
func (s Suggestions) Text() string {
	return strings.Join(s.Lines, "\n\n")
}

// None reports whether the text needs no improvement.
func (s Suggestions) None() bool {
	return len(s.Lines) == 1 && s.Lines[0] == NoSuggestions
}

// Suggest derives improvement guidance. Only texts with an EFLAW score
// above the threshold get suggestions.
func Suggest(in SuggestionInput, t config.Thresholds) Suggestions {
	if in.EFLAWScore <= t.EFLAWThreshold {
		return Suggestions{Lines: []string{NoSuggestions}}
	}

	var lines []string
	if !in.Jargon.Empty() {
		lines = append(lines, reviewJargon)
	}
	lines = append(lines,
		fmt.Sprintf("Reduce the size of the %d lengthy sentences.", in.LongSentenceCount),
		fmt.Sprintf("Reduce the use of the %d mini words (words with less <= 3 characters).", in.MiniWordCount),
	)
	return Suggestions{Lines: lines}
}
