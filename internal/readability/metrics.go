package readability

import (
	"fmt"

	"github.com/pthm/readcheck/internal/lexicon"
	"github.com/pthm/readcheck/internal/prose"
)

// DifficultSyllables is the vowel-group syllable count from which a word is
// kept as difficult.
const DifficultSyllables = 4

// candidateSyllables is the heuristic syllable count a word needs to be a
// difficult-word candidate at all.
const candidateSyllables = 2

// DifficultWord is a word with its syllable count.
type DifficultWord struct {
	Word      string `json:"word"`
	Syllables int    `json:"syllables"`
}

func (d DifficultWord) String() string {
	return fmt.Sprintf("%s [%d]", d.Word, d.Syllables)
}

// Metrics are the text statistics of one text.
type Metrics struct {
	WordCount          int             `json:"wordCount"`
	SentenceCount      int             `json:"sentenceCount"`
	SyllableCount      int             `json:"syllableCount"`
	WordSentenceRatio  int             `json:"wordSentenceRatio"`
	DifficultWords     []DifficultWord `json:"difficultWords"`
	DifficultWordCount int             `json:"difficultWordCount"`
}

// ComputeMetrics counts words, sentences and syllables of raw text and lists
// its difficult words. Words in ignorable are never difficult.
func ComputeMetrics(raw string, ignorable lexicon.WordSet) (Metrics, error) {
	view := prose.StatsView(raw)

	words := prose.LexiconCount(view)
	sentences := prose.SentenceCount(view)
	if sentences == 0 {
		return Metrics{}, fmt.Errorf("word/sentence ratio: %w", ErrNoValidSentences)
	}

	var difficult []DifficultWord
	for _, word := range prose.DifficultWords(view, candidateSyllables) {
		syllables := prose.VowelGroupSyllables(word)
		if syllables < DifficultSyllables || ignorable.Contains(word) {
			continue
		}
		difficult = append(difficult, DifficultWord{Word: word, Syllables: syllables})
	}

	return Metrics{
		WordCount:          words,
		SentenceCount:      sentences,
		SyllableCount:      prose.SyllableCount(view),
		WordSentenceRatio:  words / sentences,
		DifficultWords:     difficult,
		DifficultWordCount: len(difficult),
	}, nil
}
