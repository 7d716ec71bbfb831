package prose

import (
	"strings"
	"unicode/utf8"
)

// Mode selects which fragments Segment keeps.
type Mode int

const (
	// ModeScoring keeps fragments with more than MinScoringWords words.
	// Headline-like fragments are dropped from the sentence count.
	ModeScoring Mode = iota
	// ModeLongSentence keeps every fragment longer than one character
	// after trimming.
	ModeLongSentence
)

func (m Mode) String() string {
	switch m {
	case ModeScoring:
		return "scoring"
	case ModeLongSentence:
		return "long-sentence"
	default:
		return "unknown"
	}
}

// MinScoringWords is the word count a fragment must exceed to count as a
// sentence in ModeScoring.
const MinScoringWords = 4

// Sentence is one segmented unit of normalized text.
type Sentence struct {
	Index     int    `json:"index"`
	WordCount int    `json:"wordCount"`
	Text      string `json:"text"`
}

// Fragments splits normalized text on newlines. Empty fragments are kept.
func Fragments(n Normalized) []string {
	return strings.Split(string(n), "\n")
}

// Segment returns the sentences of n that qualify under mode, numbered from 1
// in input order.
func Segment(n Normalized, mode Mode) []Sentence {
	var sentences []Sentence

	for _, fragment := range Fragments(n) {
		words := len(strings.Fields(fragment))

		switch mode {
		case ModeScoring:
			if words <= MinScoringWords {
				continue
			}
		case ModeLongSentence:
			if utf8.RuneCountInString(strings.TrimSpace(fragment)) <= 1 {
				continue
			}
		}

		sentences = append(sentences, Sentence{
			Index:     len(sentences) + 1,
			WordCount: words,
			Text:      fragment,
		})
	}

	return sentences
}
