// Package readability computes the EFLAW and Gunning-Fog scores, the text
// statistics and the difficult-word list of a text.
package readability

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/pthm/readcheck/internal/prose"
)

// ErrNoValidSentences is returned when a score would divide by a sentence
// count of zero.
var ErrNoValidSentences = errors.New("no valid sentences")

// MiniWordLength is the longest word, in characters, counted as a mini word.
const MiniWordLength = 3

// Score is a numeric score with its rank band.
type Score struct {
	Value   int    `json:"score"`
	Band    string `json:"rank"`
	Labeled string `json:"label"`
}

func newScore(value int, table BandTable) (Score, error) {
	band, err := table.Lookup(float64(value))
	if err != nil {
		return Score{}, err
	}
	return Score{
		Value:   value,
		Band:    band,
		Labeled: fmt.Sprintf("%d: %s", value, band),
	}, nil
}

// LongSentences counts the fragments of n with more than maxWords words.
// Considered is the number of fragments examined.
type LongSentences struct {
	Count      int `json:"count"`
	Considered int `json:"considered"`
}

// CountLongSentences finds the sentences of n longer than maxWords words.
func CountLongSentences(n prose.Normalized, maxWords int) LongSentences {
	sentences := prose.Segment(n, prose.ModeLongSentence)

	result := LongSentences{Considered: len(sentences)}
	for _, s := range sentences {
		if s.WordCount > maxWords {
			result.Count++
		}
	}
	return result
}

func isMiniWord(word string) bool {
	return utf8.RuneCountInString(word) <= MiniWordLength
}

// countWords returns the word and mini-word totals over every fragment of n.
func countWords(n prose.Normalized) (words, mini int) {
	for _, fragment := range prose.Fragments(n) {
		for _, word := range strings.Fields(fragment) {
			words++
			if isMiniWord(word) {
				mini++
			}
		}
	}
	return words, mini
}

// roundHalfUp rounds a non-negative value to places decimals, rounding
// halves away from zero.
func roundHalfUp(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Floor(v*p+0.5) / p
}
