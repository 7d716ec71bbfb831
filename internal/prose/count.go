package prose

import (
	"regexp"
	"sort"
	"strings"
)

// punctuation matches everything that is not a word character, whitespace
// or an apostrophe.
var punctuation = regexp.MustCompile(`[^\p{L}\p{N}_\s']`)

// sentenceCandidate matches one sentence: a run of non-terminators followed
// by optional terminators.
var sentenceCandidate = regexp.MustCompile(`\b[^.!?]+[.!?]*`)

// wordToken matches the tokens considered for the difficult-word list.
var wordToken = regexp.MustCompile(`[\p{L}\p{N}_='‘]+`)

// MinSentenceWords is the word count a sentence candidate must exceed to be
// counted by SentenceCount.
const MinSentenceWords = 2

// RemovePunctuation strips punctuation but keeps apostrophes.
func RemovePunctuation(text string) string {
	return punctuation.ReplaceAllString(text, "")
}

// Words returns the whitespace-separated tokens of text after punctuation
// removal.
func Words(text string) []string {
	return strings.Fields(RemovePunctuation(text))
}

// LexiconCount returns the number of words in text.
func LexiconCount(text string) int {
	return len(Words(text))
}

// SentenceCount returns the number of sentences in text. Candidates with two
// words or fewer are ignored; the result is never below 1.
func SentenceCount(text string) int {
	candidates := sentenceCandidate.FindAllString(text, -1)

	ignored := 0
	for _, candidate := range candidates {
		if LexiconCount(candidate) <= MinSentenceWords {
			ignored++
		}
	}

	return max(1, len(candidates)-ignored)
}

// SyllableCount returns the total syllable estimate for every word in text.
func SyllableCount(text string) int {
	total := 0
	for _, word := range Words(text) {
		total += Syllables(word)
	}
	return total
}

// DifficultWords returns the unique lowercase words of text that are not on
// the easy-word list and have at least minSyllables syllables, sorted
// alphabetically.
func DifficultWords(text string, minSyllables int) []string {
	seen := make(map[string]struct{})
	var words []string

	for _, word := range wordToken.FindAllString(strings.ToLower(text), -1) {
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}

		if IsEasyWord(word) {
			continue
		}
		if Syllables(word) < minSyllables {
			continue
		}
		words = append(words, word)
	}

	sort.Strings(words)
	return words
}
