package sentiment

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

//go:embed data/lexicon.tsv
var defaultLexicon string

// negationWindow is how many preceding tokens are searched for a negator.
const negationWindow = 3

// negationFactor is applied to the polarity of a negated word.
const negationFactor = -0.5

var negators = map[string]bool{
	"not":   true,
	"no":    true,
	"never": true,
	"nor":   true,
	"none":  true,
}

var intensifiers = map[string]float64{
	"very":      1.3,
	"really":    1.3,
	"highly":    1.3,
	"extremely": 1.5,
	"quite":     1.1,
	"fairly":    0.9,
	"somewhat":  0.8,
	"slightly":  0.7,
}

// stripMarks returns a new diacritic-folding transformer. Chains are
// stateful and must not be shared between goroutines.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

type assessment struct {
	polarity     float64
	subjectivity float64
}

// LexiconEstimator averages the scores of the known words of a text.
//
// Unknown words are retried by their English stem. A negator within the three
// preceding words flips and halves polarity, and an intensifier directly
// before a word scales both scores. Safe for concurrent use.
type LexiconEstimator struct {
	words map[string]assessment
	stems map[string]assessment
}

// NewLexiconEstimator returns an estimator over the embedded word list.
func NewLexiconEstimator() (*LexiconEstimator, error) {
	return ParseLexicon(strings.NewReader(defaultLexicon))
}

// ParseLexicon reads a word list of "word<TAB>polarity<TAB>subjectivity"
// lines. Blank lines and lines starting with '#' are skipped.
func ParseLexicon(r io.Reader) (*LexiconEstimator, error) {
	e := &LexiconEstimator{
		words: make(map[string]assessment),
		stems: make(map[string]assessment),
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("sentiment lexicon line %d: expected 3 fields, got %d", line, len(fields))
		}
		polarity, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("sentiment lexicon line %d: polarity: %w", line, err)
		}
		subjectivity, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("sentiment lexicon line %d: subjectivity: %w", line, err)
		}

		word := strings.ToLower(fields[0])
		a := assessment{polarity: polarity, subjectivity: subjectivity}
		e.words[word] = a
		if stem := stem(word); stem != "" {
			if _, ok := e.stems[stem]; !ok {
				e.stems[stem] = a
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return e, nil
}

// Len returns the number of words in the list.
func (e *LexiconEstimator) Len() int {
	return len(e.words)
}

// Estimate returns the mean polarity in [-1, 1] and the mean subjectivity in
// [0, 1] of the known words of text. Text without known words scores 0, 0.
func (e *LexiconEstimator) Estimate(text string) (polarity, subjectivity float64) {
	tokens := tokenize(text)

	var found []assessment
	for i, token := range tokens {
		a, ok := e.lookup(token)
		if !ok {
			continue
		}

		if i > 0 {
			if m, ok := intensifiers[tokens[i-1]]; ok {
				a.polarity *= m
				a.subjectivity *= m
			}
		}
		for j := max(0, i-negationWindow); j < i; j++ {
			if isNegator(tokens[j]) {
				a.polarity *= negationFactor
				break
			}
		}

		found = append(found, a)
	}

	if len(found) == 0 {
		return 0, 0
	}

	for _, a := range found {
		polarity += a.polarity
		subjectivity += a.subjectivity
	}
	n := float64(len(found))
	return clamp(polarity/n, -1, 1), clamp(subjectivity/n, 0, 1)
}

func (e *LexiconEstimator) lookup(token string) (assessment, bool) {
	if a, ok := e.words[token]; ok {
		return a, true
	}
	a, ok := e.stems[stem(token)]
	return a, ok
}

func stem(word string) string {
	stemmed, err := snowball.Stem(word, "english", true)
	if err != nil {
		return ""
	}
	return stemmed
}

func isNegator(token string) bool {
	return negators[token] || strings.HasSuffix(token, "n't")
}

// tokenize lowercases text, strips diacritics and splits it into words.
// Apostrophes stay inside words so contractions like "isn't" survive.
func tokenize(text string) []string {
	folded, _, err := transform.String(stripMarks(), strings.ToLower(text))
	if err != nil {
		folded = strings.ToLower(text)
	}
	folded = strings.ReplaceAll(folded, "’", "'")

	return strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
