package readability

import "github.com/pthm/readcheck/internal/prose"

// ComplexWordSyllables is the syllable count from which a word is complex
// for the Gunning-Fog index.
const ComplexWordSyllables = 3

// GunningFog returns the Gunning-Fog index of raw text rounded to two
// decimals, or 0 for text without words.
func GunningFog(raw string) float64 {
	view := prose.StatsView(raw)

	words := prose.LexiconCount(view)
	if words == 0 {
		return 0
	}

	asl := roundHalfUp(float64(words)/float64(prose.SentenceCount(view)), 1)
	complexWords := len(prose.DifficultWords(view, ComplexWordSyllables))
	pdw := float64(complexWords) / float64(words) * 100

	return roundHalfUp(0.4*(asl+pdw), 2)
}

// ScoreGradeLevel ranks the truncated Gunning-Fog index of raw text.
func ScoreGradeLevel(raw string) (Score, error) {
	return newScore(int(GunningFog(raw)), GradeBands)
}
