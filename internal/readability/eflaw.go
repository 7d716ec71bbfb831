package readability

import (
	"fmt"

	"github.com/pthm/readcheck/internal/prose"
)

// SentenceLength is one entry of the sentence-length chart.
type SentenceLength struct {
	Key       string `json:"key"`
	Ordinal   int    `json:"sentenceNo"`
	WordCount int    `json:"words"`
	Text      string `json:"sentence"`
}

// EFLAWResult is the McAlpine EFLAW score and the counts behind it.
type EFLAWResult struct {
	Score           Score            `json:"score"`
	SentenceCount   int              `json:"sentenceCount"`
	SentenceLengths []SentenceLength `json:"sentenceLengths"`
	MiniWordCount   int              `json:"miniWordCount"`
	WordCount       int              `json:"wordCount"`
}

// ScoreEFLAW computes (words + mini words) / sentences over n.
//
// Words are counted over every fragment but only fragments of more than
// prose.MinScoringWords words count as sentences.
func ScoreEFLAW(n prose.Normalized) (EFLAWResult, error) {
	words, mini := countWords(n)

	sentences := prose.Segment(n, prose.ModeScoring)
	if len(sentences) == 0 {
		return EFLAWResult{}, fmt.Errorf("eflaw: %w", ErrNoValidSentences)
	}

	score, err := newScore((words+mini)/len(sentences), EFLAWBands)
	if err != nil {
		return EFLAWResult{}, err
	}

	lengths := make([]SentenceLength, len(sentences))
	for i, s := range sentences {
		lengths[i] = SentenceLength{
			Key:       fmt.Sprintf("SentNo.%d", s.Index),
			Ordinal:   s.Index,
			WordCount: s.WordCount,
			Text:      s.Text,
		}
	}

	return EFLAWResult{
		Score:           score,
		SentenceCount:   len(sentences),
		SentenceLengths: lengths,
		MiniWordCount:   mini,
		WordCount:       words,
	}, nil
}
