package readability

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/pthm/readcheck/internal/lexicon"
	"github.com/pthm/readcheck/internal/prose"
)

func TestBandTablesContiguous(t *testing.T) {
	tables := []BandTable{EFLAWBands, GradeBands}

	for _, table := range tables {
		t.Run(table.Name, func(t *testing.T) {
			if err := table.Validate(); err != nil {
				t.Fatalf("Validate() error = %v", err)
			}

			for _, bound := range table.Bounds() {
				if math.IsInf(bound, 0) {
					continue
				}
				for _, v := range []float64{bound - 0.01, bound, bound + 0.01} {
					_, err := table.Lookup(v)
					if v < table.Min {
						if !errors.Is(err, ErrUnbandedValue) {
							t.Errorf("Lookup(%v) error = %v, want ErrUnbandedValue", v, err)
						}
						continue
					}
					if err != nil {
						t.Errorf("Lookup(%v) error = %v", v, err)
					}
				}
			}

			for v := table.Min; v < 40; v += 0.01 {
				if _, err := table.Lookup(v); err != nil {
					t.Fatalf("Lookup(%v) error = %v", v, err)
				}
			}
		})
	}
}

func TestBandTableLookup(t *testing.T) {
	tests := []struct {
		table    BandTable
		value    float64
		expected string
	}{
		{EFLAWBands, 0, "Very easy to understand."},
		{EFLAWBands, 20, "Very easy to understand."},
		{EFLAWBands, 21, "Easy to understand."},
		{EFLAWBands, 25, "Easy to understand."},
		{EFLAWBands, 26, "Difficult to understand."},
		{EFLAWBands, 29, "Difficult to understand."},
		{EFLAWBands, 30, "Very confusing."},
		{EFLAWBands, 500, "Very confusing."},
		{GradeBands, 5, "Below sixth grade."},
		{GradeBands, 6, "6th grade level."},
		{GradeBands, 8, "8th grade level."},
		{GradeBands, 9, "High school freshman level."},
		{GradeBands, 12, "High school senior level."},
		{GradeBands, 13, "College freshman level."},
		{GradeBands, 16, "College senior level."},
		{GradeBands, 17, "College graduate level."},
		{GradeBands, 18, "Beyond college graduate level."},
		{GradeBands, 42, "Beyond college graduate level."},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got, err := tt.table.Lookup(tt.value)
			if err != nil {
				t.Fatalf("Lookup(%v) error = %v", tt.value, err)
			}
			if got != tt.expected {
				t.Errorf("%s.Lookup(%v) = %q, want %q", tt.table.Name, tt.value, got, tt.expected)
			}
		})
	}
}

func TestBandTableUnbanded(t *testing.T) {
	table := NewBandTable("unit", 0,
		Band{Upper: 0.5, Label: "low"},
		Band{Upper: 1, Closed: true, Label: "high"},
	)

	for _, v := range []float64{-0.01, 1.01, math.NaN()} {
		_, err := table.Lookup(v)
		var unbanded *UnbandedError
		if !errors.As(err, &unbanded) {
			t.Errorf("Lookup(%v) error = %v, want *UnbandedError", v, err)
			continue
		}
		if unbanded.Table != "unit" {
			t.Errorf("UnbandedError.Table = %q, want %q", unbanded.Table, "unit")
		}
	}

	if got, _ := table.Lookup(1); got != "high" {
		t.Errorf("Lookup(1) = %q, want %q", got, "high")
	}
}

func TestBandTableValidate(t *testing.T) {
	tests := []struct {
		name  string
		table BandTable
	}{
		{"empty", BandTable{Name: "empty"}},
		{"overlap", BandTable{Name: "overlap", Bands: []Band{{Upper: 2, Label: "a"}, {Upper: 1, Label: "b"}}}},
		{"unlabeled", BandTable{Name: "unlabeled", Bands: []Band{{Upper: 2}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.table.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestScoreEFLAW(t *testing.T) {
	t.Run("quick check", func(t *testing.T) {
		got, err := ScoreEFLAW(prose.Normalize("This is a quick readability check test."))
		if err != nil {
			t.Fatalf("ScoreEFLAW() error = %v", err)
		}

		expected := EFLAWResult{
			Score: Score{
				Value:   9,
				Band:    "Very easy to understand.",
				Labeled: "9: Very easy to understand.",
			},
			SentenceCount: 1,
			SentenceLengths: []SentenceLength{
				{Key: "SentNo.1", Ordinal: 1, WordCount: 7, Text: "This is a quick readability check test"},
			},
			MiniWordCount: 2,
			WordCount:     7,
		}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("ScoreEFLAW() = %+v, want %+v", got, expected)
		}
	})

	t.Run("headline words still count", func(t *testing.T) {
		got, err := ScoreEFLAW(prose.Normalize("Audit summary\nThe review of the payment process is now done."))
		if err != nil {
			t.Fatalf("ScoreEFLAW() error = %v", err)
		}
		// 11 words, 5 mini words, one scoring sentence.
		if got.Score.Value != 16 {
			t.Errorf("ScoreEFLAW().Score.Value = %v, want %v", got.Score.Value, 16)
		}
		if got.WordCount != 11 || got.MiniWordCount != 5 {
			t.Errorf("ScoreEFLAW() words/mini = %d/%d, want 11/5", got.WordCount, got.MiniWordCount)
		}
	})

	t.Run("very confusing", func(t *testing.T) {
		got, err := ScoreEFLAW(prose.Normalize(strings.Repeat("to ", 30)))
		if err != nil {
			t.Fatalf("ScoreEFLAW() error = %v", err)
		}
		if got.Score.Value != 60 || got.Score.Band != "Very confusing." {
			t.Errorf("ScoreEFLAW().Score = %+v, want 60 Very confusing.", got.Score)
		}
	})

	t.Run("no valid sentences", func(t *testing.T) {
		_, err := ScoreEFLAW(prose.Normalize("one two three\nfour five six\nseven eight nine"))
		if !errors.Is(err, ErrNoValidSentences) {
			t.Errorf("ScoreEFLAW() error = %v, want ErrNoValidSentences", err)
		}
	})
}

func TestScoreEFLAWFormula(t *testing.T) {
	inputs := []string{
		"The board approved the new budget for the coming year.",
		"We met.\nThe committee will publish its findings after the summer recess.\nIt is due in May and will be sent to all staff.",
		"Management has not yet agreed an owner for each of the open actions raised in the last review of the process",
		"• First point of the list here\n• Second point of the list here\n• ok",
	}

	for _, input := range inputs {
		n := prose.Normalize(input)
		got, err := ScoreEFLAW(n)
		if err != nil {
			t.Fatalf("ScoreEFLAW(%q) error = %v", input, err)
		}

		words, mini := 0, 0
		for _, word := range strings.Fields(string(n)) {
			words++
			if len([]rune(word)) <= 3 {
				mini++
			}
		}
		sentences := len(prose.Segment(n, prose.ModeScoring))

		want := (words + mini) / sentences
		if got.Score.Value != want || got.Score.Value < 0 {
			t.Errorf("ScoreEFLAW(%q) = %d, want %d", input, got.Score.Value, want)
		}
	}
}

func TestGunningFog(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{"quick check", "This is a quick readability check test.", 8.51},
		{"no words", "", 0},
		{"no complex words", "The cat sat on the mat. The dog ran to the park.", 2.4},
		{"common words off the easy list", "The president and the government read several newspaper stories today.", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GunningFog(tt.raw); got != tt.expected {
				t.Errorf("GunningFog(%q) = %v, want %v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestScoreGradeLevel(t *testing.T) {
	got, err := ScoreGradeLevel("This is a quick readability check test.")
	if err != nil {
		t.Fatalf("ScoreGradeLevel() error = %v", err)
	}
	expected := Score{Value: 8, Band: "8th grade level.", Labeled: "8: 8th grade level."}
	if got != expected {
		t.Errorf("ScoreGradeLevel() = %+v, want %+v", got, expected)
	}
}

func TestComputeMetrics(t *testing.T) {
	ignorable := lexicon.WordSet{"organisation": {}}

	got, err := ComputeMetrics("The organisation needs communication about readability improvements.", ignorable)
	if err != nil {
		t.Fatalf("ComputeMetrics() error = %v", err)
	}

	expected := Metrics{
		WordCount:         7,
		SentenceCount:     1,
		SyllableCount:     23,
		WordSentenceRatio: 7,
		DifficultWords: []DifficultWord{
			{Word: "communication", Syllables: 5},
			{Word: "improvements", Syllables: 4},
			{Word: "readability", Syllables: 5},
		},
		DifficultWordCount: 3,
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("ComputeMetrics() = %+v, want %+v", got, expected)
	}
}

func TestComputeMetricsParagraphs(t *testing.T) {
	got, err := ComputeMetrics("The first paragraph has six words\nThe second paragraph has six words", nil)
	if err != nil {
		t.Fatalf("ComputeMetrics() error = %v", err)
	}
	if got.SentenceCount != 2 {
		t.Errorf("ComputeMetrics().SentenceCount = %v, want %v", got.SentenceCount, 2)
	}
	if got.WordSentenceRatio != 6 {
		t.Errorf("ComputeMetrics().WordSentenceRatio = %v, want %v", got.WordSentenceRatio, 6)
	}
}

func TestDifficultWordString(t *testing.T) {
	d := DifficultWord{Word: "readability", Syllables: 5}
	if got := d.String(); got != "readability [5]" {
		t.Errorf("String() = %q, want %q", got, "readability [5]")
	}
}

func TestCountLongSentences(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("word ", 25))

	tests := []struct {
		name     string
		raw      string
		expected LongSentences
	}{
		{
			name:     "one long sentence",
			raw:      long + ".",
			expected: LongSentences{Count: 1, Considered: 1},
		},
		{
			name:     "exactly the limit",
			raw:      strings.TrimSpace(strings.Repeat("word ", 20)),
			expected: LongSentences{Count: 0, Considered: 1},
		},
		{
			name:     "short lines considered",
			raw:      "Heading\n" + long + "\n\n-",
			expected: LongSentences{Count: 1, Considered: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountLongSentences(prose.Normalize(tt.raw), 20); got != tt.expected {
				t.Errorf("CountLongSentences() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}
