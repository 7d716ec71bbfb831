package prose

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Normalized
	}{
		{
			name:     "sentence periods removed",
			input:    "This is a quick readability check test.",
			expected: "This is a quick readability check test",
		},
		{
			name:     "abbreviations",
			input:    "Costs rose approx. 5% (e.g. fuel, i.e. diesel) etc.",
			expected: "Costs rose approx 5% (eg fuel, ie diesel) etc",
		},
		{
			name:     "numbered items",
			input:    "1. First\n2. Second",
			expected: "1 First\n2 Second",
		},
		{
			name:     "bullets",
			input:    "• one\nâ€¢ two",
			expected: "- one\n- two",
		},
		{
			name:     "repeated spaces",
			input:    "too       many    spaces",
			expected: "too many spaces",
		},
		{
			name:     "line endings",
			input:    "first line\r\nsecond line\rthird",
			expected: "first line\nsecond line\nthird",
		},
		{
			name:     "ellipsis",
			input:    "wait… what",
			expected: "wait what",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"This is a quick readability check test.",
		"Costs rose approx. 5% (e.g. fuel) in the dept. vs. last year etc.",
		"• bullet   one\r\n• bullet two...",
		"a  .  b   .   c",
		"",
		"ﬁnance ½ ① wait…",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(string(once))
		if once != twice {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", input, twice, once)
		}
	}
}

func TestSegment(t *testing.T) {
	text := Normalize("Quarterly review\nThe team finished the audit well ahead of schedule.\n\n x \nShort one here.")

	t.Run("scoring", func(t *testing.T) {
		got := Segment(text, ModeScoring)
		expected := []Sentence{
			{Index: 1, WordCount: 9, Text: "The team finished the audit well ahead of schedule"},
		}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("Segment(scoring) = %+v, want %+v", got, expected)
		}
	})

	t.Run("long sentence", func(t *testing.T) {
		got := Segment(text, ModeLongSentence)
		if len(got) != 3 {
			t.Fatalf("Segment(long-sentence) returned %d sentences, want 3: %+v", len(got), got)
		}
		for i, s := range got {
			if s.Index != i+1 {
				t.Errorf("sentence %d Index = %d, want %d", i, s.Index, i+1)
			}
		}
		if got[2].Text != "Short one here" {
			t.Errorf("third sentence = %q, want %q", got[2].Text, "Short one here")
		}
	})

	t.Run("headline only", func(t *testing.T) {
		got := Segment(Normalize("one two three\nfour five six\nseven eight nine"), ModeScoring)
		if len(got) != 0 {
			t.Errorf("Segment(scoring) = %+v, want none", got)
		}
	})
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeScoring, "scoring"},
		{ModeLongSentence, "long-sentence"},
		{Mode(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.expected {
				t.Errorf("Mode.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCounts(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		words     int
		sentences int
	}{
		{
			name:      "single sentence",
			text:      "This is a quick readability check test.",
			words:     7,
			sentences: 1,
		},
		{
			name:      "two sentences",
			text:      "The cat sat on the mat. Then it went to sleep!",
			words:     11,
			sentences: 2,
		},
		{
			name:      "short candidates ignored",
			text:      "Yes. No. The report was filed on time.",
			words:     8,
			sentences: 1,
		},
		{
			name:      "punctuation is not a word",
			text:      "Well - that was odd , wasn't it ?",
			words:     6,
			sentences: 1,
		},
		{
			name:      "empty",
			text:      "",
			words:     0,
			sentences: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LexiconCount(tt.text); got != tt.words {
				t.Errorf("LexiconCount(%q) = %v, want %v", tt.text, got, tt.words)
			}
			if got := SentenceCount(tt.text); got != tt.sentences {
				t.Errorf("SentenceCount(%q) = %v, want %v", tt.text, got, tt.sentences)
			}
		})
	}
}

func TestStatsView(t *testing.T) {
	got := StatsView("first paragraph\r\nsecond paragraph")
	expected := "first paragraph. second paragraph"
	if got != expected {
		t.Errorf("StatsView() = %q, want %q", got, expected)
	}
}

func TestSyllables(t *testing.T) {
	tests := []struct {
		word     string
		expected int
	}{
		{"readability", 5},
		{"quick", 1},
		{"the", 1},
		{"table", 2},
		{"ale", 1},
		{"free", 1},
		{"jumped", 1},
		{"tested", 2},
		{"played", 1},
		{"organization", 5},
		{"Understanding", 4},
		{"42", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := Syllables(tt.word); got != tt.expected {
				t.Errorf("Syllables(%q) = %v, want %v", tt.word, got, tt.expected)
			}
		})
	}
}

func TestSyllableCount(t *testing.T) {
	if got := SyllableCount("This is a quick readability check test."); got != 11 {
		t.Errorf("SyllableCount() = %v, want %v", got, 11)
	}
}

func TestVowelGroupSyllables(t *testing.T) {
	tests := []struct {
		word     string
		expected int
	}{
		{"readability", 5},
		{"the", 1},
		{"e", 1},
		{"she", 1},
		{"make", 1},
		{"free", 1},
		{"eye", 1},
		{"communicate", 4},
		{"Organisation", 5},
		{"rhythm", 1},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := VowelGroupSyllables(tt.word); got != tt.expected {
				t.Errorf("VowelGroupSyllables(%q) = %v, want %v", tt.word, got, tt.expected)
			}
		})
	}
}

func TestDifficultWords(t *testing.T) {
	text := "The organisation reviewed every beautiful readability report. The organisation agreed."

	got := DifficultWords(text, 3)
	expected := []string{"organisation", "readability"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("DifficultWords(3) = %v, want %v", got, expected)
	}

	got = DifficultWords(text, 2)
	expected = []string{"agreed", "organisation", "readability", "report", "reviewed"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("DifficultWords(2) = %v, want %v", got, expected)
	}
}

func TestIsEasyWord(t *testing.T) {
	tests := []struct {
		word     string
		expected bool
	}{
		{"beautiful", true},
		{"Beautiful", true},
		{"christmas", true},
		{"readability", false},
		{"# Familiar", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := IsEasyWord(tt.word); got != tt.expected {
				t.Errorf("IsEasyWord(%q) = %v, want %v", tt.word, got, tt.expected)
			}
		})
	}
}
