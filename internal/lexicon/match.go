package lexicon

import "strings"

// Sentinel checklist texts used when nothing matched.
const (
	NoJargonFound      = "No jargon found."
	NoWordsToSimplify  = "No words be simplified."
	checklistSeparator = " >> "
)

// Checklist lists the terms found in a text with their replacements.
type Checklist struct {
	Text    string  `json:"text"`
	Matches []Entry `json:"matches"`
}

// Empty reports whether no term matched.
func (c Checklist) Empty() bool {
	return len(c.Matches) == 0
}

var cleanupSpaces = strings.NewReplacer("  ", " ")

// clean prepares raw text for matching: newlines become spaces, the text is
// lowercased and commas are dropped.
func clean(raw string) string {
	s := strings.ReplaceAll(raw, "\r", "")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ",", "")
	return cleanupSpaces.Replace(s)
}

// Match finds every term of terms that occurs in raw, in term order.
//
// A term matches when it appears anywhere in the cleaned text, including
// inside a longer word. When nothing matches the checklist text is sentinel.
func Match(raw string, terms Terms, sentinel string) Checklist {
	text := clean(raw)

	var (
		lines   []string
		matches []Entry
	)
	for _, e := range terms.entries {
		if !strings.Contains(text, strings.ToLower(e.Term)) {
			continue
		}
		matches = append(matches, e)
		lines = append(lines, e.Term+checklistSeparator+e.Replacement)
	}

	if len(matches) == 0 {
		return Checklist{Text: sentinel}
	}
	return Checklist{
		Text:    strings.Join(lines, "\n"),
		Matches: matches,
	}
}

// MatchJargon matches the jargon list against raw.
func (l *Lexicon) MatchJargon(raw string) Checklist {
	return Match(raw, l.Jargon, NoJargonFound)
}

// MatchSimpleWords matches the simplifiable-word list against raw.
func (l *Lexicon) MatchSimpleWords(raw string) Checklist {
	return Match(raw, l.SimpleWords, NoWordsToSimplify)
}
