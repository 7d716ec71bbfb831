// Package prose holds the text primitives shared by every scorer: the
// normalizer, the sentence segmenter and the word, sentence and syllable
// counters.
package prose

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalized is text that went through Normalize. Sentence boundaries in a
// Normalized value are newlines; it contains no periods.
type Normalized string

// abbreviations are stripped of their periods before the generic period
// removal, in this order.
var abbreviations = []struct {
	from string
	to   string
}{
	{"approx.", "approx"},
	{"1.", "1"},
	{"2.", "2"},
	{"3.", "3"},
	{"4.", "4"},
	{"5.", "5"},
	{"e.g.", "eg"},
	{"i.e.", "ie"},
	{"min.", "min"},
	{"max.", "max"},
	{"dept.", "dept"},
	{"misc.", "misc"},
	{"p.a.", "pa"},
	{"p.m.", "pm"},
	{"avg.", "avg"},
	{"fig.", "fig"},
	{"vs.", "vs"},
	{"etc.", "etc"},
}

// bullets are glyphs (and a common mojibake of one) rewritten to a dash.
var bullets = strings.NewReplacer(
	"â€¢", "-",
	"•", "-",
)

var repeatedSpaces = regexp.MustCompile(` {2,}`)

// lineBreaks converts Windows and old Mac line endings to '\n'.
var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Normalize canonicalizes raw text for sentence-level analysis.
//
// Abbreviation periods are removed first, then every remaining period, so
// sentence boundaries come only from paragraph breaks. Normalize is
// idempotent.
func Normalize(raw string) Normalized {
	s := norm.NFKC.String(raw)
	s = lineBreaks.Replace(s)

	for _, abbr := range abbreviations {
		s = strings.ReplaceAll(s, abbr.from, abbr.to)
	}
	s = strings.ReplaceAll(s, ".", "")

	s = bullets.Replace(s)
	s = repeatedSpaces.ReplaceAllString(s, " ")

	return Normalized(s)
}

// String returns the normalized text.
func (n Normalized) String() string {
	return string(n)
}

// StatsView prepares raw text for the textstat-style counters: paragraph
// breaks become ". " so each paragraph ends a sentence.
func StatsView(raw string) string {
	s := lineBreaks.Replace(raw)
	return strings.ReplaceAll(s, "\n", ". ")
}
