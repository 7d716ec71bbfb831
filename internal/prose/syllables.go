package prose

import (
	"strings"
	"unicode"
)

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// Syllables estimates the syllables of one word from its vowel groups.
//
// A trailing silent "e" is dropped unless it closes a consonant+"le" ending,
// and "-ed" is not a syllable unless it follows "t" or "d". Any word with at
// least one letter has at least one syllable.
func Syllables(word string) int {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	w := []rune(b.String())
	if len(w) == 0 {
		return 0
	}

	count := 0
	prev := false
	for _, r := range w {
		v := isVowel(r)
		if v && !prev {
			count++
		}
		prev = v
	}

	n := len(w)
	switch {
	case n > 2 && w[n-1] == 'e' && w[n-2] == 'l' && !isVowel(w[n-3]):
		// consonant + "le" keeps its syllable: table, simple
	case n > 1 && w[n-1] == 'e' && !isVowel(w[n-2]):
		count--
	case n > 3 && w[n-2] == 'e' && w[n-1] == 'd' && !isVowel(w[n-3]) && w[n-3] != 't' && w[n-3] != 'd':
		count--
	}

	if count < 1 {
		count = 1
	}
	return count
}

// VowelGroupSyllables counts the maximal runs of vowels in word, except a
// lone trailing "e", and adds one when the whole word is consonants followed
// by a single "e" ("the", "she"). Matching is case-insensitive.
//
// This is the stricter count used to keep difficult words.
func VowelGroupSyllables(word string) int {
	w := []rune(strings.ToLower(word))
	n := len(w)

	count := 0
	for i := 0; i < n; {
		if !isVowel(w[i]) {
			i++
			continue
		}
		if i == n-1 && w[i] == 'e' {
			break
		}
		j := i
		for j < n && isVowel(w[j]) {
			j++
		}
		count++
		i = j
	}

	if n > 0 && w[n-1] == 'e' {
		consonantsOnly := true
		for _, r := range w[:n-1] {
			if isVowel(r) {
				consonantsOnly = false
				break
			}
		}
		if consonantsOnly {
			count++
		}
	}

	return count
}
