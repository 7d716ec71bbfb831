// Package lexicon loads the externally maintained word lists and matches
// them against text.
package lexicon

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

//go:embed resources/*.csv
var resources embed.FS

// ErrLexiconLoad is wrapped by every LoadError.
var ErrLexiconLoad = errors.New("lexicon load failed")

// LoadError reports an artifact that is missing or malformed.
type LoadError struct {
	File string
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("lexicon %s:%d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("lexicon %s: %v", e.File, e.Err)
}

// Unwrap exposes both ErrLexiconLoad and the underlying cause.
func (e *LoadError) Unwrap() []error {
	return []error{ErrLexiconLoad, e.Err}
}

// Files names the three artifacts inside a lexicon directory.
type Files struct {
	Jargon             string
	SimpleWords        string
	IgnorableDifficult string
}

// DefaultFiles are the artifact names shipped with the tool.
var DefaultFiles = Files{
	Jargon:             "list_jargon_check.csv",
	SimpleWords:        "list_simple_words.csv",
	IgnorableDifficult: "list_difficult_words.csv",
}

// Entry is one term and its suggested replacement.
type Entry struct {
	Term        string `json:"term"`
	Replacement string `json:"replacement"`
}

// Terms is an ordered term to replacement mapping. Keys are unique when
// compared case-insensitively; a repeated key keeps its first position and
// takes the last value.
type Terms struct {
	entries []Entry
	index   map[string]int
}

// NewTerms builds a mapping from entries in order.
func NewTerms(entries ...Entry) Terms {
	var t Terms
	for _, e := range entries {
		t.set(e.Term, e.Replacement)
	}
	return t
}

func (t *Terms) set(term, replacement string) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	key := strings.ToLower(term)
	if i, ok := t.index[key]; ok {
		t.entries[i].Replacement = replacement
		return
	}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, Entry{Term: term, Replacement: replacement})
}

// Len returns the number of terms.
func (t Terms) Len() int {
	return len(t.entries)
}

// Entries returns the terms in file order.
func (t Terms) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Lookup returns the replacement for term.
func (t Terms) Lookup(term string) (string, bool) {
	i, ok := t.index[strings.ToLower(term)]
	if !ok {
		return "", false
	}
	return t.entries[i].Replacement, true
}

// Map returns the terms as a plain map keyed by lowercase term.
func (t Terms) Map() map[string]string {
	m := make(map[string]string, len(t.entries))
	for _, e := range t.entries {
		m[strings.ToLower(e.Term)] = e.Replacement
	}
	return m
}

// WordSet is a set of lowercase words.
type WordSet map[string]struct{}

// Contains reports whether word is in the set, ignoring case.
func (s WordSet) Contains(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

// Len returns the number of words.
func (s WordSet) Len() int {
	return len(s)
}

// Lexicon holds the three loaded artifacts. It is read-only after loading.
type Lexicon struct {
	Jargon             Terms
	SimpleWords        Terms
	IgnorableDifficult WordSet
}

// Load reads the artifacts named by files from fsys.
func Load(fsys fs.FS, files Files) (*Lexicon, error) {
	jargon, err := loadTerms(fsys, files.Jargon)
	if err != nil {
		return nil, err
	}

	simple, err := loadTerms(fsys, files.SimpleWords)
	if err != nil {
		return nil, err
	}

	ignorable, err := loadWordSet(fsys, files.IgnorableDifficult)
	if err != nil {
		return nil, err
	}

	return &Lexicon{
		Jargon:             jargon,
		SimpleWords:        simple,
		IgnorableDifficult: ignorable,
	}, nil
}

// LoadDir reads the default artifact names from dir.
func LoadDir(dir string) (*Lexicon, error) {
	return Load(os.DirFS(dir), DefaultFiles)
}

// Default returns the lexicon embedded in the binary.
func Default() (*Lexicon, error) {
	sub, err := fs.Sub(resources, "resources")
	if err != nil {
		return nil, err
	}
	return Load(sub, DefaultFiles)
}

// loadTerms parses a ';'-delimited file of term;replacement rows.
func loadTerms(fsys fs.FS, name string) (Terms, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return Terms{}, &LoadError{File: name, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var terms Terms
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Terms{}, &LoadError{File: name, Err: err}
		}
		line, _ := r.FieldPos(0)

		if isBlank(record) {
			continue
		}
		if len(record) != 2 {
			return Terms{}, &LoadError{
				File: name,
				Line: line,
				Err:  fmt.Errorf("expected 2 fields, got %d", len(record)),
			}
		}

		term := strings.TrimSpace(record[0])
		if term == "" {
			return Terms{}, &LoadError{File: name, Line: line, Err: errors.New("empty term")}
		}
		terms.set(term, strings.TrimSpace(record[1]))
	}

	return terms, nil
}

// loadWordSet parses a single comma-delimited list of words.
func loadWordSet(fsys fs.FS, name string) (WordSet, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &LoadError{File: name, Err: err}
	}

	set := make(WordSet)
	for _, word := range strings.Split(string(data), ",") {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		set[word] = struct{}{}
	}
	return set, nil
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
