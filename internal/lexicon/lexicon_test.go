package lexicon

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"testing/fstest"
)

func testFS(jargon, simple, difficult string) fstest.MapFS {
	return fstest.MapFS{
		"list_jargon_check.csv":    {Data: []byte(jargon)},
		"list_simple_words.csv":    {Data: []byte(simple)},
		"list_difficult_words.csv": {Data: []byte(difficult)},
	}
}

func TestLoad(t *testing.T) {
	fsys := testFS(
		"leverage;use\n\nsynergy;cooperation\n",
		"utilize;use\ncommence;start\n",
		"Organisation, information ,\nuniversity,",
	)

	lex, err := Load(fsys, DefaultFiles)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	expected := []Entry{
		{Term: "leverage", Replacement: "use"},
		{Term: "synergy", Replacement: "cooperation"},
	}
	if got := lex.Jargon.Entries(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Jargon.Entries() = %v, want %v", got, expected)
	}

	if got := lex.SimpleWords.Len(); got != 2 {
		t.Errorf("SimpleWords.Len() = %v, want %v", got, 2)
	}

	for _, word := range []string{"organisation", "INFORMATION", "university"} {
		if !lex.IgnorableDifficult.Contains(word) {
			t.Errorf("IgnorableDifficult.Contains(%q) = false, want true", word)
		}
	}
	if got := lex.IgnorableDifficult.Len(); got != 3 {
		t.Errorf("IgnorableDifficult.Len() = %v, want %v", got, 3)
	}
}

func TestLoadDuplicateKeys(t *testing.T) {
	fsys := testFS("Leverage;use\nsynergy;cooperation\nleverage;apply\n", "", "")

	lex, err := Load(fsys, DefaultFiles)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	expected := []Entry{
		{Term: "Leverage", Replacement: "apply"},
		{Term: "synergy", Replacement: "cooperation"},
	}
	if got := lex.Jargon.Entries(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Jargon.Entries() = %v, want %v", got, expected)
	}

	if got, ok := lex.Jargon.Lookup("LEVERAGE"); !ok || got != "apply" {
		t.Errorf("Lookup(LEVERAGE) = %q, %v, want %q, true", got, ok, "apply")
	}
}

func TestLoadIdempotent(t *testing.T) {
	fsys := testFS("leverage;use\nsynergy;cooperation\n", "utilize;use\n", "organisation,information")

	first, err := Load(fsys, DefaultFiles)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	second, err := Load(fsys, DefaultFiles)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Load() twice = %+v and %+v, want equal", first, second)
	}
}

func TestLoadRowOrderIndependent(t *testing.T) {
	a, err := Load(testFS("leverage;use\nsynergy;cooperation\ntouch base;talk\n", "", "b,a"), DefaultFiles)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	b, err := Load(testFS("touch base;talk\nleverage;use\nsynergy;cooperation\n", "", "a,b"), DefaultFiles)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !reflect.DeepEqual(a.Jargon.Map(), b.Jargon.Map()) {
		t.Errorf("Jargon.Map() = %v and %v, want equal", a.Jargon.Map(), b.Jargon.Map())
	}
	if !reflect.DeepEqual(a.IgnorableDifficult, b.IgnorableDifficult) {
		t.Errorf("IgnorableDifficult = %v and %v, want equal", a.IgnorableDifficult, b.IgnorableDifficult)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		file string
		line int
	}{
		{
			name: "missing artifact",
			fsys: fstest.MapFS{
				"list_jargon_check.csv": {Data: []byte("leverage;use\n")},
			},
			file: "list_simple_words.csv",
		},
		{
			name: "single field row",
			fsys: testFS("leverage;use\nsynergy\n", "", ""),
			file: "list_jargon_check.csv",
			line: 2,
		},
		{
			name: "three field row",
			fsys: testFS("", "utilize;use;employ\n", ""),
			file: "list_simple_words.csv",
			line: 1,
		},
		{
			name: "empty term",
			fsys: testFS(";use\n", "", ""),
			file: "list_jargon_check.csv",
			line: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex, err := Load(tt.fsys, DefaultFiles)
			if err == nil {
				t.Fatalf("Load() = %+v, want error", lex)
			}
			if !errors.Is(err, ErrLexiconLoad) {
				t.Errorf("errors.Is(err, ErrLexiconLoad) = false for %v", err)
			}

			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("error %v is not a *LoadError", err)
			}
			if loadErr.File != tt.file {
				t.Errorf("LoadError.File = %q, want %q", loadErr.File, tt.file)
			}
			if loadErr.Line != tt.line {
				t.Errorf("LoadError.Line = %d, want %d", loadErr.Line, tt.line)
			}
		})
	}
}

func TestLoadErrorWrapsNotExist(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadDir(missing) error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		DefaultFiles.Jargon:             "leverage;use\n",
		DefaultFiles.SimpleWords:        "utilize;use\n",
		DefaultFiles.IgnorableDifficult: "organisation",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write file %s: %v", name, err)
		}
	}

	lex, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if lex.Jargon.Len() != 1 || lex.SimpleWords.Len() != 1 || lex.IgnorableDifficult.Len() != 1 {
		t.Errorf("LoadDir() sizes = %d/%d/%d, want 1/1/1",
			lex.Jargon.Len(), lex.SimpleWords.Len(), lex.IgnorableDifficult.Len())
	}
}

func TestDefault(t *testing.T) {
	lex, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if lex.Jargon.Len() == 0 {
		t.Error("Default() jargon list is empty")
	}
	if lex.SimpleWords.Len() == 0 {
		t.Error("Default() simple-word list is empty")
	}
	if !lex.IgnorableDifficult.Contains("organisation") {
		t.Error("Default() ignorable list does not contain organisation")
	}
}
