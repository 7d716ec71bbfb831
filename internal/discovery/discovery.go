// Package discovery expands command-line inputs into the files to analyze.
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DirPattern selects the files read from a directory argument.
const DirPattern = "**/*.{md,markdown,txt,text,json,yaml,yml}"

// Expand resolves args to a sorted, de-duplicated list of files.
//
// An argument is a file, a directory (searched with DirPattern) or a
// doublestar glob. Files matching any exclude pattern are dropped. A
// literal path that does not exist, or a glob that matches nothing, is an
// error.
func Expand(args, exclude []string) ([]string, error) {
	for _, p := range exclude {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid exclude pattern %q", p)
		}
	}

	e := &expander{exclude: exclude, seen: make(map[string]bool)}
	for _, arg := range args {
		if err := e.expand(arg); err != nil {
			return nil, err
		}
	}

	sort.Strings(e.result)
	return e.result, nil
}

type expander struct {
	exclude []string
	seen    map[string]bool
	result  []string
}

func (e *expander) expand(arg string) error {
	if isGlob(arg) {
		if !doublestar.ValidatePattern(filepath.ToSlash(arg)) {
			return fmt.Errorf("invalid pattern %q", arg)
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return fmt.Errorf("expanding %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return fmt.Errorf("no files match %q", arg)
		}
		for _, m := range matches {
			e.add(m)
		}
		return nil
	}

	info, err := os.Stat(arg)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		e.add(arg)
		return nil
	}

	return filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(arg, path)
		if err != nil {
			return nil
		}
		if ok, _ := doublestar.Match(DirPattern, filepath.ToSlash(rel)); ok {
			e.add(path)
		}
		return nil
	})
}

// add records path unless it is excluded or already seen
func (e *expander) add(path string) {
	slash := filepath.ToSlash(filepath.Clean(path))
	for _, p := range e.exclude {
		if ok, _ := doublestar.Match(p, slash); ok {
			return
		}
	}

	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}
	if !e.seen[key] {
		e.seen[key] = true
		e.result = append(e.result, path)
	}
}

func isGlob(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}
