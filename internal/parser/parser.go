package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedLayout is returned when a structured file does not hold a
// list of observations.
var ErrUnsupportedLayout = errors.New("unsupported observation layout")

// Document is an input file split into observations
type Document struct {
	Path         string
	Content      []byte
	FileType     FileType
	Observations []Observation
	Frontmatter  map[string]interface{} // YAML frontmatter from markdown files
}

// Observation is one unit of text to score.
type Observation struct {
	Text    string
	Line    int    // 1-based; 0 when the format carries no positions
	Index   int    // 1-based position in the document
	Section string // nearest markdown heading, if any
}

// Source labels o for reports and lint output.
func (d *Document) Source(o Observation) string {
	if o.Line > 0 {
		return fmt.Sprintf("%s:%d", d.Path, o.Line)
	}
	return fmt.Sprintf("%s#%d", d.Path, o.Index)
}

// FileType represents the type of input file
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeMarkdown
	FileTypeJSON
	FileTypeYAML
	FileTypeText
)

func (t FileType) String() string {
	switch t {
	case FileTypeMarkdown:
		return "markdown"
	case FileTypeJSON:
		return "json"
	case FileTypeYAML:
		return "yaml"
	case FileTypeText:
		return "text"
	default:
		return "unknown"
	}
}

// Parser defines the interface for splitting input files into observations
type Parser interface {
	Parse(path string, content []byte) (*Document, error)
	CanParse(path string) bool
}

// Parse reads and parses a file using the appropriate parser
func Parse(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBytes(path, content)
}

// ParseBytes parses content as if it were read from path
func ParseBytes(path string, content []byte) (*Document, error) {
	doc, err := getParser(path).Parse(path, content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for i := range doc.Observations {
		doc.Observations[i].Index = i + 1
	}
	return doc, nil
}

// getParser returns the appropriate parser for a file
func getParser(path string) Parser {
	switch GetFileType(path) {
	case FileTypeMarkdown:
		return &MarkdownParser{}
	case FileTypeJSON:
		return &JSONParser{}
	case FileTypeYAML:
		return &YAMLParser{}
	default:
		return &PlainParser{}
	}
}

// GetFileType returns the FileType for a given path
func GetFileType(path string) FileType {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".md", ".markdown":
		return FileTypeMarkdown
	case ".json":
		return FileTypeJSON
	case ".yaml", ".yml":
		return FileTypeYAML
	case ".txt", ".text":
		return FileTypeText
	default:
		return FileTypeUnknown
	}
}

// ParseFrontmatter extracts YAML frontmatter from content between --- delimiters.
// Returns the parsed frontmatter, the remaining content and the number of
// lines the frontmatter occupied.
func ParseFrontmatter(content []byte) (map[string]interface{}, []byte, int) {
	s := string(content)

	// Must start with ---
	if !strings.HasPrefix(s, "---") {
		return nil, content, 0
	}

	// Find the closing ---
	rest := s[3:]
	endIdx := strings.Index(rest, "\n---")
	if endIdx == -1 {
		return nil, content, 0
	}

	frontmatterStr := strings.TrimSpace(rest[:endIdx])

	var frontmatter map[string]interface{}
	if err := yaml.Unmarshal([]byte(frontmatterStr), &frontmatter); err != nil {
		return nil, content, 0
	}

	remaining := rest[endIdx+4:] // +4 for "\n---"
	if i := strings.IndexByte(remaining, '\n'); i >= 0 && strings.TrimSpace(remaining[:i]) == "" {
		remaining = remaining[i+1:]
	}

	consumed := s[:len(s)-len(remaining)]
	return frontmatter, []byte(remaining), strings.Count(consumed, "\n")
}
