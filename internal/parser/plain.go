package parser

import (
	"strings"
)

// PlainParser splits plain text into blank-line separated paragraphs
type PlainParser struct{}

// CanParse returns true (fallback parser)
func (p *PlainParser) CanParse(path string) bool {
	return true
}

// Parse parses a plain text file. Line breaks inside a paragraph are kept.
func (p *PlainParser) Parse(path string, content []byte) (*Document, error) {
	lines := strings.Split(strings.ReplaceAll(string(content), "\r", ""), "\n")

	var observations []Observation
	var para []string
	start := 0

	flush := func() {
		if len(para) > 0 {
			observations = append(observations, Observation{
				Text: strings.Join(para, "\n"),
				Line: start,
			})
			para = nil
		}
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if len(para) == 0 {
			start = i + 1
		}
		para = append(para, strings.TrimRight(line, " \t"))
	}
	flush()

	fileType := GetFileType(path)
	if fileType != FileTypeText {
		fileType = FileTypeUnknown
	}

	return &Document{
		Path:         path,
		Content:      content,
		FileType:     fileType,
		Observations: observations,
	}, nil
}
