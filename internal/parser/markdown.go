package parser

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser splits markdown files into paragraph observations.
// Headings, code blocks and raw HTML are not scored.
type MarkdownParser struct{}

// CanParse returns true if this parser can handle the file
func (p *MarkdownParser) CanParse(path string) bool {
	return GetFileType(path) == FileTypeMarkdown
}

// Parse parses a markdown file into observations
func (p *MarkdownParser) Parse(path string, content []byte) (*Document, error) {
	frontmatter, body, offset := ParseFrontmatter(content)

	md := goldmark.New()
	reader := text.NewReader(body)
	doc := md.Parser().Parse(reader)

	return &Document{
		Path:         path,
		Content:      content, // Keep original content
		FileType:     FileTypeMarkdown,
		Observations: p.extractObservations(doc, body, offset),
		Frontmatter:  frontmatter,
	}, nil
}

// extractObservations walks the AST collecting paragraphs and tight list items
func (p *MarkdownParser) extractObservations(doc ast.Node, source []byte, offset int) []Observation {
	var observations []Observation
	var section string

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			section = string(node.Text(source))
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil

		case *ast.Paragraph, *ast.TextBlock:
			var b strings.Builder
			inlineText(node, source, &b)
			txt := strings.TrimSpace(b.String())
			if txt == "" {
				return ast.WalkSkipChildren, nil
			}

			line := 1
			if node.Lines().Len() > 0 {
				seg := node.Lines().At(0)
				line = bytes.Count(source[:seg.Start], []byte("\n")) + 1
			}

			observations = append(observations, Observation{
				Text:    txt,
				Line:    line + offset,
				Section: section,
			})
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return observations
}

// inlineText writes the plain text of n's inline children. Soft line breaks
// become spaces and hard breaks become newlines.
func inlineText(n ast.Node, source []byte, b *strings.Builder) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(source))
			switch {
			case c.HardLineBreak():
				b.WriteByte('\n')
			case c.SoftLineBreak():
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(c.Value)
		case *ast.AutoLink:
			b.Write(c.URL(source))
		case *ast.RawHTML, *ast.Image:
			// not prose
		default:
			inlineText(c, source, b)
		}
	}
}
