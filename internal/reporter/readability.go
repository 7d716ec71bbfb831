package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pthm/readcheck/internal/config"
	"github.com/pthm/readcheck/internal/lexicon"
	"github.com/pthm/readcheck/internal/report"
	"github.com/pthm/readcheck/internal/ui"
)

// ReadabilityReporter renders readability reports for the terminal
type ReadabilityReporter struct {
	w          io.Writer
	ui         *ui.UI
	thresholds config.Thresholds
}

// NewReadabilityReporter creates a terminal readability reporter
func NewReadabilityReporter(w io.Writer, u *ui.UI, t config.Thresholds) *ReadabilityReporter {
	return &ReadabilityReporter{w: w, ui: u, thresholds: t}
}

// WriteReports renders every report, then the observations that were skipped
func (r *ReadabilityReporter) WriteReports(run Run, reports []report.Report) error {
	s := r.ui.Styles
	var sb strings.Builder

	for i, rep := range reports {
		if len(reports) > 1 || rep.Source != "" {
			if i > 0 {
				sb.WriteString("\n")
			}
			title := fmt.Sprintf("Observation %d", rep.ID)
			sb.WriteString(s.Header.Render(title))
			if rep.Source != "" {
				sb.WriteString("  " + s.Path.Render(rep.Source))
			}
			sb.WriteString("\n\n")
		}
		sb.WriteString(r.Render(rep))
	}

	if len(run.Skipped) > 0 {
		sb.WriteString("\n")
		sb.WriteString(s.Subheader.Render(fmt.Sprintf("Skipped %d observations", len(run.Skipped))))
		sb.WriteString("\n")
		for _, sk := range run.Skipped {
			fmt.Fprintf(&sb, "  %s %s %s\n", s.Warning.Render(s.IconWarning), sk.Source, s.Path.Render(sk.Reason))
		}
	}

	_, err := io.WriteString(r.w, sb.String())
	return err
}

// Render returns the terminal rendering of one report
func (r *ReadabilityReporter) Render(rep report.Report) string {
	s := r.ui.Styles
	t := r.thresholds
	var sb strings.Builder

	section := func(title string) {
		sb.WriteString(s.Subheader.Render(title))
		sb.WriteString("\n")
	}

	section("Readability Scores")
	sb.WriteString(r.scoreLine("EFLAW", rep.EFLAW.Value, rep.EFLAW.Band, t.EFLAWThreshold))
	sb.WriteString(r.scoreLine("GFOGS", rep.GradeLevel.Value, rep.GradeLevel.Band, t.GunningFogThreshold))
	sb.WriteString("\n")

	section("Sentence Length")
	if rep.LongSentenceCount > 0 {
		sb.WriteString(r.status(false, fmt.Sprintf(
			"%d out of %d sentences are longer than the recommended %d words.",
			rep.LongSentenceCount, rep.SentenceCount, t.MaxSentenceLength)))
	} else {
		sb.WriteString(r.status(true, fmt.Sprintf(
			"All sentences are within the recommended length of %d words.", t.MaxSentenceLength)))
	}
	sb.WriteString("\n")

	section("Sentiment and Objectivity")
	sb.WriteString(r.status(rep.Polarity == "neutral",
		fmt.Sprintf("The text has a %s sentiment.", rep.Polarity)))
	sb.WriteString(r.status(!strings.HasSuffix(rep.Subjectivity, "subjective"),
		fmt.Sprintf("The text is written in %s %s manner.", article(rep.Subjectivity), rep.Subjectivity)))
	sb.WriteString("\n")

	section("Improvement Suggestions")
	for _, line := range rep.SuggestionLines {
		fmt.Fprintf(&sb, "  %s\n", line)
	}
	sb.WriteString("\n")

	section("Text Statistics")
	sb.WriteString(r.table([]string{"Statistic", "Value"}, [][]string{
		{"Words", fmt.Sprint(rep.WordCount)},
		{"Sentences", fmt.Sprint(rep.SentenceCount)},
		{"Words per sentence", fmt.Sprint(rep.WordSentenceRatio)},
		{"Long sentences", fmt.Sprint(rep.LongSentenceCount)},
		{"Mini words", fmt.Sprint(rep.MiniWordCount)},
		{"Syllables", fmt.Sprint(rep.SyllableCount)},
	}))
	if chart := ui.SentenceChart(rep.SentenceLengths, t.MaxSentenceLength, max(r.ui.Width()-12, 10), s); chart != "" {
		sb.WriteString("\n")
		sb.WriteString(chart)
	}
	if rep.DifficultWordCount > 0 {
		words := make([]string, 0, len(rep.DifficultWords))
		for _, w := range rep.DifficultWords {
			words = append(words, w.String())
		}
		fmt.Fprintf(&sb, "%s %s\n", s.Label.Render("Difficult words:"), strings.Join(words, ", "))
	}
	sb.WriteString("\n")

	section("Jargon to be Reviewed")
	sb.WriteString(r.checklist(rep.Jargon, "Jargon"))
	sb.WriteString("\n")

	section("Words to be Simplified")
	sb.WriteString(r.checklist(rep.SimpleWords, "Words"))

	return sb.String()
}

func (r *ReadabilityReporter) scoreLine(name string, value int, band string, limit int) string {
	label := fmt.Sprintf("%s: %d", name, value)
	if value > limit {
		return r.status(false, fmt.Sprintf("%-10s %s Target is %d or lower.", label, band, limit))
	}
	return r.status(true, fmt.Sprintf("%-10s %s", label, band))
}

func (r *ReadabilityReporter) status(ok bool, text string) string {
	s := r.ui.Styles
	if ok {
		return fmt.Sprintf("  %s %s\n", s.Success.Render(s.IconSuccess), text)
	}
	return fmt.Sprintf("  %s %s\n", s.Error.Render(s.IconError), s.Error.Render(text))
}

func (r *ReadabilityReporter) checklist(c lexicon.Checklist, column string) string {
	if c.Empty() {
		return "  " + c.Text + "\n"
	}
	rows := make([][]string, 0, len(c.Matches))
	for _, m := range c.Matches {
		rows = append(rows, []string{m.Term, m.Replacement})
	}
	return r.table([]string{column, "Replace with"}, rows)
}

func (r *ReadabilityReporter) table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.ui.Styles.Separator).
		Headers(headers...).
		Rows(rows...)
	return t.String() + "\n"
}

func article(word string) string {
	if word != "" && strings.ContainsRune("aeiou", rune(word[0])) {
		return "an"
	}
	return "a"
}
