package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pthm/readcheck/internal/readability"
)

// SentenceChart renders one horizontal bar per sentence, scaled to barWidth
// columns, with the recommended maximum marked on every row. Bars beyond the
// marker use the BarOver style.
func SentenceChart(lengths []readability.SentenceLength, limit, barWidth int, s *Styles) string {
	if len(lengths) == 0 || barWidth <= 0 {
		return ""
	}

	scale := limit
	labelWidth := 1
	for _, l := range lengths {
		scale = max(scale, l.WordCount)
		labelWidth = max(labelWidth, len(strconv.Itoa(l.Ordinal)))
	}
	if scale <= 0 {
		return ""
	}

	cells := func(n int) int {
		return (n*barWidth + scale/2) / scale
	}
	marker := cells(limit)

	var sb strings.Builder
	for _, l := range lengths {
		n := cells(l.WordCount)

		fmt.Fprintf(&sb, "%*d ", labelWidth, l.Ordinal)
		sb.WriteString(s.Bar.Render(strings.Repeat(s.BarGlyph, min(n, marker))))
		if n < marker {
			sb.WriteString(strings.Repeat(" ", marker-n))
		}
		sb.WriteString(s.Marker.Render(s.MarkerGlyph))
		if n > marker {
			sb.WriteString(s.BarOver.Render(strings.Repeat(s.BarGlyph, n-marker)))
		}
		if used := max(n, marker); used < barWidth {
			sb.WriteString(strings.Repeat(" ", barWidth-used))
		}
		fmt.Fprintf(&sb, " %d\n", l.WordCount)
	}

	sb.WriteString(s.Label.Render(fmt.Sprintf("%s recommended maximum: %d words", s.MarkerGlyph, limit)))
	sb.WriteString("\n")

	return sb.String()
}
