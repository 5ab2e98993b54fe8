package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/badele/wordstats/internal/stats"
	"github.com/badele/wordstats/internal/types"
)

const tokenColumnWidth = 30

// WriteTopTokens displays the most frequent tokens of a level in a table.
// total is the number of tokens at that level, used for percentages.
func WriteTopTokens(w io.Writer, level types.Level, counts []stats.TokenCount, total int) error {
	bar := strings.Repeat("─", tokenColumnWidth+2)

	fmt.Fprintf(w, "\n--- Most frequent %s tokens\n", level)
	fmt.Fprintf(w, "┌────────┬%s┬─────────┬─────────┐\n", bar)
	fmt.Fprintf(w, "│ %-6s │ %s │ %-7s │ %-7s │\n", "Rank", pad("Token", tokenColumnWidth), "Count", "%")
	fmt.Fprintf(w, "├────────┼%s┼─────────┼─────────┤\n", bar)

	for i, c := range counts {
		percentage := 0.0
		if total > 0 {
			percentage = float64(c.Count) / float64(total) * 100
		}
		fmt.Fprintf(w, "│ %-6d │ %s │ %7d │ %6.2f%% │\n",
			i+1, pad(truncate(c.Token, tokenColumnWidth), tokenColumnWidth), c.Count, percentage)
	}

	_, err := fmt.Fprintf(w, "└────────┴%s┴─────────┴─────────┘\n", bar)
	if err != nil {
		return fmt.Errorf("error displaying table: %w", err)
	}
	return nil
}

// pad right-pads s with spaces up to width terminal cells.
func pad(s string, width int) string {
	if n := uniseg.StringWidth(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// truncate cuts s to at most maxWidth cells, on grapheme boundaries.
func truncate(s string, maxWidth int) string {
	if uniseg.StringWidth(s) <= maxWidth {
		return s
	}

	var b strings.Builder
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if width+g.Width() > maxWidth-3 {
			break
		}
		b.WriteString(g.Str())
		width += g.Width()
	}
	return b.String() + "..."
}
