package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/badele/wordsplit/internal/types"
)

const (
	minPathWidth = 8
	maxPathWidth = 60
	numberWidth  = 9
)

// WriteTable writes one row per file plus a total row. maxWidth bounds the
// table width in columns, zero means no bound.
func WriteTable(w io.Writer, report types.Report, maxWidth int) error {
	pathWidth := len("File")
	for _, f := range report.Files {
		pathWidth = max(pathWidth, uniseg.StringWidth(f.Path))
	}
	pathWidth = min(pathWidth, maxPathWidth)

	if maxWidth > 0 {
		// five borders, then each cell padded by one space on both sides
		fixed := 5 + 2 + 3*(numberWidth+2)
		pathWidth = max(min(pathWidth, maxWidth-fixed), minPathWidth)
	}

	rule := func(left, mid, right string) string {
		return left + strings.Repeat("─", pathWidth+2) +
			strings.Repeat(mid+strings.Repeat("─", numberWidth+2), 3) + right
	}

	var lines int
	var size int64

	fmt.Fprintln(w, rule("┌", "┬", "┐"))
	fmt.Fprintf(w, "│ %s │ %*s │ %*s │ %*s │\n", pad(truncate("File", pathWidth), pathWidth),
		numberWidth, "Lines", numberWidth, "Words", numberWidth, "Bytes")
	fmt.Fprintln(w, rule("├", "┼", "┤"))

	for _, f := range report.Files {
		lines += f.Lines
		size += f.Bytes

		fmt.Fprintf(w, "│ %s │ %*d │ %*d │ %*d │\n", pad(truncate(f.Path, pathWidth), pathWidth),
			numberWidth, f.Lines, numberWidth, f.Words, numberWidth, f.Bytes)
	}

	if len(report.Files) > 0 {
		fmt.Fprintln(w, rule("├", "┼", "┤"))
	}
	_, err := fmt.Fprintf(w, "│ %s │ %*d │ %*d │ %*d │\n", pad("total", pathWidth),
		numberWidth, lines, numberWidth, report.Total, numberWidth, size)
	if err != nil {
		return fmt.Errorf("error writing table: %w", err)
	}

	fmt.Fprintln(w, rule("└", "┴", "┘"))

	return nil
}

// truncate shortens s to at most width display columns, keeping the end of
// the string where file names usually differ.
func truncate(s string, width int) string {
	if uniseg.StringWidth(s) <= width {
		return s
	}

	const ellipsis = "..."
	if width <= len(ellipsis) {
		return ellipsis[:width]
	}

	// walk graphemes from the end until the budget is spent
	var clusters []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	budget := width - len(ellipsis)
	i := len(clusters)
	for i > 0 {
		cw := uniseg.StringWidth(clusters[i-1])
		if cw > budget {
			break
		}
		budget -= cw
		i--
	}

	return ellipsis + strings.Join(clusters[i:], "")
}

func pad(s string, width int) string {
	if n := width - uniseg.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
