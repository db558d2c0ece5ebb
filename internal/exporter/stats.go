package exporter

import (
	"fmt"
	"io"
	"sort"

	"github.com/badele/wordsplit/internal/types"
)

const topN = 10

func DisplayStats(w io.Writer, report types.Report) {
	stats := report.Stats()

	fmt.Fprintln(w, "=== Word Statistics ===")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Files: %d\n", len(report.Files))
	fmt.Fprintf(w, "  Total words: %d\n", report.Total)
	fmt.Fprintf(w, "  Total lines: %d\n", stats.TotalLines)
	fmt.Fprintf(w, "  Blank lines: %d\n", stats.BlankLines)
	fmt.Fprintf(w, "  Distinct words: %d\n", len(stats.Words))
	if stats.LongestWord != "" {
		fmt.Fprintf(w, "  Longest word: %s (%d columns)\n", stats.LongestWord, stats.LongestWordWidth)
	}

	if len(stats.WordLengths) > 0 {
		fmt.Fprintln(w, "\n--- Most Common Word Lengths")

		type lengthCount struct {
			Length int
			Count  int
		}
		var lengths []lengthCount
		for l, c := range stats.WordLengths {
			lengths = append(lengths, lengthCount{l, c})
		}
		sort.Slice(lengths, func(i, j int) bool {
			if lengths[i].Count != lengths[j].Count {
				return lengths[i].Count > lengths[j].Count
			}
			return lengths[i].Length < lengths[j].Length
		})

		for i, lc := range lengths {
			if i >= topN {
				break
			}
			percentage := float64(lc.Count) / float64(stats.TotalWords) * 100
			fmt.Fprintf(w, "  %3d chars: %5d (%.1f%%)\n", lc.Length, lc.Count, percentage)
		}
	}

	if len(stats.Words) > 0 {
		fmt.Fprintln(w, "\n--- Most Used Words")
		displayTopN(w, stats.Words, topN)
	}
}

func displayTopN(w io.Writer, data map[string]int, n int) {
	type entry struct {
		Key   string
		Count int
	}

	var entries []entry
	for k, v := range data {
		entries = append(entries, entry{k, v})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})

	for i, e := range entries {
		if i >= n {
			break
		}
		fmt.Fprintf(w, "  %-30s: %5d\n", e.Key, e.Count)
	}
}
