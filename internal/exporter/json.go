package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/badele/wordsplit/internal/types"
)

type ReportJSONOutput struct {
	Files []types.FileCount `json:"files"`
	Total int               `json:"total"`
	Stats *types.WordStats  `json:"stats,omitempty"`
}

// WriteJSON writes report as indented JSON. Per-file statistics are folded
// into a single stats object.
func WriteJSON(w io.Writer, report types.Report) error {
	output := ReportJSONOutput{
		Files: make([]types.FileCount, 0, len(report.Files)),
		Total: report.Total,
	}

	hasStats := false
	for _, f := range report.Files {
		if f.Stats != nil {
			hasStats = true
		}
		f.Stats = nil
		output.Files = append(output.Files, f)
	}
	if hasStats {
		stats := report.Stats()
		output.Stats = &stats
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("error writing JSON: %w", err)
	}
	return nil
}
