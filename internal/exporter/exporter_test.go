package exporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rivo/uniseg"

	"github.com/badele/wordsplit/internal/types"
)

func sampleReport() types.Report {
	statsA := types.NewWordStats()
	statsA.Merge(types.WordStats{
		TotalWords:       3,
		TotalLines:       2,
		BlankLines:       1,
		LongestWord:      "hello",
		LongestWordWidth: 5,
		WordLengths:      map[int]int{5: 2, 3: 1},
		Words:            map[string]int{"hello": 1, "world": 1, "foo": 1},
	})

	return types.Report{
		Files: []types.FileCount{
			{Path: "a.txt", Lines: 2, Words: 3, Bytes: 16, Stats: &statsA},
			{Path: "b.txt", Lines: 1, Words: 0, Bytes: 1},
		},
		Total: 3,
	}
}

func TestWriteTotal(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		legacy   bool
		expected string
	}{
		{"Zero", 0, false, "0\n"},
		{"Single newline", 5, false, "5\n"},
		{"Legacy blank line", 5, true, "5\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteTotal(&buf, tt.total, tt.legacy); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if buf.String() != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, buf.String())
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded ReportJSONOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}

	if decoded.Total != 3 || len(decoded.Files) != 2 {
		t.Fatalf("unexpected output %+v", decoded)
	}
	if decoded.Files[0].Stats != nil {
		t.Errorf("per-file stats should be folded into the top-level stats")
	}
	if decoded.Stats == nil || decoded.Stats.Words["hello"] != 1 {
		t.Errorf("expected merged stats, got %+v", decoded.Stats)
	}
}

func TestWriteJSONWithoutStats(t *testing.T) {
	var buf bytes.Buffer
	report := types.Report{Files: []types.FileCount{}, Total: 0}
	if err := WriteJSON(&buf, report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(buf.String(), `"stats"`) {
		t.Errorf("expected no stats key, got %s", buf.String())
	}
	if !strings.Contains(buf.String(), `"files": []`) {
		t.Errorf("expected empty files array, got %s", buf.String())
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, sampleReport(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d:\n%s", len(lines), buf.String())
	}

	width := uniseg.StringWidth(lines[0])
	for i, line := range lines {
		if got := uniseg.StringWidth(line); got != width {
			t.Errorf("line %d: expected width %d, got %d: %q", i, width, got, line)
		}
	}

	if !strings.Contains(lines[len(lines)-2], "total") || !strings.Contains(lines[len(lines)-2], " 3 ") {
		t.Errorf("unexpected total row %q", lines[len(lines)-2])
	}
}

func TestWriteTableWideAndLongPaths(t *testing.T) {
	report := types.Report{
		Files: []types.FileCount{
			{Path: "日本語のファイル.txt", Words: 1},
			{Path: strings.Repeat("very/long/directory/", 10) + "file.txt", Words: 2},
		},
		Total: 3,
	}

	var buf bytes.Buffer
	if err := WriteTable(&buf, report, 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	width := uniseg.StringWidth(lines[0])
	if width > 50 {
		t.Errorf("expected table at most 50 columns, got %d", width)
	}
	for i, line := range lines {
		if got := uniseg.StringWidth(line); got != width {
			t.Errorf("line %d: expected width %d, got %d: %q", i, width, got, line)
		}
	}
	if !strings.Contains(buf.String(), "...") {
		t.Errorf("expected truncated path, got:\n%s", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"Fits", "abc", 5, "abc"},
		{"Keeps suffix", "abcdefghij", 7, "...ghij"},
		{"Wide runes", "ab日本語", 7, "...本語"},
		{"Tiny width", "abcdef", 2, ".."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.width); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestDisplayStats(t *testing.T) {
	var buf bytes.Buffer
	DisplayStats(&buf, sampleReport())
	out := buf.String()

	for _, want := range []string{
		"=== Word Statistics ===",
		"Files: 2",
		"Total words: 3",
		"Blank lines: 1",
		"Longest word: hello (5 columns)",
		"5 chars:     2 (66.7%)",
		"--- Most Used Words",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}
