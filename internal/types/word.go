package types

import (
	"errors"
	"fmt"
)

/////////////////////////////////////////////////////////////////////////////
// WORD
/////////////////////////////////////////////////////////////////////////////

// Word is a maximal run of non-whitespace characters. Pos is the byte offset
// of its first character inside the tokenized input.
type Word struct {
	Pos   int    `json:"pos"`
	Value string `json:"value"`
}

func (w Word) String() string {
	return fmt.Sprintf("WORD@%d: %s", w.Pos, w.Value)
}

// WordList holds the words of one line, left to right. It may be empty.
type WordList []string

/////////////////////////////////////////////////////////////////////////////
// WORD STATS
/////////////////////////////////////////////////////////////////////////////

type WordStats struct {
	TotalWords       int            `json:"total_words"`
	TotalLines       int            `json:"total_lines"`
	BlankLines       int            `json:"blank_lines"`
	LongestWord      string         `json:"longest_word,omitempty"`
	LongestWordWidth int            `json:"longest_word_width"`
	WordLengths      map[int]int    `json:"word_lengths"`
	Words            map[string]int `json:"words"`
}

func NewWordStats() WordStats {
	return WordStats{
		WordLengths: make(map[int]int),
		Words:       make(map[string]int),
	}
}

// Merge adds other into s.
func (s *WordStats) Merge(other WordStats) {
	s.TotalWords += other.TotalWords
	s.TotalLines += other.TotalLines
	s.BlankLines += other.BlankLines

	if other.LongestWordWidth > s.LongestWordWidth {
		s.LongestWord = other.LongestWord
		s.LongestWordWidth = other.LongestWordWidth
	}

	if s.WordLengths == nil {
		s.WordLengths = make(map[int]int)
	}
	for k, v := range other.WordLengths {
		s.WordLengths[k] += v
	}

	if s.Words == nil {
		s.Words = make(map[string]int)
	}
	for k, v := range other.Words {
		s.Words[k] += v
	}
}

/////////////////////////////////////////////////////////////////////////////
// COUNTS
/////////////////////////////////////////////////////////////////////////////

type FileCount struct {
	Path  string     `json:"path"`
	Lines int        `json:"lines"`
	Words int        `json:"words"`
	Bytes int64      `json:"bytes"`
	Stats *WordStats `json:"stats,omitempty"`
}

type Report struct {
	Files []FileCount `json:"files"`
	Total int         `json:"total"`
}

// Stats merges the per-file statistics. Files counted without statistics are
// skipped.
func (r Report) Stats() WordStats {
	stats := NewWordStats()
	for _, f := range r.Files {
		if f.Stats != nil {
			stats.Merge(*f.Stats)
		}
	}
	return stats
}

/////////////////////////////////////////////////////////////////////////////
// ERRORS
/////////////////////////////////////////////////////////////////////////////

var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// FileAccessError reports a path that could not be opened for reading.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot open %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}
