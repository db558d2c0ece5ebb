package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/badele/wordsplit/internal/types"
)

// Classifier reports whether r separates words.
type Classifier func(r rune) bool

// IsASCIISpace matches space, tab, newline, carriage return, form feed and
// vertical tab.
func IsASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// IsUnicodeSpace matches every rune with the Unicode White_Space property.
func IsUnicodeSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// Wordsplit returns the words of line using ASCII whitespace as separator.
func Wordsplit(line string) types.WordList {
	return WordsplitFunc(line, IsASCIISpace)
}

// WordsplitFunc returns the maximal runs of runes for which isSpace is false,
// in order of appearance. It never returns empty words.
func WordsplitFunc(line string, isSpace Classifier) types.WordList {
	if isSpace == nil {
		isSpace = IsASCIISpace
	}

	list := make(types.WordList, 0)
	start := -1
	for i, r := range line {
		if isSpace(r) {
			if start >= 0 {
				list = append(list, line[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		list = append(list, line[start:])
	}
	return list
}

// Count returns len(WordsplitFunc(line, isSpace)) without building the list.
func Count(line string, isSpace Classifier) int {
	if isSpace == nil {
		isSpace = IsASCIISpace
	}

	n := 0
	inWord := false
	for _, r := range line {
		if isSpace(r) {
			inWord = false
			continue
		}
		if !inWord {
			n++
			inWord = true
		}
	}
	return n
}

type Tokenizer struct {
	input   []byte
	pos     int
	isSpace Classifier
	Words   []types.Word    `json:"words"`
	Stats   types.WordStats `json:"stats"`
}

// NewTokenizer creates a tokenizer over one line of input. A nil classifier
// selects IsASCIISpace.
func NewTokenizer(input []byte, isSpace Classifier) *Tokenizer {
	if isSpace == nil {
		isSpace = IsASCIISpace
	}

	return &Tokenizer{
		input:   input,
		pos:     0,
		isSpace: isSpace,
		Words:   make([]types.Word, 0),
		Stats:   types.NewWordStats(),
	}
}

func (t *Tokenizer) Tokenize() []types.Word {
	var word strings.Builder
	start := 0

	for t.pos < len(t.input) {
		r, size := utf8.DecodeRune(t.input[t.pos:])

		if t.isSpace(r) {
			if word.Len() > 0 {
				t.Words = append(t.Words, types.Word{Pos: start, Value: word.String()})
				word.Reset()
			}
		} else {
			if word.Len() == 0 {
				start = t.pos
			}
			// invalid bytes are kept as-is, they are never whitespace
			word.Write(t.input[t.pos : t.pos+size])
		}

		t.pos += size
	}

	// last word of a line without trailing whitespace
	if word.Len() > 0 {
		t.Words = append(t.Words, types.Word{Pos: start, Value: word.String()})
	}

	t.calculateStats()

	return t.Words
}

func (t *Tokenizer) GetStats() types.WordStats {
	return t.Stats
}

func (t *Tokenizer) calculateStats() {
	t.Stats.TotalLines = 1
	t.Stats.TotalWords = len(t.Words)
	if len(t.Words) == 0 {
		t.Stats.BlankLines = 1
	}

	for _, w := range t.Words {
		t.Stats.WordLengths[utf8.RuneCountInString(w.Value)]++
		t.Stats.Words[w.Value]++

		width := uniseg.StringWidth(w.Value)
		if width > t.Stats.LongestWordWidth {
			t.Stats.LongestWord = w.Value
			t.Stats.LongestWordWidth = width
		}
	}
}
