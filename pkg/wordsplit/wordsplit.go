// Package wordsplit provides a public API for counting whitespace-delimited
// words in text files.
//
// This package provides functions to:
//   - Split a line into words (ASCII or Unicode whitespace)
//   - Decode inputs from UTF-8, UTF-16, CP437, CP850 or ISO-8859-1
//   - Count words across files, in order, with optional statistics
//
// Example usage:
//
//	import "github.com/badele/wordsplit/pkg/wordsplit"
//
//	words := wordsplit.Split("hello  world\n") // ["hello" "world"]
//	report, err := wordsplit.CountFiles(ctx, os.Args[1:], wordsplit.Options{})
//	fmt.Println(report.Total)
package wordsplit

import (
	"context"
	"io"

	"github.com/badele/wordsplit/internal/exporter"
	"github.com/badele/wordsplit/internal/processor"
	"github.com/badele/wordsplit/internal/tokenizer"
	"github.com/badele/wordsplit/internal/types"
)

// Type aliases for public API
type (
	// Word is a word with its byte position in the line
	Word = types.Word

	// WordList is the ordered list of words of one line
	WordList = types.WordList

	// WordStats contains statistics about counted words
	WordStats = types.WordStats

	// FileCount holds the counts of one input
	FileCount = types.FileCount

	// Report holds every FileCount and the total
	Report = types.Report

	// FileAccessError reports an input that could not be opened
	FileAccessError = types.FileAccessError

	// Classifier decides which runes separate words
	Classifier = tokenizer.Classifier

	// Options controls counting
	Options = processor.Options

	// Tokenizer splits one line into positioned words
	Tokenizer = tokenizer.Tokenizer
)

var ErrUnsupportedEncoding = types.ErrUnsupportedEncoding

// Whitespace classifiers
var (
	IsASCIISpace   Classifier = tokenizer.IsASCIISpace
	IsUnicodeSpace Classifier = tokenizer.IsUnicodeSpace
)

// Split returns the words of line, separated by ASCII whitespace.
func Split(line string) WordList {
	return tokenizer.Wordsplit(line)
}

// SplitFunc returns the words of line, separated by runes matching isSpace.
func SplitFunc(line string, isSpace Classifier) WordList {
	return tokenizer.WordsplitFunc(line, isSpace)
}

// NewTokenizer creates a tokenizer for one line of UTF-8 input.
func NewTokenizer(input []byte, isSpace Classifier) *Tokenizer {
	return tokenizer.NewTokenizer(input, isSpace)
}

// CountFiles counts the words of every path, in order. It fails on the first
// path that cannot be read and returns no partial report.
func CountFiles(ctx context.Context, paths []string, opts Options) (Report, error) {
	return processor.Count(ctx, paths, opts)
}

// CountReader counts the words read from r.
func CountReader(ctx context.Context, name string, r io.Reader, opts Options) (FileCount, error) {
	return processor.CountReader(ctx, name, r, opts)
}

// WriteTotal writes the total followed by a newline.
func WriteTotal(w io.Writer, total int) error {
	return exporter.WriteTotal(w, total, false)
}
