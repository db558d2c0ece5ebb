// Package importer opens text inputs and decodes them to UTF-8 lines.
//
// Supported encodings: "utf8" (default, leading BOM stripped), "utf16"
// (BOM driven, little endian when absent), "cp437", "cp850", "iso-8859-1".
package importer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/badele/wordsplit/internal/types"
)

// StdinPath names standard input on the command line.
const StdinPath = "-"

const DefaultEncoding = "utf8"

var ErrIsDirectory = errors.New("is a directory")

// Encodings lists the accepted encoding names, an empty name selects
// DefaultEncoding.
var Encodings = []string{"utf8", "utf16", "cp437", "cp850", "iso-8859-1"}

// NewDecoder returns the decoder converting sourceEncoding to UTF-8.
func NewDecoder(sourceEncoding string) (*encoding.Decoder, error) {
	switch sourceEncoding {
	case "", "utf8":
		return unicode.UTF8BOM.NewDecoder(), nil
	case "utf16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), nil
	case "cp437":
		return charmap.CodePage437.NewDecoder(), nil
	case "cp850":
		return charmap.CodePage850.NewDecoder(), nil
	case "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedEncoding, sourceEncoding)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// File is an open input read line by line.
type File struct {
	Path   string
	closer io.Closer
	reader *bufio.Reader
	// Size counts the decoded bytes returned so far.
	Size int64
}

// Open opens path for reading through the sourceEncoding decoder. The
// returned error is a *types.FileAccessError when the path cannot be read.
func Open(path, sourceEncoding string) (*File, error) {
	decoder, err := NewDecoder(sourceEncoding)
	if err != nil {
		return nil, err
	}

	if path == StdinPath {
		return newFile(path, os.Stdin, nopCloser{}, decoder), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, accessError(path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, accessError(path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, &types.FileAccessError{Path: path, Err: ErrIsDirectory}
	}

	return newFile(path, f, f, decoder), nil
}

// accessError drops the *fs.PathError layer, FileAccessError already names
// the path.
func accessError(path string, err error) *types.FileAccessError {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return &types.FileAccessError{Path: path, Err: err}
}

// NewReader wraps r. Closing the returned File does not close r.
func NewReader(name string, r io.Reader, sourceEncoding string) (*File, error) {
	decoder, err := NewDecoder(sourceEncoding)
	if err != nil {
		return nil, err
	}
	return newFile(name, r, nopCloser{}, decoder), nil
}

func newFile(path string, r io.Reader, c io.Closer, decoder *encoding.Decoder) *File {
	return &File{
		Path:   path,
		closer: c,
		reader: bufio.NewReader(decoder.Reader(r)),
	}
}

// ReadLine returns the next line including its terminator. The last line of
// an input without a final newline is returned as is; io.EOF follows it.
func (f *File) ReadLine() (string, error) {
	line, err := f.reader.ReadString('\n')
	f.Size += int64(len(line))

	if err == nil {
		return line, nil
	}
	if errors.Is(err, io.EOF) {
		if line != "" {
			return line, nil
		}
		return "", io.EOF
	}

	return line, fmt.Errorf("error reading %s: %w", f.Path, err)
}

func (f *File) Close() error {
	return f.closer.Close()
}
