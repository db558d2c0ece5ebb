package processor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/badele/wordsplit/internal/importer"
	"github.com/badele/wordsplit/internal/tokenizer"
	"github.com/badele/wordsplit/internal/types"
)

///////////////////////////////////////////////////////////////////////////////
// Options
///////////////////////////////////////////////////////////////////////////////

type Options struct {
	// Encoding of every input, see importer.Encodings.
	Encoding string
	// IsSpace separates words, tokenizer.IsASCIISpace when nil.
	IsSpace tokenizer.Classifier
	// CollectStats fills FileCount.Stats.
	CollectStats bool
	// Jobs is the number of inputs read at the same time. Values below 2
	// read the inputs one after the other.
	Jobs int
	// Trace receives debug lines when not nil. It is written from several
	// goroutines when Jobs > 1.
	Trace io.Writer
}

func (o Options) tracef(format string, args ...any) {
	if o.Trace != nil {
		fmt.Fprintf(o.Trace, format, args...)
	}
}

///////////////////////////////////////////////////////////////////////////////
// Single input
///////////////////////////////////////////////////////////////////////////////

// CountFile opens path and counts its words. The file is closed on every
// return path.
func CountFile(ctx context.Context, path string, opts Options) (types.FileCount, error) {
	opts.tracef("[open] %s encoding=%s\n", path, opts.encoding())

	f, err := importer.Open(path, opts.encoding())
	if err != nil {
		return types.FileCount{}, err
	}
	defer f.Close()

	return count(ctx, f, opts)
}

// CountReader counts the words read from r, name is reported as the path.
func CountReader(ctx context.Context, name string, r io.Reader, opts Options) (types.FileCount, error) {
	f, err := importer.NewReader(name, r, opts.encoding())
	if err != nil {
		return types.FileCount{}, err
	}
	defer f.Close()

	return count(ctx, f, opts)
}

func (o Options) encoding() string {
	if o.Encoding == "" {
		return importer.DefaultEncoding
	}
	return o.Encoding
}

func count(ctx context.Context, f *importer.File, opts Options) (types.FileCount, error) {
	result := types.FileCount{Path: f.Path}

	var stats types.WordStats
	if opts.CollectStats {
		stats = types.NewWordStats()
	}

	for {
		if err := ctx.Err(); err != nil {
			return types.FileCount{}, err
		}

		line, err := f.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return types.FileCount{}, err
		}

		result.Lines++

		if opts.CollectStats || opts.Trace != nil {
			tok := tokenizer.NewTokenizer([]byte(line), opts.IsSpace)
			for _, w := range tok.Tokenize() {
				result.Words++
				opts.tracef("[Word %d] line=%d %s\n", result.Words, result.Lines, w)
			}
			if opts.CollectStats {
				stats.Merge(tok.GetStats())
			}
			continue
		}

		result.Words += tokenizer.Count(line, opts.IsSpace)
	}

	result.Bytes = f.Size
	if opts.CollectStats {
		result.Stats = &stats
	}

	opts.tracef("[count] %s lines=%d words=%d bytes=%d\n", result.Path, result.Lines, result.Words, result.Bytes)

	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// Multiple inputs
///////////////////////////////////////////////////////////////////////////////

// Count counts every path in order and sums the words. No report is returned
// when any path fails; the error is the one of the left-most failing path.
func Count(ctx context.Context, paths []string, opts Options) (types.Report, error) {
	if opts.Jobs > 1 && len(paths) > 1 {
		return countParallel(ctx, paths, opts)
	}

	report := types.Report{Files: make([]types.FileCount, 0, len(paths))}
	for _, path := range paths {
		fc, err := CountFile(ctx, path, opts)
		if err != nil {
			return types.Report{}, err
		}
		report.Files = append(report.Files, fc)
		report.Total += fc.Words
	}

	return report, nil
}

func countParallel(ctx context.Context, paths []string, opts Options) (types.Report, error) {
	var (
		files = make([]types.FileCount, len(paths))
		errs  = make([]error, len(paths))
	)

	// Workers never return an error to the group: a failure must not cancel
	// the paths on its left, whose own error takes precedence.
	var g errgroup.Group
	g.SetLimit(opts.Jobs)

	for i, path := range paths {
		if path == importer.StdinPath {
			// stdin is read by the calling goroutine
			continue
		}
		g.Go(func() error {
			files[i], errs[i] = CountFile(ctx, path, opts)
			return nil
		})
	}

	for i, path := range paths {
		if path == importer.StdinPath {
			files[i], errs[i] = CountFile(ctx, path, opts)
		}
	}

	if err := g.Wait(); err != nil {
		return types.Report{}, err
	}

	report := types.Report{Files: files}
	for i := range paths {
		if errs[i] != nil {
			return types.Report{}, errs[i]
		}
		report.Total += files[i].Words
	}

	return report, nil
}
