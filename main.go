package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"golang.org/x/term"

	"github.com/badele/wordsplit/internal/exporter"
	"github.com/badele/wordsplit/internal/processor"
	"github.com/badele/wordsplit/internal/tokenizer"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type CLI struct {
	Encoding      string   `short:"e" default:"utf8" enum:"utf8,utf16,cp437,cp850,iso-8859-1" help:"Input encoding (${enum})."`
	UnicodeSpace  bool     `help:"Split on every Unicode whitespace, not only ASCII whitespace."`
	JSON          bool     `short:"j" help:"Display the per-file report in JSON format."`
	Table         bool     `short:"t" help:"Display the per-file report as a table."`
	Stats         bool     `short:"s" help:"Display word statistics."`
	Jobs          int      `default:"1" help:"Number of files read at the same time."`
	LegacyNewline bool     `help:"Follow the total with a blank line, as the historical output did."`
	Debug         bool     `short:"d" help:"Trace opened files on stderr."`
	Files         []string `arg:"" optional:"" name:"file" help:"Text files to count, '-' reads stdin."`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var cli CLI

	exited := -1
	parser, err := kong.New(&cli,
		kong.Name("wordsplit"),
		kong.Description("Count whitespace-delimited words across text files and print the total."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exited = code }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error building command line: %v\n", err)
		return exitError
	}

	if _, err := parser.Parse(args); err != nil {
		if exited >= 0 {
			return exited
		}
		fmt.Fprintf(stderr, "wordsplit: error: %v\n", err)
		return exitUsage
	}
	if exited >= 0 {
		// --help
		return exited
	}

	opts := processor.Options{
		Encoding:     cli.Encoding,
		CollectStats: cli.Stats,
		Jobs:         cli.Jobs,
	}
	if cli.UnicodeSpace {
		opts.IsSpace = tokenizer.IsUnicodeSpace
	}
	if cli.Debug {
		opts.Trace = stderr
	}

	report, err := processor.Count(ctx, cli.Files, opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error counting words: %v\n", err)
		return exitError
	}

	switch {
	case cli.JSON:
		err = exporter.WriteJSON(stdout, report)

	case cli.Table:
		err = exporter.WriteTable(stdout, report, terminalWidth(stdout))
		if err == nil && cli.Stats {
			fmt.Fprintln(stdout)
			exporter.DisplayStats(stdout, report)
		}

	case cli.Stats:
		exporter.DisplayStats(stdout, report)

	default:
		err = exporter.WriteTotal(stdout, report.Total, cli.LegacyNewline)
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error displaying report: %v\n", err)
		return exitError
	}
	return exitOK
}

// terminalWidth returns the column count of w when it is a terminal, zero
// otherwise.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
