package wordsplit

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	got := Split("  hello \t world\n")
	want := WordList{"hello", "world"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSplitFuncUnicode(t *testing.T) {
	got := SplitFunc("a\u3000b", IsUnicodeSpace)

	if len(got) != 2 {
		t.Fatalf("expected 2 words, got %q", got)
	}
}

func TestCountReaderAndWriteTotal(t *testing.T) {
	fc, err := CountReader(context.Background(), "stdin", strings.NewReader("hello world\nfoo\n"), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteTotal(&buf, fc.Words); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "3\n" {
		t.Fatalf("expected %q, got %q", "3\n", buf.String())
	}
}

func TestCountFilesNoPaths(t *testing.T) {
	report, err := CountFiles(context.Background(), nil, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Total != 0 {
		t.Fatalf("expected 0, got %d", report.Total)
	}
}
