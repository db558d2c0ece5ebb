package exporter

import (
	"fmt"
	"io"
)

// WriteTotal writes the word total followed by a newline. legacy reproduces
// the historical output which ended with a blank line.
func WriteTotal(w io.Writer, total int, legacy bool) error {
	format := "%d\n"
	if legacy {
		format = "%d\n\n"
	}

	if _, err := fmt.Fprintf(w, format, total); err != nil {
		return fmt.Errorf("error writing total: %w", err)
	}
	return nil
}
