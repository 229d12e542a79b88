package report

import (
	"io"

	"github.com/opendict/wordscan/internal/model"
)

// Writer defines the interface for report output.
// Implementations write lookup reports in various formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or network
// connections with the same API.
type Writer interface {
	// Write outputs the full lookup report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.LookupReport) (int, error)

	// WriteResult outputs a single source's result.
	// This is useful for streaming batch output one source at a time.
	WriteResult(result *model.DictionaryResult) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because our Writer interface is different
// from io.Writer - we write reports, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(report *model.LookupReport) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteResult outputs the single-source result to all configured Writers.
func (m *MultiWriter) WriteResult(result *model.DictionaryResult) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteResult(result)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// sourceTitle returns the display name for a dictionary source.
func sourceTitle(source model.Source) string {
	switch source {
	case model.SourceWordReference:
		return "WordReference"
	case model.SourceLinguee:
		return "Linguee"
	default:
		return string(source)
	}
}

// formatTerm renders a word with its optional grammatical type and
// sense annotation, e.g. `hola (interj) [greeting]`.
func formatTerm(word, pos, sense string) string {
	s := word
	if pos != "" {
		s += " (" + pos + ")"
	}
	if sense != "" {
		s += " [" + sense + "]"
	}
	return s
}
