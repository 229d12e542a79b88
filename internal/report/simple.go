package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/opendict/wordscan/internal/language"
	"github.com/opendict/wordscan/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with compact
// dictionary-style entries and clear section formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
//  1. It works in all terminals without compatibility issues
//  2. It's easier to pipe to files or other tools
//  3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether sources with no translations are shown.
	showEmpty bool

	// verbose enables example sentences, usage contexts, and audio
	// links in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show sources that found nothing.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables verbose output with examples and audio links.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		showEmpty:  false,
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the full lookup report in human-readable format.
func (w *SimpleWriter) Write(report *model.LookupReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)

	for _, source := range report.Sources() {
		result, ok := report.Result(source)
		if !ok {
			continue
		}
		if result.IsEmpty() && result.Error == "" && !w.showEmpty {
			continue
		}
		w.writeSource(&sb, result)
	}

	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// WriteResult outputs a single source's result in human-readable format.
func (w *SimpleWriter) WriteResult(result *model.DictionaryResult) (int, error) {
	var sb strings.Builder
	w.writeSource(&sb, result)
	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with lookup information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.LookupReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                     WORDSCAN TRANSLATION REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Word:         %s\n", report.Word))
	sb.WriteString(fmt.Sprintf("Languages:    %s -> %s\n",
		language.DisplayName(report.From), language.DisplayName(report.To)))
	sb.WriteString(fmt.Sprintf("Date:         %s\n", report.DateLooked.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Elapsed:      %s\n", report.Elapsed.Round(time.Millisecond)))
	sb.WriteString(fmt.Sprintf("Translations: %d\n", report.TotalTranslations()))

	if report.HasTranslations() {
		sb.WriteString("Status:       Complete\n")
	} else {
		sb.WriteString("Status:       No translations found\n")
	}

	sb.WriteString("\n")
}

// writeSource writes one dictionary's result section.
func (w *SimpleWriter) writeSource(sb *strings.Builder, result *model.DictionaryResult) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(strings.ToUpper(sourceTitle(result.Source)))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if result.Error != "" {
		sb.WriteString(fmt.Sprintf("  ERROR: %s\n\n", result.Error))
	}

	if result.IsEmpty() {
		if result.Error == "" {
			sb.WriteString("  No translations found\n\n")
		}
		w.writeAudioLinks(sb, result.AudioLinks)
		return
	}

	for _, section := range result.Sections {
		w.writeSection(sb, section)
	}
	for _, entry := range result.Translations {
		w.writeEntry(sb, entry)
	}

	w.writeAudioLinks(sb, result.AudioLinks)
}

// writeSection writes one WordReference table section.
func (w *SimpleWriter) writeSection(sb *strings.Builder, section model.TranslationSection) {
	title := section.Title
	if title == "" {
		title = "Translations"
	}
	sb.WriteString(fmt.Sprintf("[%s]\n\n", title))

	for _, tr := range section.Translations {
		sb.WriteString(fmt.Sprintf("  * %s\n", formatTerm(tr.Word.Word, tr.Word.POS, tr.Word.Sense)))
		if tr.Definition != "" {
			sb.WriteString(fmt.Sprintf("    (%s)\n", tr.Definition))
		}
		for _, m := range tr.Meanings {
			sb.WriteString(fmt.Sprintf("    -> %s\n", formatTerm(m.Word, m.POS, m.Sense)))
		}

		if w.verbose {
			for _, example := range tr.Examples {
				sb.WriteString(fmt.Sprintf("    ex: %q\n", example.Phrase))
				for _, rendering := range example.Translations {
					sb.WriteString(fmt.Sprintf("        = %q\n", rendering))
				}
			}
		}
		sb.WriteString("\n")
	}
}

// writeEntry writes one Linguee lemma entry.
func (w *SimpleWriter) writeEntry(sb *strings.Builder, entry model.LingueeTranslation) {
	sb.WriteString(fmt.Sprintf("  * %s\n", formatTerm(entry.From, entry.FromType, "")))

	for _, cand := range entry.Translations {
		line := cand.Text
		if cand.Type != "" {
			line += " (" + cand.Type + ")"
		}
		if indicator := w.frequencyIndicator(cand.Frequency); indicator != "" {
			line += " [" + indicator + "]"
		}
		if cand.Verified {
			line += " (verified)"
		}
		sb.WriteString(fmt.Sprintf("    -> %s\n", line))
	}

	if w.verbose {
		for _, ctx := range entry.Contexts {
			line := fmt.Sprintf("    %q = %q", ctx.Source, ctx.Target)
			if ctx.Verified {
				line += " (verified)"
			}
			if ctx.External {
				line += " (external)"
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		if entry.Audio != "" {
			sb.WriteString(fmt.Sprintf("    audio: %s\n", entry.Audio))
		}
	}
	sb.WriteString("\n")
}

// writeAudioLinks writes the pronunciation link list.
func (w *SimpleWriter) writeAudioLinks(sb *strings.Builder, links []string) {
	if !w.verbose || len(links) == 0 {
		return
	}

	sb.WriteString("  Audio:\n")
	for _, link := range links {
		sb.WriteString(fmt.Sprintf("    [+] %s\n", link))
	}
	sb.WriteString("\n")
}

// frequencyIndicator returns a visual marker for a candidate's usage
// frequency tier.
func (w *SimpleWriter) frequencyIndicator(frequency model.Frequency) string {
	switch frequency {
	case model.FrequencyHigh:
		return "***"
	case model.FrequencyMedium:
		return "**"
	case model.FrequencyLow:
		return "*"
	default:
		return ""
	}
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by wordscan\n")
	sb.WriteString("https://github.com/opendict/wordscan\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
