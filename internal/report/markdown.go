package report

import (
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/opendict/wordscan/internal/language"
	"github.com/opendict/wordscan/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
//  1. Type-safe markdown generation
//  2. Support for tables, lists, and code blocks
//  3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full lookup report in Markdown format.
func (w *MarkdownWriter) Write(report *model.LookupReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)

	for _, source := range report.Sources() {
		result, ok := report.Result(source)
		if !ok {
			continue
		}
		w.writeResultBody(md, result)
	}

	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteResult outputs a single source's result in Markdown format.
func (w *MarkdownWriter) WriteResult(result *model.DictionaryResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeResultBody(md, result)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with lookup information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.LookupReport) {
	md.H1("Translation Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Word", "`" + report.Word + "`"},
			{"Languages", language.DisplayName(report.From) + " → " + language.DisplayName(report.To)},
			{"Date", report.DateLooked.Format("2006-01-02 15:04:05 MST")},
			{"Elapsed", report.Elapsed.Round(time.Millisecond).String()},
			{"Translations", strconv.Itoa(report.TotalTranslations())},
		},
	})
	md.PlainText("")
}

// writeSummary writes the per-source distribution chart, or a note when
// nothing was found.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.LookupReport) {
	if !report.HasTranslations() {
		md.Note("No translations were found in any dictionary.")
		md.PlainText("")
		return
	}
	w.writePieChart(md, report)
}

// writePieChart writes a mermaid pie chart of translations per source.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.LookupReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Translations per Source"),
		piechart.WithShowData(true),
	)

	for _, source := range report.Sources() {
		result, ok := report.Result(source)
		if !ok || result.TranslationCount() == 0 {
			continue
		}
		chart.LabelAndIntValue(sourceTitle(source), uint64(result.TranslationCount()))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeResultBody writes one source's section.
func (w *MarkdownWriter) writeResultBody(md *markdown.Markdown, result *model.DictionaryResult) {
	md.H2(sourceTitle(result.Source))
	md.PlainText("")

	if result.Error != "" {
		md.Warningf("%s: %s", sourceTitle(result.Source), result.Error)
		md.PlainText("")
	}

	if result.IsEmpty() {
		if result.Error == "" {
			md.PlainText("No translations found.")
			md.PlainText("")
		}
		// An empty page can still carry pronunciation links.
		w.writeAudioLinks(md, result.AudioLinks)
		return
	}

	for _, section := range result.Sections {
		w.writeSection(md, section)
	}
	for _, entry := range result.Translations {
		w.writeEntry(md, entry)
	}

	w.writeAudioLinks(md, result.AudioLinks)
}

// writeSection writes one WordReference table section.
func (w *MarkdownWriter) writeSection(md *markdown.Markdown, section model.TranslationSection) {
	title := section.Title
	if title == "" {
		title = "Translations"
	}
	md.PlainText("### " + title)
	md.PlainText("")

	rows := make([][]string, len(section.Translations))
	for i, tr := range section.Translations {
		meanings := make([]string, 0, len(tr.Meanings))
		for _, m := range tr.Meanings {
			meanings = append(meanings, formatTerm(m.Word, m.POS, m.Sense))
		}

		definition := tr.Definition
		if definition == "" {
			definition = "-"
		}

		rows[i] = []string{
			formatTerm(tr.Word.Word, tr.Word.POS, tr.Word.Sense),
			truncateString(definition, 40),
			truncateString(strings.Join(meanings, "; "), 60),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Word", "Definition", "Translations"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writeExamples(md, section)
}

// writeExamples writes the section's example sentences as a list.
func (w *MarkdownWriter) writeExamples(md *markdown.Markdown, section model.TranslationSection) {
	var items []string
	for _, tr := range section.Translations {
		for _, example := range tr.Examples {
			item := example.Phrase
			if len(example.Translations) > 0 {
				item += " → " + strings.Join(example.Translations, " / ")
			}
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return
	}

	md.BulletList(items...)
	md.PlainText("")
}

// writeEntry writes one Linguee lemma entry.
func (w *MarkdownWriter) writeEntry(md *markdown.Markdown, entry model.LingueeTranslation) {
	md.PlainText("### " + formatTerm(entry.From, entry.FromType, ""))
	md.PlainText("")

	if len(entry.Translations) > 0 {
		rows := make([][]string, len(entry.Translations))
		for i, cand := range entry.Translations {
			candType := cand.Type
			if candType == "" {
				candType = "-"
			}
			verified := "-"
			if cand.Verified {
				verified = "✓"
			}
			rows[i] = []string{cand.Text, candType, cand.Frequency.String(), verified}
		}

		md.Table(markdown.TableSet{
			Header: []string{"Translation", "Type", "Frequency", "Verified"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if len(entry.Contexts) > 0 {
		items := make([]string, 0, len(entry.Contexts))
		for _, ctx := range entry.Contexts {
			item := ctx.Source + " → " + ctx.Target
			if ctx.Verified {
				item += " (verified)"
			}
			if ctx.External {
				item += " (external)"
			}
			items = append(items, item)
		}
		md.BulletList(items...)
		md.PlainText("")
	}

	if entry.Audio != "" {
		md.PlainTextf("[Pronunciation](%s)", entry.Audio)
		md.PlainText("")
	}
}

// writeAudioLinks writes the pronunciation link list.
func (w *MarkdownWriter) writeAudioLinks(md *markdown.Markdown, links []string) {
	if len(links) == 0 {
		return
	}
	md.PlainText("### Pronunciation")
	md.PlainText("")
	md.BulletList(links...)
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [wordscan](https://github.com/opendict/wordscan)*")
}

// truncateString cuts a string to at most maxLen bytes with an ellipsis,
// never splitting a UTF-8 sequence. Table cells hold non-English text, so
// a byte cut could land inside a rune and corrupt the markdown.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	if maxLen > 3 {
		cut = maxLen - 3
	}
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	if maxLen <= 3 {
		return s[:cut]
	}
	return s[:cut] + "..."
}
