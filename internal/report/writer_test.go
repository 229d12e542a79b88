package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/opendict/wordscan/internal/model"
)

// createTestReport creates a report with sample data for testing.
func createTestReport() *model.LookupReport {
	report := model.NewLookupReport("hola", "es", "en")
	report.DateLooked = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	report.Elapsed = 1200 * time.Millisecond

	wr := model.NewDictionaryResult("hola", model.SourceWordReference)
	wr.Sections = []model.TranslationSection{
		{
			Title: "Principal Translations",
			Translations: []model.Translation{
				{
					Word:       model.Term{Word: "hola", POS: "interj"},
					Definition: "saludo",
					Meanings: []model.Meaning{
						{Word: "hello", POS: "interj"},
						{Word: "hi", POS: "interj"},
					},
					Examples: []model.Example{
						{
							Phrase:       "¡Hola! ¿Cómo estás?",
							Translations: []string{"Hello! How are you?"},
						},
					},
				},
			},
		},
	}
	wr.AddAudioLink("https://www.wordreference.com/audio/es/hola.mp3")
	report.AddResult(wr)

	lg := model.NewDictionaryResult("hola", model.SourceLinguee)
	lg.Translations = []model.LingueeTranslation{
		{
			From:     "hola",
			FromType: "interjection",
			Audio:    "https://www.linguee.com/mp3/ES/hola.mp3",
			Translations: []model.LingueeCandidate{
				{Text: "hello", Type: "intj", Frequency: model.FrequencyHigh, Verified: true},
				{Text: "hi", Frequency: model.FrequencyMedium},
			},
			Contexts: []model.LingueeContext{
				{Source: "Hola, ¿qué tal?", Target: "Hello, how are you?", Verified: true},
			},
		},
	}
	report.AddResult(lg)

	return report
}

// TestSimpleWriter tests the human-readable report writer.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes report header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "WORDSCAN TRANSLATION REPORT") {
			t.Error("expected output to contain header")
		}
		if !strings.Contains(output, "Word:         hola") {
			t.Error("expected output to contain looked up word")
		}
		if !strings.Contains(output, "Languages:    Spanish -> English") {
			t.Error("expected output to contain language pair")
		}
		if !strings.Contains(output, "Translations: 2") {
			t.Error("expected output to contain translation count")
		}
		if !strings.Contains(output, "Status:       Complete") {
			t.Error("expected output to contain complete status")
		}
	})

	t.Run("writes wordreference section", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "WORDREFERENCE") {
			t.Error("expected output to contain wordreference header")
		}
		if !strings.Contains(output, "[Principal Translations]") {
			t.Error("expected output to contain section title")
		}
		if !strings.Contains(output, "* hola (interj)") {
			t.Error("expected output to contain source term")
		}
		if !strings.Contains(output, "(saludo)") {
			t.Error("expected output to contain definition")
		}
		if !strings.Contains(output, "-> hello (interj)") {
			t.Error("expected output to contain meaning")
		}
	})

	t.Run("writes linguee section", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "LINGUEE") {
			t.Error("expected output to contain linguee header")
		}
		if !strings.Contains(output, "* hola (interjection)") {
			t.Error("expected output to contain lemma")
		}
		if !strings.Contains(output, "-> hello (intj) [***] (verified)") {
			t.Error("expected output to contain verified candidate")
		}
	})

	t.Run("verbose mode includes examples", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithVerbose(true))
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, `ex: "¡Hola! ¿Cómo estás?"`) {
			t.Error("expected verbose output to contain example sentence")
		}
		if !strings.Contains(output, `= "Hello! How are you?"`) {
			t.Error("expected verbose output to contain example translation")
		}
		if !strings.Contains(output, `"Hola, ¿qué tal?" = "Hello, how are you?" (verified)`) {
			t.Error("expected verbose output to contain usage context")
		}
		if !strings.Contains(output, "audio: https://www.linguee.com/mp3/ES/hola.mp3") {
			t.Error("expected verbose output to contain lemma audio")
		}
		if !strings.Contains(output, "[+] https://www.wordreference.com/audio/es/hola.mp3") {
			t.Error("expected verbose output to contain audio link")
		}
	})

	t.Run("default mode omits examples", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if strings.Contains(output, "ex:") {
			t.Error("expected default output to omit example sentences")
		}
		if strings.Contains(output, "audio:") {
			t.Error("expected default output to omit audio links")
		}
	})

	t.Run("writes footer", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "Report generated by wordscan") {
			t.Error("expected output to contain footer")
		}
	})
}

// TestJSONWriter tests the JSON report writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("outputs valid JSON", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Verify it's valid JSON
		var parsed model.LookupReport
		if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}

		if parsed.Word != "hola" {
			t.Errorf("expected word %q, got %q", "hola", parsed.Word)
		}
		if len(parsed.Results) != 2 {
			t.Errorf("expected 2 results, got %d", len(parsed.Results))
		}
		wr, ok := parsed.Result(model.SourceWordReference)
		if !ok {
			t.Fatal("expected wordreference result in parsed report")
		}
		if wr.Sections[0].Title != "Principal Translations" {
			t.Errorf("expected section title %q, got %q",
				"Principal Translations", wr.Sections[0].Title)
		}
	})

	t.Run("compact output by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		// Compact JSON should be on fewer lines
		lines := strings.Split(strings.TrimSpace(output), "\n")
		if len(lines) > 1 {
			t.Errorf("expected compact output (1 line), got %d lines", len(lines))
		}
	})

	t.Run("pretty print with indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithPrettyPrint())
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		// Pretty printed JSON should have multiple lines
		lines := strings.Split(strings.TrimSpace(output), "\n")
		if len(lines) < 5 {
			t.Errorf("expected multi-line output, got %d lines", len(lines))
		}
	})

	t.Run("WriteResult outputs single result", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)
		report := createTestReport()
		result, ok := report.Result(model.SourceLinguee)
		if !ok {
			t.Fatal("expected linguee result in test report")
		}

		_, err := w.WriteResult(result)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var parsed model.DictionaryResult
		if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}

		if parsed.Source != model.SourceLinguee {
			t.Errorf("expected source %q, got %q", model.SourceLinguee, parsed.Source)
		}
		if parsed.InputWord != "hola" {
			t.Errorf("expected input word %q, got %q", "hola", parsed.InputWord)
		}
	})
}

// TestFullJSONWriter tests the full JSON writer with metadata.
func TestFullJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("includes version in output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewFullJSONWriter(&buf, "2.0.0", WithPrettyPrint())
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var parsed JSONReport
		if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}

		if parsed.Version != "2.0.0" {
			t.Errorf("expected version %q, got %q", "2.0.0", parsed.Version)
		}
		if parsed.Report == nil || parsed.Report.Word != "hola" {
			t.Error("expected wrapped report with looked up word")
		}
	})
}

// TestMultiWriter tests writing to multiple outputs.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers", func(t *testing.T) {
		t.Parallel()

		var buf1, buf2 bytes.Buffer
		w1 := NewSimpleWriter(&buf1)
		w2 := NewJSONWriter(&buf2)

		multi := NewMultiWriter(w1, w2)
		report := createTestReport()

		_, err := multi.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Check both buffers have content
		if buf1.Len() == 0 {
			t.Error("expected buf1 to have content")
		}
		if buf2.Len() == 0 {
			t.Error("expected buf2 to have content")
		}

		// Verify formats are different
		if strings.Contains(buf1.String(), "{") {
			t.Error("expected buf1 (simple) to not be JSON")
		}
		if !strings.Contains(buf2.String(), "{") {
			t.Error("expected buf2 (JSON) to contain JSON")
		}
	})
}

// TestSimpleWriterFrequencyIndicators tests frequency markers for all tiers.
func TestSimpleWriterFrequencyIndicators(t *testing.T) {
	t.Parallel()

	t.Run("shows all frequency tiers", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		result := model.NewDictionaryResult("test", model.SourceLinguee)
		result.Translations = []model.LingueeTranslation{
			{
				From: "test",
				Translations: []model.LingueeCandidate{
					{Text: "frequent", Frequency: model.FrequencyHigh},
					{Text: "common", Frequency: model.FrequencyMedium},
					{Text: "rare", Frequency: model.FrequencyLow},
					{Text: "maybe", Frequency: model.FrequencyUnknown},
				},
			},
		}

		_, err := w.WriteResult(result)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "frequent [***]") {
			t.Error("expected high frequency indicator [***]")
		}
		if !strings.Contains(output, "common [**]") {
			t.Error("expected medium frequency indicator [**]")
		}
		if !strings.Contains(output, "rare [*]") {
			t.Error("expected low frequency indicator [*]")
		}
		if !strings.Contains(output, "-> maybe\n") {
			t.Error("expected unknown frequency candidate without indicator")
		}
	})
}

// TestSimpleWriterWithError tests report with a failed source.
func TestSimpleWriterWithError(t *testing.T) {
	t.Parallel()

	t.Run("shows error in source section", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		report := model.NewLookupReport("hola", "es", "en")
		failed := model.NewDictionaryResult("hola", model.SourceWordReference)
		failed.Error = "connection timeout"
		report.AddResult(failed)

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "WORDREFERENCE") {
			t.Error("expected failed source section to be shown")
		}
		if !strings.Contains(output, "ERROR: connection timeout") {
			t.Error("expected error message in output")
		}
	})
}

// TestSimpleWriterWriteResult tests WriteResult method directly.
func TestSimpleWriterWriteResult(t *testing.T) {
	t.Parallel()

	t.Run("writes single result directly", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		report := createTestReport()
		result, ok := report.Result(model.SourceWordReference)
		if !ok {
			t.Fatal("expected wordreference result in test report")
		}

		_, err := w.WriteResult(result)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "WORDREFERENCE") {
			t.Error("expected source header in output")
		}
		if !strings.Contains(output, "* hola (interj)") {
			t.Error("expected source term in output")
		}
		if strings.Contains(output, "WORDSCAN TRANSLATION REPORT") {
			t.Error("expected no report header for single result")
		}
	})
}

// TestSimpleWriterShowEmpty tests the showEmpty option.
func TestSimpleWriterShowEmpty(t *testing.T) {
	t.Parallel()

	t.Run("shows empty sources with showEmpty", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithShowEmpty(true))
		report := model.NewLookupReport("qwzzk", "en", "es")
		report.AddResult(model.NewDictionaryResult("qwzzk", model.SourceWordReference))

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "WORDREFERENCE") {
			t.Error("expected empty source section with showEmpty")
		}
		if !strings.Contains(output, "No translations found") {
			t.Error("expected 'No translations found' message")
		}
	})

	t.Run("hides empty sources without showEmpty", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		report := model.NewLookupReport("qwzzk", "en", "es")
		report.AddResult(model.NewDictionaryResult("qwzzk", model.SourceWordReference))

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		// Without showEmpty, the empty source section is skipped
		if strings.Contains(output, "WORDREFERENCE") {
			t.Error("should not show empty source section without showEmpty")
		}
		if !strings.Contains(output, "Status:       No translations found") {
			t.Error("expected status line to report nothing found")
		}
	})
}

// TestWithIndent tests the WithIndent JSON option.
func TestWithIndent(t *testing.T) {
	t.Parallel()

	t.Run("uses custom prefix and indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithIndent(">>", "\t"))
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		// Should have multiple lines with custom formatting
		lines := strings.Split(strings.TrimSpace(output), "\n")
		if len(lines) < 5 {
			t.Errorf("expected multi-line output, got %d lines", len(lines))
		}
		// Check that prefix is used
		if !strings.Contains(output, ">>") {
			t.Error("expected custom prefix '>>' in output")
		}
		// Check that tab indent is used
		if !strings.Contains(output, "\t") {
			t.Error("expected tab indentation in output")
		}
	})

	t.Run("uses empty prefix with space indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithIndent("", "    "))
		result := model.NewDictionaryResult("hola", model.SourceLinguee)

		_, err := w.WriteResult(result)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		// Should have 4-space indentation
		if !strings.Contains(output, "    ") {
			t.Error("expected 4-space indentation in output")
		}
	})
}

// TestMultiWriterWriteResult tests MultiWriter.WriteResult method.
func TestMultiWriterWriteResult(t *testing.T) {
	t.Parallel()

	t.Run("writes single result to all writers", func(t *testing.T) {
		t.Parallel()

		var buf1, buf2 bytes.Buffer
		w1 := NewSimpleWriter(&buf1)
		w2 := NewJSONWriter(&buf2)

		multi := NewMultiWriter(w1, w2)
		report := createTestReport()
		result, ok := report.Result(model.SourceLinguee)
		if !ok {
			t.Fatal("expected linguee result in test report")
		}

		n, err := multi.WriteResult(result)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n == 0 {
			t.Error("expected non-zero bytes written")
		}

		// Check both buffers have content
		if buf1.Len() == 0 {
			t.Error("expected buf1 to have content")
		}
		if buf2.Len() == 0 {
			t.Error("expected buf2 to have content")
		}

		// Verify content
		if !strings.Contains(buf1.String(), "LINGUEE") {
			t.Error("expected source header in simple output")
		}
		if !strings.Contains(buf2.String(), "linguee") {
			t.Error("expected source name in JSON output")
		}
	})

	t.Run("handles empty writers list", func(t *testing.T) {
		t.Parallel()

		multi := NewMultiWriter()
		result := model.NewDictionaryResult("hola", model.SourceLinguee)

		n, err := multi.WriteResult(result)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 0 {
			t.Errorf("expected 0 bytes written for empty writers, got %d", n)
		}
	})
}

// TestMarkdownWriter tests the Markdown report writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes report header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "# Translation Report") {
			t.Error("expected output to contain H1 header")
		}
		if !strings.Contains(output, "`hola`") {
			t.Error("expected output to contain looked up word")
		}
		if !strings.Contains(output, "Spanish → English") {
			t.Error("expected output to contain language pair")
		}
	})

	t.Run("includes pie chart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "pie") {
			t.Error("expected output to contain mermaid pie chart")
		}
		if !strings.Contains(output, "Translations per Source") {
			t.Error("expected output to contain chart title")
		}
	})

	t.Run("writes wordreference table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "## WordReference") {
			t.Error("expected output to contain wordreference header")
		}
		if !strings.Contains(output, "### Principal Translations") {
			t.Error("expected output to contain section title")
		}
		if !strings.Contains(output, "hello (interj); hi (interj)") {
			t.Error("expected output to contain joined meanings")
		}
		if !strings.Contains(output, "saludo") {
			t.Error("expected output to contain definition")
		}
	})

	t.Run("writes linguee table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "## Linguee") {
			t.Error("expected output to contain linguee header")
		}
		if !strings.Contains(output, "### hola (interjection)") {
			t.Error("expected output to contain lemma header")
		}
		if !strings.Contains(output, "✓") {
			t.Error("expected output to contain verified marker")
		}
		if !strings.Contains(output, "high") {
			t.Error("expected output to contain frequency tier")
		}
	})

	t.Run("includes example sentences", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "¡Hola! ¿Cómo estás? → Hello! How are you?") {
			t.Error("expected output to contain example sentence")
		}
		if !strings.Contains(output, "Hola, ¿qué tal? → Hello, how are you? (verified)") {
			t.Error("expected output to contain usage context")
		}
	})

	t.Run("includes pronunciation links", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "[Pronunciation](https://www.linguee.com/mp3/ES/hola.mp3)") {
			t.Error("expected output to contain lemma pronunciation link")
		}
		if !strings.Contains(output, "### Pronunciation") {
			t.Error("expected output to contain pronunciation section")
		}
		if !strings.Contains(output, "https://www.wordreference.com/audio/es/hola.mp3") {
			t.Error("expected output to contain audio link")
		}
	})

	t.Run("handles report with no translations", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := model.NewLookupReport("qwzzk", "en", "es")
		report.AddResult(model.NewDictionaryResult("qwzzk", model.SourceWordReference))

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "[!NOTE]") {
			t.Error("expected NOTE alert for empty report")
		}
		if !strings.Contains(output, "No translations found.") {
			t.Error("expected message about empty source")
		}
	})

	t.Run("WriteResult outputs single source", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createTestReport()
		result, ok := report.Result(model.SourceLinguee)
		if !ok {
			t.Fatal("expected linguee result in test report")
		}

		_, err := w.WriteResult(result)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "## Linguee") {
			t.Error("expected source header in output")
		}
		if strings.Contains(output, "# Translation Report") {
			t.Error("expected no report header for single result")
		}
	})

	t.Run("writes footer with link", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "https://github.com/opendict/wordscan") {
			t.Error("expected footer with repository link")
		}
	})
}

// TestMarkdownWriterWithError tests report with a failed source.
func TestMarkdownWriterWithError(t *testing.T) {
	t.Parallel()

	t.Run("shows warning alert", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		result := model.NewDictionaryResult("hola", model.SourceWordReference)
		result.Error = "connection refused"

		_, err := w.WriteResult(result)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "[!WARNING]") {
			t.Error("expected WARNING alert for failed source")
		}
		if !strings.Contains(output, "WordReference: connection refused") {
			t.Error("expected error message in output")
		}
	})
}

// TestTruncateString tests the string truncation helper.
func TestTruncateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"short input untouched", "short", 10, "short"},
		{"input at the limit untouched", "exactly10!", 10, "exactly10!"},
		{"long input gets ellipsis", "this is a longer string", 10, "this is..."},
		{"input at tiny limit untouched", "abc", 3, "abc"},
		{"tiny limit cuts without ellipsis", "abcd", 3, "abc"},
		{"limit above length untouched", "ab", 5, "ab"},
		{
			"cut inside an accented rune backs up",
			strings.Repeat("a", 36) + "éeeee",
			40,
			strings.Repeat("a", 36) + "...",
		},
		{"multibyte text cuts on a rune boundary", "ééééé", 6, "é..."},
		{"tiny limit backs out of a rune", "éé", 3, "é"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := truncateString(tt.input, tt.maxLen)
			if result != tt.expected {
				t.Errorf("truncateString(%q, %d) = %q, want %q",
					tt.input, tt.maxLen, result, tt.expected)
			}
			if !utf8.ValidString(result) {
				t.Errorf("truncateString(%q, %d) produced invalid UTF-8: %q",
					tt.input, tt.maxLen, result)
			}
		})
	}
}
