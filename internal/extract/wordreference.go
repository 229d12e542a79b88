package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/opendict/wordscan/internal/model"
	"github.com/opendict/wordscan/internal/textutil"
)

// WordReference marker classes. The site tags translation tables and their
// row and cell roles with these classes; everything else on the page is
// navigation and ads.
const (
	wrTableSelector      = "table.WRD"
	wrSectionRowClass    = "wrtopsection"
	wrLangHeaderRowClass = "langHeader"
	wrSourceWordCell     = "td.FrWrd"
	wrTargetWordCell     = "td.ToWrd"
	wrSourceExampleCell  = "td.FrEx"
	wrTargetExampleCell  = "td.ToEx"
	wrPOSTag             = "em.POS2"
	wrMeaningSenseTag    = "span.dsense"
	wrWordSenseTag       = "span.Fr2"
)

// WordReference extracts a result from a WordReference search page. The
// returned result holds one TranslationSection per qualifying table, in
// document order, plus the page's pronunciation URLs. A page with no
// qualifying tables yields an empty result, not an error; the dict layer
// decides whether that constitutes failure.
func WordReference(html, inputWord string) (*model.DictionaryResult, error) {
	if html == "" {
		return nil, ErrNoHTML
	}
	if inputWord == "" {
		return nil, ErrNoInputWord
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse wordreference page: %w", err)
	}

	result := model.NewDictionaryResult(inputWord, model.SourceWordReference)

	doc.Find(wrTableSelector).Each(func(_ int, table *goquery.Selection) {
		section := wordReferenceSection(table)
		if section.Title != "" || len(section.Translations) > 0 {
			result.Sections = append(result.Sections, section)
		}
	})

	for _, link := range wordReferenceAudioLinks(html) {
		result.AddAudioLink(link)
	}
	return result, nil
}

// wordReferenceSection walks one translation table. The title comes from
// the table's section row when it has one; rows then drive the state
// machine in document order.
func wordReferenceSection(table *goquery.Selection) model.TranslationSection {
	section := model.TranslationSection{
		Title: textutil.CleanText(table.Find("tr." + wrSectionRowClass).First().Text()),
	}

	var state rowState
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		switch {
		case row.HasClass(wrSectionRowClass), row.HasClass(wrLangHeaderRowClass):
			// Title and column-header rows carry no entry data.
		case row.Find(wrSourceExampleCell).Length() > 0:
			state.startExample(textutil.CleanText(row.Find(wrSourceExampleCell).First().Text()))
		case row.Find(wrTargetExampleCell).Length() > 0:
			state.addRendering(textutil.CleanText(row.Find(wrTargetExampleCell).First().Text()))
		case row.Find(wrSourceWordCell).Length() > 0, row.Find(wrTargetWordCell).Length() > 0:
			state.startTranslation(translationFromRow(row))
		}
	})

	section.Translations = state.finish()
	return section
}

// translationFromRow builds a new entry from a word row: the source term
// from the FrWrd cell, one meaning from the ToWrd cell, and annotations
// from whatever other cells the row carries.
func translationFromRow(row *goquery.Selection) model.Translation {
	var t model.Translation

	if cell := row.Find(wrSourceWordCell).First(); cell.Length() > 0 {
		t.Word = model.Term{Word: cellWord(cell), POS: cellPOS(cell)}
	}
	if cell := row.Find(wrTargetWordCell).First(); cell.Length() > 0 {
		meaning := model.Meaning{Word: cellWord(cell), POS: cellPOS(cell)}
		if meaning.Word != "" {
			t.Meanings = append(t.Meanings, meaning)
		}
	}

	row.Find("td").Each(func(_ int, cell *goquery.Selection) {
		if cell.HasClass("FrWrd") || cell.HasClass("ToWrd") {
			return
		}
		if sense := textutil.CleanText(cell.Find(wrMeaningSenseTag).First().Text()); sense != "" {
			if len(t.Meanings) > 0 && t.Meanings[0].Sense == "" {
				t.Meanings[0].Sense = stripWrappingParens(sense)
			}
		}
		if sense := textutil.CleanText(cell.Find(wrWordSenseTag).First().Text()); sense != "" && t.Word.Sense == "" {
			t.Word.Sense = sense
		}
		if t.Definition == "" {
			if leftover := cellLeftoverText(cell); leftover != "" {
				t.Definition = stripWrappingParens(leftover)
			}
		}
	})
	return t
}

// cellWord returns the cell's text with its annotation tags removed, so
// "hola interj" comes back as just "hola". The cell is cloned first; the
// document is never mutated.
func cellWord(cell *goquery.Selection) string {
	clone := cell.Clone()
	clone.Find(wrPOSTag + ", " + wrMeaningSenseTag + ", " + wrWordSenseTag).Remove()
	return textutil.CleanText(clone.Text())
}

// cellPOS reads the cell's part-of-speech tag and maps it to a short code.
// Tags the classifier does not know pass through unchanged.
func cellPOS(cell *goquery.Selection) string {
	return textutil.ClassifyGrammaticalType(cell.Find(wrPOSTag).First().Text())
}

// cellLeftoverText returns the cell's text after removing every annotation
// tag. Word rows use the first non-empty leftover as the entry definition.
func cellLeftoverText(cell *goquery.Selection) string {
	clone := cell.Clone()
	clone.Find(wrPOSTag + ", " + wrMeaningSenseTag + ", " + wrWordSenseTag).Remove()
	return textutil.CleanText(clone.Text())
}

// stripWrappingParens removes one pair of parentheses when it wraps the
// whole string. "(saludo)" becomes "saludo"; "(a) or (b)" is untouched
// because its first parenthesis closes before the end.
func stripWrappingParens(s string) string {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return s
	}
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(s)-1 {
				return s
			}
		}
	}
	if depth != 0 {
		return s
	}
	return strings.TrimSpace(s[1 : len(s)-1])
}

// rowState is the two-slot state machine the row scanner drives: the
// translation under construction and the example under construction.
// Flushing is ordered: a pending example lands in the pending translation,
// and the translation lands in the finished list only if it gained at
// least one meaning or example.
type rowState struct {
	finished           []model.Translation
	pendingTranslation *model.Translation
	pendingExample     *model.Example
}

// startExample flushes any pending example and begins a new one with the
// given source phrase. An empty phrase flushes without starting a
// replacement.
func (s *rowState) startExample(phrase string) {
	s.flushExample()
	if phrase == "" {
		return
	}
	s.pendingExample = &model.Example{Phrase: phrase}
}

// addRendering appends a target-language rendering to the pending example.
// A rendering with no example to attach to is dropped.
func (s *rowState) addRendering(text string) {
	if s.pendingExample == nil || text == "" {
		return
	}
	s.pendingExample.Translations = append(s.pendingExample.Translations, text)
}

// startTranslation finalizes the previous entry and makes t the one under
// construction.
func (s *rowState) startTranslation(t model.Translation) {
	s.flushTranslation()
	s.pendingTranslation = &t
}

// flushExample moves the pending example into the pending translation. An
// example with no translation under construction has no home and is
// dropped.
func (s *rowState) flushExample() {
	if s.pendingExample == nil {
		return
	}
	if s.pendingTranslation != nil {
		s.pendingTranslation.Examples = append(s.pendingTranslation.Examples, *s.pendingExample)
	}
	s.pendingExample = nil
}

// flushTranslation flushes the pending example, then retains the pending
// translation when it has content.
func (s *rowState) flushTranslation() {
	s.flushExample()
	if s.pendingTranslation == nil {
		return
	}
	if s.pendingTranslation.HasContent() {
		s.finished = append(s.finished, *s.pendingTranslation)
	}
	s.pendingTranslation = nil
}

// finish flushes whatever remains and returns the retained entries in
// document order.
func (s *rowState) finish() []model.Translation {
	s.flushTranslation()
	return s.finished
}
