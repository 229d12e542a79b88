package model

import "time"

// Source identifies the dictionary website a result was extracted from.
//
// Design decision: We use string-based constants rather than iota integers
// because the value is part of the JSON wire format and doubles as the key
// users pass to --dictionaries. A self-describing string avoids a mapping
// layer in both places.
type Source string

const (
	// SourceWordReference identifies results extracted from wordreference.com.
	SourceWordReference Source = "wordreference"

	// SourceLinguee identifies results extracted from linguee.com.
	SourceLinguee Source = "linguee"
)

// String returns the source name as used in flags, URLs, and report keys.
func (s Source) String() string {
	return string(s)
}

// DictionaryResult is the normalized outcome of extracting one dictionary
// page for one word. Both extractors produce this shape: WordReference
// fills Sections, Linguee fills Translations, and either may fill
// AudioLinks.
//
// Design decision: The result carries both shapes instead of forcing one
// into the other because:
// 1. The sites organize entries differently (titled sections vs. a flat
//    lemma list) and consumers want to render each site's natural structure
// 2. An empty slice then unambiguously means "extractor ran, found nothing"
// 3. Folding Linguee lemmas into sections would fabricate titles that do
//    not exist in the source document
type DictionaryResult struct {
	// InputWord is the original query term. It is assigned at construction
	// and never rewritten, even when the site canonicalizes the spelling.
	InputWord string `json:"inputWord"`

	// Source identifies the dictionary website this result came from.
	Source Source `json:"source"`

	// Sections holds titled translation groups in document order.
	// Populated by the WordReference extractor only.
	Sections []TranslationSection `json:"sections,omitempty"`

	// Translations holds flat lemma entries in document order.
	// Populated by the Linguee extractor only.
	Translations []LingueeTranslation `json:"translations,omitempty"`

	// AudioLinks lists absolute pronunciation URLs, deduplicated, in order
	// of first discovery.
	AudioLinks []string `json:"audioLinks,omitempty"`

	// Error carries a human-readable failure description. The dict layer
	// sets it when every language-code alternate produced an empty result;
	// the extractors themselves never set it.
	Error string `json:"error,omitempty"`

	// Timestamp is when the result was created. Assigned once by
	// NewDictionaryResult and never mutated afterwards.
	Timestamp time.Time `json:"timestamp"`
}

// NewDictionaryResult creates an empty result for the given word and source.
// The timestamp is fixed at creation time.
func NewDictionaryResult(inputWord string, source Source) *DictionaryResult {
	return &DictionaryResult{
		InputWord: inputWord,
		Source:    source,
		Timestamp: time.Now(),
	}
}

// IsEmpty reports whether extraction yielded no translation entries at all.
// Audio links alone do not count as content.
func (r *DictionaryResult) IsEmpty() bool {
	return len(r.Sections) == 0 && len(r.Translations) == 0
}

// TranslationCount returns the number of translation entries across all
// sections and lemma blocks.
func (r *DictionaryResult) TranslationCount() int {
	count := len(r.Translations)
	for _, section := range r.Sections {
		count += len(section.Translations)
	}
	return count
}

// AddAudioLink appends an audio URL unless it is empty or already present.
// Order of first discovery is preserved.
func (r *DictionaryResult) AddAudioLink(url string) {
	if url == "" {
		return
	}
	for _, existing := range r.AudioLinks {
		if existing == url {
			return
		}
	}
	r.AudioLinks = append(r.AudioLinks, url)
}

// TranslationSection is a titled group of WordReference translations.
// The title may be empty when the page omits a section heading.
type TranslationSection struct {
	// Title is the section heading, e.g. "Principal Translations".
	Title string `json:"title"`

	// Translations are the section's entries in document order.
	Translations []Translation `json:"translations"`
}

// Translation is one WordReference entry: a source term with its meanings
// in the target language and usage examples.
type Translation struct {
	// Word is the source-language term with its part-of-speech tag.
	Word Term `json:"word"`

	// Definition is an optional parenthetical gloss describing the sense
	// the entry covers. Wrapping parentheses are stripped.
	Definition string `json:"definition,omitempty"`

	// Meanings are the target-language renderings in document order.
	Meanings []Meaning `json:"meanings,omitempty"`

	// Examples are usage sentences attached to this entry in document order.
	Examples []Example `json:"examples,omitempty"`
}

// HasContent reports whether the entry carries at least one meaning or one
// example. Entries without either are dropped from the result.
func (t *Translation) HasContent() bool {
	return len(t.Meanings) > 0 || len(t.Examples) > 0
}

// Term is a source-language word with its grammatical annotations.
type Term struct {
	// Word is the cleaned term text.
	Word string `json:"word"`

	// POS is the short part-of-speech code, e.g. "n" or "v".
	POS string `json:"pos,omitempty"`

	// Sense is an optional disambiguating annotation, e.g. "bank (river)".
	Sense string `json:"sense,omitempty"`
}

// Meaning is a target-language rendering of a source term.
type Meaning struct {
	// Word is the cleaned target-language text.
	Word string `json:"word"`

	// POS is the short part-of-speech code of the target word.
	POS string `json:"pos,omitempty"`

	// Sense is an optional annotation narrowing when this rendering applies.
	Sense string `json:"sense,omitempty"`
}

// Example is a source-language usage sentence with its translations.
type Example struct {
	// Phrase is the source-language sentence.
	Phrase string `json:"phrase"`

	// Translations are target-language renderings of the phrase, normally
	// a single element.
	Translations []string `json:"translations,omitempty"`
}
