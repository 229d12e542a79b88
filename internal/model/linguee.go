package model

// Frequency is the usage-frequency tier Linguee assigns to a translation
// candidate. It is derived from the phrase in the candidate's frequency tag
// and defaults to FrequencyUnknown when the tag is absent or unrecognized.
type Frequency string

const (
	// FrequencyHigh marks candidates tagged "almost always used".
	FrequencyHigh Frequency = "high"

	// FrequencyMedium marks candidates tagged "often used".
	FrequencyMedium Frequency = "medium"

	// FrequencyLow marks candidates tagged "less common".
	FrequencyLow Frequency = "low"

	// FrequencyUnknown marks candidates with no recognized frequency tag.
	FrequencyUnknown Frequency = "unknown"
)

// String returns the frequency tier as it appears in JSON output.
func (f Frequency) String() string {
	return string(f)
}

// LingueeTranslation is one Linguee lemma block: a source word with its
// translation candidates and real-world usage contexts. Linguee has no
// section layer, so these sit directly on DictionaryResult.Translations.
type LingueeTranslation struct {
	// From is the cleaned source-language word.
	From string `json:"from"`

	// FromType is the grammatical tag of the source word, stored verbatim
	// from the page (e.g. "noun, feminine"). No classification is applied
	// because Linguee's tags carry gender and plurality detail that the
	// short codes would lose.
	FromType string `json:"fromType,omitempty"`

	// Audio is an absolute pronunciation URL, empty when the lemma block
	// has none.
	Audio string `json:"audio,omitempty"`

	// Translations are the candidate renderings in document order.
	Translations []LingueeCandidate `json:"translations,omitempty"`

	// Contexts are bilingual usage examples in document order.
	Contexts []LingueeContext `json:"contexts,omitempty"`
}

// HasContent reports whether the lemma carries at least one candidate or
// one context. Lemmas without either are dropped from the result.
func (t *LingueeTranslation) HasContent() bool {
	return len(t.Translations) > 0 || len(t.Contexts) > 0
}

// LingueeCandidate is a single translation candidate inside a lemma block.
type LingueeCandidate struct {
	// Text is the cleaned target-language text.
	Text string `json:"text"`

	// Type is the candidate's own grammatical tag, verbatim from the page.
	Type string `json:"type,omitempty"`

	// Frequency is the usage tier Linguee reports for this candidate.
	Frequency Frequency `json:"frequency"`

	// Verified is true when the candidate carries the editorial
	// verification icon.
	Verified bool `json:"verified"`
}

// LingueeContext is a bilingual example sentence pair from a lemma block.
type LingueeContext struct {
	// Source is the sentence in the source language.
	Source string `json:"source"`

	// Target is the sentence in the target language.
	Target string `json:"target"`

	// Verified is true when the pair carries the verification icon.
	Verified bool `json:"verified"`

	// External is true when the pair is drawn from an external website
	// rather than Linguee's curated dictionary.
	External bool `json:"external"`
}
