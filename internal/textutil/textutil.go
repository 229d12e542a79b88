package textutil

import (
	"strings"
	"unicode"
)

// allowedRanges lists the Unicode script and category tables a rune may
// belong to and survive CleanText. The set covers the writing systems of
// every language pair the dictionaries serve, plus digits and combining
// marks so accented and pointed text keeps its diacritics.
var allowedRanges = []*unicode.RangeTable{
	unicode.Latin,
	unicode.Cyrillic,
	unicode.Han,
	unicode.Hiragana,
	unicode.Katakana,
	unicode.Hebrew,
	unicode.Arabic,
	unicode.Nd,
	unicode.Mn,
}

// allowedPunct lists punctuation that carries meaning inside dictionary
// entries: hyphenated words, apostrophes, sense annotations in parentheses,
// Spanish inverted marks, and clause separators in example sentences.
const allowedPunct = `'-.,;:!?¿¡()/`

// CleanText collapses whitespace runs to a single space, trims the ends,
// and drops runes outside the allow-list. Empty input returns an empty
// string. The function is idempotent: cleaning cleaned text changes
// nothing.
func CleanText(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	pendingSpace := false
	for _, r := range raw {
		if unicode.IsSpace(r) {
			// Collapse the run; drop it entirely at the start of the text.
			pendingSpace = b.Len() > 0
			continue
		}
		if !allowedRune(r) {
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func allowedRune(r rune) bool {
	if unicode.In(r, allowedRanges...) {
		return true
	}
	return strings.ContainsRune(allowedPunct, r)
}

// grammarRole pairs a grammatical-role name with its short code.
type grammarRole struct {
	name string
	code string
}

// grammarRoles maps role names to short codes. Declaration order is
// significant: the substring fallback in ClassifyGrammaticalType scans top
// to bottom and returns the first hit, so "plural noun" classifies as "n"
// rather than "pl". Reordering this table changes output for inputs that
// mention several roles.
var grammarRoles = []grammarRole{
	{name: "noun", code: "n"},
	{name: "verb", code: "v"},
	{name: "adjective", code: "adj"},
	{name: "adverb", code: "adv"},
	{name: "preposition", code: "prep"},
	{name: "conjunction", code: "conj"},
	{name: "interjection", code: "interj"},
	{name: "pronoun", code: "pron"},
	{name: "article", code: "art"},
	{name: "masculine", code: "m"},
	{name: "feminine", code: "f"},
	{name: "neuter", code: "nt"},
	{name: "plural", code: "pl"},
	{name: "singular", code: "sg"},
	{name: "invariable", code: "inv"},
}

// ClassifyGrammaticalType maps a grammatical-role string to its short code.
// Matching is case-insensitive. An exact role name wins first; otherwise
// the first role name contained in the input, in table order, wins; inputs
// matching nothing come back lowercased and trimmed but otherwise
// unchanged.
func ClassifyGrammaticalType(raw string) string {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return ""
	}

	for _, role := range grammarRoles {
		if normalized == role.name {
			return role.code
		}
	}
	for _, role := range grammarRoles {
		if strings.Contains(normalized, role.name) {
			return role.code
		}
	}
	return normalized
}
