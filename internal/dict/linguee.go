package dict

import (
	"context"
	"fmt"
	"net/url"

	"github.com/opendict/wordscan/internal/extract"
	"github.com/opendict/wordscan/internal/language"
	"github.com/opendict/wordscan/internal/model"
)

// lingueeBaseURL is the host all Linguee search URLs start from.
const lingueeBaseURL = "https://www.linguee.com"

// Linguee looks words up on linguee.com.
//
// Linguee routes searches by full English language names
// ("english-spanish") rather than short codes, and serves only pairs
// with English on one side.
type Linguee struct {
	fetcher Fetcher
}

// NewLinguee creates a Linguee client using the given fetcher.
func NewLinguee(fetcher Fetcher) *Linguee {
	return &Linguee{fetcher: fetcher}
}

// Name returns the source this client queries.
func (l *Linguee) Name() model.Source {
	return model.SourceLinguee
}

// Supports reports whether linguee.com serves the language pair.
func (l *Linguee) Supports(from, to string) bool {
	return language.LingueePairSupported(from, to)
}

// Lookup fetches the Linguee search page for word and extracts its
// translations. An empty extraction is not an error; the result comes
// back with its Error field annotated so callers can report it.
func (l *Linguee) Lookup(ctx context.Context, word, from, to string) (*model.DictionaryResult, error) {
	if word == "" {
		return nil, ErrNoWord
	}

	searchURL, err := lingueeURL(word, from, to)
	if err != nil {
		return nil, err
	}

	html, err := l.fetcher.Fetch(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("linguee lookup %q: %w", word, err)
	}

	result, err := extract.Linguee(html, word, from, to)
	if err != nil {
		return nil, fmt.Errorf("linguee lookup %q: %w", word, err)
	}
	if result.IsEmpty() {
		result.Error = fmt.Sprintf("no translations found for %q (%s-%s)", word, from, to)
	}
	return result, nil
}

// lingueeURL builds the search URL for a word and language pair.
// Linguee routes by full language names, so both codes must resolve.
func lingueeURL(word, from, to string) (string, error) {
	fromName, ok := language.EnglishName(from)
	if !ok {
		return "", fmt.Errorf("%w: %q", language.ErrUnsupportedLanguage, from)
	}
	toName, ok := language.EnglishName(to)
	if !ok {
		return "", fmt.Errorf("%w: %q", language.ErrUnsupportedLanguage, to)
	}
	return fmt.Sprintf("%s/%s-%s/search?source=auto&query=%s",
		lingueeBaseURL, fromName, toName, url.QueryEscape(word)), nil
}
