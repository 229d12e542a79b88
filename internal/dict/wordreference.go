package dict

import (
	"context"
	"fmt"
	"net/url"

	"github.com/opendict/wordscan/internal/extract"
	"github.com/opendict/wordscan/internal/language"
	"github.com/opendict/wordscan/internal/model"
)

// wordReferenceBaseURL is the host all WordReference page URLs start from.
const wordReferenceBaseURL = "https://www.wordreference.com"

// WordReference looks words up on wordreference.com.
//
// The site keeps two legacy URL shapes for the Spanish pairs and spells
// some language codes differently from ISO 639-1 (for example "po" for
// Portuguese). Lookup hides both quirks: it builds every candidate URL
// for the pair and tries the spellings in order until one page yields
// translations.
type WordReference struct {
	fetcher Fetcher
}

// NewWordReference creates a WordReference client using the given fetcher.
func NewWordReference(fetcher Fetcher) *WordReference {
	return &WordReference{fetcher: fetcher}
}

// Name returns the source this client queries.
func (w *WordReference) Name() model.Source {
	return model.SourceWordReference
}

// Supports reports whether wordreference.com serves the language pair.
func (w *WordReference) Supports(from, to string) bool {
	return language.WordReferencePairSupported(from, to)
}

// Lookup fetches the WordReference page for word and extracts its
// translations. Alternate URL-code spellings are tried in order until
// one yields translations; when every spelling comes back empty the
// first parsed result is returned with its Error field annotated.
func (w *WordReference) Lookup(ctx context.Context, word, from, to string) (*model.DictionaryResult, error) {
	if word == "" {
		return nil, ErrNoWord
	}

	var (
		empty    *model.DictionaryResult
		firstErr error
	)
	for _, pageURL := range wordReferenceURLs(word, from, to) {
		html, err := w.fetcher.Fetch(ctx, pageURL)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if ctx.Err() != nil {
				break
			}
			continue
		}

		result, err := extract.WordReference(html, word)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if !result.IsEmpty() {
			return result, nil
		}
		if empty == nil {
			empty = result
		}
	}

	if empty == nil {
		return nil, fmt.Errorf("wordreference lookup %q: %w", word, firstErr)
	}
	empty.Error = fmt.Sprintf("no translations found for %q (%s-%s)", word, from, to)
	return empty, nil
}

// wordReferenceURLs returns the candidate page URLs for a word and
// language pair, one per URL-code spelling, canonical spelling first.
// The Spanish pairs use the site's legacy query-string endpoints; all
// other pairs use the modern /{from}{to}/{word} path shape.
func wordReferenceURLs(word, from, to string) []string {
	switch {
	case from == "en" && to == "es":
		return []string{wordReferenceBaseURL + "/es/translation.asp?tranword=" + url.QueryEscape(word)}
	case from == "es" && to == "en":
		return []string{wordReferenceBaseURL + "/es/en/translation.asp?spen=" + url.QueryEscape(word)}
	}

	fromCodes := language.URLCodes(from)
	toCodes := language.URLCodes(to)
	urls := make([]string, 0, len(fromCodes)*len(toCodes))
	for _, f := range fromCodes {
		for _, t := range toCodes {
			urls = append(urls, wordReferenceBaseURL+"/"+f+t+"/"+url.PathEscape(word))
		}
	}
	return urls
}
