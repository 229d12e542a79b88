package extract

import "errors"

// Contract-misuse errors.
//
// Design decision: These are the only errors the extractors return.
// Scraping anomalies (missing containers, shifted markup, malformed
// embedded scripts) degrade to empty fields instead, because a site edit
// must never look like a programming bug. An immediate error is reserved
// for calls that cannot mean anything: no document, no word, no languages.
var (
	// ErrNoHTML is returned when the HTML argument is empty.
	ErrNoHTML = errors.New("no html to extract from")

	// ErrNoInputWord is returned when the query word argument is empty.
	ErrNoInputWord = errors.New("no input word")

	// ErrNoLanguage is returned when a required language code is empty.
	ErrNoLanguage = errors.New("missing language code")
)
