package model

import (
	"sort"
	"time"
)

// LookupReport is the merged outcome of looking one word up in every
// requested dictionary. The lookup service fills one DictionaryResult per
// source; a source that failed still has an entry, with its Error field set.
//
// Design decision: Results is a map keyed by source rather than a slice
// because:
// 1. The lookup service fans out concurrently and merges by key, so there
//    is no meaningful arrival order to preserve
// 2. Report writers address sources directly ("the wordreference result")
// 3. A missing key cleanly distinguishes "not requested" from "ran and
//    found nothing"
type LookupReport struct {
	// Word is the query term shared by all results.
	Word string `json:"word"`

	// From is the resolved source-language code, e.g. "en".
	From string `json:"from"`

	// To is the resolved target-language code, e.g. "es".
	To string `json:"to"`

	// DateLooked is when the lookup was performed.
	DateLooked time.Time `json:"dateLooked"`

	// Elapsed is the wall-clock duration of the whole lookup. It marshals
	// to nanoseconds in JSON; writers format it for humans.
	Elapsed time.Duration `json:"elapsed"`

	// Results holds one entry per dictionary that was queried.
	Results map[Source]*DictionaryResult `json:"results"`
}

// NewLookupReport creates an empty report for the given word and language
// pair. DateLooked is fixed at creation time.
func NewLookupReport(word, from, to string) *LookupReport {
	return &LookupReport{
		Word:       word,
		From:       from,
		To:         to,
		DateLooked: time.Now(),
		Results:    make(map[Source]*DictionaryResult),
	}
}

// AddResult stores a dictionary result under its own source key.
// A nil result is ignored.
func (r *LookupReport) AddResult(result *DictionaryResult) {
	if result == nil {
		return
	}
	r.Results[result.Source] = result
}

// Result returns the stored result for a source, or false when that source
// was not queried.
func (r *LookupReport) Result(source Source) (*DictionaryResult, bool) {
	result, ok := r.Results[source]
	return result, ok
}

// Sources returns the queried source keys in a stable order so report
// output is deterministic regardless of map iteration.
func (r *LookupReport) Sources() []Source {
	sources := make([]Source, 0, len(r.Results))
	for source := range r.Results {
		sources = append(sources, source)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })
	return sources
}

// HasTranslations reports whether at least one source produced at least one
// translation entry.
func (r *LookupReport) HasTranslations() bool {
	for _, result := range r.Results {
		if !result.IsEmpty() {
			return true
		}
	}
	return false
}

// TotalTranslations returns the number of translation entries across all
// sources.
func (r *LookupReport) TotalTranslations() int {
	total := 0
	for _, result := range r.Results {
		total += result.TranslationCount()
	}
	return total
}
