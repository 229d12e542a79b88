// Package model defines the core data structures used throughout wordscan.
//
// This package contains the following main types:
//   - DictionaryResult: The normalized extraction outcome for one site and word
//   - TranslationSection / Translation: WordReference's sectioned entry graph
//   - LingueeTranslation: Linguee's flat lemma entries
//   - LookupReport: The merged result of looking one word up in every site
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (extract, dict, lookup, report) need to use
// these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output. Field
// names follow the camelCase wire format downstream consumers expect.
package model
