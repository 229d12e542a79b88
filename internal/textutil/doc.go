// Package textutil normalizes text fragments pulled out of dictionary pages.
//
// Every string both extractors emit passes through CleanText, so output is
// comparable across languages and free of the stray markup whitespace and
// symbol characters HTML extraction produces. ClassifyGrammaticalType maps
// the sites' long grammatical-role names ("noun", "intransitive verb") to
// the short codes used in results.
//
// Design decision: Normalization lives in its own package rather than inside
// the extractors because:
// 1. Both extractors and their tests need the exact same rules
// 2. The allow-list and the role table are behavioral contracts worth
//    testing in isolation
// 3. It keeps the extractors focused on document structure, not rune-level
//    cleanup
package textutil
