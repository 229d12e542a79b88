// Package extract turns raw dictionary-site HTML into the normalized
// result graph in the model package.
//
// # Architecture
//
// Each site has one entry point: WordReference and Linguee. Both take HTML
// that a collaborator already fetched, parse it into a DOM, and walk the
// site's marker classes. Neither performs network I/O, keeps state between
// calls, or mutates its result after returning, so concurrent calls are
// safe without locking.
//
// Design decision: We parse with goquery rather than walking x/net/html
// nodes by hand because:
//  1. Both sites mark meaning with CSS classes, and class selectors express
//     that directly
//  2. goquery tolerates the malformed HTML real dictionary pages ship
//  3. Clone-and-remove makes "cell text minus its annotation tags" trivial
//
// # Components
//
//   - WordReference: sectioned tables walked row by row through a small
//     two-slot state machine (rowState)
//   - Linguee: lemma blocks in a primary pass, with a looser fallback pass
//     that only runs when the primary pass retained nothing
//   - Audio producers: independent raw-text scans merged by deduplication,
//     so a markup change in one leaves the other working
//
// # Error Policy
//
// Data-shape problems never fail a call: unexpected markup degrades to
// smaller or empty results, and a malformed embedded audio map is ignored.
// Only contract misuse (empty HTML, empty word, missing language codes)
// returns an error.
package extract
