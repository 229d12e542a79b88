// Package main provides the entry point for the wordscan CLI.
//
// Wordscan looks words up on public dictionary websites (WordReference,
// Linguee) and extracts their translations into a normalized report.
//
// Usage:
//
//	wordscan lookup --from en --to es <word>
//	wordscan lookup --from en --to es --json <word>...
//
// See --help for all available options.
package main

// main is the entry point for wordscan.
func main() {
	Execute()
}
