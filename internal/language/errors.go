package language

import "errors"

// Language resolution errors.
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances at each call site. This allows callers to use
// errors.Is() for programmatic handling while Resolve and the pair checks
// wrap these with the offending input for human-readable messages.
var (
	// ErrUnsupportedLanguage is returned when an input cannot be resolved
	// to any language the dictionaries serve.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrUnsupportedPair is returned when both languages resolve but no
	// dictionary publishes a search page for the combination.
	ErrUnsupportedPair = errors.New("unsupported language pair")
)
