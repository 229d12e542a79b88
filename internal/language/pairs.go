package language

import "fmt"

// wordReferenceCodes lists the languages WordReference pairs with English.
var wordReferenceCodes = []string{
	"en", "es", "fr", "it", "de", "pt", "nl", "sv", "pl", "cs", "ro",
	"el", "tr", "ru", "ar", "zh", "ja", "ko",
}

// wordReferenceSpanishPairs lists the non-English languages WordReference
// pairs directly with Spanish. Every other WordReference pair involves
// English on one side.
var wordReferenceSpanishPairs = []string{"fr", "it", "pt", "de"}

// lingueeCodes lists the languages Linguee pairs with English. Linguee
// publishes no dictionary that lacks English on one side.
var lingueeCodes = []string{
	"es", "fr", "de", "pt", "it", "nl", "sv", "da", "fi", "pl", "cs",
	"sk", "ro", "hu", "bg", "sl", "lt", "lv", "et", "mt", "el", "ru",
	"ja", "zh",
}

// WordReferenceCodes returns the language codes WordReference serves, in a
// fixed display order. The returned slice is a copy.
func WordReferenceCodes() []string {
	out := make([]string, len(wordReferenceCodes))
	copy(out, wordReferenceCodes)
	return out
}

// LingueeCodes returns the language codes Linguee serves paired with
// English, in a fixed display order. The returned slice is a copy.
func LingueeCodes() []string {
	out := make([]string, len(lingueeCodes))
	copy(out, lingueeCodes)
	return out
}

// WordReferencePairSupported reports whether WordReference publishes a
// dictionary for the given resolved code pair, in either direction.
func WordReferencePairSupported(from, to string) bool {
	if from == to {
		return false
	}
	if from == "en" {
		return contains(wordReferenceCodes, to)
	}
	if to == "en" {
		return contains(wordReferenceCodes, from)
	}
	if from == "es" {
		return contains(wordReferenceSpanishPairs, to)
	}
	if to == "es" {
		return contains(wordReferenceSpanishPairs, from)
	}
	return false
}

// LingueePairSupported reports whether Linguee publishes a dictionary for
// the given resolved code pair, in either direction.
func LingueePairSupported(from, to string) bool {
	if from == to {
		return false
	}
	if from == "en" {
		return contains(lingueeCodes, to)
	}
	if to == "en" {
		return contains(lingueeCodes, from)
	}
	return false
}

// CheckPair verifies that at least one dictionary serves the pair. It
// returns nil when either site does, and an error wrapping
// ErrUnsupportedPair naming the pair otherwise.
func CheckPair(from, to string) error {
	if WordReferencePairSupported(from, to) || LingueePairSupported(from, to) {
		return nil
	}
	return fmt.Errorf("%w: %s-%s, most pairs need english on one side (e.g. en-es, fr-en)", ErrUnsupportedPair, from, to)
}

func contains(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
