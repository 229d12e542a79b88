package dict

import (
	"context"
	"fmt"
	"strings"

	"github.com/opendict/wordscan/internal/model"
)

// Fetcher retrieves the raw body of a URL.
//
// *fetch.Client satisfies this interface. Tests provide canned
// implementations so no network access is needed.
type Fetcher interface {
	// Fetch returns the response body for the given URL.
	Fetch(ctx context.Context, url string) (string, error)
}

// Dictionary is the interface implemented by every dictionary site client.
//
// Design decision: We use an interface rather than concrete types because:
//  1. The lookup service fans out over all clients uniformly
//  2. Each site has its own URL shapes and page structure
//  3. Allows for easy mocking in tests
type Dictionary interface {
	// Name returns the source this client queries.
	Name() model.Source

	// Supports reports whether the site serves the language pair.
	// Codes must already be resolved to their canonical short form.
	Supports(from, to string) bool

	// Lookup fetches and extracts the site's entry for word.
	// Extraction anomalies degrade to a smaller result, possibly with
	// the Error field annotated; an error return means the word never
	// reached extraction (transport failure or contract misuse).
	Lookup(ctx context.Context, word, from, to string) (*model.DictionaryResult, error)
}

// All returns every dictionary client wired to the given fetcher.
// The order is fixed so reports list sources deterministically.
func All(fetcher Fetcher) []Dictionary {
	return []Dictionary{
		NewWordReference(fetcher),
		NewLinguee(fetcher),
	}
}

// ByName returns the clients named in names, wired to the given
// fetcher. An empty names list selects every client. Matching is
// case-insensitive and duplicate names collapse to one client.
func ByName(fetcher Fetcher, names []string) ([]Dictionary, error) {
	if len(names) == 0 {
		return All(fetcher), nil
	}

	available := All(fetcher)
	selected := make([]Dictionary, 0, len(names))
	seen := make(map[model.Source]bool, len(names))

	for _, name := range names {
		normalized := strings.ToLower(strings.TrimSpace(name))

		var match Dictionary
		for _, d := range available {
			if string(d.Name()) == normalized {
				match = d
				break
			}
		}
		if match == nil {
			return nil, fmt.Errorf("%w: %q (valid names: %s)", ErrUnknownDictionary, name, validNames(available))
		}
		if seen[match.Name()] {
			continue
		}
		seen[match.Name()] = true
		selected = append(selected, match)
	}

	return selected, nil
}

// validNames renders the registered client names for error messages.
func validNames(dictionaries []Dictionary) string {
	names := make([]string, 0, len(dictionaries))
	for _, d := range dictionaries {
		names = append(names, string(d.Name()))
	}
	return strings.Join(names, ", ")
}
