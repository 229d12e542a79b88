package dict

import "errors"

var (
	// ErrNoWord is returned when Lookup is called with an empty word.
	ErrNoWord = errors.New("no word to look up")

	// ErrUnknownDictionary is returned when a dictionary name does not
	// match any registered client.
	ErrUnknownDictionary = errors.New("unknown dictionary")
)
