package lookup

import "errors"

// ErrNoDictionaries is returned when none of the service's dictionary
// clients serve the requested language pair.
var ErrNoDictionaries = errors.New("no selected dictionary serves this language pair")
