package fetch

import "errors"

// Fetch errors.
//
// Design decision: We use package-level sentinel errors so the dict layer
// can classify failures with errors.Is while call sites wrap them with the
// URL and status involved.
var (
	// ErrNoURL is returned when Fetch is called with an empty URL.
	ErrNoURL = errors.New("no url to fetch")

	// ErrInvalidProxyAddress is returned when the SOCKS5 proxy address is
	// not in "host:port" form.
	ErrInvalidProxyAddress = errors.New("invalid proxy address: must be host:port")

	// ErrBadStatus is returned when an endpoint answers outside the 2xx
	// range. The mirror chain treats it like a transport failure.
	ErrBadStatus = errors.New("unexpected http status")
)
