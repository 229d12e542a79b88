// Package fetch retrieves dictionary pages over HTTP.
//
// The Client is the only component that touches the network. It owns a
// rate limiter so lookups stay polite toward the dictionary sites, an
// optional SOCKS5 proxy, and an ordered list of relay mirrors to fall back
// to when a site refuses direct requests.
//
// Design decision: All settings are captured once at construction through
// functional options and never mutated afterwards because:
//  1. Lookups run concurrently and shared mutable fetch state would make
//     them interfere
//  2. A caller that needs different settings builds another client instead
//     of reconfiguring a shared one
//  3. It keeps the retry chain reproducible: the mirror order a client was
//     built with is the order it tries
//
// Extractors never see this package; they receive the fetched HTML as a
// plain string, so transport failures stay confined to the dict layer.
package fetch
