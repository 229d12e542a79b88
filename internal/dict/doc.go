// Package dict provides clients for the supported dictionary websites.
//
// Each client implements the Dictionary interface: it knows which
// language pairs its site serves, how to build the site's page URL for
// a word (including legacy URL shapes and alternate language-code
// spellings), and how to turn the fetched page into a
// model.DictionaryResult through the extract package.
//
// Clients never talk to the network themselves. They depend on the
// small Fetcher interface so transport concerns (rate limiting, mirror
// fallback, proxying) stay in the fetch package and tests can
// substitute canned pages.
package dict
