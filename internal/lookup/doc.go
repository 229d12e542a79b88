// Package lookup orchestrates dictionary lookups.
//
// Service resolves the user-supplied language identifiers, checks the
// pair against the per-site tables, then fans out over the registered
// dictionary clients concurrently. Source failures stay isolated: a
// dictionary that errors contributes a result whose Error field holds
// the failure, and the word's report always comes back once the inputs
// validate.
//
// BatchProcessor runs many words through a Service with bounded
// concurrency, either collecting the reports in input order or
// streaming them through a callback as they complete.
package lookup
