// Package language resolves user-supplied language identifiers and answers
// which language pairs each dictionary site serves.
//
// Users may name a language by short ISO code ("es"), full English name
// ("spanish"), or a BCP 47 tag with region ("es-MX"). Resolve canonicalizes
// all three to the short code the rest of the program uses. The per-site
// pair tables are static allow-lists: they reflect which search pages the
// sites actually publish, and they are checked before any fetch so an
// unsupported pair fails fast with a descriptive error.
//
// WordReference additionally accepts legacy URL spellings for a few codes
// (gr for Greek, cz for Czech, ch for Chinese, po for Portuguese) and some
// older pages only answer to those. URLCodes returns the alternates in the
// order the dict layer should try them.
package language
