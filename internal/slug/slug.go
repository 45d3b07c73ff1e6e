// Package slug is the single normalization routine for category names.
// Category creation stores Make(name) as the lookup key, and transaction
// writes resolve their category reference through the same function, so
// the two sides can never disagree on how a name maps to a slug.
package slug

import gslug "github.com/gosimple/slug"

// Make converts a human-readable name into its URL-safe, case-folded slug.
// Deterministic: equal input always yields an equal slug.
func Make(name string) string {
	return gslug.Make(name)
}
