// Package msgmerge3 provides a minimal public API for running a three-way
// merge of gettext-style message catalogs programmatically.
//
// Most callers only need Merge: load three catalogs (A, B, and their
// common ancestor ORIGIN) with a catalog reader of their choosing, pass
// them in, and get back a merged catalog plus whether any entry needed a
// fuzzy conflict resolution. Conflict-marker identification runs
// internally (internal/identify). Charset normalization does not: Merge
// compares translation bytes exactly as given, and detecting or converting
// charsets is done separately with internal/charset.
package msgmerge3

import (
	"github.com/potools/msgmerge3/internal/catalog"
	"github.com/potools/msgmerge3/internal/merge3"
)

// Catalog, Domain, and Message are the data model every input and output
// of Merge is built from.
type (
	Catalog = catalog.Catalog
	Domain  = catalog.Domain
	Message = catalog.Message
)

// Result is the outcome of a three-way merge.
type Result = merge3.Result

// Merge runs a three-way merge of a against b using origin as the common
// ancestor, identifying A and B's entries in any conflict marker by
// aLabel and bLabel respectively (typically each catalog's source file
// path).
func Merge(a, b, origin *Catalog, aLabel, bLabel string) (*Result, error) {
	return merge3.Merge(a, b, origin, aLabel, bLabel)
}
