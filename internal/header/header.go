// Package header implements header-entry reconciliation: merging A's
// header with B's when both sides modified it, using PO-Revision-Date as
// the tie-breaker and unioning copyright comments. Grounded on
// gettext-tools/src/msgl-3way.c's msg3way_headers, with a per-field
// comparison idiom: one small pure helper per field, tested in isolation.
package header

import (
	"strings"

	"github.com/potools/msgmerge3/internal/catalog"
)

// Reconcile merges remote's header into target in place. It always
// returns true: the header case is handled entirely here, so the caller
// (the three-way merger) must skip its generic per-message decision logic
// for this entry once Reconcile runs.
func Reconcile(target, remote *catalog.Message) bool {
	unionCopyrightComments(target, remote)

	switch {
	case len(remote.Translation) == 0:
		// Keep target's translation unchanged.
	case len(target.Translation) == 0:
		target.Translation = append([]byte(nil), remote.Translation...)
	case remoteIsMoreRecent(string(target.Translation), string(remote.Translation)):
		target.Translation = append([]byte(nil), remote.Translation...)
	}

	return true
}

// unionCopyrightComments appends every comment line of remote that
// mentions "copyright" (case-insensitively) and is not already present in
// target's comments.
func unionCopyrightComments(target, remote *catalog.Message) {
	for _, line := range remote.Comments {
		if !strings.Contains(strings.ToLower(line), "copyright") {
			continue
		}
		if contains(target.Comments, line) {
			continue
		}
		target.Comments = append(target.Comments, line)
	}
}

func contains(lines []string, s string) bool {
	for _, l := range lines {
		if l == s {
			return true
		}
	}
	return false
}

// remoteIsMoreRecent compares the ASCII text following "PO-Revision-Date:"
// in each header byte-by-byte up to the first newline or end of string: a
// strictly greater byte at the first differing position makes that side
// "more recent". Both sides are trimmed of leading whitespace identically
// before comparing, so differing amounts of padding don't skew the
// byte-by-byte alignment.
func remoteIsMoreRecent(localHeader, remoteHeader string) bool {
	localDate, okLocal := catalog.RevisionDateField(localHeader)
	remoteDate, okRemote := catalog.RevisionDateField(remoteHeader)
	if !okLocal || !okRemote {
		return false
	}

	localDate = strings.TrimLeft(localDate, " \t")
	remoteDate = strings.TrimLeft(remoteDate, " \t")

	n := len(localDate)
	if len(remoteDate) < n {
		n = len(remoteDate)
	}
	for i := 0; i < n; i++ {
		if remoteDate[i] > localDate[i] {
			return true
		}
		if remoteDate[i] < localDate[i] {
			return false
		}
	}
	// Identical up to the shorter length: not strictly more recent.
	return false
}
