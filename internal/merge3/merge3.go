// Package merge3 implements the two-pass three-way merge of a gettext-style
// catalog and its alternative resolver. It is grounded on
// gettext-tools/src/msgl-3way.c lines 409-757 for the algorithm, following
// an entry-point/core-function split with one small named helper per
// decision.
package merge3

import (
	"bytes"
	"fmt"

	"github.com/potools/msgmerge3/internal/catalog"
	"github.com/potools/msgmerge3/internal/debug"
	"github.com/potools/msgmerge3/internal/diagnostics"
	"github.com/potools/msgmerge3/internal/header"
	"github.com/potools/msgmerge3/internal/identify"
)

// Result is the outcome of a three-way merge: the merged catalog plus
// whether the alternative resolver had to emit any conflict block. A
// caller that wants a "fuzzy batch" warning checks HasMerges instead of
// relying on process-wide state.
type Result struct {
	Catalog   *catalog.Catalog
	HasMerges bool
}

// Merge runs the three-way merge of a against b using origin as the
// common ancestor. aPath and bPath are used only to build conflict-marker
// identifications; origin is never identified in output.
func Merge(a, b, origin *catalog.Catalog, aPath, bPath string) (*Result, error) {
	labelsA := identify.Catalog(aPath, a)
	labelsB := identify.Catalog(bPath, b)

	merged := &catalog.Catalog{Encoding: a.Encoding}

	for ai, domainA := range a.Domains {
		bDomain := b.FindDomain(domainA.Name)
		originDomain := origin.FindDomain(domainA.Name)

		target := merged.EnsureDomain(domainA.Name)

		labelA := labelAt(labelsA, ai)
		labelB := domainLabel(labelsB, b, domainA.Name)

		runPass1(target, domainA, bDomain, originDomain, labelA, labelB)
	}

	for _, domainB := range b.Domains {
		target := merged.FindDomain(domainB.Name)
		if target == nil {
			target = merged.EnsureDomain(domainB.Name)
		}
		originDomain := origin.FindDomain(domainB.Name)

		if err := runPass2(target, domainB, originDomain); err != nil {
			return nil, fmt.Errorf("domain %q: %w", domainB.Name, err)
		}
	}

	hasMerges := false
	for _, d := range merged.Domains {
		for _, m := range d.Messages {
			if resolveAlternatives(m) {
				hasMerges = true
			}
		}
	}

	return &Result{Catalog: merged, HasMerges: hasMerges}, nil
}

func labelAt(labels []string, i int) string {
	if i < 0 || i >= len(labels) {
		return ""
	}
	return labels[i]
}

// domainLabel finds the identification label B would use for the named
// domain, independent of the positions pass 1 iterates A in.
func domainLabel(labelsB []string, b *catalog.Catalog, name string) string {
	for i, d := range b.Domains {
		if d.Name == name {
			return labelAt(labelsB, i)
		}
	}
	return ""
}

// runPass1 handles pass 1 for a single domain: A drives, creating or
// reusing the corresponding target entry and folding in B's counterpart
// (or its absence) by the three-way decision rules.
func runPass1(target, domainA, domainB, domainOrigin *catalog.Domain, labelA, labelB string) {
	for _, m := range domainA.Messages {
		t := catalog.Find(target.Messages, m.Context, m.ID)
		if t == nil {
			t = m.Copy()
			t.Obsolete = m.Obsolete
			target.Messages = append(target.Messages, t)
		}

		if m.IsWeak() {
			t.DecUsed()
		} else {
			t.IncUsed()
		}

		m.SetLink(t)

		var mb, mor *catalog.Message
		if domainB != nil {
			mb = catalog.Find(domainB.Messages, m.Context, m.ID)
		}
		if domainOrigin != nil {
			mor = catalog.Find(domainOrigin.Messages, m.Context, m.ID)
		}

		if mb != nil {
			mb.IncUsed()
			if len(mb.Translation) == 0 {
				mb = nil
			}
		}
		if mor != nil && len(mor.Translation) == 0 {
			mor = nil
		}

		if catalog.IsHeader(m) && mb != nil {
			header.Reconcile(t, mb)
			continue
		}

		applyThreeWayDecision(t, m, mb, mor, labelA, labelB)
	}
}

// applyThreeWayDecision handles the non-header branch of the merge
// decision: B-present, B-absent-but-origin-present, and both-absent.
func applyThreeWayDecision(t, a, b, origin *catalog.Message, labelA, labelB string) {
	switch {
	case b != nil:
		bChanged := origin == nil || !bytes.Equal(b.Translation, origin.Translation)
		if !bChanged {
			return
		}

		aUnchangedFromOrigin := origin != nil && bytes.Equal(a.Translation, origin.Translation)
		if len(t.Translation) == 0 || (t.IsFuzzy && !b.IsFuzzy) || aUnchangedFromOrigin {
			t.Translation = append([]byte(nil), b.Translation...)
			t.IsFuzzy = b.IsFuzzy
			return
		}

		debug.Logf("merge3: conflict on %q/%q (%s vs %s)\n", a.Context, a.ID, labelA, labelB)
		recordConflict(t, b, labelA, labelB)

	case origin != nil:
		// B deleted this entry relative to ORIGIN.
		if bytes.Equal(a.Translation, origin.Translation) {
			debug.Logf("merge3: propagating B's deletion of %q/%q\n", a.Context, a.ID)
			t.Translation = nil
			t.SetUsed(0)
		}
		// Otherwise A's divergence wins silently: keep T as-is.

	default:
		// Both absent: keep T as already populated from A.
	}
}

// recordConflict appends the two contending translations as Alternatives
// on t and zeroes t's own translation/comments.
func recordConflict(t, b *catalog.Message, labelA, labelB string) {
	t.AddAlternative(catalog.Alternative{
		ID:                identify.Marker(labelA),
		Translation:       t.Translation,
		Comments:          t.Comments,
		ExtractedComments: t.ExtractedComments,
	})
	t.AddAlternative(catalog.Alternative{
		ID:                identify.Marker(labelB),
		Translation:       append([]byte(nil), b.Translation...),
		Comments:          append([]string(nil), b.Comments...),
		ExtractedComments: append([]string(nil), b.ExtractedComments...),
	})

	t.Translation = nil
	t.Comments = nil
	t.ExtractedComments = nil
}

// runPass2 handles pass 2: messages B added or changed that A's pass
// never touched.
func runPass2(target, domainB, domainOrigin *catalog.Domain) error {
	if domainB == nil {
		return nil
	}

	for _, mb := range domainB.Messages {
		if mb.Used() > 0 || len(mb.Translation) == 0 {
			continue
		}

		if catalog.Find(target.Messages, mb.Context, mb.ID) != nil {
			return diagnostics.Fatalf(diagnostics.AlgorithmInvariantViolated,
				"message %q/%q already present in merged output during pass 2", mb.Context, mb.ID)
		}

		var mor *catalog.Message
		if domainOrigin != nil {
			mor = catalog.Find(domainOrigin.Messages, mb.Context, mb.ID)
		}

		if mor == nil || !bytes.Equal(mb.Translation, mor.Translation) {
			target.Messages = append(target.Messages, mb.Copy())
		}
	}

	return nil
}
