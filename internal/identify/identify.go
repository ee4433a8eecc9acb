// Package identify builds the short human-readable labels used inside
// conflict markers. It is grounded on gettext-tools/src/msgl-3way.c lines
// 228-284 (the "identifications" loop). Only A and B are ever identified;
// ORIGIN never appears in a conflict marker.
package identify

import (
	"fmt"
	"path/filepath"

	"github.com/potools/msgmerge3/internal/catalog"
)

// Label returns the identification string for one (catalog, domain)
// combination: "{basename}" / "{basename} ({project-id})" for the first
// domain, and "{basename}:{domain}" / "{basename}:{domain} ({project-id})"
// for any later domain.
func Label(filename string, domainIndex int, domainName string, messages []*catalog.Message) string {
	base := filepath.Base(filename)

	var projectID string
	if h := catalog.Header(messages); h != nil {
		projectID = catalog.ProjectIDVersion(string(h.Translation))
	}

	switch {
	case projectID != "" && domainIndex == 0:
		return fmt.Sprintf("%s (%s)", base, projectID)
	case projectID != "" && domainIndex > 0:
		return fmt.Sprintf("%s:%s (%s)", base, domainName, projectID)
	case domainIndex == 0:
		return base
	default:
		return fmt.Sprintf("%s:%s", base, domainName)
	}
}

// Marker formats an identification label as the decorated marker line
// used to delimit a contender translation within a conflict block.
func Marker(label string) string {
	return fmt.Sprintf("#-#-#-#-#  %s  #-#-#-#-#", label)
}

// Catalog returns one Label per domain of cat, for use as a per-domain
// identification table.
func Catalog(filename string, cat *catalog.Catalog) []string {
	labels := make([]string, len(cat.Domains))
	for k, d := range cat.Domains {
		labels[k] = Label(filename, k, d.Name, d.Messages)
	}
	return labels
}
