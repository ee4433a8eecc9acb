package charset

import (
	"bytes"
	"strings"

	"github.com/potools/msgmerge3/internal/catalog"
	"github.com/potools/msgmerge3/internal/debug"
	"github.com/potools/msgmerge3/internal/diagnostics"
)

// DetectDomainCharset determines the canonical charset of a single
// domain by scanning its header entry. domainIndex is the domain's
// position within its catalog (0 = default/first domain), used to choose
// between the two "missing charset" error kinds.
func DetectDomainCharset(d *catalog.Domain, filename string, domainIndex int, catalogFallback string) (string, error) {
	var declared string
	haveDeclared := false

	for _, m := range d.Messages {
		if !catalog.IsHeader(m) {
			continue
		}
		header := string(m.Translation)
		token, ok := catalog.DeclaredCharset(header)
		if !ok {
			continue
		}

		canon, okCanon := Canonicalize(token)
		if !okCanon {
			if strings.HasSuffix(filename, ".pot") && token == "CHARSET" {
				canon = ASCII
			} else {
				return "", diagnostics.Fatalf(diagnostics.NonPortableCharset,
					"present charset %q is not a portable encoding name", token)
			}
		}

		if !haveDeclared {
			declared = canon
			haveDeclared = true
		} else if declared != canon {
			return "", diagnostics.Fatalf(diagnostics.ConflictingCharsets,
				"two different charsets %q and %q in input file %s", declared, canon, filename)
		}
	}

	if haveDeclared {
		return declared, nil
	}

	if IsAllASCII(d) {
		return ASCII, nil
	}
	if catalogFallback != "" {
		return catalogFallback, nil
	}

	if domainIndex == 0 {
		return "", diagnostics.Fatalf(diagnostics.MissingCharset,
			"input file `%s' doesn't contain a header entry with a charset specification", filename)
	}
	return "", diagnostics.Fatalf(diagnostics.MissingCharsetInDomain,
		"domain %q in input file `%s' doesn't contain a header entry with a charset specification",
		d.Name, filename)
}

// DetectCatalogCharsets runs DetectDomainCharset over every domain of cat,
// returning one canonical charset per domain in the same order.
func DetectCatalogCharsets(cat *catalog.Catalog, filename string) ([]string, error) {
	out := make([]string, len(cat.Domains))
	for k, d := range cat.Domains {
		canon, err := DetectDomainCharset(d, filename, k, cat.Encoding)
		if err != nil {
			return nil, err
		}
		out[k] = canon
	}
	return out, nil
}

// SelectTarget picks the output encoding for a merge. aCharsets holds
// A's per-domain canonical charsets (from
// DetectCatalogCharsets). userTarget, if non-empty, overrides detection
// entirely. The returned target is "" when no conversion is needed.
func SelectTarget(aCharsets []string, userTarget string, sink diagnostics.Sink) (string, error) {
	if userTarget != "" {
		canon, ok := Canonicalize(userTarget)
		if !ok {
			return "", diagnostics.Fatalf(diagnostics.NonPortableCharset,
				"target charset %q is not a portable encoding name.", userTarget)
		}
		debug.Logf("charset: user-selected target %s\n", canon)
		return canon, nil
	}

	var first, second string
	withASCII := false
	withUTF8 := false
	allASCIICompatible := true

	for _, canon := range aCharsets {
		if canon == "" {
			continue
		}
		if canon == ASCII {
			withASCII = true
			continue
		}
		if first == "" {
			first = canon
		} else if canon != first && second == "" {
			second = canon
		}
		if canon == UTF8 {
			withUTF8 = true
		}
		if !IsASCIICompatible(canon) {
			allASCIICompatible = false
		}
	}

	if withASCII && !allASCIICompatible && second == "" {
		second = ASCII
	}

	if second != "" {
		if withUTF8 {
			sink.Warn(diagnostics.Warning{
				Prefix: "warning: ",
				Body: "Input files contain messages in different encodings, UTF-8 among others.\n" +
					"Converting the output to UTF-8.\n",
			})
		} else {
			sink.Warn(diagnostics.Warning{
				Prefix: "warning: ",
				Body: "Input files contain messages in different encodings, " + first + " and " + second +
					" among others.\nConverting the output to UTF-8.\nTo select a different output encoding, use the target-code option.\n",
			})
		}
		debug.Logf("charset: multiple encodings detected, selecting %s\n", UTF8)
		return UTF8, nil
	}

	if first != "" && withASCII && allASCIICompatible {
		// No-op conversion, performed anyway to validate the input.
		debug.Logf("charset: selecting %s for validation-only conversion\n", first)
		return first, nil
	}

	return "", nil
}

// ReencodeDomain converts every identifier, comment, and translation in d
// from "from" to "to" in place. changed reports whether any msgid or
// msgctxt's byte representation was altered by the conversion, the fatal
// condition callers report as encoding-changes-identifiers.
func ReencodeDomain(d *catalog.Domain, from, to string) (changed bool, err error) {
	if from == to {
		return false, nil
	}
	for _, m := range d.Messages {
		newID, err := reencodeBytes([]byte(m.ID), from, to)
		if err != nil {
			return false, err
		}
		newCtx, err := reencodeBytes([]byte(m.Context), from, to)
		if err != nil {
			return false, err
		}
		if !bytes.Equal(newID, []byte(m.ID)) || !bytes.Equal(newCtx, []byte(m.Context)) {
			changed = true
		}

		newTranslation, err := reencodeBytes(m.Translation, from, to)
		if err != nil {
			return false, err
		}
		m.ID = string(newID)
		m.Context = string(newCtx)
		m.Translation = newTranslation

		for i, c := range m.Comments {
			nc, err := reencodeBytes([]byte(c), from, to)
			if err != nil {
				return false, err
			}
			m.Comments[i] = string(nc)
		}
		for i, c := range m.ExtractedComments {
			nc, err := reencodeBytes([]byte(c), from, to)
			if err != nil {
				return false, err
			}
			m.ExtractedComments[i] = string(nc)
		}
	}
	return changed, nil
}

// ReencodeCatalog converts every domain of cat whose detected charset
// differs from target, returning a fatal *diagnostics.Error (wrapping
// EncodingChangesIdentifiers) if any domain's conversion alters an
// identifier.
func ReencodeCatalog(cat *catalog.Catalog, charsets []string, target, filename string, userGivenTarget bool) error {
	if target == "" {
		return nil
	}
	for k, d := range cat.Domains {
		from := charsets[k]
		if from == "" {
			continue
		}
		// If the user didn't request a target explicitly, skip the no-op
		// conversion that would only normalize the header's charset name;
		// the validation-only conversion only matters when charsets
		// actually differ.
		if !userGivenTarget && from == target {
			continue
		}
		changed, err := ReencodeDomain(d, from, target)
		if err != nil {
			return err
		}
		if changed {
			return diagnostics.Fatalf(diagnostics.EncodingChangesIdentifiers,
				"conversion of file %s from %s encoding to %s encoding changes some msgids or msgctxts",
				filename, from, target)
		}
	}
	return nil
}
