package merge3

import (
	"bytes"

	"github.com/potools/msgmerge3/internal/catalog"
)

// resolveAlternatives reduces m's recorded alternatives to a single
// translation (and comments/extracted-comments), reporting whether it had
// to emit a conflict block rather than a clean reduction.
func resolveAlternatives(m *catalog.Message) bool {
	alts := m.Alternatives()
	if len(alts) == 0 {
		return false
	}

	hasMerges := false

	if translation, ok := reduceTranslations(alts); ok {
		m.Translation = translation
	} else {
		m.Translation = concatenateTranslations(alts)
		m.IsFuzzy = true
		hasMerges = true
	}

	if comments, ok := reduceLines(alts, func(a catalog.Alternative) []string { return a.Comments }); ok {
		m.Comments = comments
	} else {
		m.Comments = concatenateLines(alts, func(a catalog.Alternative) []string { return a.Comments })
		hasMerges = true
	}

	if extracted, ok := reduceLines(alts, func(a catalog.Alternative) []string { return a.ExtractedComments }); ok {
		m.ExtractedComments = extracted
	} else {
		m.ExtractedComments = concatenateLines(alts, func(a catalog.Alternative) []string { return a.ExtractedComments })
		hasMerges = true
	}

	m.ClearAlternatives()
	return hasMerges
}

// reduceTranslations returns the common translation with ok=true if every
// alternative's translation is byte-equal.
func reduceTranslations(alts []catalog.Alternative) ([]byte, bool) {
	first := alts[0].Translation
	for _, a := range alts[1:] {
		if !bytes.Equal(a.Translation, first) {
			return nil, false
		}
	}
	return append([]byte(nil), first...), true
}

// concatenateTranslations builds a conflict block by interleaving, per
// plural index, one marked block per alternative that still has a form at
// that index.
func concatenateTranslations(alts []catalog.Alternative) []byte {
	cursors := make([]catalog.Alternative, len(alts))
	copy(cursors, alts)

	var out []byte
	for {
		forms := make([][]byte, len(cursors))
		present := make([]bool, len(cursors))
		anyForm := false
		for i := range cursors {
			form, ok := cursors[i].NextForm()
			if ok {
				forms[i] = form
				present[i] = true
				anyForm = true
			}
		}
		if !anyForm {
			break
		}

		for i, form := range forms {
			if !present[i] {
				continue
			}
			out = appendMarkerBlock(out, alts[i].ID, form)
		}
		out = append(out, 0)
	}
	return out
}

// appendMarkerBlock appends one marker line followed by form to out,
// inserting a separating newline first when the previous byte is neither
// NUL nor newline.
func appendMarkerBlock(out []byte, marker string, form []byte) []byte {
	if len(out) > 0 {
		last := out[len(out)-1]
		if last != 0 && last != '\n' {
			out = append(out, '\n')
		}
	}
	out = append(out, marker...)
	out = append(out, '\n')
	out = append(out, form...)
	return out
}

// reduceLines adopts the first alternative's lines if every alternative's
// lines equal it element-wise.
func reduceLines(alts []catalog.Alternative, get func(catalog.Alternative) []string) ([]string, bool) {
	first := get(alts[0])
	for _, a := range alts[1:] {
		if !linesEqual(get(a), first) {
			return nil, false
		}
	}
	return append([]string(nil), first...), true
}

func linesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// concatenateLines handles the non-uniform case: for each alternative with
// non-empty lines, append its id as a separator followed by its lines.
func concatenateLines(alts []catalog.Alternative, get func(catalog.Alternative) []string) []string {
	var out []string
	for _, a := range alts {
		lines := get(a)
		if len(lines) == 0 {
			continue
		}
		out = append(out, a.ID)
		out = append(out, lines...)
	}
	return out
}
