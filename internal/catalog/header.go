package catalog

import "strings"

// fieldValue extracts the text following prefix in header up to the first
// newline (or end of string), matching the extraction idiom msgl-3way.c
// uses for both "charset=" and "Project-Id-Version:".
func fieldValue(header, prefix string) (string, bool) {
	idx := strings.Index(header, prefix)
	if idx < 0 {
		return "", false
	}
	rest := header[idx+len(prefix):]
	if end := strings.IndexByte(rest, '\n'); end >= 0 {
		rest = rest[:end]
	}
	return rest, true
}

// DeclaredCharset returns the raw charset token following "charset=" in a
// header translation, up to the first whitespace or newline. ok is false
// if the header declares no charset.
func DeclaredCharset(header string) (token string, ok bool) {
	rest, found := fieldValue(header, "charset=")
	if !found {
		return "", false
	}
	end := strings.IndexAny(rest, " \t\n")
	if end >= 0 {
		rest = rest[:end]
	}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return "", false
	}
	return rest, true
}

// ProjectIDVersion returns the trimmed value of the header's
// "Project-Id-Version:" field, or "" if absent.
func ProjectIDVersion(header string) string {
	rest, found := fieldValue(header, "Project-Id-Version:")
	if !found {
		return ""
	}
	return strings.TrimLeft(rest, " ")
}

// RevisionDateField returns the raw text of the header's
// "PO-Revision-Date:" field value, including any leading whitespace, up to
// the first newline or end of header.
func RevisionDateField(header string) (string, bool) {
	return fieldValue(header, "PO-Revision-Date:")
}
