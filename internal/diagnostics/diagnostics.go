// Package diagnostics implements the engine's error kinds and warning
// shape: every listed error kind is fatal at the engine layer (no local
// recovery), while charset negotiation may additionally emit non-fatal,
// multi-line warnings.
package diagnostics

import "fmt"

// Kind identifies one of the fatal error conditions the engine can raise.
type Kind string

// Error kinds the engine can raise.
const (
	MissingCharset             Kind = "missing-charset"
	MissingCharsetInDomain     Kind = "missing-charset-in-domain"
	ConflictingCharsets        Kind = "conflicting-charsets"
	NonPortableCharset         Kind = "non-portable-charset"
	EncodingChangesIdentifiers Kind = "encoding-changes-identifiers"
	AlgorithmInvariantViolated Kind = "algorithm-invariant-violated"
)

// Error is a fatal condition raised by the engine. Callers can recover the
// machine-readable kind with errors.As rather than parsing Error().
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Fatalf builds a fatal *Error of the given kind.
func Fatalf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Warning is a non-fatal diagnostic emitted only by the charset resolver
// when it silently converts because multiple encodings were detected. It
// mirrors gettext's multiline_warning(prefix, body) shape: a short prefix
// and a longer explanatory body.
type Warning struct {
	Prefix string
	Body   string
}

func (w Warning) String() string {
	return w.Prefix + w.Body
}

// Sink receives warnings as the engine produces them, so that a caller
// (e.g. the CLI) can route them to stderr, a rotating log file, or both,
// independent of the engine's own control flow. Fatal errors are not sent
// to a Sink; they are returned as *Error. Apart from internal/debug output,
// the engine does not write warnings to stdout/stderr or a log file itself.
type Sink interface {
	Warn(w Warning)
}

// NopSink discards every warning, so the engine behaves identically
// whether or not anything listens for diagnostics.
type NopSink struct{}

// Warn implements Sink.
func (NopSink) Warn(Warning) {}

// FuncSink adapts a plain function to the Sink interface.
type FuncSink func(Warning)

// Warn implements Sink.
func (f FuncSink) Warn(w Warning) { f(w) }
