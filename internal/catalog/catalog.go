// Package catalog defines the core data structures shared by the charset
// resolver, header reconciler, three-way merger, and alternative resolver:
// an ordered catalog of domains, each an ordered list of translation
// entries.
package catalog

import "bytes"

// Catalog is an ordered sequence of Domains read from a single input file.
type Catalog struct {
	Domains []*Domain

	// Encoding is the catalog-wide encoding declared by the reader that
	// produced this catalog, if any. It is used as a last-resort fallback
	// when a domain's header carries no charset declaration.
	Encoding string
}

// Domain is identified by a name (the default domain uses DefaultDomain)
// and holds an ordered list of messages.
type Domain struct {
	Name     string
	Messages []*Message
}

// DefaultDomain is the conventional name for a catalog's unnamed domain.
const DefaultDomain = ""

// Message is one translation entry, keyed within its domain by
// (Context, ID).
type Message struct {
	Context string
	ID      string

	// Translation holds one or more NUL-separated plural forms. Embedded
	// NULs are structural, not terminators, so it is tracked as a byte
	// slice rather than a string.
	Translation []byte

	IsFuzzy  bool
	Obsolete bool

	Comments           []string
	ExtractedComments  []string

	// used counts "good" (positive) vs "weak" (negative) consumption of
	// this entry during pass 1 of the merge. It is meaningless outside the
	// merge and is never read by callers of the public API.
	used int

	// alternative accumulates conflicting candidate translations recorded
	// during pass 1. A fully resolved catalog never has a message with a
	// non-empty alternative list.
	alternative []Alternative

	// link is the pass-1 back-reference from an A-side message to its
	// counterpart in the merged output, replacing the source's raw `tmp`
	// pointer with one the garbage collector can see through directly.
	link *Message
}

// HeaderID is the msgid of the distinguished header entry.
const HeaderID = ""

// IsHeader reports whether m is the (non-obsolete) header entry of its
// message list.
func IsHeader(m *Message) bool {
	return m != nil && m.ID == HeaderID && !m.Obsolete
}

// Header returns the non-obsolete header entry of the list, or nil if none
// exists.
func Header(messages []*Message) *Message {
	for _, m := range messages {
		if IsHeader(m) {
			return m
		}
	}
	return nil
}

// Find looks up a message by (context, id) within a domain's message list.
// It returns nil if no such message exists.
func Find(messages []*Message, context, id string) *Message {
	for _, m := range messages {
		if m.Context == context && m.ID == id {
			return m
		}
	}
	return nil
}

// FindDomain looks up a domain by name. It returns nil if no such domain
// exists.
func (c *Catalog) FindDomain(name string) *Domain {
	for _, d := range c.Domains {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// EnsureDomain returns the domain with the given name, appending a new
// empty one to c if it does not already exist.
func (c *Catalog) EnsureDomain(name string) *Domain {
	if d := c.FindDomain(name); d != nil {
		return d
	}
	d := &Domain{Name: name}
	c.Domains = append(c.Domains, d)
	return d
}

// Copy returns a deep copy of m, suitable for inserting into a catalog
// this engine does not otherwise own a reference to.
func (m *Message) Copy() *Message {
	cp := *m
	cp.Translation = append([]byte(nil), m.Translation...)
	cp.Comments = append([]string(nil), m.Comments...)
	cp.ExtractedComments = append([]string(nil), m.ExtractedComments...)
	cp.used = 0
	cp.alternative = nil
	cp.link = nil
	return &cp
}

// IsEmpty reports whether the message's first plural form is empty, i.e.
// it carries no translation at all.
func (m *Message) IsEmpty() bool {
	return len(m.Translation) == 0 || m.Translation[0] == 0
}

// IsWeak reports whether m counts as a "weak" translation for the purpose
// of the used counter: a non-header entry that is fuzzy, or any entry with
// an empty first plural form.
func (m *Message) IsWeak() bool {
	if !IsHeader(m) && m.IsFuzzy {
		return true
	}
	return m.IsEmpty()
}

// TranslationEqual reports whether two messages have byte-identical
// translation buffers, comparing the full NUL-separated plural-form
// buffer including length.
func TranslationEqual(a, b *Message) bool {
	if a == nil || b == nil {
		return a == b
	}
	return bytes.Equal(a.Translation, b.Translation)
}

// Alternative is one contender translation recorded when A and B conflict
// on the same message.
type Alternative struct {
	// ID is the decorated marker line used in the concatenated conflict
	// block, e.g. "#-#-#-#-#  foo.po (myproject)  #-#-#-#-#".
	ID string

	Translation []byte
	Comments    []string
	ExtractedComments []string

	// pos is the cursor into Translation used while walking plural forms
	// during conflict-block concatenation, replacing the source's raw
	// msgstr_end pointer.
	pos int
}

// NextForm returns the next NUL-terminated plural form starting at a.pos,
// and advances pos past it. ok is false once every form has been consumed.
func (a *Alternative) NextForm() (form []byte, ok bool) {
	if a.pos >= len(a.Translation) {
		return nil, false
	}
	end := bytes.IndexByte(a.Translation[a.pos:], 0)
	if end < 0 {
		end = len(a.Translation) - a.pos
	}
	form = a.Translation[a.pos : a.pos+end]
	a.pos += end + 1
	return form, true
}

// Used returns the message's internal pass-1 consumption counter. It is
// exported only for internal/merge3's own package (both live in this
// module), not for external callers of the merged catalog.
func (m *Message) Used() int { return m.used }

// SetUsed sets the message's internal pass-1 consumption counter.
func (m *Message) SetUsed(n int) { m.used = n }

// IncUsed increments the used counter, for a "good translation" match.
func (m *Message) IncUsed() {
	if m.used < 0 {
		m.used = 0
	}
	m.used++
}

// DecUsed decrements the used counter for a "weak translation" match. It
// only decrements while already non-positive, so a prior good match can't
// be pulled back down by a later weak one.
func (m *Message) DecUsed() {
	if m.used <= 0 {
		m.used--
	}
}

// Link returns the pass-1 back-reference to this message's counterpart in
// the merged output, or nil if unset.
func (m *Message) Link() *Message { return m.link }

// SetLink records the pass-1 back-reference.
func (m *Message) SetLink(target *Message) { m.link = target }

// Alternatives returns the message's accumulated conflict candidates.
func (m *Message) Alternatives() []Alternative { return m.alternative }

// AddAlternative appends a conflict candidate to the message.
func (m *Message) AddAlternative(a Alternative) {
	m.alternative = append(m.alternative, a)
}

// ClearAlternatives empties the message's conflict-candidate list, used
// once the alternative resolver has folded them back into Translation.
func (m *Message) ClearAlternatives() {
	m.alternative = nil
}
