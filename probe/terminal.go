package probe

import (
	"github.com/npillmayer/tofu/charset"
	"golang.org/x/text/encoding/charmap"
)

// Terminal probes a non-graphical surface. A character counts as
// displayable if it has been declared safe, if its owning character set
// has been declared safe, or if the terminal's output encoding can encode
// it.
type Terminal struct {
	encoding  *charmap.Charmap
	safeChars map[rune]bool
	safeSets  map[string]bool
}

// NewTerminal creates a probe for a terminal writing the given encoding.
// A nil encoding describes a terminal which renders Latin-1 only.
func NewTerminal(encoding *charmap.Charmap) *Terminal {
	return &Terminal{
		encoding:  encoding,
		safeChars: make(map[rune]bool),
		safeSets:  make(map[string]bool),
	}
}

// TerminalForCharset creates a probe for a terminal writing the native
// byte encoding of the named character set. Unknown identifiers, and sets
// without a native byte table, produce a Latin-1-only probe.
func TerminalForCharset(name string) *Terminal {
	cs, err := charset.Lookup(name)
	if err != nil {
		tracer().Errorf("no native encoding for %q: %v", name, err)
		return NewTerminal(nil)
	}
	return NewTerminal(cs.Native())
}

// DeclareSafe marks characters as displayable, regardless of the
// terminal's encoding. Hosts use this for characters they know the
// terminal's font to render.
func (t *Terminal) DeclareSafe(chars ...rune) *Terminal {
	for _, c := range chars {
		t.safeChars[c] = true
	}
	return t
}

// DeclareSafeCharset marks whole character sets as displayable. Unknown
// identifiers are traced and ignored, a probe never fails.
func (t *Terminal) DeclareSafeCharset(names ...string) *Terminal {
	for _, name := range names {
		cs, err := charset.Lookup(name)
		if err != nil {
			tracer().Errorf("cannot declare %q safe: %v", name, err)
			continue
		}
		t.safeSets[cs.Name()] = true
	}
	return t
}

func (t *Terminal) CanDisplay(code rune) bool {
	if code < 0x100 {
		return true
	}
	if t == nil {
		return false
	}
	if t.safeChars[code] {
		return true
	}
	if len(t.safeSets) > 0 {
		if owner, ok := charset.Owner(code); ok && t.safeSets[owner.Name()] {
			return true
		}
	}
	if t.encoding != nil {
		if _, ok := t.encoding.EncodeRune(code); ok {
			return true
		}
	}
	return false
}
