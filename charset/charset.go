package charset

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/tofu/core"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
)

// ErrInvalidCharset flags a character set identifier for which no
// substitution repertoire exists.
var ErrInvalidCharset = errors.New("no substitution repertoire for charset")

// Entry is one authored substitution for a single character. Exactly one of
// Display and Mnemonic is set: a non-zero Display replaces the character
// with a single near-identical shape, while Mnemonic is a short ASCII
// string which the display layer will wrap in a format template. Alt
// optionally carries an older transliteration variant of Mnemonic.
type Entry struct {
	Char     rune
	Display  rune
	Mnemonic string
	Alt      string
}

// IsChar tells if e replaces its character with a bare look-alike character
// instead of a formatted mnemonic.
func (e Entry) IsChar() bool {
	return e.Display != 0
}

// Entry constructors, used by the repertoire tables.
func chr(char rune, display rune) Entry { return Entry{Char: char, Display: display} }
func mnm(char rune, mnemonic string) Entry {
	return Entry{Char: char, Mnemonic: mnemonic}
}
func alt(char rune, mnemonic string, altern string) Entry {
	return Entry{Char: char, Mnemonic: mnemonic, Alt: altern}
}

// Set describes one supported character set: its authored substitutions,
// its native byte table, and whether installation starts out from an
// identity pass over the native byte range.
type Set struct {
	name           string
	entries        []Entry
	identity       bool
	native         *charmap.Charmap
	representative rune
	langs          []language.Tag
}

// Name returns the canonical identifier of the set, e.g. "latin-2".
func (cs *Set) Name() string {
	return cs.name
}

// Entries returns the authored substitutions of the set. Clients must
// treat the returned slice as immutable.
func (cs *Set) Entries() []Entry {
	return cs.entries
}

// HasIdentityRange tells if installing the set starts out from an identity
// mapping of the native byte range onto Latin-1 shapes.
func (cs *Set) HasIdentityRange() bool {
	return cs.identity
}

// Native returns the byte table of the set's native 8-bit encoding, if any.
func (cs *Set) Native() *charmap.Charmap {
	return cs.native
}

// Representative returns a character distinctive for the set. A surface
// able to display the representative is assumed to display the whole set.
func (cs *Set) Representative() rune {
	return cs.representative
}

// EachIdentity calls f for every identity pair of the set: a character of
// the native byte range, paired with the Latin-1 character occupying the
// same byte position. Characters below U+0100 never form pairs, they are
// displayable everywhere. Sets without an identity range have no pairs.
func (cs *Set) EachIdentity(f func(char rune, latin1 rune)) {
	if !cs.identity || cs.native == nil {
		return
	}
	for b := 0xa0; b <= 0xff; b++ {
		char := cs.native.DecodeByte(byte(b))
		if char < 0x100 || char == utf8.RuneError {
			continue
		}
		f(char, rune(b))
	}
}

// Repertoire returns the characters the installer may write substitutions
// for when installing this set, in ascending code point order.
func (cs *Set) Repertoire() []rune {
	seen := make(map[rune]bool)
	for _, e := range cs.entries {
		seen[e.Char] = true
	}
	cs.EachIdentity(func(char, _ rune) {
		seen[char] = true
	})
	rep := make([]rune, 0, len(seen))
	for char := range seen {
		rep = append(rep, char)
	}
	sort.Slice(rep, func(i, j int) bool { return rep[i] < rep[j] })
	return rep
}

// --- Registry --------------------------------------------------------------

var registry = struct {
	sets  []*Set
	index map[string]*Set
}{
	index: make(map[string]*Set),
}

// register is called by the repertoire tables during package initialization.
func register(cs *Set, aliases ...string) {
	registry.sets = append(registry.sets, cs)
	registry.index[cs.name] = cs
	for _, a := range aliases {
		registry.index[normalize(a)] = cs
	}
}

func normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(n, "_", "-")
}

// Lookup finds the repertoire for a character set identifier. Identifiers
// are matched case-insensitively and a couple of aliases are understood,
// e.g. "iso-8859-2" for "latin-2". For unknown identifiers an error
// wrapping ErrInvalidCharset is returned.
func Lookup(name string) (*Set, error) {
	if cs, ok := registry.index[normalize(name)]; ok {
		return cs, nil
	}
	tracer().Errorf("no substitution repertoire for charset %q", name)
	return nil, core.WrapError(ErrInvalidCharset, core.EINVALID,
		"charset %q is not supported", name)
}

// All returns the descriptors of every supported character set, in
// registration order.
func All() []*Set {
	sets := make([]*Set, len(registry.sets))
	copy(sets, registry.sets)
	return sets
}

// Names returns the canonical identifiers of every supported character set.
func Names() []string {
	names := make([]string, len(registry.sets))
	for i, cs := range registry.sets {
		names[i] = cs.name
	}
	return names
}

// --- Ownership and language mapping ----------------------------------------

var ownerIndex struct {
	sync.Once
	owners map[rune]*Set
}

// Owner returns the character set which has char in its repertoire. If
// several sets share the character, the first registered one wins.
func Owner(char rune) (*Set, bool) {
	ownerIndex.Do(func() {
		ownerIndex.owners = make(map[rune]*Set)
		for _, cs := range registry.sets {
			for _, r := range cs.Repertoire() {
				if _, ok := ownerIndex.owners[r]; !ok {
					ownerIndex.owners[r] = cs
				}
			}
		}
	})
	cs, ok := ownerIndex.owners[char]
	return cs, ok
}

var langIndex struct {
	sync.Once
	matcher language.Matcher
	sets    []*Set
}

// ForLanguage returns the character set covering the script of a language,
// as far as one of the supported sets does. The match is approximate in
// the sense of language.Matcher: a confidence of language.No counts as
// a miss.
func ForLanguage(tag language.Tag) (*Set, bool) {
	langIndex.Do(func() {
		var tags []language.Tag
		for _, cs := range registry.sets {
			for _, t := range cs.langs {
				tags = append(tags, t)
				langIndex.sets = append(langIndex.sets, cs)
			}
		}
		langIndex.matcher = language.NewMatcher(tags)
	})
	if langIndex.matcher == nil {
		return nil, false
	}
	_, index, conf := langIndex.matcher.Match(tag)
	if conf == language.No || index < 0 || index >= len(langIndex.sets) {
		return nil, false
	}
	return langIndex.sets[index], true
}
