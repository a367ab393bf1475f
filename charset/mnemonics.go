package charset

import (
	"sort"

	"github.com/derekparker/trie"
)

// A Hit is one match of a mnemonic lookup: the entry it resolves to and
// the character set the entry belongs to.
type Hit struct {
	Set   *Set
	Entry Entry
}

// MnemonicIndex is a reverse index over authored mnemonics. Within a single
// character set mnemonics are unambiguous, but several sets may assign the
// same mnemonic to different characters, so lookups return all hits, in
// registration order of the sets.
//
// The index supports prefix completion, e.g. for input methods which let
// users type mnemonics to produce characters.
type MnemonicIndex struct {
	keys *trie.Trie
}

// NewMnemonicIndex builds a reverse index over the given character sets.
// Without arguments the index covers every registered set. Alternative
// mnemonic forms are indexed alongside the primary forms.
func NewMnemonicIndex(sets ...*Set) *MnemonicIndex {
	if len(sets) == 0 {
		sets = All()
	}
	ix := &MnemonicIndex{keys: trie.New()}
	for _, cs := range sets {
		for _, e := range cs.Entries() {
			if e.Mnemonic == "" {
				continue
			}
			ix.add(e.Mnemonic, cs, e)
			if e.Alt != "" && e.Alt != e.Mnemonic {
				ix.add(e.Alt, cs, e)
			}
		}
	}
	return ix
}

func (ix *MnemonicIndex) add(key string, cs *Set, e Entry) {
	hit := Hit{Set: cs, Entry: e}
	if node, ok := ix.keys.Find(key); ok {
		hits := node.Meta().([]Hit)
		ix.keys.Add(key, append(hits, hit))
		return
	}
	ix.keys.Add(key, []Hit{hit})
}

// Decode returns the entries a mnemonic resolves to, or nil if the
// mnemonic is not in use.
func (ix *MnemonicIndex) Decode(mnemonic string) []Hit {
	node, ok := ix.keys.Find(mnemonic)
	if !ok {
		return nil
	}
	return node.Meta().([]Hit)
}

// Complete returns every indexed mnemonic starting with prefix, in
// lexicographic order.
func (ix *MnemonicIndex) Complete(prefix string) []string {
	keys := ix.keys.PrefixSearch(prefix)
	sort.Strings(keys)
	return keys
}
