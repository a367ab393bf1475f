package display

import (
	"unicode/utf8"

	"github.com/npillmayer/tofu/charset"
	"golang.org/x/text/encoding/charmap"
)

// extendedPunctuation covers typographic punctuation which occurs
// routinely in running text, whatever the declared character set.
var extendedPunctuation = []charset.Entry{
	{Char: '‘', Display: '\''},
	{Char: '’', Display: '\''},
	{Char: '‚', Display: ','},
	{Char: '“', Display: '"'},
	{Char: '”', Display: '"'},
	{Char: '„', Mnemonic: ",,"},
	{Char: '…', Mnemonic: "..."},
	{Char: '‰', Mnemonic: "o/oo"},
	{Char: '‹', Display: '<'},
	{Char: '›', Display: '>'},
	{Char: '–', Display: '-'},
	{Char: '—', Mnemonic: "--"},
	{Char: '†', Mnemonic: "/-"},
	{Char: '‡', Mnemonic: "/="},
	{Char: '•', Display: '·'},
	{Char: '™', Mnemonic: "TM"},
}

// A legacyPair relates a byte of Windows code page 1252 (a C1 control in
// Unicode) to the character the byte denotes in that code page. Text
// mislabeled as Latin-1 is the most common source of such characters.
type legacyPair struct {
	legacy   rune
	extended rune
}

var legacyEquivalence = windows1252Pairs()

func windows1252Pairs() []legacyPair {
	pairs := make([]legacyPair, 0, 27)
	for b := 0x80; b <= 0x9f; b++ {
		r := charmap.Windows1252.DecodeByte(byte(b))
		if r < 0x100 || r == utf8.RuneError { // unassigned positions
			continue
		}
		pairs = append(pairs, legacyPair{legacy: rune(b), extended: r})
	}
	return pairs
}

// installFallback fills table gaps for extended punctuation and for the
// Windows-1252 repertoire. Substitutions already installed, by character
// sets or by the host, are left alone.
func (ins *Installer) installFallback() {
	for _, e := range extendedPunctuation {
		if _, ok := ins.table.Get(e.Char); ok {
			continue
		}
		ins.put(e)
	}
	for _, eq := range legacyEquivalence {
		if _, ok := ins.table.Get(eq.extended); ok {
			continue
		}
		if repl, ok := ins.table.Get(eq.legacy); ok {
			ins.table.Put(eq.extended, repl)
			continue
		}
		// writing the raw byte renders the character on surfaces which
		// interpret output as code page 1252
		ins.table.Put(eq.extended, string(eq.legacy))
	}
	tracer().Debugf("installed fallbacks for extended punctuation")
	ins.yield()
}

// ResetExtras removes the substitutions written by the fallback pass and
// by InstallLynxRepertoire.
func (ins *Installer) ResetExtras() {
	for _, e := range extendedPunctuation {
		ins.table.Clear(e.Char)
	}
	for _, eq := range legacyEquivalence {
		ins.table.Clear(eq.extended)
	}
	for _, e := range lynxRepertoire {
		ins.table.Clear(e.Char)
	}
	ins.yield()
}
