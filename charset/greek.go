package charset

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
)

// Greek is a curated repertoire without an identity pass. Capital letters
// with a Latin look-alike are replaced by the look-alike, everything else
// carries an RFC 1345 mnemonic, with a plain transliteration as the
// alternative form.

var greekEntries = []Entry{
	// capitals with Latin look-alikes
	chr('Α', 'A'), chr('Β', 'B'), chr('Ε', 'E'),
	chr('Ζ', 'Z'), chr('Η', 'H'), chr('Ι', 'I'),
	chr('Κ', 'K'), chr('Μ', 'M'), chr('Ν', 'N'),
	chr('Ο', 'O'), chr('Ρ', 'P'), chr('Τ', 'T'),
	chr('Υ', 'Y'), chr('Χ', 'X'),
	// remaining capitals
	mnm('Γ', "G*"), mnm('Δ', "D*"),
	alt('Θ', "H*", "TH"), mnm('Λ', "L*"),
	alt('Ξ', "C*", "KS"), mnm('Π', "P*"),
	mnm('Σ', "S*"), mnm('Φ', "F*"),
	alt('Ψ', "Q*", "PS"), alt('Ω', "W*", "O"),
	// capitals with tonos or dialytika
	mnm('Ά', "A*'"), mnm('Έ', "E*'"), mnm('Ή', "Y*'"),
	mnm('Ί', "I*'"), mnm('Ό', "O*'"), mnm('Ύ', "U*'"),
	mnm('Ώ', "W*'"), mnm('Ϊ', "I*:"), mnm('Ϋ', "U*:"),
	// small letters
	alt('α', "a*", "a"), alt('β', "b*", "b"),
	alt('γ', "g*", "g"), alt('δ', "d*", "d"),
	alt('ε', "e*", "e"), alt('ζ', "z*", "z"),
	alt('η', "y*", "e"), alt('θ', "h*", "th"),
	alt('ι', "i*", "i"), alt('κ', "k*", "k"),
	alt('λ', "l*", "l"), alt('μ', "m*", "m"),
	alt('ν', "n*", "n"), alt('ξ', "c*", "x"),
	alt('ο', "o*", "o"), alt('π', "p*", "p"),
	alt('ρ', "r*", "r"), alt('σ', "s*", "s"),
	alt('ς', "*s", "s"), alt('τ', "t*", "t"),
	alt('υ', "u*", "u"), alt('φ', "f*", "ph"),
	alt('χ', "x*", "ch"), alt('ψ', "q*", "ps"),
	alt('ω', "w*", "w"),
	// small letters with tonos or dialytika
	mnm('ά', "a*'"), mnm('έ', "e*'"), mnm('ή', "y*'"),
	mnm('ί', "i*'"), mnm('ό', "o*'"), mnm('ύ', "u*'"),
	mnm('ώ', "w*'"), mnm('ϊ', "i*:"), mnm('ϋ', "u*:"),
	mnm('ΐ', "i*':"), mnm('ΰ', "u*':"),
	// punctuation and symbols
	chr('‘', '\''), chr('’', '\''),
	chr('―', '-'), chr('΄', '\''), chr('΅', '¨'),
	alt('€', "EUR", "E="), mnm('₯', "Dr"),
}

func init() {
	register(&Set{
		name:           "greek",
		entries:        greekEntries,
		native:         charmap.ISO8859_7,
		representative: 'α',
		langs:          []language.Tag{language.Greek},
	}, "iso-8859-7", "iso8859-7", "elot-928")
}
