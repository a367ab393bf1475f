package charset

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
)

// The Latin sets start out from an identity pass over their native byte
// range and overlay the entries listed here. Entries cover every character
// whose Latin-1 look-alike (the character at the same byte position) has a
// clearly different shape.

var latin2Entries = []Entry{
	mnm('Ą', "A;"), mnm('ą', "a;"),
	mnm('Ł', "L/"), mnm('ł', "l/"),
	mnm('Ľ', "L<"), mnm('ľ', "l<"),
	mnm('Ś', "S'"), mnm('ś', "s'"),
	mnm('Š', "S<"), mnm('š', "s<"),
	mnm('Ş', "S,"), mnm('ş', "s,"),
	mnm('Ť', "T<"), mnm('ť', "t<"),
	mnm('Ź', "Z'"), mnm('ź', "z'"),
	mnm('Ž', "Z<"), mnm('ž', "z<"),
	mnm('Ż', "Z."), mnm('ż', "z."),
	mnm('Ŕ', "R'"), mnm('ŕ', "r'"),
	mnm('Ă', "A("), mnm('ă', "a("),
	mnm('Ĺ', "L'"), mnm('ĺ', "l'"),
	mnm('Ć', "C'"), mnm('ć', "c'"),
	mnm('Č', "C<"), mnm('č', "c<"),
	mnm('Ę', "E;"), mnm('ę', "e;"),
	mnm('Ě', "E<"), mnm('ě', "e<"),
	mnm('Ď', "D<"), mnm('ď', "d<"),
	alt('Đ', "D/", "DJ"), alt('đ', "d/", "dj"),
	mnm('Ń', "N'"), mnm('ń', "n'"),
	mnm('Ň', "N<"), mnm('ň', "n<"),
	mnm('Ő', "O''"), mnm('ő', "o''"),
	mnm('Ř', "R<"), mnm('ř', "r<"),
	mnm('Ů', "U0"), mnm('ů', "u0"),
	mnm('Ű', "U''"), mnm('ű', "u''"),
	mnm('Ţ', "T,"), mnm('ţ', "t,"),
	// spacing accents
	mnm('˘', "'("), mnm('˛', "';"),
	mnm('ˇ', "'<"), mnm('˝', "''"),
	mnm('˙', "'."),
}

var latin3Entries = []Entry{
	mnm('Ħ', "H/"), mnm('ħ', "h/"),
	mnm('Ĥ', "H>"), mnm('ĥ', "h>"),
	mnm('İ', "I."), mnm('ı', "i."),
	mnm('Ş', "S,"), mnm('ş', "s,"),
	mnm('Ğ', "G("), mnm('ğ', "g("),
	mnm('Ĵ', "J>"), mnm('ĵ', "j>"),
	mnm('Ż', "Z."), mnm('ż', "z."),
	mnm('Ċ', "C."), mnm('ċ', "c."),
	mnm('Ĉ', "C>"), mnm('ĉ', "c>"),
	mnm('Ġ', "G."), mnm('ġ', "g."),
	mnm('Ĝ', "G>"), mnm('ĝ', "g>"),
	mnm('Ŭ', "U("), mnm('ŭ', "u("),
	mnm('Ŝ', "S>"), mnm('ŝ', "s>"),
	mnm('˘', "'("), mnm('˙', "'."),
}

var latin4Entries = []Entry{
	mnm('Ą', "A;"), mnm('ą', "a;"),
	mnm('Ā', "A-"), mnm('ā', "a-"),
	mnm('Ē', "E-"), mnm('ē', "e-"),
	mnm('Ė', "E."), mnm('ė', "e."),
	mnm('Ę', "E;"), mnm('ę', "e;"),
	mnm('Č', "C<"), mnm('č', "c<"),
	alt('Đ', "D/", "DJ"), alt('đ', "d/", "dj"),
	mnm('Ģ', "G,"), mnm('ģ', "g,"),
	mnm('Ĩ', "I?"), mnm('ĩ', "i?"),
	mnm('Ī', "I-"), mnm('ī', "i-"),
	mnm('Į', "I;"), mnm('į', "i;"),
	mnm('Ķ', "K,"), mnm('ķ', "k,"),
	mnm('Ļ', "L,"), mnm('ļ', "l,"),
	mnm('Ņ', "N,"), mnm('ņ', "n,"),
	mnm('Ŋ', "NG"), mnm('ŋ', "ng"),
	mnm('Ō', "O-"), mnm('ō', "o-"),
	mnm('Ŗ', "R,"), mnm('ŗ', "r,"),
	mnm('Š', "S<"), mnm('š', "s<"),
	mnm('Ŧ', "T/"), mnm('ŧ', "t/"),
	mnm('Ũ', "U?"), mnm('ũ', "u?"),
	mnm('Ū', "U-"), mnm('ū', "u-"),
	mnm('Ų', "U;"), mnm('ų', "u;"),
	mnm('Ž', "Z<"), mnm('ž', "z<"),
	mnm('ĸ', "kk"),
	// spacing accents
	mnm('˛', "';"), mnm('ˇ', "'<"),
	mnm('˙', "'."),
}

var latin5Entries = []Entry{
	mnm('Ğ', "G("), mnm('ğ', "g("),
	mnm('İ', "I."), mnm('ı', "i."),
	mnm('Ş', "S,"), mnm('ş', "s,"),
}

var latin8Entries = []Entry{
	mnm('Ḃ', "B."), mnm('ḃ', "b."),
	mnm('Ċ', "C."), mnm('ċ', "c."),
	mnm('Ḋ', "D."), mnm('ḋ', "d."),
	mnm('Ḟ', "F."), mnm('ḟ', "f."),
	mnm('Ġ', "G."), mnm('ġ', "g."),
	mnm('Ṁ', "M."), mnm('ṁ', "m."),
	mnm('Ṗ', "P."), mnm('ṗ', "p."),
	mnm('Ṡ', "S."), mnm('ṡ', "s."),
	mnm('Ṫ', "T."), mnm('ṫ', "t."),
	mnm('Ẁ', "W!"), mnm('ẁ', "w!"),
	mnm('Ẃ', "W'"), mnm('ẃ', "w'"),
	mnm('Ẅ', "W:"), mnm('ẅ', "w:"),
	mnm('Ŵ', "W>"), mnm('ŵ', "w>"),
	mnm('Ỳ', "Y!"), mnm('ỳ', "y!"),
	mnm('Ŷ', "Y>"), mnm('ŷ', "y>"),
	mnm('Ÿ', "Y:"),
}

var latin9Entries = []Entry{
	alt('€', "EUR", "E="),
	mnm('Š', "S<"), mnm('š', "s<"),
	mnm('Ž', "Z<"), mnm('ž', "z<"),
	mnm('Œ', "OE"), mnm('œ', "oe"),
	mnm('Ÿ', "Y:"),
}

func init() {
	register(&Set{
		name:           "latin-2",
		entries:        latin2Entries,
		identity:       true,
		native:         charmap.ISO8859_2,
		representative: 'ą',
		langs: []language.Tag{
			language.Czech, language.Croatian, language.Hungarian,
			language.Polish, language.Romanian, language.Slovak,
			language.Slovenian,
		},
	}, "latin2", "iso-8859-2", "iso8859-2")
	register(&Set{
		name:           "latin-3",
		entries:        latin3Entries,
		identity:       true,
		native:         charmap.ISO8859_3,
		representative: 'ħ',
		langs: []language.Tag{
			language.MustParse("eo"), language.MustParse("mt"),
		},
	}, "latin3", "iso-8859-3", "iso8859-3")
	register(&Set{
		name:           "latin-4",
		entries:        latin4Entries,
		identity:       true,
		native:         charmap.ISO8859_4,
		representative: 'ā',
		langs: []language.Tag{
			language.Estonian, language.Latvian, language.Lithuanian,
			language.MustParse("kl"), language.MustParse("se"),
		},
	}, "latin4", "iso-8859-4", "iso8859-4")
	register(&Set{
		name:           "latin-5",
		entries:        latin5Entries,
		identity:       true,
		native:         charmap.ISO8859_9,
		representative: 'ğ',
		langs:          []language.Tag{language.Turkish},
	}, "latin5", "iso-8859-9", "iso8859-9")
	register(&Set{
		name:           "latin-8",
		entries:        latin8Entries,
		identity:       true,
		native:         charmap.ISO8859_14,
		representative: 'ṁ',
		langs: []language.Tag{
			language.MustParse("cy"), language.MustParse("ga"),
			language.MustParse("gd"), language.MustParse("br"),
		},
	}, "latin8", "iso-8859-14", "iso8859-14")
	register(&Set{
		name:           "latin-9",
		entries:        latin9Entries,
		identity:       true,
		native:         charmap.ISO8859_15,
		representative: 'œ',
		langs:          []language.Tag{language.French, language.Finnish},
	}, "latin9", "iso-8859-15", "iso8859-15")
}
