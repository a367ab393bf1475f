package charset

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
)

// Hebrew letters are transliterated with a '+' marker, final letter forms
// carry '%' instead.

var hebrewEntries = []Entry{
	mnm('א', "a+"), mnm('ב', "b+"), mnm('ג', "g+"),
	mnm('ד', "d+"), mnm('ה', "h+"), mnm('ו', "w+"),
	mnm('ז', "z+"), mnm('ח', "hh+"), mnm('ט', "tt+"),
	mnm('י', "y+"), mnm('כ', "k+"), mnm('ך', "k%"),
	mnm('ל', "l+"), mnm('מ', "m+"), mnm('ם', "m%"),
	mnm('נ', "n+"), mnm('ן', "n%"), mnm('ס', "s+"),
	mnm('ע', "o+"), mnm('פ', "p+"), mnm('ף', "p%"),
	mnm('צ', "ts+"), mnm('ץ', "ts%"), mnm('ק', "q+"),
	mnm('ר', "r+"), mnm('ש', "sh+"), mnm('ת', "t+"),
	chr('‗', '='),
}

func init() {
	register(&Set{
		name:           "hebrew",
		entries:        hebrewEntries,
		native:         charmap.ISO8859_8,
		representative: 'א',
		langs: []language.Tag{
			language.Hebrew, language.MustParse("yi"),
		},
	}, "iso-8859-8", "iso8859-8")
}
