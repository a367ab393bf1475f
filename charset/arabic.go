package charset

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
)

// Arabic letters are transliterated with a '+' marker, with capitals
// standing in for the emphatic consonants. Variant letter forms carry '%'
// and the harakat (vowel signs) are prefixed with '/'.

var arabicEntries = []Entry{
	// hamza and its carriers
	chr('ء', '\''), mnm('آ', "aa+"),
	mnm('أ', "a'+"), mnm('ؤ', "w'+"),
	mnm('إ', "a!+"), mnm('ئ', "y'+"),
	// letters
	mnm('ا', "a+"), mnm('ب', "b+"), mnm('ة', "t%"),
	mnm('ت', "t+"), mnm('ث', "th+"), mnm('ج', "j+"),
	mnm('ح', "H+"), mnm('خ', "kh+"), mnm('د', "d+"),
	mnm('ذ', "dh+"), mnm('ر', "r+"), mnm('ز', "z+"),
	mnm('س', "s+"), mnm('ش', "sh+"), mnm('ص', "S+"),
	mnm('ض', "D+"), mnm('ط', "T+"), mnm('ظ', "Z+"),
	mnm('ع', "`+"), mnm('غ', "gh+"), mnm('ف', "f+"),
	mnm('ق', "q+"), mnm('ك', "k+"), mnm('ل', "l+"),
	mnm('م', "m+"), mnm('ن', "n+"), mnm('ه', "h+"),
	mnm('و', "w+"), mnm('ى', "a%"), mnm('ي', "y+"),
	chr('ـ', '-'),
	// harakat
	mnm('َ', "/a"), mnm('ُ', "/u"), mnm('ِ', "/i"),
	mnm('ً', "/an"), mnm('ٌ', "/un"), mnm('ٍ', "/in"),
	mnm('ّ', "/sh"), mnm('ْ', "/0"),
	// punctuation
	chr('،', ','), chr('؛', ';'), chr('؟', '?'),
}

func init() {
	register(&Set{
		name:           "arabic",
		entries:        arabicEntries,
		native:         charmap.ISO8859_6,
		representative: 'ف',
		langs:          []language.Tag{language.Arabic},
	}, "iso-8859-6", "iso8859-6")
}
