package charset

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
)

// Cyrillic letters are transliterated with a '=' marker, letters without a
// one-to-one transliteration carry '%' or a multi-letter transliteration.
// The alternative forms follow common romanization.

var cyrillicEntries = []Entry{
	// capitals
	mnm('А', "A="), mnm('Б', "B="), mnm('В', "V="),
	mnm('Г', "G="), mnm('Д', "D="), mnm('Е', "E="),
	alt('Ж', "Z%", "Zh"), mnm('З', "Z="), mnm('И', "I="),
	mnm('Й', "J="), mnm('К', "K="), mnm('Л', "L="),
	mnm('М', "M="), mnm('Н', "N="), mnm('О', "O="),
	mnm('П', "P="), mnm('Р', "R="), mnm('С', "S="),
	mnm('Т', "T="), mnm('У', "U="), mnm('Ф', "F="),
	alt('Х', "H=", "Kh"), alt('Ц', "C=", "Ts"),
	alt('Ч', "C%", "Ch"), alt('Ш', "S%", "Sh"),
	alt('Щ', "Sc", "Sch"), chr('Ъ', '"'), mnm('Ы', "Y="),
	chr('Ь', '\''), mnm('Э', "JE"), alt('Ю', "JU", "Yu"),
	alt('Я', "JA", "Ya"), alt('Ё', "IO", "Yo"),
	// small letters
	mnm('а', "a="), mnm('б', "b="), mnm('в', "v="),
	mnm('г', "g="), mnm('д', "d="), mnm('е', "e="),
	alt('ж', "z%", "zh"), mnm('з', "z="), mnm('и', "i="),
	mnm('й', "j="), mnm('к', "k="), mnm('л', "l="),
	mnm('м', "m="), mnm('н', "n="), mnm('о', "o="),
	mnm('п', "p="), mnm('р', "r="), mnm('с', "s="),
	mnm('т', "t="), mnm('у', "u="), mnm('ф', "f="),
	alt('х', "h=", "kh"), alt('ц', "c=", "ts"),
	alt('ч', "c%", "ch"), alt('ш', "s%", "sh"),
	alt('щ', "sc", "sch"), chr('ъ', '"'), mnm('ы', "y="),
	chr('ь', '\''), mnm('э', "je"), alt('ю', "ju", "yu"),
	alt('я', "ja", "ya"), alt('ё', "io", "yo"),
	// letters outside the Russian alphabet
	mnm('Ђ', "DJ"), mnm('ђ', "dj"),
	mnm('Ѓ', "GJ"), mnm('ѓ', "gj"),
	mnm('Є', "IE"), mnm('є', "ie"),
	chr('Ѕ', 'S'), chr('ѕ', 's'),
	chr('І', 'I'), chr('і', 'i'),
	mnm('Ї', "YI"), mnm('ї', "yi"),
	chr('Ј', 'J'), chr('ј', 'j'),
	mnm('Љ', "LJ"), mnm('љ', "lj"),
	mnm('Њ', "NJ"), mnm('њ', "nj"),
	mnm('Ћ', "TSH"), mnm('ћ', "tsh"),
	mnm('Ќ', "KJ"), mnm('ќ', "kj"),
	mnm('Ў', "U("), mnm('ў', "u("),
	mnm('Џ', "DZ"), mnm('џ', "dz"),
	alt('№', "No", "#"),
}

func init() {
	register(&Set{
		name:           "cyrillic",
		entries:        cyrillicEntries,
		native:         charmap.ISO8859_5,
		representative: 'ж',
		langs: []language.Tag{
			language.Russian, language.Bulgarian, language.Macedonian,
			language.Serbian, language.Ukrainian, language.MustParse("be"),
		},
	}, "iso-8859-5", "iso8859-5")
}
