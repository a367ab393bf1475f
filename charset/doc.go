/*
Package charset holds the substitution repertoires for character sets which
an output surface may be unable to render natively.

Each supported character set is described by a Set: a list of authored
substitutions, an optional native byte table, and a couple of properties
the installer and the display probes rely on. The Latin sets (ISO 8859
parts 2, 3, 4, 5 as Latin-2/-3/-4/-5 plus parts 14 and 15 as Latin-8/-9)
start out from an identity mapping of their native byte range onto Latin-1
shapes and overlay authored substitutions for characters where the shapes
differ too much. The non-Latin sets (Greek, Hebrew, Cyrillic, Arabic)
provide curated substitutions only.

# Mnemonics

Authored substitutions either replace a character by a single ASCII
look-alike or by a short mnemonic string, which the display layer wraps in
a format template. Mnemonics follow the conventions of RFC 1345: a base
letter followed by a diacritic suffix, or a transliteration followed by a
script marker.

Diacritic suffixes:

	'   acute            !   grave           >   circumflex
	?   tilde            :   diaeresis       ,   cedilla
	<   caron            (   breve           ;   ogonek
	-   macron           .   dot above       ''  double acute
	/   stroke or bar    0   ring

Script markers:

	*   Greek            =   Cyrillic        +   Hebrew or Arabic
	%   final or variant letter form

Thus U+0105 LATIN SMALL LETTER A WITH OGONEK carries the mnemonic "a;",
and U+03B1 GREEK SMALL LETTER ALPHA carries "a*". Some entries list an
older transliteration-style variant as an alternative mnemonic, which
hosts may prefer over the RFC 1345 form.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package charset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tofu.charset'
func tracer() tracing.Trace {
	return tracing.Select("tofu.charset")
}
