/*
Package display installs character substitutions into a display table.

A display table maps characters to the strings a surface should render in
their place. The installer fills such a table from the repertoires of the
charset package: for each requested character set it writes an identity
pass (native byte positions shown as their Latin-1 look-alikes) and
overlays the authored substitutions, which either replace a character by
an ASCII look-alike or by a mnemonic wrapped in a format template, e.g.
"{a;}" for 'ą'.

Character sets whose representative character the surface displays
natively are skipped, unless installation is forced. Alongside the
requested sets the installer covers common typographic punctuation on
surfaces lacking the glyphs for it, including the characters of the
Windows code page 1252 repertoire, which show up routinely in text
declared as Latin-1.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package display

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tofu.display'
func tracer() tracing.Trace {
	return tracing.Select("tofu.display")
}
