/*
Package probe decides whether an output surface can display a character
natively.

Probes answer a single question, CanDisplay, and are consulted by the
display layer before it installs substitutions for a character set:
substituting "{a;}" for 'ą' would be a disservice on a surface which has a
perfectly fine glyph for 'ą'. Graphical surfaces are probed through the
character maps of their fonts, terminal-like surfaces through their output
encoding. Characters below U+0100 count as displayable on every surface.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package probe

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tofu.probe'
func tracer() tracing.Trace {
	return tracing.Select("tofu.probe")
}

// Probe answers whether the active output surface can render a character
// natively. Implementations must be side-effect free, probing happens
// repeatedly during installation of substitution tables.
type Probe interface {
	CanDisplay(code rune) bool
}

// Latin1Only is the conservative default probe: it assumes a surface which
// renders the Latin-1 range and nothing else.
type Latin1Only struct{}

func (Latin1Only) CanDisplay(code rune) bool {
	return code < 0x100
}

// extendedWitnesses are probed by HasExtendedRepertoire. A surface which
// displays common typographic punctuation is assumed to have a font with
// a decently sized repertoire.
var extendedWitnesses = []rune{'‘', '’', '“', '”', '–', '—', '…'}

// HasExtendedRepertoire tells if the surface displays common typographic
// punctuation natively. The display layer uses this to decide whether
// substitutions for such punctuation are worthwhile.
func HasExtendedRepertoire(p Probe) bool {
	if p == nil {
		return false
	}
	for _, code := range extendedWitnesses {
		if !p.CanDisplay(code) {
			return false
		}
	}
	return true
}
