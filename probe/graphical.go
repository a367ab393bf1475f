package probe

import (
	"github.com/npillmayer/tofu/font"
)

// Coverage answers glyph coverage for a single font.
type Coverage interface {
	Covers(code rune) bool
}

// Graphical probes a graphical frame. A character counts as displayable if
// the selected font covers it, or failing that, one of the fonts of the
// surface's fontset.
type Graphical struct {
	selected Coverage
	fontset  []Coverage
}

// NewGraphical creates a probe over a selected font and the fonts of a
// fontset. Nil arguments are tolerated and count as empty coverage.
func NewGraphical(selected Coverage, fontset ...Coverage) *Graphical {
	g := &Graphical{}
	if selected != nil {
		g.selected = selected
	}
	for _, c := range fontset {
		if c != nil {
			g.fontset = append(g.fontset, c)
		}
	}
	return g
}

// GraphicalForFonts creates a probe from loaded fonts. If no fonts are
// given, the fallback font stands in as the selected font.
func GraphicalForFonts(selected *font.ScalableFont, fontset ...*font.ScalableFont) *Graphical {
	covers := make([]Coverage, 0, len(fontset))
	for _, f := range fontset {
		if f != nil {
			covers = append(covers, f)
		}
	}
	if selected == nil {
		tracer().Infof("no font selected, probing the fallback font")
		selected = font.FallbackFont()
	}
	return NewGraphical(selected, covers...)
}

func (g *Graphical) CanDisplay(code rune) bool {
	if code < 0x100 {
		return true
	}
	if g == nil {
		return false
	}
	if g.selected != nil && g.selected.Covers(code) {
		return true
	}
	for _, c := range g.fontset {
		if c.Covers(code) {
			return true
		}
	}
	return false
}
