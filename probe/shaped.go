package probe

import (
	"bytes"

	hbtt "github.com/benoitkugler/textlayout/fonts/truetype"
	hb "github.com/benoitkugler/textlayout/harfbuzz"
	"github.com/npillmayer/tofu/core"
	"github.com/npillmayer/tofu/font"
)

// ShapedCoverage decides glyph coverage by running a character through the
// HarfBuzz shaper. This is slower than a character map lookup, but catches
// fonts which produce a character's glyph only through substitution
// lookups, and fonts where a mapped glyph is in fact empty.
type ShapedCoverage struct {
	font *hb.Font
}

var _ Coverage = &ShapedCoverage{}

// NewShapedCoverage parses a font's binary data for shaping.
func NewShapedCoverage(sf *font.ScalableFont) (*ShapedCoverage, error) {
	if sf == nil || len(sf.Binary) == 0 {
		return nil, core.Error(core.EMISSING, "no font data to shape with")
	}
	face, err := hbtt.Parse(bytes.NewReader(sf.Binary), true)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "font %s is not shapeable", sf.Fontname)
	}
	tracer().Debugf("font %s prepared for shaping", sf.Fontname)
	return &ShapedCoverage{font: hb.NewFont(face)}, nil
}

// Covers shapes the character as a one-rune text and inspects the
// resulting glyphs: the character is covered iff no .notdef glyph occurs.
func (sc *ShapedCoverage) Covers(code rune) bool {
	if sc == nil || sc.font == nil {
		return false
	}
	buf := hb.NewBuffer()
	buf.AddRunes([]rune{code}, 0, 1)
	buf.Shape(sc.font, nil)
	if len(buf.Info) == 0 {
		return false
	}
	for _, ginfo := range buf.Info {
		if ginfo.Glyph == 0 {
			return false
		}
	}
	return true
}
