/*
Package preview applies a display table to a text.

Substitution normally happens inside a host's rendering path, which
consults the display table glyph by glyph. For hosts without such a path,
and for showing users what enabling substitution would do to their text,
this package applies a table eagerly: the result is a cord whose leaves
alternate between runs of untouched text and substituted fragments, so
positions of substitutions stay addressable.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package preview

import (
	"io"
	"strings"
	"sync"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tofu/display"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
)

// tracer writes to trace with key 'tofu.preview'
func tracer() tracing.Trace {
	return tracing.Select("tofu.preview")
}

// Substitute builds a cord over text with every table substitution
// applied. Untouched runs of text and substituted fragments become
// separate leaves.
func Substitute(table display.Table, text io.RuneReader) (cords.Cord, error) {
	if table == nil || text == nil {
		return cords.Cord{}, cords.ErrIllegalArguments
	}
	b := cords.NewBuilder()
	var run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			b.Append(&Leaf{content: run.String()})
			run.Reset()
		}
	}
	var r rune
	var sz int
	var err error
	substitutions := 0
	for {
		if r, sz, err = text.ReadRune(); sz == 0 || err != nil {
			break
		}
		if repl, ok := table.Get(r); ok {
			flush()
			b.Append(&Leaf{content: repl, substituted: true})
			substitutions++
			continue
		}
		run.WriteRune(r)
	}
	flush()
	tracer().Debugf("preview with %d substitutions", substitutions)
	return b.Cord(), nil
}

// String renders the text with every table substitution applied.
func String(table display.Table, text io.RuneReader) (string, error) {
	c, err := Substitute(table, text)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	err = c.EachLeaf(func(leaf cords.Leaf, _ uint64) error {
		sb.WriteString(leaf.String())
		return nil
	})
	return sb.String(), err
}

// Width estimates the number of terminal cells the substituted text will
// occupy, by segmenting it into grapheme clusters and applying East Asian
// Width rules. A nil context is taken as a Latin typesetting context.
func Width(table display.Table, text io.RuneReader, context *uax11.Context) (int, error) {
	rendered, err := String(table, text)
	if err != nil {
		return 0, err
	}
	if context == nil {
		context = uax11.LatinContext
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	onGraphemes := grapheme.NewBreaker(1)
	splitter := segment.NewSegmenter(onGraphemes)
	splitter.Init(strings.NewReader(rendered))
	width := 0
	for splitter.Next() {
		seg := splitter.Bytes()
		// uax11 classes keycap bases like '*', '#' and the digits as
		// wide; ASCII graphemes, mnemonic substitutions in particular,
		// occupy one cell on any terminal
		if ascii(seg) {
			width++
			continue
		}
		width += uax11.Width(seg, context)
	}
	return width, nil
}

func ascii(fragment []byte) bool {
	for _, b := range fragment {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

var setupGraphemes sync.Once

// --- Cord leaves -----------------------------------------------------------

// Leaf is the cord leaf type for preview fragments.
type Leaf struct {
	content     string
	substituted bool
}

// Substituted tells if the fragment replaces a character of the original
// text.
func (l Leaf) Substituted() bool {
	return l.substituted
}

// Weight of a leaf is its string length in bytes.
func (l Leaf) Weight() uint64 {
	return uint64(len(l.content))
}

func (l Leaf) String() string {
	return l.content
}

// Split splits a leaf at position i, resulting in 2 new leafs.
func (l Leaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	left := &Leaf{
		content:     l.content[:i],
		substituted: l.substituted,
	}
	right := &Leaf{
		content:     l.content[i:],
		substituted: l.substituted,
	}
	return left, right
}

// Substring returns a string segment of the leaf's text fragment.
func (l Leaf) Substring(i, j uint64) []byte {
	return []byte(l.content)[i:j]
}

var _ cords.Leaf = Leaf{}
