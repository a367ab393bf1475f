package display

import (
	"github.com/npillmayer/tofu/charset"
)

// lynxRepertoire are substitutions for symbols beyond the character set
// repertoires, transliterated the way the Lynx browser renders them on
// dumb terminals: arrows, fractions, math signs and box drawing.
var lynxRepertoire = []charset.Entry{
	{Char: '′', Display: '\''},
	{Char: '″', Mnemonic: "''"},
	{Char: '‾', Display: '¯'},
	{Char: '‣', Display: '>'},
	{Char: '−', Display: '-'},
	{Char: '∕', Display: '/'},
	{Char: '⁄', Display: '/'},
	{Char: '∗', Display: '*'},
	{Char: '∘', Display: '°'},
	{Char: '∼', Display: '~'},
	{Char: '≤', Mnemonic: "<="},
	{Char: '≥', Mnemonic: ">="},
	{Char: '≠', Mnemonic: "=/"},
	{Char: '≈', Mnemonic: "~="},
	{Char: '←', Mnemonic: "<-"},
	{Char: '→', Mnemonic: "->"},
	{Char: '↑', Display: '^'},
	{Char: '↓', Display: 'v'},
	{Char: '⅓', Mnemonic: "1/3"},
	{Char: '⅔', Mnemonic: "2/3"},
	{Char: '⅕', Mnemonic: "1/5"},
	{Char: '⅛', Mnemonic: "1/8"},
	{Char: '⅜', Mnemonic: "3/8"},
	{Char: '⅝', Mnemonic: "5/8"},
	{Char: '⅞', Mnemonic: "7/8"},
	{Char: '№', Mnemonic: "No"},
	{Char: '℗', Mnemonic: "(P)"},
	{Char: '─', Display: '-'},
	{Char: '│', Display: '|'},
	{Char: '┌', Display: '+'},
	{Char: '┐', Display: '+'},
	{Char: '└', Display: '+'},
	{Char: '┘', Display: '+'},
	{Char: '├', Display: '+'},
	{Char: '┤', Display: '+'},
	{Char: '┬', Display: '+'},
	{Char: '┴', Display: '+'},
	{Char: '┼', Display: '+'},
}

// InstallLynxRepertoire fills table gaps with the Lynx-style symbol
// substitutions. Substitutions already installed keep precedence.
func (ins *Installer) InstallLynxRepertoire() {
	for _, e := range lynxRepertoire {
		if _, ok := ins.table.Get(e.Char); ok {
			continue
		}
		ins.put(e)
	}
	tracer().Debugf("installed Lynx-style symbol substitutions")
	ins.yield()
}
