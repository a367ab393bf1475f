package display

import (
	"fmt"
	"strings"

	"github.com/npillmayer/tofu/charset"
	"github.com/npillmayer/tofu/core"
	"github.com/npillmayer/tofu/probe"
)

// Installer writes substitutions for requested character sets into a
// display table. Installers are cheap, hosts usually create one per
// surface and keep it around for enabling and disabling substitution.
type Installer struct {
	// Yield, if set, is called after bulky chunks of table updates, as a
	// cooperative break for hosts which share the table with a rendering
	// loop.
	Yield func()

	table  Table
	prb    probe.Probe
	format Format
}

// NewInstaller creates an installer writing to a table, consulting a
// probe. A nil table gets a fresh standard table, a nil probe is taken as
// a Latin-1-only surface.
func NewInstaller(table Table, prb probe.Probe, format Format) *Installer {
	if table == nil {
		table = NewTable()
	}
	if prb == nil {
		prb = probe.Latin1Only{}
	}
	return &Installer{table: table, prb: prb, format: format}
}

// Table returns the display table the installer writes to.
func (ins *Installer) Table() Table {
	return ins.table
}

// SetFormat changes the rendering of mnemonics for future installations.
// Substitutions already installed keep their rendering.
func (ins *Installer) SetFormat(format Format) {
	ins.format = format
}

// Install writes substitutions for the named character sets. Sets whose
// representative character the surface displays natively are skipped,
// unless force is set. If at least one set is installed on a surface
// lacking common typographic punctuation, fallback substitutions for such
// punctuation are installed as well.
//
// Unknown identifiers do not stop the batch: the remaining sets are
// installed and a single error wrapping charset.ErrInvalidCharset names
// all rejected identifiers.
func (ins *Installer) Install(names []string, force bool) error {
	var invalid []string
	installed := 0
	for _, name := range names {
		cs, err := charset.Lookup(name)
		if err != nil {
			invalid = append(invalid, name)
			continue
		}
		if !force && ins.prb.CanDisplay(cs.Representative()) {
			tracer().Infof("charset %s displays natively, skipping installation", cs.Name())
			continue
		}
		ins.installSet(cs)
		installed++
	}
	if installed > 0 && !probe.HasExtendedRepertoire(ins.prb) {
		ins.installFallback()
	}
	if len(invalid) > 0 {
		names := strings.Join(invalid, ", ")
		return core.WrapError(fmt.Errorf("%w: %s", charset.ErrInvalidCharset, names),
			core.EINVALID, "unsupported charsets: %s", names)
	}
	return nil
}

// installSet writes the identity pass, then overlays the authored entries.
func (ins *Installer) installSet(cs *charset.Set) {
	cs.EachIdentity(func(char, latin1 rune) {
		if _, ok := ins.table.Get(char); !ok {
			ins.table.Put(char, string(latin1))
		}
	})
	for _, e := range cs.Entries() {
		ins.put(e)
	}
	tracer().Debugf("installed substitutions for charset %s", cs.Name())
	ins.yield()
}

// put renders one authored entry into the table.
func (ins *Installer) put(e charset.Entry) {
	if e.IsChar() {
		ins.table.Put(e.Char, string(e.Display))
		return
	}
	ins.table.Put(e.Char, ins.format.Render(ins.format.Mnemonic(e)))
}

// Reset removes the substitutions for every character in the repertoire
// of the named set, regardless of which installation wrote them.
func (ins *Installer) Reset(name string) error {
	cs, err := charset.Lookup(name)
	if err != nil {
		return err
	}
	for _, code := range cs.Repertoire() {
		ins.table.Clear(code)
	}
	tracer().Debugf("cleared substitutions for charset %s", cs.Name())
	ins.yield()
	return nil
}

func (ins *Installer) yield() {
	if ins.Yield != nil {
		ins.Yield()
	}
}
