/*
Package tofu substitutes characters which an output surface cannot render
natively.

"Tofu" is the nickname of the hollow boxes a renderer paints for
characters missing from its fonts. Surfaces with restricted fonts or
encodings, terminals in particular, produce lots of it when text leaves
the Latin-1 range. This package keeps such text readable by installing
display substitutions: ASCII look-alikes where shapes permit, short
formatted mnemonics everywhere else, so that Polish 'ą' shows up as
"{a;}" and Greek 'α' as "{a*}" instead of a hollow box.

A Session ties the pieces together for one surface: the surface hands over
its display table and a capability probe, the session installs or removes
the substitution repertoires of the charset package. Substitution only
kicks in for character sets the surface cannot display, so enabling
everything is a harmless default:

	session := tofu.NewSession(tofu.Surface{Table: table, Probe: prb})
	err := session.Enable()

Hosts read user preferences through the configuration keys
"tofu-display" (start out enabled), "tofu-display-format",
"tofu-legacy-mnemonics" and "tofu-charsets", see FromConfiguration.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package tofu

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tofu/charset"
	"github.com/npillmayer/tofu/display"
	"github.com/npillmayer/tofu/probe"
)

// tracer writes to trace with key 'tofu.session'
func tracer() tracing.Trace {
	return tracing.Select("tofu.session")
}

// Surface bundles what a host exposes for one output surface: the display
// table its renderer consults, a probe for its display capabilities, and
// optional hooks. Redraw is called after substitutions changed in a way
// that invalidates rendered output, Yield between bulky chunks of table
// updates.
type Surface struct {
	Table  display.Table
	Probe  probe.Probe
	Redraw func()
	Yield  func()
}

// Session tracks which character sets are substituted on one surface.
// Sessions are not safe for concurrent use.
type Session struct {
	surface   Surface
	installer *display.Installer
	format    display.Format
	active    bool
	lynx      bool
}

// NewSession creates a session for a surface. A surface without a table
// gets a fresh standard table, a surface without a probe is taken as
// Latin-1 only.
func NewSession(surface Surface) *Session {
	if surface.Table == nil {
		surface.Table = display.NewTable()
	}
	if surface.Probe == nil {
		surface.Probe = probe.Latin1Only{}
	}
	s := &Session{surface: surface}
	s.installer = display.NewInstaller(surface.Table, surface.Probe, s.format)
	s.installer.Yield = surface.Yield
	return s
}

// Table returns the display table of the session's surface.
func (s *Session) Table() display.Table {
	return s.surface.Table
}

// Active tells if substitutions are currently enabled.
func (s *Session) Active() bool {
	return s.active
}

// UseFormat changes the rendering of mnemonics for future Enable calls.
func (s *Session) UseFormat(format display.Format) *Session {
	s.format = format
	s.installer.SetFormat(format)
	return s
}

// Enable installs substitutions for the named character sets and marks
// the session active. Without arguments every supported set is enabled,
// which is a harmless default: sets the surface displays natively are
// skipped. The session stays enabled even if some identifiers are
// rejected, the returned error names them.
func (s *Session) Enable(sets ...string) error {
	if len(sets) == 0 {
		sets = charset.Names()
	}
	tracer().Infof("enabling display substitution for %s", strings.Join(sets, ", "))
	err := s.installer.Install(sets, false)
	s.active = true
	if s.lynx {
		s.installer.InstallLynxRepertoire()
	}
	s.redraw()
	return err
}

// Disable removes every substitution the session may have installed,
// including the punctuation fallbacks, and marks the session inactive.
func (s *Session) Disable() {
	tracer().Infof("disabling display substitution")
	for _, name := range charset.Names() {
		if err := s.installer.Reset(name); err != nil {
			tracer().Errorf("reset of %s failed: %v", name, err)
		}
	}
	s.installer.ResetExtras()
	s.active = false
	s.lynx = false
	s.redraw()
}

// EnableLynxDisplay additionally substitutes a range of symbols the way
// the Lynx browser renders them on dumb terminals. On an active session
// the symbols are installed right away, otherwise with the next Enable.
func (s *Session) EnableLynxDisplay() {
	s.lynx = true
	if s.active {
		s.installer.InstallLynxRepertoire()
		s.redraw()
	}
}

func (s *Session) redraw() {
	if s.surface.Redraw != nil {
		s.surface.Redraw()
	}
}

// --- Configuration ---------------------------------------------------------

// FromConfiguration loads the session's format settings from the host's
// configuration: "tofu-display-format" is the mnemonic template,
// "tofu-legacy-mnemonics" selects the older transliteration-style
// mnemonic forms.
func (s *Session) FromConfiguration() *Session {
	format := s.format
	if template := gconf.GetString("tofu-display-format"); template != "" {
		format.Template = template
	}
	if v := gconf.GetString("tofu-legacy-mnemonics"); v != "" {
		legacy, err := strconv.ParseBool(v)
		if err != nil {
			tracer().Errorf("configuration tofu-legacy-mnemonics = %q is not boolean", v)
		} else {
			format.LegacyMnemonics = legacy
		}
	}
	return s.UseFormat(format)
}

// ConfiguredSets returns the character sets listed in the configuration
// key "tofu-charsets", for hosts which let users restrict substitution to
// some sets. An empty result means all of them.
func ConfiguredSets() []string {
	return strings.Fields(gconf.GetString("tofu-charsets"))
}

// ConfiguredOn tells if the configuration key "tofu-display" asks for
// substitution to start out enabled. Hosts honouring it call Enable with
// ConfiguredSets during startup.
func ConfiguredOn() bool {
	v := gconf.GetString("tofu-display")
	if v == "" {
		return false
	}
	on, err := strconv.ParseBool(v)
	if err != nil {
		tracer().Errorf("configuration tofu-display = %q is not boolean", v)
		return false
	}
	return on
}
