package probe

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/encoding/charmap"
)

func TestTerminalEncoding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tofu.probe")
	defer teardown()
	latin1 := NewTerminal(nil)
	if !latin1.CanDisplay('é') {
		t.Error("Latin-1 characters display on every terminal")
	}
	if latin1.CanDisplay('ą') {
		t.Error("a bare Latin-1 terminal cannot display 'ą'")
	}
	latin2 := NewTerminal(charmap.ISO8859_2)
	if !latin2.CanDisplay('ą') {
		t.Error("a Latin-2 terminal encodes 'ą'")
	}
	if latin2.CanDisplay('ж') {
		t.Error("a Latin-2 terminal cannot encode Cyrillic")
	}
}

func TestTerminalForCharset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tofu.probe")
	defer teardown()
	latin2 := TerminalForCharset("latin-2")
	if !latin2.CanDisplay('ą') {
		t.Error("the native Latin-2 encoding covers 'ą'")
	}
	if latin2.CanDisplay('ж') {
		t.Error("the native Latin-2 encoding does not cover Cyrillic")
	}
	if TerminalForCharset("klingon").CanDisplay('ą') {
		t.Error("an unknown charset should fall back to a Latin-1 terminal")
	}
}

func TestTerminalSafeChars(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tofu.probe")
	defer teardown()
	term := NewTerminal(nil).DeclareSafe('…', '—')
	if !term.CanDisplay('…') || !term.CanDisplay('—') {
		t.Error("declared characters should count as displayable")
	}
	if term.CanDisplay('–') {
		t.Error("undeclared characters should not count as displayable")
	}
}

func TestTerminalSafeCharsets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tofu.probe")
	defer teardown()
	term := NewTerminal(nil).DeclareSafeCharset("cyrillic", "klingon")
	if !term.CanDisplay('ж') {
		t.Error("characters of a declared charset should count as displayable")
	}
	if term.CanDisplay('ą') {
		t.Error("characters of undeclared charsets should not count as displayable")
	}
}
