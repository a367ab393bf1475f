package charset

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tofu/core"
	"golang.org/x/text/language"
)

func TestLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tofu.charset")
	defer teardown()
	for _, name := range []string{"latin-2", "latin2", "ISO-8859-2", "iso8859-2", " Latin-2 "} {
		cs, err := Lookup(name)
		if err != nil {
			t.Fatalf("lookup of %q failed: %v", name, err)
		}
		if cs.Name() != "latin-2" {
			t.Errorf("lookup of %q returned %q, expected latin-2", name, cs.Name())
		}
	}
}

func TestLookupInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tofu.charset")
	defer teardown()
	_, err := Lookup("klingon")
	if err == nil {
		t.Fatal("lookup of unsupported charset should have failed")
	}
	if !errors.Is(err, ErrInvalidCharset) {
		t.Errorf("error should wrap ErrInvalidCharset, is %v", err)
	}
	if core.Code(err) != core.EINVALID {
		t.Errorf("error code should be EINVALID, is %d", core.Code(err))
	}
}

func TestRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tofu.charset")
	defer teardown()
	names := Names()
	if len(names) != 10 {
		t.Fatalf("expected 10 registered charsets, have %d: %v", len(names), names)
	}
	seen := make(map[string]bool)
	for _, n := range names {
		seen[n] = true
	}
	for _, n := range []string{"latin-2", "latin-3", "latin-4", "latin-5", "latin-8",
		"latin-9", "greek", "hebrew", "cyrillic", "arabic"} {
		if !seen[n] {
			t.Errorf("charset %q is not registered", n)
		}
	}
}

func TestEachIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tofu.charset")
	defer teardown()
	latin2, _ := Lookup("latin-2")
	pairs := make(map[rune]rune)
	latin2.EachIdentity(func(char, latin1 rune) {
		if char < 0x100 {
			t.Errorf("identity pair for %#U, but characters below U+0100 display everywhere", char)
		}
		if latin1 < 0xa0 || latin1 > 0xff {
			t.Errorf("identity target %#U outside of the Latin-1 range", latin1)
		}
		pairs[char] = latin1
	})
	if pairs['č'] != 'è' {
		t.Errorf("identity shape for 'č' should be 'è', is %#U", pairs['č'])
	}
	if pairs['ř'] != 'ø' {
		t.Errorf("identity shape for 'ř' should be 'ø', is %#U", pairs['ř'])
	}
}

func TestCuratedSetsHaveNoIdentities(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tofu.charset")
	defer teardown()
	for _, name := range []string{"greek", "hebrew", "cyrillic", "arabic"} {
		cs, _ := Lookup(name)
		cs.EachIdentity(func(char, latin1 rune) {
			t.Errorf("charset %s is curated, but has identity pair %#U", name, char)
		})
	}
}

func TestRepertoire(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tofu.charset")
	defer teardown()
	latin5, _ := Lookup("latin-5")
	rep := latin5.Repertoire()
	if len(rep) != 6 {
		t.Errorf("latin-5 substitutes 6 characters, repertoire has %d", len(rep))
	}
	for i := 1; i < len(rep); i++ {
		if rep[i-1] >= rep[i] {
			t.Fatalf("repertoire is not sorted at %#U", rep[i])
		}
	}
	hebrew, _ := Lookup("hebrew")
	if len(hebrew.Repertoire()) != len(hebrew.Entries()) {
		t.Errorf("curated repertoire should equal the authored entries")
	}
}

func TestOwner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tofu.charset")
	defer teardown()
	cases := []struct {
		char rune
		set  string
	}{
		{'ą', "latin-2"}, // shared with latin-4, first registration wins
		{'ħ', "latin-3"},
		{'ж', "cyrillic"},
		{'א', "hebrew"},
		{'ف', "arabic"},
	}
	for _, c := range cases {
		cs, ok := Owner(c.char)
		if !ok {
			t.Errorf("no owner found for %#U", c.char)
			continue
		}
		if cs.Name() != c.set {
			t.Errorf("owner of %#U is %s, expected %s", c.char, cs.Name(), c.set)
		}
	}
	if _, ok := Owner('x'); ok {
		t.Error("plain ASCII characters should not have an owning charset")
	}
}

func TestForLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tofu.charset")
	defer teardown()
	cases := []struct {
		lang language.Tag
		set  string
	}{
		{language.Polish, "latin-2"},
		{language.Turkish, "latin-5"},
		{language.Greek, "greek"},
		{language.Russian, "cyrillic"},
		{language.Arabic, "arabic"},
	}
	for _, c := range cases {
		cs, ok := ForLanguage(c.lang)
		if !ok {
			t.Errorf("no charset found for language %s", c.lang)
			continue
		}
		if cs.Name() != c.set {
			t.Errorf("charset for %s is %s, expected %s", c.lang, cs.Name(), c.set)
		}
	}
	if _, ok := ForLanguage(language.Japanese); ok {
		t.Error("no supported charset covers Japanese")
	}
}

func TestEntriesAreConsistent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tofu.charset")
	defer teardown()
	for _, cs := range All() {
		mnemonics := make(map[string]rune)
		for _, e := range cs.Entries() {
			if e.Char < 0x100 {
				t.Errorf("%s: entry for %#U, but characters below U+0100 display everywhere",
					cs.Name(), e.Char)
			}
			if e.IsChar() == (e.Mnemonic != "") {
				t.Errorf("%s: entry for %#U must set exactly one of display char and mnemonic",
					cs.Name(), e.Char)
			}
			if e.Mnemonic == "" {
				continue
			}
			if prev, ok := mnemonics[e.Mnemonic]; ok {
				t.Errorf("%s: mnemonic %q assigned to both %#U and %#U",
					cs.Name(), e.Mnemonic, prev, e.Char)
			}
			mnemonics[e.Mnemonic] = e.Char
		}
		if !cs.HasIdentityRange() && len(cs.Entries()) == 0 {
			t.Errorf("%s: curated charset without entries", cs.Name())
		}
	}
}
