package charset

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMnemonicDecode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tofu.charset")
	defer teardown()
	ix := NewMnemonicIndex()
	hits := ix.Decode("a*")
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit for mnemonic \"a*\", have %d", len(hits))
	}
	if hits[0].Entry.Char != 'α' || hits[0].Set.Name() != "greek" {
		t.Errorf("mnemonic \"a*\" should resolve to Greek alpha, resolves to %#U", hits[0].Entry.Char)
	}
	if hits := ix.Decode("zzz"); hits != nil {
		t.Errorf("unused mnemonic should not resolve, got %v", hits)
	}
}

func TestMnemonicDecodeAmbiguous(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tofu.charset")
	defer teardown()
	ix := NewMnemonicIndex()
	hits := ix.Decode("S<")
	if len(hits) != 3 { // latin-2, latin-4 and latin-9 all know Š
		t.Fatalf("expected 3 hits for mnemonic \"S<\", have %d", len(hits))
	}
	for _, hit := range hits {
		if hit.Entry.Char != 'Š' {
			t.Errorf("mnemonic \"S<\" should resolve to 'Š', resolves to %#U in %s",
				hit.Entry.Char, hit.Set.Name())
		}
	}
}

func TestMnemonicAltForms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tofu.charset")
	defer teardown()
	ix := NewMnemonicIndex()
	hits := ix.Decode("TH")
	if len(hits) != 1 || hits[0].Entry.Char != 'Θ' {
		t.Errorf("alternative mnemonic \"TH\" should resolve to capital theta, got %v", hits)
	}
}

func TestMnemonicComplete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tofu.charset")
	defer teardown()
	latin2, _ := Lookup("latin-2")
	ix := NewMnemonicIndex(latin2)
	completions := ix.Complete("S")
	if len(completions) != 3 { // S' S, S<
		t.Fatalf("expected 3 completions of \"S\" in latin-2, have %v", completions)
	}
	for i := 1; i < len(completions); i++ {
		if completions[i-1] >= completions[i] {
			t.Errorf("completions are not sorted: %v", completions)
		}
	}
	if hits := ix.Decode("a*"); hits != nil {
		t.Error("index restricted to latin-2 should not know Greek mnemonics")
	}
}
