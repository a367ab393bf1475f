package display

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestStandardTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tofu.display")
	defer teardown()
	tab := NewTable()
	tab.Put('ą', "{a;}")
	tab.Put('Ą', "{A;}")
	if repl, ok := tab.Get('ą'); !ok || repl != "{a;}" {
		t.Errorf("table lookup for 'ą' returned %q, %v", repl, ok)
	}
	if _, ok := tab.Get('x'); ok {
		t.Error("table should not contain 'x'")
	}
	if tab.Len() != 2 {
		t.Errorf("table should hold 2 substitutions, holds %d", tab.Len())
	}
	tab.Clear('ą')
	if _, ok := tab.Get('ą'); ok {
		t.Error("cleared substitution should be gone")
	}
	tab.Clear('ą') // clearing twice is harmless
}

func TestTableWalksInOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tofu.display")
	defer teardown()
	tab := NewTable()
	tab.Put('ω', "{w*}")
	tab.Put('ą', "{a;}")
	tab.Put('č', "{c<}")
	var codes []rune
	tab.Each(func(code rune, repl string) {
		codes = append(codes, code)
	})
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("table walk is not in code point order: %#U after %#U", codes[i], codes[i-1])
		}
	}
}
