package probe

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tofu/core"
	"github.com/npillmayer/tofu/font"
)

func TestShapedCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tofu.probe")
	defer teardown()
	sc, err := NewShapedCoverage(font.FallbackFont())
	if err != nil {
		t.Fatalf("Go Regular should be shapeable: %v", err)
	}
	if !sc.Covers('A') || !sc.Covers('ą') {
		t.Error("shaping Latin characters with Go Regular should produce real glyphs")
	}
	if sc.Covers('א') {
		t.Error("shaping Hebrew with Go Regular should hit .notdef")
	}
}

func TestShapedCoverageWithoutFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tofu.probe")
	defer teardown()
	if _, err := NewShapedCoverage(nil); core.Code(err) != core.EMISSING {
		t.Errorf("expected EMISSING for missing font data, got %v", err)
	}
	var sc *ShapedCoverage
	if sc.Covers('A') {
		t.Error("nil coverage cannot cover anything")
	}
}
