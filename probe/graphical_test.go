package probe

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tofu/font"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type GraphicalTestEnviron struct {
	suite.Suite
	gofont *font.ScalableFont
}

// listen for 'go test' command --> run test methods
func TestGraphicalProbe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tofu.probe")
	defer teardown()
	suite.Run(t, new(GraphicalTestEnviron))
}

// run once, before test suite methods
func (env *GraphicalTestEnviron) SetupSuite() {
	env.gofont = font.FallbackFont()
}

// --- Tests -----------------------------------------------------------------

func (env *GraphicalTestEnviron) TestSelectedFontCoverage() {
	p := GraphicalForFonts(env.gofont)
	env.True(p.CanDisplay('ą'), "Go fonts cover Latin extended")
	env.True(p.CanDisplay('α'), "Go fonts cover Greek")
	env.True(p.CanDisplay('ж'), "Go fonts cover Cyrillic")
	env.False(p.CanDisplay('א'), "Go fonts do not cover Hebrew")
}

func (env *GraphicalTestEnviron) TestFontsetFallthrough() {
	p := NewGraphical(nil, env.gofont)
	env.True(p.CanDisplay('ą'), "fontset fonts should be probed for coverage")
}

func (env *GraphicalTestEnviron) TestEmptyProbe() {
	p := NewGraphical(nil)
	env.True(p.CanDisplay('é'), "Latin-1 characters display everywhere")
	env.False(p.CanDisplay('ą'), "without fonts, nothing beyond Latin-1 displays")
}
