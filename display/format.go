package display

import (
	"fmt"
	"strings"

	"github.com/npillmayer/tofu/charset"
)

// DefaultTemplate wraps mnemonics in curly braces, i.e. 'ą' is rendered
// as "{a;}".
const DefaultTemplate = "{%s}"

// Format controls how mnemonic substitutions are rendered. The zero value
// uses the default template and the primary mnemonic forms.
type Format struct {
	// Template must contain exactly one %s placeholder for the mnemonic.
	// Empty selects DefaultTemplate.
	Template string
	// LegacyMnemonics prefers the older transliteration-style mnemonic
	// forms over the primary ones, where an entry carries both.
	LegacyMnemonics bool
}

// Render wraps a mnemonic in the format's template. A malformed template
// is traced as an error and falls back to the default.
func (f Format) Render(mnemonic string) string {
	return fmt.Sprintf(f.template(), mnemonic)
}

// Mnemonic selects the mnemonic form of an entry according to the format.
func (f Format) Mnemonic(e charset.Entry) string {
	if f.LegacyMnemonics && e.Alt != "" {
		return e.Alt
	}
	return e.Mnemonic
}

func (f Format) template() string {
	if f.Template == "" {
		return DefaultTemplate
	}
	if strings.Count(f.Template, "%") != 1 || !strings.Contains(f.Template, "%s") {
		tracer().Errorf("display format %q needs exactly one %%s, using %q",
			f.Template, DefaultTemplate)
		return DefaultTemplate
	}
	return f.Template
}
