/*
Package font loads and registers the fonts used for probing glyph coverage.

A "scalable font" is a variant of a typeface with a certain weight, slant,
etc. An example is "Helvetica regular". For deciding whether a surface can
display a character we only care about a font's character map, not about
sizing or rasterization, so this package handles fonts as parsed SFNT
containers without preparing faces.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package font

import (
	"io/ioutil"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tofu/core"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'tofu.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tofu.fonts")
}

// ScalableFont is a font backed by its SFNT container.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// LoadOpenTypeFont reads a font from a font file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := ioutil.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont interprets a byte sequence as an OpenType or TrueType
// font.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// Covers tells if the font maps code to a real glyph, i.e. not to the
// .notdef glyph.
func (sf *ScalableFont) Covers(code rune) bool {
	if sf == nil || sf.SFNT == nil {
		return false
	}
	var buf sfnt.Buffer // SFNT buffers are not safe for concurrent use
	gid, err := sf.SFNT.GlyphIndex(&buf, code)
	return err == nil && gid != 0
}

// FindSystemFont searches the system's font directories for a font with a
// matching file name.
func FindSystemFont(name string) (*ScalableFont, error) {
	fpath, err := findfont.Find(name)
	if err != nil || fpath == "" {
		return nil, core.WrapError(err, core.EMISSING, "font %s not found on system", name)
	}
	tracer().Debugf("%s is a system font", name)
	f, err := LoadOpenTypeFont(fpath)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "system font %s not loadable", name)
	}
	f.Fontname = name
	return f, nil
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Regular.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Regular",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return gofont
}

// --- Font Registry ---------------------------------------------------------

// Registry caches fonts by normalized name.
type Registry struct {
	sync.Mutex
	fonts map[string]*ScalableFont
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is the registry shared by all display sessions.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

func NewRegistry() *Registry {
	fr := &Registry{
		fonts: make(map[string]*ScalableFont),
	}
	return fr
}

func (fr *Registry) StoreFont(f *ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	fname := NormalizeFontname(f.Fontname)
	tracer().Debugf("registry stores font %s as %s", f.Fontname, fname)
	fr.fonts[fname] = f
}

// Font returns a font by name. Fonts already stored are returned from the
// registry, otherwise the system's font directories are searched. If no
// font can be found, Font returns the fallback font together with an
// error.
func (fr *Registry) Font(name string) (*ScalableFont, error) {
	fname := NormalizeFontname(name)
	fr.Lock()
	f, ok := fr.fonts[fname]
	fr.Unlock()
	if ok {
		tracer().Debugf("registry found font %s", fname)
		return f, nil
	}
	f, err := FindSystemFont(name)
	if err != nil {
		tracer().Infof("registry does not contain font %s", name)
		return FallbackFont(), err
	}
	fr.StoreFont(f)
	return f, nil
}

func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	fname = strings.ToLower(fname)
	return fname
}
