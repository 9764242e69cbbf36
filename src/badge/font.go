// Package badge renders shields.io-style flat SVG badges with text laid out
// against a static font metrics table.
package badge

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// GlyphWidth is a run of code points [Low, High] sharing one advance width.
type GlyphWidth struct {
	Low   rune
	High  rune
	Width float32
}

// FontMetrics is an immutable table of advance widths sorted by Low.
type FontMetrics struct {
	name     string
	entries  []GlyphWidth
	fallback float32 // width of 'm', used for unmapped runes
}

// Verdana is the built-in metrics table used by Measure and the default engine.
var Verdana = mustFontMetrics("Verdana", verdanaWidths)

// NewFontMetrics validates entries and builds a metrics table from them.
// The table must be sorted, non-overlapping and must map 'm'.
func NewFontMetrics(name string, entries []GlyphWidth) (*FontMetrics, error) {
	for i, e := range entries {
		if e.Low > e.High {
			return nil, fmt.Errorf("glyph range %d: low %U above high %U", i, e.Low, e.High)
		}
		if e.Width < 0 {
			return nil, fmt.Errorf("glyph range %d: negative width %g", i, e.Width)
		}
		if i > 0 && entries[i-1].High >= e.Low {
			return nil, fmt.Errorf("glyph range %d: %U overlaps or precedes previous range", i, e.Low)
		}
	}

	m := &FontMetrics{name: name, entries: entries}
	fallback, ok := m.lookup('m')
	if !ok {
		return nil, errors.New("metrics table does not map 'm'")
	}
	m.fallback = fallback
	return m, nil
}

func mustFontMetrics(name string, entries []GlyphWidth) *FontMetrics {
	m, err := NewFontMetrics(name, entries)
	if err != nil {
		panic(fmt.Sprintf("badge: %s metrics: %v", name, err))
	}
	return m
}

// Name returns the font family name the table was measured from.
func (m *FontMetrics) Name() string { return m.name }

// Entries returns a copy of the width runs.
func (m *FontMetrics) Entries() []GlyphWidth {
	out := make([]GlyphWidth, len(m.entries))
	copy(out, m.entries)
	return out
}

func isControl(r rune) bool {
	return r <= 31 || r == 127
}

// lookup binary-searches the runs for r. Control characters are zero width.
func (m *FontMetrics) lookup(r rune) (float32, bool) {
	if isControl(r) {
		return 0, true
	}
	// first run starting after r; the candidate is the one before it
	i := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].Low > r
	})
	if i == 0 {
		return 0, false
	}
	e := m.entries[i-1]
	if r >= e.Low && r <= e.High {
		return e.Width, true
	}
	return 0, false
}

// WidthOf returns the advance width of r and whether the table maps it.
func (m *FontMetrics) WidthOf(r rune) (float32, bool) {
	return m.lookup(r)
}

// Measure sums the advance widths of each rune in s. Unmapped runes count
// as the width of 'm'.
func (m *FontMetrics) Measure(s string) float32 {
	var w float32
	for _, r := range s {
		if adv, ok := m.lookup(r); ok {
			w += adv
		} else {
			w += m.fallback
		}
	}
	return w
}

// Measure returns the width of s in the built-in Verdana table.
func Measure(s string) float32 {
	return Verdana.Measure(s)
}

// measuredRanges are the code point ranges sampled from a font file.
var measuredRanges = [][2]rune{
	{0x20, 0x7e},
	{0xa0, 0xff},
	{0x2013, 0x2026},
	{0x20ac, 0x20ac},
	{0x2122, 0x2122},
}

// LoadFont parses a TTF/OTF and measures glyph advances at the given pixel
// size, producing a metrics table in the same units as Verdana.
func LoadFont(name string, data []byte, size float64) (*FontMetrics, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", name, err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size: size,
		DPI:  72,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face for %s: %w", name, err)
	}
	defer face.Close()

	var entries []GlyphWidth
	for _, rng := range measuredRanges {
		for r := rng[0]; r <= rng[1]; r++ {
			adv, ok := face.GlyphAdvance(r)
			if !ok {
				continue
			}
			px := float32(adv) / 64.0 // fixed.Int26_6
			if n := len(entries); n > 0 && entries[n-1].High == r-1 && entries[n-1].Width == px {
				entries[n-1].High = r
				continue
			}
			entries = append(entries, GlyphWidth{Low: r, High: r, Width: px})
		}
	}

	familyName := name
	buf := &sfnt.Buffer{}
	if n, err := f.Name(buf, sfnt.NameIDFamily); err == nil && n != "" {
		familyName = n
	}

	m, err := NewFontMetrics(familyName, entries)
	if err != nil {
		return nil, fmt.Errorf("measuring %s: %w", name, err)
	}
	return m, nil
}

// LoadFontFile loads a TTF/OTF from a filesystem path.
func LoadFontFile(path string, size float64) (*FontMetrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font file %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return LoadFont(name, data, size)
}

var _ font.Face = (*opentype.Face)(nil)
