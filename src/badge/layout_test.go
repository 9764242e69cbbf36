package badge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundUpToOdd(t *testing.T) {
	assert.Equal(t, float32(23), roundUpToOdd(22))
	assert.Equal(t, float32(11), roundUpToOdd(11))
	assert.Equal(t, float32(1), roundUpToOdd(0))
	assert.Equal(t, float32(61.5), roundUpToOdd(61.5))
}

func TestLayoutLabelAndMessage(t *testing.T) {
	g := Layout(Spec{Label: "Last Online", Message: "2 hours ago", Colour: "#887ee0"})

	assert.Equal(t, float32(61.54736328125), g.LabelWidth)
	assert.Equal(t, float32(65.58642578125), g.MessageWidth)
	assert.Equal(t, float32(71.54736328125), g.LeftWidth)
	assert.Equal(t, float32(75.58642578125), g.RightWidth)
	assert.Equal(t, g.LeftWidth+g.RightWidth, g.TotalWidth)
	assert.Equal(t, float32(1), g.LabelMargin)
	assert.Equal(t, float32(70.54736328125), g.MessageMargin)
	assert.Equal(t, "Last Online: 2 hours ago", g.AccessibleText)
	assert.Equal(t, "#555", g.LabelColour)
	assert.Equal(t, "#887ee0", g.Colour)
	assert.False(t, g.HasLogo)
}

func TestLayoutWithoutLabel(t *testing.T) {
	g := Layout(Spec{Message: "Error", Colour: "#FF0000"})

	assert.Zero(t, g.LeftWidth)
	assert.Zero(t, g.LabelWidth)
	assert.Equal(t, float32(37.60205078125), g.RightWidth)
	assert.Equal(t, g.RightWidth, g.TotalWidth)
	assert.Equal(t, float32(0), g.MessageMargin)
	assert.Equal(t, "Error", g.AccessibleText)
	assert.Equal(t, "#FF0000", g.LabelColour, "label-less badges are a single pill")
}

func TestLayoutDefaults(t *testing.T) {
	g := Layout(Spec{Label: "build", Message: "passing"})
	assert.Equal(t, DefaultColour, g.Colour)
	assert.Equal(t, DefaultLabelColour, g.LabelColour)

	g = Layout(Spec{Message: "passing"})
	assert.Equal(t, DefaultColour, g.LabelColour)
}

func TestLayoutLogoWithLabel(t *testing.T) {
	g := Layout(Spec{Label: "Last Online", Message: "2 hours ago", Logo: "data:image/png;base64,AAAA"})

	assert.True(t, g.HasLogo)
	assert.Equal(t, float32(14), g.LogoWidth)
	assert.Equal(t, float32(18), g.LabelMargin, "logo width plus padding plus one")
	assert.Equal(t, float32(88.54736328125), g.LeftWidth)
	assert.Equal(t, float32(75.58642578125), g.RightWidth)
	assert.Equal(t, float32(87.54736328125), g.MessageMargin)
}

func TestLayoutLogoWithoutLabel(t *testing.T) {
	g := Layout(Spec{Message: "Error", Logo: "data:image/png;base64,AAAA"})

	assert.Zero(t, g.LeftWidth)
	assert.Equal(t, float32(15), g.LabelMargin)
	assert.Equal(t, float32(18), g.MessageMargin)
	assert.Equal(t, float32(55.60205078125), g.RightWidth)
	assert.Equal(t, "#555", g.LabelColour)
}

func TestLayoutCustomLogoWidth(t *testing.T) {
	g := Layout(Spec{Label: "a", Message: "b", Logo: "x", LogoWidth: 20})
	assert.Equal(t, float32(20), g.LogoWidth)
	assert.Equal(t, float32(24), g.LabelMargin)
}

func TestLayoutOddWidths(t *testing.T) {
	for _, text := range []string{"——", "©", "—", "ab", "Total Beats"} {
		g := Layout(Spec{Label: text, Message: text})
		w := Measure(text)
		assert.Contains(t, []float32{w, w + 1}, g.LabelWidth, text)
		assert.Equal(t, g.LabelWidth, g.MessageWidth)
		if w == float32(int(w)) {
			assert.Equal(t, 1, int(g.LabelWidth)%2, "%q should be odd, got %v", text, g.LabelWidth)
		}
	}
}

func TestLayoutWidthAdditivity(t *testing.T) {
	specs := []Spec{
		{Label: "Total Beats", Message: "12,345", Colour: "#6495ed"},
		{Message: "Error"},
		{Label: "x", Message: ""},
		{Label: "", Message: "", Logo: "l"},
		{Label: "Visits", Message: "1,024", Logo: "l", LogoWidth: 9},
	}
	for _, s := range specs {
		g := Layout(s)
		assert.Equal(t, g.LeftWidth+g.RightWidth, g.TotalWidth, "%+v", s)
	}
}

func TestEngineUsesItsMetrics(t *testing.T) {
	m, err := NewFontMetrics("mono", []GlyphWidth{{Low: ' ', High: '~', Width: 6}})
	assert.NoError(t, err)

	g := New(m).Layout(Spec{Label: "abc", Message: "de"})
	assert.Equal(t, float32(19), g.LabelWidth)
	assert.Equal(t, float32(13), g.MessageWidth)
	assert.Same(t, Verdana, New(nil).Metrics())
}
