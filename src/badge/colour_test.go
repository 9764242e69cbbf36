package badge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColour(t *testing.T) {
	tests := []struct {
		in   string
		want Colour
	}{
		{"#4c1", Colour{0x44, 0xcc, 0x11}},
		{"#887ee0", Colour{0x88, 0x7e, 0xe0}},
		{"#FF0000", Colour{0xff, 0, 0}},
		{"#000", Colour{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColour(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColourRejects(t *testing.T) {
	for _, in := range []string{"", "notacolour", "red", "4c1", "#4c", "#4c11", "#ggg", "rgb(0,0,0)", "#1234567"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseColour(in)
			require.ErrorIs(t, err, ErrInvalidColour)
			assert.EqualError(t, err, in+" is not a valid CSS colour")
		})
	}
}

func TestColourRoundTrip(t *testing.T) {
	for _, s := range []string{"#887ee0", "#6495ED", "#000000", "#ffffff", "#0a0B0c"} {
		c, err := ParseColour(s)
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(s), c.String())
	}
}

func TestShortHexExpands(t *testing.T) {
	short, err := ParseColour("#abc")
	require.NoError(t, err)
	long, err := ParseColour("#aabbcc")
	require.NoError(t, err)
	assert.Equal(t, long, short)
}

func TestBrightness(t *testing.T) {
	assert.Equal(t, float32(0), Brightness(""))
	assert.Equal(t, float32(0), Brightness("notacolour"))
	assert.Equal(t, float32(0), Brightness("#000"))
	assert.InDelta(t, 1.0, Brightness("#fff"), 1e-6)
	assert.InDelta(t, 0.299, Brightness("#ff0000"), 1e-6)
}

func TestColoursForBackground(t *testing.T) {
	text, shadow := coloursForBackground("#555")
	assert.Equal(t, "#fff", text)
	assert.Equal(t, "#010101", shadow)

	text, shadow = coloursForBackground("#eee")
	assert.Equal(t, "#333", text)
	assert.Equal(t, "#ccc", shadow)

	text, _ = coloursForBackground("notacolour")
	assert.Equal(t, "#fff", text)
}
