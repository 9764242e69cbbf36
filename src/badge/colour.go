package badge

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidColour is returned when a string is not a #RGB or #RRGGBB colour.
var ErrInvalidColour = errors.New("not a valid CSS colour")

// Colour is an RGB triple.
type Colour struct {
	R, G, B uint8
}

// String renders c as lower-case #rrggbb.
func (c Colour) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColour parses #RRGGBB or #RGB. Named colours, rgb() and anything else
// are rejected.
func ParseColour(s string) (Colour, error) {
	digits, ok := strings.CutPrefix(s, "#")
	if !ok {
		return Colour{}, invalidColour(s)
	}
	switch len(digits) {
	case 3:
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	case 6:
	default:
		return Colour{}, invalidColour(s)
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return Colour{}, invalidColour(s)
	}
	return Colour{R: b[0], G: b[1], B: b[2]}, nil
}

func invalidColour(s string) error {
	return fmt.Errorf("%s is %w", s, ErrInvalidColour)
}

// Brightness returns the perceptual brightness of a colour string. Empty or
// unparseable colours are treated as black.
func Brightness(s string) float32 {
	if s == "" {
		return 0
	}
	c, err := ParseColour(s)
	if err != nil {
		return 0
	}
	return (float32(c.R)*299 + float32(c.G)*587 + float32(c.B)*114) / 255000.0
}

const brightnessThreshold = 0.69

// coloursForBackground picks text and shadow colours that contrast with bg.
func coloursForBackground(bg string) (text, shadow string) {
	if Brightness(bg) <= brightnessThreshold {
		return "#fff", "#010101"
	}
	return "#333", "#ccc"
}
