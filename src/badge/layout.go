package badge

import "math"

// Fixed badge geometry.
const (
	Height       float32 = 20.0
	HorizPadding float32 = 5.0
	LogoHeight   float32 = 14.0
	DefaultLogoW float32 = 14.0

	logoPadding       float32 = 3.0
	verticalMargin    float32 = 0.0
	clipRadius        float32 = 3.0
	fontScaleUpFactor float32 = 10.0
)

const (
	DefaultColour      = "#4c1"
	DefaultLabelColour = "#555"

	fontFamily         = "Verdana,Geneva,DejaVu Sans,sans-serif"
	fontSize           = 110
	fontScaleDownValue = "scale(.1)"
	shadow             = true
)

// Spec is the caller-supplied badge content. Empty strings and a zero
// LogoWidth mean "not set".
type Spec struct {
	Label       string
	Message     string
	Colour      string  // message background, default #4c1
	LabelColour string  // label background, default #555
	Logo        string  // usually a base64 data URI, placed verbatim
	LogoWidth   float32 // default 14 when Logo is set
}

// Geometry is the computed layout of a two-segment badge.
type Geometry struct {
	HorizPadding   float32
	Height         float32
	LogoWidth      float32
	LabelMargin    float32
	MessageMargin  float32
	LabelWidth     float32
	MessageWidth   float32
	LeftWidth      float32
	RightWidth     float32
	TotalWidth     float32
	AccessibleText string
	Colour         string
	LabelColour    string
	HasLogo        bool
}

// roundUpToOdd bumps even values by one so segment widths land on odd pixels.
func roundUpToOdd(v float32) float32 {
	r := math.Mod(float64(v), 2)
	if r < 0 {
		r += 2
	}
	if r == 0 {
		return v + 1
	}
	return v
}

func (e *Engine) preferredWidth(text string) float32 {
	if text == "" {
		return 0
	}
	return roundUpToOdd(e.metrics.Measure(text))
}

func accessibleText(label, message string) string {
	if label == "" {
		return message
	}
	return label + ": " + message
}

// Layout computes badge geometry. It never fails: unset colours take their
// defaults and invalid ones only affect text contrast.
func (e *Engine) Layout(s Spec) Geometry {
	hasLogo := s.Logo != ""
	hasLabel := s.Label != ""

	logoWidth := s.LogoWidth
	if logoWidth == 0 && hasLogo {
		logoWidth = DefaultLogoW
	}
	var padding float32
	if hasLogo && hasLabel {
		padding = logoPadding
	}
	totalLogoWidth := logoWidth + padding

	colour := s.Colour
	if colour == "" {
		colour = DefaultColour
	}
	labelColour := colour
	if hasLabel || hasLogo {
		labelColour = s.LabelColour
		if labelColour == "" {
			labelColour = DefaultLabelColour
		}
	}

	labelWidth := e.preferredWidth(s.Label)
	var leftWidth float32
	if hasLabel {
		leftWidth = 2*HorizPadding + labelWidth + totalLogoWidth
	}

	messageWidth := e.preferredWidth(s.Message)
	messageMargin := leftWidth - float32(min(len(s.Message), 1))
	if !hasLabel {
		if hasLogo {
			messageMargin += totalLogoWidth + HorizPadding
		} else {
			messageMargin += 1.0
		}
	}

	rightWidth := 2*HorizPadding + messageWidth
	if hasLogo && !hasLabel {
		rightWidth += totalLogoWidth + HorizPadding - 1.0
	}

	return Geometry{
		HorizPadding:   HorizPadding,
		Height:         Height,
		LogoWidth:      logoWidth,
		LabelMargin:    totalLogoWidth + 1.0,
		MessageMargin:  messageMargin,
		LabelWidth:     labelWidth,
		MessageWidth:   messageWidth,
		LeftWidth:      leftWidth,
		RightWidth:     rightWidth,
		TotalWidth:     leftWidth + rightWidth,
		AccessibleText: accessibleText(s.Label, s.Message),
		Colour:         colour,
		LabelColour:    labelColour,
		HasLogo:        hasLogo,
	}
}

// Layout computes badge geometry against the built-in Verdana table.
func Layout(s Spec) Geometry {
	return defaultEngine.Layout(s)
}
