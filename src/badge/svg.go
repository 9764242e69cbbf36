package badge

// textElement renders the shadow and foreground text of one segment, or
// nothing when content is empty.
func textElement(margin float32, content, bg string, width float32) Node {
	if content == "" {
		return nil
	}
	textColour, shadowColour := coloursForBackground(bg)
	x := fontScaleUpFactor * (0.5*width + margin + HorizPadding)
	length := fontScaleUpFactor * width

	text := NewElement("text", Text(content)).
		Attr("x", x).
		Attr("y", 140.0+verticalMargin).
		Attr("transform", fontScaleDownValue).
		Attr("fill", textColour).
		Attr("textLength", length)

	if !shadow {
		return text
	}
	shadowText := NewElement("text", Text(content)).
		Attr("aria-hidden", true).
		Attr("x", x).
		Attr("y", 150.0+verticalMargin).
		Attr("transform", fontScaleDownValue).
		Attr("fill", shadowColour).
		Attr("fill-opacity", ".3").
		Attr("textLength", length)
	return List{shadowText, text}
}

func logoElement(g Geometry, logo string) Node {
	if !g.HasLogo {
		return nil
	}
	return NewElement("image").
		Attr("x", g.HorizPadding).
		Attr("y", 0.5*(g.Height-LogoHeight)).
		Attr("width", g.LogoWidth).
		Attr("height", LogoHeight).
		Attr("xlink:href", logo)
}

func gradient() *Element {
	return NewElement("linearGradient",
		NewElement("stop").
			Attr("offset", 0).
			Attr("stop-color", "#bbb").
			Attr("stop-opacity", ".1"),
		NewElement("stop").
			Attr("offset", 1).
			Attr("stop-opacity", ".1"),
	).
		Attr("id", "s").
		Attr("x2", 0).
		Attr("y2", "100%")
}

func clipPath(g Geometry) *Element {
	return NewElement("clipPath",
		NewElement("rect").
			Attr("width", g.TotalWidth).
			Attr("height", g.Height).
			Attr("rx", clipRadius).
			Attr("fill", "#fff"),
	).Attr("id", "r")
}

func background(g Geometry) *Element {
	return NewElement("g",
		NewElement("rect").
			Attr("width", g.LeftWidth).
			Attr("height", g.Height).
			Attr("fill", g.LabelColour),
		NewElement("rect").
			Attr("x", g.LeftWidth).
			Attr("width", g.RightWidth).
			Attr("height", g.Height).
			Attr("fill", g.Colour),
		NewElement("rect").
			Attr("width", g.TotalWidth).
			Attr("height", g.Height).
			Attr("fill", "url(#s)"),
	).Attr("clip-path", "url(#r)")
}

func foreground(g Geometry, s Spec) *Element {
	return NewElement("g",
		logoElement(g, s.Logo),
		textElement(g.LabelMargin, s.Label, g.LabelColour, g.LabelWidth),
		textElement(g.MessageMargin, s.Message, g.Colour, g.MessageWidth),
	).
		Attr("fill", "#fff").
		Attr("text-anchor", "middle").
		Attr("font-family", fontFamily).
		Attr("text-rendering", "geometricPrecision").
		Attr("font-size", fontSize)
}

// document builds the full SVG tree for a laid out badge.
func document(g Geometry, s Spec) *Element {
	return NewElement("svg",
		NewElement("title", Text(g.AccessibleText)),
		List{
			gradient(),
			clipPath(g),
			background(g),
			foreground(g, s),
		},
	).
		Attr("xmlns", "http://www.w3.org/2000/svg").
		Attr("xmlns:xlink", "http://www.w3.org/1999/xlink").
		Attr("width", g.TotalWidth).
		Attr("height", g.Height).
		Attr("role", "img").
		Attr("aria-label", g.AccessibleText)
}
