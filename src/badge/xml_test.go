package badge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementRender(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "self closing",
			node: NewElement("rect").Attr("fill", "#fff"),
			want: `<rect fill="#fff"/>`,
		},
		{
			name: "numbers get two decimals",
			node: NewElement("rect").Attr("width", 61.5).Attr("rx", 3).Attr("opacity", ".3"),
			want: `<rect width="61.50" rx="3.00" opacity="0.30"/>`,
		},
		{
			name: "non numbers pass through",
			node: NewElement("g").Attr("y2", "100%").Attr("hidden", true).Attr("t", "scale(.1)").Attr("n", "NaN"),
			want: `<g y2="100%" hidden="true" t="scale(.1)" n="NaN"/>`,
		},
		{
			name: "nested with text",
			node: NewElement("title", Text("a & b")),
			want: `<title>a &amp; b</title>`,
		},
		{
			name: "lists flatten",
			node: NewElement("g", List{NewElement("a"), nil, NewElement("b")}),
			want: `<g><a/><b/></g>`,
		},
		{
			name: "attribute values are escaped",
			node: NewElement("text").Attr("aria-label", `<"it's">`),
			want: `<text aria-label="&lt;&quot;it&apos;s&quot;&gt;"/>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.node))
		})
	}
}

func TestAttrReplacesInPlace(t *testing.T) {
	e := NewElement("rect").Attr("a", "1x").Attr("b", "2x").Attr("a", "3x")
	assert.Equal(t, `<rect a="3x" b="2x"/>`, Render(e))

	v, ok := e.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "2x", v)
	_, ok = e.Get("c")
	assert.False(t, ok)
}

func TestWhitespaceBetweenTagsIsStripped(t *testing.T) {
	e := NewElement("g", Text("  padded \n"), NewElement("a"), Text("  "))
	assert.Equal(t, `<g>padded<a/></g>`, Render(e))
}

func TestEscapingLeavesNoRawSpecials(t *testing.T) {
	raw := `<script>alert("x" & 'y')</script>`
	out := xmlEscape(raw)
	for _, c := range []string{"<", ">", `"`, "'"} {
		assert.NotContains(t, out, c)
	}
	assert.Equal(t, strings.Count(out, "&"), strings.Count(out, ";"))
}

func TestRenderIsDeterministic(t *testing.T) {
	build := func() Node {
		return NewElement("svg", NewElement("title", Text("x")), List{NewElement("rect").Attr("width", 1.25)}).
			Attr("role", "img").Attr("width", 10)
	}
	n := build()
	assert.Equal(t, Render(n), Render(n))
	assert.Equal(t, Render(n), Render(build()))
}
