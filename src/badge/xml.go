package badge

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Node is a piece of an SVG document tree.
type Node interface {
	render(b *strings.Builder)
}

// Text is escaped character data.
type Text string

func (t Text) render(b *strings.Builder) {
	b.WriteString(xmlEscape(string(t)))
}

// List renders its nodes in order with no wrapping element.
type List []Node

func (l List) render(b *strings.Builder) {
	for _, n := range l {
		if n != nil {
			n.render(b)
		}
	}
}

type attr struct {
	key   string
	value string
}

// Element is a named node with ordered attributes and children.
type Element struct {
	Name     string
	attrs    []attr
	Children []Node
}

// NewElement creates an element with the given children.
func NewElement(name string, children ...Node) *Element {
	return &Element{Name: name, Children: children}
}

// Attr sets key to value. Values that read as numbers are written with two
// decimals. Setting an existing key replaces it in place.
func (e *Element) Attr(key string, value any) *Element {
	v := formatAttr(value)
	for i := range e.attrs {
		if e.attrs[i].key == key {
			e.attrs[i].value = v
			return e
		}
	}
	e.attrs = append(e.attrs, attr{key: key, value: v})
	return e
}

// Get returns the formatted value of key.
func (e *Element) Get(key string) (string, bool) {
	for _, a := range e.attrs {
		if a.key == key {
			return a.value, true
		}
	}
	return "", false
}

// Append adds children to the element.
func (e *Element) Append(children ...Node) *Element {
	e.Children = append(e.Children, children...)
	return e
}

func (e *Element) render(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.Name)
	for _, a := range e.attrs {
		b.WriteByte(' ')
		b.WriteString(a.key)
		b.WriteString(`="`)
		b.WriteString(xmlEscape(a.value))
		b.WriteByte('"')
	}
	if len(e.Children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	for _, c := range e.Children {
		if c != nil {
			c.render(b)
		}
	}
	b.WriteString("</")
	b.WriteString(e.Name)
	b.WriteByte('>')
}

// Render serialises n and strips whitespace between tags.
func Render(n Node) string {
	var b strings.Builder
	if n != nil {
		n.render(&b)
	}
	return stripXMLWhitespace(b.String())
}

func formatAttr(value any) string {
	s := fmt.Sprint(value)
	if f, ok := parseNumber(s); ok {
		return strconv.FormatFloat(f, 'f', 2, 32)
	}
	return s
}

// parseNumber reports whether s reads as a finite decimal float.
func parseNumber(s string) (float64, bool) {
	if strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// xmlEscape escapes special XML characters in attribute values and text.
func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}

// Unicode White_Space, which RE2's \s does not cover.
const whitespace = `[\t\n\v\f\r\x{85}\p{Z}]+`

var (
	afterTag  = regexp.MustCompile(`>` + whitespace)
	beforeTag = regexp.MustCompile(whitespace + `<`)
)

func stripXMLWhitespace(s string) string {
	s = afterTag.ReplaceAllLiteralString(s, ">")
	return beforeTag.ReplaceAllLiteralString(s, "<")
}
