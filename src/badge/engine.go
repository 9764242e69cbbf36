package badge

// Engine lays out and renders badges against one font metrics table.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	metrics *FontMetrics
}

var defaultEngine = New(Verdana)

// New creates a badge engine with the given font metrics. A nil table
// selects Verdana.
func New(metrics *FontMetrics) *Engine {
	if metrics == nil {
		metrics = Verdana
	}
	return &Engine{metrics: metrics}
}

// Metrics returns the table the engine measures with.
func (e *Engine) Metrics() *FontMetrics { return e.metrics }

// Generate produces a minified shields.io-compatible SVG badge.
func (e *Engine) Generate(s Spec) string {
	return Render(document(e.Layout(s), s))
}

// RenderBadge renders a badge with the built-in Verdana metrics.
func RenderBadge(label, message, colour, labelColour, logo string, logoWidth float32) string {
	return defaultEngine.Generate(Spec{
		Label:       label,
		Message:     message,
		Colour:      colour,
		LabelColour: labelColour,
		Logo:        logo,
		LogoWidth:   logoWidth,
	})
}

// StatusColor maps a status keyword to a badge hex color.
func StatusColor(status string) string {
	switch status {
	case "passed", "success":
		return "#4c1"
	case "warning":
		return "#dfb317"
	case "critical", "failed":
		return "#e05d44"
	default:
		return "#4c1"
	}
}
