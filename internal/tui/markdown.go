package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// DefaultMarkdownStyle is the glamour style used for slide text.
const DefaultMarkdownStyle = "dark"

// minWrapWidth keeps glamour from wrapping every word on tiny terminals.
const minWrapWidth = 16

// markdownRenderer renders slide text with glamour. The renderer is rebuilt
// when the wrap width changes and rendered blocks are memoized per width.
type markdownRenderer struct {
	// style is a glamour standard style name.
	style string
	// width is the wrap width of renderer.
	width int
	// renderer is the glamour renderer for width.
	renderer *glamour.TermRenderer
	// rendered caches output by source text.
	rendered map[string]string
}

// newMarkdownRenderer creates a renderer with the given glamour style.
func newMarkdownRenderer(style string) *markdownRenderer {
	if style == "" {
		style = DefaultMarkdownStyle
	}

	return &markdownRenderer{style: style}
}

// Render returns text rendered for width columns. On renderer failure the
// text is returned unchanged.
func (r *markdownRenderer) Render(text string, width int) string {
	width = max(width, minWrapWidth)

	if r.renderer == nil || r.width != width {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(r.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return text
		}

		r.renderer = renderer
		r.width = width
		r.rendered = make(map[string]string)
	}

	if out, ok := r.rendered[text]; ok {
		return out
	}

	out, err := r.renderer.Render(text)
	if err != nil {
		return text
	}

	out = strings.Trim(out, "\n")
	r.rendered[text] = out

	return out
}
