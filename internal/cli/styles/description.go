package styles

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// DescriptionWidth is the wrap width for rendered descriptions
const DescriptionWidth = 60

// Renderers are cached by width; building one parses a whole style sheet
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderDescription renders a markdown description wrapped to width.
// It falls back to the raw text when rendering fails and returns "" for an
// empty description.
func RenderDescription(description string, width int) string {
	if strings.TrimSpace(description) == "" {
		return ""
	}

	renderer, err := getRenderer(width)
	if err != nil {
		return description
	}
	rendered, err := renderer.Render(description)
	if err != nil {
		return description
	}
	return strings.TrimSpace(rendered)
}
