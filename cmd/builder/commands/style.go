package commands

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette.
var (
	colorAccent = lipgloss.Color("#8B5CF6")
	colorMuted  = lipgloss.Color("#667085")
)

// DefaultMarker flags the default configuration in listings.
const DefaultMarker = "●"

// newRenderer returns a renderer for w. Colors are dropped when w is not a
// terminal or NO_COLOR is set.
func newRenderer(w io.Writer) *lipgloss.Renderer {
	profile := termenv.NewOutput(w).EnvColorProfile()
	return lipgloss.NewRenderer(w, termenv.WithProfile(profile))
}
