package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/crossfeed/onboard/internal/catalog"
	"golang.org/x/term"
)

// Step descriptions are authored as markdown in the catalog; glamour turns
// them into styled terminal text.

const (
	// maxDetailWidth caps the wrap width so descriptions stay readable on
	// wide terminals
	maxDetailWidth = 74
	minDetailWidth = 20
)

// RenderStepDetail renders a step as a full detail block: title heading,
// description body, and the dashboard route to visit.
func RenderStepDetail(step catalog.StepDefinition) (string, error) {
	return RenderMarkdownWithWidth(StepDetailMarkdown(step), detailWidth())
}

// StepDetailMarkdown builds the markdown source for a step detail block.
// Exposed so hosts can fall back to the raw text when rendering fails.
func StepDetailMarkdown(step catalog.StepDefinition) string {
	return fmt.Sprintf("# %s\n\n%s\n\nDashboard route: `%s`\n",
		step.Title, step.Description, step.TargetRoute)
}

// RenderMarkdownWithWidth renders markdown wrapped to the given width.
// Blank input yields an empty string rather than an empty styled block.
func RenderMarkdownWithWidth(text string, width int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if width < minDetailWidth {
		width = minDetailWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(rendered, "\n"), nil
}

// detailWidth picks a wrap width from the current terminal, capped at
// maxDetailWidth. Non-terminal stdout gets the cap.
func detailWidth() int {
	width := maxDetailWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w-2 < width {
		width = w - 2
	}
	return width
}
