// ABOUTME: Progress bar widgets for completion displays
// ABOUTME: Renders a colored done/total ratio using block characters

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/liubkkkko/taskManager/internal/tui/styles"
)

// SimpleProgressBar renders a basic colored bar
func SimpleProgressBar(percent float64, width int, filledColor, emptyColor lipgloss.Color) string {
	if width <= 0 {
		width = 20
	}

	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100.0 * float64(width))

	var bar strings.Builder
	bar.WriteString("[")

	filledStyle := lipgloss.NewStyle().Foreground(filledColor)
	emptyStyle := lipgloss.NewStyle().Foreground(emptyColor)

	for i := 0; i < width; i++ {
		if i < filled {
			bar.WriteString(filledStyle.Render("█"))
		} else {
			bar.WriteString(emptyStyle.Render("░"))
		}
	}

	bar.WriteString("]")
	return bar.String()
}

// CompletionBar renders a done/total ratio with a count label, for showing
// how much of a job list is finished
func CompletionBar(done, total, width int) string {
	percent := 0.0
	if total > 0 {
		percent = float64(done) / float64(total) * 100
	}

	color := styles.Warning
	if total > 0 && done == total {
		color = styles.Secondary
	}

	bar := SimpleProgressBar(percent, width, color, lipgloss.Color("#374151"))
	label := lipgloss.NewStyle().Foreground(styles.Muted).Render(fmt.Sprintf("%d/%d done", done, total))

	return bar + " " + label
}
