package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sthiel/mentiq/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}

// AnswerGrid renders one cell per question: the current one
// highlighted, answered ones filled, open ones dim. The session footer
// area uses it as a minimap.
type AnswerGrid struct {
	Answers []int // selected option per question, -1 for open
	Current int
}

// View renders the grid as a single row of cells.
func (g AnswerGrid) View() string {
	var b strings.Builder
	for i, a := range g.Answers {
		cell := "·"
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if a >= 0 {
			cell = "●"
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		if i == g.Current {
			cell = "◆"
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(cell))
		if i < len(g.Answers)-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}
