package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/sthiel/mentiq/internal/session"
	"github.com/sthiel/mentiq/internal/ui/components"
	"github.com/sthiel/mentiq/internal/ui/layout"
	"github.com/sthiel/mentiq/internal/ui/theme"
)

// urgentThresholdSecs is when the countdown switches to the urgent style.
const urgentThresholdSecs = 60

func (s *ExamScreen) View(width, height int) string {
	if !s.started {
		return renderLoading(width)
	}
	if s.quitConfirm {
		return s.renderQuitConfirm(width, height)
	}
	if s.form != nil {
		return s.renderForm(width, height)
	}
	if s.review {
		return s.renderReview(width, height)
	}

	switch s.runner.Phase() {
	case sess.PhaseResting:
		return s.renderRest(width, height)
	case sess.PhaseExpired:
		return s.renderTimeUp(width, height)
	default:
		return s.renderQuestion(width, height)
	}
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render("\n\n  Preparing your test...")
}

// renderQuestion is the main exam view: info line, prompt with options,
// answer minimap, notice line.
func (s *ExamScreen) renderQuestion(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n\n")

	question := lipgloss.NewStyle().
		Width(width - 8).
		MarginLeft(4).
		Render(s.options.View())
	b.WriteString(question)
	b.WriteString("\n\n")

	grid := components.AnswerGrid{
		Answers: s.runner.Sheet().Values(),
		Current: s.runner.Current(),
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, grid.View()))

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(s.notice)))
	}

	return b.String()
}

// renderInfoLine shows position and kind on the left, countdown on the
// right edge.
func (s *ExamScreen) renderInfoLine(width int) string {
	q := s.runner.Set().At(s.runner.Current())
	left := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("    Question %d of %d  ·  %s  ·  %s",
			s.runner.Current()+1, s.runner.Set().Len(), q.Kind, q.Difficulty))

	remaining := s.runner.Remaining()
	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if remaining < urgentThresholdSecs {
		timerStyle = theme.Urgent
	}
	right := timerStyle.Render(layout.FormatClock(remaining) + "    ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (s *ExamScreen) renderRest(width, height int) string {
	answered := s.runner.Sheet().AnsweredCount()
	total := s.runner.Set().Len()

	content := theme.Title.Render("Halfway there") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Render(
			fmt.Sprintf("%d of %d answered. The clock is paused —\ntake a breather before the second half.", answered, total)) + "\n\n" +
		theme.Hint.Render("Enter to continue  ·  D to skip these breaks")

	return centerCard(content, width, height)
}

func (s *ExamScreen) renderTimeUp(width, height int) string {
	answered := s.runner.Sheet().AnsweredCount()
	total := s.runner.Set().Len()

	content := lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).Render("Time's up") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Render(
			fmt.Sprintf("You answered %d of %d questions.\nYour answers will be scored as they stand.", answered, total)) + "\n\n" +
		theme.Hint.Render("Enter to see your results")

	return centerCard(content, width, height)
}

func (s *ExamScreen) renderQuitConfirm(width, height int) string {
	keep := components.NewButton("Keep going (N)", s.quitFocus == 0, nil)
	leave := components.NewButton("Save & exit (Y)", s.quitFocus == 1, nil)

	content := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Leave the test?") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Your progress is saved. You can resume later\nexactly where you left off.") + "\n\n" +
		keep.View() + "   " + leave.View()

	return centerCard(content, width, height)
}

func (s *ExamScreen) renderForm(width, height int) string {
	title := "Ready to submit"
	if s.form.forced {
		title = "Time expired"
	}

	content := theme.Title.Render(title) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("A few optional details for your report:") + "\n\n" +
		s.form.View()

	return centerCard(content, width, height)
}

// renderReview shows one answered question with the correct option
// revealed and the explanation below.
func (s *ExamScreen) renderReview(width, height int) string {
	var b strings.Builder
	q := s.runner.Set().At(s.runner.Current())
	selected := s.runner.Sheet().At(s.runner.Current())

	verdict := theme.Incorrect.Render("✗ incorrect")
	switch {
	case selected == q.Correct:
		verdict = theme.Correct.Render("✓ correct")
	case selected < 0:
		verdict = lipgloss.NewStyle().Foreground(theme.TextDim).Render("— skipped")
	}

	b.WriteString("\n")
	left := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("    Question %d of %d  ·  %s", s.runner.Current()+1, s.runner.Set().Len(), q.Kind))
	gap := width - lipgloss.Width(left) - lipgloss.Width(verdict) - 4
	if gap < 1 {
		gap = 1
	}
	b.WriteString(left + strings.Repeat(" ", gap) + verdict + "    ")
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width - 8).
		MarginLeft(4).
		Render(s.options.View()))

	if q.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width-8).
			MarginLeft(4).
			Foreground(theme.TextDim).
			Italic(true).
			Render(q.Explanation))
	}

	return b.String()
}

// centerCard wraps content in the card style, centered in the area.
func centerCard(content string, width, height int) string {
	card := theme.Card.Align(lipgloss.Center).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
