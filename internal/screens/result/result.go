// Package result renders a graded attempt: the index, classification
// and per-category breakdown, either fresh from a submission or pulled
// back out of history.
package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sthiel/mentiq/internal/question"
	"github.com/sthiel/mentiq/internal/router"
	"github.com/sthiel/mentiq/internal/screen"
	"github.com/sthiel/mentiq/internal/store"
	"github.com/sthiel/mentiq/internal/ui/components"
	"github.com/sthiel/mentiq/internal/ui/layout"
	"github.com/sthiel/mentiq/internal/ui/theme"
)

// Actions are the optional behaviors the hosting flow wires in. A
// history view passes the zero value: no review, nothing to close out.
type Actions struct {
	// Review builds the read-only walkthrough screen. Nil hides the
	// review option.
	Review func() screen.Screen

	// Close runs once when the taker leaves the screen. The live flow
	// uses it to mark the stored attempt as viewed.
	Close func()
}

// ResultScreen displays one graded attempt.
type ResultScreen struct {
	data    store.ResultData
	notice  string
	actions Actions
	closed  bool
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a result screen. notice is an optional one-line warning
// shown under the scores.
func New(data store.ResultData, notice string, actions Actions) *ResultScreen {
	return &ResultScreen{
		data:    data,
		notice:  notice,
		actions: actions,
	}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Results"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if s.actions.Review != nil {
		hints = append(hints, layout.KeyHint{Key: "V", Description: "Review answers"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Done"})
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "v", "V":
		if s.actions.Review == nil {
			return s, nil
		}
		next := s.actions.Review()
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}
	case "esc", "enter", "q":
		s.close()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

// close runs the Close action exactly once.
func (s *ResultScreen) close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.actions.Close != nil {
		s.actions.Close()
	}
}

func (s *ResultScreen) View(width, height int) string {
	res := s.data.Result
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(fmt.Sprintf("%d", res.Index)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("%s  ·  %dth percentile", res.Classification, res.Percentile)))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("%d / %d correct  ·  %d%% accuracy  ·  %s",
		res.RawScore, len(res.Answers), res.AccuracyPercent,
		layout.FormatClock(res.TimeSpentSecs))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(stats)))
	b.WriteString("\n")

	if s.data.Expired {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Warning).Render("Submitted at time expiry")))
		b.WriteString("\n")
	}
	if s.data.Who.Name != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Taken by "+s.data.Who.Name)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(s.renderCategories(width))

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Warning).Render(s.notice)))
	}

	return b.String()
}

// renderCategories draws one bar per question kind, in display order.
func (s *ResultScreen) renderCategories(width int) string {
	res := s.data.Result
	barWidth := 40
	if width < 60 {
		barWidth = width - 20
	}

	var b strings.Builder
	for _, kind := range question.Kinds {
		cs, ok := res.Categories[kind]
		if !ok || cs.Total == 0 {
			continue
		}
		label := fmt.Sprintf("%-8s %d/%d", kind, cs.Correct, cs.Total)
		bar := components.NewProgressBar(label, float64(cs.Correct)/float64(cs.Total), false, barWidth)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}
	return b.String()
}
