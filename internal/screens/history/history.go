// Package history lists past graded attempts, newest first, and opens
// any of them in the result view.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sthiel/mentiq/internal/router"
	"github.com/sthiel/mentiq/internal/screen"
	"github.com/sthiel/mentiq/internal/screens/result"
	"github.com/sthiel/mentiq/internal/store"
	"github.com/sthiel/mentiq/internal/ui/layout"
	"github.com/sthiel/mentiq/internal/ui/theme"
)

const listLimit = 50

type historyLoadedMsg struct {
	Results []store.ResultData
	Err     error
}

// HistoryScreen displays past results.
type HistoryScreen struct {
	results  store.ResultRepo
	rows     []store.ResultData
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(results store.ResultRepo) *HistoryScreen {
	return &HistoryScreen{results: results}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		rows, err := s.results.List(context.Background(), listLimit)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Results: rows}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.rows = msg.Results
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.rows)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected >= len(s.rows) {
				return s, nil
			}
			row := s.rows[s.selected]
			return s, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: result.New(row, "", result.Actions{}),
				}
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.rows) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No results yet. Take the test!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, row := range s.rows {
		res := row.Result
		dateStr := row.TakenAt.Format("Jan 02, 2006 15:04")

		who := ""
		if row.Who.Name != "" {
			who = "  " + row.Who.Name
		}
		expired := ""
		if row.Expired {
			expired = "  (expired)"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  index %d  %d/%d  %s%s%s",
			prefix, dateStr, row.SetName, res.Index,
			res.RawScore, len(res.Answers),
			layout.FormatClock(res.TimeSpentSecs), who, expired)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
