// Package home is the main menu: start or resume the test, revisit the
// saved result, browse history.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/sthiel/mentiq/internal/question"
	"github.com/sthiel/mentiq/internal/router"
	"github.com/sthiel/mentiq/internal/score"
	"github.com/sthiel/mentiq/internal/screen"
	"github.com/sthiel/mentiq/internal/screens/history"
	"github.com/sthiel/mentiq/internal/screens/result"
	sessionscreen "github.com/sthiel/mentiq/internal/screens/session"
	sess "github.com/sthiel/mentiq/internal/session"
	"github.com/sthiel/mentiq/internal/store"
	"github.com/sthiel/mentiq/internal/timer"
	"github.com/sthiel/mentiq/internal/ui/components"
	"github.com/sthiel/mentiq/internal/ui/layout"
	"github.com/sthiel/mentiq/internal/ui/theme"
)

// Deps are the injected collaborators for the home screen and every
// screen it launches.
type Deps struct {
	Set     *question.Set
	Snaps   sess.SnapshotStore
	Results store.ResultRepo
	Events  store.EventRepo
	Policy  score.Policy
	Log     zerolog.Logger
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps       Deps
	menu       components.Menu
	resumeInfo string
	lastLine   string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. Snapshot and history are read here, once,
// so the menu reflects what is actually on disk.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}
	ctx := context.Background()

	var snap *sess.Snapshot
	if deps.Snaps != nil {
		snap, _ = deps.Snaps.Load(ctx)
	}

	startLabel := "START TEST"
	if snap != nil && snap.InProgress() && len(snap.Answers) == deps.Set.Len() {
		startLabel = "RESUME TEST"
		h.resumeInfo = fmt.Sprintf("%d of %d answered  ·  %s left",
			snap.AnsweredCount(), len(snap.Answers),
			layout.FormatClock(snap.TotalSecs-snap.ElapsedSecs))
	}

	if deps.Results != nil {
		if last, err := deps.Results.Latest(ctx); err == nil && last != nil {
			h.lastLine = fmt.Sprintf("Last result: %d (%s)",
				last.Result.Index, last.Result.Classification)
		}
	}

	items := []components.MenuItem{
		{Label: startLabel, Action: h.startAction},
	}

	if snap != nil && snap.Completed {
		items = append(items, components.MenuItem{
			Label:  "VIEW SAVED RESULT",
			Action: h.savedResultAction,
		})
	}

	items = append(items,
		components.MenuItem{Label: "PAST RESULTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Results)}
			}
		}},
		components.MenuItem{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	h.menu = components.NewMenu(items)
	return h
}

// startAction launches a fresh runner; resuming is the runner's own
// decision based on the stored snapshot.
func (h *HomeScreen) startAction() tea.Cmd {
	runner := sess.NewRunner(h.deps.Set, timer.New(), h.deps.Snaps, sess.Hooks{}, h.deps.Log)
	runner.SetPolicy(h.deps.Policy)
	next := sessionscreen.New(runner, h.deps.Events, h.deps.Results, h.deps.Log)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

// savedResultAction reopens the most recent result for a completed but
// not yet viewed attempt. Closing it clears the completed snapshot.
func (h *HomeScreen) savedResultAction() tea.Cmd {
	deps := h.deps
	return func() tea.Msg {
		last, err := deps.Results.Latest(context.Background())
		if err != nil || last == nil {
			// Nothing to show; drop the stale marker.
			if err := deps.Snaps.Clear(context.Background()); err != nil {
				deps.Log.Warn().Err(err).Msg("clearing stale snapshot failed")
			}
			return router.PushScreenMsg{Screen: history.New(deps.Results)}
		}
		return router.PushScreenMsg{
			Screen: result.New(*last, "", result.Actions{
				Close: func() {
					if err := deps.Snaps.Clear(context.Background()); err != nil {
						deps.Log.Warn().Err(err).Msg("clearing viewed snapshot failed")
					}
				},
			}),
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	set := h.deps.Set

	var sections []string

	sections = append(sections, theme.Title.Render("MENTIQ"))
	sections = append(sections, theme.Subtitle.Render(fmt.Sprintf(
		"%s  ·  %d questions  ·  %s",
		set.Name, set.Len(), layout.FormatClock(set.TotalTimeSecs))))

	if h.resumeInfo != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(h.resumeInfo))
	}
	if h.lastLine != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(h.lastLine))
	}

	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
