// Package app wires the Bubble Tea root model: window sizing, the
// screen router and the persistent header/footer chrome.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sthiel/mentiq/internal/router"
	"github.com/sthiel/mentiq/internal/screen"
	"github.com/sthiel/mentiq/internal/screens/home"
	"github.com/sthiel/mentiq/internal/screens/welcome"
	"github.com/sthiel/mentiq/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model, opening on the splash screen.
func newAppModel(deps home.Deps) AppModel {
	splash := welcome.New(func() screen.Screen {
		return home.New(deps)
	})
	return AppModel{
		router: router.New(splash),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is owned by the screens: the exam screen turns it into a
		// confirm dialog, everything else into a pop. Ctrl+c quits, but
		// a screen holding unsaved state gets to checkpoint first.
		if msg.String() == "ctrl+c" {
			if qi, ok := m.router.Active().(screen.QuitInterceptor); ok {
				if cmd := qi.InterceptQuit(); cmd != nil {
					return m, cmd
				}
			}
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()

	title := ""
	if active != nil {
		title = active.Title()
	}

	// The splash draws full-bleed, without chrome.
	if title == "" {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	status := ""
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.HeaderStatus()
	}
	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps home.Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
