package session

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sthiel/mentiq/internal/score"
	"github.com/sthiel/mentiq/internal/ui/components"
	"github.com/sthiel/mentiq/internal/ui/theme"
)

// identityForm collects optional taker metadata before grading. Every
// field may be left blank; the form never blocks submission.
type identityForm struct {
	labels [3]string
	inputs [3]components.TextInput
	focus  int
	forced bool
}

func newIdentityForm(forced bool) *identityForm {
	f := &identityForm{
		labels: [3]string{"Name", "Age", "Location"},
		forced: forced,
	}
	f.inputs[0] = components.NewTextInput("Optional", false, 40)
	f.inputs[1] = components.NewTextInput("Optional", true, 3)
	f.inputs[2] = components.NewTextInput("Optional", false, 40)
	f.inputs[1].Blur()
	f.inputs[2].Blur()
	return f
}

func (f *identityForm) focusCmd() tea.Cmd {
	return f.inputs[f.focus].Init()
}

// handleKey processes one key. done means submit now; cancelled means
// drop the form and return to the questions.
func (f *identityForm) handleKey(msg tea.KeyMsg) (done, cancelled bool, cmd tea.Cmd) {
	switch msg.String() {
	case "esc":
		if !f.forced {
			return false, true, nil
		}
		return false, false, nil
	case "enter":
		if f.focus == len(f.inputs)-1 {
			return true, false, nil
		}
		return false, false, f.setFocus(f.focus + 1)
	case "tab", "down":
		return false, false, f.setFocus((f.focus + 1) % len(f.inputs))
	case "shift+tab", "up":
		return false, false, f.setFocus((f.focus + len(f.inputs) - 1) % len(f.inputs))
	}

	var c tea.Cmd
	f.inputs[f.focus], c = f.inputs[f.focus].Update(msg)
	return false, false, c
}

func (f *identityForm) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[f.focus].Focus()
}

// forward passes non-key messages (cursor blink) to the focused input.
func (f *identityForm) forward(msg tea.Msg) tea.Cmd {
	var c tea.Cmd
	f.inputs[f.focus], c = f.inputs[f.focus].Update(msg)
	return c
}

func (f *identityForm) identity() score.Identity {
	return score.Identity{
		Name:     strings.TrimSpace(f.inputs[0].Value()),
		Age:      strings.TrimSpace(f.inputs[1].Value()),
		Location: strings.TrimSpace(f.inputs[2].Value()),
	}
}

// View renders the form fields with the focused label highlighted.
func (f *identityForm) View() string {
	var b strings.Builder
	for i := range f.inputs {
		labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == f.focus {
			labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(labelStyle.Render(f.labels[i]))
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		if i < len(f.inputs)-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
