package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sthiel/mentiq/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// OptionList is the answer selector for one question. During the test
// it only highlights the taker's own choice; with Reveal on (review
// mode) it additionally marks the correct option.
type OptionList struct {
	Prompt       string
	Options      []string
	CorrectIndex int

	// Cursor is the highlighted row.
	Cursor int

	// Chosen is the recorded answer, -1 when unanswered.
	Chosen int

	// Reveal switches to post-test rendering.
	Reveal bool

	// ReadOnly ignores selection keys; review mode sets it.
	ReadOnly bool
}

// NewOptionList creates an option list with nothing chosen.
func NewOptionList(prompt string, options []string, correctIndex int) OptionList {
	return OptionList{
		Prompt:       prompt,
		Options:      options,
		CorrectIndex: correctIndex,
		Chosen:       -1,
	}
}

// ChoiceMsg reports that the user picked an option.
type ChoiceMsg struct {
	Index int
}

// Update handles cursor movement and selection. Selection emits a
// ChoiceMsg; the parent screen owns what happens next.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "enter", " ":
		if o.ReadOnly {
			return o, nil
		}
		return o.choose(o.Cursor)
	default:
		if o.ReadOnly {
			return o, nil
		}
		// Direct letter selection: a-f.
		if len(key) == 1 && key[0] >= 'a' && key[0] < byte('a'+len(o.Options)) {
			return o.choose(int(key[0] - 'a'))
		}
	}

	return o, nil
}

func (o OptionList) choose(i int) (OptionList, tea.Cmd) {
	o.Chosen = i
	o.Cursor = i
	return o, func() tea.Msg { return ChoiceMsg{Index: i} }
}

// View renders the prompt and options.
func (o OptionList) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(o.Prompt) + "\n\n"

	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Cursor && !o.Reveal {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, optionLabels[i], opt)

		s += o.styleFor(i).Render(line) + "\n"
	}

	return s
}

func (o OptionList) styleFor(i int) lipgloss.Style {
	if o.Reveal {
		switch {
		case i == o.CorrectIndex:
			return theme.Correct
		case i == o.Chosen:
			return theme.Incorrect
		default:
			return lipgloss.NewStyle().Foreground(theme.TextDim)
		}
	}

	switch {
	case i == o.Chosen:
		return theme.Answered
	case i == o.Cursor:
		return theme.Selected
	default:
		return theme.Unselected
	}
}
