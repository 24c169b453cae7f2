package session

import (
	"fmt"

	"github.com/sthiel/mentiq/internal/score"
)

// AnswerSheet is the fixed-size mapping from question index to selected
// option. Its length never changes for the lifetime of a session; a slot,
// once set, can be overwritten but never cleared back to unanswered.
type AnswerSheet struct {
	slots        []int
	justAnswered bool
}

// NewAnswerSheet creates a sheet with n unanswered slots.
func NewAnswerSheet(n int) *AnswerSheet {
	slots := make([]int, n)
	for i := range slots {
		slots[i] = score.Unanswered
	}
	return &AnswerSheet{slots: slots}
}

// RestoreAnswerSheet rebuilds a sheet from persisted slot values.
func RestoreAnswerSheet(values []int) *AnswerSheet {
	slots := make([]int, len(values))
	copy(slots, values)
	return &AnswerSheet{slots: slots}
}

// Select records an option for a question and raises the just-answered
// flag. Out-of-range indices are programming errors and panic; callers
// validate user input before reaching this point.
func (a *AnswerSheet) Select(questionIdx, optionIdx int) {
	if questionIdx < 0 || questionIdx >= len(a.slots) {
		panic(fmt.Sprintf("answer sheet: question index %d out of range [0,%d)", questionIdx, len(a.slots)))
	}
	if optionIdx < 0 {
		panic(fmt.Sprintf("answer sheet: negative option index %d", optionIdx))
	}
	a.slots[questionIdx] = optionIdx
	a.justAnswered = true
}

// At returns the selected option for a question, or score.Unanswered.
func (a *AnswerSheet) At(i int) int {
	return a.slots[i]
}

// Values returns a copy of all slots.
func (a *AnswerSheet) Values() []int {
	out := make([]int, len(a.slots))
	copy(out, a.slots)
	return out
}

// Len returns the number of slots.
func (a *AnswerSheet) Len() int {
	return len(a.slots)
}

// AnsweredCount returns how many slots have a selection.
func (a *AnswerSheet) AnsweredCount() int {
	n := 0
	for _, v := range a.slots {
		if v != score.Unanswered {
			n++
		}
	}
	return n
}

// IsComplete reports whether every slot has a selection.
func (a *AnswerSheet) IsComplete() bool {
	return a.AnsweredCount() == len(a.slots)
}

// TakeJustAnswered consumes the transient just-answered flag. It returns
// true at most once per Select, which is what gates auto-advance.
func (a *AnswerSheet) TakeJustAnswered() bool {
	was := a.justAnswered
	a.justAnswered = false
	return was
}
