package session

// Navigator computes question index transitions. In normal mode movement
// seeks unanswered questions so a taker who skipped early items is routed
// back to them; in review mode (post-submission audit) movement is plain
// sequential.
type Navigator struct {
	current int
	n       int
	review  bool
}

// NewNavigator creates a navigator over n questions starting at index 0.
func NewNavigator(n int) *Navigator {
	return &Navigator{n: n}
}

// Current returns the current question index.
func (nav *Navigator) Current() int {
	return nav.current
}

// Len returns the number of questions navigated over.
func (nav *Navigator) Len() int {
	return nav.n
}

// SetReview switches between completion-seeking and sequential movement.
func (nav *Navigator) SetReview(on bool) {
	nav.review = on
}

// Review reports whether review mode is active.
func (nav *Navigator) Review() bool {
	return nav.review
}

// JumpTo moves directly to index i, clamped into [0, n-1].
func (nav *Navigator) JumpTo(i int) {
	if i < 0 {
		i = 0
	}
	if i > nav.n-1 {
		i = nav.n - 1
	}
	nav.current = i
}

// Previous moves one question back, clamped at 0.
func (nav *Navigator) Previous() {
	nav.JumpTo(nav.current - 1)
}

// Next advances. Review mode steps to the following question; normal
// mode seeks the next unanswered slot, wrapping past the end. With a
// fully answered sheet in normal mode the position does not move.
func (nav *Navigator) Next(sheet *AnswerSheet) {
	if nav.review {
		nav.JumpTo(nav.current + 1)
		return
	}
	target := nav.FindNextUnanswered(nav.wrap(nav.current+1), sheet)
	if target >= 0 {
		nav.current = target
	}
}

// FindNextUnanswered scans from `from` to the end of the sheet, then
// wraps and scans from 0 up to `from`. Returns -1 when every slot is
// answered.
func (nav *Navigator) FindNextUnanswered(from int, sheet *AnswerSheet) int {
	if nav.n == 0 {
		return -1
	}
	from = nav.wrap(from)
	for i := from; i < nav.n; i++ {
		if sheet.At(i) < 0 {
			return i
		}
	}
	for i := 0; i < from; i++ {
		if sheet.At(i) < 0 {
			return i
		}
	}
	return -1
}

func (nav *Navigator) wrap(i int) int {
	if nav.n == 0 {
		return 0
	}
	i %= nav.n
	if i < 0 {
		i += nav.n
	}
	return i
}
