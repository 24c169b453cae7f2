package session

import (
	"context"

	"github.com/sthiel/mentiq/internal/screen"
	"github.com/sthiel/mentiq/internal/screens/result"
)

// resultScreen builds the screen that takes over after submission. The
// review and close behaviors close over the runner so the result
// package stays independent of this one.
func (s *ExamScreen) resultScreen(msg submittedMsg) screen.Screen {
	r := s.runner
	log := s.log

	notice := ""
	if msg.SaveErr != nil {
		notice = "This result could not be written to history."
	}

	return result.New(msg.Data, notice, result.Actions{
		Review: func() screen.Screen {
			r.EnterReview()
			return NewReview(r, log)
		},
		Close: func() {
			r.ConsumeResult(context.Background())
		},
	})
}
