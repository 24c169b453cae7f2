package session

import (
	"time"

	"github.com/sthiel/mentiq/internal/score"
	"github.com/sthiel/mentiq/internal/store"
)

// startedMsg reports that the runner finished starting or resuming.
type startedMsg struct {
	Resumed bool
}

// clockTickMsg drives the once-per-second clock evaluation.
type clockTickMsg time.Time

// advanceMsg fires a scheduled auto-advance. Gen pins it to the answer
// that scheduled it; manual navigation bumps the counter so a stale
// advance is dropped instead of yanking the cursor.
type advanceMsg struct {
	Gen int
}

// submittedMsg carries the graded result back from the submit command.
type submittedMsg struct {
	Data    store.ResultData
	Result  *score.Result
	SaveErr error
}
