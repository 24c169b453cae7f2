package session

import (
	"github.com/rs/zerolog"

	"github.com/sthiel/mentiq/internal/score"
)

// Hooks are optional callbacks fired on phase transitions. The UI and
// sound layers use them for feedback; the session itself never depends
// on their behavior and runs identically when they are nil.
type Hooks struct {
	RestStart func()
	RestEnd   func()
	TimeUp    func()

	// Completed is the result consumer. It is invoked exactly once per
	// submission with the final result and whatever identity metadata
	// the submission form collected.
	Completed func(*score.Result, score.Identity)
}

// fire runs a hook isolated from the state machine: a nil hook is a
// no-op and a panicking hook is logged, not propagated, so a cosmetic
// callback can never abort a transition.
func fire(log zerolog.Logger, name string, fn func()) {
	if fn == nil {
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			log.Warn().Str("hook", name).Any("panic", rec).Msg("hook panicked")
		}
	}()
	fn()
}
