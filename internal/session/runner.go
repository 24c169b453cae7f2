// Package session owns the lifecycle of one test attempt: timing, answer
// state, checkpointing, the rest interlude, expiry and submission. It is
// UI-agnostic; the terminal screen drives it through discrete calls
// (tick, answer, navigate, teardown) and reads state back for rendering.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sthiel/mentiq/internal/question"
	"github.com/sthiel/mentiq/internal/score"
	"github.com/sthiel/mentiq/internal/timer"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseResting
	PhaseSubmitting
	PhaseExpired
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseResting:
		return "resting"
	case PhaseSubmitting:
		return "submitting"
	case PhaseExpired:
		return "expired"
	case PhaseCompleted:
		return "completed"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// CheckpointIntervalSecs is how often the periodic checkpoint writes a
// snapshot while the session is running.
const CheckpointIntervalSecs = 5

// AutoAdvanceDelay is how long selection feedback stays on screen before
// a scheduled auto-advance fires.
const AutoAdvanceDelay = 600 * time.Millisecond

// Runner is the session state machine. It composes the clock, the answer
// sheet and the navigator, and is the single source of truth for "time
// up" and "all answered". User-input-driven calls never return errors:
// invalid operations for the current phase are logged and ignored,
// because a crashed state machine would cost the taker their attempt.
type Runner struct {
	set    *question.Set
	clock  *timer.Clock
	sheet  *AnswerSheet
	nav    *Navigator
	snaps  SnapshotStore
	hooks  Hooks
	log    zerolog.Logger
	policy score.Policy
	now    func() time.Time

	id             string
	phase          Phase
	timeUpFired    bool
	restShown      bool
	restDisabled   bool
	timeSpent      int
	result         *score.Result
	lastCheckpoint int
}

// NewRunner creates an idle Runner. The clock is injected so tests can
// drive simulated time; no other component computes elapsed time.
func NewRunner(set *question.Set, clock *timer.Clock, snaps SnapshotStore, hooks Hooks, log zerolog.Logger) *Runner {
	return &Runner{
		set:   set,
		clock: clock,
		snaps: snaps,
		hooks: hooks,
		log:   log.With().Str("component", "session").Logger(),
		now:   time.Now,
	}
}

// SetPolicy configures scoring behavior. Must be called before Submit.
func (r *Runner) SetPolicy(p score.Policy) {
	r.policy = p
}

// Start moves Idle → Running. When a resumable snapshot for this set
// exists the session continues at its saved index, answers and elapsed
// time; otherwise a fresh attempt begins at question 0 with a zero
// clock. Returns whether a snapshot was resumed.
func (r *Runner) Start(ctx context.Context) bool {
	if r.phase != PhaseIdle {
		r.log.Info().Str("phase", r.phase.String()).Msg("start ignored")
		return false
	}

	r.id = uuid.New().String()
	n := r.set.Len()

	snap, err := r.snaps.Load(ctx)
	if err != nil {
		r.log.Info().Err(err).Msg("snapshot load failed, starting fresh")
		snap = nil
	}

	if snap != nil && snap.InProgress() && len(snap.Answers) == n && snap.TotalSecs == r.set.TotalTimeSecs {
		r.sheet = RestoreAnswerSheet(snap.Answers)
		r.nav = NewNavigator(n)
		r.nav.JumpTo(snap.CurrentIndex)
		// A resume past the halfway mark counts the interlude as spent;
		// it is offered at most once per logical session.
		r.restShown = snap.ElapsedSecs >= r.set.TotalTimeSecs/2
		r.clock.Start(snap.ElapsedSecs)
		r.lastCheckpoint = snap.ElapsedSecs
		r.phase = PhaseRunning
		r.log.Info().Str("session", r.id).Int("answered", snap.AnsweredCount()).Msg("resumed")
		return true
	}

	r.sheet = NewAnswerSheet(n)
	r.nav = NewNavigator(n)
	r.clock.Start(0)
	r.phase = PhaseRunning
	r.checkpoint(ctx)
	r.log.Info().Str("session", r.id).Msg("started fresh")
	return false
}

// Tick evaluates time-driven transitions. The cadence does not matter
// for correctness: elapsed time is recomputed from the clock reference,
// so a burst of late ticks lands on the same state as one on-time tick.
func (r *Runner) Tick(ctx context.Context) {
	if r.phase != PhaseRunning {
		return
	}
	elapsed := r.clock.Elapsed()

	if elapsed >= r.set.TotalTimeSecs {
		r.fireTimeUp(ctx)
		return
	}

	if !r.restShown && !r.restDisabled && !r.nav.Review() && elapsed >= r.set.TotalTimeSecs/2 {
		r.enterRest(ctx)
		return
	}

	if elapsed-r.lastCheckpoint >= CheckpointIntervalSecs {
		r.checkpoint(ctx)
	}
}

// Answer records an option selection for the current question. Accepted
// only while Running before expiry; elsewhere it is a logged no-op. The
// option index must be valid for the current question — screens validate
// key input before calling, so a violation panics as a programming error.
func (r *Runner) Answer(ctx context.Context, optionIdx int) {
	if r.phase != PhaseRunning || r.timeUpFired {
		r.log.Info().Str("phase", r.phase.String()).Int("option", optionIdx).Msg("answer ignored")
		return
	}
	q := r.set.At(r.nav.Current())
	if optionIdx < 0 || optionIdx >= len(q.Options) {
		panic(fmt.Sprintf("session: option %d out of range for question %s", optionIdx, q.ID))
	}
	r.sheet.Select(r.nav.Current(), optionIdx)
	r.checkpoint(ctx)
}

// AutoAdvanceTarget consumes the answer sheet's just-answered flag and
// computes where a scheduled auto-advance should land. ok is false when
// nothing is pending; submit is true when the sheet has no unanswered
// slot left and the session should move to submission instead.
func (r *Runner) AutoAdvanceTarget() (target int, submit, ok bool) {
	if r.sheet == nil || !r.sheet.TakeJustAnswered() {
		return 0, false, false
	}
	if r.nav.Review() {
		t := r.nav.Current() + 1
		if t > r.set.Len()-1 {
			t = r.set.Len() - 1
		}
		return t, false, true
	}
	t := r.nav.FindNextUnanswered(r.nav.Current()+1, r.sheet)
	if t < 0 {
		return 0, true, true
	}
	return t, false, true
}

// Next, Previous and JumpTo are manual navigation. They are valid while
// Running and while reviewing a completed session.
func (r *Runner) Next() {
	if !r.navigable() {
		return
	}
	r.nav.Next(r.sheet)
}

func (r *Runner) Previous() {
	if !r.navigable() {
		return
	}
	r.nav.Previous()
}

func (r *Runner) JumpTo(i int) {
	if !r.navigable() {
		return
	}
	r.nav.JumpTo(i)
}

func (r *Runner) navigable() bool {
	if r.nav == nil {
		return false
	}
	return r.phase == PhaseRunning || (r.phase == PhaseCompleted && r.nav.Review())
}

// enterRest pauses the clock for the halfway interlude. The sticky
// restShown flag makes the interlude fire at most once per session no
// matter how many ticks land past the midpoint.
func (r *Runner) enterRest(ctx context.Context) {
	r.restShown = true
	r.phase = PhaseResting
	r.clock.Pause()
	r.checkpoint(ctx)
	fire(r.log, "rest-start", r.hooks.RestStart)
}

// LeaveRest resumes Running from the interlude.
func (r *Runner) LeaveRest(ctx context.Context) {
	if r.phase != PhaseResting {
		r.log.Info().Str("phase", r.phase.String()).Msg("leave-rest ignored")
		return
	}
	r.clock.Start(r.clock.Elapsed())
	r.phase = PhaseRunning
	r.checkpoint(ctx)
	fire(r.log, "rest-end", r.hooks.RestEnd)
}

// DisableRest turns the interlude off for the remainder of this session.
// The choice is not persisted, so a restart offers the interlude again.
func (r *Runner) DisableRest() {
	r.restDisabled = true
}

// fireTimeUp is the single expiry path. The guard makes it idempotent:
// side effects (snapshot clear, hook) happen once even if several ticks
// observe an exhausted clock. An expired attempt cannot be resumed, only
// retaken or viewed, so the snapshot is cleared here.
func (r *Runner) fireTimeUp(ctx context.Context) {
	if r.timeUpFired {
		return
	}
	r.timeUpFired = true
	r.timeSpent = r.set.TotalTimeSecs
	r.clock.Pause()
	r.phase = PhaseExpired

	if err := r.snaps.Clear(ctx); err != nil {
		r.log.Warn().Err(err).Msg("clearing snapshot on expiry failed")
	}
	fire(r.log, "time-up", r.hooks.TimeUp)
}

// Submit finishes the session and grades it. Valid when every question
// is answered, or as the forced path out of Expired. Repeat calls return
// the already computed result. Completion is two-phase: the snapshot is
// marked completed here but only cleared once the taker actually views
// the result, so closing the result screen early resumes into a "view
// saved result" path instead of losing the attempt.
func (r *Runner) Submit(ctx context.Context, who score.Identity) *score.Result {
	switch r.phase {
	case PhaseSubmitting, PhaseCompleted:
		return r.result
	case PhaseRunning:
		if !r.sheet.IsComplete() {
			r.log.Info().Int("answered", r.sheet.AnsweredCount()).Msg("submit ignored, sheet incomplete")
			return nil
		}
	case PhaseExpired:
		// Forced submission of whatever was answered.
	default:
		r.log.Info().Str("phase", r.phase.String()).Msg("submit ignored")
		return nil
	}

	r.phase = PhaseSubmitting

	if r.clock.Running() {
		r.timeSpent = r.clock.Elapsed()
		r.clock.Pause()
	}

	if !r.timeUpFired {
		snap := r.buildSnapshot()
		snap.Completed = true
		snap.CompletedAt = r.now().Unix()
		if err := r.snaps.Save(ctx, snap); err != nil {
			r.log.Warn().Err(err).Msg("marking snapshot completed failed")
		}
	}

	r.result = score.Grade(r.set, r.sheet.Values(), r.timeSpent, r.policy)
	r.phase = PhaseCompleted

	res, id := r.result, who
	fire(r.log, "completed", func() {
		if r.hooks.Completed != nil {
			r.hooks.Completed(res, id)
		}
	})
	return r.result
}

// ConsumeResult clears the persisted snapshot once the taker has viewed
// the final result. This is the second half of two-phase completion.
func (r *Runner) ConsumeResult(ctx context.Context) {
	if r.phase != PhaseCompleted {
		r.log.Info().Str("phase", r.phase.String()).Msg("consume-result ignored")
		return
	}
	if err := r.snaps.Clear(ctx); err != nil {
		r.log.Warn().Err(err).Msg("clearing snapshot after viewing failed")
	}
}

// EnterReview switches a completed session into sequential audit mode.
func (r *Runner) EnterReview() {
	if r.phase != PhaseCompleted {
		r.log.Info().Str("phase", r.phase.String()).Msg("review ignored")
		return
	}
	r.nav.SetReview(true)
	r.nav.JumpTo(0)
}

// Restart discards everything and begins a fresh attempt: persistence
// cleared, sheet and clock reset, sticky guards rearmed.
func (r *Runner) Restart(ctx context.Context) {
	if err := r.snaps.Clear(ctx); err != nil {
		r.log.Warn().Err(err).Msg("clearing snapshot on restart failed")
	}
	r.id = uuid.New().String()
	r.sheet = NewAnswerSheet(r.set.Len())
	r.nav = NewNavigator(r.set.Len())
	r.clock.Reset()
	r.clock.Start(0)
	r.timeUpFired = false
	r.restShown = false
	r.restDisabled = false
	r.timeSpent = 0
	r.result = nil
	r.lastCheckpoint = 0
	r.phase = PhaseRunning
	r.checkpoint(ctx)
	r.log.Info().Str("session", r.id).Msg("restarted")
}

// Teardown is the host's "about to discard" signal. A running session
// gets one final checkpoint so nothing typed so far is lost.
func (r *Runner) Teardown(ctx context.Context) {
	if r.phase != PhaseRunning {
		return
	}
	r.checkpoint(ctx)
}

// checkpoint writes the current state as the single session snapshot.
// Writes are fire-and-forget: a failed save is logged and the session
// carries on, preferring degraded persistence over a crashed attempt.
func (r *Runner) checkpoint(ctx context.Context) {
	snap := r.buildSnapshot()
	r.lastCheckpoint = snap.ElapsedSecs
	if err := r.snaps.Save(ctx, snap); err != nil {
		r.log.Warn().Err(err).Msg("checkpoint failed")
	}
}

func (r *Runner) buildSnapshot() *Snapshot {
	elapsed := r.clock.Elapsed()
	if elapsed > r.set.TotalTimeSecs {
		elapsed = r.set.TotalTimeSecs
	}
	return &Snapshot{
		CurrentIndex: r.nav.Current(),
		Answers:      r.sheet.Values(),
		ElapsedSecs:  elapsed,
		TotalSecs:    r.set.TotalTimeSecs,
	}
}

// Accessors used by screens.

func (r *Runner) ID() string                { return r.id }
func (r *Runner) Phase() Phase              { return r.phase }
func (r *Runner) Set() *question.Set        { return r.set }
func (r *Runner) Sheet() *AnswerSheet       { return r.sheet }
func (r *Runner) Current() int              { return r.nav.Current() }
func (r *Runner) Reviewing() bool           { return r.nav != nil && r.nav.Review() }
func (r *Runner) TimeUp() bool              { return r.timeUpFired }
func (r *Runner) Result() *score.Result     { return r.result }
func (r *Runner) TimeSpentSecs() int        { return r.timeSpent }

// Elapsed returns seconds on the clock; Remaining the seconds left.
func (r *Runner) Elapsed() int {
	return r.clock.Elapsed()
}

func (r *Runner) Remaining() int {
	rem := r.set.TotalTimeSecs - r.clock.Elapsed()
	if rem < 0 {
		return 0
	}
	return rem
}
