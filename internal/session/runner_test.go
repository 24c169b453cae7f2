package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sthiel/mentiq/internal/question"
	"github.com/sthiel/mentiq/internal/score"
	"github.com/sthiel/mentiq/internal/timer"
)

// memStore is an in-memory SnapshotStore that counts operations.
type memStore struct {
	snap   *Snapshot
	saves  int
	clears int
	err    error
}

func (m *memStore) Save(_ context.Context, s *Snapshot) error {
	if m.err != nil {
		return m.err
	}
	cp := *s
	cp.Answers = append([]int(nil), s.Answers...)
	m.snap = &cp
	m.saves++
	return nil
}

func (m *memStore) Load(_ context.Context) (*Snapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.snap, nil
}

func (m *memStore) Clear(_ context.Context) error {
	m.snap = nil
	m.clears++
	return nil
}

func testSet(n, totalSecs int) *question.Set {
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = question.Question{
			ID:         fmt.Sprintf("q-%02d", i+1),
			Kind:       question.KindLogic,
			Difficulty: question.DifficultyEasy,
			Prompt:     fmt.Sprintf("question %d", i+1),
			Options:    []string{"a", "b", "c", "d"},
			Correct:    1,
		}
	}
	return &question.Set{Name: "test", TotalTimeSecs: totalSecs, Questions: qs}
}

// harness bundles a runner with a controllable wall clock.
type harness struct {
	r     *Runner
	store *memStore
	at    time.Time
}

func newHarness(t *testing.T, n, totalSecs int) *harness {
	t.Helper()
	h := &harness{store: &memStore{}, at: time.Unix(1_700_000_000, 0)}
	clock := timer.NewWithNow(func() time.Time { return h.at })
	h.r = NewRunner(testSet(n, totalSecs), clock, h.store, Hooks{}, zerolog.Nop())
	h.r.now = func() time.Time { return h.at }
	return h
}

func (h *harness) advance(secs int) {
	h.at = h.at.Add(time.Duration(secs) * time.Second)
}

func TestStartFreshWritesInitialCheckpoint(t *testing.T) {
	h := newHarness(t, 4, 600)
	ctx := context.Background()

	if resumed := h.r.Start(ctx); resumed {
		t.Fatal("fresh start reported a resume")
	}
	if h.r.Phase() != PhaseRunning {
		t.Fatalf("phase = %s, want running", h.r.Phase())
	}
	if h.store.snap == nil {
		t.Fatal("no checkpoint written on fresh start")
	}
	if h.store.snap.AnsweredCount() != 0 || h.store.snap.CurrentIndex != 0 {
		t.Errorf("initial snapshot = %+v, want empty at index 0", h.store.snap)
	}
}

func TestStartResumesMatchingSnapshot(t *testing.T) {
	h := newHarness(t, 4, 600)
	ctx := context.Background()
	h.store.snap = &Snapshot{
		CurrentIndex: 2,
		Answers:      []int{1, score.Unanswered, 3, score.Unanswered},
		ElapsedSecs:  120,
		TotalSecs:    600,
	}

	if resumed := h.r.Start(ctx); !resumed {
		t.Fatal("matching in-progress snapshot was not resumed")
	}
	if h.r.Current() != 2 {
		t.Errorf("resumed at index %d, want 2", h.r.Current())
	}
	if got := h.r.Elapsed(); got != 120 {
		t.Errorf("resumed elapsed = %d, want 120", got)
	}
	if h.r.Sheet().AnsweredCount() != 2 {
		t.Errorf("resumed answered count = %d, want 2", h.r.Sheet().AnsweredCount())
	}
}

func TestStartIgnoresMismatchedSnapshot(t *testing.T) {
	h := newHarness(t, 4, 600)
	ctx := context.Background()
	// Snapshot from a different set shape: 6 answers vs 4 questions.
	h.store.snap = &Snapshot{
		CurrentIndex: 1,
		Answers:      []int{1, -1, -1, -1, -1, -1},
		ElapsedSecs:  30,
		TotalSecs:    600,
	}

	if resumed := h.r.Start(ctx); resumed {
		t.Fatal("mismatched snapshot was resumed")
	}
	if h.r.Sheet().Len() != 4 {
		t.Errorf("sheet length = %d, want fresh 4", h.r.Sheet().Len())
	}
}

func TestClockTracksSimulatedTimeThroughTicks(t *testing.T) {
	h := newHarness(t, 4, 600)
	ctx := context.Background()
	h.r.Start(ctx)

	h.advance(90)
	h.r.Tick(ctx)
	if got := h.r.Elapsed(); got != 90 {
		t.Errorf("Elapsed() = %d, want 90", got)
	}
	if got := h.r.Remaining(); got != 510 {
		t.Errorf("Remaining() = %d, want 510", got)
	}
}

func TestRestFiresOnceAtHalfway(t *testing.T) {
	restStarts := 0
	h := newHarness(t, 4, 600)
	h.r.hooks.RestStart = func() { restStarts++ }
	ctx := context.Background()
	h.r.Start(ctx)

	h.advance(300)
	h.r.Tick(ctx)
	if h.r.Phase() != PhaseResting {
		t.Fatalf("phase = %s at halfway, want resting", h.r.Phase())
	}
	if restStarts != 1 {
		t.Fatalf("rest-start hook fired %d times, want 1", restStarts)
	}

	// While resting the clock is frozen.
	h.advance(1000)
	if got := h.r.Elapsed(); got != 300 {
		t.Errorf("elapsed during rest = %d, want frozen at 300", got)
	}

	h.r.LeaveRest(ctx)
	if h.r.Phase() != PhaseRunning {
		t.Fatalf("phase after LeaveRest = %s, want running", h.r.Phase())
	}

	// Later ticks past the midpoint must not re-trigger the interlude.
	h.advance(10)
	h.r.Tick(ctx)
	if h.r.Phase() != PhaseRunning || restStarts != 1 {
		t.Errorf("rest re-triggered: phase=%s starts=%d", h.r.Phase(), restStarts)
	}
}

func TestDisableRestSkipsInterlude(t *testing.T) {
	h := newHarness(t, 4, 600)
	ctx := context.Background()
	h.r.Start(ctx)
	h.r.DisableRest()

	h.advance(301)
	h.r.Tick(ctx)
	if h.r.Phase() != PhaseRunning {
		t.Errorf("phase = %s with rest disabled, want running", h.r.Phase())
	}
}

func TestResumePastHalfwaySkipsRest(t *testing.T) {
	h := newHarness(t, 4, 600)
	ctx := context.Background()
	h.store.snap = &Snapshot{
		CurrentIndex: 1,
		Answers:      []int{1, score.Unanswered, score.Unanswered, score.Unanswered},
		ElapsedSecs:  400,
		TotalSecs:    600,
	}
	h.r.Start(ctx)

	h.advance(5)
	h.r.Tick(ctx)
	if h.r.Phase() != PhaseResting {
		return
	}
	t.Error("interlude offered again after resuming past the midpoint")
}

func TestTimeUpIsIdempotentAndClearsSnapshot(t *testing.T) {
	timeUps := 0
	h := newHarness(t, 4, 600)
	h.r.hooks.TimeUp = func() { timeUps++ }
	ctx := context.Background()
	h.r.Start(ctx)
	h.r.DisableRest()

	h.advance(600)
	h.r.Tick(ctx)
	h.r.Tick(ctx)
	h.r.Tick(ctx)

	if h.r.Phase() != PhaseExpired {
		t.Fatalf("phase = %s, want expired", h.r.Phase())
	}
	if timeUps != 1 {
		t.Errorf("time-up hook fired %d times, want 1", timeUps)
	}
	if h.store.snap != nil {
		t.Error("snapshot not cleared on expiry")
	}
	if h.store.clears != 1 {
		t.Errorf("Clear called %d times, want 1", h.store.clears)
	}
}

func TestAnswerAfterExpiryIsIgnored(t *testing.T) {
	h := newHarness(t, 4, 600)
	ctx := context.Background()
	h.r.Start(ctx)
	h.r.DisableRest()
	h.advance(700)
	h.r.Tick(ctx)

	h.r.Answer(ctx, 1)
	if h.r.Sheet().AnsweredCount() != 0 {
		t.Error("answer recorded after expiry")
	}
}

func TestAnswerCheckpointsImmediately(t *testing.T) {
	h := newHarness(t, 4, 600)
	ctx := context.Background()
	h.r.Start(ctx)
	before := h.store.saves

	h.r.Answer(ctx, 2)
	if h.store.saves != before+1 {
		t.Fatalf("saves = %d, want %d", h.store.saves, before+1)
	}
	if h.store.snap.Answers[0] != 2 {
		t.Errorf("checkpointed answer = %d, want 2", h.store.snap.Answers[0])
	}
}

func TestAutoAdvanceSeeksAndSignalsSubmit(t *testing.T) {
	h := newHarness(t, 3, 600)
	ctx := context.Background()
	h.r.Start(ctx)

	h.r.Answer(ctx, 0)
	target, submit, ok := h.r.AutoAdvanceTarget()
	if !ok || submit || target != 1 {
		t.Fatalf("after q0: target=%d submit=%v ok=%v, want 1/false/true", target, submit, ok)
	}
	// Consumed: a second read yields nothing.
	if _, _, ok := h.r.AutoAdvanceTarget(); ok {
		t.Fatal("AutoAdvanceTarget returned pending work twice for one answer")
	}

	h.r.JumpTo(1)
	h.r.Answer(ctx, 0)
	h.r.AutoAdvanceTarget()
	h.r.JumpTo(2)
	h.r.Answer(ctx, 0)

	_, submit, ok = h.r.AutoAdvanceTarget()
	if !ok || !submit {
		t.Errorf("last answer: submit=%v ok=%v, want submit signal", submit, ok)
	}
}

func TestAutoAdvanceWrapsToSkippedQuestion(t *testing.T) {
	h := newHarness(t, 3, 600)
	ctx := context.Background()
	h.r.Start(ctx)

	h.r.Answer(ctx, 0)
	h.r.AutoAdvanceTarget()
	h.r.JumpTo(2) // skip question 1
	h.r.Answer(ctx, 0)

	target, submit, ok := h.r.AutoAdvanceTarget()
	if !ok || submit || target != 1 {
		t.Errorf("target=%d submit=%v ok=%v, want wrap to 1", target, submit, ok)
	}
}

func TestSubmitRequiresCompleteSheet(t *testing.T) {
	h := newHarness(t, 2, 600)
	ctx := context.Background()
	h.r.Start(ctx)
	h.r.Answer(ctx, 1)

	if res := h.r.Submit(ctx, score.Identity{}); res != nil {
		t.Fatal("incomplete sheet was graded")
	}
	if h.r.Phase() != PhaseRunning {
		t.Errorf("phase = %s after rejected submit, want running", h.r.Phase())
	}
}

func TestSubmitGradesAndMarksSnapshotCompleted(t *testing.T) {
	var hookRes *score.Result
	h := newHarness(t, 2, 600)
	h.r.hooks.Completed = func(r *score.Result, _ score.Identity) { hookRes = r }
	ctx := context.Background()
	h.r.Start(ctx)

	h.r.Answer(ctx, 1) // correct
	h.r.JumpTo(1)
	h.advance(100)
	h.r.Answer(ctx, 0) // wrong

	res := h.r.Submit(ctx, score.Identity{Name: "pat"})
	if res == nil {
		t.Fatal("complete sheet was not graded")
	}
	if h.r.Phase() != PhaseCompleted {
		t.Fatalf("phase = %s, want completed", h.r.Phase())
	}
	if res.CorrectCount != 1 || res.IncorrectCount != 1 {
		t.Errorf("score %d/%d, want 1 correct 1 incorrect", res.CorrectCount, res.IncorrectCount)
	}
	if res.TimeSpentSecs != 100 {
		t.Errorf("TimeSpentSecs = %d, want 100", res.TimeSpentSecs)
	}
	if hookRes != res {
		t.Error("completed hook did not receive the graded result")
	}

	// Two-phase completion: marked, not yet cleared.
	if h.store.snap == nil || !h.store.snap.Completed {
		t.Fatal("snapshot not marked completed on submit")
	}
	h.r.ConsumeResult(ctx)
	if h.store.snap != nil {
		t.Error("snapshot not cleared after result was consumed")
	}
}

func TestSubmitIsIdempotent(t *testing.T) {
	h := newHarness(t, 1, 600)
	ctx := context.Background()
	h.r.Start(ctx)
	h.r.Answer(ctx, 1)

	first := h.r.Submit(ctx, score.Identity{})
	second := h.r.Submit(ctx, score.Identity{})
	if first == nil || first != second {
		t.Errorf("repeated Submit returned a different result: %p vs %p", first, second)
	}
}

func TestForcedSubmitAfterExpiry(t *testing.T) {
	h := newHarness(t, 2, 600)
	ctx := context.Background()
	h.r.Start(ctx)
	h.r.DisableRest()
	h.r.Answer(ctx, 1)

	h.advance(600)
	h.r.Tick(ctx)
	saves := h.store.saves

	res := h.r.Submit(ctx, score.Identity{})
	if res == nil {
		t.Fatal("expired session could not be force-submitted")
	}
	if res.TimeSpentSecs != 600 {
		t.Errorf("TimeSpentSecs = %d, want full 600", res.TimeSpentSecs)
	}
	// The snapshot was already cleared at expiry; no completion write.
	if h.store.saves != saves {
		t.Errorf("expired submit wrote %d snapshots", h.store.saves-saves)
	}
}

func TestHookPanicDoesNotAbortTransition(t *testing.T) {
	h := newHarness(t, 2, 600)
	h.r.hooks.TimeUp = func() { panic("speaker on fire") }
	ctx := context.Background()
	h.r.Start(ctx)
	h.r.DisableRest()

	h.advance(601)
	h.r.Tick(ctx)
	if h.r.Phase() != PhaseExpired {
		t.Errorf("phase = %s, panicking hook blocked expiry", h.r.Phase())
	}
}

func TestTeardownCheckpointsRunningSession(t *testing.T) {
	h := newHarness(t, 3, 600)
	ctx := context.Background()
	h.r.Start(ctx)
	h.r.Answer(ctx, 1)
	h.advance(42)

	h.r.Teardown(ctx)
	if h.store.snap.ElapsedSecs != 42 {
		t.Errorf("teardown snapshot elapsed = %d, want 42", h.store.snap.ElapsedSecs)
	}
	if h.store.snap.Answers[0] != 1 {
		t.Errorf("teardown snapshot lost the answer")
	}
}

func TestPeriodicCheckpointCadence(t *testing.T) {
	h := newHarness(t, 3, 600)
	ctx := context.Background()
	h.r.Start(ctx)
	saves := h.store.saves

	h.advance(2)
	h.r.Tick(ctx)
	if h.store.saves != saves {
		t.Fatal("checkpoint written before interval elapsed")
	}
	h.advance(CheckpointIntervalSecs)
	h.r.Tick(ctx)
	if h.store.saves != saves+1 {
		t.Errorf("saves = %d, want %d after interval", h.store.saves, saves+1)
	}
}

func TestRestartResetsEverything(t *testing.T) {
	h := newHarness(t, 2, 600)
	ctx := context.Background()
	h.r.Start(ctx)
	h.r.DisableRest()
	h.r.Answer(ctx, 1)
	h.advance(700)
	h.r.Tick(ctx) // expire
	oldID := h.r.ID()

	h.r.Restart(ctx)
	if h.r.Phase() != PhaseRunning {
		t.Fatalf("phase = %s after restart, want running", h.r.Phase())
	}
	if h.r.ID() == oldID {
		t.Error("restart kept the old session id")
	}
	if h.r.Elapsed() != 0 {
		t.Errorf("elapsed = %d after restart, want 0", h.r.Elapsed())
	}
	if h.r.Sheet().AnsweredCount() != 0 {
		t.Error("restart kept old answers")
	}
	if h.r.TimeUp() {
		t.Error("restart kept the expiry flag")
	}

	// The interlude is armed again.
	h.advance(300)
	h.r.Tick(ctx)
	if h.r.Phase() != PhaseResting {
		t.Error("rest interlude not rearmed after restart")
	}
}

func TestReviewModeAfterCompletion(t *testing.T) {
	h := newHarness(t, 3, 600)
	ctx := context.Background()
	h.r.Start(ctx)
	for i := 0; i < 3; i++ {
		h.r.JumpTo(i)
		h.r.Answer(ctx, 1)
		h.r.AutoAdvanceTarget()
	}
	h.r.Submit(ctx, score.Identity{})

	h.r.EnterReview()
	if !h.r.Reviewing() || h.r.Current() != 0 {
		t.Fatalf("review start: reviewing=%v current=%d", h.r.Reviewing(), h.r.Current())
	}
	h.r.Next()
	if h.r.Current() != 1 {
		t.Errorf("review Next landed on %d, want 1", h.r.Current())
	}
}

func TestSaveFailureDoesNotCrashSession(t *testing.T) {
	h := newHarness(t, 2, 600)
	ctx := context.Background()
	h.r.Start(ctx)
	h.store.err = fmt.Errorf("disk full")

	h.r.Answer(ctx, 1)
	if h.r.Sheet().At(0) != 1 {
		t.Error("failed checkpoint dropped the in-memory answer")
	}
	if h.r.Phase() != PhaseRunning {
		t.Errorf("phase = %s after save failure, want running", h.r.Phase())
	}
}
