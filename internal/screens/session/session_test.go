package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/sthiel/mentiq/internal/question"
	"github.com/sthiel/mentiq/internal/router"
	"github.com/sthiel/mentiq/internal/score"
	"github.com/sthiel/mentiq/internal/screen"
	sess "github.com/sthiel/mentiq/internal/session"
	"github.com/sthiel/mentiq/internal/store"
	"github.com/sthiel/mentiq/internal/timer"
	"github.com/sthiel/mentiq/internal/ui/components"
)

// fakeSnaps implements sess.SnapshotStore in memory.
type fakeSnaps struct {
	snap *sess.Snapshot
}

func (f *fakeSnaps) Save(_ context.Context, s *sess.Snapshot) error {
	cp := *s
	f.snap = &cp
	return nil
}
func (f *fakeSnaps) Load(_ context.Context) (*sess.Snapshot, error) { return f.snap, nil }
func (f *fakeSnaps) Clear(_ context.Context) error                  { f.snap = nil; return nil }

// fakeEvents implements store.EventRepo, recording attempt actions.
type fakeEvents struct {
	attempts []store.AttemptEventData
}

func (f *fakeEvents) AppendAttempt(_ context.Context, d store.AttemptEventData) error {
	f.attempts = append(f.attempts, d)
	return nil
}
func (f *fakeEvents) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (f *fakeEvents) ListLLMRequests(_ context.Context, _ int) ([]store.LLMEventRecord, error) {
	return nil, nil
}

func (f *fakeEvents) actions() []string {
	out := make([]string, len(f.attempts))
	for i, a := range f.attempts {
		out[i] = a.Action
	}
	return out
}

// fakeResults implements store.ResultRepo.
type fakeResults struct {
	saved []store.ResultData
}

func (f *fakeResults) Save(_ context.Context, d store.ResultData) error {
	f.saved = append(f.saved, d)
	return nil
}
func (f *fakeResults) List(_ context.Context, _ int) ([]store.ResultData, error) {
	return f.saved, nil
}
func (f *fakeResults) Latest(_ context.Context) (*store.ResultData, error) {
	if len(f.saved) == 0 {
		return nil, nil
	}
	return &f.saved[len(f.saved)-1], nil
}

func testSet(n, totalSecs int) *question.Set {
	set := &question.Set{Name: "Test Set", TotalTimeSecs: totalSecs}
	for i := 0; i < n; i++ {
		set.Questions = append(set.Questions, question.Question{
			ID:         fmt.Sprintf("q-%02d", i+1),
			Kind:       question.KindLogic,
			Difficulty: question.DifficultyEasy,
			Prompt:     fmt.Sprintf("Question %d", i+1),
			Options:    []string{"a", "b", "c", "d"},
			Correct:    1,
		})
	}
	return set
}

type harness struct {
	screen  *ExamScreen
	events  *fakeEvents
	results *fakeResults
	snaps   *fakeSnaps
	at      time.Time
}

func newHarness(t *testing.T, n, totalSecs int) *harness {
	t.Helper()
	h := &harness{
		events:  &fakeEvents{},
		results: &fakeResults{},
		snaps:   &fakeSnaps{},
		at:      time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	clock := timer.NewWithNow(func() time.Time { return h.at })
	runner := sess.NewRunner(testSet(n, totalSecs), clock, h.snaps, sess.Hooks{}, zerolog.Nop())
	h.screen = New(runner, h.events, h.results, zerolog.Nop())
	return h
}

// start runs the Init start command and feeds the resulting message back.
func (h *harness) start(t *testing.T) {
	t.Helper()
	msg := h.screen.startCmd()()
	if _, ok := msg.(startedMsg); !ok {
		t.Fatalf("start command returned %T, want startedMsg", msg)
	}
	h.screen.Update(msg)
}

func (h *harness) advanceTime(secs int) {
	h.at = h.at.Add(time.Duration(secs) * time.Second)
}

func (h *harness) update(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	_, cmd := h.screen.Update(msg)
	return cmd
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// answer picks option a on the current question and delivers the
// resulting choice message, returning the scheduled advance command.
func (h *harness) answer(t *testing.T) tea.Cmd {
	t.Helper()
	cmd := h.update(t, keyPress('a'))
	if cmd == nil {
		t.Fatal("expected a command from option selection")
	}
	choice, ok := cmd().(components.ChoiceMsg)
	if !ok {
		t.Fatal("expected a choice message")
	}
	return h.update(t, choice)
}

func TestExamScreen_Title(t *testing.T) {
	h := newHarness(t, 4, 600)
	if h.screen.Title() != "Assessment" {
		t.Errorf("Title = %q, want %q", h.screen.Title(), "Assessment")
	}
}

func TestExamScreen_View_Loading(t *testing.T) {
	h := newHarness(t, 4, 600)
	if h.screen.View(80, 24) == "" {
		t.Error("expected non-empty loading view")
	}
}

func TestExamScreen_StartRecordsEvent(t *testing.T) {
	h := newHarness(t, 4, 600)
	h.start(t)

	if !h.screen.started {
		t.Fatal("expected screen to be started")
	}
	if got := h.events.actions(); len(got) != 1 || got[0] != "start" {
		t.Errorf("events = %v, want [start]", got)
	}
	if h.screen.View(80, 24) == "" {
		t.Error("expected non-empty question view")
	}
}

func TestExamScreen_AnswerSchedulesAdvance(t *testing.T) {
	h := newHarness(t, 4, 600)
	h.start(t)

	advCmd := h.answer(t)
	if advCmd == nil {
		t.Fatal("expected an auto-advance command after answering")
	}
	if got := h.screen.runner.Sheet().At(0); got != 0 {
		t.Errorf("recorded answer = %d, want 0", got)
	}

	h.update(t, advanceMsg{Gen: h.screen.advanceGen})
	if got := h.screen.runner.Current(); got != 1 {
		t.Errorf("current after advance = %d, want 1", got)
	}
}

func TestExamScreen_StaleAdvanceDropped(t *testing.T) {
	h := newHarness(t, 4, 600)
	h.start(t)

	h.answer(t)
	staleGen := h.screen.advanceGen

	// Manual navigation supersedes the pending advance.
	h.update(t, specialKey(tea.KeyRight))
	h.update(t, specialKey(tea.KeyRight))
	at := h.screen.runner.Current()

	h.update(t, advanceMsg{Gen: staleGen})
	if got := h.screen.runner.Current(); got != at {
		t.Errorf("current = %d, stale advance moved the cursor from %d", got, at)
	}
}

func TestExamScreen_QuitConfirm(t *testing.T) {
	h := newHarness(t, 4, 600)
	h.start(t)

	h.update(t, specialKey(tea.KeyEscape))
	if !h.screen.quitConfirm {
		t.Fatal("expected quit confirmation")
	}

	h.update(t, keyPress('n'))
	if h.screen.quitConfirm {
		t.Error("expected quit confirmation dismissed")
	}

	h.update(t, specialKey(tea.KeyEscape))
	cmd := h.update(t, keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command from confirmed exit")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected a pop message from confirmed exit")
	}
	if h.snaps.snap == nil {
		t.Error("expected a checkpoint on exit")
	}
}

func TestExamScreen_CtrlCCheckpointsBeforeQuit(t *testing.T) {
	h := newHarness(t, 4, 600)
	h.start(t)
	h.answer(t)

	// Time passes after the last on-answer checkpoint.
	h.advanceTime(4)

	cmd := h.screen.InterceptQuit()
	if cmd == nil {
		t.Fatal("expected a flush command for a live attempt")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected the flush command to end in a quit")
	}

	snap := h.snaps.snap
	if snap == nil {
		t.Fatal("expected a checkpoint before quitting")
	}
	if snap.ElapsedSecs != 4 {
		t.Errorf("checkpointed elapsed = %d, want 4", snap.ElapsedSecs)
	}
	if got := snap.Answers[0]; got != 0 {
		t.Errorf("checkpointed answer[0] = %d, want 0", got)
	}
}

func TestExamScreen_SubmitBlockedWhileIncomplete(t *testing.T) {
	h := newHarness(t, 4, 600)
	h.start(t)

	h.update(t, keyPress('s'))
	if h.screen.form != nil {
		t.Error("expected no form with unanswered questions")
	}
	if h.screen.notice == "" {
		t.Error("expected a notice explaining the block")
	}
}

func TestExamScreen_LastAnswerLeadsToForm(t *testing.T) {
	h := newHarness(t, 2, 600)
	h.start(t)

	h.answer(t)
	h.update(t, advanceMsg{Gen: h.screen.advanceGen})
	h.answer(t)
	h.update(t, advanceMsg{Gen: h.screen.advanceGen})

	if h.screen.form == nil {
		t.Fatal("expected identity form after the last answer")
	}
	if h.screen.form.forced {
		t.Error("expected a voluntary form, not the expiry path")
	}
}

func TestExamScreen_FormSubmitGradesAndSaves(t *testing.T) {
	h := newHarness(t, 2, 600)
	h.start(t)

	h.answer(t)
	h.update(t, advanceMsg{Gen: h.screen.advanceGen})
	h.answer(t)
	h.update(t, advanceMsg{Gen: h.screen.advanceGen})

	// Enter through all three fields submits.
	h.update(t, specialKey(tea.KeyEnter))
	h.update(t, specialKey(tea.KeyEnter))
	cmd := h.update(t, specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	msg, ok := cmd().(submittedMsg)
	if !ok {
		t.Fatal("expected a submitted message")
	}
	if msg.Result == nil {
		t.Fatal("expected a graded result")
	}
	if len(h.results.saved) != 1 {
		t.Fatalf("results saved = %d, want 1", len(h.results.saved))
	}
	if h.results.saved[0].SetName != "Test Set" {
		t.Errorf("saved set name = %q", h.results.saved[0].SetName)
	}

	replaceCmd := h.update(t, msg)
	if replaceCmd == nil {
		t.Fatal("expected a command after submission")
	}
	if _, ok := replaceCmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected the result screen to replace the exam")
	}
}

func TestExamScreen_RestInterlude(t *testing.T) {
	h := newHarness(t, 4, 600)
	h.start(t)

	h.advanceTime(300)
	h.update(t, clockTickMsg(h.at))

	if h.screen.runner.Phase() != sess.PhaseResting {
		t.Fatalf("phase = %v, want resting", h.screen.runner.Phase())
	}
	if h.screen.View(80, 24) == "" {
		t.Error("expected non-empty rest view")
	}

	h.update(t, specialKey(tea.KeyEnter))
	if h.screen.runner.Phase() != sess.PhaseRunning {
		t.Errorf("phase after continue = %v, want running", h.screen.runner.Phase())
	}

	got := h.events.actions()
	want := []string{"start", "rest_start", "rest_end"}
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExamScreen_TimeUpForcesSubmission(t *testing.T) {
	h := newHarness(t, 4, 600)
	h.start(t)
	h.answer(t)

	h.advanceTime(601)
	h.update(t, clockTickMsg(h.at))

	if h.screen.runner.Phase() != sess.PhaseExpired {
		t.Fatalf("phase = %v, want expired", h.screen.runner.Phase())
	}

	// Answer keys are dead now.
	h.update(t, keyPress('b'))
	if got := h.screen.runner.Sheet().AnsweredCount(); got != 1 {
		t.Errorf("answered = %d after expiry keypress, want 1", got)
	}

	h.update(t, specialKey(tea.KeyEnter))
	if h.screen.form == nil || !h.screen.form.forced {
		t.Fatal("expected the forced identity form")
	}

	// Esc cannot back out of a forced submission.
	h.update(t, specialKey(tea.KeyEscape))
	if h.screen.form == nil {
		t.Error("expected the form to survive esc on the expiry path")
	}
}

func TestExamScreen_NumberKeyJumps(t *testing.T) {
	h := newHarness(t, 4, 600)
	h.start(t)

	h.update(t, keyPress('3'))
	if got := h.screen.runner.Current(); got != 2 {
		t.Errorf("current = %d, want 2", got)
	}

	// Out-of-range digits are ignored.
	h.update(t, keyPress('9'))
	if got := h.screen.runner.Current(); got != 2 {
		t.Errorf("current = %d after out-of-range jump, want 2", got)
	}
}

func TestExamScreen_ReviewMode(t *testing.T) {
	h := newHarness(t, 2, 600)
	h.start(t)
	h.answer(t)
	h.update(t, advanceMsg{Gen: h.screen.advanceGen})
	h.answer(t)

	runner := h.screen.runner
	if res := runner.Submit(context.Background(), score.Identity{}); res == nil {
		t.Fatal("expected a result from submit")
	}
	runner.EnterReview()

	rs := NewReview(runner, zerolog.Nop())
	if rs.Title() != "Review" {
		t.Errorf("Title = %q, want Review", rs.Title())
	}
	if !rs.options.Reveal || !rs.options.ReadOnly {
		t.Error("expected revealed, read-only options in review")
	}
	if rs.InterceptQuit() != nil {
		t.Error("expected no quit flush in review mode")
	}

	var scr screen.Screen = rs
	scr, _ = scr.Update(specialKey(tea.KeyRight))
	if got := runner.Current(); got != 1 {
		t.Errorf("current after next = %d, want 1", got)
	}

	_, cmd := scr.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command from esc in review")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected a pop message from esc in review")
	}
}

func TestExamScreen_HeaderStatusShowsCountdown(t *testing.T) {
	h := newHarness(t, 4, 600)
	h.start(t)

	if got := h.screen.HeaderStatus(); got != "10:00" {
		t.Errorf("HeaderStatus = %q, want 10:00", got)
	}

	h.advanceTime(60)
	if got := h.screen.HeaderStatus(); got != "9:00" {
		t.Errorf("HeaderStatus = %q, want 9:00", got)
	}
}
