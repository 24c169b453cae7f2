package session

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/sthiel/mentiq/internal/router"
	"github.com/sthiel/mentiq/internal/screen"
	"github.com/sthiel/mentiq/internal/score"
	sess "github.com/sthiel/mentiq/internal/session"
	"github.com/sthiel/mentiq/internal/store"
	"github.com/sthiel/mentiq/internal/ui/components"
	"github.com/sthiel/mentiq/internal/ui/layout"
)

// ExamScreen drives one attempt at a question set. It owns only
// presentation state; every rule about timing, answers and phases lives
// in the session runner it wraps.
type ExamScreen struct {
	runner  *sess.Runner
	events  store.EventRepo
	results store.ResultRepo
	log     zerolog.Logger

	options     components.OptionList
	form        *identityForm
	started     bool
	resumed     bool
	quitConfirm bool
	quitFocus   int
	review      bool
	notice      string
	advanceGen  int
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)
var _ screen.StatusProvider = (*ExamScreen)(nil)
var _ screen.QuitInterceptor = (*ExamScreen)(nil)

// New creates the screen for a live attempt. The runner must be idle;
// Init starts (or resumes) it.
func New(runner *sess.Runner, events store.EventRepo, results store.ResultRepo, log zerolog.Logger) *ExamScreen {
	return &ExamScreen{
		runner:  runner,
		events:  events,
		results: results,
		log:     log.With().Str("component", "exam-screen").Logger(),
	}
}

// NewReview creates the screen in read-only review mode over a
// completed runner. The caller must have called EnterReview already.
func NewReview(runner *sess.Runner, log zerolog.Logger) *ExamScreen {
	s := &ExamScreen{
		runner:  runner,
		log:     log.With().Str("component", "exam-screen").Logger(),
		started: true,
		review:  true,
	}
	s.syncOptions()
	return s
}

func (s *ExamScreen) Init() tea.Cmd {
	if s.review {
		return nil
	}
	return tea.Batch(s.startCmd(), tickCmd())
}

func (s *ExamScreen) Title() string {
	if s.review {
		return "Review"
	}
	return "Assessment"
}

// HeaderStatus puts the countdown in the header's right slot.
func (s *ExamScreen) HeaderStatus() string {
	if s.review || !s.started {
		return ""
	}
	switch s.runner.Phase() {
	case sess.PhaseRunning, sess.PhaseResting:
		return layout.FormatClock(s.runner.Remaining())
	}
	return ""
}

func (s *ExamScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "←→", Description: "Select"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Y/N", Description: "Shortcut"},
		}
	case s.form != nil:
		hints := []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Submit"},
		}
		if !s.form.forced {
			hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
		}
		return hints
	case s.review:
		return []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "Esc", Description: "Back"},
		}
	case s.started && s.runner.Phase() == sess.PhaseResting:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "D", Description: "Don't show again"},
		}
	case s.started && s.runner.Phase() == sess.PhaseExpired:
		return []layout.KeyHint{
			{Key: "Enter", Description: "See results"},
		}
	default:
		return []layout.KeyHint{
			{Key: "A-F", Description: "Answer"},
			{Key: "←→", Description: "Question"},
			{Key: "S", Description: "Submit"},
			{Key: "Esc", Description: "Exit"},
		}
	}
}

func (s *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		s.started = true
		s.resumed = msg.Resumed
		if msg.Resumed {
			s.notice = "Welcome back. Picking up where you left off."
		}
		s.syncOptions()
		return s, nil

	case clockTickMsg:
		return s.handleTick()

	case advanceMsg:
		return s.handleAdvance(msg)

	case components.ChoiceMsg:
		return s.handleChoice(msg)

	case submittedMsg:
		return s.handleSubmitted(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Cursor blink and other component traffic for the form.
	if s.form != nil {
		cmd := s.form.forward(msg)
		return s, cmd
	}
	return s, nil
}

// startCmd starts or resumes the runner and records the lifecycle event.
func (s *ExamScreen) startCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		resumed := s.runner.Start(ctx)
		action := "start"
		if resumed {
			action = "resume"
		}
		s.appendEvent(ctx, action)
		return startedMsg{Resumed: resumed}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func (s *ExamScreen) handleTick() (screen.Screen, tea.Cmd) {
	if !s.started {
		return s, tickCmd()
	}

	before := s.runner.Phase()
	s.runner.Tick(context.Background())
	after := s.runner.Phase()

	if before != after {
		ctx := context.Background()
		switch after {
		case sess.PhaseResting:
			s.appendEvent(ctx, "rest_start")
		case sess.PhaseExpired:
			s.appendEvent(ctx, "time_up")
			s.quitConfirm = false
			s.form = nil
		}
	}

	if after == sess.PhaseCompleted {
		return s, nil
	}
	return s, tickCmd()
}

func (s *ExamScreen) handleAdvance(msg advanceMsg) (screen.Screen, tea.Cmd) {
	if msg.Gen != s.advanceGen {
		return s, nil
	}
	target, submit, ok := s.runner.AutoAdvanceTarget()
	if !ok {
		return s, nil
	}
	if submit {
		return s.openForm(false)
	}
	s.runner.JumpTo(target)
	s.syncOptions()
	return s, nil
}

func (s *ExamScreen) handleChoice(msg components.ChoiceMsg) (screen.Screen, tea.Cmd) {
	if s.review {
		return s, nil
	}
	s.runner.Answer(context.Background(), msg.Index)
	s.notice = ""
	s.advanceGen++
	gen := s.advanceGen
	return s, tea.Tick(sess.AutoAdvanceDelay, func(time.Time) tea.Msg {
		return advanceMsg{Gen: gen}
	})
}

func (s *ExamScreen) handleSubmitted(msg submittedMsg) (screen.Screen, tea.Cmd) {
	if msg.Result == nil {
		s.form = nil
		return s, nil
	}
	if msg.SaveErr != nil {
		s.log.Warn().Err(msg.SaveErr).Msg("saving result to history failed")
	}
	next := s.resultScreen(msg)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if !s.started {
		return s, nil
	}

	if s.quitConfirm {
		switch msg.String() {
		case "y", "Y":
			return s, s.exitCmd()
		case "n", "N", "esc":
			s.quitConfirm = false
		case "left", "right", "tab", "shift+tab":
			s.quitFocus = 1 - s.quitFocus
		case "enter":
			if s.quitFocus == 1 {
				return s, s.exitCmd()
			}
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.form != nil {
		return s.handleFormKey(msg)
	}

	if s.review {
		return s.handleReviewKey(msg)
	}

	switch s.runner.Phase() {
	case sess.PhaseResting:
		switch msg.String() {
		case "enter", " ":
			s.runner.LeaveRest(context.Background())
			s.appendEvent(context.Background(), "rest_end")
		case "d", "D":
			s.runner.DisableRest()
			s.runner.LeaveRest(context.Background())
			s.appendEvent(context.Background(), "rest_end")
		}
		return s, nil

	case sess.PhaseExpired:
		if msg.String() == "enter" || msg.String() == " " {
			return s.openForm(true)
		}
		return s, nil

	case sess.PhaseRunning:
		return s.handleRunningKey(msg)
	}
	return s, nil
}

func (s *ExamScreen) handleRunningKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch key := msg.String(); key {
	case "esc":
		s.quitConfirm = true
		s.quitFocus = 0
		return s, nil
	case "left", "h", "p":
		s.advanceGen++
		s.runner.Previous()
		s.syncOptions()
		return s, nil
	case "right", "l", "n":
		s.advanceGen++
		s.runner.Next()
		s.syncOptions()
		return s, nil
	case "s", "S":
		if !s.runner.Sheet().IsComplete() {
			s.notice = "Answer every question before submitting."
			return s, nil
		}
		return s.openForm(false)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < s.runner.Set().Len() {
				s.advanceGen++
				s.runner.JumpTo(i)
				s.syncOptions()
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.options, cmd = s.options.Update(msg)
		return s, cmd
	}
}

func (s *ExamScreen) handleReviewKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "left", "h", "p":
		s.runner.Previous()
		s.syncOptions()
	case "right", "l", "n", "enter", " ":
		s.runner.Next()
		s.syncOptions()
	}
	return s, nil
}

func (s *ExamScreen) handleFormKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	done, cancelled, cmd := s.form.handleKey(msg)
	if cancelled {
		s.form = nil
		return s, nil
	}
	if done {
		who := s.form.identity()
		return s, s.submitCmd(who)
	}
	return s, cmd
}

// openForm switches to the identity form. forced marks the post-expiry
// path, where backing out is not offered.
func (s *ExamScreen) openForm(forced bool) (screen.Screen, tea.Cmd) {
	f := newIdentityForm(forced)
	s.form = f
	return s, f.focusCmd()
}

func (s *ExamScreen) submitCmd(who score.Identity) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		res := s.runner.Submit(ctx, who)
		if res == nil {
			return submittedMsg{}
		}
		data := store.ResultData{
			SessionID: s.runner.ID(),
			SetName:   s.runner.Set().Name,
			Who:       who,
			Expired:   s.runner.TimeUp(),
			Result:    res,
			TakenAt:   time.Now(),
		}
		var saveErr error
		if s.results != nil {
			saveErr = s.results.Save(ctx, data)
		}
		s.appendEvent(ctx, "submit")
		return submittedMsg{Data: data, Result: res, SaveErr: saveErr}
	}
}

// exitCmd checkpoints the running session and leaves the screen.
func (s *ExamScreen) exitCmd() tea.Cmd {
	return func() tea.Msg {
		s.runner.Teardown(context.Background())
		return router.PopScreenMsg{}
	}
}

// InterceptQuit checkpoints the live attempt before the program exits,
// so a ctrl+c loses nothing since the last keypress. Review mode holds
// no unsaved state.
func (s *ExamScreen) InterceptQuit() tea.Cmd {
	if s.review {
		return nil
	}
	return func() tea.Msg {
		s.runner.Teardown(context.Background())
		return tea.QuitMsg{}
	}
}

// syncOptions rebuilds the option list for the current question.
func (s *ExamScreen) syncOptions() {
	q := s.runner.Set().At(s.runner.Current())
	o := components.NewOptionList(q.Prompt, q.Options, q.Correct)
	o.Chosen = s.runner.Sheet().At(s.runner.Current())
	if o.Chosen >= 0 {
		o.Cursor = o.Chosen
	}
	if s.review {
		o.Reveal = true
		o.ReadOnly = true
	}
	s.options = o
}

func (s *ExamScreen) appendEvent(ctx context.Context, action string) {
	if s.events == nil {
		return
	}
	err := s.events.AppendAttempt(ctx, store.AttemptEventData{
		SessionID:   s.runner.ID(),
		Action:      action,
		Answered:    s.runner.Sheet().AnsweredCount(),
		ElapsedSecs: s.runner.Elapsed(),
	})
	if err != nil {
		s.log.Warn().Err(err).Str("action", action).Msg("appending attempt event failed")
	}
}
