package home

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sthiel/mentiq/internal/question"
	"github.com/sthiel/mentiq/internal/router"
	sess "github.com/sthiel/mentiq/internal/session"
	"github.com/sthiel/mentiq/internal/store"
)

// stubSnaps implements sess.SnapshotStore with a scriptable Clear.
type stubSnaps struct {
	snap     *sess.Snapshot
	clearErr error
	cleared  int
}

func (s *stubSnaps) Save(context.Context, *sess.Snapshot) error   { return nil }
func (s *stubSnaps) Load(context.Context) (*sess.Snapshot, error) { return s.snap, nil }
func (s *stubSnaps) Clear(context.Context) error                  { s.cleared++; return s.clearErr }

type stubResults struct {
	latest *store.ResultData
}

func (s *stubResults) Save(context.Context, store.ResultData) error          { return nil }
func (s *stubResults) List(context.Context, int) ([]store.ResultData, error) { return nil, nil }
func (s *stubResults) Latest(context.Context) (*store.ResultData, error)     { return s.latest, nil }

func testSet() *question.Set {
	return &question.Set{
		Name:          "Test Set",
		TotalTimeSecs: 600,
		Questions: []question.Question{{
			ID:         "q-01",
			Kind:       question.KindLogic,
			Difficulty: question.DifficultyEasy,
			Prompt:     "Question 1",
			Options:    []string{"a", "b"},
			Correct:    1,
		}},
	}
}

func TestSavedResultFallbackSurvivesClearFailure(t *testing.T) {
	snaps := &stubSnaps{
		snap:     &sess.Snapshot{Completed: true},
		clearErr: errors.New("disk full"),
	}
	h := New(Deps{
		Set:     testSet(),
		Snaps:   snaps,
		Results: &stubResults{},
		Log:     zerolog.Nop(),
	})

	// No stored result to show: the action drops the stale marker and
	// falls back to history, even when the drop itself fails.
	msg := h.savedResultAction()()
	if _, ok := msg.(router.PushScreenMsg); !ok {
		t.Fatalf("expected a push message, got %T", msg)
	}
	if snaps.cleared != 1 {
		t.Errorf("clear calls = %d, want 1", snaps.cleared)
	}
}
