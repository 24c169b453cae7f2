package session

import (
	"context"
	"fmt"

	"github.com/sthiel/mentiq/internal/score"
)

// Snapshot is the persisted serialization of in-progress session state.
// Exactly one snapshot exists per session key; every checkpoint fully
// overwrites it (last write wins). The shape is JSON-primitive only so
// any durable key-value medium can hold it.
type Snapshot struct {
	CurrentIndex int   `json:"current_index"`
	Answers      []int `json:"answers"`
	ElapsedSecs  int   `json:"elapsed_secs"`
	TotalSecs    int   `json:"total_secs"`
	Completed    bool  `json:"completed"`
	CompletedAt  int64 `json:"completed_at,omitempty"`
}

// SnapshotStore is the persistence adapter for session snapshots.
// Load returns (nil, nil) for missing or malformed data: corrupted or
// foreign snapshots mean "no session", never a fatal error.
type SnapshotStore interface {
	Save(ctx context.Context, snap *Snapshot) error
	Load(ctx context.Context) (*Snapshot, error)
	Clear(ctx context.Context) error
}

// AnsweredCount returns how many answer slots carry a selection.
func (s *Snapshot) AnsweredCount() int {
	n := 0
	for _, v := range s.Answers {
		if v != score.Unanswered {
			n++
		}
	}
	return n
}

// InProgress reports whether the snapshot represents a resumable,
// partially answered session.
func (s *Snapshot) InProgress() bool {
	c := s.AnsweredCount()
	return !s.Completed && c > 0 && c < len(s.Answers)
}

// Validate checks the structural invariants a loaded snapshot must hold.
// Stores use this to map corrupt payloads to "no session".
func (s *Snapshot) Validate() error {
	if len(s.Answers) == 0 {
		return fmt.Errorf("snapshot: empty answer vector")
	}
	if s.TotalSecs <= 0 {
		return fmt.Errorf("snapshot: total time %d not positive", s.TotalSecs)
	}
	if s.ElapsedSecs < 0 || s.ElapsedSecs > s.TotalSecs {
		return fmt.Errorf("snapshot: elapsed %d outside [0,%d]", s.ElapsedSecs, s.TotalSecs)
	}
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Answers) {
		return fmt.Errorf("snapshot: current index %d outside answer vector of %d", s.CurrentIndex, len(s.Answers))
	}
	for i, v := range s.Answers {
		if v < score.Unanswered {
			return fmt.Errorf("snapshot: answer %d has invalid value %d", i, v)
		}
	}
	return nil
}
