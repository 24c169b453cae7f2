package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sthiel/mentiq/ent"
	"github.com/sthiel/mentiq/ent/sessionsnapshot"
	"github.com/sthiel/mentiq/internal/session"
)

// SnapshotStore implements session.SnapshotStore on one snapshot slot.
// A slot holds at most one row; Save fully overwrites it.
type SnapshotStore struct {
	client *ent.Client
	key    string
}

var _ session.SnapshotStore = (*SnapshotStore)(nil)

func (s *SnapshotStore) Save(ctx context.Context, snap *session.Snapshot) error {
	data, err := snapshotToMap(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	n, err := s.client.SessionSnapshot.Update().
		Where(sessionsnapshot.KeyEQ(s.key)).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update snapshot: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = s.client.SessionSnapshot.Create().
		SetKey(s.key).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	return nil
}

// Load returns the slot's snapshot. Missing rows and payloads that fail
// structural validation both come back as (nil, nil): a corrupt snapshot
// means "no session to resume", not a fatal error.
func (s *SnapshotStore) Load(ctx context.Context) (*session.Snapshot, error) {
	row, err := s.client.SessionSnapshot.Query().
		Where(sessionsnapshot.KeyEQ(s.key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query snapshot: %w", err)
	}

	snap, err := mapToSnapshot(row.Data)
	if err != nil {
		return nil, nil
	}
	if err := snap.Validate(); err != nil {
		return nil, nil
	}
	return snap, nil
}

func (s *SnapshotStore) Clear(ctx context.Context) error {
	_, err := s.client.SessionSnapshot.Delete().
		Where(sessionsnapshot.KeyEQ(s.key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

func snapshotToMap(snap *session.Snapshot) (map[string]any, error) {
	b, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func mapToSnapshot(data map[string]any) (*session.Snapshot, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var snap session.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
