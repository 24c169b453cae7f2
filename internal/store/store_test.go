package store

import (
	"context"
	"testing"
	"time"

	"github.com/sthiel/mentiq/internal/question"
	"github.com/sthiel/mentiq/internal/score"
	"github.com/sthiel/mentiq/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked against file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	snaps := s.Snapshots("standard")
	ctx := context.Background()

	// No snapshot yet.
	snap, err := snaps.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	want := &session.Snapshot{
		CurrentIndex: 3,
		Answers:      []int{1, score.Unanswered, 2, 0, score.Unanswered},
		ElapsedSecs:  240,
		TotalSecs:    1500,
	}
	if err := snaps.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := snaps.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if got.CurrentIndex != 3 || got.ElapsedSecs != 240 || got.TotalSecs != 1500 {
		t.Errorf("loaded %+v, want %+v", got, want)
	}
	if len(got.Answers) != 5 || got.Answers[1] != score.Unanswered || got.Answers[2] != 2 {
		t.Errorf("answers = %v, want %v", got.Answers, want.Answers)
	}
}

func TestSnapshotSaveOverwritesSlot(t *testing.T) {
	s := openTestStore(t)
	snaps := s.Snapshots("standard")
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		err := snaps.Save(ctx, &session.Snapshot{
			CurrentIndex: i,
			Answers:      []int{0, -1, -1, -1},
			ElapsedSecs:  i * 10,
			TotalSecs:    600,
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	count, err := s.Client().SessionSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("snapshot rows = %d, want 1 (upsert semantics)", count)
	}

	got, err := snaps.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.ElapsedSecs != 30 {
		t.Errorf("elapsed = %d, want last write 30", got.ElapsedSecs)
	}
}

func TestSnapshotSlotsAreIndependent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a := s.Snapshots("standard")
	b := s.Snapshots("custom")
	if err := a.Save(ctx, &session.Snapshot{
		CurrentIndex: 0, Answers: []int{1, -1}, ElapsedSecs: 5, TotalSecs: 60,
	}); err != nil {
		t.Fatalf("save a: %v", err)
	}

	got, err := b.Load(ctx)
	if err != nil {
		t.Fatalf("load b: %v", err)
	}
	if got != nil {
		t.Error("slot b sees slot a's snapshot")
	}

	if err := a.Clear(ctx); err != nil {
		t.Fatalf("clear a: %v", err)
	}
	got, err = a.Load(ctx)
	if err != nil {
		t.Fatalf("load a after clear: %v", err)
	}
	if got != nil {
		t.Error("snapshot survived Clear")
	}
}

func TestSnapshotCorruptPayloadLoadsAsNone(t *testing.T) {
	s := openTestStore(t)
	snaps := s.Snapshots("standard")
	ctx := context.Background()

	// Structurally broken state: elapsed beyond total.
	_, err := s.Client().SessionSnapshot.Create().
		SetKey("standard").
		SetData(map[string]any{
			"current_index": 0,
			"answers":       []any{0.0, -1.0},
			"elapsed_secs":  9999.0,
			"total_secs":    600.0,
		}).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	got, err := snaps.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != nil {
		t.Error("corrupt snapshot surfaced instead of mapping to none")
	}
}

func testResult() *score.Result {
	return &score.Result{
		RawScore:        14,
		Index:           118,
		Classification:  "high average",
		Percentile:      75,
		CorrectCount:    14,
		IncorrectCount:  6,
		AccuracyPercent: 70,
		TimeSpentSecs:   900,
		Categories: map[question.Kind]score.CategoryScore{
			"logic": {Correct: 3, Total: 4},
		},
		Answers: []score.AnswerDetail{
			{QuestionID: "q-01", Selected: 1, Right: true},
			{QuestionID: "q-02", Selected: 0, Right: false},
		},
	}
}

func TestResultSaveAndList(t *testing.T) {
	s := openTestStore(t)
	results := s.Results()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		res := testResult()
		res.Index = 100 + i
		err := results.Save(ctx, ResultData{
			SessionID: "s-" + string(rune('a'+i)),
			SetName:   "standard",
			Who:       score.Identity{Name: "pat", Age: "30"},
			Result:    res,
			TakenAt:   base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	list, err := results.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len(list) = %d, want 3", len(list))
	}
	if list[0].Result.Index != 102 {
		t.Errorf("newest first: index = %d, want 102", list[0].Result.Index)
	}
	if list[0].Who.Name != "pat" || list[0].Who.Age != "30" {
		t.Errorf("identity = %+v", list[0].Who)
	}

	limited, err := results.List(ctx, 2)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("len(limited) = %d, want 2", len(limited))
	}
}

func TestResultRoundTripPreservesBreakdown(t *testing.T) {
	s := openTestStore(t)
	results := s.Results()
	ctx := context.Background()

	if err := results.Save(ctx, ResultData{
		SessionID: "s-1",
		SetName:   "standard",
		Result:    testResult(),
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	latest, err := results.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest == nil {
		t.Fatal("expected a result")
	}
	cat, ok := latest.Result.Categories["logic"]
	if !ok || cat.Correct != 3 || cat.Total != 4 {
		t.Errorf("logic category = %+v, want 3/4", cat)
	}
	if len(latest.Result.Answers) != 2 || !latest.Result.Answers[0].Right {
		t.Errorf("answers = %+v", latest.Result.Answers)
	}
}

func TestLatestResultEmpty(t *testing.T) {
	s := openTestStore(t)
	latest, err := s.Results().Latest(context.Background())
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest != nil {
		t.Error("expected nil result on empty history")
	}
}

func TestEventSequenceSpansTypes(t *testing.T) {
	s := openTestStore(t)
	events := s.Events()
	ctx := context.Background()

	if err := events.AppendAttempt(ctx, AttemptEventData{
		SessionID: "s-1", Action: "start",
	}); err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	if err := events.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "m", Purpose: "set-gen", Success: true,
	}); err != nil {
		t.Fatalf("append llm: %v", err)
	}
	if err := events.AppendAttempt(ctx, AttemptEventData{
		SessionID: "s-1", Action: "submit", Answered: 20, ElapsedSecs: 900,
	}); err != nil {
		t.Fatalf("append attempt 2: %v", err)
	}

	attempts, err := s.Client().AttemptEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query attempts: %v", err)
	}
	llms, err := s.Client().LLMRequestEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query llm events: %v", err)
	}
	if len(attempts) != 2 || len(llms) != 1 {
		t.Fatalf("rows = %d/%d, want 2/1", len(attempts), len(llms))
	}

	seen := map[int64]bool{}
	for _, e := range attempts {
		seen[e.Sequence] = true
	}
	seen[llms[0].Sequence] = true
	for want := int64(1); want <= 3; want++ {
		if !seen[want] {
			t.Errorf("sequence %d missing from interleaved log", want)
		}
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq != int64(i+1) {
			t.Errorf("seq[%d] = %d, want %d", i, seq, i+1)
		}
	}
}
