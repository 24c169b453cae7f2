package session

import (
	"testing"

	"github.com/sthiel/mentiq/internal/score"
)

func TestAnswerSheetStartsUnanswered(t *testing.T) {
	sheet := NewAnswerSheet(5)
	if sheet.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", sheet.Len())
	}
	if sheet.AnsweredCount() != 0 {
		t.Errorf("AnsweredCount() = %d, want 0", sheet.AnsweredCount())
	}
	for i := 0; i < 5; i++ {
		if sheet.At(i) != score.Unanswered {
			t.Errorf("At(%d) = %d, want unanswered", i, sheet.At(i))
		}
	}
}

func TestAnswerSheetSelectAndOverwrite(t *testing.T) {
	sheet := NewAnswerSheet(3)
	sheet.Select(1, 2)
	if sheet.At(1) != 2 {
		t.Fatalf("At(1) = %d, want 2", sheet.At(1))
	}
	sheet.Select(1, 0)
	if sheet.At(1) != 0 {
		t.Errorf("after overwrite At(1) = %d, want 0", sheet.At(1))
	}
	if sheet.AnsweredCount() != 1 {
		t.Errorf("AnsweredCount() = %d, want 1", sheet.AnsweredCount())
	}
}

func TestAnswerSheetCompletion(t *testing.T) {
	sheet := NewAnswerSheet(2)
	if sheet.IsComplete() {
		t.Fatal("empty sheet reported complete")
	}
	sheet.Select(0, 1)
	if sheet.IsComplete() {
		t.Fatal("half answered sheet reported complete")
	}
	sheet.Select(1, 0)
	if !sheet.IsComplete() {
		t.Fatal("fully answered sheet not reported complete")
	}
}

func TestAnswerSheetTakeJustAnsweredConsumesOnce(t *testing.T) {
	sheet := NewAnswerSheet(2)
	if sheet.TakeJustAnswered() {
		t.Fatal("flag set before any selection")
	}
	sheet.Select(0, 0)
	if !sheet.TakeJustAnswered() {
		t.Fatal("flag not set after selection")
	}
	if sheet.TakeJustAnswered() {
		t.Fatal("flag returned true twice for one selection")
	}
}

func TestAnswerSheetSelectOutOfRangePanics(t *testing.T) {
	sheet := NewAnswerSheet(2)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range question index")
		}
	}()
	sheet.Select(5, 0)
}

func TestRestoreAnswerSheetCopiesValues(t *testing.T) {
	vals := []int{0, score.Unanswered, 3}
	sheet := RestoreAnswerSheet(vals)
	vals[0] = 9
	if sheet.At(0) != 0 {
		t.Errorf("restored sheet aliases input slice")
	}
	if sheet.AnsweredCount() != 2 {
		t.Errorf("AnsweredCount() = %d, want 2", sheet.AnsweredCount())
	}
}
