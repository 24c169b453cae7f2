package session

import "testing"

func sheetWith(values ...int) *AnswerSheet {
	return RestoreAnswerSheet(values)
}

func TestNavigatorJumpClamps(t *testing.T) {
	nav := NewNavigator(5)
	nav.JumpTo(12)
	if nav.Current() != 4 {
		t.Errorf("JumpTo(12) landed on %d, want 4", nav.Current())
	}
	nav.JumpTo(-3)
	if nav.Current() != 0 {
		t.Errorf("JumpTo(-3) landed on %d, want 0", nav.Current())
	}
}

func TestNavigatorPreviousClampsAtZero(t *testing.T) {
	nav := NewNavigator(3)
	nav.Previous()
	if nav.Current() != 0 {
		t.Errorf("Previous at 0 moved to %d", nav.Current())
	}
}

func TestFindNextUnansweredWrapsAround(t *testing.T) {
	nav := NewNavigator(5)
	// answered: 0, 2, 4 — unanswered: 1, 3
	sheet := sheetWith(0, -1, 1, -1, 2)

	if got := nav.FindNextUnanswered(3, sheet); got != 3 {
		t.Errorf("FindNextUnanswered(3) = %d, want 3 (scan is inclusive of from)", got)
	}
	if got := nav.FindNextUnanswered(4, sheet); got != 1 {
		t.Errorf("FindNextUnanswered(4) = %d, want 1 (wrap to earliest skipped)", got)
	}
}

func TestFindNextUnansweredCompleteSheet(t *testing.T) {
	nav := NewNavigator(3)
	sheet := sheetWith(0, 1, 0)
	if got := nav.FindNextUnanswered(0, sheet); got != -1 {
		t.Errorf("FindNextUnanswered on complete sheet = %d, want -1", got)
	}
}

func TestNextSkipsAnsweredQuestions(t *testing.T) {
	nav := NewNavigator(4)
	sheet := sheetWith(0, 1, -1, -1)
	nav.Next(sheet) // from 0, seek from 1: 1 answered, 2 open
	if nav.Current() != 2 {
		t.Fatalf("Next landed on %d, want 2", nav.Current())
	}
}

func TestNextOnCompleteSheetStaysPut(t *testing.T) {
	nav := NewNavigator(3)
	nav.JumpTo(1)
	sheet := sheetWith(0, 0, 0)
	nav.Next(sheet)
	if nav.Current() != 1 {
		t.Errorf("Next on complete sheet moved to %d, want 1", nav.Current())
	}
}

func TestReviewModeIsSequential(t *testing.T) {
	nav := NewNavigator(3)
	nav.SetReview(true)
	sheet := sheetWith(0, 0, 0) // all answered; review ignores that
	nav.Next(sheet)
	if nav.Current() != 1 {
		t.Fatalf("review Next landed on %d, want 1", nav.Current())
	}
	nav.Next(sheet)
	nav.Next(sheet) // clamp at end
	if nav.Current() != 2 {
		t.Errorf("review Next past end landed on %d, want 2", nav.Current())
	}
	nav.Previous()
	if nav.Current() != 1 {
		t.Errorf("review Previous landed on %d, want 1", nav.Current())
	}
}
