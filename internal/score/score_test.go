package score

import (
	"reflect"
	"testing"

	"github.com/sthiel/mentiq/internal/question"
)

// gridSet builds a set of n questions cycling through the kinds, with
// the correct option always at index 1.
func gridSet(n, totalSecs int) *question.Set {
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = question.Question{
			ID:         string(rune('a' + i)),
			Kind:       question.Kinds[i%len(question.Kinds)],
			Difficulty: question.DifficultyMedium,
			Prompt:     "pick the second option",
			Options:    []string{"first", "second", "third", "fourth"},
			Correct:    1,
		}
	}
	return &question.Set{Name: "grid", TotalTimeSecs: totalSecs, Questions: qs}
}

func TestGradeAllCorrectExceptOne(t *testing.T) {
	set := gridSet(10, 1500)
	answers := make([]int, 10)
	for i := range answers {
		answers[i] = 1
	}
	answers[3] = 0 // wrong

	r := Grade(set, answers, 600, Policy{})

	if r.CorrectCount != 9 {
		t.Errorf("CorrectCount = %d, want 9", r.CorrectCount)
	}
	if r.IncorrectCount != 1 {
		t.Errorf("IncorrectCount = %d, want 1", r.IncorrectCount)
	}
	if r.AccuracyPercent != 90 {
		t.Errorf("AccuracyPercent = %d, want 90", r.AccuracyPercent)
	}
	if r.TimeSpentSecs != 600 {
		t.Errorf("TimeSpentSecs = %d, want 600", r.TimeSpentSecs)
	}

	// 9/10 correct derives index 55 + 81 = 136: the 130 band, inclusive.
	if r.Index != 136 {
		t.Errorf("Index = %d, want 136", r.Index)
	}
	if r.Classification != "very superior" {
		t.Errorf("Classification = %q, want %q", r.Classification, "very superior")
	}
}

func TestGradeDeterministic(t *testing.T) {
	set := gridSet(10, 1500)
	answers := []int{1, 0, 1, Unanswered, 1, 2, 1, 1, Unanswered, 1}

	a := Grade(set, answers, 777, Policy{})
	b := Grade(set, answers, 777, Policy{})

	if !reflect.DeepEqual(a, b) {
		t.Error("two gradings of identical input differ")
	}
}

func TestGradeUnansweredEarnsNoCredit(t *testing.T) {
	set := gridSet(5, 600)
	answers := []int{Unanswered, Unanswered, Unanswered, Unanswered, Unanswered}

	r := Grade(set, answers, 100, Policy{})

	if r.CorrectCount != 0 {
		t.Errorf("CorrectCount = %d, want 0", r.CorrectCount)
	}
	if r.IncorrectCount != 5 {
		t.Errorf("IncorrectCount = %d, want 5", r.IncorrectCount)
	}
	if r.Classification != "extremely low" {
		t.Errorf("Classification = %q, want %q", r.Classification, "extremely low")
	}
}

func TestGradeOutOfRangeSelectionCountsIncorrect(t *testing.T) {
	set := gridSet(2, 600)
	// Option index 9 does not exist; grading must not panic and must
	// count the slot as incorrect.
	r := Grade(set, []int{9, 1}, 60, Policy{})

	if r.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", r.CorrectCount)
	}
	if r.Answers[0].Selected != Unanswered {
		t.Errorf("Answers[0].Selected = %d, want %d", r.Answers[0].Selected, Unanswered)
	}
}

func TestGradeBandBoundariesInclusive(t *testing.T) {
	tests := []struct {
		index int
		label string
	}{
		{145, "genius"},
		{144, "very superior"},
		{130, "very superior"},
		{129, "superior"},
		{120, "superior"},
		{110, "high average"},
		{109, "average"},
		{90, "average"},
		{89, "low average"},
		{80, "low average"},
		{79, "borderline"},
		{70, "borderline"},
		{69, "extremely low"},
	}

	for _, tt := range tests {
		label, _ := classify(tt.index)
		if label != tt.label {
			t.Errorf("classify(%d) = %q, want %q", tt.index, label, tt.label)
		}
	}
}

func TestGradePerCategoryBreakdown(t *testing.T) {
	set := gridSet(10, 1500) // two questions per kind
	answers := make([]int, 10)
	for i := range answers {
		answers[i] = 1
	}
	answers[0] = 0 // first logic question wrong

	r := Grade(set, answers, 100, Policy{})

	logic := r.Categories[question.KindLogic]
	if logic.Total != 2 || logic.Correct != 1 {
		t.Errorf("logic category = %+v, want 1/2", logic)
	}
	math := r.Categories[question.KindMath]
	if math.Total != 2 || math.Correct != 2 {
		t.Errorf("math category = %+v, want 2/2", math)
	}
}

func TestTimeBonusPolicy(t *testing.T) {
	set := gridSet(10, 1000)
	answers := make([]int, 10)
	for i := range answers {
		answers[i] = 1
	}

	plain := Grade(set, answers, 500, Policy{})
	boosted := Grade(set, answers, 500, Policy{TimeBonus: true})

	if plain.Index != 145 {
		t.Errorf("plain Index = %d, want 145", plain.Index)
	}
	// Half the budget unused adds half of MaxTimeBonus.
	if boosted.Index != 150 {
		t.Errorf("boosted Index = %d, want 150", boosted.Index)
	}

	// Spending the full budget earns nothing even with the policy on.
	exhausted := Grade(set, answers, 1000, Policy{TimeBonus: true})
	if exhausted.Index != 145 {
		t.Errorf("exhausted Index = %d, want 145", exhausted.Index)
	}
}
