// Package score turns a finished answer sheet into a graded result.
// Grading is a pure function of its inputs so that a stored, not yet
// viewed result can be recomputed later and come out identical.
package score

import (
	"github.com/sthiel/mentiq/internal/question"
)

// Unanswered marks a question slot with no selected option.
const Unanswered = -1

// Policy is the externally configured scoring behavior.
type Policy struct {
	// TimeBonus adds up to MaxTimeBonus index points scaled by the share
	// of the time budget left unused. Off by default: elapsed time does
	// not affect the score unless the caller opts in.
	TimeBonus bool
}

// MaxTimeBonus is the largest index bump the time bonus can add.
const MaxTimeBonus = 10

// CategoryScore is the per-kind correct/total tally.
type CategoryScore struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// AnswerDetail records how a single question was answered, for review.
type AnswerDetail struct {
	QuestionID string        `json:"question_id"`
	Kind       question.Kind `json:"kind"`
	Selected   int           `json:"selected"` // Unanswered if skipped
	Correct    int           `json:"correct"`
	Right      bool          `json:"right"`
}

// Identity is optional test-taker metadata collected by the submission
// form. Passed through to the result consumer without validation.
type Identity struct {
	Name     string `json:"name"`
	Age      string `json:"age"`
	Location string `json:"location"`
}

// Result is the graded outcome of a session. Immutable once produced.
type Result struct {
	RawScore        int                              `json:"raw_score"`
	Index           int                              `json:"index"`
	Classification  string                           `json:"classification"`
	Percentile      int                              `json:"percentile"`
	Categories      map[question.Kind]CategoryScore  `json:"categories"`
	CorrectCount    int                              `json:"correct_count"`
	IncorrectCount  int                              `json:"incorrect_count"`
	AccuracyPercent int                              `json:"accuracy_percent"`
	TimeSpentSecs   int                              `json:"time_spent_secs"`
	Answers         []AnswerDetail                   `json:"answers"`
}

// band is one step of the classification function. Bands are evaluated
// from the highest threshold downward; a score equal to a threshold
// falls into that band (inclusive lower bound).
type band struct {
	Threshold  int
	Label      string
	Percentile int
}

var bands = []band{
	{145, "genius", 99},
	{130, "very superior", 98},
	{120, "superior", 91},
	{110, "high average", 75},
	{90, "average", 50},
	{80, "low average", 16},
	{70, "borderline", 5},
	{0, "extremely low", 1},
}

// Grade scores a completed (or expired) session. Unanswered slots earn
// no credit. A selected option outside the question's option range is
// counted as incorrect rather than failing a finished assessment.
func Grade(set *question.Set, answers []int, elapsedSecs int, pol Policy) *Result {
	n := set.Len()

	r := &Result{
		Categories:    make(map[question.Kind]CategoryScore, len(question.Kinds)),
		Answers:       make([]AnswerDetail, 0, n),
		TimeSpentSecs: elapsedSecs,
	}

	for i := 0; i < n; i++ {
		q := set.At(i)

		selected := Unanswered
		if i < len(answers) {
			selected = answers[i]
		}
		if selected < Unanswered || selected >= len(q.Options) {
			selected = Unanswered
		}

		right := selected == q.Correct
		if right {
			r.CorrectCount++
		} else {
			r.IncorrectCount++
		}

		cs := r.Categories[q.Kind]
		cs.Total++
		if right {
			cs.Correct++
		}
		r.Categories[q.Kind] = cs

		r.Answers = append(r.Answers, AnswerDetail{
			QuestionID: q.ID,
			Kind:       q.Kind,
			Selected:   selected,
			Correct:    q.Correct,
			Right:      right,
		})
	}

	r.RawScore = r.CorrectCount
	if n > 0 {
		r.AccuracyPercent = (r.CorrectCount*100 + n/2) / n
	}
	r.Index = deriveIndex(r.RawScore, n)

	if pol.TimeBonus {
		r.Index += timeBonus(elapsedSecs, set.TotalTimeSecs)
	}

	r.Classification, r.Percentile = classify(r.Index)
	return r
}

// deriveIndex maps a raw score onto the 55-145 index scale.
func deriveIndex(raw, total int) int {
	if total <= 0 {
		return 55
	}
	return 55 + (raw*90+total/2)/total
}

// timeBonus scales MaxTimeBonus by the unused share of the time budget.
func timeBonus(elapsedSecs, totalSecs int) int {
	if totalSecs <= 0 || elapsedSecs >= totalSecs {
		return 0
	}
	remaining := totalSecs - elapsedSecs
	return (remaining*MaxTimeBonus + totalSecs/2) / totalSecs
}

// classify walks the band table from the top; the first threshold not
// exceeding the index wins.
func classify(index int) (string, int) {
	for _, b := range bands {
		if index >= b.Threshold {
			return b.Label, b.Percentile
		}
	}
	last := bands[len(bands)-1]
	return last.Label, last.Percentile
}
