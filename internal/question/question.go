package question

// Kind categorizes what a question exercises.
type Kind string

const (
	KindLogic   Kind = "logic"
	KindMath    Kind = "math"
	KindVerbal  Kind = "verbal"
	KindSpatial Kind = "spatial"
	KindPattern Kind = "pattern"
)

// Kinds lists every valid question kind in display order.
var Kinds = []Kind{KindLogic, KindMath, KindVerbal, KindSpatial, KindPattern}

// Difficulty is the author-assigned difficulty of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// Question is a single test item. Questions are created at set load time
// and never mutated afterwards.
type Question struct {
	// ID uniquely identifies the question within its set.
	ID string `json:"id"`

	// Kind is the category the question belongs to.
	Kind Kind `json:"kind"`

	// Difficulty is the authored difficulty level.
	Difficulty Difficulty `json:"difficulty"`

	// Prompt is the question text shown to the test taker.
	Prompt string `json:"prompt"`

	// Options is the ordered list of answer options (2 to 6 entries).
	Options []string `json:"options"`

	// Correct is the index into Options of the right answer.
	Correct int `json:"correct"`

	// Explanation is a short worked justification shown in review mode.
	Explanation string `json:"explanation"`
}

// Set is an ordered, finite question list with a total time budget.
// A Set is immutable for the lifetime of a session.
type Set struct {
	// Name identifies the set ("Standard 20", a generated topic, etc).
	Name string `json:"name"`

	// TotalTimeSecs is the time budget for answering the whole set.
	TotalTimeSecs int `json:"total_time_secs"`

	// Questions is the ordered question list.
	Questions []Question `json:"questions"`
}

// Len returns the number of questions in the set.
func (s *Set) Len() int {
	return len(s.Questions)
}

// At returns the question at index i. Panics on out-of-range access,
// which is a programming error rather than a user-facing condition.
func (s *Set) At(i int) *Question {
	return &s.Questions[i]
}
