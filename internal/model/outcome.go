package model

// Outcome is the grading result for one assessment question.
// Awarded is always in [0, Points]. Ungraded marks a coding answer the
// evaluator could not score; it contributes zero but is never dropped.
type Outcome struct {
	QuestionID      string
	Skill           string
	Type            QuestionType
	Difficulty      Difficulty
	Points          int
	Awarded         int
	Correct         bool
	Answered        bool
	Ungraded        bool
	ReferenceAnswer string
	Explanation     string
}
