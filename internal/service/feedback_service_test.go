package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillcheck/internal/model"
)

func TestSynthesize_WeaknessLinesFollowQuestionOrder(t *testing.T) {
	feedback, _ := NewFeedbackService().Synthesize([]model.Outcome{
		{QuestionID: "a-q1", Skill: "Python", Type: model.QuestionTypeMultipleChoice, Difficulty: model.DifficultyBeginner,
			Points: 10, Answered: true, ReferenceAnswer: "A", Explanation: "A is right"},
		{QuestionID: "a-q2", Skill: "Python", Type: model.QuestionTypeMultipleChoice, Difficulty: model.DifficultyBeginner,
			Points: 10, Awarded: 10, Correct: true, Answered: true},
		{QuestionID: "a-q3", Skill: "Python", Type: model.QuestionTypeAptitude,
			Points: 5, ReferenceAnswer: "12", Explanation: "arithmetic"},
	})

	require.Len(t, feedback, 2)
	assert.Equal(t, "✗ Question a-q1 (Python): Incorrect. Correct answer: A. Explanation: A is right", feedback[0])
	assert.Equal(t, "✗ Question a-q3 (Python): Not answered. Correct answer: 12. Explanation: arithmetic", feedback[1])
}

func TestSynthesize_CorrectAdvancedGetsPraise(t *testing.T) {
	feedback, recommendations := NewFeedbackService().Synthesize([]model.Outcome{
		{QuestionID: "a-q1", Skill: "Python", Type: model.QuestionTypeMultipleChoice, Difficulty: model.DifficultyAdvanced,
			Points: 30, Awarded: 30, Correct: true, Answered: true},
		{QuestionID: "a-q2", Skill: "Python", Type: model.QuestionTypeMultipleChoice, Difficulty: model.DifficultyBeginner,
			Points: 10, Awarded: 10, Correct: true, Answered: true},
	})

	assert.Equal(t, []string{"✓ Question a-q1 (Python): Correct!"}, feedback)
	assert.Empty(t, recommendations)
}

func TestSynthesize_CodingLines(t *testing.T) {
	svc := NewFeedbackService()

	feedback, _ := svc.Synthesize([]model.Outcome{
		{QuestionID: "a-q1", Skill: "Python", Type: model.QuestionTypeCoding, Points: 30},
	})
	assert.Equal(t, []string{"✗ Coding Challenge (Python): Incomplete"}, feedback)

	feedback, _ = svc.Synthesize([]model.Outcome{
		{QuestionID: "a-q1", Skill: "Python", Type: model.QuestionTypeCoding, Points: 30, Answered: true, Ungraded: true},
	})
	assert.Equal(t, []string{"✗ Coding Challenge (Python): Submitted but not graded (evaluator unavailable)"}, feedback)

	feedback, _ = svc.Synthesize([]model.Outcome{
		{QuestionID: "a-q1", Skill: "Python", Type: model.QuestionTypeCoding, Points: 30, Answered: true, Awarded: 21},
	})
	assert.Equal(t, []string{"✗ Coding Challenge (Python): 21/30 points"}, feedback)
}

func TestSynthesize_OneRecommendationPerSkill(t *testing.T) {
	_, recommendations := NewFeedbackService().Synthesize([]model.Outcome{
		{QuestionID: "a-q1", Skill: "Python", Type: model.QuestionTypeMultipleChoice, Points: 10, Answered: true},
		{QuestionID: "a-q2", Skill: "Python", Type: model.QuestionTypeMultipleChoice, Points: 10, Answered: true},
		{QuestionID: "a-q3", Skill: "General", Type: model.QuestionTypeAptitude, Points: 5, Answered: true},
		{QuestionID: "a-q4", Skill: "Python", Type: model.QuestionTypeCoding, Points: 30},
	})

	// First weakness per skill decides the wording, in first-hit order. Python
	// is already covered by the MCQ miss when the coding miss arrives.
	assert.Equal(t, []string{"Review Python fundamentals", "Review General fundamentals"}, recommendations)
}

func TestSynthesize_PerfectRun(t *testing.T) {
	feedback, recommendations := NewFeedbackService().Synthesize([]model.Outcome{
		{QuestionID: "a-q1", Skill: "Python", Type: model.QuestionTypeMultipleChoice, Difficulty: model.DifficultyBeginner,
			Points: 10, Awarded: 10, Correct: true, Answered: true},
		{QuestionID: "a-q2", Skill: "Python", Type: model.QuestionTypeCoding,
			Points: 30, Awarded: 30, Correct: true, Answered: true},
	})

	assert.Empty(t, feedback)
	assert.Empty(t, recommendations)
}
