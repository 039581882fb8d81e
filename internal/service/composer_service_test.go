package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillcheck/internal/model"
)

func TestCompose_CurriculumShape(t *testing.T) {
	bank := newMemBank()
	seedBank(bank, "Python")
	composer := NewComposerService(bank, testConfig(), testRand())

	assessment, err := composer.Compose("user-1", "Python")
	require.NoError(t, err)

	require.Len(t, assessment.Questions, 21)
	assert.Equal(t, 355, assessment.TotalPoints) // 5*10 + 5*20 + 5*30 + 5*5 + 30
	assert.Equal(t, "Python", assessment.Skill)
	assert.Equal(t, model.AssessmentStatusOpen, assessment.Status)
	assert.Equal(t, 45, assessment.TimeLimitMinutes)
	assert.NotEmpty(t, assessment.AssessmentID)
}

func TestCompose_SectionOrder(t *testing.T) {
	bank := newMemBank()
	seedBank(bank, "Python")
	composer := NewComposerService(bank, testConfig(), testRand())

	assessment, err := composer.Compose("user-1", "Python")
	require.NoError(t, err)

	type bucket struct {
		qType      model.QuestionType
		difficulty model.Difficulty
		points     int
	}
	expected := []bucket{
		{model.QuestionTypeMultipleChoice, model.DifficultyBeginner, 10},
		{model.QuestionTypeMultipleChoice, model.DifficultyBeginner, 10},
		{model.QuestionTypeMultipleChoice, model.DifficultyBeginner, 10},
		{model.QuestionTypeMultipleChoice, model.DifficultyBeginner, 10},
		{model.QuestionTypeMultipleChoice, model.DifficultyBeginner, 10},
		{model.QuestionTypeMultipleChoice, model.DifficultyIntermediate, 20},
		{model.QuestionTypeMultipleChoice, model.DifficultyIntermediate, 20},
		{model.QuestionTypeMultipleChoice, model.DifficultyIntermediate, 20},
		{model.QuestionTypeMultipleChoice, model.DifficultyIntermediate, 20},
		{model.QuestionTypeMultipleChoice, model.DifficultyIntermediate, 20},
		{model.QuestionTypeMultipleChoice, model.DifficultyAdvanced, 30},
		{model.QuestionTypeMultipleChoice, model.DifficultyAdvanced, 30},
		{model.QuestionTypeMultipleChoice, model.DifficultyAdvanced, 30},
		{model.QuestionTypeMultipleChoice, model.DifficultyAdvanced, 30},
		{model.QuestionTypeMultipleChoice, model.DifficultyAdvanced, 30},
		{model.QuestionTypeAptitude, model.DifficultyIntermediate, 5},
		{model.QuestionTypeAptitude, model.DifficultyIntermediate, 5},
		{model.QuestionTypeAptitude, model.DifficultyIntermediate, 5},
		{model.QuestionTypeAptitude, model.DifficultyIntermediate, 5},
		{model.QuestionTypeAptitude, model.DifficultyIntermediate, 5},
		{model.QuestionTypeCoding, "", 30},
	}
	require.Len(t, assessment.Questions, len(expected))
	for i, want := range expected {
		got := assessment.Questions[i]
		assert.Equal(t, want.qType, got.Type, "question %d type", i+1)
		assert.Equal(t, want.difficulty, got.Difficulty, "question %d difficulty", i+1)
		assert.Equal(t, want.points, got.Points, "question %d points", i+1)
	}
}

func TestCompose_QuestionIDsNamespacedAndSequential(t *testing.T) {
	bank := newMemBank()
	seedBank(bank, "Python")
	composer := NewComposerService(bank, testConfig(), testRand())

	assessment, err := composer.Compose("user-1", "Python")
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i, q := range assessment.Questions {
		assert.Equal(t, fmt.Sprintf("%s-q%d", assessment.AssessmentID, i+1), q.QuestionID)
		assert.False(t, seen[q.QuestionID], "duplicate question id %s", q.QuestionID)
		seen[q.QuestionID] = true
	}
}

func TestCompose_NoDuplicateDraws(t *testing.T) {
	bank := newMemBank()
	seedBank(bank, "Python")
	composer := NewComposerService(bank, testConfig(), testRand())

	assessment, err := composer.Compose("user-1", "Python")
	require.NoError(t, err)

	// Each bucket draws without replacement, so no bank question may appear
	// twice in one assessment.
	seen := make(map[string]bool)
	for _, q := range assessment.Questions {
		assert.False(t, seen[q.Text], "bank question %q drawn twice", q.Text)
		seen[q.Text] = true
	}
}

func TestCompose_DeterministicForFixedSeed(t *testing.T) {
	bankA := newMemBank()
	seedBank(bankA, "Python")
	bankB := newMemBank()
	seedBank(bankB, "Python")

	a, err := NewComposerService(bankA, testConfig(), testRand()).Compose("user-1", "Python")
	require.NoError(t, err)
	b, err := NewComposerService(bankB, testConfig(), testRand()).Compose("user-1", "Python")
	require.NoError(t, err)

	require.Len(t, b.Questions, len(a.Questions))
	for i := range a.Questions {
		assert.Equal(t, a.Questions[i].Text, b.Questions[i].Text, "question %d", i+1)
	}
}

func TestCompose_InsufficientBank(t *testing.T) {
	bank := newMemBank()
	seedBank(bank, "Python")
	composer := NewComposerService(bank, testConfig(), testRand())

	// Bank only holds Python questions; a Go assessment cannot be filled.
	_, err := composer.Compose("user-1", "Go")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientBank), "expected ErrInsufficientBank, got %v", err)
}

func TestCompose_AptitudeIgnoresRequestedSkill(t *testing.T) {
	bank := newMemBank()
	seedBank(bank, "Python") // aptitude rows are seeded under "General"
	composer := NewComposerService(bank, testConfig(), testRand())

	assessment, err := composer.Compose("user-1", "Python")
	require.NoError(t, err)

	aptitude := 0
	for _, q := range assessment.Questions {
		if q.Type == model.QuestionTypeAptitude {
			aptitude++
			assert.Equal(t, "General", q.Skill)
		}
	}
	assert.Equal(t, 5, aptitude)
}
