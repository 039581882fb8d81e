package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillcheck/internal/dto"
	"skillcheck/internal/model"
	"skillcheck/internal/repository"
)

func newAssessmentFixture(t *testing.T) (AssessmentService, *memSessions, *memResults) {
	t.Helper()
	bank := newMemBank()
	seedBank(bank, "Python")
	sessions := newMemSessions()
	results := newMemResults()
	composer := NewComposerService(bank, testConfig(), testRand())
	return NewAssessmentService(composer, sessions, results), sessions, results
}

func TestGenerateAssessment_HidesReferenceAnswers(t *testing.T) {
	svc, sessions, _ := newAssessmentFixture(t)

	resp, err := svc.GenerateAssessment(dto.GenerateAssessmentRequest{UserID: "user-1", PrimarySkill: "Python"})
	require.NoError(t, err)

	require.Len(t, resp.Questions, 21)
	assert.Equal(t, 355, resp.TotalPoints)
	assert.Equal(t, 45, resp.TimeLimitMinutes)

	// The session keeps the reference answers; the candidate view never
	// carries them. Compare against the stored copy question by question.
	stored, err := sessions.Get(resp.AssessmentID)
	require.NoError(t, err)
	for i, view := range resp.Questions {
		assert.NotEmpty(t, stored.Questions[i].ReferenceAnswer, "stored question %d", i+1)
		assert.Equal(t, stored.Questions[i].QuestionID, view.QuestionID)
		assert.Equal(t, stored.Questions[i].Text, view.QuestionText)
	}
}

func TestGenerateAssessment_SessionExpiryWindow(t *testing.T) {
	svc, sessions, _ := newAssessmentFixture(t)

	before := time.Now()
	resp, err := svc.GenerateAssessment(dto.GenerateAssessmentRequest{UserID: "user-1", PrimarySkill: "Python"})
	require.NoError(t, err)

	sessions.mu.Lock()
	entry := sessions.sessions[resp.AssessmentID]
	sessions.mu.Unlock()
	require.NotNil(t, entry)

	wantExpiry := before.Add(45 * time.Minute)
	assert.WithinDuration(t, wantExpiry, entry.expiresAt, 5*time.Second)
	assert.Equal(t, model.AssessmentStatusOpen, entry.status)
}

func TestGenerateAssessment_InsufficientBankPropagates(t *testing.T) {
	svc, _, _ := newAssessmentFixture(t)

	_, err := svc.GenerateAssessment(dto.GenerateAssessmentRequest{UserID: "user-1", PrimarySkill: "Cobol"})
	require.ErrorIs(t, err, ErrInsufficientBank)
}

func TestGetResult_RoundTrip(t *testing.T) {
	svc, _, results := newAssessmentFixture(t)

	results.Create(&model.AssessmentResult{
		AssessmentID:       "a1",
		UserID:             "user-1",
		Skill:              "Python",
		Score:              235,
		MaxScore:           355,
		Percentage:         66,
		ConfidenceLevel:    "Intermediate",
		Passed:             true,
		Feedback:           mustJSON([]string{"✗ Question a1-q2 (Python): Incorrect. Correct answer: B. Explanation: B is right"}),
		Recommendations:    mustJSON([]string{"Review Python fundamentals"}),
		IgnoredQuestionIDs: mustJSON(nil),
	})

	result, err := svc.GetResult("a1")
	require.NoError(t, err)
	assert.Equal(t, 235, result.Score)
	assert.Equal(t, 66, result.Percentage)
	assert.Equal(t, "Intermediate", result.ConfidenceLevel)
	assert.True(t, result.Passed)
	assert.Len(t, result.Feedback, 1)
	assert.Equal(t, []string{"Review Python fundamentals"}, result.Recommendations)
}

func TestGetResult_NotFound(t *testing.T) {
	svc, _, _ := newAssessmentFixture(t)

	_, err := svc.GetResult("missing")
	require.ErrorIs(t, err, repository.ErrResultNotFound)
}
