package service

import (
	"time"

	"github.com/rs/zerolog/log"

	"skillcheck/internal/dto"
	"skillcheck/internal/model"
	"skillcheck/internal/repository"
)

// AssessmentService is the candidate-facing lifecycle: generate a test and
// re-fetch a persisted result.
type AssessmentService interface {
	GenerateAssessment(req dto.GenerateAssessmentRequest) (*dto.AssessmentResponse, error)
	GetResult(assessmentID string) (*dto.AssessmentResultResponse, error)
}

type assessmentService struct {
	composer ComposerService
	sessions repository.SessionRepository
	results  repository.ResultRepository
}

func NewAssessmentService(composer ComposerService, sessions repository.SessionRepository, results repository.ResultRepository) AssessmentService {
	return &assessmentService{composer: composer, sessions: sessions, results: results}
}

// GenerateAssessment composes an assessment, stores the session (with
// reference answers) and returns the candidate view without them.
func (s *assessmentService) GenerateAssessment(req dto.GenerateAssessmentRequest) (*dto.AssessmentResponse, error) {
	assessment, err := s.composer.Compose(req.UserID, req.PrimarySkill)
	if err != nil {
		return nil, err
	}

	expiresAt := assessment.CreatedAt.Add(time.Duration(assessment.TimeLimitMinutes) * time.Minute)
	if err := s.sessions.Put(assessment, expiresAt); err != nil {
		log.Error().Err(err).Str("assessment_id", assessment.AssessmentID).Msg("Failed to store assessment session")
		return nil, err
	}

	questions := make([]dto.AssessmentQuestionView, len(assessment.Questions))
	for i, q := range assessment.Questions {
		questions[i] = dto.AssessmentQuestionView{
			QuestionID:   q.QuestionID,
			Skill:        q.Skill,
			QuestionText: q.Text,
			QuestionType: string(q.Type),
			Difficulty:   string(q.Difficulty),
			Options:      q.Options,
			Points:       q.Points,
			CodeTemplate: q.CodeTemplate,
		}
	}

	return &dto.AssessmentResponse{
		AssessmentID:     assessment.AssessmentID,
		Skill:            assessment.Skill,
		Questions:        questions,
		TotalPoints:      assessment.TotalPoints,
		TimeLimitMinutes: assessment.TimeLimitMinutes,
	}, nil
}

func (s *assessmentService) GetResult(assessmentID string) (*dto.AssessmentResultResponse, error) {
	row, err := s.results.FindByAssessmentID(assessmentID)
	if err != nil {
		return nil, err
	}
	return resultRowToDTO(row), nil
}

func resultRowToDTO(row *model.AssessmentResult) *dto.AssessmentResultResponse {
	return &dto.AssessmentResultResponse{
		AssessmentID:       row.AssessmentID,
		UserID:             row.UserID,
		Skill:              row.Skill,
		Score:              row.Score,
		MaxScore:           row.MaxScore,
		Percentage:         row.Percentage,
		ConfidenceLevel:    row.ConfidenceLevel,
		Passed:             row.Passed,
		Feedback:           decodeStringList(row.Feedback),
		Recommendations:    decodeStringList(row.Recommendations),
		IgnoredQuestionIDs: decodeStringList(row.IgnoredQuestionIDs),
	}
}
