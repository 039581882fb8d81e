package service

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"skillcheck/config"
	"skillcheck/internal/dto"
	"skillcheck/internal/model"
	"skillcheck/internal/repository"
)

// GraderService grades a batch submission against its stored assessment.
type GraderService interface {
	GradeSubmission(req dto.SubmitAssessmentRequest) (*dto.AssessmentResultResponse, error)
}

type graderService struct {
	sessions   repository.SessionRepository
	results    repository.ResultRepository
	evaluator  CodingEvaluator
	classifier ClassifierService
	feedback   FeedbackService
	cfg        *config.Config
}

func NewGraderService(
	sessions repository.SessionRepository,
	results repository.ResultRepository,
	evaluator CodingEvaluator,
	classifier ClassifierService,
	feedback FeedbackService,
	cfg *config.Config,
) GraderService {
	return &graderService{
		sessions:   sessions,
		results:    results,
		evaluator:  evaluator,
		classifier: classifier,
		feedback:   feedback,
		cfg:        cfg,
	}
}

// GradeSubmission looks the assessment up in the session store, wins the
// open -> submitted transition before touching any answer (so a submission is
// graded at most once), then grades every assessment question in order.
// Duplicate question ids in the submission resolve last-write-wins; answer
// records for unknown question ids are recorded as ignored and grading
// continues.
func (s *graderService) GradeSubmission(req dto.SubmitAssessmentRequest) (*dto.AssessmentResultResponse, error) {
	assessment, err := s.sessions.Get(req.AssessmentID)
	if err != nil {
		log.Warn().Err(err).Str("assessment_id", req.AssessmentID).Msg("GradeSubmission: session lookup failed")
		return nil, err
	}

	if err := s.sessions.MarkSubmitted(req.AssessmentID); err != nil {
		log.Warn().Err(err).Str("assessment_id", req.AssessmentID).Msg("GradeSubmission: could not win submit transition")
		return nil, err
	}

	known := make(map[string]*model.AssessmentQuestion, len(assessment.Questions))
	for i := range assessment.Questions {
		known[assessment.Questions[i].QuestionID] = &assessment.Questions[i]
	}

	answers := make(map[string]string, len(req.Answers))
	var ignored []string
	ignoredSeen := make(map[string]bool)
	for _, record := range req.Answers {
		if _, ok := known[record.QuestionID]; !ok {
			log.Warn().Str("assessment_id", req.AssessmentID).Str("question_id", record.QuestionID).
				Msg("GradeSubmission: answer for question not in assessment, ignoring record")
			if !ignoredSeen[record.QuestionID] {
				ignoredSeen[record.QuestionID] = true
				ignored = append(ignored, record.QuestionID)
			}
			continue
		}
		answers[record.QuestionID] = record.UserAnswer
	}

	outcomes := make([]model.Outcome, 0, len(assessment.Questions))
	score := 0
	for i := range assessment.Questions {
		question := &assessment.Questions[i]
		outcome := s.gradeQuestion(question, answers[question.QuestionID])
		score += outcome.Awarded
		outcomes = append(outcomes, outcome)
	}

	maxScore := assessment.TotalPoints
	percentage := 0
	if maxScore > 0 {
		percentage = int(math.Round(float64(score) / float64(maxScore) * 100))
	}

	confidenceLevel, passed := s.classifier.Classify(percentage)
	feedback, recommendations := s.feedback.Synthesize(outcomes)

	result := &dto.AssessmentResultResponse{
		AssessmentID:       assessment.AssessmentID,
		UserID:             req.UserID,
		Skill:              assessment.Skill,
		Score:              score,
		MaxScore:           maxScore,
		Percentage:         percentage,
		ConfidenceLevel:    confidenceLevel,
		Passed:             passed,
		Feedback:           feedback,
		Recommendations:    recommendations,
		IgnoredQuestionIDs: ignored,
	}

	s.persistResult(result)

	log.Info().
		Str("assessment_id", assessment.AssessmentID).
		Int("score", score).
		Int("max_score", maxScore).
		Int("percentage", percentage).
		Bool("passed", passed).
		Msg("Submission graded")
	return result, nil
}

func (s *graderService) gradeQuestion(question *model.AssessmentQuestion, userAnswer string) model.Outcome {
	outcome := model.Outcome{
		QuestionID:      question.QuestionID,
		Skill:           question.Skill,
		Type:            question.Type,
		Difficulty:      question.Difficulty,
		Points:          question.Points,
		Answered:        strings.TrimSpace(userAnswer) != "",
		ReferenceAnswer: question.ReferenceAnswer,
		Explanation:     question.Explanation,
	}
	if !outcome.Answered {
		return outcome
	}

	switch question.Type {
	case model.QuestionTypeCoding:
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.Assessment.EvaluatorTimeoutSeconds)*time.Second)
		defer cancel()

		fraction, evalFeedback, err := s.evaluator.Evaluate(ctx, question, userAnswer)
		if err != nil {
			log.Warn().Err(err).Str("question_id", question.QuestionID).Msg("Coding evaluator unavailable, scoring 0 and flagging ungraded")
			outcome.Ungraded = true
			return outcome
		}
		outcome.Awarded = int(math.Floor(fraction * float64(question.Points)))
		outcome.Correct = outcome.Awarded == question.Points
		if evalFeedback != "" {
			outcome.Explanation = evalFeedback
		}
	default:
		// multiple_choice, theoretical and aptitude are closed-form: trimmed,
		// case-insensitive equality against the reference answer. Full points
		// or zero, no partial credit.
		if strings.EqualFold(strings.TrimSpace(userAnswer), strings.TrimSpace(question.ReferenceAnswer)) {
			outcome.Awarded = question.Points
			outcome.Correct = true
		}
	}
	return outcome
}

// persistResult stores the Result for idempotent re-fetch. Best effort: the
// grading response does not depend on it.
func (s *graderService) persistResult(result *dto.AssessmentResultResponse) {
	row := &model.AssessmentResult{
		AssessmentID:       result.AssessmentID,
		UserID:             result.UserID,
		Skill:              result.Skill,
		Score:              result.Score,
		MaxScore:           result.MaxScore,
		Percentage:         result.Percentage,
		ConfidenceLevel:    result.ConfidenceLevel,
		Passed:             result.Passed,
		Feedback:           mustJSON(result.Feedback),
		Recommendations:    mustJSON(result.Recommendations),
		IgnoredQuestionIDs: mustJSON(result.IgnoredQuestionIDs),
	}
	if err := s.results.Create(row); err != nil {
		log.Error().Err(err).Str("assessment_id", result.AssessmentID).Msg("Failed to persist assessment result")
	}
}

func mustJSON(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(raw)
}

// decodeStringList is the inverse of mustJSON for reading persisted results.
func decodeStringList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		log.Warn().Err(err).Msg("Failed to decode persisted string list")
		return nil
	}
	return values
}
