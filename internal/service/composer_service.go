package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"skillcheck/config"
	"skillcheck/internal/model"
	"skillcheck/internal/repository"
)

// ErrInsufficientBank means the question bank cannot supply the minimum
// required count for some curriculum bucket. Fatal for that generation
// request; never retried.
var ErrInsufficientBank = errors.New("question bank cannot satisfy curriculum")

// ComposerService builds immutable assessments from the question bank
// following the configured curriculum.
type ComposerService interface {
	Compose(userID, skill string) (*model.Assessment, error)
}

type composerService struct {
	bank repository.QuestionRepository
	cfg  *config.Config

	mu  sync.Mutex
	rng *rand.Rand
}

// NewComposerService creates a composer. The rand source is injected so
// tests can pin a seed and get a reproducible draw.
func NewComposerService(bank repository.QuestionRepository, cfg *config.Config, rng *rand.Rand) ComposerService {
	return &composerService{bank: bank, cfg: cfg, rng: rng}
}

// Compose draws, without replacement, each curriculum bucket filtered by
// skill (aptitude buckets draw from the generic pool), concatenates the
// buckets in curriculum order and assigns bucket point values. TotalPoints is
// always the computed sum, never configured.
func (s *composerService) Compose(userID, skill string) (*model.Assessment, error) {
	assessmentID := uuid.NewString()
	questions := make([]model.AssessmentQuestion, 0, 24)
	totalPoints := 0

	for _, bucket := range s.cfg.Assessment.Curriculum {
		bucketSkill := skill
		if bucket.SkillAgnostic {
			bucketSkill = ""
		}

		pool, err := s.bank.FindBucket(bucketSkill, model.QuestionType(bucket.QuestionType), model.Difficulty(bucket.Difficulty))
		if err != nil {
			log.Error().Err(err).Str("skill", skill).Str("type", bucket.QuestionType).Msg("Compose: bank query failed")
			return nil, fmt.Errorf("failed to query question bank: %w", err)
		}
		if len(pool) < bucket.Count {
			return nil, fmt.Errorf("%w: need %d %s/%s questions for skill %q, bank has %d",
				ErrInsufficientBank, bucket.Count, bucket.QuestionType, bucket.Difficulty, skill, len(pool))
		}

		for _, idx := range s.draw(len(pool), bucket.Count) {
			q := pool[idx]
			questions = append(questions, model.AssessmentQuestion{
				QuestionID:      fmt.Sprintf("%s-q%d", assessmentID, len(questions)+1),
				Skill:           q.Skill,
				Text:            q.Text,
				Type:            q.Type,
				Difficulty:      q.Difficulty,
				Options:         q.OptionList(),
				ReferenceAnswer: q.ReferenceAnswer,
				Explanation:     q.Explanation,
				Points:          bucket.PointsPerQuestion,
				CodeTemplate:    q.CodeTemplate,
			})
			totalPoints += bucket.PointsPerQuestion
		}
	}

	assessment := &model.Assessment{
		AssessmentID:     assessmentID,
		UserID:           userID,
		Skill:            skill,
		Questions:        questions,
		TotalPoints:      totalPoints,
		TimeLimitMinutes: s.cfg.Assessment.TimeLimitMinutes,
		CreatedAt:        time.Now(),
		Status:           model.AssessmentStatusOpen,
	}

	log.Info().
		Str("assessment_id", assessmentID).
		Str("skill", skill).
		Int("questions", len(questions)).
		Int("total_points", totalPoints).
		Msg("Assessment composed")
	return assessment, nil
}

// draw picks k distinct indices out of n. rand.Rand is not safe for
// concurrent use, so the source is guarded.
func (s *composerService) draw(n, k int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Perm(n)[:k]
}
