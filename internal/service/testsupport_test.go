package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"skillcheck/config"
	"skillcheck/internal/model"
	"skillcheck/internal/repository"
)

// memBank is an in-memory QuestionRepository for service tests.
type memBank struct {
	mu        sync.Mutex
	nextID    uint
	questions []model.Question
}

func newMemBank() *memBank {
	return &memBank{nextID: 1}
}

func (b *memBank) Create(question *model.Question) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	question.ID = b.nextID
	b.nextID++
	b.questions = append(b.questions, *question)
	return nil
}

func (b *memBank) CreateBatch(questions []model.Question) error {
	for i := range questions {
		if err := b.Create(&questions[i]); err != nil {
			return err
		}
	}
	return nil
}

func (b *memBank) FindByID(id uint) (*model.Question, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.questions {
		if b.questions[i].ID == id {
			q := b.questions[i]
			return &q, nil
		}
	}
	return nil, errors.New("record not found")
}

func (b *memBank) FindBucket(skill string, qType model.QuestionType, difficulty model.Difficulty) ([]model.Question, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []model.Question
	for _, q := range b.questions {
		if q.Type != qType {
			continue
		}
		if skill != "" && q.Skill != skill {
			continue
		}
		if difficulty != "" && q.Difficulty != difficulty {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (b *memBank) FindAll(skill string, qType model.QuestionType, difficulty model.Difficulty) ([]model.Question, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []model.Question
	for _, q := range b.questions {
		if skill != "" && q.Skill != skill {
			continue
		}
		if qType != "" && q.Type != qType {
			continue
		}
		if difficulty != "" && q.Difficulty != difficulty {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (b *memBank) Count() (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return int64(len(b.questions)), nil
}

func (b *memBank) Delete(id uint) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.questions {
		if b.questions[i].ID == id {
			b.questions = append(b.questions[:i], b.questions[i+1:]...)
			return nil
		}
	}
	return errors.New("record not found")
}

type memSessionEntry struct {
	assessment model.Assessment
	status     model.AssessmentStatus
	expiresAt  time.Time
}

// memSessions is an in-memory SessionRepository honoring the same contract as
// the gorm-backed one: single-use submit transition and lazy expiry on read.
type memSessions struct {
	mu       sync.Mutex
	sessions map[string]*memSessionEntry
}

func newMemSessions() *memSessions {
	return &memSessions{sessions: make(map[string]*memSessionEntry)}
}

func (s *memSessions) Put(assessment *model.Assessment, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[assessment.AssessmentID] = &memSessionEntry{
		assessment: *assessment,
		status:     model.AssessmentStatusOpen,
		expiresAt:  expiresAt,
	}
	return nil
}

func (s *memSessions) Get(assessmentID string) (*model.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[assessmentID]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	if entry.status == model.AssessmentStatusExpired {
		return nil, repository.ErrSessionExpired
	}
	if entry.status == model.AssessmentStatusOpen && time.Now().After(entry.expiresAt) {
		entry.status = model.AssessmentStatusExpired
		return nil, repository.ErrSessionExpired
	}
	a := entry.assessment
	return &a, nil
}

func (s *memSessions) MarkSubmitted(assessmentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[assessmentID]
	if !ok {
		return repository.ErrSessionNotFound
	}
	if entry.status != model.AssessmentStatusOpen {
		return repository.ErrAlreadySubmitted
	}
	entry.status = model.AssessmentStatusSubmitted
	return nil
}

// memResults is an in-memory ResultRepository.
type memResults struct {
	mu      sync.Mutex
	results map[string]*model.AssessmentResult
}

func newMemResults() *memResults {
	return &memResults{results: make(map[string]*model.AssessmentResult)}
}

func (r *memResults) Create(result *model.AssessmentResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.results[result.AssessmentID]; ok {
		return errors.New("duplicate key")
	}
	r.results[result.AssessmentID] = result
	return nil
}

func (r *memResults) FindByAssessmentID(assessmentID string) (*model.AssessmentResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result, ok := r.results[assessmentID]
	if !ok {
		return nil, repository.ErrResultNotFound
	}
	return result, nil
}

// stubEvaluator is a canned CodingEvaluator.
type stubEvaluator struct {
	fraction float64
	feedback string
	err      error
	calls    int
}

func (e *stubEvaluator) Evaluate(ctx context.Context, question *model.AssessmentQuestion, userCode string) (float64, string, error) {
	e.calls++
	if e.err != nil {
		return 0, "", e.err
	}
	return e.fraction, e.feedback, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Assessment: config.Assessment{
			TimeLimitMinutes:        45,
			PassThresholdPercent:    60,
			EvaluatorTimeoutSeconds: 5,
			Curriculum:              config.DefaultCurriculum(),
			ProficiencyBands:        config.DefaultProficiencyBands(),
		},
	}
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// seedBank fills a bank with n questions per default curriculum bucket, plus a
// couple of spares, for the given skill.
func seedBank(b *memBank, skill string) {
	for i := 0; i < 6; i++ {
		b.Create(&model.Question{
			Skill: skill, Type: model.QuestionTypeMultipleChoice, Difficulty: model.DifficultyBeginner,
			Text: fmt.Sprintf("beginner question %d", i+1), Options: model.OptionsJSON([]string{"A", "B", "C", "D"}),
			ReferenceAnswer: "A", Explanation: "because A", Points: 10,
		})
		b.Create(&model.Question{
			Skill: skill, Type: model.QuestionTypeMultipleChoice, Difficulty: model.DifficultyIntermediate,
			Text: fmt.Sprintf("intermediate question %d", i+1), Options: model.OptionsJSON([]string{"A", "B", "C", "D"}),
			ReferenceAnswer: "B", Explanation: "because B", Points: 20,
		})
		b.Create(&model.Question{
			Skill: skill, Type: model.QuestionTypeMultipleChoice, Difficulty: model.DifficultyAdvanced,
			Text: fmt.Sprintf("advanced question %d", i+1), Options: model.OptionsJSON([]string{"A", "B", "C", "D"}),
			ReferenceAnswer: "C", Explanation: "because C", Points: 30,
		})
		b.Create(&model.Question{
			Skill: "General", Type: model.QuestionTypeAptitude, Difficulty: model.DifficultyIntermediate,
			Text: fmt.Sprintf("aptitude question %d", i+1), Options: model.OptionsJSON([]string{"10", "12", "14", "16"}),
			ReferenceAnswer: "12", Explanation: "arithmetic", Points: 5,
		})
	}
	b.Create(&model.Question{
		Skill: skill, Type: model.QuestionTypeCoding,
		Text: "write a function", ReferenceAnswer: "returns the expected output",
		Explanation: "reference solution", Points: 30, CodeTemplate: "def solve():\n    pass",
	})
	b.Create(&model.Question{
		Skill: skill, Type: model.QuestionTypeCoding,
		Text: "write another function", ReferenceAnswer: "returns the expected output",
		Explanation: "reference solution", Points: 30, CodeTemplate: "def solve2():\n    pass",
	})
}
