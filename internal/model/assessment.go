package model

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

type AssessmentStatus string

const (
	AssessmentStatusOpen      AssessmentStatus = "open"
	AssessmentStatusSubmitted AssessmentStatus = "submitted"
	AssessmentStatusExpired   AssessmentStatus = "expired"
)

// AssessmentQuestion is an immutable snapshot of a bank question inside a
// composed assessment. QuestionID is namespaced by the assessment so answers
// can never cross tests. Points come from the curriculum bucket, not from the
// bank row.
type AssessmentQuestion struct {
	QuestionID      string       `json:"question_id"`
	Skill           string       `json:"skill"`
	Text            string       `json:"question_text"`
	Type            QuestionType `json:"question_type"`
	Difficulty      Difficulty   `json:"difficulty,omitempty"`
	Options         []string     `json:"options,omitempty"`
	ReferenceAnswer string       `json:"reference_answer"`
	Explanation     string       `json:"explanation,omitempty"`
	Points          int          `json:"points"`
	CodeTemplate    string       `json:"code_template,omitempty"`
}

// Assessment is a generated test instance. Immutable once composed; the only
// state that moves is the session status in the store.
type Assessment struct {
	AssessmentID     string
	UserID           string
	Skill            string
	Questions        []AssessmentQuestion
	TotalPoints      int
	TimeLimitMinutes int
	CreatedAt        time.Time
	Status           AssessmentStatus
}

// AssessmentSession is the stored form of an Assessment between generation
// and grading. It owns the reference answers for that window; nothing else
// persists them. Status transitions: open -> submitted (exactly once, via a
// conditional update) or open -> expired (lazily, on read past ExpiresAt).
type AssessmentSession struct {
	AssessmentID     string           `gorm:"primarykey;size:64" json:"assessment_id"`
	UserID           string           `json:"user_id" gorm:"index"`
	Skill            string           `json:"skill"`
	Questions        datatypes.JSON   `json:"-" gorm:"not null"` // serialized AssessmentQuestion list, reference answers included
	TotalPoints      int              `json:"total_points"`
	TimeLimitMinutes int              `json:"time_limit_minutes"`
	Status           AssessmentStatus `json:"status" gorm:"not null;index"`
	ExpiresAt        time.Time        `json:"expires_at" gorm:"not null"`
	CreatedAt        time.Time        `json:"created_at"`
}

// NewAssessmentSession serializes an Assessment into its stored form.
func NewAssessmentSession(a *Assessment, expiresAt time.Time) (*AssessmentSession, error) {
	raw, err := json.Marshal(a.Questions)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize assessment questions: %w", err)
	}
	return &AssessmentSession{
		AssessmentID:     a.AssessmentID,
		UserID:           a.UserID,
		Skill:            a.Skill,
		Questions:        datatypes.JSON(raw),
		TotalPoints:      a.TotalPoints,
		TimeLimitMinutes: a.TimeLimitMinutes,
		Status:           AssessmentStatusOpen,
		ExpiresAt:        expiresAt,
		CreatedAt:        a.CreatedAt,
	}, nil
}

// ToAssessment rebuilds the immutable Assessment from the stored row.
func (s *AssessmentSession) ToAssessment() (*Assessment, error) {
	var questions []AssessmentQuestion
	if err := json.Unmarshal(s.Questions, &questions); err != nil {
		return nil, fmt.Errorf("failed to deserialize assessment questions for %s: %w", s.AssessmentID, err)
	}
	return &Assessment{
		AssessmentID:     s.AssessmentID,
		UserID:           s.UserID,
		Skill:            s.Skill,
		Questions:        questions,
		TotalPoints:      s.TotalPoints,
		TimeLimitMinutes: s.TimeLimitMinutes,
		CreatedAt:        s.CreatedAt,
		Status:           s.Status,
	}, nil
}
