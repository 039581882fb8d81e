package model

import (
	"time"

	"gorm.io/datatypes"
)

// AssessmentResult is the persisted grading output, one row per graded
// assessment. The engine writes it once and never mutates it; it backs the
// idempotent result re-fetch after an AlreadySubmitted double submit.
type AssessmentResult struct {
	ID                 uint           `gorm:"primarykey" json:"id"`
	AssessmentID       string         `json:"assessment_id" gorm:"uniqueIndex;size:64;not null"`
	UserID             string         `json:"user_id" gorm:"index"`
	Skill              string         `json:"skill"`
	Score              int            `json:"score"`
	MaxScore           int            `json:"max_score"`
	Percentage         int            `json:"percentage"`
	ConfidenceLevel    string         `json:"confidence_level"`
	Passed             bool           `json:"passed"`
	Feedback           datatypes.JSON `json:"feedback"`
	Recommendations    datatypes.JSON `json:"recommendations"`
	IgnoredQuestionIDs datatypes.JSON `json:"ignored_question_ids,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
}
