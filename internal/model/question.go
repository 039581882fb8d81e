package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeTheoretical    QuestionType = "theoretical"
	QuestionTypeAptitude       QuestionType = "aptitude"
	QuestionTypeCoding         QuestionType = "coding"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Question is one bank entry. ReferenceAnswer holds the correct option for
// closed-form questions, a rubric/expected output for coding questions, or a
// model answer for theoretical ones; it never leaves the server through the
// assessment API.
type Question struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Skill           string         `json:"skill" gorm:"not null;index:idx_question_bucket,priority:1"`
	Type            QuestionType   `json:"type" gorm:"not null;index:idx_question_bucket,priority:2"`
	Difficulty      Difficulty     `json:"difficulty" gorm:"index:idx_question_bucket,priority:3"`
	Text            string         `json:"text" gorm:"type:text;not null"`
	Options         datatypes.JSON `json:"options,omitempty"` // ordered list of option strings, multiple_choice only
	ReferenceAnswer string         `json:"-" gorm:"type:text;not null"`
	Explanation     string         `json:"explanation,omitempty" gorm:"type:text"`
	Points          int            `json:"points" gorm:"not null"`
	CodeTemplate    string         `json:"code_template,omitempty" gorm:"type:text"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// OptionList decodes the Options column. A nil or malformed column yields nil.
func (q *Question) OptionList() []string {
	if len(q.Options) == 0 {
		return nil
	}
	var opts []string
	if err := json.Unmarshal(q.Options, &opts); err != nil {
		return nil
	}
	return opts
}

// OptionsJSON encodes an ordered option list for the Options column.
func OptionsJSON(opts []string) datatypes.JSON {
	if len(opts) == 0 {
		return nil
	}
	raw, err := json.Marshal(opts)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
