package dto

import "time"

// CreateQuestionRequest adds one question to the bank.
type CreateQuestionRequest struct {
	Skill           string   `json:"skill" binding:"required"`
	Type            string   `json:"type" binding:"required,oneof=multiple_choice theoretical aptitude coding"`
	Difficulty      string   `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	Text            string   `json:"text" binding:"required"`
	Options         []string `json:"options"`
	ReferenceAnswer string   `json:"reference_answer" binding:"required"`
	Explanation     string   `json:"explanation"`
	Points          int      `json:"points" binding:"required,gt=0"`
	CodeTemplate    string   `json:"code_template"`
}

// QuestionResponse is the admin view of a bank question; unlike the
// candidate-facing views it includes the reference answer.
type QuestionResponse struct {
	ID              uint      `json:"id"`
	Skill           string    `json:"skill"`
	Type            string    `json:"type"`
	Difficulty      string    `json:"difficulty,omitempty"`
	Text            string    `json:"text"`
	Options         []string  `json:"options,omitempty"`
	ReferenceAnswer string    `json:"reference_answer"`
	Explanation     string    `json:"explanation,omitempty"`
	Points          int       `json:"points"`
	CodeTemplate    string    `json:"code_template,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
