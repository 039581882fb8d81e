package dto

// GenerateAssessmentRequest starts a new assessment for a candidate.
type GenerateAssessmentRequest struct {
	UserID       string `json:"user_id" binding:"required"`
	PrimarySkill string `json:"primary_skill" binding:"required"`
}

// AssessmentQuestionView is a question as delivered to the candidate.
// Reference answers and explanations are deliberately absent.
type AssessmentQuestionView struct {
	QuestionID   string   `json:"question_id"`
	Skill        string   `json:"skill"`
	QuestionText string   `json:"question_text"`
	QuestionType string   `json:"question_type"`
	Difficulty   string   `json:"difficulty,omitempty"`
	Options      []string `json:"options,omitempty"`
	Points       int      `json:"points"`
	CodeTemplate string   `json:"code_template,omitempty"`
}

// AssessmentResponse is the generated test. Questions arrive in fixed
// curriculum order; the client slices consecutive groups of five into
// sections, with the final coding challenge as its own section.
type AssessmentResponse struct {
	AssessmentID     string                   `json:"assessment_id"`
	Skill            string                   `json:"skill"`
	Questions        []AssessmentQuestionView `json:"questions"`
	TotalPoints      int                      `json:"total_points"`
	TimeLimitMinutes int                      `json:"time_limit_minutes"`
}

// AnswerRecordDTO is one candidate answer. UserAnswer carries a selected
// option verbatim or submitted code; empty means unanswered.
type AnswerRecordDTO struct {
	QuestionID string `json:"question_id" binding:"required"`
	UserAnswer string `json:"user_answer"`
}

// SubmitAssessmentRequest is the single batch submission for an assessment.
type SubmitAssessmentRequest struct {
	AssessmentID string            `json:"assessment_id"`
	UserID       string            `json:"user_id" binding:"required"`
	Answers      []AnswerRecordDTO `json:"answers" binding:"required,dive"`
}

// AssessmentResultResponse is the grading output.
type AssessmentResultResponse struct {
	AssessmentID       string   `json:"assessment_id"`
	UserID             string   `json:"user_id"`
	Skill              string   `json:"skill"`
	Score              int      `json:"score"`
	MaxScore           int      `json:"max_score"`
	Percentage         int      `json:"percentage"`
	ConfidenceLevel    string   `json:"confidence_level"`
	Passed             bool     `json:"passed"`
	Feedback           []string `json:"feedback"`
	Recommendations    []string `json:"recommendations"`
	IgnoredQuestionIDs []string `json:"ignored_question_ids,omitempty"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
