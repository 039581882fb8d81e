package service

import (
	"fmt"

	"skillcheck/internal/model"
)

// FeedbackService turns per-question outcomes into ordered feedback lines and
// study recommendations. Lines follow the underlying question order: every
// incorrect, unanswered or ungraded outcome yields a "✗" weakness line, and a
// correct answer on an advanced question yields a "✓" line. Recommendations
// are grouped per weak skill, at most one each, in first-weakness order.
type FeedbackService interface {
	Synthesize(outcomes []model.Outcome) (feedback []string, recommendations []string)
}

type feedbackService struct{}

func NewFeedbackService() FeedbackService {
	return &feedbackService{}
}

func (s *feedbackService) Synthesize(outcomes []model.Outcome) ([]string, []string) {
	feedback := make([]string, 0, len(outcomes))
	recommendations := make([]string, 0, 4)
	recommended := make(map[string]bool)

	for _, out := range outcomes {
		if out.Correct {
			if out.Difficulty == model.DifficultyAdvanced {
				feedback = append(feedback, fmt.Sprintf("✓ Question %s (%s): Correct!", out.QuestionID, out.Skill))
			}
			continue
		}

		feedback = append(feedback, weaknessLine(out))

		if !recommended[out.Skill] {
			recommended[out.Skill] = true
			if out.Type == model.QuestionTypeCoding {
				recommendations = append(recommendations, fmt.Sprintf("Practice coding problems for %s", out.Skill))
			} else {
				recommendations = append(recommendations, fmt.Sprintf("Review %s fundamentals", out.Skill))
			}
		}
	}

	return feedback, recommendations
}

func weaknessLine(out model.Outcome) string {
	if out.Type == model.QuestionTypeCoding {
		switch {
		case !out.Answered:
			return fmt.Sprintf("✗ Coding Challenge (%s): Incomplete", out.Skill)
		case out.Ungraded:
			return fmt.Sprintf("✗ Coding Challenge (%s): Submitted but not graded (evaluator unavailable)", out.Skill)
		default:
			return fmt.Sprintf("✗ Coding Challenge (%s): %d/%d points", out.Skill, out.Awarded, out.Points)
		}
	}

	if !out.Answered {
		return fmt.Sprintf("✗ Question %s (%s): Not answered. Correct answer: %s. Explanation: %s",
			out.QuestionID, out.Skill, out.ReferenceAnswer, out.Explanation)
	}
	return fmt.Sprintf("✗ Question %s (%s): Incorrect. Correct answer: %s. Explanation: %s",
		out.QuestionID, out.Skill, out.ReferenceAnswer, out.Explanation)
}
