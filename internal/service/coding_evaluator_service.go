package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"skillcheck/config"
	"skillcheck/internal/model"
)

// CodingEvaluator grades a coding answer against the question's rubric and
// returns a fractional score in [0, 1]. The grader multiplies the fraction by
// the question's points, so the evaluator never needs to know point values.
// Implementations must respect ctx; the grader bounds the call with a
// timeout and degrades to ungraded/zero on error.
type CodingEvaluator interface {
	Evaluate(ctx context.Context, question *model.AssessmentQuestion, userCode string) (fraction float64, feedback string, err error)
}

type geminiCodingEvaluator struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewGeminiCodingEvaluator(cfg *config.Config) (CodingEvaluator, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Coding answers will be flagged ungraded.")
		return &geminiCodingEvaluator{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiCodingEvaluator{client: client.GenerativeModel("gemini-1.5-flash"), cfg: cfg}, nil
}

func (s *geminiCodingEvaluator) Evaluate(ctx context.Context, question *model.AssessmentQuestion, userCode string) (float64, string, error) {
	if s.client == nil {
		return 0, "", fmt.Errorf("gemini client not initialized")
	}

	var prompt strings.Builder
	prompt.WriteString("You are a senior software engineer reviewing a candidate's solution to a coding challenge.\n\n")
	prompt.WriteString("Challenge:\n---\n")
	prompt.WriteString(question.Text)
	prompt.WriteString("\n---\n\n")
	if question.CodeTemplate != "" {
		prompt.WriteString("Starter template given to the candidate:\n---\n")
		prompt.WriteString(question.CodeTemplate)
		prompt.WriteString("\n---\n\n")
	}
	if question.ReferenceAnswer != "" && question.ReferenceAnswer != "N/A" {
		prompt.WriteString("Grading rubric / expected behavior:\n---\n")
		prompt.WriteString(question.ReferenceAnswer)
		prompt.WriteString("\n---\n\n")
	}
	prompt.WriteString("Candidate's submission:\n---\n")
	prompt.WriteString(userCode)
	prompt.WriteString("\n---\n\n")
	prompt.WriteString("Evaluate correctness, completeness and code quality against the rubric.\n")
	prompt.WriteString("Format your response strictly as:\n")
	prompt.WriteString("Score: [a fraction from 0.0 to 1.0, e.g. 0.75]\n")
	prompt.WriteString("Feedback: [two or three sentences of concrete feedback]\n")

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		log.Error().Err(err).Str("question_id", question.QuestionID).Msg("Gemini API error during coding evaluation")
		return 0, "", err
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return 0, "", fmt.Errorf("gemini returned no content")
	}

	fullResponseText := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			fullResponseText += string(txt)
		}
	}
	if fullResponseText == "" {
		return 0, "", fmt.Errorf("gemini returned no text content")
	}

	scoreStr, feedbackStr, parseErr := parseScoreAndFeedback(fullResponseText)
	if parseErr != nil {
		log.Warn().Err(parseErr).Str("raw_response", fullResponseText).Msg("Failed to parse coding evaluation response")
		return 0, "", parseErr
	}

	fraction, scoreErr := strconv.ParseFloat(strings.TrimSpace(scoreStr), 64)
	if scoreErr != nil {
		return 0, "", fmt.Errorf("could not parse score value (%q) from evaluator response: %w", scoreStr, scoreErr)
	}

	// Clamp to [0, 1].
	if fraction > 1 {
		fraction = 1
	}
	if fraction < 0 {
		fraction = 0
	}
	return fraction, strings.TrimSpace(feedbackStr), nil
}

// parseScoreAndFeedback splits the model output on its "Score:" and
// "Feedback:" markers.
func parseScoreAndFeedback(rawResponse string) (scoreStr string, feedbackStr string, err error) {
	scorePrefix := "Score:"
	feedbackPrefix := "Feedback:"

	scoreIndex := strings.Index(rawResponse, scorePrefix)
	feedbackIndex := strings.Index(rawResponse, feedbackPrefix)

	if scoreIndex == -1 {
		return "", rawResponse, fmt.Errorf("response does not contain 'Score:' prefix")
	}

	endOfScoreLine := strings.Index(rawResponse[scoreIndex:], "\n")
	if endOfScoreLine == -1 {
		scoreStr = strings.TrimSpace(rawResponse[scoreIndex+len(scorePrefix):])
	} else {
		scoreStr = strings.TrimSpace(rawResponse[scoreIndex+len(scorePrefix) : scoreIndex+endOfScoreLine])
	}

	if feedbackIndex != -1 && feedbackIndex > scoreIndex {
		feedbackStr = strings.TrimSpace(rawResponse[feedbackIndex+len(feedbackPrefix):])
	} else if endOfScoreLine != -1 && len(rawResponse) > scoreIndex+endOfScoreLine+1 {
		feedbackStr = strings.TrimSpace(rawResponse[scoreIndex+endOfScoreLine+1:])
	}

	// The score may be followed by trailing words; keep the leading number.
	parts := strings.Fields(scoreStr)
	if len(parts) > 0 {
		scoreStr = parts[0]
	}

	return scoreStr, feedbackStr, nil
}
