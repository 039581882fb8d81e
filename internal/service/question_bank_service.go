package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"skillcheck/internal/dto"
	"skillcheck/internal/model"
	"skillcheck/internal/repository"
)

// QuestionBankService is the admin surface over the question bank.
type QuestionBankService interface {
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	ListQuestions(skill, qType, difficulty string) ([]dto.QuestionResponse, error)
	DeleteQuestion(id uint) error
}

type questionBankService struct {
	repo repository.QuestionRepository
}

func NewQuestionBankService(repo repository.QuestionRepository) QuestionBankService {
	return &questionBankService{repo: repo}
}

func (s *questionBankService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	qType := model.QuestionType(req.Type)

	if qType == model.QuestionTypeMultipleChoice {
		if len(req.Options) < 2 {
			return nil, fmt.Errorf("multiple_choice questions require at least 2 options, got %d", len(req.Options))
		}
		matches := 0
		for _, opt := range req.Options {
			if opt == req.ReferenceAnswer {
				matches++
			}
		}
		if matches != 1 {
			return nil, fmt.Errorf("reference_answer must match exactly one option, matched %d", matches)
		}
	}
	if (qType == model.QuestionTypeMultipleChoice || qType == model.QuestionTypeTheoretical) && req.Difficulty == "" {
		return nil, fmt.Errorf("difficulty is required for %s questions", req.Type)
	}

	question := model.Question{
		Skill:           req.Skill,
		Type:            qType,
		Difficulty:      model.Difficulty(req.Difficulty),
		Text:            req.Text,
		Options:         model.OptionsJSON(req.Options),
		ReferenceAnswer: req.ReferenceAnswer,
		Explanation:     req.Explanation,
		Points:          req.Points,
		CodeTemplate:    req.CodeTemplate,
	}
	if err := s.repo.Create(&question); err != nil {
		log.Error().Err(err).Str("skill", req.Skill).Msg("Failed to create bank question")
		return nil, err
	}
	return questionToDTO(&question), nil
}

func (s *questionBankService) ListQuestions(skill, qType, difficulty string) ([]dto.QuestionResponse, error) {
	questions, err := s.repo.FindAll(skill, model.QuestionType(qType), model.Difficulty(difficulty))
	if err != nil {
		return nil, fmt.Errorf("error fetching bank questions: %w", err)
	}
	resp := make([]dto.QuestionResponse, len(questions))
	for i := range questions {
		resp[i] = *questionToDTO(&questions[i])
	}
	return resp, nil
}

func (s *questionBankService) DeleteQuestion(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return fmt.Errorf("question not found with ID %d: %w", id, err)
	}
	return s.repo.Delete(id)
}

func questionToDTO(question *model.Question) *dto.QuestionResponse {
	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	resp.Type = string(question.Type)
	resp.Difficulty = string(question.Difficulty)
	resp.Options = question.OptionList()
	resp.ReferenceAnswer = question.ReferenceAnswer
	return &resp
}
