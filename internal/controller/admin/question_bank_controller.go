package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"skillcheck/internal/dto"
	"skillcheck/internal/service"
)

type QuestionBankController struct {
	bankService service.QuestionBankService
}

func NewQuestionBankController(bankService service.QuestionBankService) *QuestionBankController {
	return &QuestionBankController{bankService: bankService}
}

// CreateQuestion godoc
// @Summary (Admin) Add a question to the bank
// @Description Creates one bank question. Multiple-choice questions need at least two options with the reference answer matching exactly one of them.
// @Tags Admin - Question Bank
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid question data"
// @Router /admin/questions [post]
func (c *QuestionBankController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuestion: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.bankService.CreateQuestion(req)
	if err != nil {
		log.Warn().Err(err).Str("skill", req.Skill).Msg("Admin CreateQuestion: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create question", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListQuestions godoc
// @Summary (Admin) List bank questions
// @Tags Admin - Question Bank
// @Produce json
// @Param skill query string false "Filter by skill"
// @Param type query string false "Filter by question type"
// @Param difficulty query string false "Filter by difficulty"
// @Success 200 {array} dto.QuestionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/questions [get]
func (c *QuestionBankController) ListQuestions(ctx *gin.Context) {
	questions, err := c.bankService.ListQuestions(ctx.Query("skill"), ctx.Query("type"), ctx.Query("difficulty"))
	if err != nil {
		log.Error().Err(err).Msg("Admin ListQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list questions", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a bank question
// @Tags Admin - Question Bank
// @Produce json
// @Param id path int true "Question ID"
// @Success 204 "Deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [delete]
func (c *QuestionBankController) DeleteQuestion(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return
	}
	if err := c.bankService.DeleteQuestion(uint(id)); err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}
