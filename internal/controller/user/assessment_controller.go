package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"skillcheck/internal/dto"
	"skillcheck/internal/repository"
	"skillcheck/internal/service"
)

type AssessmentController struct {
	assessmentService service.AssessmentService
	graderService     service.GraderService
}

func NewAssessmentController(assessmentService service.AssessmentService, graderService service.GraderService) *AssessmentController {
	return &AssessmentController{
		assessmentService: assessmentService,
		graderService:     graderService,
	}
}

// GenerateAssessment godoc
// @Summary Generate a skill assessment
// @Description Composes a timed multi-section assessment (technical MCQ sections, aptitude, one coding challenge) for the given skill. Reference answers are never included.
// @Tags Assessments
// @Accept json
// @Produce json
// @Param request body dto.GenerateAssessmentRequest true "Candidate and target skill"
// @Success 201 {object} dto.AssessmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 422 {object} dto.ErrorResponse "Question bank cannot satisfy the curriculum for this skill"
// @Failure 500 {object} dto.ErrorResponse
// @Router /assessments [post]
func (c *AssessmentController) GenerateAssessment(ctx *gin.Context) {
	var req dto.GenerateAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("GenerateAssessment: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.assessmentService.GenerateAssessment(req)
	if err != nil {
		if errors.Is(err, service.ErrInsufficientBank) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Str("skill", req.PrimarySkill).Msg("GenerateAssessment: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to generate assessment", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// SubmitAssessment godoc
// @Summary Submit assessment answers for grading
// @Description Grades the single batch submission for an assessment. Each assessment is gradable exactly once; duplicate answers for a question resolve last-write-wins, and answers for unknown questions are ignored (reported in ignored_question_ids).
// @Tags Assessments
// @Accept json
// @Produce json
// @Param assessment_id path string true "Assessment ID"
// @Param submission body dto.SubmitAssessmentRequest true "Candidate answers"
// @Success 200 {object} dto.AssessmentResultResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or mismatched assessment id"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 409 {object} dto.ErrorResponse "Assessment already submitted"
// @Failure 410 {object} dto.ErrorResponse "Assessment expired"
// @Failure 500 {object} dto.ErrorResponse
// @Router /assessments/{assessment_id}/submissions [post]
func (c *AssessmentController) SubmitAssessment(ctx *gin.Context) {
	assessmentID := ctx.Param("assessment_id")

	var req dto.SubmitAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAssessment: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if req.AssessmentID != "" && req.AssessmentID != assessmentID {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "assessment_id in body does not match path"})
		return
	}
	req.AssessmentID = assessmentID

	result, err := c.graderService.GradeSubmission(req)
	if err != nil {
		c.writeGradingError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetResult godoc
// @Summary Fetch the persisted result of a graded assessment
// @Description Returns the result produced when the assessment was graded. Useful after a 409 on double submit.
// @Tags Assessments
// @Produce json
// @Param assessment_id path string true "Assessment ID"
// @Success 200 {object} dto.AssessmentResultResponse
// @Failure 404 {object} dto.ErrorResponse "No result for this assessment"
// @Failure 500 {object} dto.ErrorResponse
// @Router /assessments/{assessment_id}/result [get]
func (c *AssessmentController) GetResult(ctx *gin.Context) {
	assessmentID := ctx.Param("assessment_id")

	result, err := c.assessmentService.GetResult(assessmentID)
	if err != nil {
		if errors.Is(err, repository.ErrResultNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No result found for this assessment"})
			return
		}
		log.Error().Err(err).Str("assessment_id", assessmentID).Msg("GetResult: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch result", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *AssessmentController) writeGradingError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Assessment not found"})
	case errors.Is(err, repository.ErrSessionExpired):
		ctx.JSON(http.StatusGone, dto.ErrorResponse{Message: "Assessment expired before submission"})
	case errors.Is(err, repository.ErrAlreadySubmitted):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Assessment was already submitted"})
	default:
		log.Error().Err(err).Msg("SubmitAssessment: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to grade submission", Details: []string{err.Error()}})
	}
}
