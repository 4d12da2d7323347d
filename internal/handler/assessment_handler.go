package handler

import (
	"umatter/internal/dto"
	"umatter/internal/logger"
	"umatter/internal/service"
	"umatter/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AssessmentHandler handles assessment-related HTTP requests
type AssessmentHandler struct {
	questions  service.QuestionService
	assessment service.AssessmentService
	validator  *validation.Validator
}

// NewAssessmentHandler creates a new AssessmentHandler instance
func NewAssessmentHandler(questions service.QuestionService, assessment service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		questions:  questions,
		assessment: assessment,
		validator:  validation.NewValidator(),
	}
}

// GetQuestions godoc
// @Summary Get an assessment question set
// @Description Samples the standard per-category question set for one assessment
// @Tags assessment
// @Accept json
// @Produce json
// @Success 200 {object} dto.QuestionListResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions [get]
func (h *AssessmentHandler) GetQuestions(c *fiber.Ctx) error {
	resp, err := h.questions.GetAssessmentQuestions(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetAllQuestions godoc
// @Summary Get the full question catalog
// @Description Returns every question ordered by category and display order
// @Tags assessment
// @Accept json
// @Produce json
// @Success 200 {object} dto.QuestionListResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions/all [get]
func (h *AssessmentHandler) GetAllQuestions(c *fiber.Ctx) error {
	resp, err := h.questions.GetAllQuestions(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Evaluate godoc
// @Summary Evaluate assessment responses
// @Description Scores submitted responses and returns the severity per category and the dominant trauma
// @Tags assessment
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Submitted responses"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /evaluate [post]
func (h *AssessmentHandler) Evaluate(c *fiber.Ctx) error {
	var req dto.EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse evaluate request", zap.Error(err))
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := h.validator.ValidateEvaluateRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.assessment.Evaluate(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetResult godoc
// @Summary Get a cached evaluation result
// @Description Retrieves an anonymous evaluation result by its result id
// @Tags assessment
// @Accept json
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /results/{id} [get]
func (h *AssessmentHandler) GetResult(c *fiber.Ctx) error {
	resultID := c.Params("id")
	if resultID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "result id is required")
	}

	resp, err := h.assessment.GetResult(c.Context(), resultID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
