package handler

import (
	"umatter/internal/domain"
	"umatter/internal/dto"
	"umatter/internal/logger"
	"umatter/internal/service"
	"umatter/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WellnessHandler handles mood, recovery and content HTTP requests
type WellnessHandler struct {
	mood      service.MoodService
	recovery  service.RecoveryService
	content   service.ContentService
	validator *validation.Validator
}

// NewWellnessHandler creates a new WellnessHandler instance
func NewWellnessHandler(mood service.MoodService, recovery service.RecoveryService, content service.ContentService) *WellnessHandler {
	return &WellnessHandler{
		mood:      mood,
		recovery:  recovery,
		content:   content,
		validator: validation.NewValidator(),
	}
}

// LogMood godoc
// @Summary Log a mood entry
// @Description Stores a daily mood entry and evaluates the low mood alert rule
// @Tags mood
// @Accept json
// @Produce json
// @Param request body dto.MoodLogRequest true "Mood entry"
// @Success 201 {object} dto.MoodLogResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /mood [post]
func (h *WellnessHandler) LogMood(c *fiber.Ctx) error {
	var req dto.MoodLogRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse mood log request", zap.Error(err))
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := h.validator.ValidateMoodLogRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.mood.LogMood(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetMoodHistory godoc
// @Summary Get mood history
// @Description Returns the user's mood logs of the last N days, newest first
// @Tags mood
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param days query int false "History window in days" default(7)
// @Success 200 {object} dto.MoodHistoryResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /mood/{user_id} [get]
func (h *WellnessHandler) GetMoodHistory(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	if userID == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("user_id")}
	}

	days := 7
	if v, ok := c.Locals("validated_days").(int); ok {
		days = v
	}

	resp, err := h.mood.GetHistory(c.Context(), userID, days)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetAlerts godoc
// @Summary Get unresolved alerts
// @Description Returns the user's unresolved alerts, newest first
// @Tags mood
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.AlertListResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /alerts/{user_id} [get]
func (h *WellnessHandler) GetAlerts(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	if userID == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("user_id")}
	}

	resp, err := h.mood.GetAlerts(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetRecoveryPlan godoc
// @Summary Get a personalized recovery plan
// @Description Builds the recovery plan for the user's dominant trauma with per-step progress
// @Tags recovery
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.RecoveryPlanResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /recovery/plan/{user_id} [get]
func (h *WellnessHandler) GetRecoveryPlan(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	if userID == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("user_id")}
	}

	resp, err := h.recovery.GetPlan(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateProgress godoc
// @Summary Update recovery step progress
// @Description Stores the user's progress on one recovery step
// @Tags recovery
// @Accept json
// @Produce json
// @Param request body dto.UpdateProgressRequest true "Progress update"
// @Success 200 {object} dto.StepProgressResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /recovery/progress [post]
func (h *WellnessHandler) UpdateProgress(c *fiber.Ctx) error {
	var req dto.UpdateProgressRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse progress update request", zap.Error(err))
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := h.validator.ValidateUpdateProgressRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.recovery.UpdateProgress(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetSchemes godoc
// @Summary Get government support schemes
// @Description Returns active support schemes, optionally filtered by trauma category
// @Tags content
// @Accept json
// @Produce json
// @Param category query string false "Trauma category filter"
// @Success 200 {object} dto.SchemeListResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /schemes [get]
func (h *WellnessHandler) GetSchemes(c *fiber.Ctx) error {
	var category *domain.Category
	if raw := c.Query("category"); raw != "" {
		parsed, err := domain.ParseCategory(raw)
		if err != nil {
			return err
		}
		category = &parsed
	}

	resp, err := h.content.GetSchemes(c.Context(), category)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetHeritageContent godoc
// @Summary Get heritage wisdom
// @Description Returns traditional wisdom for one trauma category
// @Tags content
// @Accept json
// @Produce json
// @Param category path string true "Trauma category"
// @Success 200 {array} dto.HeritageContentResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /heritage/{category} [get]
func (h *WellnessHandler) GetHeritageContent(c *fiber.Ctx) error {
	category, err := validatedCategory(c)
	if err != nil {
		return err
	}

	items, err := h.content.GetHeritageContent(c.Context(), category)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// GetModernContent godoc
// @Summary Get modern solutions
// @Description Returns contemporary solutions for one trauma category
// @Tags content
// @Accept json
// @Produce json
// @Param category path string true "Trauma category"
// @Success 200 {array} dto.ModernContentResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /modern/{category} [get]
func (h *WellnessHandler) GetModernContent(c *fiber.Ctx) error {
	category, err := validatedCategory(c)
	if err != nil {
		return err
	}

	items, err := h.content.GetModernContent(c.Context(), category)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func validatedCategory(c *fiber.Ctx) (domain.Category, error) {
	if v, ok := c.Locals("validated_category").(string); ok && v != "" {
		return domain.Category(v), nil
	}
	return domain.ParseCategory(c.Params("category"))
}
