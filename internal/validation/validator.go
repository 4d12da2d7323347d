package validation

import (
	"regexp"
	"strings"
	"umatter/internal/domain"
	"umatter/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateEvaluateRequest validates an assessment evaluation request.
func (v *Validator) ValidateEvaluateRequest(req *dto.EvaluateRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(req.Responses) == 0 {
		errors = append(errors, domain.NewMissingFieldError("responses"))
		return errors
	}

	for _, r := range req.Responses {
		if r.ID <= 0 {
			errors = append(errors, domain.NewInvalidFormatError("responses.id", "non-positive id"))
		}
		answer := domain.AnswerValue(strings.ToUpper(strings.TrimSpace(r.Answer)))
		if !answer.IsValid() {
			errors = append(errors, domain.NewInvalidFormatError("responses.answer", r.Answer))
		}
	}

	if req.UserID != "" && !isValidULID(req.UserID) {
		errors = append(errors, domain.NewInvalidFormatError("user_id", req.UserID))
	}

	return errors
}

// ValidateMoodLogRequest validates a mood log submission.
func (v *Validator) ValidateMoodLogRequest(req *dto.MoodLogRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.UserID) == "" {
		errors = append(errors, domain.NewMissingFieldError("user_id"))
	} else if !isValidULID(req.UserID) {
		errors = append(errors, domain.NewInvalidFormatError("user_id", req.UserID))
	}

	if req.Score < 1 || req.Score > 5 {
		errors = append(errors, domain.NewOutOfRangeError("mood_score", req.Score, 1, 5))
	}

	if len(req.Note) > 2000 {
		errors = append(errors, domain.NewOutOfRangeError("note", len(req.Note), 0, 2000))
	}

	return errors
}

// ValidateUpdateProgressRequest validates a recovery progress update.
func (v *Validator) ValidateUpdateProgressRequest(req *dto.UpdateProgressRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.UserID) == "" {
		errors = append(errors, domain.NewMissingFieldError("user_id"))
	} else if !isValidULID(req.UserID) {
		errors = append(errors, domain.NewInvalidFormatError("user_id", req.UserID))
	}

	if strings.TrimSpace(req.StepID) == "" {
		errors = append(errors, domain.NewMissingFieldError("step_id"))
	} else if !isValidULID(req.StepID) {
		errors = append(errors, domain.NewInvalidFormatError("step_id", req.StepID))
	}

	if req.Status != "" && !domain.ProgressStatus(req.Status).IsValid() {
		errors = append(errors, domain.NewInvalidFormatError("status", req.Status))
	}

	return errors
}

// ValidateCategoryParam validates an optional category path or query value.
func (v *Validator) ValidateCategoryParam(category string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(category) == "" {
		errors = append(errors, domain.NewMissingFieldError("category"))
		return errors
	}
	if !domain.Category(category).IsValid() {
		errors = append(errors, domain.NewInvalidFormatError("category", category))
	}
	return errors
}

// ValidateDays validates a history window in days.
func (v *Validator) ValidateDays(days int) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if days < 1 || days > 365 {
		errors = append(errors, domain.NewOutOfRangeError("days", days, 1, 365))
	}
	return errors
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, base32 encoded
	if len(s) != 26 {
		return false
	}
	// Check if all characters are valid base32 (Crockford's Base32)
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}
