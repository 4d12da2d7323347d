package service

import (
	"context"
	"time"

	"umatter/internal/domain"
	"umatter/internal/dto"
)

// RecoveryService builds personalized recovery plans and tracks step progress.
type RecoveryService interface {
	// GetPlan builds the user's recovery plan: the active program for their
	// dominant trauma with per-step progress merged in.
	GetPlan(ctx context.Context, userID string) (*dto.RecoveryPlanResponse, error)

	// UpdateProgress stores the user's progress on one step.
	UpdateProgress(ctx context.Context, req *dto.UpdateProgressRequest) (*dto.StepProgressResponse, error)
}

type recoveryServiceImpl struct {
	recoveryRepo domain.RecoveryRepository
	resultRepo   domain.ResultRepository
}

// NewRecoveryService creates a new recovery service.
func NewRecoveryService(recoveryRepo domain.RecoveryRepository, resultRepo domain.ResultRepository) RecoveryService {
	return &recoveryServiceImpl{
		recoveryRepo: recoveryRepo,
		resultRepo:   resultRepo,
	}
}

// GetPlan implements RecoveryService
func (s *recoveryServiceImpl) GetPlan(ctx context.Context, userID string) (*dto.RecoveryPlanResponse, error) {
	dominant, err := s.resultRepo.GetDominantTrauma(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load dominant trauma", err)
	}
	if dominant == nil {
		return nil, domain.NewNotFoundError("no completed assessment found for user")
	}

	program, err := s.recoveryRepo.GetActiveProgramByCategory(ctx, dominant.Primary)
	if err != nil {
		return nil, domain.NewInternalError("failed to load recovery program", err)
	}
	if program == nil {
		return nil, domain.NewNotFoundError("no active recovery program for category " + string(dominant.Primary))
	}

	steps, err := s.recoveryRepo.GetStepsByProgram(ctx, program.ID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load recovery steps", err)
	}

	progress, err := s.recoveryRepo.GetProgress(ctx, userID, program.ID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load step progress", err)
	}
	progressByStep := make(map[string]domain.StepProgress, len(progress))
	for _, p := range progress {
		progressByStep[p.StepID] = p
	}

	stepItems := make([]dto.RecoveryStepResponse, 0, len(steps))
	for _, step := range steps {
		item := dto.RecoveryStepResponse{
			ID:              step.ID,
			DayNumber:       step.DayNumber,
			ActivityType:    step.ActivityType,
			Title:           step.Title,
			Content:         step.Content,
			Resources:       step.Resources,
			DurationMinutes: step.DurationMinutes,
			Progress:        dto.StepProgressResponse{Status: string(domain.ProgressNotStarted)},
		}
		if p, ok := progressByStep[step.ID]; ok {
			item.Progress.Status = string(p.Status)
			if p.CompletedAt != nil {
				item.Progress.CompletedAt = p.CompletedAt.Format(time.RFC3339)
			}
		}
		stepItems = append(stepItems, item)
	}

	return &dto.RecoveryPlanResponse{
		Program: dto.RecoveryProgramResponse{
			ID:           program.ID,
			Title:        program.Title,
			Description:  program.Description,
			DurationDays: program.DurationDays,
			Difficulty:   string(program.Difficulty),
			Category:     string(program.Category),
		},
		Steps: stepItems,
	}, nil
}

// UpdateProgress implements RecoveryService
func (s *recoveryServiceImpl) UpdateProgress(ctx context.Context, req *dto.UpdateProgressRequest) (*dto.StepProgressResponse, error) {
	step, err := s.recoveryRepo.GetStepByID(ctx, req.StepID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load recovery step", err)
	}
	if step == nil {
		return nil, domain.NewNotFoundError("recovery step not found: " + req.StepID)
	}

	status := domain.ProgressStatus(req.Status)
	if req.Status == "" {
		status = domain.ProgressInProgress
	}

	progress := &domain.StepProgress{
		UserID: req.UserID,
		StepID: req.StepID,
		Status: status,
		Notes:  req.Notes,
	}
	if status == domain.ProgressCompleted {
		now := time.Now()
		progress.CompletedAt = &now
	}

	if err := s.recoveryRepo.UpsertProgress(ctx, progress); err != nil {
		return nil, domain.NewInternalError("failed to update step progress", err)
	}

	resp := &dto.StepProgressResponse{Status: string(progress.Status)}
	if progress.CompletedAt != nil {
		resp.CompletedAt = progress.CompletedAt.Format(time.RFC3339)
	}
	return resp, nil
}
