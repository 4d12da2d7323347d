package service

import (
	"context"
	"errors"
	"strings"

	"umatter/internal/assessment"
	"umatter/internal/domain"
	"umatter/internal/dto"
	"umatter/internal/logger"
	"umatter/internal/util"

	"go.uber.org/zap"
)

// AssessmentService runs the scoring pipeline: aggregation, prediction,
// severity classification and dominant trauma selection.
type AssessmentService interface {
	// Evaluate scores a set of submitted responses. When the request carries
	// a known user id the outcome is persisted; otherwise the result is
	// cached under a generated result id and leaves no database record.
	Evaluate(ctx context.Context, req *dto.EvaluateRequest) (*dto.EvaluateResponse, error)

	// GetResult retrieves a cached anonymous evaluation result by id.
	GetResult(ctx context.Context, resultID string) (*dto.EvaluateResponse, error)
}

type assessmentServiceImpl struct {
	questions   QuestionService
	model       *assessment.Model
	resultRepo  domain.ResultRepository
	resultCache ResultCacheService
}

// NewAssessmentService creates a new assessment service. The model must be
// loaded before the service is constructed; there is no evaluation without it.
func NewAssessmentService(
	questions QuestionService,
	model *assessment.Model,
	resultRepo domain.ResultRepository,
	resultCache ResultCacheService,
) AssessmentService {
	return &assessmentServiceImpl{
		questions:   questions,
		model:       model,
		resultRepo:  resultRepo,
		resultCache: resultCache,
	}
}

// Evaluate implements AssessmentService
func (s *assessmentServiceImpl) Evaluate(ctx context.Context, req *dto.EvaluateRequest) (*dto.EvaluateResponse, error) {
	catalog, err := s.questions.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.Response, 0, len(req.Responses))
	for _, item := range req.Responses {
		responses = append(responses, domain.Response{
			QuestionID: item.ID,
			Answer:     domain.AnswerValue(strings.ToUpper(strings.TrimSpace(item.Answer))),
		})
	}

	averages, err := assessment.Aggregate(catalog, responses)
	if err != nil {
		return nil, err
	}

	features := assessment.Features(averages)
	prediction := s.model.Predict(features)
	severities := assessment.ClassifyAll(averages)

	dominant, err := assessment.SelectDominant(prediction)
	if err != nil {
		return nil, err
	}

	result := buildEvaluateResponse(averages, prediction, severities, dominant)

	if req.UserID != "" {
		exists, err := s.resultRepo.UserExists(ctx, req.UserID)
		if err != nil {
			logger.Get().Error("Failed to resolve user for persistence",
				zap.Error(err), zap.String("userID", req.UserID))
		} else if exists {
			result.Persisted = s.persist(ctx, req.UserID, responses, severities, dominant)
			return result, nil
		} else {
			logger.Get().Info("Unknown user id on evaluation, skipping persistence",
				zap.String("userID", req.UserID))
		}
	}

	// Anonymous or unresolvable user: the result lives only in the cache.
	result.ResultID = util.NewULID()
	if err := s.resultCache.Put(ctx, result.ResultID, result); err != nil {
		logger.Get().Warn("Failed to cache evaluation result",
			zap.Error(err), zap.String("resultID", result.ResultID))
		result.ResultID = ""
	}
	return result, nil
}

// persist writes the evaluation records for a known user. Every write is
// best-effort: a failed record is logged and never invalidates the result.
func (s *assessmentServiceImpl) persist(
	ctx context.Context,
	userID string,
	responses []domain.Response,
	severities []domain.SeverityRecord,
	dominant domain.DominantTrauma,
) bool {
	persisted := true

	for _, r := range responses {
		if err := s.resultRepo.UpsertAnswer(ctx, userID, r.QuestionID, r.Answer); err != nil {
			logger.Get().Error("Failed to persist answer",
				zap.Error(err), zap.String("userID", userID), zap.Int64("questionID", r.QuestionID))
			persisted = false
		}
	}

	for _, record := range severities {
		if err := s.resultRepo.CreateScore(ctx, userID, record); err != nil {
			logger.Get().Error("Failed to persist severity score",
				zap.Error(err), zap.String("userID", userID), zap.String("category", string(record.Category)))
			persisted = false
		}
	}

	if err := s.resultRepo.UpsertDominantTrauma(ctx, userID, dominant); err != nil {
		logger.Get().Error("Failed to persist dominant trauma",
			zap.Error(err), zap.String("userID", userID))
		persisted = false
	}

	return persisted
}

// GetResult implements AssessmentService
func (s *assessmentServiceImpl) GetResult(ctx context.Context, resultID string) (*dto.EvaluateResponse, error) {
	result, err := s.resultCache.Get(ctx, resultID)
	if err != nil {
		if errors.Is(err, ErrResultNotFound) {
			return nil, domain.NewResultNotFoundError(resultID)
		}
		return nil, err
	}
	return result, nil
}

func buildEvaluateResponse(
	averages map[domain.Category]float64,
	prediction map[domain.Category]float64,
	severities []domain.SeverityRecord,
	dominant domain.DominantTrauma,
) *dto.EvaluateResponse {
	features := make(map[string]float64, len(averages))
	for cat, avg := range averages {
		features[string(cat)] = avg
	}
	probs := make(map[string]float64, len(prediction))
	for cat, p := range prediction {
		probs[string(cat)] = p
	}

	severityItems := make([]dto.SeverityResponse, 0, len(severities))
	for _, record := range severities {
		severityItems = append(severityItems, dto.SeverityResponse{
			Category:        string(record.Category),
			ScorePercentage: record.ScorePercentage,
			SeverityLevel:   string(record.Level),
		})
	}

	dominantResp := dto.DominantResponse{
		Primary:    string(dominant.Primary),
		Confidence: dominant.Confidence,
	}
	if dominant.Secondary != nil {
		dominantResp.Secondary = string(*dominant.Secondary)
	}

	return &dto.EvaluateResponse{
		Features:   features,
		Prediction: probs,
		Severities: severityItems,
		Dominant:   dominantResp,
	}
}
