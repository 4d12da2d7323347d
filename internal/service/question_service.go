package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"umatter/internal/assessment"
	"umatter/internal/cache"
	"umatter/internal/domain"
	"umatter/internal/dto"
	"umatter/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// QuestionService serves assessment question sets.
type QuestionService interface {
	// GetAssessmentQuestions samples the standard per-category question set.
	GetAssessmentQuestions(ctx context.Context) (*dto.QuestionListResponse, error)

	// GetAllQuestions returns the full catalog ordered by category and
	// display order.
	GetAllQuestions(ctx context.Context) (*dto.QuestionListResponse, error)

	// Catalog returns the current question catalog.
	Catalog(ctx context.Context) (*assessment.Catalog, error)
}

type questionServiceImpl struct {
	repo        domain.QuestionRepository
	cache       domain.Cache
	bundled     *assessment.Catalog
	questionTTL time.Duration
	group       singleflight.Group
}

// NewQuestionService creates a new question service. The bundled catalog
// backs question serving whenever the question store is empty or unreachable.
func NewQuestionService(
	repo domain.QuestionRepository,
	cacheAdapter domain.Cache,
	bundled *assessment.Catalog,
	questionTTL time.Duration,
) QuestionService {
	return &questionServiceImpl{
		repo:        repo,
		cache:       cacheAdapter,
		bundled:     bundled,
		questionTTL: questionTTL,
	}
}

// GetAssessmentQuestions implements QuestionService
func (s *questionServiceImpl) GetAssessmentQuestions(ctx context.Context) (*dto.QuestionListResponse, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	sampled, err := catalog.Sample(assessment.DefaultSamplePlan())
	if err != nil {
		return nil, err
	}
	return toQuestionListResponse(sampled), nil
}

// GetAllQuestions implements QuestionService
func (s *questionServiceImpl) GetAllQuestions(ctx context.Context) (*dto.QuestionListResponse, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return toQuestionListResponse(catalog.All()), nil
}

// Catalog implements QuestionService. Concurrent catalog loads collapse into
// a single repository round trip.
func (s *questionServiceImpl) Catalog(ctx context.Context) (*assessment.Catalog, error) {
	if questions, ok := s.cachedQuestions(ctx); ok {
		catalog, err := assessment.NewCatalog(questions)
		if err == nil {
			return catalog, nil
		}
		logger.Get().Warn("Cached question set is invalid, reloading", zap.Error(err))
	}

	v, err, _ := s.group.Do("catalog", func() (interface{}, error) {
		return s.loadCatalog(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*assessment.Catalog), nil
}

func (s *questionServiceImpl) loadCatalog(ctx context.Context) (*assessment.Catalog, error) {
	questions, err := s.repo.GetAllQuestions(ctx)
	if err != nil {
		logger.Get().Warn("Question store unreachable, serving bundled catalog", zap.Error(err))
		return s.bundled, nil
	}
	if len(questions) == 0 {
		logger.Get().Info("Question store is empty, serving bundled catalog")
		return s.bundled, nil
	}

	catalog, err := assessment.NewCatalog(questions)
	if err != nil {
		logger.Get().Error("Question store holds an invalid question set, serving bundled catalog", zap.Error(err))
		return s.bundled, nil
	}

	s.storeQuestions(ctx, questions)
	return catalog, nil
}

func (s *questionServiceImpl) cachedQuestions(ctx context.Context) ([]domain.Question, bool) {
	if s.cache == nil {
		return nil, false
	}
	key := cache.GenerateCacheKey("assessment", "catalog", "all")
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Failed to read question catalog from cache", zap.Error(err))
		}
		return nil, false
	}

	var questions []domain.Question
	if err := json.Unmarshal([]byte(data), &questions); err != nil {
		logger.Get().Warn("Failed to unmarshal cached question catalog", zap.Error(err))
		return nil, false
	}
	return questions, true
}

func (s *questionServiceImpl) storeQuestions(ctx context.Context, questions []domain.Question) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(questions)
	if err != nil {
		logger.Get().Warn("Failed to marshal question catalog for caching", zap.Error(err))
		return
	}
	key := cache.GenerateCacheKey("assessment", "catalog", "all")
	if err := s.cache.Set(ctx, key, string(data), s.questionTTL); err != nil {
		logger.Get().Warn("Failed to cache question catalog", zap.Error(err))
	}
}

func toQuestionListResponse(questions []domain.Question) *dto.QuestionListResponse {
	items := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		items = append(items, dto.QuestionResponse{
			ID:       q.ID,
			Category: string(q.Category),
			Text:     q.Text,
			Options:  q.Options,
			Order:    q.Order,
		})
	}
	return &dto.QuestionListResponse{Questions: items}
}
