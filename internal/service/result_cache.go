package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"umatter/internal/cache"
	"umatter/internal/domain"
	"umatter/internal/dto"
	"umatter/internal/logger"

	"go.uber.org/zap"
)

// ErrResultNotFound is returned when a cached evaluation result is not found.
var ErrResultNotFound = errors.New("evaluation result not found in cache")

// ResultCacheService caches evaluation results for anonymous submissions so
// they stay retrievable by result id without any database record.
type ResultCacheService interface {
	Put(ctx context.Context, resultID string, result *dto.EvaluateResponse) error
	Get(ctx context.Context, resultID string) (*dto.EvaluateResponse, error)
}

type resultCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewResultCacheService creates a new instance of resultCacheServiceImpl.
func NewResultCacheService(cache domain.Cache, ttl time.Duration) ResultCacheService {
	if cache == nil {
		// Fallback to a no-op implementation if cache is nil to prevent panics
		logger.Get().Warn("ResultCacheService initialized with nil cache. Service will be no-op.")
		return &noopResultCacheService{}
	}
	return &resultCacheServiceImpl{
		cache: cache,
		ttl:   ttl,
	}
}

func (s *resultCacheServiceImpl) generateKey(resultID string) string {
	return cache.GenerateCacheKey("assessment", "result", resultID)
}

// Put stores an evaluation result in the cache.
func (s *resultCacheServiceImpl) Put(ctx context.Context, resultID string, result *dto.EvaluateResponse) error {
	if result == nil {
		return domain.NewInvalidInputError("cannot cache nil result")
	}

	key := s.generateKey(resultID)
	dataBytes, err := json.Marshal(result)
	if err != nil {
		logger.Get().Error("Failed to marshal evaluation result for caching", zap.Error(err), zap.String("resultID", resultID))
		return domain.NewInternalError("failed to marshal result for caching", err)
	}

	if err := s.cache.Set(ctx, key, string(dataBytes), s.ttl); err != nil {
		logger.Get().Error("Failed to cache evaluation result", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to set evaluation result to cache for key %s", key), err)
	}
	logger.Get().Debug("Cached evaluation result", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

// Get retrieves an evaluation result from the cache.
func (s *resultCacheServiceImpl) Get(ctx context.Context, resultID string) (*dto.EvaluateResponse, error) {
	key := s.generateKey(resultID)
	dataString, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("Evaluation result cache miss", zap.String("key", key))
			return nil, ErrResultNotFound
		}
		logger.Get().Error("Failed to get evaluation result from cache", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get evaluation result from cache for key %s", key), err)
	}
	if dataString == "" {
		return nil, ErrResultNotFound
	}

	var result dto.EvaluateResponse
	if err := json.Unmarshal([]byte(dataString), &result); err != nil {
		logger.Get().Error("Failed to unmarshal cached evaluation result", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError("failed to unmarshal cached result", err)
	}
	return &result, nil
}

// noopResultCacheService keeps the API functional without a cache backend.
type noopResultCacheService struct{}

func (s *noopResultCacheService) Put(ctx context.Context, resultID string, result *dto.EvaluateResponse) error {
	return nil
}

func (s *noopResultCacheService) Get(ctx context.Context, resultID string) (*dto.EvaluateResponse, error) {
	return nil, ErrResultNotFound
}
