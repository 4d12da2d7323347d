package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"umatter/internal/cache"
	"umatter/internal/domain"
	"umatter/internal/dto"
	"umatter/internal/logger"

	"go.uber.org/zap"
)

// ContentService serves reference content: government schemes, heritage
// wisdom and modern solutions.
type ContentService interface {
	// GetSchemes returns active government schemes, optionally filtered by
	// category.
	GetSchemes(ctx context.Context, category *domain.Category) (*dto.SchemeListResponse, error)

	// GetHeritageContent returns heritage wisdom for a category.
	GetHeritageContent(ctx context.Context, category domain.Category) ([]dto.HeritageContentResponse, error)

	// GetModernContent returns modern solutions for a category.
	GetModernContent(ctx context.Context, category domain.Category) ([]dto.ModernContentResponse, error)
}

type contentServiceImpl struct {
	repo      domain.ContentRepository
	cache     domain.Cache
	schemeTTL time.Duration
}

// NewContentService creates a new content service. Scheme lists are cached;
// they change rarely and are read on every results page.
func NewContentService(repo domain.ContentRepository, cacheAdapter domain.Cache, schemeTTL time.Duration) ContentService {
	return &contentServiceImpl{
		repo:      repo,
		cache:     cacheAdapter,
		schemeTTL: schemeTTL,
	}
}

// GetSchemes implements ContentService
func (s *contentServiceImpl) GetSchemes(ctx context.Context, category *domain.Category) (*dto.SchemeListResponse, error) {
	filter := "all"
	if category != nil {
		filter = string(*category)
	}
	key := cache.GenerateCacheKey("content", "schemes", filter)

	if s.cache != nil {
		data, err := s.cache.Get(ctx, key)
		if err == nil {
			var cached dto.SchemeListResponse
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return &cached, nil
			}
			logger.Get().Warn("Failed to unmarshal cached scheme list", zap.String("key", key))
		} else if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Failed to read scheme list from cache", zap.Error(err), zap.String("key", key))
		}
	}

	schemes, err := s.repo.GetActiveSchemes(ctx, category)
	if err != nil {
		return nil, domain.NewInternalError("failed to load government schemes", err)
	}

	items := make([]dto.SchemeResponse, 0, len(schemes))
	for _, scheme := range schemes {
		item := dto.SchemeResponse{
			ID:          scheme.ID,
			Name:        scheme.Name,
			Description: scheme.Description,
			Eligibility: scheme.Eligibility,
			Link:        scheme.Link,
			State:       scheme.State,
		}
		if scheme.Category != nil {
			item.Category = string(*scheme.Category)
		}
		items = append(items, item)
	}
	response := &dto.SchemeListResponse{Schemes: items}

	if s.cache != nil {
		if data, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, key, string(data), s.schemeTTL); err != nil {
				logger.Get().Warn("Failed to cache scheme list", zap.Error(err), zap.String("key", key))
			}
		}
	}
	return response, nil
}

// GetHeritageContent implements ContentService
func (s *contentServiceImpl) GetHeritageContent(ctx context.Context, category domain.Category) ([]dto.HeritageContentResponse, error) {
	if !category.IsValid() {
		return nil, domain.NewInvalidCategoryError(string(category))
	}

	content, err := s.repo.GetHeritageContent(ctx, category)
	if err != nil {
		return nil, domain.NewInternalError("failed to load heritage content", err)
	}

	items := make([]dto.HeritageContentResponse, 0, len(content))
	for _, c := range content {
		items = append(items, dto.HeritageContentResponse{
			ID:                c.ID,
			Title:             c.Title,
			HistoricalContext: c.HistoricalContext,
			Practice:          c.Practice,
			RelevanceToday:    c.RelevanceToday,
			Source:            c.Source,
		})
	}
	return items, nil
}

// GetModernContent implements ContentService
func (s *contentServiceImpl) GetModernContent(ctx context.Context, category domain.Category) ([]dto.ModernContentResponse, error) {
	if !category.IsValid() {
		return nil, domain.NewInvalidCategoryError(string(category))
	}

	content, err := s.repo.GetModernContent(ctx, category)
	if err != nil {
		return nil, domain.NewInternalError("failed to load modern content", err)
	}

	items := make([]dto.ModernContentResponse, 0, len(content))
	for _, c := range content {
		items = append(items, dto.ModernContentResponse{
			ID:              c.ID,
			Title:           c.Title,
			Solution:        c.Solution,
			TherapyType:     c.TherapyType,
			ScientificBasis: c.ScientificBasis,
			Resources:       c.Resources,
		})
	}
	return items, nil
}
