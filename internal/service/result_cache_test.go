package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"umatter/internal/domain"
	"umatter/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResultCache_PutAndGet(t *testing.T) {
	mockCache := new(MockCache)
	result := &dto.EvaluateResponse{
		Dominant: dto.DominantResponse{Primary: "family", Confidence: 0.9},
	}
	data, err := json.Marshal(result)
	require.NoError(t, err)

	mockCache.On("Set", mock.Anything, "umatter:assessment:result:res-1", string(data), time.Hour).Return(nil).Once()
	mockCache.On("Get", mock.Anything, "umatter:assessment:result:res-1").Return(string(data), nil).Once()

	svc := NewResultCacheService(mockCache, time.Hour)

	require.NoError(t, svc.Put(context.Background(), "res-1", result))

	got, err := svc.Get(context.Background(), "res-1")
	require.NoError(t, err)
	assert.Equal(t, "family", got.Dominant.Primary)
	mockCache.AssertExpectations(t)
}

func TestResultCache_PutNil(t *testing.T) {
	svc := NewResultCacheService(new(MockCache), time.Hour)

	err := svc.Put(context.Background(), "res-1", nil)

	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidInput, domainErr.Code)
}

func TestResultCache_GetMiss(t *testing.T) {
	mockCache := new(MockCache)
	mockCache.On("Get", mock.Anything, mock.Anything).Return("", domain.ErrCacheMiss)

	svc := NewResultCacheService(mockCache, time.Hour)
	_, err := svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrResultNotFound)
}

func TestResultCache_GetBackendError(t *testing.T) {
	mockCache := new(MockCache)
	mockCache.On("Get", mock.Anything, mock.Anything).Return("", errors.New("connection reset"))

	svc := NewResultCacheService(mockCache, time.Hour)
	_, err := svc.Get(context.Background(), "res-1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrResultNotFound)
}

func TestResultCache_Noop(t *testing.T) {
	svc := NewResultCacheService(nil, time.Hour)

	require.NoError(t, svc.Put(context.Background(), "res-1", &dto.EvaluateResponse{}))
	_, err := svc.Get(context.Background(), "res-1")
	assert.ErrorIs(t, err, ErrResultNotFound)
}
