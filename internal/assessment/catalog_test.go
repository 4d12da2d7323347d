package assessment

import (
	"testing"

	"umatter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuestions(t *testing.T) []domain.Question {
	t.Helper()
	questions := make([]domain.Question, 0, 15)
	var id int64 = 1
	counts := map[domain.Category]int{
		domain.CategoryFamily:    4,
		domain.CategoryFinancial: 4,
		domain.CategoryCareer:    4,
		domain.CategoryLove:      3,
	}
	for _, cat := range domain.Categories() {
		for order := 1; order <= counts[cat]; order++ {
			questions = append(questions, domain.Question{
				ID:       id,
				Category: cat,
				Text:     "question",
				Options:  []string{"Never", "Sometimes", "Often", "Always"},
				Order:    order,
				Weight:   1.0,
			})
			id++
		}
	}
	return questions
}

func TestNewCatalog(t *testing.T) {
	catalog, err := NewCatalog(testQuestions(t))
	require.NoError(t, err)
	assert.Equal(t, 15, catalog.Len())

	cat, ok := catalog.CategoryOf(1)
	assert.True(t, ok)
	assert.Equal(t, domain.CategoryFamily, cat)

	_, ok = catalog.CategoryOf(999)
	assert.False(t, ok)
}

func TestNewCatalogRejectsDuplicateIDs(t *testing.T) {
	questions := testQuestions(t)
	questions[1].ID = questions[0].ID

	_, err := NewCatalog(questions)
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidInput, domainErr.Code)
}

func TestNewCatalogRejectsInvalidQuestions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Question)
	}{
		{"unknown category", func(q *domain.Question) { q.Category = "Weather" }},
		{"missing text", func(q *domain.Question) { q.Text = "" }},
		{"wrong option count", func(q *domain.Question) { q.Options = []string{"Yes", "No"} }},
		{"weight out of range", func(q *domain.Question) { q.Weight = 5.0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := testQuestions(t)
			tt.mutate(&questions[0])
			_, err := NewCatalog(questions)
			assert.Error(t, err)
		})
	}
}

func TestCatalogAllOrdering(t *testing.T) {
	catalog, err := NewCatalog(testQuestions(t))
	require.NoError(t, err)

	all := catalog.All()
	require.Len(t, all, 15)

	// Categories appear in priority order, display order within each.
	prevPriority, prevOrder := -1, 0
	for _, q := range all {
		priority := q.Category.PriorityIndex()
		if priority != prevPriority {
			assert.Greater(t, priority, prevPriority)
			prevPriority = priority
			prevOrder = 0
		}
		assert.Greater(t, q.Order, prevOrder)
		prevOrder = q.Order
	}
}

func TestCatalogByCategory(t *testing.T) {
	catalog, err := NewCatalog(testQuestions(t))
	require.NoError(t, err)

	love := catalog.ByCategory(domain.CategoryLove)
	require.Len(t, love, 3)
	for i, q := range love {
		assert.Equal(t, domain.CategoryLove, q.Category)
		assert.Equal(t, i+1, q.Order)
	}
}

func TestSampleReturnsFullPlanExactlyOnce(t *testing.T) {
	catalog, err := NewCatalog(testQuestions(t))
	require.NoError(t, err)

	// Catalog holds exactly the plan counts, so sampling must return every
	// question exactly once.
	sampled, err := catalog.Sample(DefaultSamplePlan())
	require.NoError(t, err)
	require.Len(t, sampled, 15)

	seen := make(map[int64]bool, 15)
	for _, q := range sampled {
		assert.False(t, seen[q.ID], "question %d sampled twice", q.ID)
		seen[q.ID] = true
	}
	assert.Len(t, seen, 15)
}

func TestSampleInsufficientQuestions(t *testing.T) {
	catalog, err := NewCatalog(testQuestions(t))
	require.NoError(t, err)

	_, err = catalog.Sample(map[domain.Category]int{domain.CategoryFamily: 5})
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInsufficientQuestions, domainErr.Code)
}

func TestSampleDrawsRequestedCounts(t *testing.T) {
	catalog, err := NewCatalog(testQuestions(t))
	require.NoError(t, err)

	sampled, err := catalog.Sample(map[domain.Category]int{
		domain.CategoryFamily: 2,
		domain.CategoryLove:   1,
	})
	require.NoError(t, err)
	require.Len(t, sampled, 3)

	perCategory := make(map[domain.Category]int)
	for _, q := range sampled {
		perCategory[q.Category]++
	}
	assert.Equal(t, 2, perCategory[domain.CategoryFamily])
	assert.Equal(t, 1, perCategory[domain.CategoryLove])
}

func TestBundledCatalog(t *testing.T) {
	catalog, err := BundledCatalog()
	require.NoError(t, err)
	assert.Equal(t, 16, catalog.Len())

	// The bundled set must always satisfy the default sampling plan.
	sampled, err := catalog.Sample(DefaultSamplePlan())
	require.NoError(t, err)
	assert.Len(t, sampled, 15)
}
