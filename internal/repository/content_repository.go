package repository

import (
	"context"
	"fmt"

	"umatter/internal/domain"
	"umatter/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// ContentDatabaseAdapter implements domain.ContentRepository using sqlx.DB
type ContentDatabaseAdapter struct {
	db *sqlx.DB
}

// NewContentDatabaseAdapter creates a new instance of ContentDatabaseAdapter
func NewContentDatabaseAdapter(db *sqlx.DB) domain.ContentRepository {
	return &ContentDatabaseAdapter{db: db}
}

// GetActiveSchemes implements domain.ContentRepository
func (a *ContentDatabaseAdapter) GetActiveSchemes(ctx context.Context, category *domain.Category) ([]domain.GovtScheme, error) {
	var modelSchemes []models.GovtScheme
	query := `SELECT
		id "id",
		category "category",
		name "name",
		description "description",
		eligibility "eligibility",
		link "link",
		state "state",
		is_active "is_active"
	FROM govt_schemes
	WHERE is_active = 1`

	var err error
	if category != nil {
		query += ` AND category = :1 ORDER BY name ASC`
		err = a.db.SelectContext(ctx, &modelSchemes, query, string(*category))
	} else {
		query += ` ORDER BY name ASC`
		err = a.db.SelectContext(ctx, &modelSchemes, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active schemes: %w", err)
	}

	schemes := make([]domain.GovtScheme, 0, len(modelSchemes))
	for i := range modelSchemes {
		schemes = append(schemes, *toDomainScheme(&modelSchemes[i]))
	}
	return schemes, nil
}

// GetHeritageContent implements domain.ContentRepository
func (a *ContentDatabaseAdapter) GetHeritageContent(ctx context.Context, category domain.Category) ([]domain.HeritageContent, error) {
	var modelContent []models.HeritageContent
	query := `SELECT
		id "id",
		category "category",
		title "title",
		historical_context "historical_context",
		practice "practice",
		relevance_today "relevance_today",
		source "source"
	FROM heritage_content
	WHERE category = :1
	ORDER BY title ASC`

	err := a.db.SelectContext(ctx, &modelContent, query, string(category))
	if err != nil {
		return nil, fmt.Errorf("failed to get heritage content for category %s: %w", category, err)
	}

	content := make([]domain.HeritageContent, 0, len(modelContent))
	for i := range modelContent {
		m := &modelContent[i]
		content = append(content, domain.HeritageContent{
			ID:                m.ID,
			Category:          domain.Category(m.Category),
			Title:             m.Title,
			HistoricalContext: m.HistoricalContext,
			Practice:          m.Practice,
			RelevanceToday:    m.RelevanceToday.String,
			Source:            m.Source.String,
		})
	}
	return content, nil
}

// GetModernContent implements domain.ContentRepository
func (a *ContentDatabaseAdapter) GetModernContent(ctx context.Context, category domain.Category) ([]domain.ModernContent, error) {
	var modelContent []models.ModernContent
	query := `SELECT
		id "id",
		category "category",
		title "title",
		solution "solution",
		therapy_type "therapy_type",
		scientific_basis "scientific_basis",
		resources "resources"
	FROM modern_content
	WHERE category = :1
	ORDER BY title ASC`

	err := a.db.SelectContext(ctx, &modelContent, query, string(category))
	if err != nil {
		return nil, fmt.Errorf("failed to get modern content for category %s: %w", category, err)
	}

	content := make([]domain.ModernContent, 0, len(modelContent))
	for i := range modelContent {
		m := &modelContent[i]
		content = append(content, domain.ModernContent{
			ID:              m.ID,
			Category:        domain.Category(m.Category),
			Title:           m.Title,
			Solution:        m.Solution,
			TherapyType:     m.TherapyType,
			ScientificBasis: m.ScientificBasis.String,
			Resources:       m.Resources.String,
		})
	}
	return content, nil
}

func toDomainScheme(m *models.GovtScheme) *domain.GovtScheme {
	scheme := &domain.GovtScheme{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Eligibility: m.Eligibility.String,
		Link:        m.Link.String,
		State:       m.State,
		IsActive:    m.IsActive != 0,
	}
	if m.Category.Valid {
		c := domain.Category(m.Category.String)
		scheme.Category = &c
	}
	return scheme
}
