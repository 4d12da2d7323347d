package assessment

import (
	_ "embed"
	"encoding/json"

	"umatter/internal/domain"
)

//go:embed questions.json
var bundledQuestions []byte

type bundledQuestion struct {
	ID         int64    `json:"id"`
	Category   string   `json:"category"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	Order      int      `json:"order"`
	Weight     float64  `json:"weight"`
	IsCritical bool     `json:"is_critical"`
}

// BundledCatalog builds the catalog from the question set shipped with the
// binary. It backs question serving whenever the external question store is
// empty or unreachable.
func BundledCatalog() (*Catalog, error) {
	var raw []bundledQuestion
	if err := json.Unmarshal(bundledQuestions, &raw); err != nil {
		return nil, domain.NewInternalError("failed to decode bundled question set", err)
	}

	questions := make([]domain.Question, 0, len(raw))
	for _, b := range raw {
		cat, err := domain.ParseCategory(b.Category)
		if err != nil {
			return nil, err
		}
		questions = append(questions, domain.Question{
			ID:         b.ID,
			Category:   cat,
			Text:       b.Text,
			Options:    b.Options,
			Order:      b.Order,
			Weight:     b.Weight,
			IsCritical: b.IsCritical,
		})
	}
	return NewCatalog(questions)
}
