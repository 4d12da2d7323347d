package assessment

import (
	"sort"

	"umatter/internal/domain"
)

// SelectDominant ranks predicted probabilities and picks the primary and
// secondary trauma categories. Ties break by the fixed category priority
// order so repeated calls on the same prediction are deterministic. The
// confidence score is the primary's probability, unmodified.
func SelectDominant(prediction map[domain.Category]float64) (domain.DominantTrauma, error) {
	if len(prediction) == 0 {
		return domain.DominantTrauma{}, domain.NewInvalidInputError("prediction has no categories")
	}

	type ranked struct {
		category    domain.Category
		probability float64
	}
	entries := make([]ranked, 0, len(prediction))
	for cat, prob := range prediction {
		entries = append(entries, ranked{category: cat, probability: prob})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].probability != entries[j].probability {
			return entries[i].probability > entries[j].probability
		}
		return entries[i].category.PriorityIndex() < entries[j].category.PriorityIndex()
	})

	dominant := domain.DominantTrauma{
		Primary:    entries[0].category,
		Confidence: entries[0].probability,
	}
	if len(entries) > 1 {
		secondary := entries[1].category
		dominant.Secondary = &secondary
	}
	return dominant, nil
}
