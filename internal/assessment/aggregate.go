package assessment

import "umatter/internal/domain"

// Aggregate converts submitted responses into one average score per category.
// Every category is always present in the result: a category with no
// responses averages 0.0, so downstream prediction and severity
// classification always receive four well-defined features.
//
// An unknown question id fails the whole aggregation: a response must never
// silently vanish from a statistical average.
func Aggregate(catalog *Catalog, responses []domain.Response) (map[domain.Category]float64, error) {
	sums := make(map[domain.Category]float64, len(domain.Categories()))
	counts := make(map[domain.Category]int, len(domain.Categories()))

	for _, r := range responses {
		cat, ok := catalog.CategoryOf(r.QuestionID)
		if !ok {
			return nil, domain.NewUnknownQuestionError(r.QuestionID)
		}
		score, ok := r.Answer.Score()
		if !ok {
			return nil, domain.NewInvalidAnswerError(string(r.Answer))
		}
		sums[cat] += score
		counts[cat]++
	}

	averages := make(map[domain.Category]float64, len(domain.Categories()))
	for _, cat := range domain.Categories() {
		if counts[cat] == 0 {
			averages[cat] = 0.0
			continue
		}
		averages[cat] = sums[cat] / float64(counts[cat])
	}
	return averages, nil
}

// Features lays out category averages as the ordered feature vector the
// trauma model expects: [Family, Financial, Career, Love].
func Features(averages map[domain.Category]float64) [4]float64 {
	var features [4]float64
	for i, cat := range domain.Categories() {
		features[i] = averages[cat]
	}
	return features
}
