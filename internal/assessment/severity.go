package assessment

import "umatter/internal/domain"

// maxAverageScore is the top of the answer scale (answer D).
const maxAverageScore = 3.0

// ClassifySeverity maps a raw category average on the 0-3 scale to a 0-100
// percentage and a discrete severity band. Thresholds are inclusive-lower:
// below 1.0 is low, 1.0 to 1.5 moderate, 1.5 to 2.0 high, 2.0 and above severe.
func ClassifySeverity(average float64) (float64, domain.SeverityLevel) {
	percentage := average / maxAverageScore * 100
	if percentage < 0 {
		percentage = 0
	} else if percentage > 100 {
		percentage = 100
	}

	var level domain.SeverityLevel
	switch {
	case average < 1.0:
		level = domain.SeverityLow
	case average < 1.5:
		level = domain.SeverityModerate
	case average < 2.0:
		level = domain.SeverityHigh
	default:
		level = domain.SeveritySevere
	}
	return percentage, level
}

// ClassifyAll classifies every category average, in fixed category order.
func ClassifyAll(averages map[domain.Category]float64) []domain.SeverityRecord {
	records := make([]domain.SeverityRecord, 0, len(domain.Categories()))
	for _, cat := range domain.Categories() {
		pct, level := ClassifySeverity(averages[cat])
		records = append(records, domain.SeverityRecord{
			Category:        cat,
			ScorePercentage: pct,
			Level:           level,
		})
	}
	return records
}
