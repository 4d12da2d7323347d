package assessment

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"umatter/internal/domain"
)

// modelArtifact is the on-disk layout of the trained classifier: a
// multinomial logistic regression exported as JSON, one coefficient row and
// intercept per class. Feature order is [Family, Financial, Career, Love].
type modelArtifact struct {
	Classes      []string    `json:"classes"`
	Coefficients [][]float64 `json:"coefficients"`
	Intercepts   []float64   `json:"intercepts"`
}

// Model is the loaded trauma classifier. It is immutable after loading and
// safe for concurrent inference.
type Model struct {
	classes      []domain.Category
	coefficients [][]float64
	intercepts   []float64
}

// NewModel builds a model from its raw parameters. Each class needs one
// coefficient row of four features and one intercept.
func NewModel(classes []domain.Category, coefficients [][]float64, intercepts []float64) (*Model, error) {
	if len(classes) == 0 {
		return nil, domain.NewModelUnavailableError(fmt.Errorf("model has no classes"))
	}
	if len(coefficients) != len(classes) || len(intercepts) != len(classes) {
		return nil, domain.NewModelUnavailableError(
			fmt.Errorf("model has %d classes but %d coefficient rows and %d intercepts",
				len(classes), len(coefficients), len(intercepts)))
	}
	for i, row := range coefficients {
		if len(row) != 4 {
			return nil, domain.NewModelUnavailableError(
				fmt.Errorf("coefficient row %d has %d features, want 4", i, len(row)))
		}
	}
	for _, class := range classes {
		if !class.IsValid() {
			return nil, domain.NewModelUnavailableError(
				fmt.Errorf("model class %q is not a known category", class))
		}
	}
	return &Model{
		classes:      classes,
		coefficients: coefficients,
		intercepts:   intercepts,
	}, nil
}

// LoadModel reads the model artifact from disk. A missing or malformed
// artifact is fatal for the predictor: callers must refuse to serve
// evaluations without a model.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewModelUnavailableError(err)
	}

	var artifact modelArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, domain.NewModelUnavailableError(fmt.Errorf("malformed model artifact: %w", err))
	}

	classes := make([]domain.Category, len(artifact.Classes))
	for i, name := range artifact.Classes {
		classes[i] = domain.Category(name)
	}
	return NewModel(classes, artifact.Coefficients, artifact.Intercepts)
}

// Predict returns a probability estimate per class for the given feature
// vector, via softmax over the class logits. Probabilities sum to 1 but are
// consumed as comparable scores only.
func (m *Model) Predict(features [4]float64) map[domain.Category]float64 {
	logits := make([]float64, len(m.classes))
	maxLogit := math.Inf(-1)
	for i := range m.classes {
		logit := m.intercepts[i]
		for j, x := range features {
			logit += m.coefficients[i][j] * x
		}
		logits[i] = logit
		if logit > maxLogit {
			maxLogit = logit
		}
	}

	// Softmax, shifted by the max logit for numerical stability.
	var sum float64
	exps := make([]float64, len(logits))
	for i, logit := range logits {
		exps[i] = math.Exp(logit - maxLogit)
		sum += exps[i]
	}

	probs := make(map[domain.Category]float64, len(m.classes))
	for i, class := range m.classes {
		probs[class] = exps[i] / sum
	}
	return probs
}

// Classes returns the model's class labels in training order.
func (m *Model) Classes() []domain.Category {
	out := make([]domain.Category, len(m.classes))
	copy(out, m.classes)
	return out
}
