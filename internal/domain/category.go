package domain

// Category is one of the four fixed trauma domains. The set is closed:
// every question, score and prediction refers to exactly one of these.
type Category string

const (
	CategoryFamily    Category = "family"
	CategoryFinancial Category = "financial"
	CategoryCareer    Category = "career"
	CategoryLove      Category = "love"
)

// Categories returns the closed category set in its fixed priority order.
// The order doubles as the feature order fed to the trauma model and as the
// tie-break rule for dominant-trauma selection.
func Categories() [4]Category {
	return [4]Category{CategoryFamily, CategoryFinancial, CategoryCareer, CategoryLove}
}

// IsValid reports whether c is one of the four fixed categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryFamily, CategoryFinancial, CategoryCareer, CategoryLove:
		return true
	}
	return false
}

// PriorityIndex returns the position of c in the fixed priority order.
// Unknown categories sort last.
func (c Category) PriorityIndex() int {
	for i, cat := range Categories() {
		if cat == c {
			return i
		}
	}
	return len(Categories())
}

// ParseCategory converts a string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", NewInvalidCategoryError(s)
	}
	return c, nil
}

// AnswerValue is a single answer letter. Letters map to ordinal scores
// A=0, B=1, C=2, D=3 (never/sometimes/often/always).
type AnswerValue string

const (
	AnswerA AnswerValue = "A"
	AnswerB AnswerValue = "B"
	AnswerC AnswerValue = "C"
	AnswerD AnswerValue = "D"
)

// IsValid reports whether a is one of the four answer letters.
func (a AnswerValue) IsValid() bool {
	switch a {
	case AnswerA, AnswerB, AnswerC, AnswerD:
		return true
	}
	return false
}

// Score returns the ordinal score for the answer letter. The second return
// value is false for letters outside A-D.
func (a AnswerValue) Score() (float64, bool) {
	switch a {
	case AnswerA:
		return 0, true
	case AnswerB:
		return 1, true
	case AnswerC:
		return 2, true
	case AnswerD:
		return 3, true
	}
	return 0, false
}
