package assessment

import (
	"math/rand"
	"sort"

	"umatter/internal/domain"
)

// DefaultSamplePlan is the fixed per-category question count served for a
// standard assessment: 15 questions total.
func DefaultSamplePlan() map[domain.Category]int {
	return map[domain.Category]int{
		domain.CategoryFamily:    4,
		domain.CategoryFinancial: 4,
		domain.CategoryCareer:    4,
		domain.CategoryLove:      3,
	}
}

// Catalog is the immutable in-memory question set. It is built once at
// startup and safe for concurrent reads; the id-to-category index backs
// response aggregation.
type Catalog struct {
	questions  []domain.Question
	byID       map[int64]domain.Category
	byCategory map[domain.Category][]domain.Question
}

// NewCatalog builds a catalog from the full question set. Questions are
// validated and indexed; duplicate ids are rejected.
func NewCatalog(questions []domain.Question) (*Catalog, error) {
	c := &Catalog{
		questions:  make([]domain.Question, 0, len(questions)),
		byID:       make(map[int64]domain.Category, len(questions)),
		byCategory: make(map[domain.Category][]domain.Question),
	}

	for i := range questions {
		q := questions[i]
		if err := q.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byID[q.ID]; exists {
			return nil, domain.NewInvalidInputError("duplicate question id in catalog").
				WithContext("question_id", q.ID)
		}
		c.byID[q.ID] = q.Category
		c.byCategory[q.Category] = append(c.byCategory[q.Category], q)
		c.questions = append(c.questions, q)
	}

	sort.SliceStable(c.questions, func(i, j int) bool {
		qi, qj := c.questions[i], c.questions[j]
		if qi.Category != qj.Category {
			return qi.Category.PriorityIndex() < qj.Category.PriorityIndex()
		}
		return qi.Order < qj.Order
	})
	for _, cat := range domain.Categories() {
		qs := c.byCategory[cat]
		sort.SliceStable(qs, func(i, j int) bool { return qs[i].Order < qs[j].Order })
	}

	return c, nil
}

// Len returns the number of questions in the catalog.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// All returns every question, ordered by category priority then display order.
func (c *Catalog) All() []domain.Question {
	out := make([]domain.Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// ByCategory returns the questions of one category ordered by display order.
func (c *Catalog) ByCategory(category domain.Category) []domain.Question {
	qs := c.byCategory[category]
	out := make([]domain.Question, len(qs))
	copy(out, qs)
	return out
}

// CategoryOf resolves a question id to its category via the index built at
// load time.
func (c *Catalog) CategoryOf(questionID int64) (domain.Category, bool) {
	cat, ok := c.byID[questionID]
	return cat, ok
}

// Sample draws the requested number of questions per category without
// replacement and shuffles the combined result. It fails with an
// InsufficientQuestionsError when a category has fewer questions than
// requested.
func (c *Catalog) Sample(counts map[domain.Category]int) ([]domain.Question, error) {
	selected := make([]domain.Question, 0)

	for _, cat := range domain.Categories() {
		n, ok := counts[cat]
		if !ok || n == 0 {
			continue
		}
		pool := c.byCategory[cat]
		if len(pool) < n {
			return nil, domain.NewInsufficientQuestionsError(cat, n, len(pool))
		}
		for _, idx := range rand.Perm(len(pool))[:n] {
			selected = append(selected, pool[idx])
		}
	}

	rand.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	return selected, nil
}
