package month

// DefaultCategories seed every newly created month.
var DefaultCategories = []string{"Rent", "Food", "Transport", "Utilities"}

type IncomeEntry struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// ExpenseEntry references its category by name. The reference is not
// enforced against Record.Categories: an expense may keep pointing at a
// category that is no longer listed.
type ExpenseEntry struct {
	Category string  `json:"cat"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
}

// Record is the full state of one month's budget.
type Record struct {
	Income     []IncomeEntry  `json:"income"`
	Expenses   []ExpenseEntry `json:"expenses"`
	Categories []string       `json:"categories"`
	Savings    float64        `json:"savings"`
	Locked     bool           `json:"locked"`
}

// NewRecord returns an unlocked month with the default categories and empty
// ledgers.
func NewRecord() Record {
	return Record{
		Income:     make([]IncomeEntry, 0),
		Expenses:   make([]ExpenseEntry, 0),
		Categories: append([]string(nil), DefaultCategories...),
		Savings:    0,
		Locked:     false,
	}
}

// Clone deep-copies the record so that carry-forward cannot alias the
// source month's slices.
func (r Record) Clone() Record {
	res := r
	res.Income = append(make([]IncomeEntry, 0, len(r.Income)), r.Income...)
	res.Expenses = append(make([]ExpenseEntry, 0, len(r.Expenses)), r.Expenses...)
	res.Categories = append(make([]string, 0, len(r.Categories)), r.Categories...)
	return res
}
