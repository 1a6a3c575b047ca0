package month

// Derivations are pure reads over a Record. They never mutate and they do
// not care whether the month is locked.

type CategoryTotal struct {
	Category string
	Amount   float64
}

func (r Record) TotalIncome() float64 {
	total := 0.0
	for _, in := range r.Income {
		total += in.Amount
	}
	return total
}

func (r Record) TotalExpenses() float64 {
	total := 0.0
	for _, exp := range r.Expenses {
		total += exp.Amount
	}
	return total
}

func (r Record) Balance() float64 {
	return r.TotalIncome() - r.TotalExpenses() - r.Savings
}

// CategoryTotals groups expenses by their category string, in first-seen
// order of the expense sequence. Orphaned category references group like any
// other category.
func (r Record) CategoryTotals() []CategoryTotal {
	index := make(map[string]int)
	totals := make([]CategoryTotal, 0)
	for _, exp := range r.Expenses {
		i, ok := index[exp.Category]
		if !ok {
			i = len(totals)
			index[exp.Category] = i
			totals = append(totals, CategoryTotal{Category: exp.Category})
		}
		totals[i].Amount += exp.Amount
	}
	return totals
}

// TopCategory returns the category with the largest total. On a tie the
// category seen first in the expense sequence wins. ok is false when the
// month has no expenses.
func (r Record) TopCategory() (top CategoryTotal, ok bool) {
	for _, ct := range r.CategoryTotals() {
		if !ok || ct.Amount > top.Amount {
			top, ok = ct, true
		}
	}
	return top, ok
}
