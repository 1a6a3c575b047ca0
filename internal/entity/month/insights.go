package month

import "fmt"

const (
	overspentInsight    = "You spent more than your income this month. A small adjustment next month could help."
	withinIncomeInsight = "Your spending stayed within your income. This reflects healthy awareness."
	savedInsight        = "You contributed to savings. Consistency builds long-term security."
	noSavingsInsight    = "Consider setting aside even a small amount next month."
	topCategoryInsight  = "Your highest spending category is %q. Reviewing it gently next month could help."
	positiveEndInsight  = "You ended with a positive balance. This supports your future goals."
)

// Insights evaluates the fixed observation rules over the record. The first
// two rules always emit exactly one message each; the top-category message
// appears only when the month has expenses, and the closing message only
// when the balance is positive.
func (r Record) Insights() []string {
	res := make([]string, 0, 4)

	if r.TotalExpenses() > r.TotalIncome() {
		res = append(res, overspentInsight)
	} else {
		res = append(res, withinIncomeInsight)
	}

	if r.Savings > 0 {
		res = append(res, savedInsight)
	} else {
		res = append(res, noSavingsInsight)
	}

	if top, ok := r.TopCategory(); ok {
		res = append(res, fmt.Sprintf(topCategoryInsight, top.Category))
	}

	if r.Balance() > 0 {
		res = append(res, positiveEndInsight)
	}

	return res
}
