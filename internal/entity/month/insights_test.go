package month

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnOverspending_ShouldSuggestAdjustments(t *testing.T) {
	rec := NewRecord()
	rec.Income = []IncomeEntry{{Name: "Salary", Amount: 1000}}
	rec.Expenses = []ExpenseEntry{{Category: "Rent", Amount: 1500}}

	insights := rec.Insights()

	require.Len(t, insights, 3)
	assert.Equal(t, overspentInsight, insights[0])
	assert.Equal(t, noSavingsInsight, insights[1])
	assert.Contains(t, insights[2], `"Rent"`)
}

func Test_OnHealthyMonth_ShouldEmitAllFourInsights(t *testing.T) {
	rec := sampleRecord()

	insights := rec.Insights()

	require.Len(t, insights, 4)
	assert.Equal(t, withinIncomeInsight, insights[0])
	assert.Equal(t, savedInsight, insights[1])
	assert.Contains(t, insights[2], `"Rent"`)
	assert.Equal(t, positiveEndInsight, insights[3])
}

func Test_OnEmptyMonth_ShouldEmitOnlyMandatoryInsights(t *testing.T) {
	insights := NewRecord().Insights()

	// no expenses, zero balance: only the two always-on rules fire
	require.Len(t, insights, 2)
	assert.Equal(t, withinIncomeInsight, insights[0])
	assert.Equal(t, noSavingsInsight, insights[1])
}

func Test_OnAnyRecord_ShouldKeepInsightRulesExclusive(t *testing.T) {
	records := []Record{
		NewRecord(),
		sampleRecord(),
		{
			Income:   []IncomeEntry{{Name: "Gig", Amount: 100}},
			Expenses: []ExpenseEntry{{Category: "Food", Amount: 500}},
			Savings:  -50,
		},
		{Savings: 10},
	}

	for _, rec := range records {
		insights := rec.Insights()

		spendCount := countAny(insights, overspentInsight, withinIncomeInsight)
		saveCount := countAny(insights, savedInsight, noSavingsInsight)
		assert.Equal(t, 1, spendCount)
		assert.Equal(t, 1, saveCount)

		_, hasExpenses := rec.TopCategory()
		assert.Equal(t, hasExpenses, containsPrefix(insights, "Your highest spending category"))
		assert.Equal(t, rec.Balance() > 0, containsPrefix(insights, positiveEndInsight))
	}
}

func countAny(insights []string, candidates ...string) int {
	n := 0
	for _, insight := range insights {
		for _, c := range candidates {
			if insight == c {
				n++
			}
		}
	}
	return n
}

func containsPrefix(insights []string, prefix string) bool {
	for _, insight := range insights {
		if len(insight) >= len(prefix) && insight[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}
